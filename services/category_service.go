package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
	"github.com/malika-s1/restoranchec/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.ListByName()
}

func (s *CategoryService) Create(name, description string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}
	c := &entity.Category{Name: name, Description: description}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(id uint, name, description string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c := &entity.Category{ID: id, Name: name, Description: description}
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Delete запрещено, пока на категорию ссылается хотя бы одно блюдо.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	cnt, err := s.Repo.CountDishes(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrConflict
	}

	return s.Repo.Delete(id)
}
