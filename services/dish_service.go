package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
	"github.com/malika-s1/restoranchec/repository"
	"github.com/malika-s1/restoranchec/utils"
)

type DishService struct {
	Repo      *repository.DishRepository
	CatRepo   *repository.CategoryRepository
	UploadDir string
}

func NewDishService(repo *repository.DishRepository, catRepo *repository.CategoryRepository, uploadDir string) *DishService {
	return &DishService{Repo: repo, CatRepo: catRepo, UploadDir: uploadDir}
}

func (s *DishService) List(f repository.DishFilter) ([]repository.DishView, error) {
	return s.Repo.List(f)
}

func (s *DishService) Get(id uint) (*repository.DishView, error) {
	v, err := s.Repo.FindViewByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

type CreateDishInput struct {
	Name        string
	Composition string
	Price       float64
	Weight      int
	CategoryID  uint
	ImagePath   *string // уже сохранённый файл; чистит контроллер при ошибке
}

func (s *DishService) Create(in CreateDishInput) (*repository.DishView, error) {
	if in.Name == "" || in.Composition == "" || in.Price <= 0 || in.Weight <= 0 || in.CategoryID == 0 {
		return nil, ErrValidation
	}

	// без категории блюдо не создаём — иначе FK-ошибка всплыла бы как 500
	ok, err := s.CatRepo.Exists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	d := &entity.Dish{
		Name:        in.Name,
		Composition: in.Composition,
		Price:       in.Price,
		Weight:      in.Weight,
		CategoryID:  in.CategoryID,
		ImagePath:   in.ImagePath,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return s.Repo.FindViewByID(d.ID)
}

type UpdateDishInput struct {
	Name        *string
	Composition *string
	Price       *float64
	Weight      *int
	CategoryID  *uint
	ImagePath   *string // новый файл; nil — картинку не меняли
}

// Update — частичное обновление: пропущенные поля сохраняют прежние значения.
// Старая картинка удаляется только после успешного поиска записи.
func (s *DishService) Update(id uint, in UpdateDishInput) (*repository.DishView, error) {
	current, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	d := *current
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Composition != nil {
		d.Composition = *in.Composition
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, ErrValidation
		}
		d.Price = *in.Price
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return nil, ErrValidation
		}
		d.Weight = *in.Weight
	}
	if in.CategoryID != nil {
		ok, err := s.CatRepo.Exists(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCategoryNotFound
		}
		d.CategoryID = *in.CategoryID
	}
	if in.ImagePath != nil {
		if current.ImagePath != nil {
			utils.DeleteImage(s.UploadDir, *current.ImagePath)
		}
		d.ImagePath = in.ImagePath
	}

	if err := s.Repo.Update(&d); err != nil {
		return nil, err
	}
	return s.Repo.FindViewByID(id)
}

// Delete убирает файл картинки, затем запись.
func (s *DishService) Delete(id uint) error {
	d, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if d.ImagePath != nil {
		utils.DeleteImage(s.UploadDir, *d.ImagePath)
	}
	return s.Repo.Delete(id)
}
