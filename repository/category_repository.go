package repository

import (
	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GET /api/categories → всегда по имени
func (r *CategoryRepository) ListByName() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", c.ID).
		Updates(map[string]any{"name": c.Name, "description": c.Description}).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// CountDishes — guard на удаление категории с блюдами
func (r *CategoryRepository) CountDishes(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Dish{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}
