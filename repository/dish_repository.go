package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// DishView — блюдо + имя категории для отображения.
type DishView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Composition string    `json:"composition"`
	Price       float64   `json:"price"`
	Weight      int       `json:"weight"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	CategoryID  uint      `json:"category_id"`

	CategoryName string `json:"category_name"`
}

type DishFilter struct {
	CategoryID uint
	Search     string
	SortBy     string // name | price | weight | created_at
	SortOrder  string // asc | desc
}

var dishSortColumns = map[string]string{
	"name":       "d.name",
	"price":      "d.price",
	"weight":     "d.weight",
	"created_at": "d.created_at",
}

func (r *DishRepository) List(f DishFilter) ([]DishView, error) {
	db := r.DB.Table("dishes AS d").
		Select("d.id, d.name, d.composition, d.price, d.weight, d.image_path, d.created_at, d.category_id, COALESCE(c.name, '') AS category_name").
		Joins("LEFT JOIN categories c ON c.id = d.category_id")

	if f.CategoryID != 0 {
		db = db.Where("d.category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		db = db.Where("LOWER(d.name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	// неизвестные значения сортировки молча откатываются к name/asc
	column, ok := dishSortColumns[f.SortBy]
	if !ok {
		column = "d.name"
	}
	order := "ASC"
	if strings.ToLower(f.SortOrder) == "desc" {
		order = "DESC"
	}

	out := make([]DishView, 0)
	err := db.Order(column + " " + order).Scan(&out).Error
	return out, err
}

func (r *DishRepository) FindViewByID(id uint) (*DishView, error) {
	var v DishView
	err := r.DB.Table("dishes AS d").
		Select("d.id, d.name, d.composition, d.price, d.weight, d.image_path, d.created_at, d.category_id, COALESCE(c.name, '') AS category_name").
		Joins("LEFT JOIN categories c ON c.id = d.category_id").
		Where("d.id = ?", id).
		Take(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(d *entity.Dish) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", d.ID).Updates(map[string]any{
		"name":        d.Name,
		"composition": d.Composition,
		"price":       d.Price,
		"weight":      d.Weight,
		"category_id": d.CategoryID,
		"image_path":  d.ImagePath,
	}).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Dish{}, id).Error
}
