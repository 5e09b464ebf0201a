package entity

import "time"

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Composition string    `gorm:"not null" json:"composition"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Weight      int       `gorm:"not null" json:"weight"` // граммы
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`

	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `json:"-"`
}
