package entity

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"` // снимок цены блюда на момент заказа

	OrderID uint  `gorm:"not null" json:"order_id"`
	Order   Order `json:"-"`

	// DishID без FK: блюдо могут изменить или удалить, исторические позиции не трогаем.
	DishID uint `gorm:"not null" json:"dish_id"`
}
