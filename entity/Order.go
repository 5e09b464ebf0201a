package entity

import "time"

// Статусы заказа. Переходы сейчас не ограничены — см. UpdateStatus.
const (
	OrderStatusNew       = "new"
	OrderStatusCooking   = "cooking"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusCooking, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerPhone string    `gorm:"not null" json:"customer_phone"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null" json:"total_price"` // считается сервером, не меняется после создания
	Status        string    `gorm:"not null;default:new" json:"status"`
	CreatedAt     time.Time `json:"created_at"`

	Items []OrderItem `json:"-"`
}
