package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderItemView — позиция заказа с именем блюда (LEFT JOIN: блюдо могло быть удалено).
type OrderItemView struct {
	ID       uint    `json:"id"`
	DishID   uint    `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderView struct {
	ID            uint            `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	TotalPrice    float64         `json:"total_price"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItemView `json:"items"`
}

// ---------------- внутри транзакции ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// GetDishPrice перечитывает актуальную цену по id в рамках tx.
func (r *OrderRepository) GetDishPrice(tx *gorm.DB, dishID uint) (float64, error) {
	var d entity.Dish
	if err := tx.Select("id, price").First(&d, dishID).Error; err != nil {
		return 0, err
	}
	return d.Price, nil
}

// ---------------- чтение ----------------

func (r *OrderRepository) List(status string) ([]entity.Order, error) {
	db := r.DB.Model(&entity.Order{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []entity.Order
	err := db.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ItemsForOrders возвращает позиции для набора заказов одним запросом,
// сгруппированные по order_id.
func (r *OrderRepository) ItemsForOrders(orderIDs []uint) (map[uint][]OrderItemView, error) {
	grouped := make(map[uint][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	var rows []struct {
		OrderItemView
		OrderID uint
	}
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.dish_id, oi.quantity, oi.price, COALESCE(d.name, '') AS dish_name").
		Joins("LEFT JOIN dishes d ON d.id = oi.dish_id").
		Where("oi.order_id IN ?", orderIDs).
		Order("oi.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row.OrderItemView)
	}
	return grouped, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}
