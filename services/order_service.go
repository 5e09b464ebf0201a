package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
	"github.com/malika-s1/restoranchec/repository"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

type OrderItemIn struct {
	DishID   uint `json:"dish_id"`
	Quantity int  `json:"quantity"`
}

type CreateOrderReq struct {
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Items         []OrderItemIn `json:"items"`
}

// Create создаёт заказ целиком в одной транзакции: цены блюд перечитываются
// по id, итог считается на сервере. Неизвестное блюдо откатывает всё —
// частично сохранённых заказов не бывает.
func (s *OrderService) Create(req *CreateOrderReq) (*repository.OrderView, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || len(req.Items) == 0 {
		return nil, ErrValidation
	}
	for _, it := range req.Items {
		if it.DishID == 0 || it.Quantity <= 0 {
			return nil, ErrValidation
		}
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		type line struct {
			dishID uint
			qty    int
			price  float64
		}

		total := 0.0
		lines := make([]line, 0, len(req.Items))
		for _, it := range req.Items {
			price, err := s.Repo.GetDishPrice(tx, it.DishID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &DishNotFoundError{ID: it.DishID}
				}
				return err
			}
			total += price * float64(it.Quantity)
			lines = append(lines, line{dishID: it.DishID, qty: it.Quantity, price: price})
		}

		order := entity.Order{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			TotalPrice:    total,
			Status:        entity.OrderStatusNew,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:  order.ID,
				DishID:   l.dishID,
				Quantity: l.qty,
				Price:    l.price, // снимок на момент заказа
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(orderID)
}

func (s *OrderService) List(status string) ([]repository.OrderView, error) {
	orders, err := s.Repo.List(status)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	itemsByOrder, err := s.Repo.ItemsForOrders(ids)
	if err != nil {
		return nil, err
	}

	out := make([]repository.OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, buildOrderView(&o, itemsByOrder[o.ID]))
	}
	return out, nil
}

func (s *OrderService) Get(id uint) (*repository.OrderView, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	itemsByOrder, err := s.Repo.ItemsForOrders([]uint{o.ID})
	if err != nil {
		return nil, err
	}
	v := buildOrderView(o, itemsByOrder[o.ID])
	return &v, nil
}

// UpdateStatus проверяет только значение enum. Легальность перехода
// (включая уход из delivered/cancelled) сознательно не проверяется —
// вопрос к продукту открыт, поведение закреплено тестом.
func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, ErrValidation
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// Заказ без позиций отдаём с items: [], а не null — клиент это парсит.
func buildOrderView(o *entity.Order, items []repository.OrderItemView) repository.OrderView {
	if items == nil {
		items = []repository.OrderItemView{}
	}
	return repository.OrderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TotalPrice:    o.TotalPrice,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}
