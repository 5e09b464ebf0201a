package services

import (
	"errors"
	"fmt"
)

// Ошибки уровня сервисов; контроллеры переводят их в HTTP-статусы.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrCredentials = errors.New("invalid credentials")

	// блюдо привязывают к несуществующей категории
	ErrCategoryNotFound = errors.New("category not found")
)

// DishNotFoundError — заказ ссылается на несуществующее блюдо.
// Это ошибка клиента (BadRequest), а не NotFound по ресурсу заказа.
type DishNotFoundError struct {
	ID uint
}

func (e *DishNotFoundError) Error() string {
	return fmt.Sprintf("Dish with id %d not found", e.ID)
}
