package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/malika-s1/restoranchec/pkg/resp"
	"github.com/malika-s1/restoranchec/services"
	"github.com/malika-s1/restoranchec/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /api/orders?status=
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Svc.List(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Customer name, phone, and at least one item are required")
		return
	}

	order, err := ctl.Svc.Create(&req)
	if err != nil {
		var dnf *services.DishNotFoundError
		switch {
		case errors.As(err, &dnf):
			resp.BadRequest(c, dnf.Error())
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "Customer name, phone, and at least one item are required")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	log.Printf("order %d created by %s", order.ID, utils.CurrentUsername(c))
	resp.Created(c, order)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Valid status is required (new, cooking, delivered, cancelled)")
		return
	}

	order, err := ctl.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "Valid status is required (new, cooking, delivered, cancelled)")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	log.Printf("order %d status set to %s by %s", order.ID, order.Status, utils.CurrentUsername(c))
	resp.OK(c, order)
}
