package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/malika-s1/restoranchec/pkg/resp"
	"github.com/malika-s1/restoranchec/services"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryController struct {
	Svc *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

// GET /api/categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /api/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Category name is required")
		return
	}

	category, err := ctl.Svc.Create(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Category name is required")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// PUT /api/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Category name is required")
		return
	}

	category, err := ctl.Svc.Update(uint(id), req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "Category name is required")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, category)
}

// DELETE /api/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Category not found")
		case errors.Is(err, services.ErrConflict):
			resp.Conflict(c, "Cannot delete category with existing dishes")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "Category deleted successfully")
}
