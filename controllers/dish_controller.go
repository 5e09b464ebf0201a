package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/malika-s1/restoranchec/pkg/resp"
	"github.com/malika-s1/restoranchec/repository"
	"github.com/malika-s1/restoranchec/services"
	"github.com/malika-s1/restoranchec/utils"
)

type DishController struct {
	Svc       *services.DishService
	UploadDir string
}

func NewDishController(svc *services.DishService, uploadDir string) *DishController {
	return &DishController{Svc: svc, UploadDir: uploadDir}
}

// GET /api/dishes?category_id=&search=&sort_by=&sort_order=
func (ctl *DishController) List(c *gin.Context) {
	var f repository.DishFilter
	if v := c.Query("category_id"); v != "" {
		id, _ := strconv.Atoi(v)
		f.CategoryID = uint(id)
	}
	f.Search = c.Query("search")
	f.SortBy = c.DefaultQuery("sort_by", "name")
	f.SortOrder = c.DefaultQuery("sort_order", "asc")

	dishes, err := ctl.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /api/dishes/:id
func (ctl *DishController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	dish, err := ctl.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// saveUploadedImage сохраняет файл из multipart-формы, если он есть.
// Ошибка валидации файла — это 400 для клиента.
func (ctl *DishController) saveUploadedImage(c *gin.Context) (*string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, true // файла нет — это нормально
	}

	path, err := utils.SaveImage(fh, ctl.UploadDir)
	if err != nil {
		if errors.Is(err, utils.ErrImageTooLarge) || errors.Is(err, utils.ErrImageType) {
			resp.BadRequest(c, "File upload error: "+err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return nil, false
	}
	return &path, true
}

// cleanupImage удаляет только что сохранённый файл, если запрос не прошёл.
func (ctl *DishController) cleanupImage(path *string) {
	if path != nil {
		utils.DeleteImage(ctl.UploadDir, *path)
	}
}

// POST /api/dishes (multipart)
func (ctl *DishController) Create(c *gin.Context) {
	imagePath, ok := ctl.saveUploadedImage(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	composition := c.PostForm("composition")
	priceStr := c.PostForm("price")
	weightStr := c.PostForm("weight")
	categoryStr := c.PostForm("category_id")

	if name == "" || composition == "" || priceStr == "" || weightStr == "" || categoryStr == "" {
		ctl.cleanupImage(imagePath)
		resp.BadRequest(c, "All fields are required")
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		ctl.cleanupImage(imagePath)
		resp.BadRequest(c, "Invalid price")
		return
	}
	weight, err := strconv.Atoi(weightStr)
	if err != nil {
		ctl.cleanupImage(imagePath)
		resp.BadRequest(c, "Invalid weight")
		return
	}
	categoryID, err := strconv.Atoi(categoryStr)
	if err != nil {
		ctl.cleanupImage(imagePath)
		resp.BadRequest(c, "Invalid category_id")
		return
	}

	dish, err := ctl.Svc.Create(services.CreateDishInput{
		Name:        name,
		Composition: composition,
		Price:       price,
		Weight:      weight,
		CategoryID:  uint(categoryID),
		ImagePath:   imagePath,
	})
	if err != nil {
		ctl.cleanupImage(imagePath)
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "All fields are required")
		case errors.Is(err, services.ErrCategoryNotFound):
			resp.BadRequest(c, "Category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, dish)
}

// PUT /api/dishes/:id (multipart, частичное обновление)
func (ctl *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	imagePath, ok := ctl.saveUploadedImage(c)
	if !ok {
		return
	}

	var in services.UpdateDishInput
	in.ImagePath = imagePath

	if v := c.PostForm("name"); v != "" {
		in.Name = &v
	}
	if v := c.PostForm("composition"); v != "" {
		in.Composition = &v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			ctl.cleanupImage(imagePath)
			resp.BadRequest(c, "Invalid price")
			return
		}
		in.Price = &price
	}
	if v := c.PostForm("weight"); v != "" {
		weight, err := strconv.Atoi(v)
		if err != nil {
			ctl.cleanupImage(imagePath)
			resp.BadRequest(c, "Invalid weight")
			return
		}
		in.Weight = &weight
	}
	if v := c.PostForm("category_id"); v != "" {
		cid, err := strconv.Atoi(v)
		if err != nil {
			ctl.cleanupImage(imagePath)
			resp.BadRequest(c, "Invalid category_id")
			return
		}
		u := uint(cid)
		in.CategoryID = &u
	}

	dish, err := ctl.Svc.Update(uint(id), in)
	if err != nil {
		ctl.cleanupImage(imagePath)
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "Dish not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "Invalid dish fields")
		case errors.Is(err, services.ErrCategoryNotFound):
			resp.BadRequest(c, "Category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, dish)
}

// DELETE /api/dishes/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "Dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Dish deleted successfully")
}
