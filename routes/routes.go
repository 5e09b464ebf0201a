package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/configs"
	"github.com/malika-s1/restoranchec/controllers"
	"github.com/malika-s1/restoranchec/middlewares"
	"github.com/malika-s1/restoranchec/repository"
	"github.com/malika-s1/restoranchec/services"
)

// RegisterRoutes собирает зависимости и вешает маршруты.
// Пути /api/... должны совпадать со старым API один в один — их парсит админка.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catSvc := services.NewCategoryService(catRepo)
	dishSvc := services.NewDishService(dishRepo, catRepo, cfg.UploadDir)
	orderSvc := services.NewOrderService(db, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catSvc)
	dishCtrl := controllers.NewDishController(dishSvc, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")
	{
		api.POST("/login", authCtrl.Login)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"service":   "Food Service Admin API",
			})
		})

		// Categories: чтение всем авторизованным, мутации только admin
		api.GET("/categories", auth, catCtrl.List)
		api.POST("/categories", admin, catCtrl.Create)
		api.PUT("/categories/:id", admin, catCtrl.Update)
		api.DELETE("/categories/:id", admin, catCtrl.Delete)

		// Dishes
		api.GET("/dishes", auth, dishCtrl.List)
		api.GET("/dishes/:id", auth, dishCtrl.Get)
		api.POST("/dishes", admin, dishCtrl.Create)
		api.PUT("/dishes/:id", admin, dishCtrl.Update)
		api.DELETE("/dishes/:id", admin, dishCtrl.Delete)

		// Orders: admin-ограничений нет, хватает авторизации
		api.GET("/orders", auth, orderCtrl.List)
		api.GET("/orders/:id", auth, orderCtrl.Get)
		api.POST("/orders", auth, orderCtrl.Create)
		api.PATCH("/orders/:id/status", auth, orderCtrl.UpdateStatus)
	}

	// Статика: загруженные картинки + админка
	r.Static("/uploads", cfg.UploadDir)
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/style.css", "./web/style.css")
	r.Static("/js", "./web/js")
}
