package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/malika-s1/restoranchec/configs"
	"github.com/malika-s1/restoranchec/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := configs.SeedUsers(db, cfg); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
