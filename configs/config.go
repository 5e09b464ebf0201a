package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
	UploadDir string

	AdminUsername   string
	AdminPassword   string
	ManagerUsername string
	ManagerPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "food_admin.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    8 * time.Hour, // фиксированное время жизни токена
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		ManagerUsername: os.Getenv("MANAGER_USERNAME"),
		ManagerPassword: os.Getenv("MANAGER_PASSWORD"),
	}
}

// PostgresDSN собирает строку подключения из стандартных DB_* переменных.
func PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "food_admin"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
