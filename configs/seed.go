package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/malika-s1/restoranchec/entity"
)

// SeedUsers создаёт стартовые учётки admin/manager из env.
// API пользователей не создаёт — это единственный путь.
func SeedUsers(db *gorm.DB, cfg *Config) error {
	if err := seedUser(db, cfg.AdminUsername, cfg.AdminPassword, "admin"); err != nil {
		return err
	}
	return seedUser(db, cfg.ManagerUsername, cfg.ManagerPassword, "manager")
}

func seedUser(db *gorm.DB, username, password, role string) error {
	if username == "" || password == "" {
		log.Printf("skip seeding %s: missing credentials in env", role)
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("%s already exists: %s", role, username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	return db.Create(&user).Error
}
