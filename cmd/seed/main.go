package main

import (
	"errors"
	"log"
	"os"
	"time"

	"octobot-be/internal/model"
	"octobot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminName  = "DK Admin"
	defaultAdminEmail = "DK-OctoBot-Tests@Gmail.com"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("Error: SEED_ADMIN_PASSWORD is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding default admin account...")

	var existing model.User
	err = db.Where("email = ?", defaultAdminEmail).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			log.Fatalf("Error: Failed to hash password: %v", err)
		}
		hashStr := string(hash)
		admin := model.User{
			Email:        defaultAdminEmail,
			Name:         defaultAdminName,
			PasswordHash: &hashStr,
			Role:         "admin",
			LastSignedIn: time.Now(),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Error: Failed to create admin: %v", err)
		}
		color.Green("✅ Default admin created: %s", defaultAdminEmail)

	case err != nil:
		log.Fatalf("Error: Failed to query users: %v", err)

	default:
		// Existing account: backfill password and role if missing.
		updates := map[string]interface{}{}
		if existing.PasswordHash == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
			if err != nil {
				log.Fatalf("Error: Failed to hash password: %v", err)
			}
			updates["password_hash"] = string(hash)
		}
		if existing.Role != "admin" {
			updates["role"] = "admin"
		}
		if len(updates) == 0 {
			color.Yellow("Default admin already present, nothing to do")
			return
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			log.Fatalf("Error: Failed to update admin: %v", err)
		}
		color.Green("✅ Default admin updated: %s", defaultAdminEmail)
	}
}
