package main

import (
	"log"
	"os"

	"octobot-be/internal/model"
	"octobot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (AutoMigrate doesn't handle these)
	color.Yellow("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Yellow("Step 2: Running AutoMigrate for 11 Tables...")

	models := []interface{}{
		&model.User{},
		&model.Bot{},
		&model.ClientTester{},
		&model.TestSession{},
		&model.Message{},
		&model.MessageFeedback{},
		&model.SessionNote{},
		&model.ClientNote{},
		&model.Team{},
		&model.TeamMember{},
		&model.Banner{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: supporting indexes for the hot session lookups
	color.Yellow("Step 3: Creating supporting indexes...")

	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_test_sessions_tester_bot_status
		 ON test_sessions (client_tester_id, bot_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session_created
		 ON messages (session_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_client_testers_share_token
		 ON client_testers (share_token);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
