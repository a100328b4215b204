package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	seedFile := flag.String("file", "scripts/data/seed.yaml", "seed file to load, empty for the built in roles, statuses and types")
	adminUser := flag.String("admin-user", "", "username of an admin account to create")
	adminPassword := flag.String("admin-password", "", "password of the admin account")
	flag.Parse()

	log.Println("🚀 Loading initial data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data := database.DefaultSeedData()
	if *seedFile != "" {
		if data, err = database.LoadSeedFile(*seedFile); err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
	}

	username, password := *adminUser, *adminPassword
	if username == "" {
		username, password = cfg.AdminUser, cfg.AdminPassword
	}

	result, err := database.Seed(db, data.WithAdmin(username, password), auth.NewBcryptHasher())
	if err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Printf("✅ Initial data loaded: %d roles, %d statuses, %d types, %d users",
		result.Roles, result.Statuses, result.Types, result.Users)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
