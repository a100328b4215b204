package main

import (
	"log"
	"os"

	"project-tracker-backend/internal/api/routes"
	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "project-tracker-backend/docs" // This is needed for swag
)

//	@title			Project Tracker Backend API
//	@version		1.0
//	@description	Backend API for tracking projects, features, tasks and the time spent on them.

//	@host		localhost:5000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Load initial data when asked to
	if cfg.SeedFile != "" || cfg.AdminUser != "" {
		data := database.DefaultSeedData()
		if cfg.SeedFile != "" {
			if data, err = database.LoadSeedFile(cfg.SeedFile); err != nil {
				logrus.Fatal("Failed to load seed file:", err)
			}
		}
		result, err := database.Seed(db, data.WithAdmin(cfg.AdminUser, cfg.AdminPassword), auth.NewBcryptHasher())
		if err != nil {
			logrus.Fatal("Failed to seed database:", err)
		}
		logrus.WithFields(logrus.Fields{
			"roles":    result.Roles,
			"statuses": result.Statuses,
			"types":    result.Types,
			"users":    result.Users,
		}).Info("Initial data loaded")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "5000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
