package main

import (
	"log"

	"mcqbank/config"
	"mcqbank/handlers"
	"mcqbank/middleware"
	"mcqbank/models"
	"mcqbank/routes"
	"mcqbank/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.MCQ{},
		&models.Choice{},
		&models.Attempt{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, redisClient, cfg.JWTSecret)
	mcqService := services.NewMCQService(db)
	attemptService := services.NewAttemptService(db)
	generator := services.NewHTTPGenerator(cfg.GeneratorURL, cfg.GeneratorAPIKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	mcqHandler := handlers.NewMCQHandler(mcqService, generator)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Setup Gin router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, mcqHandler, attemptHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
