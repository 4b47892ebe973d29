package routes

import (
	"net/http"

	"mcqbank/handlers"
	"mcqbank/middleware"
	"mcqbank/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	mcqHandler *handlers.MCQHandler,
	attemptHandler *handlers.AttemptHandler,
	authService *services.AuthService,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)
			protected.POST("/auth/logout", authHandler.Logout)

			// MCQ routes
			mcqs := protected.Group("/mcqs")
			{
				mcqs.GET("", mcqHandler.List)
				mcqs.POST("", mcqHandler.Create)
				mcqs.POST("/generate", mcqHandler.Generate)
				mcqs.GET("/:id", mcqHandler.GetByID)
				mcqs.PUT("/:id", mcqHandler.Update)
				mcqs.DELETE("/:id", mcqHandler.Delete)

				// Attempt routes
				mcqs.POST("/:id/attempts", attemptHandler.Record)
				mcqs.GET("/:id/attempts", attemptHandler.ListForUser)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
