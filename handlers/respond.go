package handlers

import (
	"errors"
	"log"
	"net/http"

	"mcqbank/middleware"
	"mcqbank/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP statuses. Storage
// failures are logged with detail server-side and surfaced opaquely.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var forbiddenErr *services.ForbiddenError
	var storageErr *services.StorageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "problems": validationErr.Problems})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Error()})
	case errors.As(err, &storageErr):
		log.Printf("request %s: %s: %v", c.GetString(middleware.RequestIDKey), storageErr.Op, storageErr.Unwrap())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		log.Printf("request %s: %v", c.GetString(middleware.RequestIDKey), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID.(uint), true
}
