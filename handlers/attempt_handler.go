package handlers

import (
	"net/http"

	"mcqbank/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
	}
}

func (h *AttemptHandler) Record(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mcqID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.RecordAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.attemptService.Record(mcqID, userID, req.SelectedChoiceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *AttemptHandler) ListForUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mcqID, ok := parseIDParam(c)
	if !ok {
		return
	}

	attempts, err := h.attemptService.ListForUser(mcqID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}
