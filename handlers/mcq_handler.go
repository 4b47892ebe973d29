package handlers

import (
	"log"
	"net/http"
	"strconv"

	"mcqbank/middleware"
	"mcqbank/services"

	"github.com/gin-gonic/gin"
)

type MCQHandler struct {
	mcqService *services.MCQService
	generator  services.Generator
}

func NewMCQHandler(mcqService *services.MCQService, generator services.Generator) *MCQHandler {
	return &MCQHandler{
		mcqService: mcqService,
		generator:  generator,
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid MCQ ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *MCQHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateMCQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mcq, err := h.mcqService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mcq)
}

func (h *MCQHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(services.DefaultPageSize)))

	result, err := h.mcqService.List(userID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MCQHandler) GetByID(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	mcq, err := h.mcqService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mcq)
}

func (h *MCQHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateMCQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mcq, err := h.mcqService.Update(id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mcq)
}

func (h *MCQHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.mcqService.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "MCQ deleted successfully"})
}

// Generate asks the external content generator for a candidate MCQ and feeds
// it through the ordinary create path, so generated content gets exactly the
// same validation as manual input.
func (h *MCQHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate, err := h.generator.Generate(c.Request.Context(), &req)
	if err != nil {
		log.Printf("request %s: %v", c.GetString(middleware.RequestIDKey), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Content generator unavailable"})
		return
	}

	mcq, err := h.mcqService.Create(userID, &services.CreateMCQRequest{
		Title:       candidate.Title,
		Description: candidate.Description,
		Question:    candidate.Question,
		Choices:     candidate.Choices,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mcq)
}
