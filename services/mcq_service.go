package services

import (
	"fmt"
	"strings"

	"mcqbank/models"

	"gorm.io/gorm"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
	maxQuestionLen    = 1000

	DefaultPageSize = 10
)

type MCQService struct {
	db *gorm.DB
}

func NewMCQService(db *gorm.DB) *MCQService {
	return &MCQService{db: db}
}

type CreateMCQRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Question    string        `json:"question" binding:"required"`
	Choices     []ChoiceInput `json:"choices" binding:"required"`
}

// UpdateMCQRequest replaces the whole choice set. Empty title/description/
// question keep the current value.
type UpdateMCQRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Question    string        `json:"question"`
	Choices     []ChoiceInput `json:"choices" binding:"required"`
}

type MCQPage struct {
	Items      []models.MCQ `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

func validateMCQFields(title, description, question string) error {
	var problems []string
	if strings.TrimSpace(title) == "" {
		problems = append(problems, "title is required")
	} else if len(title) > maxTitleLen {
		problems = append(problems, fmt.Sprintf("title must be at most %d characters", maxTitleLen))
	}
	if len(description) > maxDescriptionLen {
		problems = append(problems, fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}
	if strings.TrimSpace(question) == "" {
		problems = append(problems, "question is required")
	} else if len(question) > maxQuestionLen {
		problems = append(problems, fmt.Sprintf("question must be at most %d characters", maxQuestionLen))
	}
	if len(problems) > 0 {
		return newValidationError(problems...)
	}
	return nil
}

// Create validates the fields and choice set, then persists the MCQ and its
// choices in one transaction. Submitted choice order establishes the order
// index unless explicit indices are given.
func (s *MCQService) Create(ownerID uint, req *CreateMCQRequest) (*models.MCQ, error) {
	if err := validateMCQFields(req.Title, req.Description, req.Question); err != nil {
		return nil, err
	}
	if err := ValidateChoiceSet(req.Choices); err != nil {
		return nil, err
	}

	mcq := models.MCQ{
		Title:       req.Title,
		Description: req.Description,
		Question:    req.Question,
		CreatedBy:   ownerID,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&mcq).Error; err != nil {
		tx.Rollback()
		return nil, &StorageError{Op: "create mcq", Err: err}
	}

	if err := insertChoices(tx, mcq.ID, req.Choices); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, &StorageError{Op: "create mcq", Err: err}
	}

	return s.GetByID(mcq.ID)
}

func insertChoices(tx *gorm.DB, mcqID uint, choices []ChoiceInput) error {
	for i, c := range choices {
		choice := models.Choice{
			MCQID:      mcqID,
			ChoiceText: strings.TrimSpace(c.ChoiceText),
			IsCorrect:  models.StoredBool(c.IsCorrect),
			OrderIndex: orderIndexFor(c, i),
		}
		if err := tx.Create(&choice).Error; err != nil {
			return &StorageError{Op: "create choice", Err: err}
		}
	}
	return nil
}

// GetByID returns the aggregate with choices in display order. Reads are not
// owner-scoped; only mutations are.
func (s *MCQService) GetByID(id uint) (*models.MCQ, error) {
	var mcq models.MCQ
	err := s.db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.order_index ASC")
		}).
		First(&mcq, id).Error
	if err != nil {
		return nil, wrapStorageErr("get mcq", "mcq", id, err)
	}
	return &mcq, nil
}

// Update replaces the MCQ's fields and its entire choice set in one
// transaction. Old choices are deleted, not diffed; attempts referencing them
// are deleted in the same transaction so no attempt ever points at a choice
// row that no longer exists.
func (s *MCQService) Update(id uint, actorID uint, req *UpdateMCQRequest) (*models.MCQ, error) {
	mcq, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(mcq, actorID); err != nil {
		return nil, err
	}

	title := mcq.Title
	if req.Title != "" {
		title = req.Title
	}
	description := mcq.Description
	if req.Description != "" {
		description = req.Description
	}
	question := mcq.Question
	if req.Question != "" {
		question = req.Question
	}

	if err := validateMCQFields(title, description, question); err != nil {
		return nil, err
	}
	if err := ValidateChoiceSet(req.Choices); err != nil {
		return nil, err
	}

	mcq.Title = title
	mcq.Description = description
	mcq.Question = question
	mcq.Choices = nil
	mcq.Attempts = nil

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Omit("Choices", "Attempts").Save(mcq).Error; err != nil {
		tx.Rollback()
		return nil, &StorageError{Op: "update mcq", Err: err}
	}

	if err := tx.Where("mcq_id = ?", id).Delete(&models.Attempt{}).Error; err != nil {
		tx.Rollback()
		return nil, &StorageError{Op: "update mcq", Err: err}
	}

	if err := tx.Where("mcq_id = ?", id).Delete(&models.Choice{}).Error; err != nil {
		tx.Rollback()
		return nil, &StorageError{Op: "update mcq", Err: err}
	}

	if err := insertChoices(tx, id, req.Choices); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, &StorageError{Op: "update mcq", Err: err}
	}

	return s.GetByID(id)
}

// Delete cascades: attempts first, then choices, then the MCQ row, all in one
// transaction.
func (s *MCQService) Delete(id uint, actorID uint) error {
	mcq, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := AssertOwner(mcq, actorID); err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("mcq_id = ?", id).Delete(&models.Attempt{}).Error; err != nil {
		tx.Rollback()
		return &StorageError{Op: "delete mcq", Err: err}
	}

	if err := tx.Where("mcq_id = ?", id).Delete(&models.Choice{}).Error; err != nil {
		tx.Rollback()
		return &StorageError{Op: "delete mcq", Err: err}
	}

	if err := tx.Delete(&models.MCQ{}, id).Error; err != nil {
		tx.Rollback()
		return &StorageError{Op: "delete mcq", Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		return &StorageError{Op: "delete mcq", Err: err}
	}

	return nil
}

// List returns one page of the owner's MCQs, newest first, optionally
// filtered to those whose title or question contains the search term
// case-insensitively. Pages are 1-indexed; a page past the end yields an
// empty slice, not an error.
func (s *MCQService) List(ownerID uint, search string, page, pageSize int) (*MCQPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	query := s.db.Model(&models.MCQ{}).Where("created_by = ?", ownerID)
	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(question) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, &StorageError{Op: "list mcqs", Err: err}
	}

	items := []models.MCQ{}
	err := query.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.order_index ASC")
		}).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error
	if err != nil {
		return nil, &StorageError{Op: "list mcqs", Err: err}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &MCQPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
