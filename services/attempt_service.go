package services

import (
	"errors"

	"mcqbank/models"

	"gorm.io/gorm"
)

type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

type RecordAttemptRequest struct {
	SelectedChoiceID uint `json:"selected_choice_id" binding:"required"`
}

// Record appends an attempt against the MCQ, snapshotting the selected
// choice's correctness at the time of the attempt. The snapshot is never
// recomputed, even if the MCQ's correct choice changes later. There is no
// deduplication: every call produces a new row.
func (s *AttemptService) Record(mcqID, userID, selectedChoiceID uint) (*models.Attempt, error) {
	var mcq models.MCQ
	if err := s.db.First(&mcq, mcqID).Error; err != nil {
		return nil, wrapStorageErr("record attempt", "mcq", mcqID, err)
	}

	var choice models.Choice
	err := s.db.Where("id = ? AND mcq_id = ?", selectedChoiceID, mcqID).First(&choice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newValidationError("selected choice does not belong to this question")
		}
		return nil, &StorageError{Op: "record attempt", Err: err}
	}

	attempt := models.Attempt{
		MCQID:            mcqID,
		UserID:           userID,
		SelectedChoiceID: selectedChoiceID,
		IsCorrect:        choice.IsCorrect,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, &StorageError{Op: "record attempt", Err: err}
	}

	return &attempt, nil
}

// ListForUser returns the user's attempts against one MCQ, oldest first.
func (s *AttemptService) ListForUser(mcqID, userID uint) ([]models.Attempt, error) {
	attempts := []models.Attempt{}
	err := s.db.
		Where("mcq_id = ? AND user_id = ?", mcqID, userID).
		Order("attempted_at ASC, id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, &StorageError{Op: "list attempts", Err: err}
	}
	return attempts, nil
}
