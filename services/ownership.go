package services

import (
	"mcqbank/models"
)

// AssertOwner allows a mutation only when the acting user created the MCQ.
// Pure comparison; callers must run it before any write begins.
func AssertOwner(mcq *models.MCQ, actorID uint) error {
	if mcq.CreatedBy != actorID {
		return &ForbiddenError{Message: "only the creator may modify this question"}
	}
	return nil
}
