package models

import (
	"time"
)

// Attempt is append-only: rows are never updated, and are removed only when
// the MCQ (or its choice set) they reference is removed.
type Attempt struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	MCQID            uint       `json:"mcq_id" gorm:"not null;index"`
	UserID           uint       `json:"user_id" gorm:"not null;index"`
	SelectedChoiceID uint       `json:"selected_choice_id" gorm:"not null"`
	IsCorrect        StoredBool `json:"is_correct" gorm:"type:smallint;not null"`
	AttemptedAt      time.Time  `json:"attempted_at" gorm:"autoCreateTime"`

	// Relationships
	SelectedChoice Choice `json:"selected_choice,omitempty" gorm:"foreignKey:SelectedChoiceID;constraint:OnDelete:CASCADE"`
}
