package models

import (
	"time"
)

type MCQ struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Question    string    `json:"question" gorm:"size:1000;not null"`
	CreatedBy   uint      `json:"created_by" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Choices  []Choice  `json:"choices,omitempty" gorm:"foreignKey:MCQID;constraint:OnDelete:CASCADE"`
	Attempts []Attempt `json:"attempts,omitempty" gorm:"foreignKey:MCQID;constraint:OnDelete:CASCADE"`
}
