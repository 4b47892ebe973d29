package models

import (
	"time"
)

type Choice struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	MCQID      uint       `json:"mcq_id" gorm:"not null;index"`
	ChoiceText string     `json:"choice_text" gorm:"not null"`
	IsCorrect  StoredBool `json:"is_correct" gorm:"type:smallint;not null;default:0"`
	OrderIndex int        `json:"order_index" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
