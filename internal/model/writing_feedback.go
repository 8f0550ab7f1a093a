package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	WritingTask1 = "task1"
	WritingTask2 = "task2"
)

// WritingFeedback is one AI-reviewed writing task response.
type WritingFeedback struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        *uint          `json:"user_id,omitempty" gorm:"index"`
	TaskType      string         `json:"task_type" gorm:"not null"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Essay         string         `json:"essay" gorm:"type:text;not null"`
	WordCount     int            `json:"word_count"`
	Feedback      string         `json:"feedback" gorm:"type:text"`
	EstimatedBand *float64       `json:"estimated_band,omitempty"`
	SubmittedAt   time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
