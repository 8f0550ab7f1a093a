package dto

import "time"

// WritingFeedbackRequestDTO asks for AI feedback on an IELTS writing task.
type WritingFeedbackRequestDTO struct {
	UserID   *uint  `json:"user_id"` // Temporary, for non-auth user identification
	TaskType string `json:"task_type" binding:"required,oneof=task1 task2"`
	Prompt   string `json:"prompt" binding:"required"`
	Essay    string `json:"essay" binding:"required"`
}

type WritingFeedbackResponseDTO struct {
	ID            uint      `json:"id"`
	UserID        *uint     `json:"user_id,omitempty"`
	TaskType      string    `json:"task_type"`
	WordCount     int       `json:"word_count"`
	Feedback      string    `json:"feedback"`
	EstimatedBand *float64  `json:"estimated_band,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
