package dto

import "github.com/lshigami/ieltsprep/internal/grading"

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	QuestionKey   string         `json:"question_key" binding:"required"`
	Number        int            `json:"number" binding:"required,min=1"`
	Section       int            `json:"section" binding:"omitempty,min=1,max=4"`
	Type          string         `json:"type" binding:"required,question_type"`
	Prompt        string         `json:"prompt"`
	Options       []string       `json:"options"`
	CorrectAnswer grading.Answer `json:"correct_answer" swaggertype:"array,string"`
}

// TestCreateDTO is for admin to create (or fully replace) a test with its answer key.
type TestCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Module          string              `json:"module" binding:"required,oneof=reading listening"`
	Description     string              `json:"description,omitempty"`
	DurationMinutes int                 `json:"duration_minutes" binding:"omitempty,min=1,max=180"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// AdminTestResponseDTO returns the stored test with its authoring warnings.
type AdminTestResponseDTO struct {
	Test     TestResponseDTO   `json:"test"`
	Warnings []grading.Warning `json:"warnings,omitempty"`
}

// RescoreResponseDTO is returned by the administrative rescore.
type RescoreResponseDTO struct {
	Previous *grading.ScoreResult `json:"previous,omitempty"`
	Current  grading.ScoreResult  `json:"current"`
	Attempt  TestAttemptDetailDTO `json:"attempt"`
}
