package dto

import (
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
)

// QuestionResponseDTO is used for displaying question details to users. It
// never carries the answer key.
type QuestionResponseDTO struct {
	ID          uint     `json:"id"`
	QuestionKey string   `json:"question_key"`
	Number      int      `json:"number"`
	Section     int      `json:"section"`
	Type        string   `json:"type"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty" copier:"-"`
}

// TestResponseDTO is used for displaying full test details to users.
type TestResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Module          string                `json:"module"`
	Description     string                `json:"description,omitempty"`
	DurationMinutes int                   `json:"duration_minutes"`
	Published       bool                  `json:"published"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Module          string    `json:"module"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// --- DTOs for Test Attempts ---

// AttemptStartDTO starts a new attempt.
type AttemptStartDTO struct {
	UserID *uint `json:"user_id"` // Temporary, for non-auth user identification
}

// AttemptAnswersDTO carries answers and review flags keyed by question key.
// Used both for saving progress and for the final submission.
type AttemptAnswersDTO struct {
	Answers map[string]grading.Answer `json:"answers" swaggertype:"object"`
	Flags   map[string]bool           `json:"flags"`
}

// QuestionReviewDTO shows how one question was graded. Only built for
// completed attempts.
type QuestionReviewDTO struct {
	QuestionKey   string         `json:"question_key"`
	Number        int            `json:"number"`
	Section       int            `json:"section"`
	Type          string         `json:"type"`
	UserAnswer    grading.Answer `json:"user_answer" swaggertype:"array,string"`
	CorrectAnswer grading.Answer `json:"correct_answer" swaggertype:"array,string"`
	Correct       bool           `json:"correct"`
	Flagged       bool           `json:"flagged"`
}

// TestAttemptDetailDTO is for displaying the full details of a specific test attempt.
type TestAttemptDetailDTO struct {
	ID          uint                      `json:"id"`
	TestID      uint                      `json:"test_id"`
	TestTitle   string                    `json:"test_title,omitempty"`
	UserID      *uint                     `json:"user_id,omitempty"`
	Status      string                    `json:"status"`
	StartedAt   time.Time                 `json:"started_at"`
	SubmittedAt *time.Time                `json:"submitted_at,omitempty"`
	Answers     map[string]grading.Answer `json:"answers" swaggertype:"object"`
	Flags       map[string]bool           `json:"flags"`
	Result      *grading.ScoreResult      `json:"result,omitempty"`
	Review      []QuestionReviewDTO       `json:"review,omitempty"`
}

// TestAttemptSummaryDTO is for listing a user's attempts for a particular test.
type TestAttemptSummaryDTO struct {
	ID             uint       `json:"id"`
	TestID         uint       `json:"test_id"`
	UserID         *uint      `json:"user_id,omitempty"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	RawScore       *int       `json:"raw_score,omitempty"`
	TotalQuestions *int       `json:"total_questions,omitempty"`
	Band           *float64   `json:"band,omitempty"`
}

// SubmitResultDTO is the response to a submission. Saved is false when the
// score was computed but could not be stored; the client may retry.
type SubmitResultDTO struct {
	Attempt   TestAttemptDetailDTO `json:"attempt"`
	Saved     bool                 `json:"saved"`
	SaveError string               `json:"save_error,omitempty"`
}
