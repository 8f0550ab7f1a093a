package model

import (
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
)

type TestAttempt struct {
	ID             uint                                          `gorm:"primarykey" json:"id"`
	TestID         uint                                          `json:"test_id" gorm:"not null;index"`
	Test           Test                                          `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserID         *uint                                         `json:"user_id,omitempty" gorm:"index"`
	Status         string                                        `json:"status" gorm:"not null;default:'in_progress';index"`
	StartedAt      time.Time                                     `json:"started_at"`
	SubmittedAt    *time.Time                                    `json:"submitted_at,omitempty"`
	Answers        datatypes.JSONType[map[string]grading.Answer] `json:"answers"`
	Flags          datatypes.JSONType[map[string]bool]           `json:"flags"`
	RawScore       *int                                          `json:"raw_score,omitempty"`
	TotalQuestions *int                                          `json:"total_questions,omitempty"`
	Band           *float64                                      `json:"band,omitempty"`
	SectionScores  datatypes.JSONType[map[int]grading.Tally]     `json:"section_scores"`
	TypeScores     datatypes.JSONType[map[string]grading.Tally]  `json:"type_scores"`
	Warnings       datatypes.JSONType[[]grading.Warning]         `json:"warnings"`
	OverriddenAt   *time.Time                                    `json:"overridden_at,omitempty"`
	CreatedAt      time.Time                                     `json:"created_at"`
	UpdatedAt      time.Time                                     `json:"updated_at"`
	DeletedAt      gorm.DeletedAt                                `gorm:"index" json:"-"`
}

func (a *TestAttempt) Finalized() bool {
	return a.Status == AttemptStatusCompleted
}

// ForGrading returns the grading view of the attempt. The maps are shared with
// the model; grading never writes to them.
func (a *TestAttempt) ForGrading() grading.Attempt {
	return grading.Attempt{
		ID:      a.ID,
		Answers: a.Answers.Data(),
		Flags:   a.Flags.Data(),
	}
}

// Result rebuilds the stored score, or returns false when the attempt has not
// been scored yet.
func (a *TestAttempt) Result() (grading.ScoreResult, bool) {
	if a.RawScore == nil || a.TotalQuestions == nil || a.Band == nil {
		return grading.ScoreResult{}, false
	}
	return grading.ScoreResult{
		Correct:       *a.RawScore,
		Total:         *a.TotalQuestions,
		SectionScores: a.SectionScores.Data(),
		TypeScores:    a.TypeScores.Data(),
		Band:          *a.Band,
		Warnings:      a.Warnings.Data(),
	}, true
}

// SetResult copies a computed score onto the attempt's result columns.
func (a *TestAttempt) SetResult(result grading.ScoreResult) {
	correct, total, band := result.Correct, result.Total, result.Band
	a.RawScore = &correct
	a.TotalQuestions = &total
	a.Band = &band
	a.SectionScores = datatypes.NewJSONType(result.SectionScores)
	a.TypeScores = datatypes.NewJSONType(result.TypeScores)
	a.Warnings = datatypes.NewJSONType(result.Warnings)
}
