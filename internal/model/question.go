package model

import (
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint                               `gorm:"primarykey" json:"id"`
	TestID        uint                               `json:"test_id" gorm:"not null;index"`
	QuestionKey   string                             `json:"question_key" gorm:"not null;index"` // "q1"; unique within a test by convention only
	Number        int                                `json:"number" gorm:"not null"`
	Section       int                                `json:"section" gorm:"not null;default:1"` // passage or recording part
	Type          string                             `json:"type" gorm:"not null"`
	Prompt        string                             `json:"prompt" gorm:"type:text"`
	Options       datatypes.JSONType[[]string]       `json:"options,omitempty"`
	CorrectAnswer datatypes.JSONType[grading.Answer] `json:"-"`
	CreatedAt     time.Time                          `json:"created_at"`
	UpdatedAt     time.Time                          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt                     `gorm:"index" json:"-"`
}

func (q Question) ForGrading() grading.Question {
	return grading.Question{
		ID:            q.QuestionKey,
		Number:        q.Number,
		Section:       q.Section,
		Type:          grading.QuestionType(q.Type),
		CorrectAnswer: q.CorrectAnswer.Data(),
	}
}
