package model

import (
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
	"gorm.io/gorm"
)

const (
	ModuleReading   = "reading"
	ModuleListening = "listening"
)

type Test struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;uniqueIndex"` // "Cambridge 18 Reading Test 1"
	Module          string         `json:"module" gorm:"not null;index"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes int            `json:"duration_minutes"`
	Published       bool           `json:"published" gorm:"not null;default:false"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// AnswerKey converts the test and its loaded questions into the grading view.
func (t *Test) AnswerKey() grading.Test {
	key := grading.Test{ID: t.ID, Questions: make([]grading.Question, 0, len(t.Questions))}
	for _, q := range t.Questions {
		key.Questions = append(key.Questions, q.ForGrading())
	}
	return key
}
