package repository

import (
	"context"

	"github.com/lshigami/ieltsprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByTestID(ctx context.Context, testID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("number ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
