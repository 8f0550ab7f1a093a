package repository

import (
	"context"

	"github.com/lshigami/ieltsprep/internal/model"
	"gorm.io/gorm"
)

type WritingFeedbackRepository interface {
	Create(ctx context.Context, feedback *model.WritingFeedback) error
	FindByID(ctx context.Context, id uint) (*model.WritingFeedback, error)
	FindAllByUser(ctx context.Context, userID *uint) ([]model.WritingFeedback, error)
}

type writingFeedbackRepository struct {
	db *gorm.DB
}

func NewWritingFeedbackRepository(db *gorm.DB) WritingFeedbackRepository {
	return &writingFeedbackRepository{db: db}
}

func (r *writingFeedbackRepository) Create(ctx context.Context, feedback *model.WritingFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *writingFeedbackRepository) FindByID(ctx context.Context, id uint) (*model.WritingFeedback, error) {
	var feedback model.WritingFeedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *writingFeedbackRepository) FindAllByUser(ctx context.Context, userID *uint) ([]model.WritingFeedback, error) {
	var feedbacks []model.WritingFeedback
	query := r.db.WithContext(ctx)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	// Latest first
	if err := query.Order("submitted_at desc").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
