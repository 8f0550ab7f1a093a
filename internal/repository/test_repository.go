package repository

import (
	"context"
	"time"

	"github.com/lshigami/ieltsprep/internal/model"
	"gorm.io/gorm"
)

// TestWithCount is a test row plus the number of its live questions.
type TestWithCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithQuestionCount(ctx context.Context, module string, publishedOnly bool) ([]TestWithCount, error)
	ReplaceContent(ctx context.Context, test *model.Test) error
	Publish(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Questions are created through the association.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.number ASC, questions.id ASC")
	}).First(&test, id).Error
	return &test, err
}

func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, module string, publishedOnly bool) ([]TestWithCount, error) {
	var results []TestWithCount
	query := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) as question_count").
		Where("tests.deleted_at IS NULL")
	if module != "" {
		query = query.Where("tests.module = ?", module)
	}
	if publishedOnly {
		query = query.Where("tests.published = ?", true)
	}
	err := query.Order("tests.created_at DESC").Scan(&results).Error
	return results, err
}

// ReplaceContent overwrites the test's metadata and swaps its whole question set.
func (r *testRepository) ReplaceContent(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Test{ID: test.ID}).Updates(map[string]interface{}{
			"title":            test.Title,
			"module":           test.Module,
			"description":      test.Description,
			"duration_minutes": test.DurationMinutes,
		}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("test_id = ?", test.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range test.Questions {
			test.Questions[i].ID = 0
			test.Questions[i].TestID = test.ID
		}
		if len(test.Questions) == 0 {
			return nil
		}
		return tx.Create(&test.Questions).Error
	})
}

func (r *testRepository) Publish(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"published": true, "published_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *testRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Test{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
