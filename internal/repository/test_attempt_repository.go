package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrAlreadyFinalized is returned when a write targets an attempt that is no
// longer in progress.
var ErrAlreadyFinalized = errors.New("attempt already finalized")

type TestAttemptRepository interface {
	Create(ctx context.Context, attempt *model.TestAttempt) error
	FindByID(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindByIDWithTest(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error)
	SaveProgress(ctx context.Context, id uint, answers map[string]grading.Answer, flags map[string]bool) error
	Finalize(ctx context.Context, id uint, answers map[string]grading.Answer, flags map[string]bool, result grading.ScoreResult, submittedAt time.Time) error
	OverrideResult(ctx context.Context, id uint, result grading.ScoreResult, at time.Time) error
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *testAttemptRepository) FindByID(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).First(&attempt, id).Error
	return &attempt, err
}

// FindByIDWithTest loads the attempt with its test and questions. Deleted tests
// are still loaded so past attempts keep their review; callers check
// Test.DeletedAt before grading.
func (r *testAttemptRepository) FindByIDWithTest(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Test", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Preload("Test.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped().Order("questions.number ASC, questions.id ASC")
		}).
		First(&attempt, id).Error
	return &attempt, err
}

func (r *testAttemptRepository) FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Where("test_id = ?", testID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("started_at DESC, id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) SaveProgress(ctx context.Context, id uint, answers map[string]grading.Answer, flags map[string]bool) error {
	res := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ? AND status = ?", id, model.AttemptStatusInProgress).
		Updates(map[string]interface{}{
			"answers": datatypes.NewJSONType(answers),
			"flags":   datatypes.NewJSONType(flags),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}

// Finalize stores the final answers and result in one conditional update, so
// of two racing submissions only the first is persisted.
func (r *testAttemptRepository) Finalize(ctx context.Context, id uint, answers map[string]grading.Answer, flags map[string]bool, result grading.ScoreResult, submittedAt time.Time) error {
	values := resultColumns(result)
	values["answers"] = datatypes.NewJSONType(answers)
	values["flags"] = datatypes.NewJSONType(flags)
	values["status"] = model.AttemptStatusCompleted
	values["submitted_at"] = submittedAt

	res := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ? AND status = ?", id, model.AttemptStatusInProgress).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}

// OverrideResult replaces the stored result of a completed attempt.
func (r *testAttemptRepository) OverrideResult(ctx context.Context, id uint, result grading.ScoreResult, at time.Time) error {
	values := resultColumns(result)
	values["overridden_at"] = at

	res := r.db.WithContext(ctx).Model(&model.TestAttempt{}).
		Where("id = ? AND status = ?", id, model.AttemptStatusCompleted).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func resultColumns(result grading.ScoreResult) map[string]interface{} {
	return map[string]interface{}{
		"raw_score":       result.Correct,
		"total_questions": result.Total,
		"band":            result.Band,
		"section_scores":  datatypes.NewJSONType(result.SectionScores),
		"type_scores":     datatypes.NewJSONType(result.TypeScores),
		"warnings":        datatypes.NewJSONType(result.Warnings),
	}
}
