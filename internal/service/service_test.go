package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	db           *gorm.DB
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.TestAttemptRepository
	admin        *adminTestService
	attempts     *testAttemptService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Test{}, &model.Question{}, &model.TestAttempt{}, &model.WritingFeedback{}))

	f := &fixture{
		db:           db,
		testRepo:     repository.NewTestRepository(db),
		questionRepo: repository.NewQuestionRepository(db),
		attemptRepo:  repository.NewTestAttemptRepository(db),
	}
	f.admin = NewAdminTestService(f.testRepo, f.questionRepo).(*adminTestService)
	f.admin.now = func() time.Time { return fixedNow }
	f.attempts = NewTestAttemptService(f.testRepo, f.attemptRepo).(*testAttemptService)
	f.attempts.now = func() time.Time { return fixedNow }
	return f
}

func q(key string, number int, qType grading.QuestionType, answer grading.Answer) dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{QuestionKey: key, Number: number, Type: string(qType), CorrectAnswer: answer}
}

// publishedTest creates and publishes a test, returning its id.
func (f *fixture) publishedTest(t *testing.T, title string, questions ...dto.QuestionCreateDTO) uint {
	t.Helper()
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, dto.TestCreateDTO{Title: title, Module: model.ModuleReading, Questions: questions})
	require.NoError(t, err)
	_, err = f.admin.PublishTest(ctx, created.Test.ID)
	require.NoError(t, err)
	return created.Test.ID
}

// mixedTest is one question of each common type.
func mixedTest() []dto.QuestionCreateDTO {
	mc := q("q3", 3, grading.MultipleChoice, grading.Text("B"))
	mc.Options = []string{"A", "B", "C", "D"}
	return []dto.QuestionCreateDTO{
		q("q1", 1, grading.FillBlank, grading.Text("river")),
		q("q2", 2, grading.TrueFalseNotGiven, grading.Text("True")),
		mc,
		q("q4", 4, grading.Matching, grading.List("C", "A")),
	}
}
