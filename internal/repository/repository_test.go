package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Test{}, &model.Question{}, &model.TestAttempt{}, &model.WritingFeedback{}))
	return db
}

func question(key string, number int, qType grading.QuestionType, answer grading.Answer) model.Question {
	return model.Question{
		QuestionKey:   key,
		Number:        number,
		Section:       1,
		Type:          string(qType),
		CorrectAnswer: datatypes.NewJSONType(answer),
	}
}

func seedTest(t *testing.T, repo TestRepository, title string, published bool, questions ...model.Question) *model.Test {
	t.Helper()
	test := &model.Test{Title: title, Module: model.ModuleReading, Published: published, Questions: questions}
	require.NoError(t, repo.Create(context.Background(), test))
	return test
}

func TestTestRepository_FindByIDWithQuestionsOrdersByNumber(t *testing.T) {
	repo := NewTestRepository(newTestDB(t))
	ctx := context.Background()
	test := seedTest(t, repo, "Reading 1", false,
		question("q3", 3, grading.Matching, grading.List("B", "A")),
		question("q1", 1, grading.FillBlank, grading.Text("river")),
		question("q2", 2, grading.TrueFalseNotGiven, grading.Text("not given")),
	)

	got, err := repo.FindByIDWithQuestions(ctx, test.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, "q1", got.Questions[0].QuestionKey)
	assert.Equal(t, "q2", got.Questions[1].QuestionKey)
	assert.Equal(t, "q3", got.Questions[2].QuestionKey)
	assert.Equal(t, grading.Text("river"), got.Questions[0].CorrectAnswer.Data())
	assert.Equal(t, grading.List("B", "A"), got.Questions[2].CorrectAnswer.Data())
}

func TestTestRepository_FindAllWithQuestionCount(t *testing.T) {
	repo := NewTestRepository(newTestDB(t))
	ctx := context.Background()
	seedTest(t, repo, "Draft", false, question("q1", 1, grading.FillBlank, grading.Text("a")))
	seedTest(t, repo, "Live", true,
		question("q1", 1, grading.FillBlank, grading.Text("a")),
		question("q2", 2, grading.FillBlank, grading.Text("b")),
	)

	all, err := repo.FindAllWithQuestionCount(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	published, err := repo.FindAllWithQuestionCount(ctx, model.ModuleReading, true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live", published[0].Title)
	assert.Equal(t, 2, published[0].QuestionCount)

	listening, err := repo.FindAllWithQuestionCount(ctx, model.ModuleListening, false)
	require.NoError(t, err)
	assert.Empty(t, listening)
}

func TestTestRepository_ReplaceContent(t *testing.T) {
	repo := NewTestRepository(newTestDB(t))
	ctx := context.Background()
	test := seedTest(t, repo, "Draft", false,
		question("q1", 1, grading.FillBlank, grading.Text("a")),
		question("q2", 2, grading.FillBlank, grading.Text("b")),
	)

	test.Title = "Draft v2"
	test.Questions = []model.Question{question("x1", 1, grading.YesNoNotGiven, grading.Text("yes"))}
	require.NoError(t, repo.ReplaceContent(ctx, test))

	got, err := repo.FindByIDWithQuestions(ctx, test.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", got.Title)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "x1", got.Questions[0].QuestionKey)
}

func TestTestRepository_PublishAndDelete(t *testing.T) {
	repo := NewTestRepository(newTestDB(t))
	ctx := context.Background()
	test := seedTest(t, repo, "Draft", false, question("q1", 1, grading.FillBlank, grading.Text("a")))

	require.NoError(t, repo.Publish(ctx, test.ID, time.Now()))
	got, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.NotNil(t, got.PublishedAt)

	assert.ErrorIs(t, repo.Publish(ctx, 999, time.Now()), gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(ctx, test.ID))
	_, err = repo.FindByID(ctx, test.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, test.ID), gorm.ErrRecordNotFound)
}

func TestQuestionRepository_FindByTestID(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, NewTestRepository(db), "Reading", false,
		question("q2", 2, grading.FillBlank, grading.Text("b")),
		question("q1", 1, grading.FillBlank, grading.Text("a")),
	)

	questions, err := NewQuestionRepository(db).FindByTestID(context.Background(), test.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].QuestionKey)
}

func newAttempt(t *testing.T, repo TestAttemptRepository, testID uint) *model.TestAttempt {
	t.Helper()
	attempt := &model.TestAttempt{
		TestID:    testID,
		Status:    model.AttemptStatusInProgress,
		StartedAt: time.Now(),
		Answers:   datatypes.NewJSONType(map[string]grading.Answer{}),
		Flags:     datatypes.NewJSONType(map[string]bool{}),
	}
	require.NoError(t, repo.Create(context.Background(), attempt))
	return attempt
}

func sampleResult() grading.ScoreResult {
	return grading.ScoreResult{
		Correct:       3,
		Total:         4,
		Band:          7,
		SectionScores: map[int]grading.Tally{1: {Correct: 3, Total: 4, Band: 7}},
		TypeScores:    map[string]grading.Tally{"tfng": {Correct: 3, Total: 4, Band: 7}},
	}
}

func TestTestAttemptRepository_FinalizeOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, NewTestRepository(db), "Reading", true, question("q1", 1, grading.FillBlank, grading.Text("a")))
	repo := NewTestAttemptRepository(db)
	ctx := context.Background()
	attempt := newAttempt(t, repo, test.ID)

	answers := map[string]grading.Answer{"q1": grading.Text("a")}
	require.NoError(t, repo.SaveProgress(ctx, attempt.ID, answers, map[string]bool{"q1": true}))

	result := sampleResult()
	require.NoError(t, repo.Finalize(ctx, attempt.ID, answers, nil, result, time.Now()))

	second := result
	second.Correct = 0
	assert.ErrorIs(t, repo.Finalize(ctx, attempt.ID, answers, nil, second, time.Now()), ErrAlreadyFinalized)
	assert.ErrorIs(t, repo.SaveProgress(ctx, attempt.ID, answers, nil), ErrAlreadyFinalized)

	got, err := repo.FindByIDWithTest(ctx, attempt.ID)
	require.NoError(t, err)
	assert.True(t, got.Finalized())
	assert.Equal(t, "Reading", got.Test.Title)
	require.Len(t, got.Test.Questions, 1)
	stored, ok := got.Result()
	require.True(t, ok)
	assert.Equal(t, 3, stored.Correct)
	assert.Equal(t, 7.0, stored.Band)
	assert.Equal(t, result.SectionScores, stored.SectionScores)
	assert.Equal(t, answers, got.Answers.Data())
}

func TestTestAttemptRepository_FindByIDWithTestLoadsDeletedTest(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tests := NewTestRepository(db)
	test := seedTest(t, tests, "Reading", true,
		question("q2", 2, grading.FillBlank, grading.Text("b")),
		question("q1", 1, grading.FillBlank, grading.Text("a")),
	)
	repo := NewTestAttemptRepository(db)
	attempt := newAttempt(t, repo, test.ID)

	require.NoError(t, tests.Delete(ctx, test.ID))

	got, err := repo.FindByIDWithTest(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, test.ID, got.Test.ID)
	assert.True(t, got.Test.DeletedAt.Valid)
	require.Len(t, got.Test.Questions, 2)
	assert.Equal(t, "q1", got.Test.Questions[0].QuestionKey)
}

func TestTestAttemptRepository_OverrideResult(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, NewTestRepository(db), "Reading", true, question("q1", 1, grading.FillBlank, grading.Text("a")))
	repo := NewTestAttemptRepository(db)
	ctx := context.Background()
	attempt := newAttempt(t, repo, test.ID)

	assert.ErrorIs(t, repo.OverrideResult(ctx, attempt.ID, sampleResult(), time.Now()), gorm.ErrRecordNotFound)

	require.NoError(t, repo.Finalize(ctx, attempt.ID, nil, nil, sampleResult(), time.Now()))
	rescored := sampleResult()
	rescored.Correct, rescored.Band = 4, 9
	require.NoError(t, repo.OverrideResult(ctx, attempt.ID, rescored, time.Now()))

	got, err := repo.FindByID(ctx, attempt.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OverriddenAt)
	require.NotNil(t, got.Band)
	assert.Equal(t, 9.0, *got.Band)
	assert.Equal(t, 4, *got.RawScore)
}

func TestTestAttemptRepository_FindAllByTestAndUser(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, NewTestRepository(db), "Reading", true, question("q1", 1, grading.FillBlank, grading.Text("a")))
	repo := NewTestAttemptRepository(db)
	ctx := context.Background()

	alice, bob := uint(1), uint(2)
	for _, uid := range []*uint{&alice, &alice, &bob} {
		attempt := &model.TestAttempt{TestID: test.ID, UserID: uid, Status: model.AttemptStatusInProgress, StartedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, attempt))
	}

	mine, err := repo.FindAllByTestAndUser(ctx, test.ID, &alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.FindAllByTestAndUser(ctx, test.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWritingFeedbackRepository(t *testing.T) {
	repo := NewWritingFeedbackRepository(newTestDB(t))
	ctx := context.Background()
	user := uint(7)
	band := 6.5
	record := &model.WritingFeedback{UserID: &user, TaskType: model.WritingTask2, Prompt: "p", Essay: "e", EstimatedBand: &band}
	require.NoError(t, repo.Create(ctx, record))
	require.NoError(t, repo.Create(ctx, &model.WritingFeedback{TaskType: model.WritingTask1, Prompt: "p", Essay: "e"}))

	got, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.5, *got.EstimatedBand)

	mine, err := repo.FindAllByUser(ctx, &user)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
