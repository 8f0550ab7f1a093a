package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTestService_CreateTest(t *testing.T) {
	f := newFixture(t)
	questions := append(mixedTest(),
		q("q2", 5, grading.TrueFalseNotGiven, grading.Text("maybe")),
	)

	resp, err := f.admin.CreateTest(context.Background(), dto.TestCreateDTO{
		Title:     "Cambridge 18 Reading Test 1",
		Module:    model.ModuleReading,
		Questions: questions,
	})
	require.NoError(t, err)

	assert.False(t, resp.Test.Published)
	require.Len(t, resp.Test.Questions, 5)
	assert.Equal(t, "q1", resp.Test.Questions[0].QuestionKey)
	assert.Equal(t, 1, resp.Test.Questions[0].Section)
	assert.Equal(t, []string{"A", "B", "C", "D"}, resp.Test.Questions[2].Options)

	codes := make([]string, 0, len(resp.Warnings))
	for _, w := range resp.Warnings {
		codes = append(codes, w.Code)
	}
	assert.ElementsMatch(t, []string{grading.WarnDuplicateQuestionID, grading.WarnKeyOutsideVocabulary}, codes)
}

func TestAdminTestService_CreateTestRejectsBrokenKeys(t *testing.T) {
	f := newFixture(t)
	_, err := f.admin.CreateTest(context.Background(), dto.TestCreateDTO{
		Title:  "Broken",
		Module: model.ModuleListening,
		Questions: []dto.QuestionCreateDTO{
			q("q1", 1, grading.QuestionType("essay"), grading.Text("x")),
			q("q2", 1, grading.FillBlank, grading.Text("a")),
			q("q3", 3, grading.FillBlank, grading.Text("   ")),
			q("q4", 4, grading.Matching, grading.Text("A")),
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 4)

	all, err := f.testRepo.FindAllWithQuestionCount(context.Background(), "", false)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAdminTestService_MultipleChoiceKeyOutsideOptions(t *testing.T) {
	f := newFixture(t)
	mc := q("q1", 1, grading.MultipleChoice, grading.Text("E"))
	mc.Options = []string{"A", "B", "C", "D"}

	resp, err := f.admin.CreateTest(context.Background(), dto.TestCreateDTO{Title: "MC", Module: model.ModuleReading, Questions: []dto.QuestionCreateDTO{mc}})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, warnKeyNotInOptions, resp.Warnings[0].Code)
}

func TestAdminTestService_UpdateTest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.admin.CreateTest(ctx, dto.TestCreateDTO{Title: "Draft", Module: model.ModuleReading, Questions: mixedTest()})
	require.NoError(t, err)

	updated, err := f.admin.UpdateTest(ctx, draft.Test.ID, dto.TestCreateDTO{
		Title:     "Draft v2",
		Module:    model.ModuleListening,
		Questions: []dto.QuestionCreateDTO{q("s1", 1, grading.ShortAnswer, grading.Text("Tuesday"))},
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", updated.Test.Title)
	assert.Equal(t, model.ModuleListening, updated.Test.Module)
	require.Len(t, updated.Test.Questions, 1)

	_, err = f.admin.PublishTest(ctx, draft.Test.ID)
	require.NoError(t, err)
	_, err = f.admin.UpdateTest(ctx, draft.Test.ID, dto.TestCreateDTO{Title: "Draft v3", Module: model.ModuleReading, Questions: mixedTest()})
	assert.ErrorIs(t, err, ErrTestPublished)

	_, err = f.admin.UpdateTest(ctx, 999, dto.TestCreateDTO{Title: "x", Module: model.ModuleReading, Questions: mixedTest()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminTestService_PublishAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.admin.PublishTest(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	id := f.publishedTest(t, "Live", mixedTest()...)
	again, err := f.admin.PublishTest(ctx, id)
	require.NoError(t, err)
	assert.True(t, again.Published)

	require.NoError(t, f.admin.DeleteTest(ctx, id))
	assert.ErrorIs(t, f.admin.DeleteTest(ctx, id), ErrNotFound)
}

func TestUserTestService_OnlyPublishedTestsAreVisible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	users := NewUserTestService(f.testRepo)

	draft, err := f.admin.CreateTest(ctx, dto.TestCreateDTO{Title: "Draft", Module: model.ModuleReading, Questions: mixedTest()})
	require.NoError(t, err)
	liveID := f.publishedTest(t, "Live", mixedTest()...)

	tests, err := users.GetAllTests(ctx, "")
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, liveID, tests[0].ID)
	assert.Equal(t, 4, tests[0].QuestionCount)

	tests, err = users.GetAllTests(ctx, model.ModuleListening)
	require.NoError(t, err)
	assert.Empty(t, tests)

	details, err := users.GetTestDetails(ctx, liveID)
	require.NoError(t, err)
	assert.Len(t, details.Questions, 4)

	_, err = users.GetTestDetails(ctx, draft.Test.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
