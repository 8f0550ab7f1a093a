package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// TestAttemptService drives an attempt from start to submission.
type TestAttemptService interface {
	StartAttempt(ctx context.Context, testID uint, userID *uint) (*dto.TestAttemptDetailDTO, error)
	SaveProgress(ctx context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error)
	SubmitAttempt(ctx context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error)
	GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error)
	GetUserAttemptsForTest(ctx context.Context, testID uint, userID *uint) ([]dto.TestAttemptSummaryDTO, error)
}

type testAttemptService struct {
	testRepo        repository.TestRepository
	testAttemptRepo repository.TestAttemptRepository
	now             func() time.Time
}

func NewTestAttemptService(testRepo repository.TestRepository, testAttemptRepo repository.TestAttemptRepository) TestAttemptService {
	return &testAttemptService{
		testRepo:        testRepo,
		testAttemptRepo: testAttemptRepo,
		now:             time.Now,
	}
}

func (s *testAttemptService) StartAttempt(ctx context.Context, testID uint, userID *uint) (*dto.TestAttemptDetailDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFound(err, "test", testID)
	}
	if !test.Published {
		return nil, fmt.Errorf("test %d: %w", testID, ErrNotFound)
	}

	attempt := model.TestAttempt{
		TestID:    testID,
		UserID:    userID,
		Status:    model.AttemptStatusInProgress,
		StartedAt: s.now(),
		Answers:   datatypes.NewJSONType(map[string]grading.Answer{}),
		Flags:     datatypes.NewJSONType(map[string]bool{}),
	}
	if err := s.testAttemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("StartAttempt: Failed to create test attempt")
		return nil, fmt.Errorf("failed to create test attempt: %w", err)
	}
	attempt.Test = *test

	log.Info().Uint("attemptID", attempt.ID).Uint("testID", testID).Msg("Test attempt started")
	resp := toAttemptDetail(&attempt)
	return &resp, nil
}

func (s *testAttemptService) SaveProgress(ctx context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithTest(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, "test attempt", attemptID)
	}
	if attempt.Finalized() {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptFinalized)
	}
	if _, err := answerKey(attempt); err != nil {
		return nil, err
	}
	if err := checkQuestionKeys(attempt.Test.Questions, req); err != nil {
		return nil, err
	}

	answers, flags := mergeAnswers(attempt, req)
	if err := s.testAttemptRepo.SaveProgress(ctx, attemptID, answers, flags); err != nil {
		if errors.Is(err, repository.ErrAlreadyFinalized) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptFinalized)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SaveProgress: Failed to store answers")
		return nil, fmt.Errorf("failed to save progress for attempt %d: %w", attemptID, err)
	}
	attempt.Answers = datatypes.NewJSONType(answers)
	attempt.Flags = datatypes.NewJSONType(flags)

	resp := toAttemptDetail(attempt)
	return &resp, nil
}

// SubmitAttempt merges the final answers, scores the attempt and stores the
// result. A second submission returns the result stored by the first. When the
// result cannot be stored the computed score is still returned, together with
// an error wrapping grading.ErrResultNotSaved.
func (s *testAttemptService) SubmitAttempt(ctx context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithTest(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, "test attempt", attemptID)
	}
	if attempt.Finalized() {
		log.Info().Uint("attemptID", attemptID).Msg("SubmitAttempt: Attempt already submitted, returning stored result")
		return &dto.SubmitResultDTO{Attempt: toAttemptDetail(attempt), Saved: true}, nil
	}
	key, err := answerKey(attempt)
	if err != nil {
		return nil, err
	}
	if err := checkQuestionKeys(attempt.Test.Questions, req); err != nil {
		return nil, err
	}

	answers, flags := mergeAnswers(attempt, req)
	submittedAt := s.now()
	recorder := grading.NewRecorder(grading.ResultSaverFunc(func(ctx context.Context, id uint, result grading.ScoreResult) error {
		return s.testAttemptRepo.Finalize(ctx, id, answers, flags, result, submittedAt)
	}))

	result, err := recorder.Finalize(ctx, key, grading.Attempt{
		ID:      attempt.ID,
		Answers: answers,
		Flags:   flags,
	})
	attempt.Answers = datatypes.NewJSONType(answers)
	attempt.Flags = datatypes.NewJSONType(flags)
	attempt.SetResult(result)

	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFinalized) {
			// Lost a race with another submission; its result is the one that counts.
			stored, reloadErr := s.testAttemptRepo.FindByIDWithTest(ctx, attemptID)
			if reloadErr != nil {
				return nil, notFound(reloadErr, "test attempt", attemptID)
			}
			return &dto.SubmitResultDTO{Attempt: toAttemptDetail(stored), Saved: true}, nil
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Int("rawScore", result.Correct).Msg("SubmitAttempt: Score computed but not stored")
		return &dto.SubmitResultDTO{
			Attempt:   toAttemptDetail(attempt),
			Saved:     false,
			SaveError: grading.ErrResultNotSaved.Error(),
		}, err
	}

	attempt.Status = model.AttemptStatusCompleted
	attempt.SubmittedAt = &submittedAt
	for _, w := range result.Warnings {
		log.Warn().Uint("attemptID", attemptID).Str("code", w.Code).Str("questionKey", w.QuestionID).Msg("Grading warning")
	}
	log.Info().Uint("attemptID", attemptID).Int("rawScore", result.Correct).Int("total", result.Total).Float64("band", result.Band).Msg("Test attempt submitted")

	return &dto.SubmitResultDTO{Attempt: toAttemptDetail(attempt), Saved: true}, nil
}

func (s *testAttemptService) GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithTest(ctx, attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetTestAttemptDetails: Failed to find test attempt by ID.")
		return nil, notFound(err, "test attempt", attemptID)
	}
	resp := toAttemptDetail(attempt)
	return &resp, nil
}

// GetUserAttemptsForTest retrieves a summary list of a user's attempts for a specific test.
func (s *testAttemptService) GetUserAttemptsForTest(ctx context.Context, testID uint, userID *uint) ([]dto.TestAttemptSummaryDTO, error) {
	attempts, err := s.testAttemptRepo.FindAllByTestAndUser(ctx, testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Interface("userID", userID).Msg("GetUserAttemptsForTest: Failed to find attempts from repository.")
		return nil, fmt.Errorf("error fetching attempts for test %d: %w", testID, err)
	}

	dtos := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summary, err := toAttemptSummary(&attempts[i])
		if err != nil {
			log.Error().Err(err).Uint("attemptID", attempts[i].ID).Msg("GetUserAttemptsForTest: Failed to map attempt")
			return nil, fmt.Errorf("failed to map attempt %d: %w", attempts[i].ID, err)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// answerKey returns the key an attempt is graded against. Attempts on a
// deleted test, or on a test without questions, cannot be graded.
func answerKey(attempt *model.TestAttempt) (grading.Test, error) {
	if attempt.Test.ID == 0 || attempt.Test.DeletedAt.Valid {
		return grading.Test{}, fmt.Errorf("test %d of attempt %d: %w", attempt.TestID, attempt.ID, ErrNotFound)
	}
	if len(attempt.Test.Questions) == 0 {
		return grading.Test{}, &ValidationError{Problems: []string{fmt.Sprintf("test %d has no questions", attempt.TestID)}}
	}
	return attempt.Test.AnswerKey(), nil
}

// checkQuestionKeys rejects answers or flags for questions the test does not have.
func checkQuestionKeys(questions []model.Question, req dto.AttemptAnswersDTO) error {
	known := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		known[q.QuestionKey] = struct{}{}
	}

	unknown := make(map[string]struct{})
	for key := range req.Answers {
		if _, ok := known[key]; !ok {
			unknown[key] = struct{}{}
		}
	}
	for key := range req.Flags {
		if _, ok := known[key]; !ok {
			unknown[key] = struct{}{}
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	problems := make([]string, 0, len(unknown))
	for key := range unknown {
		problems = append(problems, fmt.Sprintf("unknown question key %q", key))
	}
	sort.Strings(problems)
	return &ValidationError{Problems: problems}
}

// mergeAnswers overlays the request on the stored answers and flags. The
// stored maps are not modified.
func mergeAnswers(attempt *model.TestAttempt, req dto.AttemptAnswersDTO) (map[string]grading.Answer, map[string]bool) {
	stored := attempt.Answers.Data()
	answers := make(map[string]grading.Answer, len(stored)+len(req.Answers))
	for k, v := range stored {
		answers[k] = v
	}
	for k, v := range req.Answers {
		answers[k] = v
	}

	storedFlags := attempt.Flags.Data()
	flags := make(map[string]bool, len(storedFlags)+len(req.Flags))
	for k, v := range storedFlags {
		flags[k] = v
	}
	for k, v := range req.Flags {
		if v {
			flags[k] = true
		} else {
			delete(flags, k)
		}
	}
	return answers, flags
}
