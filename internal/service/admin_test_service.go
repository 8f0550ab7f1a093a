package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// warnKeyNotInOptions flags a multiple-choice key that is not one of the listed options.
const warnKeyNotInOptions = "key_not_in_options"

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error)
	UpdateTest(ctx context.Context, testID uint, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error)
	PublishTest(ctx context.Context, testID uint) (*dto.TestResponseDTO, error)
	DeleteTest(ctx context.Context, testID uint) error
}

type adminTestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	now          func() time.Time
}

func NewAdminTestService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo, questionRepo: questionRepo, now: time.Now}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error) {
	questions, warnings, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	testModel := model.Test{
		Title:           req.Title,
		Module:          req.Module,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Questions:       questions,
	}
	if err := s.testRepo.Create(ctx, &testModel); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	logAuthoringWarnings(testModel.ID, warnings)

	return s.reload(ctx, &testModel, warnings)
}

func (s *adminTestService) UpdateTest(ctx context.Context, testID uint, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error) {
	existing, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFound(err, "test", testID)
	}
	if existing.Published {
		return nil, fmt.Errorf("test %d: %w", testID, ErrTestPublished)
	}

	questions, warnings, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	existing.Title = req.Title
	existing.Module = req.Module
	existing.Description = req.Description
	existing.DurationMinutes = req.DurationMinutes
	existing.Questions = questions

	if err := s.testRepo.ReplaceContent(ctx, existing); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to replace test content")
		return nil, fmt.Errorf("database error updating test %d: %w", testID, err)
	}
	logAuthoringWarnings(testID, warnings)

	return s.reload(ctx, existing, warnings)
}

func (s *adminTestService) PublishTest(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, notFound(err, "test", testID)
	}
	test.Questions, err = s.questionRepo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("error loading questions of test %d: %w", testID, err)
	}
	if len(test.Questions) == 0 {
		return nil, &ValidationError{Problems: []string{"a test needs at least one question before publishing"}}
	}
	if !test.Published {
		at := s.now()
		if err := s.testRepo.Publish(ctx, testID, at); err != nil {
			return nil, notFound(err, "test", testID)
		}
		test.Published = true
		test.PublishedAt = &at
		log.Info().Uint("testID", testID).Msg("Test published")
	}

	resp, err := toTestResponse(test)
	if err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *adminTestService) DeleteTest(ctx context.Context, testID uint) error {
	if err := s.testRepo.Delete(ctx, testID); err != nil {
		return notFound(err, "test", testID)
	}
	return nil
}

func (s *adminTestService) reload(ctx context.Context, saved *model.Test, warnings []grading.Warning) (*dto.AdminTestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(ctx, saved.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", saved.ID).Msg("Failed to retrieve saved test with questions for response")
		test = saved
	}
	resp, err := toTestResponse(test)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &dto.AdminTestResponseDTO{Test: resp, Warnings: warnings}, nil
}

// buildQuestions validates an answer key. Structural problems reject the
// request; suspicious but gradable content is returned as warnings.
func buildQuestions(in []dto.QuestionCreateDTO) ([]model.Question, []grading.Warning, error) {
	var problems []string
	var warnings []grading.Warning
	keys := make(map[string]int, len(in))
	numbers := make(map[int]string, len(in))
	questions := make([]model.Question, 0, len(in))

	for _, q := range in {
		qType := grading.QuestionType(q.Type)
		if !qType.Known() {
			problems = append(problems, fmt.Sprintf("question %q: unsupported type %q", q.QuestionKey, q.Type))
		}
		if other, dup := numbers[q.Number]; dup {
			problems = append(problems, fmt.Sprintf("question %q: number %d already used by %q", q.QuestionKey, q.Number, other))
		} else {
			numbers[q.Number] = q.QuestionKey
		}

		keys[q.QuestionKey]++
		if keys[q.QuestionKey] == 2 {
			warnings = append(warnings, grading.Warning{
				Code:       grading.WarnDuplicateQuestionID,
				QuestionID: q.QuestionKey,
				Detail:     "question key used more than once; each occurrence is scored separately",
			})
		}

		key := grading.Normalize(q.CorrectAnswer)
		if grading.IsBlank(key) {
			problems = append(problems, fmt.Sprintf("question %q: correct_answer is required", q.QuestionKey))
		}
		if qType == grading.Matching && !q.CorrectAnswer.IsList {
			problems = append(problems, fmt.Sprintf("question %q: matching questions need a list of answers", q.QuestionKey))
		}
		if vocab := grading.TokensFor(qType); vocab != nil && !grading.IsBlank(key) {
			if !containsFolded(vocab, key) {
				warnings = append(warnings, grading.Warning{
					Code:       grading.WarnKeyOutsideVocabulary,
					QuestionID: q.QuestionKey,
					Detail:     fmt.Sprintf("expected one of %v", vocab),
				})
			}
		}
		if qType == grading.MultipleChoice && len(q.Options) > 0 && !grading.IsBlank(key) {
			options := grading.Normalize(grading.List(q.Options...)).Items
			if !containsFolded(options, key) {
				warnings = append(warnings, grading.Warning{
					Code:       warnKeyNotInOptions,
					QuestionID: q.QuestionKey,
				})
			}
		}

		section := q.Section
		if section == 0 {
			section = 1
		}
		questions = append(questions, model.Question{
			QuestionKey:   q.QuestionKey,
			Number:        q.Number,
			Section:       section,
			Type:          q.Type,
			Prompt:        q.Prompt,
			Options:       datatypes.NewJSONType(q.Options),
			CorrectAnswer: datatypes.NewJSONType(q.CorrectAnswer),
		})
	}

	if len(problems) > 0 {
		return nil, nil, &ValidationError{Problems: problems}
	}
	return questions, warnings, nil
}

// containsFolded reports whether every value of a normalized key is in allowed.
func containsFolded(allowed []string, key grading.Answer) bool {
	values := key.Items
	if !key.IsList {
		values = []string{key.Text}
	}
	for _, v := range values {
		found := false
		for _, a := range allowed {
			if a == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func logAuthoringWarnings(testID uint, warnings []grading.Warning) {
	for _, w := range warnings {
		log.Warn().Uint("testID", testID).Str("code", w.Code).Str("questionKey", w.QuestionID).Msg("Answer key authoring warning")
	}
}
