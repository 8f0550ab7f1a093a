package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type WritingFeedbackService interface {
	Evaluate(ctx context.Context, req dto.WritingFeedbackRequestDTO) (*dto.WritingFeedbackResponseDTO, error)
	GetUserFeedback(ctx context.Context, userID *uint) ([]dto.WritingFeedbackResponseDTO, error)
}

type writingFeedbackService struct {
	generator    TextGenerator
	feedbackRepo repository.WritingFeedbackRepository
}

func NewWritingFeedbackService(generator TextGenerator, feedbackRepo repository.WritingFeedbackRepository) WritingFeedbackService {
	return &writingFeedbackService{generator: generator, feedbackRepo: feedbackRepo}
}

func (s *writingFeedbackService) Evaluate(ctx context.Context, req dto.WritingFeedbackRequestDTO) (*dto.WritingFeedbackResponseDTO, error) {
	if strings.TrimSpace(req.Essay) == "" {
		return nil, &ValidationError{Problems: []string{"essay must not be blank"}}
	}

	words := len(strings.Fields(req.Essay))
	raw, err := s.generator.Generate(ctx, buildWritingPrompt(req.TaskType, req.Prompt, req.Essay, words))
	if err != nil {
		if !errors.Is(err, ErrAIUnavailable) {
			err = fmt.Errorf("%w: %w", ErrAIUnavailable, err)
		}
		log.Error().Err(err).Str("taskType", req.TaskType).Msg("Evaluate: Text generation failed")
		return nil, err
	}

	band, feedback, parseErr := parseBandAndFeedback(raw)
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("rawResponse", raw).Msg("Failed to parse band and feedback from AI response")
	}

	record := model.WritingFeedback{
		UserID:    req.UserID,
		TaskType:  req.TaskType,
		Prompt:    req.Prompt,
		Essay:     req.Essay,
		WordCount: words,
		Feedback:  feedback,
	}
	if parseErr == nil {
		record.EstimatedBand = &band
	}
	if err := s.feedbackRepo.Create(ctx, &record); err != nil {
		log.Error().Err(err).Msg("Evaluate: Failed to store writing feedback")
		return nil, fmt.Errorf("failed to store writing feedback: %w", err)
	}

	var resp dto.WritingFeedbackResponseDTO
	if err := copier.Copy(&resp, &record); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *writingFeedbackService) GetUserFeedback(ctx context.Context, userID *uint) ([]dto.WritingFeedbackResponseDTO, error) {
	records, err := s.feedbackRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Interface("userID", userID).Msg("GetUserFeedback: Failed to load writing feedback")
		return nil, fmt.Errorf("error fetching writing feedback: %w", err)
	}
	resp := make([]dto.WritingFeedbackResponseDTO, 0, len(records))
	if err := copier.Copy(&resp, &records); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

func buildWritingPrompt(taskType, prompt, essay string, words int) string {
	minWords := 250
	var sb strings.Builder
	sb.WriteString("You are an experienced IELTS Writing examiner.\n")
	if taskType == model.WritingTask1 {
		minWords = 150
		sb.WriteString("Evaluate the following IELTS Writing Task 1 response.\n")
		sb.WriteString("Criteria: Task Achievement, Coherence and Cohesion, Lexical Resource, Grammatical Range and Accuracy.\n")
	} else {
		sb.WriteString("Evaluate the following IELTS Writing Task 2 essay.\n")
		sb.WriteString("Criteria: Task Response, Coherence and Cohesion, Lexical Resource, Grammatical Range and Accuracy.\n")
	}
	fmt.Fprintf(&sb, "The response has %d words; the minimum is %d.\n\n", words, minWords)
	sb.WriteString("Task prompt:\n---\n")
	sb.WriteString(prompt)
	sb.WriteString("\n---\n\nCandidate response:\n---\n")
	sb.WriteString(essay)
	sb.WriteString("\n---\n\n")
	sb.WriteString(`Format your response strictly as:
Band: [overall band from 0 to 9 in steps of 0.5]
Feedback:
[Strengths, specific errors with corrections, and advice for each criterion]
`)
	return sb.String()
}

var (
	bandLabel     = regexp.MustCompile(`(?i)band:[ \t]*(\S*)`)
	feedbackLabel = regexp.MustCompile(`(?i)feedback:`)
)

// parseBandAndFeedback reads a "Band: x" line and the text after "Feedback:".
// Without a parseable band the whole reply is returned as feedback.
func parseBandAndFeedback(raw string) (float64, string, error) {
	feedback := strings.TrimSpace(raw)
	if loc := feedbackLabel.FindStringIndex(raw); loc != nil {
		feedback = strings.TrimSpace(raw[loc[1]:])
	}

	m := bandLabel.FindStringSubmatch(raw)
	if m == nil {
		return 0, feedback, fmt.Errorf("response does not contain a band line")
	}
	value := m[1]
	if value == "" {
		return 0, feedback, fmt.Errorf("band line is empty")
	}
	band, err := strconv.ParseFloat(strings.TrimRight(value, ".,;"), 64)
	if err != nil {
		return 0, feedback, fmt.Errorf("could not parse band value %q: %w", value, err)
	}
	return grading.SnapBand(band), feedback, nil
}
