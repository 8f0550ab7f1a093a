package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminAttemptService interface {
	RescoreAttempt(ctx context.Context, attemptID uint) (*dto.RescoreResponseDTO, error)
}

type adminAttemptService struct {
	testAttemptRepo repository.TestAttemptRepository
	now             func() time.Time
}

func NewAdminAttemptService(testAttemptRepo repository.TestAttemptRepository) AdminAttemptService {
	return &adminAttemptService{testAttemptRepo: testAttemptRepo, now: time.Now}
}

// RescoreAttempt recomputes a submitted attempt against the test's current
// answer key and overwrites the stored result.
func (s *adminAttemptService) RescoreAttempt(ctx context.Context, attemptID uint) (*dto.RescoreResponseDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithTest(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, "test attempt", attemptID)
	}
	if !attempt.Finalized() {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("attempt %d has not been submitted", attemptID)}}
	}

	key, err := answerKey(attempt)
	if err != nil {
		return nil, err
	}

	resp := &dto.RescoreResponseDTO{}
	if previous, ok := attempt.Result(); ok {
		resp.Previous = &previous
	}
	current := grading.ComputeAndFinalize(key, attempt.ForGrading())

	at := s.now()
	if err := s.testAttemptRepo.OverrideResult(ctx, attemptID, current, at); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("RescoreAttempt: Failed to store new result")
		return nil, notFound(err, "test attempt", attemptID)
	}
	attempt.SetResult(current)
	attempt.OverriddenAt = &at

	event := log.Info().Uint("attemptID", attemptID).Float64("band", current.Band)
	if resp.Previous != nil {
		event = event.Float64("previousBand", resp.Previous.Band)
	}
	event.Msg("Test attempt rescored")

	resp.Current = current
	resp.Attempt = toAttemptDetail(attempt)
	return resp, nil
}
