package grading

import (
	"context"
	"errors"
	"fmt"
)

// ErrResultNotSaved marks a score that was computed but could not be stored.
// The result returned with it is valid and the save can be retried.
var ErrResultNotSaved = errors.New("failed to save, your score was computed but not stored")

// ResultSaver persists a finalized result for an attempt.
type ResultSaver interface {
	SaveResult(ctx context.Context, attemptID uint, result ScoreResult) error
}

// ResultSaverFunc adapts a function to ResultSaver.
type ResultSaverFunc func(ctx context.Context, attemptID uint, result ScoreResult) error

func (f ResultSaverFunc) SaveResult(ctx context.Context, attemptID uint, result ScoreResult) error {
	return f(ctx, attemptID, result)
}

// ComputeAndFinalize is the pure half of finalization.
func ComputeAndFinalize(test Test, attempt Attempt) ScoreResult {
	return Score(test, attempt)
}

// Recorder scores an attempt and hands the result to a ResultSaver.
type Recorder struct {
	saver ResultSaver
}

// NewRecorder returns a Recorder that stores results through saver.
func NewRecorder(saver ResultSaver) *Recorder {
	return &Recorder{saver: saver}
}

// Finalize always returns the computed result. When the saver fails the error
// wraps both ErrResultNotSaved and the saver's error.
func (r *Recorder) Finalize(ctx context.Context, test Test, attempt Attempt) (ScoreResult, error) {
	result := ComputeAndFinalize(test, attempt)
	if r.saver == nil {
		return result, fmt.Errorf("%w: no result store configured", ErrResultNotSaved)
	}
	if err := r.saver.SaveResult(ctx, attempt.ID, result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrResultNotSaved, err)
	}
	return result, nil
}
