package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrAttemptFinalized = errors.New("attempt has already been submitted")
	ErrTestPublished    = errors.New("published tests cannot be modified")
	ErrAIUnavailable    = errors.New("AI feedback is currently unavailable")
)

// ValidationError lists every problem found in a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d problem(s)", ErrValidation, len(e.Problems))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// notFound maps gorm's missing-record error to ErrNotFound and wraps anything
// else as is.
func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("error loading %s %d: %w", what, id, err)
}
