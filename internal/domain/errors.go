package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrOverlappingSleep    = errors.New("overlapping sleep period detected")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUpstreamUnavailable = errors.New("sleep session store unavailable")
)

// ArgumentError describes a caller error on a single query argument.
// It matches ErrInvalidArgument under errors.Is.
type ArgumentError struct {
	Field  string
	Reason string
}

func NewArgumentError(field, reason string) *ArgumentError {
	return &ArgumentError{Field: field, Reason: reason}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Field, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Unavailable wraps a storage failure so callers can detect it with
// errors.Is(err, ErrUpstreamUnavailable) while keeping the cause in the chain.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}
