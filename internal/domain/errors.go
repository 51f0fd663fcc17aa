package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrJobNotFound signals a missing job (lookup or application target).
	ErrJobNotFound = errors.New("job not found")
	// ErrValidation signals invalid input rejected before any store write.
	ErrValidation = errors.New("validation failed")
	// ErrSearchUnavailable signals that the search index is disabled for this process.
	ErrSearchUnavailable = errors.New("search index unavailable")
)

// ValidationError carries the offending field alongside ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation creates a validation error for field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
