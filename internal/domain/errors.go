package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidValue  = errors.New("invalid value")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrReferenced    = errors.New("referenced by other records")
)

// Livestock business errors. Each one is an expected, recoverable outcome of
// a service operation and maps to a 4xx response.
var (
	ErrInvalidState     = errors.New("invalid state")
	ErrNotEligible      = errors.New("not eligible")
	ErrInvalidSex       = errors.New("invalid sex")
	ErrDuplicateTag     = errors.New("duplicate tag")
	ErrAlreadyExited    = errors.New("animal already exited")
	ErrAlreadyThere     = errors.New("animal already in destination farm")
	ErrAlreadyPregnant  = errors.New("animal already pregnant")
	ErrAlreadyConfirmed = errors.New("insemination already confirmed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidValue }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TagNotFound wraps ErrNotFound with the animal tag that failed to resolve.
func TagNotFound(tag string) error {
	return fmt.Errorf("animal %q: %w", tag, ErrNotFound)
}
