package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is not a valid UUID.
	ErrInvalidID = errors.New("invalid id")

	// Field-level validation errors.
	ErrInvalidFoundedYear = errors.New("founded year must be between 1800 and the current year")
	ErrInvalidStatus      = errors.New("invalid project status")
	ErrDateOrder          = errors.New("end date must not be before start date")
)

// ValidationError describes a validation failure on a single field.
// Boundaries collect these so a response can enumerate every offending
// field rather than just the first one.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
