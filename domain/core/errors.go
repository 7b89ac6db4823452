package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrValidation      = errors.New("input validation failed")
	ErrMissingField    = fmt.Errorf("%w: required field missing", ErrValidation)
	ErrOutOfRange      = fmt.Errorf("%w: value out of range", ErrValidation)
	ErrUnknownValue    = fmt.Errorf("%w: value not in allowed set", ErrValidation)
	ErrCrossField      = fmt.Errorf("%w: cross-field constraint violated", ErrValidation)

	// Reference-data errors
	ErrUnknownCategory = errors.New("category missing from reference table")
)

// ValidationError names the offending field, the constraint violated and the
// acceptable range or allowed set. It blocks computation: an engine returning
// a ValidationError produces no partial result.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingField reports a required field that was not supplied
func MissingField(field string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: "required",
		Message:    "value is required",
	}
}

// OutOfRange reports a numeric field outside its declared bounds
func OutOfRange(field string, value, min, max float64) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: "range",
		Message:    fmt.Sprintf("value %g outside acceptable range [%g, %g]", value, min, max),
	}
}

// NotInSet reports an enum field with an unrecognized tag
func NotInSet(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: "enum",
		Message:    fmt.Sprintf("value %q not one of: %s", value, strings.Join(allowed, ", ")),
	}
}

// CrossField reports a violated constraint spanning multiple fields
func CrossField(field, message string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Constraint: "cross-field",
		Message:    message,
	}
}

// IsValidationError checks if an error carries a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// AsValidationError extracts the structured validation error, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
