package validator

import (
	"errors"

	"github.com/dmitrymomot/apicheck/core/country"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

// ValidationError describes a single query field that failed validation.
// Message is ready for display; TranslationKey and TranslationValues allow
// callers to render a localized message instead.
type ValidationError struct {
	Field             string
	Country           country.Code
	Value             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
