package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")

	// ErrDocumentUnreadable means the input document could not be decoded at
	// all. It is the only parse-time error that propagates to the caller;
	// per-page or per-field misses surface as empty values instead.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrCapabilityUnavailable marks an optional backend (NER, similarity
	// model) as absent or failing. Dependent fields degrade to their
	// fallback value and the overall call continues.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
