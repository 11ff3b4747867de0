// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Auth errors are fatal for the run: credentials cannot be fixed
	// mid-flight, so no query or write proceeds.
	ErrAuth = errors.New("authentication failed")

	// Transient errors (network faults, 5xx, rate limits) are safe to
	// retry by re-invoking the run; they are not retried automatically.
	ErrTransient = errors.New("transient upstream error")

	// Per-target errors: recorded in the summary, never fatal.
	ErrInvalidGroup   = errors.New("unknown analytics group")
	ErrColumnNotFound = errors.New("header column not found")
	ErrRowNotFound    = errors.New("month row not found")

	// Configuration errors abort before any network call.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrTransient) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}

// IsFatal reports whether an error must abort the whole run rather than
// being recorded as a single target's outcome.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrInvalidConfig)
}

// ErrorKind names the taxonomy class of an error for summary reporting.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrAuth):
		return "AuthError"
	case errors.Is(err, ErrTransient):
		return "TransientError"
	case errors.Is(err, ErrInvalidGroup):
		return "InvalidGroupError"
	case errors.Is(err, ErrColumnNotFound):
		return "ColumnNotFoundError"
	case errors.Is(err, ErrRowNotFound):
		return "RowNotFoundError"
	case errors.Is(err, ErrMissingConfig), errors.Is(err, ErrInvalidConfig):
		return "ConfigurationError"
	default:
		return "Error"
	}
}
