package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuestion signals a blank or whitespace-only question.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrEmbedding signals an embedding provider failure.
	ErrEmbedding = errors.New("embedding provider error")
	// ErrRetrieval signals a vector index failure.
	ErrRetrieval = errors.New("vector index error")
	// ErrGeneration signals an answer generation failure.
	ErrGeneration = errors.New("generation provider error")
	// ErrNotConfigured signals a missing credential or uninitialized dependency.
	ErrNotConfigured = errors.New("service not configured")
)

// AccessDeniedError wraps ErrGeneration when the LLM provider rejects the
// credentials (401/403). It indicates a configuration problem, not a
// transient fault, and is classified separately in logs and metrics.
type AccessDeniedError struct {
	StatusCode int
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: access denied (status %d)", ErrGeneration.Error(), e.StatusCode)
}

func (e *AccessDeniedError) Unwrap() error { return ErrGeneration }

// NewAccessDenied creates an access denied error for the given HTTP status.
func NewAccessDenied(statusCode int) error {
	return &AccessDeniedError{StatusCode: statusCode}
}

// IsAccessDenied reports whether err carries an AccessDeniedError.
func IsAccessDenied(err error) bool {
	var ade *AccessDeniedError
	return errors.As(err, &ade)
}
