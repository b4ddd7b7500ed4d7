package avenbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for common API failures. Use errors.Is() to check.
var (
	ErrEmptyMessage = errors.New("avenbot: message is empty")
	ErrUnauthorized = errors.New("avenbot: unauthorized")
	ErrUnavailable  = errors.New("avenbot: upstream provider unavailable")
)

// APIError is a non-200 response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("avenbot: api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps well-known error codes to sentinels.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "empty_message":
		return ErrEmptyMessage
	case "unauthorized":
		return ErrUnauthorized
	case "embedding_failed", "retrieval_failed", "generation_failed", "model_access_denied":
		return ErrUnavailable
	default:
		return nil
	}
}

func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var envelope struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
