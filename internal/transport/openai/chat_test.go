package openai

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aven-cloud/avenbot/internal/domain"
)

func TestParseGenerationError_AccessDenied403(t *testing.T) {
	err := parseGenerationError(&openai.RequestError{
		HTTPStatusCode: 403,
		Body:           []byte("access denied"),
	})

	if !domain.IsAccessDenied(err) {
		t.Fatalf("expected access denied classification, got %v", err)
	}
	if !errors.Is(err, domain.ErrGeneration) {
		t.Error("access denied must still unwrap to ErrGeneration")
	}
}

func TestParseGenerationError_AccessDenied401(t *testing.T) {
	err := parseGenerationError(&openai.APIError{
		HTTPStatusCode: 401,
		Message:        "invalid api key",
	})

	if !domain.IsAccessDenied(err) {
		t.Fatalf("expected access denied classification, got %v", err)
	}

	var ade *domain.AccessDeniedError
	if !errors.As(err, &ade) || ade.StatusCode != 401 {
		t.Errorf("expected status 401 preserved, got %v", err)
	}
}

func TestParseGenerationError_GenericFailure(t *testing.T) {
	err := parseGenerationError(&openai.APIError{
		HTTPStatusCode: 500,
		Message:        "upstream exploded",
	})

	if domain.IsAccessDenied(err) {
		t.Error("500 must not be classified as access denied")
	}
	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("expected ErrGeneration, got %v", err)
	}
}

func TestParseGenerationError_TransportFailure(t *testing.T) {
	err := parseGenerationError(errors.New("dial tcp: connection refused"))

	if !errors.Is(err, domain.ErrGeneration) {
		t.Errorf("expected ErrGeneration, got %v", err)
	}
	if domain.IsAccessDenied(err) {
		t.Error("transport failure must not be access denied")
	}
}

func TestNewGenerator_DefaultMaxTokens(t *testing.T) {
	g := NewGenerator(&GeneratorConfig{APIKey: "k", Model: "m"})
	if g.maxTokens != 1000 {
		t.Errorf("expected default max tokens 1000, got %d", g.maxTokens)
	}
}
