package rag

import (
	"context"

	"github.com/aven-cloud/avenbot/internal/domain"
)

// Embedder vectorizes the question text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Retriever returns ranked candidates for a query vector.
type Retriever interface {
	Search(ctx context.Context, vector []float32, topK int) ([]domain.Candidate, error)
}

// Generator produces answer text from a system and a user prompt.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
