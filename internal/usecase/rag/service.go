// Package rag orchestrates one customer question through the retrieval
// pipeline: embed, search, trust-filter, assemble context, generate, and
// validate source attributions.
package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aven-cloud/avenbot/internal/domain"
	"github.com/aven-cloud/avenbot/internal/domain/bundle"
	"github.com/aven-cloud/avenbot/internal/domain/trust"
	"github.com/aven-cloud/avenbot/internal/metrics"
)

// Service runs the query pipeline. Stateless across queries; conversation
// identifiers are passed through (or minted) but never persisted.
type Service struct {
	embed    Embedder
	index    Retriever
	generate Generator
	filter   trust.Filter
	logger   *zap.Logger
}

// New creates the query pipeline service.
func New(embed Embedder, index Retriever, gen Generator, filter trust.Filter, logger *zap.Logger) *Service {
	return &Service{
		embed:    embed,
		index:    index,
		generate: gen,
		filter:   filter,
		logger:   logger,
	}
}

// Query answers one question. The stages run strictly in order and the
// first failure aborts the pipeline; no partial answers are produced.
// An empty or whitespace-only question fails before any external call.
// When retrieval yields no usable trusted context the fixed fallback
// answer is returned with zero sources and the model is not called.
func (s *Service) Query(ctx context.Context, question, conversationID string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, domain.ErrEmptyQuestion
	}

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	log := s.logger.With(
		zap.String("conversation_id", conversationID),
		zap.Int("question_len", len(question)),
	)

	emb, err := s.embed.Embed(ctx, question)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("embedding_error").Inc()
		log.Error("embed question failed", zap.Error(err))
		return domain.Answer{}, fmt.Errorf("embed question: %w", err)
	}

	candidates, err := s.index.Search(ctx, emb.Embedding, domain.TopK)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("retrieval_error").Inc()
		log.Error("vector search failed", zap.Error(err))
		return domain.Answer{}, fmt.Errorf("retrieve candidates: %w", err)
	}

	res := bundle.Assemble(candidates, s.filter, domain.MaxContextPassages)

	if res.Rejected > 0 {
		metrics.FilteredCandidatesTotal.Add(float64(res.Rejected))
		log.Warn("untrusted sources filtered from retrieval",
			zap.Int("rejected", res.Rejected))
	}
	metrics.ContextPassages.Observe(float64(res.Bundle.Len()))

	if res.Bundle.Empty() {
		metrics.QueriesTotal.WithLabelValues("fallback").Inc()
		log.Info("no usable context, returning fallback",
			zap.Int("candidates", len(candidates)),
			zap.Int("no_text", res.NoText))
		return domain.NewAnswer(FallbackAnswer, conversationID, []domain.SourceAttribution{}), nil
	}

	text, err := s.generate.Generate(ctx, systemPrompt, buildUserPrompt(res.Bundle.Passages(), question))
	if err != nil {
		outcome := "generation_error"
		if domain.IsAccessDenied(err) {
			outcome = "access_denied"
		}
		metrics.QueriesTotal.WithLabelValues(outcome).Inc()
		log.Error("answer generation failed", zap.Error(err))
		return domain.Answer{}, fmt.Errorf("generate answer: %w", err)
	}

	sources, trusted := validateSources(res.Bundle.Seeds(), s.filter)
	metrics.TrustedSourcesTotal.Add(float64(trusted))

	metrics.QueriesTotal.WithLabelValues("answered").Inc()
	log.Info("query answered",
		zap.Int("candidates", len(candidates)),
		zap.Int("passages", res.Bundle.Len()),
		zap.Int("sources", len(sources)),
		zap.Int("trusted_sources", trusted),
		zap.Int("answer_len", len(text)))

	return domain.NewAnswer(text, conversationID, sources), nil
}
