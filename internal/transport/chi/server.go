// Package chi exposes the chat pipeline over HTTP: POST /chat plus the
// operational health and metrics endpoints.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aven-cloud/avenbot/internal/domain"
	healthuc "github.com/aven-cloud/avenbot/internal/usecase/health"
)

// Querier runs one question through the answer pipeline.
type Querier interface {
	Query(ctx context.Context, question, conversationID string) (domain.Answer, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest       = "bad_request"
	codeEmptyMessage     = "empty_message"
	codeUnauthorized     = "unauthorized"
	codeEmbeddingFailed  = "embedding_failed"
	codeRetrievalFailed  = "retrieval_failed"
	codeGenerationFailed = "generation_failed"
	codeAccessDenied     = "model_access_denied"
	codeInternalError    = "internal_error"
)

// ChatRequest is the POST /chat request body.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// SourceInfo is the public attribution record for one cited passage.
type SourceInfo struct {
	Source       string  `json:"source"`
	Title        string  `json:"title"`
	Score        float64 `json:"score"`
	Domain       string  `json:"domain"`
	VerifiedAven bool    `json:"verified_aven"`
	CrawlMethod  string  `json:"crawl_method"`
	SourceType   string  `json:"source_type"`
	IsAvenDomain bool    `json:"is_aven_domain"`
}

// ChatResponse is the POST /chat response body.
type ChatResponse struct {
	Response       string       `json:"response"`
	ConversationID string       `json:"conversation_id"`
	Sources        []SourceInfo `json:"sources"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server routes HTTP requests to the pipeline services.
type Server struct {
	rag           Querier
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP API server.
func NewServer(rag Querier, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		rag:    rag,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuestion,
			http.StatusBadRequest, codeEmptyMessage, "Message cannot be empty"),
		accessDeniedHandler,
		sentinelHandler(domain.ErrEmbedding,
			http.StatusBadGateway, codeEmbeddingFailed, "embedding provider unavailable"),
		sentinelHandler(domain.ErrRetrieval,
			http.StatusBadGateway, codeRetrievalFailed, "vector search unavailable"),
		sentinelHandler(domain.ErrGeneration,
			http.StatusBadGateway, codeGenerationFailed, "answer generation failed"),
		sentinelHandler(domain.ErrNotConfigured,
			http.StatusInternalServerError, codeInternalError, "service not configured"),
	}
	return s
}

// Routes mounts the API handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	answer, err := s.rag.Query(r.Context(), req.Message, req.ConversationID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	sources := answer.Sources()
	items := make([]SourceInfo, len(sources))
	for i := range sources {
		items[i] = sourceToAPI(&sources[i])
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Response:       answer.Text(),
		ConversationID: answer.ConversationID(),
		Sources:        items,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func sourceToAPI(src *domain.SourceAttribution) SourceInfo {
	return SourceInfo{
		Source:       src.Source(),
		Title:        src.Title(),
		Score:        src.Score(),
		Domain:       src.Domain(),
		VerifiedAven: src.Verified(),
		CrawlMethod:  src.CrawlMethod(),
		SourceType:   src.SourceType(),
		IsAvenDomain: src.TrustedDomain(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error. The message is a fixed safe string; provider internals never
// reach the client.
func sentinelHandler(sentinel error, status int, code, msg string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// accessDeniedHandler gives credential failures a distinct code so
// operators can tell a bad API key from a flaky provider.
func accessDeniedHandler(w http.ResponseWriter, err error) bool {
	if !domain.IsAccessDenied(err) {
		return false
	}
	writeError(w, http.StatusBadGateway, codeAccessDenied,
		"model provider rejected our credentials")
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
