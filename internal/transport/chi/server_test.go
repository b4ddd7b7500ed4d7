package chi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chipkg "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aven-cloud/avenbot/internal/domain"
	healthuc "github.com/aven-cloud/avenbot/internal/usecase/health"
)

// --- Mocks ---

type mockQuerier struct {
	answer       domain.Answer
	err          error
	lastQuestion string
	lastConvID   string
}

func (m *mockQuerier) Query(_ context.Context, question, conversationID string) (domain.Answer, error) {
	m.lastQuestion = question
	m.lastConvID = conversationID
	if m.err != nil {
		return domain.Answer{}, m.err
	}
	return m.answer, nil
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report { return m.report }

func newTestRouter(q Querier, h HealthChecker) http.Handler {
	srv := NewServer(q, h, zap.NewNop())
	r := chipkg.NewRouter()
	srv.Routes(r)
	return r
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---

func TestChat_Success(t *testing.T) {
	src := domain.NewSourceAttribution(
		"https://aven.com/support", "Support", 0.92, "aven.com",
		true, "firecrawl", "web", true,
	)
	q := &mockQuerier{answer: domain.NewAnswer("Here you go.", "conv-1", []domain.SourceAttribution{src})}
	router := newTestRouter(q, &mockHealth{})

	rr := postChat(t, router, `{"message":"What is Aven?","conversation_id":"conv-1"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != "Here you go." {
		t.Errorf("unexpected response text %q", resp.Response)
	}
	if resp.ConversationID != "conv-1" {
		t.Errorf("unexpected conversation id %q", resp.ConversationID)
	}
	if len(resp.Sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(resp.Sources))
	}
	s := resp.Sources[0]
	if s.Source != "https://aven.com/support" || !s.IsAvenDomain || !s.VerifiedAven {
		t.Errorf("unexpected source record: %+v", s)
	}
	if q.lastQuestion != "What is Aven?" || q.lastConvID != "conv-1" {
		t.Errorf("request fields not passed through: %q %q", q.lastQuestion, q.lastConvID)
	}
}

func TestChat_EmptySourcesSerializedAsArray(t *testing.T) {
	q := &mockQuerier{answer: domain.NewAnswer("fallback text", "c", []domain.SourceAttribution{})}
	router := newTestRouter(q, &mockHealth{})

	rr := postChat(t, router, `{"message":"q"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"sources":[]`) {
		t.Errorf("expected empty sources array, got %s", rr.Body.String())
	}
}

func TestChat_InvalidBody_400(t *testing.T) {
	router := newTestRouter(&mockQuerier{}, &mockHealth{})

	rr := postChat(t, router, `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != codeBadRequest {
		t.Errorf("expected code %s, got %s", codeBadRequest, errResp.Code)
	}
}

func TestChat_EmptyMessage_400(t *testing.T) {
	q := &mockQuerier{err: domain.ErrEmptyQuestion}
	router := newTestRouter(q, &mockHealth{})

	rr := postChat(t, router, `{"message":"   "}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var errResp ErrorResponse
	_ = json.NewDecoder(rr.Body).Decode(&errResp)
	if errResp.Code != codeEmptyMessage {
		t.Errorf("expected code %s, got %s", codeEmptyMessage, errResp.Code)
	}
	if errResp.Message != "Message cannot be empty" {
		t.Errorf("unexpected message %q", errResp.Message)
	}
}

func TestChat_PipelineErrors_MappedToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{"embedding", fmt.Errorf("embed question: %w", domain.ErrEmbedding), codeEmbeddingFailed, http.StatusBadGateway},
		{"retrieval", fmt.Errorf("retrieve candidates: %w", domain.ErrRetrieval), codeRetrievalFailed, http.StatusBadGateway},
		{"generation", fmt.Errorf("generate answer: %w", domain.ErrGeneration), codeGenerationFailed, http.StatusBadGateway},
		{"access denied", fmt.Errorf("generate answer: %w", domain.NewAccessDenied(403)), codeAccessDenied, http.StatusBadGateway},
		{"not configured", domain.ErrNotConfigured, codeInternalError, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), codeInternalError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockQuerier{err: tc.err}, &mockHealth{})

			rr := postChat(t, router, `{"message":"q"}`)
			if rr.Code != tc.wantHTTP {
				t.Fatalf("expected %d, got %d", tc.wantHTTP, rr.Code)
			}

			var errResp ErrorResponse
			_ = json.NewDecoder(rr.Body).Decode(&errResp)
			if errResp.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, errResp.Code)
			}
		})
	}
}

func TestChat_ErrorMessagesNeverLeakInternals(t *testing.T) {
	err := fmt.Errorf("embed question: embedding API error 500: secret-internal-detail: %w", domain.ErrEmbedding)
	router := newTestRouter(&mockQuerier{err: err}, &mockHealth{})

	rr := postChat(t, router, `{"message":"q"}`)
	if strings.Contains(rr.Body.String(), "secret-internal-detail") {
		t.Error("provider internals leaked to the client")
	}
}

func TestHealth_OK(t *testing.T) {
	h := &mockHealth{report: healthuc.Report{
		Status: healthuc.Healthy,
		Checks: map[string]healthuc.CheckResult{"index": healthuc.CheckOK},
	}}
	router := newTestRouter(&mockQuerier{}, h)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp HealthResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Status != "ok" || resp.Checks["index"] != "ok" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestHealth_Degraded_503(t *testing.T) {
	h := &mockHealth{report: healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{"index": healthuc.CheckError},
	}}
	router := newTestRouter(&mockQuerier{}, h)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestMetrics_Exposed(t *testing.T) {
	router := newTestRouter(&mockQuerier{}, &mockHealth{})

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
