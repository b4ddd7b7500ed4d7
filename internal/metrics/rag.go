package metrics

import "github.com/prometheus/client_golang/prometheus"

// RAG pipeline and provider Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "rag_queries_total",
			Help:      "Total RAG queries by outcome",
		},
		// outcome: answered / fallback / embedding_error / retrieval_error /
		// generation_error / access_denied
		[]string{"outcome"},
	)

	FilteredCandidatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "rag_filtered_candidates_total",
			Help:      "Candidates rejected by the domain trust filter",
		},
	)

	ContextPassages = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "avenbot",
			Name:      "rag_context_passages",
			Help:      "Passages assembled into the context per query",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 10},
		},
	)

	TrustedSourcesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "rag_trusted_sources_total",
			Help:      "Validated sources on the trusted domain returned to callers",
		},
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "avenbot",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "generation_requests_total",
			Help:      "Total number of chat completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "avenbot",
			Name:      "generation_request_duration_seconds",
			Help:      "Chat completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	GenerationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "avenbot",
			Name:      "generation_tokens_total",
			Help:      "Total chat completion tokens consumed",
		},
		[]string{"provider", "model", "type"}, // type: prompt / completion / total
	)
)

var ragMetricsRegistered bool

// RegisterRAGMetrics registers pipeline and provider metrics. Must be
// called once from main.
func RegisterRAGMetrics() {
	if ragMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(FilteredCandidatesTotal)
	prometheus.MustRegister(ContextPassages)
	prometheus.MustRegister(TrustedSourcesTotal)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingCacheTotal)
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationTokensTotal)
	ragMetricsRegistered = true
}
