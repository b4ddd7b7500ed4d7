// Package db defines the storage contract the service consumes: vector
// similarity search over the pre-populated knowledge base plus a small
// key-value surface for the embedding cache.
package db

import (
	"context"
	"time"
)

// Store is the full storage contract.
type Store interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Namespace    string // restricts hits to one logical partition; empty = all
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
