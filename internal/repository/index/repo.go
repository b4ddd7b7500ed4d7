// Package index reads retrieval candidates from the pre-populated vector
// index. The index is written by the crawler pipeline; this service only
// searches it.
package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/aven-cloud/avenbot/internal/db"
	"github.com/aven-cloud/avenbot/internal/domain"
)

// store is the consumer interface for index search (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements the retriever contract over a db.Store.
type Repo struct {
	store     store
	indexName string
	namespace string
}

// New creates an index repository bound to one index and namespace.
func New(s store, indexName, namespace string) *Repo {
	return &Repo{store: s, indexName: indexName, namespace: namespace}
}

// returnFields lists every hash field the pipeline consumes per hit.
func returnFields() []string {
	fields := []string{"__vector_score"}
	fields = append(fields, domain.ContentFields...)
	fields = append(fields,
		domain.MetaSource,
		domain.MetaTitle,
		domain.MetaVerified,
		domain.MetaCrawlMethod,
		domain.MetaSourceType,
	)
	return fields
}

// Search returns the topK nearest candidates ordered by descending
// similarity as reported by the index. An empty result is not an error.
func (r *Repo) Search(ctx context.Context, vector []float32, topK int) ([]domain.Candidate, error) {
	q := &db.KNNQuery{
		IndexName:    r.indexName,
		Namespace:    r.namespace,
		Vector:       vector,
		K:            topK,
		ReturnFields: returnFields(),
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search index %s: %w: %w", r.indexName, domain.ErrRetrieval, err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	prefix := domain.KeyPrefix + "doc:"
	candidates := make([]domain.Candidate, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)
		candidates = append(candidates, domain.NewCandidate(id, entry.Score, entry.Fields))
	}
	return candidates, nil
}
