package domain

// Metadata keys the ingester writes alongside each passage. None of them
// is guaranteed present on a given hit.
const (
	MetaSource      = "source"
	MetaTitle       = "title"
	MetaVerified    = "verified_aven"
	MetaCrawlMethod = "crawl_method"
	MetaSourceType  = "source_type"
)

// ContentFields is the ordered probe list for passage text: the first
// non-empty field wins. The order is part of the retrieval contract.
var ContentFields = []string{"text", "page_content", "content"}

// Candidate is a single retrieval hit from the vector index. It is
// filtered and reordered downstream, never mutated.
type Candidate struct {
	id       string
	score    float64
	metadata map[string]string
}

// NewCandidate creates a retrieval candidate.
func NewCandidate(id string, score float64, metadata map[string]string) Candidate {
	return Candidate{id: id, score: score, metadata: metadata}
}

// ID returns the stored passage identifier.
func (c *Candidate) ID() string { return c.id }

// Score returns the similarity score reported by the index.
func (c *Candidate) Score() float64 { return c.score }

// Meta returns the metadata value for key, or "" when absent.
func (c *Candidate) Meta(key string) string { return c.metadata[key] }

// SourceURL returns the declared source URL, "" when absent.
func (c *Candidate) SourceURL() string { return c.metadata[MetaSource] }

// Content returns the passage text by probing ContentFields in order.
// Returns "" when no recognized field carries text.
func (c *Candidate) Content() string {
	for _, f := range ContentFields {
		if v := c.metadata[f]; v != "" {
			return v
		}
	}
	return ""
}
