// Package bundle assembles trust-filtered retrieval candidates into the
// bounded context window fed to answer generation.
package bundle

import (
	"github.com/aven-cloud/avenbot/internal/domain"
	"github.com/aven-cloud/avenbot/internal/domain/trust"
)

// Seed is the pre-validation attribution record built alongside each
// accepted passage. The validator normalizes seeds into the public schema.
type Seed struct {
	Source      string
	Title       string
	Score       float64
	Domain      string
	Verified    bool
	CrawlMethod string
	SourceType  string
}

// Bundle is an ordered set of passages plus parallel attribution seeds.
// Insertion order is the retrieval ranking order. Owned by one query.
type Bundle struct {
	passages []string
	seeds    []Seed
}

// Passages returns the accepted passage texts in ranking order.
func (b *Bundle) Passages() []string { return b.passages }

// Seeds returns the attribution seeds parallel to Passages.
func (b *Bundle) Seeds() []Seed { return b.seeds }

// Len returns the number of accepted passages.
func (b *Bundle) Len() int { return len(b.passages) }

// Empty reports whether no usable context survived assembly.
func (b *Bundle) Empty() bool { return len(b.passages) == 0 }

// Result carries the assembled bundle and filtering observability counts.
type Result struct {
	Bundle   Bundle
	Rejected int // candidates dropped by the trust filter
	NoText   int // trusted candidates without extractable content
}

// Assemble filters candidates through the trust filter, extracts passage
// text via the ordered content probe, and accumulates up to maxPassages
// passages. Candidates are never merged: rejected ones are dropped and
// counted. Ranking order is preserved.
func Assemble(candidates []domain.Candidate, filter trust.Filter, maxPassages int) Result {
	if maxPassages <= 0 {
		maxPassages = domain.MaxContextPassages
	}

	var res Result
	for i := range candidates {
		c := &candidates[i]

		sourceURL := c.SourceURL()
		if !filter.AllowsURL(sourceURL) {
			res.Rejected++
			continue
		}

		content := c.Content()
		if content == "" {
			res.NoText++
			continue
		}

		res.Bundle.passages = append(res.Bundle.passages, content)
		res.Bundle.seeds = append(res.Bundle.seeds, seedFromCandidate(c, sourceURL))

		if res.Bundle.Len() >= maxPassages {
			break
		}
	}
	return res
}

func seedFromCandidate(c *domain.Candidate, sourceURL string) Seed {
	return Seed{
		Source:      sourceURL,
		Title:       metaOr(c, domain.MetaTitle, "Unknown"),
		Score:       c.Score(),
		Domain:      trust.ExtractHost(sourceURL),
		Verified:    c.Meta(domain.MetaVerified) == "true",
		CrawlMethod: metaOr(c, domain.MetaCrawlMethod, "unknown"),
		SourceType:  metaOr(c, domain.MetaSourceType, "unknown"),
	}
}

func metaOr(c *domain.Candidate, key, fallback string) string {
	if v := c.Meta(key); v != "" {
		return v
	}
	return fallback
}
