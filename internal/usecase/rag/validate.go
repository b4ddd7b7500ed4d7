package rag

import (
	"github.com/aven-cloud/avenbot/internal/domain"
	"github.com/aven-cloud/avenbot/internal/domain/bundle"
	"github.com/aven-cloud/avenbot/internal/domain/trust"
)

// validateSources normalizes attribution seeds into the public source
// records. Seeds without a resolvable host are dropped rather than failing
// the whole answer. At most domain.MaxSources records are returned, ranking
// order preserved. Returns the records plus the trusted-domain count.
func validateSources(seeds []bundle.Seed, filter trust.Filter) ([]domain.SourceAttribution, int) {
	sources := make([]domain.SourceAttribution, 0, domain.MaxSources)
	trusted := 0

	for i := range seeds {
		if len(sources) >= domain.MaxSources {
			break
		}
		s := &seeds[i]

		if s.Source == "" || s.Domain == "" {
			continue
		}

		onTrusted := filter.AllowsHost(s.Domain)
		if onTrusted {
			trusted++
		}

		sources = append(sources, domain.NewSourceAttribution(
			s.Source, s.Title, s.Score, s.Domain,
			s.Verified, s.CrawlMethod, s.SourceType, onTrusted,
		))
	}

	return sources, trusted
}
