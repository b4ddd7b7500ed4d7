package domain

// SourceAttribution is the validated, public-facing record of one passage
// that contributed to an answer. Immutable once built.
type SourceAttribution struct {
	source        string
	title         string
	score         float64
	domain        string
	verified      bool
	crawlMethod   string
	sourceType    string
	trustedDomain bool
}

// NewSourceAttribution creates a source attribution record.
func NewSourceAttribution(
	source, title string, score float64, dom string,
	verified bool, crawlMethod, sourceType string, trustedDomain bool,
) SourceAttribution {
	return SourceAttribution{
		source:        source,
		title:         title,
		score:         score,
		domain:        dom,
		verified:      verified,
		crawlMethod:   crawlMethod,
		sourceType:    sourceType,
		trustedDomain: trustedDomain,
	}
}

// Source returns the source URL.
func (s *SourceAttribution) Source() string { return s.source }

// Title returns the page title.
func (s *SourceAttribution) Title() string { return s.title }

// Score returns the similarity score.
func (s *SourceAttribution) Score() float64 { return s.score }

// Domain returns the host extracted from the source URL.
func (s *SourceAttribution) Domain() string { return s.domain }

// Verified returns the ingester's verification flag.
func (s *SourceAttribution) Verified() bool { return s.verified }

// CrawlMethod returns how the passage was crawled, "unknown" when absent.
func (s *SourceAttribution) CrawlMethod() string { return s.crawlMethod }

// SourceType returns the declared source type, "unknown" when absent.
func (s *SourceAttribution) SourceType() string { return s.sourceType }

// TrustedDomain reports whether the source host passed the trust filter.
func (s *SourceAttribution) TrustedDomain() bool { return s.trustedDomain }
