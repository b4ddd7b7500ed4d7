// Package trust enforces the source-domain safety boundary: only passages
// originating from the configured root domain (or a subdomain of it) may
// influence or be cited in an answer.
package trust

import (
	"net/url"
	"strings"
)

// Filter checks source URLs against a single trusted root domain.
// This is a defense-in-depth check independent of any verification flag
// the ingester wrote into metadata.
type Filter struct {
	root string
}

// NewFilter creates a trust filter for rootDomain (e.g. "aven.com").
func NewFilter(rootDomain string) Filter {
	return Filter{root: strings.ToLower(strings.TrimSpace(rootDomain))}
}

// Root returns the configured root domain.
func (f Filter) Root() string { return f.root }

// AllowsHost reports whether host equals the root domain or is a
// subdomain of it. Comparison is case-insensitive; an empty host fails.
func (f Filter) AllowsHost(host string) bool {
	if f.root == "" || host == "" {
		return false
	}
	h := strings.ToLower(host)
	return h == f.root || strings.HasSuffix(h, "."+f.root)
}

// AllowsURL reports whether rawURL parses and its host passes AllowsHost.
// Candidates with a missing or unparseable source URL are rejected: an
// unattributable passage cannot be verified against the trusted domain.
func (f Filter) AllowsURL(rawURL string) bool {
	host := ExtractHost(rawURL)
	return f.AllowsHost(host)
}

// ExtractHost returns the lowercase host of rawURL, "" when absent or
// unparseable.
func ExtractHost(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
