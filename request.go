package dnsaudit

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// AnalysisRequest describes one analysis run: the domains to inspect, the
// DKIM selectors to probe, and whether findings should be evaluated against
// best practices.
//
// Construct requests with NewAnalysisRequest, which validates and normalizes
// the input. The zero value is not usable.
type AnalysisRequest struct {
	// Domains are the domains to analyze, in the order given by the caller.
	Domains []string

	// Selectors are the DKIM selectors to probe for each domain.
	// May be empty; DKIM analysis then produces a finding instead of queries.
	Selectors []string

	// BestPractices enables the best-practice rule engine. When disabled,
	// rows carry raw values with an unset severity.
	BestPractices bool
}

// NewAnalysisRequest builds a validated request. Domains are lowercased,
// stripped of trailing dots and converted to their ASCII (punycode) form.
// It returns ErrNoDomains when the domain list is empty and an error when a
// domain is not valid under IDNA lookup rules.
func NewAnalysisRequest(domains, selectors []string, bestPractices bool) (AnalysisRequest, error) {
	if len(domains) == 0 {
		return AnalysisRequest{}, ErrNoDomains
	}

	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d == "" {
			return AnalysisRequest{}, ErrNoDomains
		}
		ascii, err := idna.Lookup.ToASCII(d)
		if err != nil {
			return AnalysisRequest{}, fmt.Errorf("dnsaudit: invalid domain %q: %w", d, err)
		}
		normalized = append(normalized, ascii)
	}

	cleaned := make([]string, 0, len(selectors))
	for _, s := range selectors {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}

	return AnalysisRequest{
		Domains:       normalized,
		Selectors:     cleaned,
		BestPractices: bestPractices,
	}, nil
}
