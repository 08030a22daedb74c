package dnsaudit

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// OrganizationalDomain returns the organizational domain for the given domain.
//
// The organizational domain is the domain directly under the public suffix.
// For example:
//   - example.com -> example.com
//   - sub.example.com -> example.com
//   - sub.example.co.uk -> example.co.uk
//
// DMARC discovery falls back to the organizational domain when the exact
// domain publishes no policy (RFC 7489 Section 6.6.3).
func OrganizationalDomain(domain string) string {
	// Normalize: remove trailing dot and convert to lowercase
	domain = strings.TrimSuffix(strings.ToLower(domain), ".")

	if domain == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		// Cannot determine the eTLD+1 (e.g. "localhost"); treat the domain
		// as its own organizational domain.
		return domain
	}

	return etld1
}
