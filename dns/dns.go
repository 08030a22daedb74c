// Package dns provides the name-resolution capability consumed by the
// analyzer: a single-query Resolver contract, a wire-level client built on
// github.com/miekg/dns, a standard-library fallback and a mock for tests.
//
// Answers are returned in presentation form (TXT character strings joined,
// MX as "preference host", addresses as dotted/colon literals) so callers
// can treat every record type uniformly as text.
package dns

import "context"

// Type is a physical DNS query type.
type Type string

const (
	TypeA     Type = "A"
	TypeAAAA  Type = "AAAA"
	TypeMX    Type = "MX"
	TypeNS    Type = "NS"
	TypeCNAME Type = "CNAME"
	TypeTXT   Type = "TXT"
	TypeSOA   Type = "SOA"
	TypeCAA   Type = "CAA"
)

// Resolver performs a single DNS query and returns the answers as an ordered
// list of presentation-form strings. Implementations must be safe for
// concurrent use; the analyzer fans queries out over one shared Resolver.
//
// A name that does not exist returns ErrNotFound. A name that exists but
// holds no records of the queried type yields an empty result with a nil
// error. All failures carry a human-readable cause; callers that need to
// distinguish failure classes can use the Is* helpers in this package.
type Resolver interface {
	Lookup(ctx context.Context, name string, qtype Type) ([]string, error)
}
