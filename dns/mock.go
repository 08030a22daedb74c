package dns

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MockResolver is a Resolver used for testing.
// Set DNS records in Records, which maps "type name" keys (lowercase type,
// FQDN with trailing dot, e.g. "txt example.com.") to answer values.
type MockResolver struct {
	Records map[string][]string

	// Fail contains queries that will return a temporary error (SERVFAIL).
	// Same "type name" key format as Records.
	Fail []string

	mu      sync.Mutex
	queries []string
}

var _ Resolver = (*MockResolver)(nil)

// ensureFQDN ensures the name ends with a dot.
func ensureFQDN(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}

// key builds the lookup key for a query.
func key(name string, qtype Type) string {
	return strings.ToLower(string(qtype)) + " " + ensureFQDN(name)
}

// Lookup returns the configured records for the query, recording it in the
// query log.
func (r *MockResolver) Lookup(ctx context.Context, name string, qtype Type) ([]string, error) {
	k := key(name, qtype)

	r.mu.Lock()
	r.queries = append(r.queries, k)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if slices.Contains(r.Fail, k) {
		return nil, ErrServFail
	}

	// A present key with an empty value models a name that exists without
	// records of the queried type; a missing key models NXDOMAIN.
	records, ok := r.Records[k]
	if !ok {
		return nil, ErrNotFound
	}
	return records, nil
}

// Queries returns the log of queries issued so far, in order.
func (r *MockResolver) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.queries)
}
