package dns

import (
	"context"
	"errors"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isNotFound bool
		isTimeout  bool
		isServFail bool
		isTemp     bool
	}{
		{
			name:       "not found error",
			err:        ErrNotFound,
			isNotFound: true,
		},
		{
			name:      "timeout error",
			err:       ErrTimeout,
			isTimeout: true,
			isTemp:    true,
		},
		{
			name:       "server failure",
			err:        ErrServFail,
			isServFail: true,
			isTemp:     true,
		},
		{
			name: "unrelated error",
			err:  errors.New("wrapper: " + ErrNotFound.Error()),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNotFound)
			}
			if got := IsTimeout(tt.err); got != tt.isTimeout {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.isTimeout)
			}
			if got := IsServFail(tt.err); got != tt.isServFail {
				t.Errorf("IsServFail() = %v, want %v", got, tt.isServFail)
			}
			if got := IsTemporary(tt.err); got != tt.isTemp {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.isTemp)
			}
		})
	}
}

func TestMockResolverLookup(t *testing.T) {
	resolver := &MockResolver{
		Records: map[string][]string{
			"txt example.com.": {"v=spf1 -all"},
			"mx example.com.":  {"10 mx.example.com"},
			"a empty.example.": {},
		},
		Fail: []string{"txt fail.example."},
	}

	ctx := context.Background()

	records, err := resolver.Lookup(ctx, "example.com", TypeTXT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0] != "v=spf1 -all" {
		t.Errorf("records = %v", records)
	}

	// Trailing dot is optional in queries.
	if _, err := resolver.Lookup(ctx, "example.com.", TypeMX); err != nil {
		t.Errorf("FQDN lookup failed: %v", err)
	}

	// Present key with empty value: the name exists without records.
	records, err = resolver.Lookup(ctx, "empty.example", TypeA)
	if err != nil {
		t.Errorf("empty record set returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want none", records)
	}

	// Missing key models NXDOMAIN.
	if _, err := resolver.Lookup(ctx, "missing.example", TypeTXT); !IsNotFound(err) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	if _, err := resolver.Lookup(ctx, "fail.example", TypeTXT); !IsServFail(err) {
		t.Errorf("error = %v, want ErrServFail", err)
	}
}

func TestMockResolverQueryLog(t *testing.T) {
	resolver := &MockResolver{}
	ctx := context.Background()

	_, _ = resolver.Lookup(ctx, "a.example", TypeTXT)
	_, _ = resolver.Lookup(ctx, "b.example", TypeMX)

	got := resolver.Queries()
	want := []string{"txt a.example.", "mx b.example."}
	if len(got) != len(want) {
		t.Fatalf("queries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("query[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMockResolverHonorsContext(t *testing.T) {
	resolver := &MockResolver{
		Records: map[string][]string{"txt example.com.": {"value"}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := resolver.Lookup(ctx, "example.com", TypeTXT); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
