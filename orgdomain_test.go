package dnsaudit

import "testing"

func TestOrganizationalDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"example.com", "example.com"},
		{"sub.example.com", "example.com"},
		{"deep.sub.example.com", "example.com"},
		{"example.co.uk", "example.co.uk"},
		{"sub.example.co.uk", "example.co.uk"},
		{"Example.COM.", "example.com"},
		{"localhost", "localhost"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := OrganizationalDomain(tt.domain); got != tt.want {
			t.Errorf("OrganizationalDomain(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}
