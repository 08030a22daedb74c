package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// StdResolver implements the Resolver interface using the standard library
// net package. It supports the query types net.Resolver exposes (A, AAAA,
// MX, NS, CNAME, TXT); SOA and CAA require the wire-level Client.
type StdResolver struct {
	resolver *net.Resolver
}

var _ Resolver = (*StdResolver)(nil)

// NewStdResolver creates a resolver using the standard library.
func NewStdResolver() *StdResolver {
	return &StdResolver{
		resolver: net.DefaultResolver,
	}
}

// NewStdResolverWithDialer creates a resolver using a custom dialer.
// This allows configuring custom DNS servers while using the stdlib interface.
func NewStdResolverWithDialer(dial func(ctx context.Context, network, address string) (net.Conn, error)) *StdResolver {
	return &StdResolver{
		resolver: &net.Resolver{
			PreferGo: true,
			Dial:     dial,
		},
	}
}

// Lookup performs a single DNS query via net.Resolver.
func (r *StdResolver) Lookup(ctx context.Context, name string, qtype Type) ([]string, error) {
	// Strip trailing dot for stdlib compatibility
	name = strings.TrimSuffix(name, ".")

	var records []string
	var err error

	switch qtype {
	case TypeA, TypeAAAA:
		records, err = r.lookupIP(ctx, name, qtype)
	case TypeTXT:
		records, err = r.resolver.LookupTXT(ctx, name)
	case TypeMX:
		var mxs []*net.MX
		mxs, err = r.resolver.LookupMX(ctx, name)
		for _, mx := range mxs {
			records = append(records, fmt.Sprintf("%d %s", mx.Pref, trimDot(mx.Host)))
		}
	case TypeNS:
		var nss []*net.NS
		nss, err = r.resolver.LookupNS(ctx, name)
		for _, ns := range nss {
			records = append(records, trimDot(ns.Host))
		}
	case TypeCNAME:
		var cname string
		cname, err = r.resolver.LookupCNAME(ctx, name)
		if err == nil && cname != "" {
			records = append(records, trimDot(cname))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, qtype)
	}

	if err != nil {
		return nil, convertError(err)
	}
	// net.Resolver surfaces empty answers as not-found errors, so the
	// NOERROR-vs-NXDOMAIN distinction the Client makes is unavailable here.
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

// lookupIP fetches address records, keeping only the requested family.
func (r *StdResolver) lookupIP(ctx context.Context, name string, qtype Type) ([]string, error) {
	network := "ip4"
	if qtype == TypeAAAA {
		network = "ip6"
	}

	ips, err := r.resolver.LookupIP(ctx, network, name)
	if err != nil {
		return nil, err
	}

	records := make([]string, 0, len(ips))
	for _, ip := range ips {
		records = append(records, ip.String())
	}
	return records, nil
}

// convertError converts standard library DNS errors to package errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return ErrNotFound
		}
		if dnsErr.IsTimeout {
			return ErrTimeout
		}
		if dnsErr.IsTemporary {
			return ErrServFail
		}
	}

	return fmt.Errorf("dns lookup failed: %w", err)
}
