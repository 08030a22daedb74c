package dns

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	mdns "github.com/miekg/dns"
)

// ClientConfig contains configuration for the wire-level DNS client.
type ClientConfig struct {
	// Nameservers is a list of DNS servers to query (e.g., "8.8.8.8:53").
	// If empty, system resolvers from /etc/resolv.conf are used,
	// falling back to public DNS (8.8.8.8, 1.1.1.1).
	Nameservers []string

	// Timeout is the timeout for individual DNS queries. Default is 5 seconds.
	Timeout time.Duration

	// Retries is the number of retries for failed queries. Default is 2.
	Retries int
}

// Client implements the Resolver interface using github.com/miekg/dns.
type Client struct {
	config ClientConfig
	client *mdns.Client
}

var _ Resolver = (*Client)(nil)

// NewClient creates a new DNS client, filling zero-value config fields with
// defaults.
func NewClient(config ClientConfig) *Client {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Retries == 0 {
		config.Retries = 2
	}
	if len(config.Nameservers) == 0 {
		config.Nameservers = getSystemNameservers()
	}

	return &Client{
		config: config,
		client: &mdns.Client{
			Timeout: config.Timeout,
		},
	}
}

// getSystemNameservers tries to get system DNS servers from resolv.conf.
func getSystemNameservers() []string {
	config, err := mdns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		// Fallback to common public DNS servers
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}

	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		if !strings.Contains(s, ":") {
			s = s + ":53"
		}
		servers = append(servers, s)
	}
	return servers
}

// ensureAbsolute ensures the domain name ends with a dot (FQDN format).
func ensureAbsolute(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}

// Lookup performs a single DNS query and renders the answers to
// presentation form. Answers of a different type than requested (e.g. CNAME
// records returned alongside address answers) are dropped.
func (c *Client) Lookup(ctx context.Context, name string, qtype Type) ([]string, error) {
	wireType, ok := mdns.StringToType[string(qtype)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, qtype)
	}

	resp, err := c.query(ctx, name, wireType)
	if err != nil {
		return nil, err
	}

	var records []string
	for _, rr := range resp.Answer {
		if rr.Header().Rrtype != wireType {
			continue
		}
		records = append(records, recordText(rr))
	}

	// NOERROR with an empty answer section is a valid "no records" result,
	// distinct from NXDOMAIN.
	return records, nil
}

// query sends the wire query with retries across the configured nameservers.
func (c *Client) query(ctx context.Context, name string, qtype uint16) (*mdns.Msg, error) {
	m := new(mdns.Msg)
	m.SetQuestion(ensureAbsolute(name), qtype)
	m.RecursionDesired = true

	var lastErr error

	for i := 0; i <= c.config.Retries; i++ {
		for _, server := range c.config.Nameservers {
			// Check context cancellation
			select {
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					return nil, ErrTimeout
				}
				return nil, ctx.Err()
			default:
			}

			resp, _, err := c.client.ExchangeContext(ctx, m, server)
			if err != nil {
				if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
					lastErr = ErrTimeout
				} else {
					lastErr = fmt.Errorf("dns query failed: %w", err)
				}
				continue
			}

			switch resp.Rcode {
			case mdns.RcodeSuccess:
				return resp, nil
			case mdns.RcodeNameError: // NXDOMAIN
				return nil, ErrNotFound
			case mdns.RcodeServerFailure:
				lastErr = ErrServFail
				continue
			case mdns.RcodeRefused:
				lastErr = ErrRefused
				continue
			default:
				lastErr = fmt.Errorf("dns: unexpected rcode %d", resp.Rcode)
				continue
			}
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrServFail
}

// recordText renders a resource record's data in presentation form, without
// the owner name and TTL. Hostnames lose their trailing dot.
func recordText(rr mdns.RR) string {
	switch r := rr.(type) {
	case *mdns.A:
		return r.A.String()
	case *mdns.AAAA:
		return r.AAAA.String()
	case *mdns.TXT:
		// TXT records may be split into multiple character strings, join them
		// per RFC 7208 Section 3.3
		return strings.Join(r.Txt, "")
	case *mdns.MX:
		return fmt.Sprintf("%d %s", r.Preference, trimDot(r.Mx))
	case *mdns.NS:
		return trimDot(r.Ns)
	case *mdns.CNAME:
		return trimDot(r.Target)
	case *mdns.SOA:
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			trimDot(r.Ns), trimDot(r.Mbox), r.Serial, r.Refresh, r.Retry, r.Expire, r.Minttl)
	case *mdns.CAA:
		return fmt.Sprintf("%d %s %q", r.Flag, r.Tag, r.Value)
	default:
		// Fall back to the full presentation format minus the header.
		header := rr.Header().String()
		return strings.TrimPrefix(rr.String(), header)
	}
}

func trimDot(name string) string {
	return strings.TrimSuffix(name, ".")
}

// Config returns the client's effective configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}
