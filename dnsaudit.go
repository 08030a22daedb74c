// Package dnsaudit collects DNS records for a set of domains and classifies
// them against email and domain security best practices (SPF, DMARC, DKIM,
// BIMI, MX, A/AAAA, NS), producing a severity-ranked list of findings.
//
// # Analysis
//
// Build a request, create an analyzer and run it:
//
//	req, err := dnsaudit.NewAnalysisRequest(
//	    []string{"example.com"},
//	    []string{"default", "google"}, // DKIM selectors
//	    true,                          // evaluate best practices
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	analyzer := dnsaudit.New(dnsaudit.Config{})
//	report, err := analyzer.Run(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range report.Rows {
//	    fmt.Println(row.Severity, row.Domain, row.RecordType, row.Issues)
//	}
//
// Rows are sorted by severity, most severe first. Each dispatched query
// produces exactly one row; DKIM produces one row per selector. Resolver
// failures never abort a run, they surface as rows with a "lookup error"
// issue.
//
// # Resolution
//
// The analyzer depends only on the dns.Resolver contract. The dns package
// provides a wire-level client over github.com/miekg/dns with configurable
// nameservers, timeouts and retries, a standard-library fallback and a mock
// for tests:
//
//	resolver := dns.NewClient(dns.ClientConfig{
//	    Nameservers: []string{"9.9.9.9:53"},
//	    Timeout:     3 * time.Second,
//	})
//	analyzer := dnsaudit.New(dnsaudit.Config{Resolver: resolver})
//
// # Export
//
// The export package writes reports as CSV, JSON or MessagePack; the
// dnsaudit command wraps analysis and export behind a CLI.
package dnsaudit
