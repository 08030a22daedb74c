package dnsaudit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/synqronlabs/dnsaudit/dns"
)

// Config contains configuration for an Analyzer. The zero value is usable:
// every field has a sensible default.
type Config struct {
	// Resolver performs the DNS queries. Defaults to a wire-level client
	// with system nameservers.
	Resolver dns.Resolver

	// Logger receives per-query debug lines and per-run summaries.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Concurrency bounds the number of in-flight queries. Default is 8.
	Concurrency int

	// QueryTimeout is applied to each individual query. Default is 5 seconds.
	// A timed-out query produces a lookup-error row like any other failure.
	QueryTimeout time.Duration

	// DMARCOrgFallback enables falling back to the organizational domain
	// (public suffix list) when a domain publishes no DMARC policy of its
	// own, as DMARC discovery specifies. Disabled by default so each row
	// reflects exactly one query name.
	DMARCOrgFallback bool
}

// Analyzer collects DNS records for a set of domains and classifies them
// against email and domain security best practices. It is safe for
// concurrent use; all state is read-only after construction.
type Analyzer struct {
	resolver     dns.Resolver
	logger       *slog.Logger
	concurrency  int
	queryTimeout time.Duration
	orgFallback  bool
}

// New creates an Analyzer, filling zero-value config fields with defaults.
func New(config Config) *Analyzer {
	if config.Resolver == nil {
		config.Resolver = dns.NewClient(dns.ClientConfig{})
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 8
	}
	if config.QueryTimeout <= 0 {
		config.QueryTimeout = 5 * time.Second
	}

	return &Analyzer{
		resolver:     config.Resolver,
		logger:       config.Logger,
		concurrency:  config.Concurrency,
		queryTimeout: config.QueryTimeout,
		orgFallback:  config.DMARCOrgFallback,
	}
}

// query is one unit of work in a run's plan: a single DNS query tagged with
// the logical type it serves, or a pre-resolved synthetic row.
type query struct {
	domain   string
	rtype    RecordType
	selector string
	name     string
	physical dns.Type

	// row, when set, is emitted as-is without issuing a query.
	row *ResultRow
}

// Run analyzes the requested domains and returns the severity-ranked report.
//
// If no record types are given, the default set applies: the full set, or
// the security-relevant subset when best-practice evaluation is enabled.
// Every dispatched query yields exactly one row; resolver failures become
// rows rather than aborting the run. The only error Run returns is a
// request-level configuration problem (ErrNoDomains).
func (a *Analyzer) Run(ctx context.Context, req AnalysisRequest, types ...RecordType) (*Report, error) {
	if len(req.Domains) == 0 {
		return nil, ErrNoDomains
	}
	if len(types) == 0 {
		if req.BestPractices {
			types = BestPracticeRecordTypes
		} else {
			types = DefaultRecordTypes
		}
	}

	plan := buildPlan(req, types)
	rows := make([]ResultRow, len(plan))

	// Fan out over the plan; each query writes its own slot so the
	// pre-sort order is the dispatch order regardless of completion order.
	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, q := range plan {
		g.Go(func() error {
			rows[i] = a.execute(ctx, req, q)
			return nil
		})
	}
	_ = g.Wait()

	sortRows(rows)
	report := newReport(rows)

	a.logger.Info("analysis complete",
		"report", report.ID,
		"domains", len(req.Domains),
		"rows", len(rows),
		"critical", report.HasCritical())
	return report, nil
}

// buildPlan expands (domains x types x selectors-if-DKIM) into the ordered
// query plan. DKIM without selectors contributes a synthetic finding instead
// of queries.
func buildPlan(req AnalysisRequest, types []RecordType) []query {
	var plan []query
	for _, domain := range req.Domains {
		for _, t := range types {
			if t != RecordDKIM {
				plan = append(plan, query{
					domain:   domain,
					rtype:    t,
					name:     t.QueryName(domain, ""),
					physical: t.Physical(),
				})
				continue
			}

			if len(req.Selectors) == 0 {
				const msg = "no DKIM selector provided"
				plan = append(plan, query{
					domain: domain,
					rtype:  t,
					row: &ResultRow{
						Domain:     domain,
						RecordType: t,
						Value:      msg,
						Issues:     msg,
						Severity:   SeverityCritical,
					},
				})
				continue
			}

			for _, sel := range req.Selectors {
				plan = append(plan, query{
					domain:   domain,
					rtype:    t,
					selector: sel,
					name:     t.QueryName(domain, sel),
					physical: t.Physical(),
				})
			}
		}
	}
	return plan
}

// execute resolves one planned query and folds the answers into a row.
func (a *Analyzer) execute(ctx context.Context, req AnalysisRequest, q query) ResultRow {
	if q.row != nil {
		return *q.row
	}

	qctx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	values, err := a.resolver.Lookup(qctx, q.name, q.physical)
	if q.rtype == RecordDMARC && a.orgFallback {
		values, err = a.dmarcOrgLookup(qctx, q.domain, values, err)
	}
	if err != nil {
		a.logger.Debug("lookup failed",
			"name", q.name, "type", string(q.physical), "error", err)
		sev := SeverityUnset
		if req.BestPractices {
			sev = SeverityCritical
		}
		return ResultRow{
			Domain:     q.domain,
			RecordType: q.rtype,
			Selector:   q.selector,
			Value:      err.Error(),
			Issues:     "lookup error",
			Severity:   sev,
		}
	}

	records := normalizeRecords(q.rtype, values)

	var sev Severity
	var issues string
	if req.BestPractices {
		sev, issues = Evaluate(q.rtype, records)
	}

	// No valid record after filtering overrides the evaluation outcome.
	if requiresValidRecord(q.rtype) && len(records) == 0 {
		issues = missingRecordMarker(q.rtype)
		sev = SeverityUnset
		if req.BestPractices {
			sev = SeverityCritical
		}
		records = []string{issues}
	}

	if sev == SeverityUnset || sev == SeverityOK {
		issues = ""
	}

	return ResultRow{
		Domain:     q.domain,
		RecordType: q.rtype,
		Selector:   q.selector,
		Value:      strings.Join(records, "|"),
		Issues:     issues,
		Severity:   sev,
	}
}

// dmarcOrgLookup retries DMARC discovery at the organizational domain when
// the exact domain yielded no valid record. The original result is kept
// whenever the fallback does not improve on it.
func (a *Analyzer) dmarcOrgLookup(ctx context.Context, domain string, values []string, err error) ([]string, error) {
	if err == nil && len(normalizeRecords(RecordDMARC, values)) > 0 {
		return values, nil
	}
	if err != nil && !dns.IsNotFound(err) {
		return values, err
	}

	org := OrganizationalDomain(domain)
	if org == "" || org == domain {
		return values, err
	}

	fallback, ferr := a.resolver.Lookup(ctx, RecordDMARC.QueryName(org, ""), dns.TypeTXT)
	if ferr != nil || len(normalizeRecords(RecordDMARC, fallback)) == 0 {
		return values, err
	}

	a.logger.Debug("DMARC record found at organizational domain",
		"domain", domain, "org", org)
	return fallback, nil
}
