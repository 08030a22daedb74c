package dnsaudit

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// ResultRow is the unit of analysis output. Its six fields form a stable
// schema consumed unchanged by every downstream writer (table, CSV, JSON,
// MessagePack). Rows are immutable once produced.
type ResultRow struct {
	// Domain is the analyzed domain, not the derived query name.
	Domain string `json:"domain"`

	// RecordType is the logical type the row reports on.
	RecordType RecordType `json:"record_type"`

	// Selector is the DKIM selector, empty for every other type.
	Selector string `json:"selector,omitempty"`

	// Value holds the pipe-joined record values, or an error or
	// missing-record marker text.
	Value string `json:"value"`

	// Issues describes the findings. Empty when Severity is unset or OK.
	Issues string `json:"issues,omitempty"`

	// Severity classifies the row's worst finding.
	Severity Severity `json:"severity"`
}

// Report is the output of one analysis run: the severity-ranked rows plus a
// run identifier and timestamp.
type Report struct {
	// ID is a ULID identifying the run.
	ID string `json:"id"`

	// GeneratedAt is the UTC time the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// Rows are the results, sorted by severity rank descending. Ties keep
	// their dispatch order.
	Rows []ResultRow `json:"results"`
}

// HasCritical reports whether any row carries SeverityCritical.
func (r *Report) HasCritical() bool {
	for _, row := range r.Rows {
		if row.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

func newReport(rows []ResultRow) *Report {
	return &Report{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}
}

// sortRows stably orders rows by severity rank, most severe first.
func sortRows(rows []ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Severity.Rank() > rows[j].Severity.Rank()
	})
}
