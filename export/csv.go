package export

import (
	"encoding/csv"
	"io"

	"github.com/synqronlabs/dnsaudit"
)

// csvHeader mirrors the ResultRow field order.
var csvHeader = []string{"Domain", "RecordType", "Selector", "Value", "Issues", "Severity"}

// CSV writes the report rows as CSV, one line per row after a header line.
// The header is written even for an empty report.
func CSV(w io.Writer, report *dnsaudit.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{
			row.Domain,
			string(row.RecordType),
			row.Selector,
			row.Value,
			row.Issues,
			string(row.Severity),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
