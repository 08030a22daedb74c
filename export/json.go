package export

import (
	"encoding/json"
	"io"

	"github.com/synqronlabs/dnsaudit"
)

// JSON writes the report as an indented JSON document carrying the run ID,
// the generation timestamp and the rows.
func JSON(w io.Writer, report *dnsaudit.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
