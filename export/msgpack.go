package export

import (
	"io"

	"github.com/tinylib/msgp/msgp"

	"github.com/synqronlabs/dnsaudit"
)

// MessagePack writes the report as a MessagePack document with the same
// shape as the JSON export: a map carrying the run ID, the generation
// timestamp and the rows as an array of field maps.
func MessagePack(w io.Writer, report *dnsaudit.Report) error {
	mw := msgp.NewWriter(w)

	if err := mw.WriteMapHeader(3); err != nil {
		return err
	}
	if err := writeStringField(mw, "id", report.ID); err != nil {
		return err
	}
	if err := mw.WriteString("generated_at"); err != nil {
		return err
	}
	if err := mw.WriteTime(report.GeneratedAt); err != nil {
		return err
	}
	if err := mw.WriteString("results"); err != nil {
		return err
	}
	if err := mw.WriteArrayHeader(uint32(len(report.Rows))); err != nil {
		return err
	}

	for _, row := range report.Rows {
		if err := writeRow(mw, row); err != nil {
			return err
		}
	}

	return mw.Flush()
}

func writeRow(mw *msgp.Writer, row dnsaudit.ResultRow) error {
	if err := mw.WriteMapHeader(6); err != nil {
		return err
	}

	fields := []struct{ key, value string }{
		{"domain", row.Domain},
		{"record_type", string(row.RecordType)},
		{"selector", row.Selector},
		{"value", row.Value},
		{"issues", row.Issues},
		{"severity", string(row.Severity)},
	}
	for _, f := range fields {
		if err := writeStringField(mw, f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}

func writeStringField(mw *msgp.Writer, key, value string) error {
	if err := mw.WriteString(key); err != nil {
		return err
	}
	return mw.WriteString(value)
}
