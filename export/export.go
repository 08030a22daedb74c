// Package export writes analysis reports in exchange formats: CSV, JSON and
// MessagePack. Writers add no domain logic; they serialize the stable
// six-field row schema exactly as the analyzer produced it.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/synqronlabs/dnsaudit"
)

// Format identifies an output format.
type Format string

const (
	FormatCSV         Format = "csv"
	FormatJSON        Format = "json"
	FormatMessagePack Format = "msgpack"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMessagePack:
		return FormatMessagePack, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// Encode writes the report to w in the given format.
func Encode(w io.Writer, format Format, report *dnsaudit.Report) error {
	switch format {
	case FormatCSV:
		return CSV(w, report)
	case FormatJSON:
		return JSON(w, report)
	case FormatMessagePack:
		return MessagePack(w, report)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}
