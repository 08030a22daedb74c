package dnsaudit

import "strings"

// versionTokens maps logical types to the version marker a raw TXT answer
// must carry to count as a record of that type. Matching is case-insensitive
// for every type: TXT record tags are conventionally case-insensitive, and a
// single policy is easier to reason about than per-type exceptions.
var versionTokens = map[RecordType]string{
	RecordSPF:   "v=spf1",
	RecordDMARC: "v=dmarc1",
	RecordBIMI:  "v=bimi1",
}

// normalizeRecords filters raw answers down to those semantically valid for
// the logical type. Types without a version marker pass through unchanged.
func normalizeRecords(t RecordType, values []string) []string {
	token, ok := versionTokens[t]
	if !ok {
		return values
	}

	var valid []string
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), token) {
			valid = append(valid, v)
		}
	}
	return valid
}

// missingRecordMarker is the synthesized value used when filtering leaves no
// valid record for a type that requires a version marker.
func missingRecordMarker(t RecordType) string {
	return "no valid " + string(t) + " record"
}

// requiresValidRecord reports whether the logical type synthesizes a
// missing-record marker when no valid answer remains after filtering.
func requiresValidRecord(t RecordType) bool {
	_, ok := versionTokens[t]
	return ok
}
