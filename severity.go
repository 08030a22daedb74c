package dnsaudit

// Severity classifies the risk level of a finding.
//
// Severities form a total order:
//
//	SeverityUnset < SeverityOK < SeverityInfo < SeverityWarn < SeverityCritical
//
// SeverityUnset is used for rows produced without best-practice evaluation.
type Severity string

const (
	SeverityUnset    Severity = ""
	SeverityOK       Severity = "OK"
	SeverityInfo     Severity = "INFO"
	SeverityWarn     Severity = "WARN"
	SeverityCritical Severity = "CRITICAL"
)

// Rank returns the numeric position of the severity in the total order.
// Unknown values rank alongside SeverityUnset.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityWarn:
		return 3
	case SeverityInfo:
		return 2
	case SeverityOK:
		return 1
	default:
		return 0
	}
}

// AtLeast promotes s to min if min ranks higher. It never downgrades,
// so rule checks can combine findings without losing the worst one.
func (s Severity) AtLeast(min Severity) Severity {
	if min.Rank() > s.Rank() {
		return min
	}
	return s
}

func (s Severity) String() string {
	return string(s)
}
