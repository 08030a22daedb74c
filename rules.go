package dnsaudit

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// checkFunc evaluates the normalized values of one logical type and returns
// the combined severity plus a semicolon-joined issue description.
// Checks start at SeverityOK and only ever promote via Severity.AtLeast.
type checkFunc func(values []string) (Severity, string)

// checks is the rule table. Adding a record type means adding one entry;
// types without an entry evaluate to SeverityOK with no issues.
var checks = map[RecordType]checkFunc{
	RecordSPF:   checkSPF,
	RecordDMARC: checkDMARC,
	RecordDKIM:  checkDKIM,
	RecordBIMI:  checkBIMI,
	RecordMX:    checkMX,
	RecordA:     checkAddresses,
	RecordAAAA:  checkAddresses,
	RecordNS:    checkNS,
}

// Evaluate runs the best-practice rules for one logical type over its
// normalized values. It is a pure function of its inputs.
func Evaluate(t RecordType, values []string) (Severity, string) {
	check, ok := checks[t]
	if !ok {
		return SeverityOK, ""
	}
	return check(values)
}

// combined joins values the way they appear in a result row, lowercased for
// case-insensitive tag matching.
func combined(values []string) string {
	return strings.ToLower(strings.Join(values, " | "))
}

func checkSPF(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string
	all := combined(values)

	if n := strings.Count(all, "include:"); n > 10 {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, fmt.Sprintf("SPF record has %d includes (possible DNS lookup limit)", n))
	}
	if strings.Contains(all, "all") && !containsAny(all, "-all", "~all", "?all") {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "SPF record has no -all/~all/?all qualifier")
	}
	if strings.Contains(all, "include:*") {
		sev = sev.AtLeast(SeverityCritical)
		issues = append(issues, "SPF record uses a wildcard include")
	}
	for _, v := range values {
		if len(v) > 255 {
			sev = sev.AtLeast(SeverityWarn)
			issues = append(issues, "SPF record exceeds 255 characters")
		}
	}

	return sev, strings.Join(issues, "; ")
}

func checkDMARC(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string
	all := combined(values)

	if !strings.Contains(all, "v=dmarc1") {
		sev = sev.AtLeast(SeverityCritical)
		issues = append(issues, "DMARC record invalid (missing v=DMARC1)")
	}
	if strings.Contains(all, "p=none") {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "DMARC policy is none (weak protection)")
	}
	if !containsAny(all, "rua=", "ruf=") {
		sev = sev.AtLeast(SeverityInfo)
		issues = append(issues, "no aggregate or forensic report address (rua/ruf)")
	}
	if len(values) > 1 {
		sev = sev.AtLeast(SeverityCritical)
		issues = append(issues, "duplicate DMARC record")
	}

	return sev, strings.Join(issues, "; ")
}

// DKIM public key length bands, measured on the base64 text between "p=" and
// the next ";". Roughly 1024-bit and 2048-bit RSA key boundaries.
const (
	dkimKeyLenWeak   = 160
	dkimKeyLenStrong = 300
)

func checkDKIM(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string
	all := combined(values)

	if !strings.Contains(all, "p=") {
		sev = sev.AtLeast(SeverityCritical)
		issues = append(issues, "DKIM record invalid (missing p=)")
	}
	if !strings.Contains(all, "k=rsa") {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "DKIM record without k=rsa")
	}
	for _, v := range values {
		idx := strings.LastIndex(v, "p=")
		if idx == -1 {
			continue
		}
		key := v[idx+len("p="):]
		if end := strings.Index(key, ";"); end != -1 {
			key = key[:end]
		}
		key = strings.TrimSpace(key)
		if len(key) < dkimKeyLenWeak {
			sev = sev.AtLeast(SeverityCritical)
			issues = append(issues, "DKIM key very short (likely <1024 bit)")
		} else if len(key) < dkimKeyLenStrong {
			sev = sev.AtLeast(SeverityWarn)
			issues = append(issues, "DKIM key <2048 bit")
		}
	}
	if len(values) > 1 {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "duplicate DKIM selector")
	}

	return sev, strings.Join(issues, "; ")
}

func checkBIMI(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string
	all := combined(values)

	if !strings.Contains(all, "v=bimi1") {
		sev = sev.AtLeast(SeverityCritical)
		issues = append(issues, "BIMI record invalid (missing v=BIMI1)")
	}
	if !strings.Contains(all, "l=") {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "missing l= tag (SVG logo)")
	}
	if !strings.Contains(all, "a=") {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "missing a= tag (VMC certificate)")
	}
	if len(values) > 1 {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "duplicate BIMI record")
	}

	return sev, strings.Join(issues, "; ")
}

func checkMX(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string

	if len(values) == 0 {
		return SeverityCritical, "no MX records found"
	}

	seen := make(map[int]bool)
	duplicate := false
	malformed := 0
	for _, v := range values {
		fields := strings.Fields(v)
		if len(fields) == 0 {
			malformed++
			continue
		}
		prio, err := strconv.Atoi(fields[0])
		if err != nil {
			malformed++
			continue
		}
		if seen[prio] {
			duplicate = true
		}
		seen[prio] = true
	}

	if duplicate {
		sev = sev.AtLeast(SeverityWarn)
		issues = append(issues, "multiple MX records share the same priority")
	}
	if malformed > 0 {
		sev = sev.AtLeast(SeverityInfo)
		issues = append(issues, fmt.Sprintf("%d MX record(s) with unparseable priority", malformed))
	}

	return sev, strings.Join(issues, "; ")
}

func checkAddresses(values []string) (Severity, string) {
	sev := SeverityOK
	var issues []string

	for _, v := range values {
		ip := net.ParseIP(strings.TrimSpace(v))
		if ip == nil {
			// Not an IP literal; the reserved-range check does not apply.
			continue
		}
		if isReserved(ip) {
			sev = sev.AtLeast(SeverityWarn)
			issues = append(issues, fmt.Sprintf("address %s is private or reserved", ip))
		}
	}

	return sev, strings.Join(issues, "; ")
}

func checkNS(values []string) (Severity, string) {
	if len(values) < 2 {
		return SeverityWarn, "only one nameserver configured"
	}
	return SeverityOK, ""
}

// isReserved reports whether the address is private or otherwise not
// globally routable.
func isReserved(ip net.IP) bool {
	return ip.IsPrivate() ||
		ip.IsLoopback() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
