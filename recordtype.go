package dnsaudit

import (
	"fmt"
	"strings"

	"github.com/synqronlabs/dnsaudit/dns"
)

// RecordType is the logical record type being analyzed. It is distinct from
// the physical DNS query type used to fetch it: SPF, DMARC, BIMI and DKIM
// records all live in TXT records at well-known names.
type RecordType string

const (
	RecordA     RecordType = "A"
	RecordAAAA  RecordType = "AAAA"
	RecordMX    RecordType = "MX"
	RecordNS    RecordType = "NS"
	RecordCNAME RecordType = "CNAME"
	RecordTXT   RecordType = "TXT"
	RecordSPF   RecordType = "SPF"
	RecordDMARC RecordType = "DMARC"
	RecordDKIM  RecordType = "DKIM"
	RecordBIMI  RecordType = "BIMI"
	RecordSOA   RecordType = "SOA"
	RecordCAA   RecordType = "CAA"
)

// DefaultRecordTypes is the full set of types analyzed when the caller does
// not choose any and best-practice evaluation is disabled.
var DefaultRecordTypes = []RecordType{
	RecordA, RecordAAAA, RecordMX, RecordNS, RecordCNAME, RecordTXT,
	RecordSPF, RecordDMARC, RecordDKIM, RecordBIMI, RecordSOA, RecordCAA,
}

// BestPracticeRecordTypes is the security-relevant subset used by default
// when best-practice evaluation is enabled and no explicit types were chosen.
var BestPracticeRecordTypes = []RecordType{
	RecordSPF, RecordDMARC, RecordDKIM, RecordBIMI,
	RecordMX, RecordA, RecordAAAA, RecordNS,
}

// queryTransform describes how a logical type maps onto a DNS query.
// A non-empty prefix is prepended to the domain and the physical type is
// forced to TXT; the zero transform queries the domain itself with the
// logical type as the physical type.
type queryTransform struct {
	prefix   string
	physical dns.Type
}

var transforms = map[RecordType]queryTransform{
	RecordSPF:   {physical: dns.TypeTXT},
	RecordDMARC: {prefix: "_dmarc.", physical: dns.TypeTXT},
	RecordBIMI:  {prefix: "default._bimi.", physical: dns.TypeTXT},
	// DKIM is handled separately: the prefix depends on the selector.
}

// Physical returns the DNS query type used to fetch records of this
// logical type.
func (t RecordType) Physical() dns.Type {
	if t == RecordDKIM {
		return dns.TypeTXT
	}
	if tr, ok := transforms[t]; ok {
		return tr.physical
	}
	return dns.Type(t)
}

// QueryName returns the name to query for this logical type on the given
// domain. The selector is only meaningful for DKIM and ignored otherwise.
func (t RecordType) QueryName(domain, selector string) string {
	if t == RecordDKIM {
		return selector + "._domainkey." + domain
	}
	if tr, ok := transforms[t]; ok {
		return tr.prefix + domain
	}
	return domain
}

// ParseRecordType parses a case-insensitive record type name.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range DefaultRecordTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("dnsaudit: unknown record type %q", s)
}
