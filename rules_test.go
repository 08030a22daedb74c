package dnsaudit

import (
	"strings"
	"testing"
)

func TestEvaluateSPF(t *testing.T) {
	manyIncludes := "v=spf1 " + strings.Repeat("include:a.example ", 11) + "~all"

	tests := []struct {
		name   string
		values []string
		want   Severity
	}{
		{"clean record", []string{"v=spf1 include:_spf.google.com ~all"}, SeverityOK},
		{"hard fail qualifier", []string{"v=spf1 mx -all"}, SeverityOK},
		{"too many includes", []string{manyIncludes}, SeverityWarn},
		{"all without qualifier", []string{"v=spf1 include:a.example all"}, SeverityWarn},
		{"wildcard include", []string{"v=spf1 include:* -all"}, SeverityCritical},
		{"overlong record", []string{"v=spf1 " + strings.Repeat("ip4:10.0.0.0/8 ", 20) + "-all"}, SeverityWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, issues := Evaluate(RecordSPF, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q (issues %q), want %q", sev, issues, tt.want)
			}
			if tt.want == SeverityOK && issues != "" {
				t.Errorf("issues = %q, want empty", issues)
			}
		})
	}
}

func TestEvaluateDMARC(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Severity
	}{
		{"reject with reporting", []string{"v=DMARC1; p=reject; rua=mailto:dmarc@example.com"}, SeverityOK},
		{"policy none", []string{"v=DMARC1; p=none; rua=mailto:dmarc@example.com"}, SeverityWarn},
		{"no reporting address", []string{"v=DMARC1; p=quarantine"}, SeverityInfo},
		{"missing version", []string{"p=reject; rua=mailto:dmarc@example.com"}, SeverityCritical},
		{
			"duplicate record",
			[]string{"v=DMARC1; p=reject; rua=mailto:a@example.com", "v=DMARC1; p=none; rua=mailto:b@example.com"},
			SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, _ := Evaluate(RecordDMARC, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q, want %q", sev, tt.want)
			}
		})
	}
}

func TestEvaluateDKIM(t *testing.T) {
	strongKey := strings.Repeat("A", 360)
	mediumKey := strings.Repeat("A", 200)
	shortKey := strings.Repeat("A", 100)

	tests := []struct {
		name   string
		values []string
		want   Severity
	}{
		{"strong rsa key", []string{"v=DKIM1; k=rsa; p=" + strongKey}, SeverityOK},
		{"key under 2048 bit", []string{"v=DKIM1; k=rsa; p=" + mediumKey}, SeverityWarn},
		{"key under 1024 bit", []string{"v=DKIM1; k=rsa; p=" + shortKey}, SeverityCritical},
		{"missing public key", []string{"v=DKIM1; k=rsa"}, SeverityCritical},
		{"missing key type", []string{"v=DKIM1; p=" + strongKey}, SeverityWarn},
		{
			"duplicate selector records",
			[]string{"v=DKIM1; k=rsa; p=" + strongKey, "v=DKIM1; k=rsa; p=" + strongKey},
			SeverityWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, _ := Evaluate(RecordDKIM, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q, want %q", sev, tt.want)
			}
		})
	}
}

func TestEvaluateBIMI(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Severity
	}{
		{
			"complete record",
			[]string{"v=BIMI1; l=https://example.com/logo.svg; a=https://example.com/vmc.pem"},
			SeverityOK,
		},
		{"missing logo", []string{"v=BIMI1; a=https://example.com/vmc.pem"}, SeverityWarn},
		{"missing certificate", []string{"v=BIMI1; l=https://example.com/logo.svg"}, SeverityWarn},
		{"missing version", []string{"l=https://example.com/logo.svg; a=https://example.com/vmc.pem"}, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, _ := Evaluate(RecordBIMI, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q, want %q", sev, tt.want)
			}
		})
	}
}

func TestEvaluateMX(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Severity
	}{
		{"distinct priorities", []string{"10 mx1.example.com", "20 mx2.example.com"}, SeverityOK},
		{"duplicate priority", []string{"10 mx1.example.com", "10 mx2.example.com"}, SeverityWarn},
		{"no records", nil, SeverityCritical},
		// Unparseable priorities are a data-quality finding, not silently
		// dropped.
		{"malformed priority", []string{"mx1.example.com", "10 mx2.example.com"}, SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, _ := Evaluate(RecordMX, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q, want %q", sev, tt.want)
			}
		})
	}
}

func TestEvaluateAddresses(t *testing.T) {
	tests := []struct {
		name   string
		rtype  RecordType
		values []string
		want   Severity
	}{
		{"public v4", RecordA, []string{"93.184.215.14"}, SeverityOK},
		{"private v4", RecordA, []string{"192.168.0.10"}, SeverityWarn},
		{"loopback v4", RecordA, []string{"127.0.0.1"}, SeverityWarn},
		{"public v6", RecordAAAA, []string{"2606:2800:21f:cb07:6820:80da:af6b:8b2c"}, SeverityOK},
		{"link-local v6", RecordAAAA, []string{"fe80::1"}, SeverityWarn},
		{"unique-local v6", RecordAAAA, []string{"fd00::1"}, SeverityWarn},
		{"non-IP value ignored", RecordA, []string{"not-an-address"}, SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev, _ := Evaluate(tt.rtype, tt.values)
			if sev != tt.want {
				t.Errorf("severity = %q, want %q", sev, tt.want)
			}
		})
	}
}

func TestEvaluateNS(t *testing.T) {
	if sev, _ := Evaluate(RecordNS, []string{"ns1.example.com"}); sev != SeverityWarn {
		t.Errorf("single nameserver severity = %q, want WARN", sev)
	}
	if sev, _ := Evaluate(RecordNS, []string{"ns1.example.com", "ns2.example.com"}); sev != SeverityOK {
		t.Errorf("two nameservers severity = %q, want OK", sev)
	}
}

func TestEvaluateUnlistedTypes(t *testing.T) {
	for _, rtype := range []RecordType{RecordCNAME, RecordTXT, RecordSOA, RecordCAA} {
		sev, issues := Evaluate(rtype, []string{"anything"})
		if sev != SeverityOK || issues != "" {
			t.Errorf("Evaluate(%q) = (%q, %q), want (OK, empty)", rtype, sev, issues)
		}
	}
}
