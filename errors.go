package dnsaudit

import "errors"

var (
	// ErrNoDomains is returned when an analysis request is constructed
	// with an empty domain list.
	ErrNoDomains = errors.New("dnsaudit: no domains provided")
)
