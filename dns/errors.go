package dns

import "errors"

var (
	// ErrNotFound indicates the queried name does not exist (NXDOMAIN).
	// StdResolver cannot distinguish a missing name from an empty answer
	// and returns ErrNotFound for both.
	ErrNotFound = errors.New("dns: record not found")

	// ErrServFail indicates the upstream server failed to process the query.
	ErrServFail = errors.New("dns: server failure")

	// ErrTimeout indicates the query did not complete in time.
	ErrTimeout = errors.New("dns: query timeout")

	// ErrRefused indicates the upstream server refused the query.
	ErrRefused = errors.New("dns: query refused")

	// ErrUnsupportedType indicates the resolver cannot serve the requested
	// query type.
	ErrUnsupportedType = errors.New("dns: unsupported query type")
)

// IsNotFound reports whether err indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTimeout reports whether err indicates a query timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsServFail reports whether err indicates an upstream server failure.
func IsServFail(err error) bool {
	return errors.Is(err, ErrServFail)
}

// IsTemporary reports whether the query may succeed if retried later.
func IsTemporary(err error) bool {
	return IsTimeout(err) || IsServFail(err)
}
