// Package errs defines the sentinel error values shared across the
// haystack engine. Callers should use errors.Is against these values
// rather than comparing error strings.
package errs

import "errors"

var (
	// ErrInvalidInput is returned when a Needle constructor is given an
	// argument that can never be made valid: an out-of-range latitude or
	// longitude, a CIDR prefix length greater than 32, or a date-time
	// string that does not match the expected layout.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientBytes is returned by a primitive decoder when the
	// supplied window is shorter than the width it decodes. The scanner
	// treats this as "this variant is not present at this offset" and
	// never surfaces it to a caller.
	ErrInsufficientBytes = errors.New("insufficient bytes")

	// ErrInvalidVarint is returned when a LEB128 varint runs off the end
	// of the buffer before its continuation bit clears, or decodes to a
	// magnitude that overflows the requested width.
	ErrInvalidVarint = errors.New("invalid varint")

	// ErrInvalidEncoding is returned when a decoded variant recombobulates
	// to a semantically illegal value: an out-of-range DOS date/time
	// field, or a MAC/IPv4 integer value wider than its address fits.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrLookupUnavailable is returned by the OUI lookup when the
	// underlying database could not be loaded. A MAC match that depends
	// on it simply returns false; the error never propagates out of
	// Needle.Matches.
	ErrLookupUnavailable = errors.New("oui lookup unavailable")
)
