// Package needle defines the semantic target values the scanner searches
// for — Needle — and the domain-specific tolerance rules that decide
// whether one value "matches" another.
//
// A Needle is a small closed tagged union (spec domains: Integer, Float,
// Timestamp, Location, IPv4, MAC, Bytes). Matching is always evaluated
// left-relative to the right-hand operand: lhs.Matches(rhs) consults only
// rhs's tolerance, never lhs's — rhs is always the configured target.
package needle

// Kind identifies which domain a Needle belongs to.
type Kind uint8

const (
	KindInteger Kind = iota
	KindFloat
	KindTimestamp
	KindLocation
	KindIPv4
	KindMAC
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindTimestamp:
		return "Timestamp"
	case KindLocation:
		return "Location"
	case KindIPv4:
		return "IPv4"
	case KindMAC:
		return "MAC"
	case KindBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// Needle is a semantic target value with an optional domain-specific
// tolerance. Implementations are the seven types in this package: Integer,
// Float, Timestamp, Location, IPv4, MAC, Bytes.
type Needle interface {
	// Kind reports which domain this Needle belongs to.
	Kind() Kind

	// Matches reports whether the receiver matches rhs. Only rhs's
	// tolerance is consulted — the test is left-relative to rhs. Needles
	// of different Kinds never match.
	Matches(rhs Needle) bool
}

// absInt64 returns the absolute value of v, saturating at MaxInt64 for
// MinInt64 rather than overflowing (MinInt64's magnitude does not fit in
// an int64).
func absInt64(v int64) int64 {
	if v < 0 {
		if v == -9223372036854775808 {
			return 9223372036854775807
		}

		return -v
	}

	return v
}

func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
