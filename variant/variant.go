package variant

import (
	"fmt"

	"github.com/rufus-stone/haystack/needle"
)

// Domain identifies which needle domain a NeedleVariant encodes.
type Domain uint8

const (
	DomainInteger Domain = iota
	DomainFloat
	DomainTimestamp
	DomainLocation
	DomainIPv4
	DomainMAC
)

func (d Domain) String() string {
	switch d {
	case DomainInteger:
		return "Integer"
	case DomainFloat:
		return "Float"
	case DomainTimestamp:
		return "Timestamp"
	case DomainLocation:
		return "Location"
	case DomainIPv4:
		return "IPv4"
	case DomainMAC:
		return "MAC"
	default:
		return "Unknown"
	}
}

// Recombobulator is any on-wire variant that can lift itself back to a
// semantic Needle.
type Recombobulator interface {
	Recombobulate() (needle.Needle, error)
}

// NeedleVariant is the unified tag over every domain's concrete variant
// type: it carries which domain produced it, the byte offset it was
// found at, and the variant itself (one of IntegerVariant, FloatVariant,
// TimestampVariant, LocationVariant, IPv4Variant, MACAddrVariant).
type NeedleVariant struct {
	Domain Domain
	Inner  Recombobulator
}

// Recombobulate delegates to the wrapped variant.
func (nv NeedleVariant) Recombobulate() (needle.Needle, error) {
	return nv.Inner.Recombobulate()
}

func (nv NeedleVariant) String() string {
	return fmt.Sprintf("%s:%v", nv.Domain, nv.Inner)
}

// InterpretAll runs every domain's Interpret over window in the fixed
// scan order (Integer, Float, Timestamp, Location, IPv4, MAC — spec
// §4.9) and returns the unified NeedleVariant tags.
func InterpretAll(window []byte) []NeedleVariant {
	var out []NeedleVariant

	for _, v := range Interpret(window) {
		out = append(out, NeedleVariant{Domain: DomainInteger, Inner: v})
	}

	for _, v := range InterpretFloat(window) {
		out = append(out, NeedleVariant{Domain: DomainFloat, Inner: v})
	}

	for _, v := range InterpretTimestamp(window) {
		out = append(out, NeedleVariant{Domain: DomainTimestamp, Inner: v})
	}

	for _, v := range InterpretLocation(window) {
		out = append(out, NeedleVariant{Domain: DomainLocation, Inner: v})
	}

	for _, v := range InterpretIPv4(window) {
		out = append(out, NeedleVariant{Domain: DomainIPv4, Inner: v})
	}

	for _, v := range InterpretMAC(window) {
		out = append(out, NeedleVariant{Domain: DomainMAC, Inner: v})
	}

	return out
}
