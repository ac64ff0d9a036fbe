package variant

import (
	"fmt"

	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/primitive"
)

// LocationUnit is the scale factor dividing a raw decoded float into
// degrees: decimal-degrees is the identity, decimal-minutes divides by
// 60, decimal-seconds by 3600.
type LocationUnit uint8

const (
	UnitDecimalDegrees LocationUnit = iota
	UnitDecimalMinutes
	UnitDecimalSeconds
)

func (u LocationUnit) factor() float64 {
	switch u {
	case UnitDecimalMinutes:
		return 60
	case UnitDecimalSeconds:
		return 3600
	default:
		return 1
	}
}

func (u LocationUnit) String() string {
	switch u {
	case UnitDecimalDegrees:
		return "DecimalDegrees"
	case UnitDecimalMinutes:
		return "DecimalMinutes"
	case UnitDecimalSeconds:
		return "DecimalSeconds"
	default:
		return "Unknown"
	}
}

// LocationOrder selects which coordinate is stored first in the byte
// pair.
type LocationOrder uint8

const (
	OrderLatLon LocationOrder = iota
	OrderLonLat
)

func (o LocationOrder) String() string {
	if o == OrderLonLat {
		return "LonLat"
	}

	return "LatLon"
}

// LocationVariant is one of the six {unit}x{order} encodings of a
// geocoordinate: two adjacent FloatVariants of matching width and
// endianness, one per coordinate.
type LocationVariant struct {
	Unit   LocationUnit
	Order  LocationOrder
	First  FloatVariant // the variant as decoded first in byte order
	Second FloatVariant
}

// InterpretLocation decodes two adjacent floats of every (width,
// endianness) combination that fits in window, then emits all six
// unit x order variants for each combination (spec §4.5).
func InterpretLocation(window []byte) []LocationVariant {
	var out []LocationVariant

	type pair struct {
		width int
		kind1 FloatKind
		kind2 FloatKind
		f1    float64
		f2    float64
	}

	var pairs []pair

	if len(window) >= 8 {
		if f1, n1, err := decodeFloatAt(window, KindF32LE); err == nil {
			if f2, _, err := decodeFloatAt(window[n1:], KindF32LE); err == nil {
				pairs = append(pairs, pair{4, KindF32LE, KindF32LE, f1, f2})
			}
		}
		if f1, n1, err := decodeFloatAt(window, KindF32BE); err == nil {
			if f2, _, err := decodeFloatAt(window[n1:], KindF32BE); err == nil {
				pairs = append(pairs, pair{4, KindF32BE, KindF32BE, f1, f2})
			}
		}
	}

	if len(window) >= 16 {
		if f1, n1, err := decodeFloatAt(window, KindF64LE); err == nil {
			if f2, _, err := decodeFloatAt(window[n1:], KindF64LE); err == nil {
				pairs = append(pairs, pair{8, KindF64LE, KindF64LE, f1, f2})
			}
		}
		if f1, n1, err := decodeFloatAt(window, KindF64BE); err == nil {
			if f2, _, err := decodeFloatAt(window[n1:], KindF64BE); err == nil {
				pairs = append(pairs, pair{8, KindF64BE, KindF64BE, f1, f2})
			}
		}
	}

	units := []LocationUnit{UnitDecimalDegrees, UnitDecimalMinutes, UnitDecimalSeconds}

	for _, p := range pairs {
		fv1 := FloatVariant{Kind: p.kind1, Bytes: window[:p.width], Value: p.f1}
		fv2 := FloatVariant{Kind: p.kind2, Bytes: window[p.width : 2*p.width], Value: p.f2}

		for _, u := range units {
			out = append(out, LocationVariant{Unit: u, Order: OrderLatLon, First: fv1, Second: fv2})
			out = append(out, LocationVariant{Unit: u, Order: OrderLonLat, First: fv1, Second: fv2})
		}
	}

	return out
}

func decodeFloatAt(window []byte, kind FloatKind) (float64, int, error) {
	switch kind {
	case KindF32LE:
		v, n, err := primitive.DecodeF32(window, le)
		return float64(v), n, err
	case KindF32BE:
		v, n, err := primitive.DecodeF32(window, be)
		return float64(v), n, err
	case KindF64LE:
		return primitive.DecodeF64(window, le)
	case KindF64BE:
		return primitive.DecodeF64(window, be)
	default:
		return 0, 0, fmt.Errorf("unknown float kind %s", kind)
	}
}

// DiscombobulateLocation emits every matched-pair (unit, order, width,
// endianness) encoding of (lat, lon): each unit scales both coordinates
// by its factor, then the scaled values are independently discombobulated
// to floats, keeping only pairs whose FloatVariant Kind matches between
// the two coordinates (spec §4.5).
func DiscombobulateLocation(lat, lon float64) []LocationVariant {
	var out []LocationVariant

	units := []LocationUnit{UnitDecimalDegrees, UnitDecimalMinutes, UnitDecimalSeconds}

	for _, u := range units {
		scaledLat := lat * u.factor()
		scaledLon := lon * u.factor()

		latVariants := DiscombobulateFloat(scaledLat)
		lonVariants := DiscombobulateFloat(scaledLon)

		for _, lv := range latVariants {
			for _, nv := range lonVariants {
				if lv.Kind != nv.Kind {
					continue
				}

				out = append(out, LocationVariant{Unit: u, Order: OrderLatLon, First: lv, Second: nv})
				out = append(out, LocationVariant{Unit: u, Order: OrderLonLat, First: nv, Second: lv})
			}
		}
	}

	return out
}

// Recombobulate decomposes v's two floats, divides by the unit's scale
// factor, and constructs a Location needle — which validates lat/lon
// range. Illegal coordinates fail here, filtering the combinatorial
// explosion of Interpret's six-way fan-out per width and endianness.
func (v LocationVariant) Recombobulate() (needle.Needle, error) {
	a := v.First.Value / v.Unit.factor()
	b := v.Second.Value / v.Unit.factor()

	var lat, lon float64
	if v.Order == OrderLatLon {
		lat, lon = a, b
	} else {
		lat, lon = b, a
	}

	return needle.NewLocation(lat, lon)
}

func (v LocationVariant) String() string {
	return fmt.Sprintf("%s/%s(%s,%s)", v.Unit, v.Order, v.First, v.Second)
}
