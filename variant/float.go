package variant

import (
	"fmt"
	"math"

	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/primitive"
)

// FloatKind enumerates the on-wire float encodings.
type FloatKind uint8

const (
	KindF32LE FloatKind = iota
	KindF32BE
	KindF64LE
	KindF64BE
)

func (k FloatKind) String() string {
	switch k {
	case KindF32LE:
		return "F32LE"
	case KindF32BE:
		return "F32BE"
	case KindF64LE:
		return "F64LE"
	case KindF64BE:
		return "F64BE"
	default:
		return "Unknown"
	}
}

// FloatVariant is a concrete float encoding: which width/order, the
// exact bytes consumed, and the decoded value lifted to float64.
//
// F32 forms store their value after widening float32->float64.
// Recombobulate returns that widened value as is, with no float32
// narrowing, so an F32 variant matches an exact (no-tolerance) float64
// needle only when the needle's value is itself exactly representable as
// a float32. IsF32 reports which forms these are.
type FloatVariant struct {
	Kind  FloatKind
	Bytes []byte
	Value float64
}

// InterpretFloat returns every FloatVariant whose decoder succeeds against a
// prefix of window.
func InterpretFloat(window []byte) []FloatVariant {
	var out []FloatVariant

	if v, n, err := primitive.DecodeF32(window, le); err == nil {
		out = append(out, FloatVariant{Kind: KindF32LE, Bytes: window[:n], Value: float64(v)})
	}

	if v, n, err := primitive.DecodeF32(window, be); err == nil {
		out = append(out, FloatVariant{Kind: KindF32BE, Bytes: window[:n], Value: float64(v)})
	}

	if v, n, err := primitive.DecodeF64(window, le); err == nil {
		out = append(out, FloatVariant{Kind: KindF64LE, Bytes: window[:n], Value: v})
	}

	if v, n, err := primitive.DecodeF64(window, be); err == nil {
		out = append(out, FloatVariant{Kind: KindF64BE, Bytes: window[:n], Value: v})
	}

	return out
}

// DiscombobulateFloat emits every FloatVariant encoding of value: F32
// forms narrow value to float32 first (lossy) and are only emitted when
// that narrowing stays finite and in range — a value outside
// [-math.MaxFloat32, math.MaxFloat32] narrows to +-Inf, which would never
// round-trip back to value. F64 forms are always exact and always
// emitted.
func DiscombobulateFloat(value float64) []FloatVariant {
	out := []FloatVariant{
		{Kind: KindF64LE, Bytes: primitive.EncodeF64(value, le), Value: value},
		{Kind: KindF64BE, Bytes: primitive.EncodeF64(value, be), Value: value},
	}

	if !math.IsInf(value, 0) && !math.IsNaN(value) && math.Abs(value) <= math.MaxFloat32 {
		f32 := float32(value)

		out = append(out,
			FloatVariant{Kind: KindF32LE, Bytes: primitive.EncodeF32(f32, le), Value: float64(f32)},
			FloatVariant{Kind: KindF32BE, Bytes: primitive.EncodeF32(f32, be), Value: float64(f32)},
		)
	}

	return out
}

// Recombobulate lifts v back to a semantic needle.Float.
func (v FloatVariant) Recombobulate() (needle.Needle, error) {
	return needle.Float{Value: v.Value}, nil
}

// IsF32 reports whether v is one of the 32-bit forms, which lose
// precision relative to a float64 needle built directly from a decimal
// literal.
func (v FloatVariant) IsF32() bool {
	return v.Kind == KindF32LE || v.Kind == KindF32BE
}

func (v FloatVariant) String() string {
	return fmt.Sprintf("%s(%v)", v.Kind, v.Value)
}
