// Package variant implements the closed algebra of on-wire encodings a
// semantic value can take: the discombobulate/interpret/recombobulate
// triad from spec §4 for every domain (integer, float, timestamp,
// location, IPv4, MAC), plus the unified NeedleVariant tag that wraps
// them all for the scanner.
package variant

import (
	"fmt"

	"github.com/rufus-stone/haystack/endian"
	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/primitive"
)

// IntegerKind enumerates every on-wire integer encoding the engine
// recognizes. Ordering matters: Interpret returns variants in this
// order, and the scanner's output ordering (spec §4.9) depends on it
// being stable.
type IntegerKind uint8

const (
	KindU8 IntegerKind = iota
	KindU8Varint
	KindI8
	KindI8Varint
	KindU16LE
	KindU16BE
	KindU16Varint
	KindI16LE
	KindI16BE
	KindI16Varint
	KindU32LE
	KindU32BE
	KindU32Varint
	KindI32LE
	KindI32BE
	KindI32Varint
	KindU48LE
	KindU48BE
	KindU64LE
	KindU64BE
	KindU64Varint
	KindI64LE
	KindI64BE
	KindI64Varint
)

func (k IntegerKind) String() string {
	names := map[IntegerKind]string{
		KindU8: "U8", KindU8Varint: "U8Varint", KindI8: "I8", KindI8Varint: "I8Varint",
		KindU16LE: "U16LE", KindU16BE: "U16BE", KindU16Varint: "U16Varint",
		KindI16LE: "I16LE", KindI16BE: "I16BE", KindI16Varint: "I16Varint",
		KindU32LE: "U32LE", KindU32BE: "U32BE", KindU32Varint: "U32Varint",
		KindI32LE: "I32LE", KindI32BE: "I32BE", KindI32Varint: "I32Varint",
		KindU48LE: "U48LE", KindU48BE: "U48BE",
		KindU64LE: "U64LE", KindU64BE: "U64BE", KindU64Varint: "U64Varint",
		KindI64LE: "I64LE", KindI64BE: "I64BE", KindI64Varint: "I64Varint",
	}
	if s, ok := names[k]; ok {
		return s
	}

	return "Unknown"
}

// IntegerVariant is a concrete integer encoding: which kind it is, the
// exact bytes consumed from the haystack, and the decoded value lifted
// to int64.
//
// The lift to int64 is a raw bit reinterpretation for U64/U64Varint, not
// a range-checked cast: a uint64 with its high bit set becomes negative.
// This mirrors the source engine and is covered by
// TestU64_WrapsToNegativeI64 in integer_test.go (DESIGN.md open question
// #1).
type IntegerVariant struct {
	Kind  IntegerKind
	Bytes []byte
	Value int64
}

var (
	le = endian.GetLittleEndianEngine()
	be = endian.GetBigEndianEngine()
)

// Interpret returns every IntegerVariant whose decoder succeeds against
// a prefix of window, excluding the 48-bit forms — those are reserved
// for explicit MAC-domain requests (spec §4.2) and produced only by
// InterpretU48.
func Interpret(window []byte) []IntegerVariant {
	var out []IntegerVariant

	if v, n, err := primitive.DecodeU8(window); err == nil {
		out = append(out, IntegerVariant{Kind: KindU8, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeUvarint(window); err == nil {
		if v <= 0xFF {
			out = append(out, IntegerVariant{Kind: KindU8Varint, Bytes: window[:n], Value: int64(v)})
		}
	}

	if v, n, err := primitive.DecodeI8(window); err == nil {
		out = append(out, IntegerVariant{Kind: KindI8, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeIvarint(window); err == nil {
		if v >= -128 && v <= 127 {
			out = append(out, IntegerVariant{Kind: KindI8Varint, Bytes: window[:n], Value: v})
		}
	}

	if v, n, err := primitive.DecodeU16(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindU16LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeU16(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindU16BE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeUvarint(window); err == nil {
		if v <= 0xFFFF {
			out = append(out, IntegerVariant{Kind: KindU16Varint, Bytes: window[:n], Value: int64(v)})
		}
	}

	if v, n, err := primitive.DecodeI16(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindI16LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeI16(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindI16BE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeIvarint(window); err == nil {
		if v >= -32768 && v <= 32767 {
			out = append(out, IntegerVariant{Kind: KindI16Varint, Bytes: window[:n], Value: v})
		}
	}

	if v, n, err := primitive.DecodeU32(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindU32LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeU32(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindU32BE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeUvarint(window); err == nil {
		if v <= 0xFFFFFFFF {
			out = append(out, IntegerVariant{Kind: KindU32Varint, Bytes: window[:n], Value: int64(v)})
		}
	}

	if v, n, err := primitive.DecodeI32(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindI32LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeI32(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindI32BE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeIvarint(window); err == nil {
		if v >= -2147483648 && v <= 2147483647 {
			out = append(out, IntegerVariant{Kind: KindI32Varint, Bytes: window[:n], Value: v})
		}
	}

	if v, n, err := primitive.DecodeU64(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindU64LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeU64(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindU64BE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeUvarint(window); err == nil {
		out = append(out, IntegerVariant{Kind: KindU64Varint, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeI64(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindI64LE, Bytes: window[:n], Value: v})
	}

	if v, n, err := primitive.DecodeI64(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindI64BE, Bytes: window[:n], Value: v})
	}

	if v, n, err := primitive.DecodeIvarint(window); err == nil {
		out = append(out, IntegerVariant{Kind: KindI64Varint, Bytes: window[:n], Value: v})
	}

	return out
}

// InterpretU48 returns only the 48-bit unsigned variants, little- and
// big-endian. It is used exclusively by the MAC domain (spec §4.2, §4.7).
func InterpretU48(window []byte) []IntegerVariant {
	var out []IntegerVariant

	if v, n, err := primitive.DecodeU48(window, le); err == nil {
		out = append(out, IntegerVariant{Kind: KindU48LE, Bytes: window[:n], Value: int64(v)})
	}

	if v, n, err := primitive.DecodeU48(window, be); err == nil {
		out = append(out, IntegerVariant{Kind: KindU48BE, Bytes: window[:n], Value: int64(v)})
	}

	return out
}

// Discombobulate emits every IntegerVariant encoding into which value
// fits: every fixed-width form whose range covers value, plus varint
// forms for 8/16/32/64-bit widths wherever the signedness and range
// match (spec §4.2). 48-bit forms are never produced here — they are
// reserved for the MAC domain, which calls DiscombobulateU48 directly.
func Discombobulate(value int64) []IntegerVariant {
	var out []IntegerVariant

	appendFixed := func(kind IntegerKind, bytes []byte) {
		out = append(out, IntegerVariant{Kind: kind, Bytes: bytes, Value: value})
	}

	if value >= 0 && value <= 0xFF {
		appendFixed(KindU8, primitive.EncodeU8(uint8(value)))
	}
	if value >= -128 && value <= 127 {
		appendFixed(KindI8, primitive.EncodeI8(int8(value)))
	}
	if value >= 0 && value <= 0xFFFF {
		appendFixed(KindU16LE, primitive.EncodeU16(uint16(value), le))
		appendFixed(KindU16BE, primitive.EncodeU16(uint16(value), be))
	}
	if value >= -32768 && value <= 32767 {
		appendFixed(KindI16LE, primitive.EncodeI16(int16(value), le))
		appendFixed(KindI16BE, primitive.EncodeI16(int16(value), be))
	}
	if value >= 0 && value <= 0xFFFFFFFF {
		appendFixed(KindU32LE, primitive.EncodeU32(uint32(value), le))
		appendFixed(KindU32BE, primitive.EncodeU32(uint32(value), be))
	}
	if value >= -2147483648 && value <= 2147483647 {
		appendFixed(KindI32LE, primitive.EncodeI32(int32(value), le))
		appendFixed(KindI32BE, primitive.EncodeI32(int32(value), be))
	}

	// U64 always fits: value is int64, reinterpreted as the bit pattern.
	appendFixed(KindU64LE, primitive.EncodeU64(uint64(value), le))
	appendFixed(KindU64BE, primitive.EncodeU64(uint64(value), be))
	appendFixed(KindI64LE, primitive.EncodeI64(value, le))
	appendFixed(KindI64BE, primitive.EncodeI64(value, be))

	// Varint forms: unsigned varint only applies to non-negative values;
	// signed varint (ZigZag) always applies and is canonical regardless
	// of magnitude, so it is emitted once as I64Varint plus width-scoped
	// tags wherever value additionally fits a narrower signed width.
	if value >= 0 {
		if value <= 0xFF {
			appendFixed(KindU8Varint, primitive.EncodeUvarint(uint64(value)))
		}
		if value <= 0xFFFF {
			appendFixed(KindU16Varint, primitive.EncodeUvarint(uint64(value)))
		}
		if value <= 0xFFFFFFFF {
			appendFixed(KindU32Varint, primitive.EncodeUvarint(uint64(value)))
		}
		appendFixed(KindU64Varint, primitive.EncodeUvarint(uint64(value)))
	}

	if value >= -128 && value <= 127 {
		appendFixed(KindI8Varint, primitive.EncodeIvarint(value))
	}
	if value >= -32768 && value <= 32767 {
		appendFixed(KindI16Varint, primitive.EncodeIvarint(value))
	}
	if value >= -2147483648 && value <= 2147483647 {
		appendFixed(KindI32Varint, primitive.EncodeIvarint(value))
	}
	appendFixed(KindI64Varint, primitive.EncodeIvarint(value))

	return out
}

// DiscombobulateU48 emits the LE/BE 48-bit encodings of value, used by
// the MAC domain. value must be in [0, primitive.U48Max].
func DiscombobulateU48(value uint64) []IntegerVariant {
	if value > primitive.U48Max {
		return nil
	}

	return []IntegerVariant{
		{Kind: KindU48LE, Bytes: primitive.EncodeU48(value, le), Value: int64(value)},
		{Kind: KindU48BE, Bytes: primitive.EncodeU48(value, be), Value: int64(value)},
	}
}

// Recombobulate lifts v back to a semantic needle.Integer. This never
// fails for integers — every decoded bit pattern is a legal int64 once
// lifted (spec §4.2).
func (v IntegerVariant) Recombobulate() (needle.Needle, error) {
	return needle.Integer{Value: v.Value}, nil
}

// IsU48 reports whether v is one of the 48-bit kinds.
func (v IntegerVariant) IsU48() bool {
	return v.Kind == KindU48LE || v.Kind == KindU48BE
}

// IsU32 reports whether v is one of the 32-bit unsigned kinds (used by
// the IPv4 domain).
func (v IntegerVariant) IsU32() bool {
	return v.Kind == KindU32LE || v.Kind == KindU32BE || v.Kind == KindU32Varint
}

func (v IntegerVariant) String() string {
	return fmt.Sprintf("%s(%d)", v.Kind, v.Value)
}
