// Package primitive implements the closed set of low-level byte codecs the
// rest of the engine builds on: fixed-width little/big-endian integers at
// 8/16/32/48/64 bits (signed and unsigned), LEB128-style varints with
// ZigZag for signed values, and IEEE-754 floats. Every decoder here is a
// pure function of its input slice — it never allocates state and never
// fails partway through a buffer it has already validated.
package primitive

import (
	"encoding/binary"
	"math"

	"github.com/rufus-stone/haystack/endian"
	"github.com/rufus-stone/haystack/errs"
)

// U48Max is the largest value a 48-bit unsigned integer can hold
// (0xFFFFFFFFFFFF), used throughout the MAC address domain.
const U48Max = 1<<48 - 1

// DecodeU8 reads one unsigned byte.
func DecodeU8(data []byte) (uint8, int, error) {
	if len(data) < 1 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	return data[0], 1, nil
}

// EncodeU8 returns the one-byte encoding of v.
func EncodeU8(v uint8) []byte { return []byte{v} }

// DecodeI8 reads one signed byte.
func DecodeI8(data []byte) (int8, int, error) {
	if len(data) < 1 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	return int8(data[0]), 1, nil
}

// EncodeI8 returns the one-byte encoding of v.
func EncodeI8(v int8) []byte { return []byte{uint8(v)} }

// DecodeU16 reads a 16-bit unsigned integer using the given byte order.
func DecodeU16(data []byte, engine endian.EndianEngine) (uint16, int, error) {
	if len(data) < 2 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	return engine.Uint16(data), 2, nil
}

// EncodeU16 returns the two-byte encoding of v using the given byte order.
func EncodeU16(v uint16, engine endian.EndianEngine) []byte {
	return engine.AppendUint16(nil, v)
}

// DecodeI16 reads a 16-bit signed integer using the given byte order.
func DecodeI16(data []byte, engine endian.EndianEngine) (int16, int, error) {
	u, n, err := DecodeU16(data, engine)
	if err != nil {
		return 0, 0, err
	}

	return int16(u), n, nil
}

// EncodeI16 returns the two-byte encoding of v using the given byte order.
func EncodeI16(v int16, engine endian.EndianEngine) []byte {
	return EncodeU16(uint16(v), engine)
}

// DecodeU32 reads a 32-bit unsigned integer using the given byte order.
func DecodeU32(data []byte, engine endian.EndianEngine) (uint32, int, error) {
	if len(data) < 4 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	return engine.Uint32(data), 4, nil
}

// EncodeU32 returns the four-byte encoding of v using the given byte order.
func EncodeU32(v uint32, engine endian.EndianEngine) []byte {
	return engine.AppendUint32(nil, v)
}

// DecodeI32 reads a 32-bit signed integer using the given byte order.
func DecodeI32(data []byte, engine endian.EndianEngine) (int32, int, error) {
	u, n, err := DecodeU32(data, engine)
	if err != nil {
		return 0, 0, err
	}

	return int32(u), n, nil
}

// EncodeI32 returns the four-byte encoding of v using the given byte order.
func EncodeI32(v int32, engine endian.EndianEngine) []byte {
	return EncodeU32(uint32(v), engine)
}

// DecodeU48 reads a 48-bit unsigned integer using the given byte order,
// zero-extending it into a uint64. There is no varint form for 48-bit
// widths; they exist solely to serialize MAC addresses.
func DecodeU48(data []byte, engine endian.EndianEngine) (uint64, int, error) {
	if len(data) < 6 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	// Borrow the engine's 64-bit reader over a zero-padded 8-byte window so
	// a single LE/BE codepath handles both orders.
	var buf [8]byte

	switch engine {
	case endian.GetLittleEndianEngine():
		copy(buf[0:6], data[0:6])
	case endian.GetBigEndianEngine():
		copy(buf[2:8], data[0:6])
	default:
		copy(buf[0:6], data[0:6])
	}

	return engine.Uint64(buf[:]), 6, nil
}

// EncodeU48 returns the six-byte encoding of v using the given byte order.
// v must fit in 48 bits; callers enforce that at the variant layer.
func EncodeU48(v uint64, engine endian.EndianEngine) []byte {
	full := engine.AppendUint64(nil, v)
	switch engine {
	case endian.GetBigEndianEngine():
		return full[2:8]
	default:
		return full[0:6]
	}
}

// DecodeU64 reads a 64-bit unsigned integer using the given byte order.
func DecodeU64(data []byte, engine endian.EndianEngine) (uint64, int, error) {
	if len(data) < 8 {
		return 0, 0, errs.ErrInsufficientBytes
	}

	return engine.Uint64(data), 8, nil
}

// EncodeU64 returns the eight-byte encoding of v using the given byte order.
func EncodeU64(v uint64, engine endian.EndianEngine) []byte {
	return engine.AppendUint64(nil, v)
}

// DecodeI64 reads a 64-bit signed integer using the given byte order.
//
// The conversion from the decoded bit pattern to int64 is a raw
// reinterpretation, not a range-checked cast: a uint64 with its high bit
// set becomes a negative int64. This mirrors the source engine's lift
// of every integer width to i64 and is relied on by Needle's Integer
// domain (see errs and the variant package's recombobulate).
func DecodeI64(data []byte, engine endian.EndianEngine) (int64, int, error) {
	u, n, err := DecodeU64(data, engine)
	if err != nil {
		return 0, 0, err
	}

	return int64(u), n, nil
}

// EncodeI64 returns the eight-byte encoding of v using the given byte order.
func EncodeI64(v int64, engine endian.EndianEngine) []byte {
	return EncodeU64(uint64(v), engine)
}

// DecodeUvarint reads a LEB128 unsigned varint: each byte's high bit is a
// continuation flag, the low 7 bits contribute least-significant-first.
func DecodeUvarint(data []byte) (uint64, int, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, 0, errs.ErrInvalidVarint
	}

	return v, n, nil
}

// EncodeUvarint returns the canonical LEB128 encoding of v.
func EncodeUvarint(v uint64) []byte {
	return binary.AppendUvarint(nil, v)
}

// DecodeIvarint reads a ZigZag + LEB128 signed varint.
func DecodeIvarint(data []byte) (int64, int, error) {
	v, n := binary.Varint(data)
	if n <= 0 {
		return 0, 0, errs.ErrInvalidVarint
	}

	return v, n, nil
}

// EncodeIvarint returns the canonical ZigZag + LEB128 encoding of v.
func EncodeIvarint(v int64) []byte {
	return binary.AppendVarint(nil, v)
}

// DecodeF32 reads an IEEE-754 binary32 float using the given byte order.
func DecodeF32(data []byte, engine endian.EndianEngine) (float32, int, error) {
	bits, n, err := DecodeU32(data, engine)
	if err != nil {
		return 0, 0, err
	}

	return math.Float32frombits(bits), n, nil
}

// EncodeF32 returns the four-byte IEEE-754 encoding of v.
func EncodeF32(v float32, engine endian.EndianEngine) []byte {
	return EncodeU32(math.Float32bits(v), engine)
}

// DecodeF64 reads an IEEE-754 binary64 float using the given byte order.
func DecodeF64(data []byte, engine endian.EndianEngine) (float64, int, error) {
	bits, n, err := DecodeU64(data, engine)
	if err != nil {
		return 0, 0, err
	}

	return math.Float64frombits(bits), n, nil
}

// EncodeF64 returns the eight-byte IEEE-754 encoding of v.
func EncodeF64(v float64, engine endian.EndianEngine) []byte {
	return EncodeU64(math.Float64bits(v), engine)
}
