package primitive

import (
	"testing"

	"github.com/rufus-stone/haystack/endian"
	"github.com/rufus-stone/haystack/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodeU8_InsufficientBytes(t *testing.T) {
	_, _, err := DecodeU8(nil)
	require.ErrorIs(t, err, errs.ErrInsufficientBytes)
}

func TestU16_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoded := EncodeU16(0xBEEF, engine)
		decoded, n, err := DecodeU16(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Equal(t, uint16(0xBEEF), decoded)
	}
}

func TestU32_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoded := EncodeU32(4294967295, engine)
		decoded, n, err := DecodeU32(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, uint32(4294967295), decoded)
	}
}

func TestU48_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		const v = uint64(0xAABBCCDDEEFF)
		encoded := EncodeU48(v, engine)
		require.Len(t, encoded, 6)

		decoded, n, err := DecodeU48(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, 6, n)
		require.Equal(t, v, decoded)
	}
}

func TestU48_BigEndianByteOrder(t *testing.T) {
	encoded := EncodeU48(0xAABBCCDDEEFF, endian.GetBigEndianEngine())
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, encoded)
}

func TestU48_LittleEndianByteOrder(t *testing.T) {
	encoded := EncodeU48(0xAABBCCDDEEFF, endian.GetLittleEndianEngine())
	require.Equal(t, []byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA}, encoded)
}

func TestU64_RoundTrip_HighBitWraps(t *testing.T) {
	const v = uint64(1<<64 - 1)
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoded := EncodeU64(v, engine)
		decoded, _, err := DecodeU64(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, v, decoded)

		asI64, _, err := DecodeI64(encoded, engine)
		require.NoError(t, err)
		require.Equal(t, int64(-1), asI64)
	}
}

func TestUvarint_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 40, 1<<64 - 1} {
		encoded := EncodeUvarint(v)
		decoded, n, err := DecodeUvarint(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, v, decoded)
	}
}

func TestIvarint_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 300, -300, 1 << 40, -(1 << 40)} {
		encoded := EncodeIvarint(v)
		decoded, n, err := DecodeIvarint(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, v, decoded)
	}
}

func TestDecodeUvarint_TruncatedBuffer(t *testing.T) {
	// Continuation bit set on every byte, buffer ends without a terminator.
	_, _, err := DecodeUvarint([]byte{0x80, 0x80, 0x80})
	require.ErrorIs(t, err, errs.ErrInvalidVarint)
}

func TestFloat_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		f32, _, err := DecodeF32(EncodeF32(3.14, engine), engine)
		require.NoError(t, err)
		require.Equal(t, float32(3.14), f32)

		f64, _, err := DecodeF64(EncodeF64(2.71828, engine), engine)
		require.NoError(t, err)
		require.Equal(t, 2.71828, f64)
	}
}
