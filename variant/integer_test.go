package variant

import (
	"testing"

	"github.com/rufus-stone/haystack/needle"
	"github.com/stretchr/testify/require"
)

func TestInterpret_DecodesAllFixedWidths(t *testing.T) {
	window := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10}

	variants := Interpret(window)
	require.NotEmpty(t, variants)

	kinds := make(map[IntegerKind]bool)
	for _, v := range variants {
		kinds[v.Kind] = true
	}

	require.True(t, kinds[KindU8])
	require.True(t, kinds[KindU16LE])
	require.True(t, kinds[KindU16BE])
	require.True(t, kinds[KindU32LE])
	require.True(t, kinds[KindU64LE])
	require.False(t, kinds[KindU48LE], "U48 is excluded from general Interpret")
}

func TestInterpret_InsufficientBytesSkipsWiderForms(t *testing.T) {
	window := []byte{0xFF}

	variants := Interpret(window)
	for _, v := range variants {
		require.LessOrEqual(t, len(v.Bytes), 1)
	}
}

func TestInterpretU48_RoundTrip(t *testing.T) {
	want := uint64(0xAABBCCDDEEFF)

	encoded := DiscombobulateU48(want)
	require.Len(t, encoded, 2)

	for _, v := range encoded {
		require.True(t, v.IsU48())

		decoded := InterpretU48(v.Bytes)
		require.NotEmpty(t, decoded)

		var found bool
		for _, d := range decoded {
			if d.Kind == v.Kind {
				require.Equal(t, int64(want), d.Value)
				found = true
			}
		}
		require.True(t, found)
	}
}

func TestDiscombobulateU48_RejectsOutOfRange(t *testing.T) {
	require.Nil(t, DiscombobulateU48(U48MaxPlusOne()))
}

func U48MaxPlusOne() uint64 { return 0x1000000000000 }

func TestU64_WrapsToNegativeI64(t *testing.T) {
	variants := Discombobulate(-1)

	var foundU64LE bool
	for _, v := range variants {
		if v.Kind == KindU64LE {
			foundU64LE = true
			decoded := Interpret(v.Bytes)
			var match bool
			for _, d := range decoded {
				if d.Kind == KindU64LE {
					require.Equal(t, int64(-1), d.Value)
					match = true
				}
			}
			require.True(t, match)
		}
	}
	require.True(t, foundU64LE)
}

func TestDiscombobulate_ThenInterpret_RoundTrips(t *testing.T) {
	for _, value := range []int64{0, 1, -1, 127, -128, 255, 65535, -32768, 2147483647, -2147483648} {
		variants := Discombobulate(value)
		require.NotEmpty(t, variants)

		for _, v := range variants {
			decoded := Interpret(v.Bytes)
			var found bool
			for _, d := range decoded {
				if d.Kind == v.Kind && d.Value == value {
					found = true
				}
			}
			require.True(t, found, "kind %s value %d bytes %x did not round-trip", v.Kind, value, v.Bytes)
		}
	}
}

func TestRecombobulate_LiftsToNeedleInteger(t *testing.T) {
	v := IntegerVariant{Kind: KindU8, Bytes: []byte{5}, Value: 5}

	n, err := v.Recombobulate()
	require.NoError(t, err)
	require.Equal(t, needle.NewInteger(5), n)
}
