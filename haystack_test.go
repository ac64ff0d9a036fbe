package haystack

import (
	"testing"

	"github.com/rufus-stone/haystack/endian"
	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/primitive"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsIntegerAcrossEncodings(t *testing.T) {
	data := append(primitive.EncodeU8(42), primitive.EncodeI64(42, endian.GetLittleEndianEngine())...)

	hits := Scan(data, []needle.Needle{needle.NewInteger(42)})
	require.NotEmpty(t, hits)

	for _, h := range hits {
		require.Equal(t, needle.NewInteger(42), h.Actual)
	}
}

func TestScan_OffsetsAreAscending(t *testing.T) {
	data := []byte{0x00, 0x2A, 0x00, 0x2A}

	hits := Scan(data, []needle.Needle{needle.NewInteger(42)})
	require.NotEmpty(t, hits)

	for i := 1; i < len(hits); i++ {
		require.GreaterOrEqual(t, hits[i].Offset, hits[i-1].Offset)
	}
}

func TestScan_NoMatchOnEmptyHaystack(t *testing.T) {
	hits := Scan(nil, []needle.Needle{needle.NewInteger(1)})
	require.Empty(t, hits)
}

func TestScanSources_KeepsOffsetsLocalToEachSource(t *testing.T) {
	a := []byte{0x2A, 0x00}
	b := []byte{0x00, 0x2A}

	results := ScanSources([][]byte{a, b}, []needle.Needle{needle.NewInteger(42)})
	require.Len(t, results, 2)
	require.NotEmpty(t, results[0])
	require.NotEmpty(t, results[1])

	// b's first hit is U16BE 0x002A at its own offset 0, not at 2 (its
	// position if the two sources were concatenated).
	require.Equal(t, 0, results[0][0].Offset)
	require.Equal(t, 0, results[1][0].Offset)
}
