package variant

import (
	"testing"

	"github.com/rufus-stone/haystack/needle"
	"github.com/stretchr/testify/require"
)

func TestDiscombobulateIPv4_ThenRecombobulate_RoundTrips(t *testing.T) {
	addr := [4]byte{192, 168, 1, 2}

	variants := DiscombobulateIPv4(addr)
	require.NotEmpty(t, variants)

	for _, v := range variants {
		n, err := v.Recombobulate()
		require.NoError(t, err)
		require.Equal(t, needle.NewIPv4(addr), n)
	}
}

func TestInterpretIPv4_FiltersToU32Forms(t *testing.T) {
	window := []byte{192, 168, 1, 2, 0, 0}

	variants := InterpretIPv4(window)
	require.NotEmpty(t, variants)

	for _, v := range variants {
		require.True(t, v.Inner.IsU32())
	}
}
