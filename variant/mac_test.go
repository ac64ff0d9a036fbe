package variant

import (
	"testing"

	"github.com/rufus-stone/haystack/needle"
	"github.com/stretchr/testify/require"
)

func TestDiscombobulateMAC_ThenRecombobulate_RoundTrips(t *testing.T) {
	addr := [6]byte{0xE0, 0x8F, 0x4C, 0x11, 0x22, 0x33}

	variants := DiscombobulateMAC(addr)
	require.Len(t, variants, 2)

	for _, v := range variants {
		n, err := v.Recombobulate()
		require.NoError(t, err)
		require.Equal(t, needle.NewMAC(addr), n)
	}
}

func TestInterpretMAC_OnlyU48Forms(t *testing.T) {
	window := []byte{0xE0, 0x8F, 0x4C, 0x11, 0x22, 0x33}

	variants := InterpretMAC(window)
	require.Len(t, variants, 2)

	for _, v := range variants {
		require.True(t, v.Inner.IsU48())
	}
}
