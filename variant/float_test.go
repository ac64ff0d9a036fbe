package variant

import (
	"testing"

	"github.com/rufus-stone/haystack/needle"
	"github.com/stretchr/testify/require"
)

func TestDiscombobulateFloat_ThenInterpret_RoundTrips(t *testing.T) {
	variants := DiscombobulateFloat(3.14)

	for _, v := range variants {
		decoded := InterpretFloat(v.Bytes)

		var found bool
		for _, d := range decoded {
			if d.Kind == v.Kind {
				require.InDelta(t, v.Value, d.Value, 0.0000001)
				found = true
			}
		}
		require.True(t, found, "kind %s did not round-trip", v.Kind)
	}
}

func TestDiscombobulateFloat_F32LosesPrecision(t *testing.T) {
	value := 0.1 + 0.2 // not exactly representable in float32 or float64

	variants := DiscombobulateFloat(value)

	var f32Value, f64Value float64
	for _, v := range variants {
		switch v.Kind {
		case KindF32LE:
			f32Value = v.Value
		case KindF64LE:
			f64Value = v.Value
		}
	}

	require.NotEqual(t, f64Value, f32Value)
}

func TestDiscombobulateFloat_SkipsF32ForOutOfRangeValues(t *testing.T) {
	variants := DiscombobulateFloat(1e40)

	for _, v := range variants {
		require.False(t, v.IsF32(), "F32 form %s should not be emitted for a value outside float32 range", v.Kind)
	}

	require.Len(t, variants, 2)
}

func TestRecombobulateFloat_LiftsToNeedleFloat(t *testing.T) {
	v := FloatVariant{Kind: KindF64LE, Value: 2.5}

	n, err := v.Recombobulate()
	require.NoError(t, err)
	require.Equal(t, needle.NewFloat(2.5), n)
}
