package dtgparse

import (
	"testing"
	"time"

	"github.com/rufus-stone/haystack/errs"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	got, err := Parse("2024-01-02 12:00:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), got)
}

func TestParse_RejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{
		"2024-01-02T12:00:00Z",
		"2024-01-02 12:00:00.000",
		"01/02/2024 12:00:00",
		"not a date",
		"",
	} {
		_, err := Parse(s)
		require.ErrorIs(t, err, errs.ErrInvalidInput, "input %q should be rejected", s)
	}
}
