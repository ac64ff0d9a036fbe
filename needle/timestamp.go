package needle

import (
	"fmt"
	"time"

	"github.com/rufus-stone/haystack/dtgparse"
)

// Timestamp is a semantic wall-clock date-time target, assumed UTC.
//
// Tolerance comparisons are truncated to whole seconds on both sides —
// sub-second differences are ignored by design (see DESIGN.md, open
// question #3).
type Timestamp struct {
	Value     time.Time
	Tolerance *time.Duration
}

var _ Needle = Timestamp{}

// NewTimestamp parses s (layout dtgparse.Layout, UTC) into an exact-match
// Timestamp needle.
func NewTimestamp(s string) (Needle, error) {
	t, err := dtgparse.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("needle.NewTimestamp: %w", err)
	}

	return Timestamp{Value: t}, nil
}

// NewTimestampWithTolerance parses s into a Timestamp needle that matches
// any timestamp within tolerance (truncated to whole seconds).
func NewTimestampWithTolerance(s string, tolerance time.Duration) (Needle, error) {
	t, err := dtgparse.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("needle.NewTimestampWithTolerance: %w", err)
	}

	return Timestamp{Value: t, Tolerance: &tolerance}, nil
}

func (Timestamp) Kind() Kind { return KindTimestamp }

func (lhs Timestamp) Matches(rhs Needle) bool {
	r, ok := rhs.(Timestamp)
	if !ok {
		return false
	}

	if r.Tolerance == nil {
		return lhs.Value.Equal(r.Value)
	}

	diffSecs := absInt64(lhs.Value.Unix() - r.Value.Unix())
	tolSecs := absInt64(int64(*r.Tolerance / time.Second))

	return diffSecs <= tolSecs
}
