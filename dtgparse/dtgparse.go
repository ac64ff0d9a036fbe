// Package dtgparse parses the one wall-clock date-time layout the engine
// accepts as a Needle source string. It is deliberately narrow: a general
// permissive parser (several of which appear across the retrieval
// pack's dependency manifests) would silently accept strings the engine
// is required to reject.
package dtgparse

import (
	"fmt"
	"time"

	"github.com/rufus-stone/haystack/errs"
)

// Layout is the single accepted date-time format: "YYYY-MM-DD hh:mm:ss".
const Layout = "2006-01-02 15:04:05"

// Parse parses s as a naive UTC date-time in Layout. Any deviation —
// wrong separators, a time zone offset, fractional seconds — is rejected
// with errs.ErrInvalidInput.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err == nil && t.Format(Layout) != s {
		// time.Parse tolerates a fractional-seconds suffix and single-digit
		// hours that Layout does not name; only the exact form is accepted.
		err = fmt.Errorf("not in layout %q", Layout)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w: %v", s, errs.ErrInvalidInput, err)
	}

	return t, nil
}
