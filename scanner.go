package haystack

import (
	"fmt"

	"github.com/rufus-stone/haystack/internal/options"
	"github.com/rufus-stone/haystack/needle"
)

// defaultMemoPrefix is the package-level Scan/ScanSources default, see
// memoPrefix's doc comment.
const defaultMemoPrefix = memoPrefix

// Config holds a Scanner's tunables. Zero value is invalid; build one
// through NewScanner's functional options.
type Config struct {
	memoPrefix int
	maxOffset  int // 0 means unbounded
}

// Option configures a Scanner at construction time.
type Option = options.Option[*Config]

// WithMemoPrefix overrides the number of leading window bytes hashed for
// interpret memoization. Must cover the widest span any domain's
// Interpret consumes (16, the package default) or memoization can return
// a stale result for a narrower domain sharing that prefix.
func WithMemoPrefix(n int) Option {
	return options.New(func(c *Config) error {
		if n < defaultMemoPrefix {
			return fmt.Errorf("haystack: memo prefix %d is narrower than the minimum safe width %d", n, defaultMemoPrefix)
		}

		c.memoPrefix = n

		return nil
	})
}

// WithMaxOffset bounds how many starting offsets a Scan will try, useful
// for capping work on very large haystacks. 0 (the default) scans every
// offset.
func WithMaxOffset(n int) Option {
	return options.NoError(func(c *Config) {
		c.maxOffset = n
	})
}

// Scanner holds a reusable scan configuration.
type Scanner struct {
	cfg Config
}

// NewScanner builds a Scanner from opts, applied in order.
func NewScanner(opts ...Option) (*Scanner, error) {
	cfg := Config{memoPrefix: defaultMemoPrefix}

	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("haystack: new scanner: %w", err)
	}

	return &Scanner{cfg: cfg}, nil
}

// Scan behaves like the package-level Scan, using s's configuration.
func (s *Scanner) Scan(data []byte, targets []needle.Needle) []Hit {
	return scan(data, targets, s.cfg)
}

// ScanSources behaves like the package-level ScanSources, using s's
// configuration.
func (s *Scanner) ScanSources(sources [][]byte, targets []needle.Needle) [][]Hit {
	out := make([][]Hit, len(sources))
	for i, src := range sources {
		out[i] = s.Scan(src, targets)
	}

	return out
}
