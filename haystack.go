// Package haystack scans a byte buffer for semantic needle values hidden
// behind any of their on-wire encodings: it slides a window across the
// buffer, asks every domain to interpret that window, recombobulates each
// resulting variant back to a semantic value, and reports every target
// it matches.
package haystack

import (
	"github.com/rufus-stone/haystack/internal/hash"
	"github.com/rufus-stone/haystack/internal/pool"
	"github.com/rufus-stone/haystack/needle"
	"github.com/rufus-stone/haystack/variant"
)

// memoPrefix bounds the memoization key to the widest span any domain's
// interpret consumes — Location's two adjacent f64 floats, 16 bytes.
// Bytes beyond that never affect InterpretAll's result for a given
// window, so two offsets sharing this prefix always interpret
// identically.
const memoPrefix = 16

// Hit is one match: the target it satisfied, the semantic value
// recombobulated from the haystack, the on-wire variant that produced
// it, and the byte offset the variant was decoded from.
type Hit struct {
	Target  needle.Needle
	Actual  needle.Needle
	Variant variant.NeedleVariant
	Offset  int
}

// Scan slides a window across data and returns every Hit, ordered by
// offset ascending, then by domain (Integer, Float, Timestamp, Location,
// IPv4, MAC), then by interpret/target order. Hits are not deduplicated:
// the same (offset, target) pair may appear multiple times via different
// variants, since the variant itself is informative.
func Scan(data []byte, targets []needle.Needle) []Hit {
	return scan(data, targets, Config{memoPrefix: defaultMemoPrefix})
}

// ScanSources scans each of sources independently, offsets local to each
// source, as required for scanning a set of extracted packet payloads.
func ScanSources(sources [][]byte, targets []needle.Needle) [][]Hit {
	out := make([][]Hit, len(sources))
	for i, src := range sources {
		out[i] = Scan(src, targets)
	}

	return out
}

// scan is Scan generalized over a Config, shared by the package-level
// Scan and Scanner.Scan.
func scan(data []byte, targets []needle.Needle, cfg Config) []Hit {
	var hits []Hit

	limit := len(data)
	if cfg.maxOffset > 0 && cfg.maxOffset < limit {
		limit = cfg.maxOffset
	}

	cache := make(map[uint64][]variant.NeedleVariant)
	scratch := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(scratch)

	for i := 0; i < limit; i++ {
		window := data[i:]

		variants := interpretMemoized(window, cfg.memoPrefix, cache, scratch)

		for _, v := range variants {
			actual, err := v.Recombobulate()
			if err != nil {
				continue
			}

			for _, target := range targets {
				if actual.Matches(target) {
					hits = append(hits, Hit{Target: target, Actual: actual, Variant: v, Offset: i})
				}
			}
		}
	}

	return hits
}

// interpretMemoized runs variant.InterpretAll over window, caching the
// result keyed by the xxHash of its first prefixLen bytes when the window
// is long enough for the key to be unambiguous. This collapses repeated
// work on haystacks with long runs of identical bytes (padding, zeroed
// fields) without affecting correctness beyond the vanishingly small risk
// of a 64-bit hash collision.
func interpretMemoized(window []byte, prefixLen int, cache map[uint64][]variant.NeedleVariant, scratch *pool.ByteBuffer) []variant.NeedleVariant {
	if len(window) < prefixLen {
		return variant.InterpretAll(window)
	}

	scratch.Reset()
	scratch.MustWrite(window[:prefixLen])
	key := hash.ID(string(scratch.Bytes()))

	if cached, ok := cache[key]; ok {
		return cached
	}

	variants := variant.InterpretAll(window)
	cache[key] = variants

	return variants
}
