package source

import (
	"bytes"
	"fmt"
	"os"
)

// Sniff inspects data's leading bytes for a self-describing compression
// magic (gzip, zstd) and returns the matching Kind, or KindNone if
// neither is present.
func Sniff(data []byte) Kind {
	if bytes.HasPrefix(data, GzipMagic) {
		return KindGzip
	}

	if bytes.HasPrefix(data, ZstdMagic) {
		return KindZstd
	}

	return KindNone
}

// Load reads path and returns its decompressed contents.
//
// If kind is KindNone, the buffer is sniffed for gzip/zstd and
// decompressed accordingly, falling back to the raw bytes when neither
// magic matches. Any other kind is applied unconditionally — required
// for S2 and LZ4, whose block formats carry no magic to sniff.
func Load(path string, kind Kind) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decompress(raw, kind)
}

// Decompress applies kind to raw, auto-sniffing gzip/zstd when kind is
// KindNone.
func Decompress(raw []byte, kind Kind) ([]byte, error) {
	resolved := kind
	if resolved == KindNone {
		resolved = Sniff(raw)
	}

	codec, err := CodecFor(resolved)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress as %s: %w", resolved, err)
	}

	return out, nil
}
