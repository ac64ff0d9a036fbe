//go:build cgo

package source

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// ZstdMagic is the four-byte zstd frame signature.
var ZstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// ZstdCodec wraps valyala/gozstd's cgo binding, selected automatically
// when cgo is available: it typically outperforms the pure-Go decoder
// on large capture files at the cost of a C dependency.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	return out, nil
}
