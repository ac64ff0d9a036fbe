package source

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec wraps klauspost/compress/s2's block format. S2 has no
// container magic, so it is only ever selected explicitly (-codec s2),
// never sniffed.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}

	return out, nil
}
