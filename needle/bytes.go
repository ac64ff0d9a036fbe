package needle

import "bytes"

// Bytes is a semantic raw byte-run target, matched by exact byte
// identity. It carries no tolerance — spec §3 defines no fuzzy form for
// this domain.
type Bytes struct {
	Sequence []byte
}

var _ Needle = Bytes{}

// NewBytes constructs a Bytes needle matching sequence exactly.
func NewBytes(sequence []byte) Needle {
	return Bytes{Sequence: sequence}
}

func (Bytes) Kind() Kind { return KindBytes }

func (lhs Bytes) Matches(rhs Needle) bool {
	r, ok := rhs.(Bytes)
	if !ok {
		return false
	}

	return bytes.Equal(lhs.Sequence, r.Sequence)
}
