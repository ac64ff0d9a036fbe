package variant

import (
	"fmt"

	"github.com/rufus-stone/haystack/errs"
	"github.com/rufus-stone/haystack/needle"
)

// MACAddrVariant is the Numeric(IntegerVariant) encoding of a MAC
// address: the inner variant must be one of the U48 forms (spec §4.7).
type MACAddrVariant struct {
	Inner IntegerVariant
}

// InterpretMAC filters InterpretU48's output, wrapping each as a
// MACAddrVariant.
func InterpretMAC(window []byte) []MACAddrVariant {
	var out []MACAddrVariant

	for _, iv := range InterpretU48(window) {
		out = append(out, MACAddrVariant{Inner: iv})
	}

	return out
}

// DiscombobulateMAC emits the LE/BE 48-bit encodings of addr.
func DiscombobulateMAC(addr [6]byte) []MACAddrVariant {
	value := be48(addr)

	var out []MACAddrVariant
	for _, iv := range DiscombobulateU48(value) {
		out = append(out, MACAddrVariant{Inner: iv})
	}

	return out
}

func be48(addr [6]byte) uint64 {
	var v uint64
	for _, b := range addr {
		v = v<<8 | uint64(b)
	}

	return v
}

// Recombobulate splits the decoded 48-bit value into six bytes, most
// significant first — the byte ordering the source engine's MAC
// recombobulate was supposed to use but implemented with a buggy shift
// sequence (DESIGN.md open question #2); this port uses the corrected
// big-endian decomposition.
func (v MACAddrVariant) Recombobulate() (needle.Needle, error) {
	u := uint64(v.Inner.Value)
	if u > 0xFFFFFFFFFFFF {
		return nil, fmt.Errorf("%w: MAC variant value %d does not fit in 48 bits", errs.ErrInvalidEncoding, u)
	}

	addr := [6]byte{
		byte(u >> 40), byte(u >> 32), byte(u >> 24),
		byte(u >> 16), byte(u >> 8), byte(u),
	}

	return needle.NewMAC(addr), nil
}

func (v MACAddrVariant) String() string {
	return fmt.Sprintf("MAC(%s)", v.Inner)
}
