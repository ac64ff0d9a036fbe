package variant

import (
	"fmt"

	"github.com/rufus-stone/haystack/errs"
	"github.com/rufus-stone/haystack/needle"
)

// IPv4Variant is the Numeric(IntegerVariant) encoding of an IPv4
// address: the inner variant must be one of the U32 forms (spec §4.6).
type IPv4Variant struct {
	Inner IntegerVariant
}

// InterpretIPv4 filters Interpret's output down to the U32 forms and
// wraps each as an IPv4Variant.
func InterpretIPv4(window []byte) []IPv4Variant {
	var out []IPv4Variant

	for _, iv := range Interpret(window) {
		if iv.IsU32() {
			out = append(out, IPv4Variant{Inner: iv})
		}
	}

	return out
}

// DiscombobulateIPv4 emits the U32 encodings (LE, BE, varint) of addr.
func DiscombobulateIPv4(addr [4]byte) []IPv4Variant {
	value := int64(be32(addr))

	var out []IPv4Variant
	for _, iv := range Discombobulate(value) {
		if iv.IsU32() {
			out = append(out, IPv4Variant{Inner: iv})
		}
	}

	return out
}

func be32(addr [4]byte) uint32 {
	return uint32(addr[0])<<24 | uint32(addr[1])<<16 | uint32(addr[2])<<8 | uint32(addr[3])
}

// Recombobulate requires the inner value to fit in 32 bits and builds an
// IPv4 address from its big-endian byte pattern.
func (v IPv4Variant) Recombobulate() (needle.Needle, error) {
	if v.Inner.Value < 0 || v.Inner.Value > 0xFFFFFFFF {
		return nil, fmt.Errorf("%w: IPv4 variant value %d does not fit in 32 bits", errs.ErrInvalidEncoding, v.Inner.Value)
	}

	u := uint32(v.Inner.Value)
	addr := [4]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}

	return needle.NewIPv4(addr), nil
}

func (v IPv4Variant) String() string {
	return fmt.Sprintf("IPv4(%s)", v.Inner)
}
