package needle

import (
	"fmt"
	"net/netip"

	"github.com/rufus-stone/haystack/errs"
)

// IPv4 is a semantic IPv4 address target.
//
// Tolerance, when set, is a CIDR prefix length 0..=32: lhs matches rhs
// iff rhs's /prefix network contains lhs's address.
type IPv4 struct {
	Value     [4]byte
	Tolerance *int
}

var _ Needle = IPv4{}

// NewIPv4 constructs an exact-match IPv4 needle.
func NewIPv4(addr [4]byte) Needle {
	return IPv4{Value: addr}
}

// NewIPv4WithTolerance constructs an IPv4 needle that matches any address
// within the /prefixLen network containing addr.
func NewIPv4WithTolerance(addr [4]byte, prefixLen int) (Needle, error) {
	if prefixLen < 0 || prefixLen > 32 {
		return nil, fmt.Errorf("%w: CIDR prefix length %d out of range [0,32]", errs.ErrInvalidInput, prefixLen)
	}

	return IPv4{Value: addr, Tolerance: &prefixLen}, nil
}

func (IPv4) Kind() Kind { return KindIPv4 }

func (lhs IPv4) Matches(rhs Needle) bool {
	r, ok := rhs.(IPv4)
	if !ok {
		return false
	}

	if r.Tolerance == nil {
		return lhs.Value == r.Value
	}

	network := netip.PrefixFrom(netip.AddrFrom4(r.Value), *r.Tolerance)

	return network.Contains(netip.AddrFrom4(lhs.Value))
}
