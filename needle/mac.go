package needle

import (
	"github.com/rufus-stone/haystack/ouidb"
)

// MACToleranceKind selects how a MAC needle's tolerance is interpreted.
type MACToleranceKind uint8

const (
	// SameOUI matches any address sharing the first three bytes.
	SameOUI MACToleranceKind = iota
	// SameCompany matches any address whose OUI resolves to the same
	// company name, even if the OUI bytes differ.
	SameCompany
	// SpecificCompany matches any address whose OUI resolves to a named
	// company, regardless of the target's own address.
	SpecificCompany
)

// MACTolerance configures how MAC.Matches treats its target.
type MACTolerance struct {
	Kind    MACToleranceKind
	Company string // only meaningful when Kind == SpecificCompany
}

// MAC is a semantic MAC address target.
//
// Value may be absent (nil) only when Tolerance is SpecificCompany — a
// needle that names a company without pinning a specific address.
type MAC struct {
	Value     *[6]byte
	Tolerance *MACTolerance
}

var _ Needle = MAC{}

// NewMAC constructs an exact-match MAC needle.
func NewMAC(addr [6]byte) Needle {
	v := addr

	return MAC{Value: &v}
}

// NewMACWithTolerance constructs a MAC needle using SameOUI or
// SameCompany tolerance.
func NewMACWithTolerance(addr [6]byte, tolerance MACTolerance) Needle {
	v := addr

	return MAC{Value: &v, Tolerance: &tolerance}
}

// NewMACWithCompany constructs a MAC needle with no pinned address that
// matches any address resolving to company.
func NewMACWithCompany(company string) Needle {
	return MAC{Tolerance: &MACTolerance{Kind: SpecificCompany, Company: company}}
}

func (MAC) Kind() Kind { return KindMAC }

func (lhs MAC) Matches(rhs Needle) bool {
	r, ok := rhs.(MAC)
	if !ok {
		return false
	}

	if r.Tolerance == nil {
		if lhs.Value == nil || r.Value == nil {
			return false
		}

		return *lhs.Value == *r.Value
	}

	switch r.Tolerance.Kind {
	case SameOUI:
		if lhs.Value == nil || r.Value == nil {
			return false
		}

		return lhs.Value[0] == r.Value[0] && lhs.Value[1] == r.Value[1] && lhs.Value[2] == r.Value[2]

	case SameCompany:
		if lhs.Value == nil || r.Value == nil {
			return false
		}

		lhsCompany, lhsOK, lhsErr := ouidb.CompanyOf(*lhs.Value)
		if lhsErr != nil || !lhsOK {
			return false
		}

		rhsCompany, rhsOK, rhsErr := ouidb.CompanyOf(*r.Value)
		if rhsErr != nil || !rhsOK {
			return false
		}

		return lhsCompany == rhsCompany

	case SpecificCompany:
		if lhs.Value == nil {
			return false
		}

		lhsCompany, lhsOK, lhsErr := ouidb.CompanyOf(*lhs.Value)
		if lhsErr != nil || !lhsOK {
			return false
		}

		return lhsCompany == r.Tolerance.Company

	default:
		return false
	}
}
