package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rufus-stone/haystack/needle"
)

// needleSpec is the on-disk JSON shape for one target needle, read from
// the file named by -needles. Kind selects which fields apply.
type needleSpec struct {
	Kind      string   `json:"kind"`
	Value     *float64 `json:"value,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`

	// Timestamp
	At           string `json:"at,omitempty"`
	ToleranceDur string `json:"tolerance_duration,omitempty"`

	// Location
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`

	// IPv4 / MAC
	Addr         string `json:"addr,omitempty"`
	PrefixLen    *int   `json:"prefix_len,omitempty"`
	MACTolerance string `json:"mac_tolerance,omitempty"` // "same_oui" | "same_company" | "company"
	Company      string `json:"company,omitempty"`

	// Bytes (hex-encoded)
	Hex string `json:"hex,omitempty"`
}

func loadNeedles(path string) ([]needle.Needle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read needles file: %w", err)
	}

	var specs []needleSpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse needles file: %w", err)
	}

	needles := make([]needle.Needle, 0, len(specs))
	for i, spec := range specs {
		n, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("needle %d: %w", i, err)
		}

		needles = append(needles, n)
	}

	return needles, nil
}

func (s needleSpec) build() (needle.Needle, error) {
	switch s.Kind {
	case "integer":
		if s.Value == nil {
			return nil, fmt.Errorf("integer needle requires value")
		}
		if s.Tolerance != nil {
			return needle.NewIntegerWithTolerance(int64(*s.Value), int64(*s.Tolerance)), nil
		}

		return needle.NewInteger(int64(*s.Value)), nil

	case "float":
		if s.Value == nil {
			return nil, fmt.Errorf("float needle requires value")
		}
		if s.Tolerance != nil {
			return needle.NewFloatWithTolerance(*s.Value, *s.Tolerance), nil
		}

		return needle.NewFloat(*s.Value), nil

	case "timestamp":
		if s.At == "" {
			return nil, fmt.Errorf("timestamp needle requires at")
		}
		if s.ToleranceDur != "" {
			d, err := time.ParseDuration(s.ToleranceDur)
			if err != nil {
				return nil, fmt.Errorf("invalid tolerance_duration: %w", err)
			}

			return needle.NewTimestampWithTolerance(s.At, d)
		}

		return needle.NewTimestamp(s.At)

	case "location":
		if s.Tolerance != nil {
			return needle.NewLocationWithTolerance(s.Lat, s.Lon, *s.Tolerance)
		}

		return needle.NewLocation(s.Lat, s.Lon)

	case "ipv4":
		addr := net.ParseIP(s.Addr)
		if addr == nil || addr.To4() == nil {
			return nil, fmt.Errorf("invalid IPv4 address %q", s.Addr)
		}

		var v4 [4]byte
		copy(v4[:], addr.To4())

		if s.PrefixLen != nil {
			return needle.NewIPv4WithTolerance(v4, *s.PrefixLen)
		}

		return needle.NewIPv4(v4), nil

	case "mac":
		var addr *[6]byte
		if s.Addr != "" {
			hw, err := net.ParseMAC(s.Addr)
			if err != nil || len(hw) != 6 {
				return nil, fmt.Errorf("invalid MAC address %q", s.Addr)
			}

			var v6 [6]byte
			copy(v6[:], hw)
			addr = &v6
		}

		switch s.MACTolerance {
		case "":
			if addr == nil {
				return nil, fmt.Errorf("mac needle requires addr when no tolerance is set")
			}

			return needle.NewMAC(*addr), nil

		case "same_oui":
			return needle.NewMACWithTolerance(*addr, needle.MACTolerance{Kind: needle.SameOUI}), nil

		case "same_company":
			return needle.NewMACWithTolerance(*addr, needle.MACTolerance{Kind: needle.SameCompany}), nil

		case "company":
			if s.Company == "" {
				return nil, fmt.Errorf("mac needle with company tolerance requires company")
			}

			return needle.NewMACWithCompany(s.Company), nil

		default:
			return nil, fmt.Errorf("unknown mac_tolerance %q", s.MACTolerance)
		}

	case "bytes":
		seq, err := hex.DecodeString(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", s.Hex, err)
		}

		return needle.NewBytes(seq), nil

	default:
		return nil, fmt.Errorf("unknown needle kind %q", s.Kind)
	}
}
