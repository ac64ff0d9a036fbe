package needle

import (
	"testing"
	"time"

	"github.com/rufus-stone/haystack/ouidb"
	"github.com/stretchr/testify/require"
)

func TestInteger_ToleranceIsAsymmetric(t *testing.T) {
	actual := NewInteger(10)
	target := NewIntegerWithTolerance(0, 20)

	require.True(t, actual.Matches(target))
	require.False(t, target.Matches(actual))
}

func TestInteger_ExactEquality(t *testing.T) {
	require.True(t, NewInteger(5).Matches(NewInteger(5)))
	require.False(t, NewInteger(5).Matches(NewInteger(6)))
}

func TestFloat_Tolerance(t *testing.T) {
	actual := NewFloat(1.05)
	target := NewFloatWithTolerance(1.0, 0.1)
	require.True(t, actual.Matches(target))

	target2 := NewFloatWithTolerance(1.0, 0.01)
	require.False(t, actual.Matches(target2))
}

func TestLocation_Haversine_NYCToPerth(t *testing.T) {
	nyc, err := NewLocation(40.7128, -74.0060)
	require.NoError(t, err)

	perthFar, err := NewLocationWithTolerance(-31.9523, 115.8613, 20_000_000)
	require.NoError(t, err)
	require.True(t, nyc.Matches(perthFar))

	perthClose, err := NewLocationWithTolerance(-31.9523, 115.8613, 5_000)
	require.NoError(t, err)
	require.False(t, nyc.Matches(perthClose))
}

func TestLocation_InvalidLatLon(t *testing.T) {
	_, err := NewLocation(91, 0)
	require.Error(t, err)

	_, err = NewLocation(0, 181)
	require.Error(t, err)
}

func TestIPv4_CIDRContainment(t *testing.T) {
	addr := [4]byte{192, 168, 1, 2}

	t16, err := NewIPv4WithTolerance([4]byte{192, 168, 0, 0}, 16)
	require.NoError(t, err)
	require.True(t, NewIPv4(addr).Matches(t16))

	t24, err := NewIPv4WithTolerance([4]byte{192, 168, 0, 0}, 24)
	require.NoError(t, err)
	require.True(t, NewIPv4(addr).Matches(t24))

	t28, err := NewIPv4WithTolerance([4]byte{192, 168, 0, 0}, 28)
	require.NoError(t, err)
	require.False(t, NewIPv4(addr).Matches(t28))
}

func TestIPv4_InvalidPrefixLength(t *testing.T) {
	_, err := NewIPv4WithTolerance([4]byte{1, 2, 3, 4}, 33)
	require.Error(t, err)
}

func TestTimestamp_WholeSecondTolerance(t *testing.T) {
	actual, err := NewTimestamp("2024-01-02 12:00:00")
	require.NoError(t, err)

	target, err := NewTimestampWithTolerance("2024-01-01 12:00:00", 24*time.Hour)
	require.NoError(t, err)
	require.True(t, actual.Matches(target))

	target2, err := NewTimestampWithTolerance("2023-12-31 23:59:59", 24*time.Hour)
	require.NoError(t, err)
	require.False(t, actual.Matches(target2))
}

func TestMAC_ExactAndTolerances(t *testing.T) {
	ouidb.SetLookup(nil)
	defer ouidb.SetLookup(nil)

	actual := NewMAC([6]byte{0xE0, 0x8F, 0x4C, 0x11, 0x22, 0x33})
	target := NewMAC([6]byte{0xE0, 0x8F, 0x4C, 0x11, 0x22, 0x33})
	require.True(t, actual.Matches(target))

	sameOUITarget := NewMACWithTolerance([6]byte{0xE0, 0x8F, 0x4C, 0xAA, 0xBB, 0xCC}, MACTolerance{Kind: SameOUI})
	require.True(t, actual.Matches(sameOUITarget))

	googleActual := NewMAC([6]byte{0xD4, 0x3A, 0x2C, 0x12, 0x34, 0x56})
	googleTarget := NewMACWithTolerance([6]byte{0x54, 0x60, 0x09, 0xAA, 0xBB, 0xCC}, MACTolerance{Kind: SameCompany})
	require.True(t, googleActual.Matches(googleTarget))

	companyActual := NewMAC([6]byte{0x44, 0x38, 0x39, 0xAA, 0xBB, 0xCC})
	companyTarget := NewMACWithCompany("Cumulus Networks, Inc")
	require.True(t, companyActual.Matches(companyTarget))

	notReal := NewMAC([6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})
	require.False(t, notReal.Matches(companyTarget))

	madeUpTarget := NewMACWithCompany("Made Up Corp, Inc")
	require.False(t, companyActual.Matches(madeUpTarget))
}

func TestBytes_ExactMatch(t *testing.T) {
	require.True(t, NewBytes([]byte{1, 2, 3}).Matches(NewBytes([]byte{1, 2, 3})))
	require.False(t, NewBytes([]byte{1, 2, 3}).Matches(NewBytes([]byte{1, 2, 4})))
}

func TestCrossDomain_NeverMatches(t *testing.T) {
	require.False(t, NewInteger(1).Matches(NewFloat(1)))
}
