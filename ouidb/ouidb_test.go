package ouidb

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex6(t *testing.T, s string) [6]byte {
	t.Helper()
	raw, err := hex.DecodeString(strings.ReplaceAll(s, ":", ""))
	require.NoError(t, err)
	require.Len(t, raw, 6)

	var out [6]byte
	copy(out[:], raw)

	return out
}

func TestCompanyOf_KnownOUI(t *testing.T) {
	SetLookup(nil)
	defer SetLookup(nil)

	name, ok, err := CompanyOf(mustHex6(t, "E0:8F:4C:11:22:33"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Intel Corp", name)
}

func TestCompanyOf_DifferentOUISameCompany(t *testing.T) {
	SetLookup(nil)
	defer SetLookup(nil)

	a, okA, errA := CompanyOf(mustHex6(t, "D4:3A:2C:12:34:56"))
	b, okB, errB := CompanyOf(mustHex6(t, "54:60:09:AA:BB:CC"))
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.True(t, okA)
	require.True(t, okB)
	require.Equal(t, a, b)
}

func TestCompanyOf_UnknownOUI(t *testing.T) {
	SetLookup(nil)
	defer SetLookup(nil)

	_, ok, err := CompanyOf(mustHex6(t, "11:22:33:44:55:66"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetLookup_Override(t *testing.T) {
	SetLookup(mapLookup{{0x01, 0x02, 0x03}: "Test Co"})
	defer SetLookup(nil)

	name, ok, err := CompanyOf(mustHex6(t, "01:02:03:00:00:00"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Test Co", name)
}
