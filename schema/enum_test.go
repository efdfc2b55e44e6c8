package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnumKnownAndUnknownValues verifies a recognized discriminant
// reports Known/Name correctly and an unrecognized one preserves its
// raw value while rendering as CDR null.
func TestEnumKnownAndUnknownValues(t *testing.T) {
	e := NewEnumFromName(Terrain5Bit, "pl")
	require.True(t, e.Known())
	name, ok := e.Name()
	require.True(t, ok)
	require.Equal(t, "pl", name)
	require.NotNil(t, e.ToCanonical())

	unknown := NewEnum(Terrain5Bit, 0b11111)
	_, ok = unknown.Name()
	if !ok {
		require.Nil(t, unknown.ToCanonical())
	}
}

// TestNewEnumFromNameUnrecognized verifies an unrecognized CDR name
// yields the zero raw value rather than panicking. For Terrain5Bit the
// zero raw value is the declared variant "tu", so the result is Known.
func TestNewEnumFromNameUnrecognized(t *testing.T) {
	e := NewEnumFromName(Terrain5Bit, "not-a-real-terrain-code")
	require.True(t, e.Known())
	require.Equal(t, uint8(0), e.Value())
}

// TestEnumSparseDiscriminantsPreserved verifies every declared variant
// of a sparse enum round-trips through NewEnumFromName/Name.
func TestEnumSparseDiscriminantsPreserved(t *testing.T) {
	for _, v := range Terrain5Bit.Variants {
		e := NewEnumFromName(Terrain5Bit, v.CDR)
		require.Equal(t, v.Value, e.Value())
		name, ok := e.Name()
		require.True(t, ok)
		require.Equal(t, v.CDR, name)
	}
}
