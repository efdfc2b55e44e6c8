package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/binio"
)

// TestIsOceanOnlyWaterCodes verifies exactly the two water surface
// codes (ttt, tnt) report as ocean; every other code, including the
// w-suffixed forest-duplicate codes, is land.
func TestIsOceanOnlyWaterCodes(t *testing.T) {
	for _, name := range []string{"ttt", "tnt"} {
		tile := Tile{Surface: NewEnumFromName(Terrain5Bit, name)}
		require.True(t, tile.IsOcean(), "expected %q to be ocean", name)
	}

	for _, name := range []string{"pl", "plf", "plw", "arc", "gr", "tuw"} {
		tile := Tile{Surface: NewEnumFromName(Terrain5Bit, name)}
		require.False(t, tile.IsOcean(), "expected %q to be land", name)
	}
}

// TestTileBinaryRoundTrip verifies a tile's packed surface/hills_river
// byte survives a write/read cycle unchanged.
func TestTileBinaryRoundTrip(t *testing.T) {
	tile := Tile{
		Surface:    NewEnumFromName(Terrain5Bit, "grf"),
		HillsRiver: NewEnumFromName(HillsRiver3Bit, "tc"),
	}

	buf := make([]byte, 1)
	wc := binio.NewMemCursor(buf)
	require.True(t, tile.WriteBinary(wc))

	rc := binio.NewMemCursor(wc.Bytes())
	var back Tile
	require.True(t, back.ReadBinary(rc))

	require.Equal(t, tile.Surface.Value(), back.Surface.Value())
	require.Equal(t, tile.HillsRiver.Value(), back.HillsRiver.Value())
}
