package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// TestLegacyToModernTileWater verifies plain ocean and sea-lane tiles
// translate to the modern water surface, distinguished only by SeaLane.
func TestLegacyToModernTileWater(t *testing.T) {
	ocean := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "ttt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	out, err := LegacyToModernTile(ocean)
	require.NoError(t, err)
	require.Equal(t, modern.SurfaceWater, out.Surface)
	require.False(t, out.SeaLane)

	lane := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "tnt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	out, err = LegacyToModernTile(lane)
	require.NoError(t, err)
	require.Equal(t, modern.SurfaceWater, out.Surface)
	require.True(t, out.SeaLane)
}

// TestTileRoundTripPlainAndForest verifies a plain ground tile and its
// forest-overlay duplicate round-trip through both translation
// directions without loss.
func TestTileRoundTripPlainAndForest(t *testing.T) {
	plain := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "pl"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	mt, err := LegacyToModernTile(plain)
	require.NoError(t, err)
	require.Equal(t, modern.GroundPlains, mt.Ground)
	require.Equal(t, modern.OverlayNone, mt.Overlay)

	back, err := ModernToLegacyTile(mt)
	require.NoError(t, err)
	name, ok := back.Surface.Name()
	require.True(t, ok)
	require.Equal(t, "pl", name)

	forest := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "plf"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	mt, err = LegacyToModernTile(forest)
	require.NoError(t, err)
	require.Equal(t, modern.GroundPlains, mt.Ground)
	require.Equal(t, modern.OverlayForest, mt.Overlay)

	back, err = ModernToLegacyTile(mt)
	require.NoError(t, err)
	name, ok = back.Surface.Name()
	require.True(t, ok)
	require.Equal(t, "plf", name)
}

// TestTileHillsAndMinorRiverCombine verifies the hills-with-minor-river
// combination round-trips through the shared hills_river field.
func TestTileHillsAndMinorRiverCombine(t *testing.T) {
	tile := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "gr"),
		HillsRiver: schema.NewEnumFromName(schema.HillsRiver3Bit, "tc"),
	}
	mt, err := LegacyToModernTile(tile)
	require.NoError(t, err)
	require.Equal(t, modern.OverlayHills, mt.Overlay)
	require.Equal(t, modern.RiverMinor, mt.River)

	back, err := ModernToLegacyTile(mt)
	require.NoError(t, err)
	name, ok := back.HillsRiver.Name()
	require.True(t, ok)
	require.Equal(t, "tc", name)
}

// TestTileMountainsWithRiverRejected verifies mountains combined with
// any river has no legacy representation.
func TestTileMountainsWithRiverRejected(t *testing.T) {
	mt := modern.Tile{
		Surface: modern.SurfaceLand,
		Ground:  modern.GroundPlains,
		Overlay: modern.OverlayMountains,
		River:   modern.RiverMinor,
	}
	_, err := ModernToLegacyTile(mt)
	require.Error(t, err)
}

// TestTileHillsWithMajorRiverRejected verifies hills combined with a
// major river has no legacy representation.
func TestTileHillsWithMajorRiverRejected(t *testing.T) {
	mt := modern.Tile{
		Surface: modern.SurfaceLand,
		Ground:  modern.GroundPlains,
		Overlay: modern.OverlayHills,
		River:   modern.RiverMajor,
	}
	_, err := ModernToLegacyTile(mt)
	require.Error(t, err)
}

// TestLegacyToModernTerrainStripsOuterRing verifies the 1-tile ocean
// ring is stripped and the interior dimensions shrink by 2 in each axis.
func TestLegacyToModernTerrainStripsOuterRing(t *testing.T) {
	ocean := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "ttt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	plains := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "pl"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	sg := schema.NewSaveGame()
	sg.Header.MapSizeX = 4
	sg.Header.MapSizeY = 3
	sg.Tile = []schema.Tile{
		ocean, ocean, ocean, ocean,
		ocean, plains, plains, ocean,
		ocean, ocean, ocean, ocean,
	}

	grid, err := LegacyToModernTerrain(sg)
	require.NoError(t, err)
	require.Equal(t, 2, grid.Width)
	require.Equal(t, 1, grid.Height)
	require.Equal(t, modern.SurfaceLand, grid.At(0, 0).Surface)
	require.Equal(t, modern.SurfaceLand, grid.At(1, 0).Surface)
}

// TestModernToLegacyTilesRepadsOceanRing verifies the inverse adds back
// a one-tile ocean ring around the modern interior.
func TestModernToLegacyTilesRepadsOceanRing(t *testing.T) {
	grid := modern.TerrainGrid{Width: 1, Height: 1, Tiles: []modern.Tile{{
		Surface: modern.SurfaceLand,
		Ground:  modern.GroundPlains,
	}}}

	tiles, w, h, err := ModernToLegacyTiles(grid)
	require.NoError(t, err)
	require.Equal(t, 3, w)
	require.Equal(t, 3, h)
	require.Len(t, tiles, 9)

	corner := tiles[0]
	name, ok := corner.Surface.Name()
	require.True(t, ok)
	require.Equal(t, "ttt", name)

	center := tiles[1*w+1]
	name, ok = center.Surface.Name()
	require.True(t, ok)
	require.Equal(t, "pl", name)
}
