package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/schema"
)

// mockGrid is a minimal terrain.Grid backed by a plain slice, used to
// exercise LabelRegions and the sea-lane sweep without a full SaveGame.
type mockGrid struct {
	w, h   int
	tiles  []schema.Tile
	region []int
}

func newMockGrid(w, h int, ocean bool) *mockGrid {
	surface := "pl"
	if ocean {
		surface = "ttt"
	}
	t := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, surface),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	g := &mockGrid{w: w, h: h, tiles: make([]schema.Tile, w*h), region: make([]int, w*h)}
	for i := range g.tiles {
		g.tiles[i] = t
	}
	return g
}

func (g *mockGrid) Width() int  { return g.w }
func (g *mockGrid) Height() int { return g.h }

func (g *mockGrid) idx(x, y int) int { return y*g.w + x }

func (g *mockGrid) TileAt(x, y int) schema.Tile { return g.tiles[g.idx(x, y)] }
func (g *mockGrid) setTile(x, y int, t schema.Tile) { g.tiles[g.idx(x, y)] = t }
func (g *mockGrid) RegionID(x, y int) int { return g.region[g.idx(x, y)] }
func (g *mockGrid) SetRegionID(x, y int, id int) { g.region[g.idx(x, y)] = id }

func landTile() schema.Tile {
	return schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "pl"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
}

func oceanTile() schema.Tile {
	return schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "ttt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
}

// TestLabelRegionsOceanRing verifies every ocean tile touching a map
// edge column ends up in RegionOne, even when the left and right edges
// are not directly connected to each other.
func TestLabelRegionsOceanRing(t *testing.T) {
	g := newMockGrid(5, 3, true)
	// Punch a land bridge through the middle column so left and right
	// edges are not connected through row 1, but both edges still touch
	// region one independently via rows 0 and 2.
	g.setTile(2, 1, landTile())

	LabelRegions(g)

	require.Equal(t, RegionOne, g.RegionID(0, 0))
	require.Equal(t, RegionOne, g.RegionID(4, 0))
	require.Equal(t, RegionOne, g.RegionID(0, 2))
	require.Equal(t, RegionOne, g.RegionID(4, 2))
	require.NotEqual(t, RegionOne, g.RegionID(2, 1))
}

// TestLabelRegionsLandComponent verifies a landlocked land component
// not touching either edge is assigned a single consistent non-RegionOne id.
func TestLabelRegionsLandComponent(t *testing.T) {
	g := newMockGrid(5, 3, true)
	g.setTile(2, 0, landTile())
	g.setTile(2, 1, landTile())
	g.setTile(2, 2, landTile())

	LabelRegions(g)

	id := g.RegionID(2, 1)
	require.NotEqual(t, RegionOne, id)
	require.Equal(t, id, g.RegionID(2, 0))
	require.Equal(t, id, g.RegionID(2, 2))
}

// TestLabelRegionsDisjointWater verifies a pocket of water fully
// enclosed by land (never touching an edge) is not RegionOne.
func TestLabelRegionsDisjointWater(t *testing.T) {
	g := newMockGrid(5, 5, false)
	g.setTile(2, 2, oceanTile())

	LabelRegions(g)

	require.NotEqual(t, RegionOne, g.RegionID(2, 2))
}
