package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestQuadrantAnchorPicksFirstCandidate verifies the anchor-selection
// rule tries (1,1) before the other three candidate offsets.
func TestQuadrantAnchorPicksFirstCandidate(t *testing.T) {
	g := newMockGrid(4, 4, true)
	g.SetRegionID(1, 1, RegionOne)
	g.SetRegionID(1, 2, RegionOne)
	g.SetRegionID(2, 1, RegionOne)
	g.SetRegionID(2, 2, RegionOne)

	anchor, ok := quadrantAnchor(g, 0, 0)
	require.True(t, ok)
	require.Equal(t, point{1, 1}, anchor)
}

// TestQuadrantAnchorFallsThroughCandidates verifies a later candidate
// is used when earlier ones are not region-one ocean.
func TestQuadrantAnchorFallsThroughCandidates(t *testing.T) {
	g := newMockGrid(4, 4, false) // all land
	g.setTile(2, 2, oceanTile())
	g.SetRegionID(2, 2, RegionOne)

	anchor, ok := quadrantAnchor(g, 0, 0)
	require.True(t, ok)
	require.Equal(t, point{2, 2}, anchor)
}

// TestQuadrantAnchorNoneFound verifies a quadrant with no region-one
// ocean candidate reports not-found.
func TestQuadrantAnchorNoneFound(t *testing.T) {
	g := newMockGrid(4, 4, false)
	_, ok := quadrantAnchor(g, 0, 0)
	require.False(t, ok)
}

// TestPathExistsAdjacent verifies two adjacent region-one ocean tiles
// are connected.
func TestPathExistsAdjacent(t *testing.T) {
	g := newMockGrid(8, 8, true)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g.SetRegionID(x, y, RegionOne)
		}
	}
	require.True(t, pathExists(g, point{1, 1}, point{2, 1}))
}

// TestPathExistsBlockedByLand verifies no path exists when land fully
// separates the two points within the search budget.
func TestPathExistsBlockedByLand(t *testing.T) {
	g := newMockGrid(8, 8, true)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g.SetRegionID(x, y, RegionOne)
		}
	}
	for y := 0; y < 8; y++ {
		g.setTile(4, y, landTile())
		g.SetRegionID(4, y, 2)
	}
	require.False(t, pathExists(g, point{1, 1}, point{6, 1}))
}

// TestPathExistsSamePoint verifies the trivial from==to case.
func TestPathExistsSamePoint(t *testing.T) {
	g := newMockGrid(4, 4, true)
	require.True(t, pathExists(g, point{1, 1}, point{1, 1}))
}
