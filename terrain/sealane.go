package terrain

import (
	"math"

	"github.com/colonize-reborn/sav/savlog"
	"github.com/colonize-reborn/sav/schema"
)

// quadrantSize is the fixed width/height of one quadrant (§4.5).
const quadrantSize = 4

// maxPathLen is the sea-lane path-length budget of §4.5.
const maxPathLen = 6

func opposite(d schema.Direction) schema.Direction {
	return (d + 4) % 8
}

// quadrantAnchor implements the §4.5 "Anchor selection" rule: the
// first of the four candidate offsets, in declared order, whose
// region id is RegionOne and whose tile is ocean.
func quadrantAnchor(g Grid, qx, qy int) (point, bool) {
	candidates := [4]point{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	base := point{qx * quadrantSize, qy * quadrantSize}
	for _, c := range candidates {
		x, y := base.x+c.x, base.y+c.y
		if x >= g.Width() || y >= g.Height() {
			continue
		}
		if g.RegionID(x, y) == RegionOne && g.TileAt(x, y).IsOcean() {
			return point{x, y}, true
		}
	}
	return point{}, false
}

// frontierEntry tracks the best-known distance found so far for a
// point during the best-first search.
type frontierEntry struct {
	p    point
	dist int
}

func dist2(a, b point) float64 {
	dx := float64(a.x - b.x)
	dy := float64(a.y - b.y)
	return dx*dx + dy*dy
}

var eightWay = [8]point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// pathExists implements the §4.5 "Path test": a bounded best-first
// search over 8-directional steps through region-one ocean tiles,
// choosing at each round the open frontier point closest (straight
// line) to the destination. It is not guaranteed to find the shortest
// path, only *a* path of length <= maxPathLen if one exists.
func pathExists(g Grid, from, to point) bool {
	if from == to {
		return true
	}
	frontier := map[point]int{from: 0}
	explored := map[point]int{}

	for len(frontier) > 0 {
		// Pick the open frontier point with smallest straight-line
		// distance to the destination.
		var best point
		bestDist := math.MaxFloat64
		for p := range frontier {
			d := dist2(p, to)
			if d < bestDist {
				bestDist = d
				best = p
			}
		}
		curDist := frontier[best]
		delete(frontier, best)
		explored[best] = curDist

		if curDist >= maxPathLen {
			continue
		}

		for _, off := range eightWay {
			np := point{best.x + off.x, best.y + off.y}
			if np.x < 0 || np.y < 0 || np.x >= g.Width() || np.y >= g.Height() {
				continue
			}
			if np == to {
				return curDist+1 <= maxPathLen
			}
			if g.RegionID(np.x, np.y) != RegionOne || !g.TileAt(np.x, np.y).IsOcean() {
				continue
			}
			if d, ok := explored[np]; ok && d <= curDist+1 {
				continue
			}
			if d, ok := frontier[np]; ok && d <= curDist+1 {
				continue
			}
			frontier[np] = curDist + 1
		}
	}
	return false
}

// PopulateSeaLaneConnectivity runs the bug-free §4.5 sweep, writing
// the result into sg.Connectivity.SeaLane. The land-connectivity grid
// is left untouched by this pass (§4.5, "unused by this pass").
func PopulateSeaLaneConnectivity(sg *schema.SaveGame) {
	timer := savlog.NewTimer("terrain.PopulateSeaLaneConnectivity")
	defer timer.Stop()

	g := Adapt(sg)
	grid := sg.Connectivity.SeaLane

	sweepOffsets := []struct {
		d   schema.Direction
		off point
	}{
		{schema.Southwest, point{-1, 1}},
		{schema.South, point{0, 1}},
		{schema.Southeast, point{1, 1}},
		{schema.East, point{1, 0}},
	}

	for qy := 0; qy < schema.QuadrantsHigh; qy++ {
		for qx := 0; qx < schema.QuadrantsWide; qx++ {
			anchor, ok := quadrantAnchor(g, qx, qy)
			if !ok {
				continue
			}
			for _, s := range sweepOffsets {
				nqx, nqy := qx+s.off.x, qy+s.off.y
				if !schema.InBounds(nqx, nqy) {
					continue
				}
				nAnchor, ok := quadrantAnchor(g, nqx, nqy)
				if !ok {
					continue
				}
				if pathExists(g, anchor, nAnchor) {
					grid.SetAt(qx, qy, grid.At(qx, qy).Set(s.d, true))
					grid.SetAt(nqx, nqy, grid.At(nqx, nqy).Set(opposite(s.d), true))
				}
			}
		}
	}
}

// seaLaneTile reports whether the tile at (x, y) is an ocean tile with
// region id RegionOne, the §4.5.1 "sea_lane(t)" predicate. Out-of-
// bounds points are treated as not a sea lane.
func seaLaneTile(g Grid, x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		return false
	}
	return g.RegionID(x, y) == RegionOne && g.TileAt(x, y).IsOcean()
}

// PopulateSeaLaneConnectivityWithBug runs the correct sweep and then
// reproduces the original game's spurious NE/SW suppression bug
// (§4.5.1), so a regenerated file can be compared byte-exactly with an
// original save. New saves should prefer PopulateSeaLaneConnectivity.
func PopulateSeaLaneConnectivityWithBug(sg *schema.SaveGame) {
	PopulateSeaLaneConnectivity(sg)

	g := Adapt(sg)
	grid := sg.Connectivity.SeaLane

	for qy := schema.QuadrantsHigh - 1; qy >= 0; qy-- {
		for qx := schema.QuadrantsWide - 1; qx >= 0; qx-- {
			if !grid.At(qx, qy).Get(schema.Northeast) {
				continue
			}
			interQ := point{qx, qy - 1}
			upperQ := point{qx, qy - 2}
			if !schema.InBounds(interQ.x, interQ.y) || !schema.InBounds(upperQ.x, upperQ.y) {
				continue
			}
			if !grid.At(interQ.x, interQ.y).IsZero() {
				continue
			}
			if grid.At(upperQ.x, upperQ.y).IsZero() {
				continue
			}

			p := point{qx * quadrantSize, qy * quadrantSize}
			bottomClear := seaLaneTile(g, p.x+3, p.y) || seaLaneTile(g, p.x+4, p.y-1) || !seaLaneTile(g, p.x+4, p.y)
			topClear := !seaLaneTile(g, p.x+4, p.y-4) || !seaLaneTile(g, p.x+3, p.y-5) || !seaLaneTile(g, p.x+4, p.y-5)

			if bottomClear || topClear {
				neighQ := point{qx + 1, qy - 1}
				grid.SetAt(qx, qy, grid.At(qx, qy).Set(schema.Northeast, false))
				if schema.InBounds(neighQ.x, neighQ.y) {
					grid.SetAt(neighQ.x, neighQ.y, grid.At(neighQ.x, neighQ.y).Set(schema.Southwest, false))
				}
			}
		}
	}
}
