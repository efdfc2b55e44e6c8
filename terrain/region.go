// Package terrain implements the two grid algorithms of §4.4/§4.5:
// connected-component region labeling and 4x4-quadrant sea-lane
// connectivity analysis, both operating over a save's tile/path grids.
package terrain

import (
	"github.com/colonize-reborn/sav/savlog"
	"github.com/colonize-reborn/sav/schema"
)

// Grid is the minimal read/write surface region labeling and sea-lane
// analysis need over a save's tile and path vectors: width/height plus
// indexed tile and region-id access. A SaveGame satisfies it via the
// thin adapter returned by Adapt; there is no MapFile adapter.
type Grid interface {
	Width() int
	Height() int
	TileAt(x, y int) schema.Tile
	RegionID(x, y int) int
	SetRegionID(x, y int, id int)
}

// saveGrid adapts a *schema.SaveGame's row-major Tile/Path vectors to
// the Grid interface.
type saveGrid struct {
	sg *schema.SaveGame
}

// Adapt wraps sg for use with LabelRegions and the sea-lane passes.
func Adapt(sg *schema.SaveGame) Grid { return &saveGrid{sg: sg} }

func (g *saveGrid) Width() int  { return int(g.sg.Header.MapSizeX) }
func (g *saveGrid) Height() int { return int(g.sg.Header.MapSizeY) }

func (g *saveGrid) index(x, y int) int { return y*g.Width() + x }

func (g *saveGrid) TileAt(x, y int) schema.Tile { return g.sg.Tile[g.index(x, y)] }

func (g *saveGrid) RegionID(x, y int) int {
	return int(g.sg.Path[g.index(x, y)].RegionID.Value())
}

func (g *saveGrid) SetRegionID(x, y int, id int) {
	p := g.sg.Path[g.index(x, y)]
	p.RegionID = schema.NewEnum(schema.RegionID4Bit, uint8(id))
	g.sg.Path[g.index(x, y)] = p
}

// RegionOne is the reserved region id for ocean tiles connected,
// directly or transitively, to the map's left or right edge (§4.4).
const RegionOne = 1

// maxRegionID is the largest id the 4-bit region field can hold.
const maxRegionID = 15

type point struct{ x, y int }

var fourWay = [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// LabelRegions runs the two-pass flood fill of §4.4 over g, writing a
// region id into every tile's Path.RegionID:
//
//  1. every ocean tile transitively 4-connected to the left or right
//     map edge gets RegionOne, regardless of whether the two edges are
//     themselves connected to each other;
//  2. every remaining connected component of identical surface class
//     (land, or non-RegionOne water) gets the next unused small
//     integer id, assigned in row-major discovery order; ids stop at
//     15, so every component after the fourteenth shares id 15.
//
// The visitor_nation subfield is left untouched (§4.4 point 3).
func LabelRegions(g Grid) {
	timer := savlog.NewTimer("terrain.LabelRegions")
	defer timer.Stop()

	w, h := g.Width(), g.Height()
	labeled := make([][]bool, h)
	for y := range labeled {
		labeled[y] = make([]bool, w)
	}

	// Pass 1: flood fill from every edge-column ocean tile.
	var queue []point
	seedEdge := func(x, y int) {
		if !g.TileAt(x, y).IsOcean() || labeled[y][x] {
			return
		}
		labeled[y][x] = true
		g.SetRegionID(x, y, RegionOne)
		queue = append(queue, point{x, y})
	}
	for y := 0; y < h; y++ {
		seedEdge(0, y)
		seedEdge(w-1, y)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range fourWay {
			nx, ny := p.x+d.x, p.y+d.y
			if nx < 0 || nx >= w || ny < 0 || ny >= h || labeled[ny][nx] {
				continue
			}
			if !g.TileAt(nx, ny).IsOcean() {
				continue
			}
			labeled[ny][nx] = true
			g.SetRegionID(nx, ny, RegionOne)
			queue = append(queue, point{nx, ny})
		}
	}

	// Pass 2: flood fill every remaining component of like surface
	// class (land vs. water), row-major discovery order.
	nextID := RegionOne + 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labeled[y][x] {
				continue
			}
			id := nextID
			if nextID < maxRegionID {
				nextID++
			}
			wantOcean := g.TileAt(x, y).IsOcean()

			labeled[y][x] = true
			g.SetRegionID(x, y, id)
			comp := []point{{x, y}}
			for len(comp) > 0 {
				p := comp[0]
				comp = comp[1:]
				for _, d := range fourWay {
					nx, ny := p.x+d.x, p.y+d.y
					if nx < 0 || nx >= w || ny < 0 || ny >= h || labeled[ny][nx] {
						continue
					}
					if g.TileAt(nx, ny).IsOcean() != wantOcean {
						continue
					}
					labeled[ny][nx] = true
					g.SetRegionID(nx, ny, id)
					comp = append(comp, point{nx, ny})
				}
			}
		}
	}
}
