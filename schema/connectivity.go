package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// QuadrantsWide and QuadrantsHigh are the standard map's quadrant grid
// dimensions: 58x72 tiles partitioned into 4x4 quadrants is 15x18 (the
// legacy map area always pads to a multiple of 4 via its invisible
// outer ring; §4.5).
const (
	QuadrantsWide = 15
	QuadrantsHigh = 18
	QuadrantCount = QuadrantsWide * QuadrantsHigh
)

// Direction indexes the eight connectivity bits of one quadrant, in
// their declared (LSB-first) bit order.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

var directionNames = [8]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// Connectivity is one quadrant's connectivity byte: eight bits, one
// per compass direction, indicating whether that neighbor is reachable
// under the rules of §4.5 (sea-lane) or an analogous land-adjacency
// test (§4.5, "land-connectivity byte").
type Connectivity uint8

// Get reports whether the bit for direction d is set.
func (c Connectivity) Get(d Direction) bool { return c&(1<<uint(d)) != 0 }

// Set returns c with direction d's bit set to v.
func (c Connectivity) Set(d Direction, v bool) Connectivity {
	if v {
		return c | (1 << uint(d))
	}
	return c &^ (1 << uint(d))
}

// IsZero reports whether no direction bit is set, used by the OG-bug
// predicate in §4.5.1 ("the intermediate quadrant's connectivity byte
// is all-zero").
func (c Connectivity) IsZero() bool { return c == 0 }

func (c Connectivity) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	for d := North; d <= Northwest; d++ {
		t.Set(directionNames[d], cdr.Value(c.Get(d)))
	}
	return t
}

// ConnectivityGrid is the fixed 18x15 quadrant grid of connectivity
// bytes backing either the sea-lane or land-connectivity blocks of the
// save's 540-byte connectivity section (§6.1.12).
type ConnectivityGrid struct {
	cells [QuadrantCount]Connectivity
}

// NewConnectivityGrid returns an all-zero grid.
func NewConnectivityGrid() *ConnectivityGrid { return &ConnectivityGrid{} }

func idx(qx, qy int) int { return qx*QuadrantsHigh + qy }

// InBounds reports whether (qx, qy) names a valid quadrant.
func InBounds(qx, qy int) bool {
	return qx >= 0 && qx < QuadrantsWide && qy >= 0 && qy < QuadrantsHigh
}

// At returns the connectivity byte for quadrant (qx, qy).
func (g *ConnectivityGrid) At(qx, qy int) Connectivity { return g.cells[idx(qx, qy)] }

// SetAt overwrites the connectivity byte for quadrant (qx, qy).
func (g *ConnectivityGrid) SetAt(qx, qy int, c Connectivity) { g.cells[idx(qx, qy)] = c }

func (g *ConnectivityGrid) ReadBinary(cur binio.Cursor) bool {
	raw, ok := cur.ReadBytes(QuadrantCount)
	if !ok {
		return false
	}
	for i, b := range raw {
		g.cells[i] = Connectivity(b)
	}
	return true
}

func (g *ConnectivityGrid) WriteBinary(cur binio.Cursor) bool {
	raw := make([]byte, QuadrantCount)
	for i, c := range g.cells {
		raw[i] = byte(c)
	}
	return cur.WriteBytes(raw)
}

func (g *ConnectivityGrid) ToCanonical() cdr.Value {
	list := make(cdr.List, QuadrantCount)
	for i, c := range g.cells {
		list[i] = c.ToCanonical()
	}
	return list
}

// ConnectivityBlock is the full 540-byte section (§6.1.12): sea-lane
// connectivity followed by land connectivity, both 270-byte grids.
type ConnectivityBlock struct {
	SeaLane *ConnectivityGrid
	Land    *ConnectivityGrid
}

func NewConnectivityBlock() ConnectivityBlock {
	return ConnectivityBlock{SeaLane: NewConnectivityGrid(), Land: NewConnectivityGrid()}
}

func (b *ConnectivityBlock) ReadBinary(cur binio.Cursor) bool {
	b.SeaLane = NewConnectivityGrid()
	b.Land = NewConnectivityGrid()
	return b.SeaLane.ReadBinary(cur) && b.Land.ReadBinary(cur)
}

func (b ConnectivityBlock) WriteBinary(cur binio.Cursor) bool {
	return b.SeaLane.WriteBinary(cur) && b.Land.WriteBinary(cur)
}

func (b ConnectivityBlock) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("sea lane", b.SeaLane.ToCanonical())
	t.Set("land", b.Land.ToCanonical())
	return t
}
