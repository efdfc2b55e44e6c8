package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// Tile is one byte of the map's terrain grid: a 5-bit surface/ground
// code (Terrain5Bit) in the low bits and a 3-bit hills/river code
// (HillsRiver3Bit) in the high bits.
type Tile struct {
	Surface    Enum[uint8]
	HillsRiver Enum[uint8]
}

var tileLayout = BitLayout{{"surface", 5}, {"hills_river", 3}}

func (t *Tile) ReadBinary(cur binio.Cursor) bool {
	vals, ok := ReadBitRecord(cur, tileLayout)
	if !ok {
		return false
	}
	t.Surface = NewEnum(Terrain5Bit, uint8(vals[0]))
	t.HillsRiver = NewEnum(HillsRiver3Bit, uint8(vals[1]))
	return true
}

func (t Tile) WriteBinary(cur binio.Cursor) bool {
	vals := []uint64{uint64(t.Surface.Value()), uint64(t.HillsRiver.Value())}
	return WriteBitRecord(cur, tileLayout, vals)
}

func (t Tile) ToCanonical() cdr.Value {
	tb := cdr.NewTable()
	tb.Set("surface", t.Surface.ToCanonical())
	tb.Set("hills river", t.HillsRiver.ToCanonical())
	return tb
}

// IsOcean reports whether the tile's surface code is water. Only two
// of the thirty-two surface codes are water: ttt and tnt (the latter
// also always a sea lane tile); every other code, including the
// "w"-suffixed codes, is land with a forest overlay duplicate of the
// corresponding "f"-suffixed code.
func (t Tile) IsOcean() bool {
	v := t.Surface.Value()
	return v == 0b11001 || v == 0b11010
}

// Path is one entry of the save's path vector (§6.1.11): per-tile
// dynamic state derived by terrain analysis (region id) plus transient
// per-turn visitor/visibility flags.
type Path struct {
	RegionID     Enum[uint8] // 4 bits, region_id_4bit_type
	VisitorNation Enum[uint8] // 4 bits, nation_4bit_short_type
}

var pathLayout = BitLayout{{"region_id", 4}, {"visitor_nation", 4}}

func (p *Path) ReadBinary(cur binio.Cursor) bool {
	vals, ok := ReadBitRecord(cur, pathLayout)
	if !ok {
		return false
	}
	p.RegionID = NewEnum(RegionID4Bit, uint8(vals[0]))
	p.VisitorNation = NewEnum(Nation4BitShort, uint8(vals[1]))
	return true
}

func (p Path) WriteBinary(cur binio.Cursor) bool {
	vals := []uint64{uint64(p.RegionID.Value()), uint64(p.VisitorNation.Value())}
	return WriteBitRecord(cur, pathLayout, vals)
}

func (p Path) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("region id", p.RegionID.ToCanonical())
	t.Set("visitor nation", p.VisitorNation.ToCanonical())
	return t
}

// Mask is one entry of the save's mask vector (§6.1.11): per-nation
// fog-of-war visibility bits for the tile.
type Mask struct {
	English     bool
	French      bool
	Spanish     bool
	Dutch       bool
	Reserved1   bool
	Reserved2   bool
	Reserved3   bool
	Reserved4   bool
}

func (m *Mask) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, m) }
func (m Mask) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, m) }
func (m Mask) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("english", cdr.Value(m.English))
	t.Set("french", cdr.Value(m.French))
	t.Set("spanish", cdr.Value(m.Spanish))
	t.Set("dutch", cdr.Value(m.Dutch))
	return t
}

// Seen is one entry of the save's seen vector (§6.1.11): whether each
// nation has ever observed the tile (as distinct from Mask's
// currently-visible bit).
type Seen struct {
	English bool
	French  bool
	Spanish bool
	Dutch   bool
	Reserved1 bool
	Reserved2 bool
	Reserved3 bool
	Reserved4 bool
}

func (s *Seen) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, s) }
func (s Seen) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, s) }
func (s Seen) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("english", cdr.Value(s.English))
	t.Set("french", cdr.Value(s.French))
	t.Set("spanish", cdr.Value(s.Spanish))
	t.Set("dutch", cdr.Value(s.Dutch))
	return t
}
