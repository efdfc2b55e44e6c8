package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// NationRelations packs the four bilateral relation codes (one per
// colonial nation other than self) this nation entry holds, each a
// Relation3Bit value, plus a trailing reserved bit to round out the
// 16-bit record.
type NationRelations struct {
	ToEngland packed.FixedBits // 3 bits when not self; see Relation3Bit
	ToFrance  packed.FixedBits
	ToSpain   packed.FixedBits
	ToDutch   packed.FixedBits
	Reserved  packed.FixedBits // 4 bits
}

var nationRelationsLayout = BitLayout{
	{"to_england", 3}, {"to_france", 3}, {"to_spain", 3}, {"to_dutch", 3}, {"reserved", 4},
}

func (r *NationRelations) ReadBinary(cur binio.Cursor) bool {
	vals, ok := ReadBitRecord(cur, nationRelationsLayout)
	if !ok {
		return false
	}
	r.ToEngland = packed.NewFixedBits(3, vals[0])
	r.ToFrance = packed.NewFixedBits(3, vals[1])
	r.ToSpain = packed.NewFixedBits(3, vals[2])
	r.ToDutch = packed.NewFixedBits(3, vals[3])
	r.Reserved = packed.NewFixedBits(4, vals[4])
	return true
}

func (r NationRelations) WriteBinary(cur binio.Cursor) bool {
	vals := []uint64{r.ToEngland.Value(), r.ToFrance.Value(), r.ToSpain.Value(), r.ToDutch.Value(), r.Reserved.Value()}
	return WriteBitRecord(cur, nationRelationsLayout, vals)
}

func (r NationRelations) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("to england", NewEnum(Relation3Bit, uint8(r.ToEngland.Value())).ToCanonical())
	t.Set("to france", NewEnum(Relation3Bit, uint8(r.ToFrance.Value())).ToCanonical())
	t.Set("to spain", NewEnum(Relation3Bit, uint8(r.ToSpain.Value())).ToCanonical())
	t.Set("to dutch", NewEnum(Relation3Bit, uint8(r.ToDutch.Value())).ToCanonical())
	return t
}

// NationState is one of the four fixed nation-state entries (§6.1.6):
// technology level and the relation bits toward every other colonial
// power.
type NationState struct {
	Tech      Enum[uint8]
	Relations NationRelations
	Unknown   packed.FixedBytes
}

func NewNationState() NationState { return NationState{Unknown: packed.NewFixedBytes(2)} }

func (n *NationState) ReadBinary(cur binio.Cursor) bool {
	tech, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	n.Tech = NewEnum(Tech, uint8(tech))
	if !n.Relations.ReadBinary(cur) {
		return false
	}
	n.Unknown = packed.NewFixedBytes(2)
	return n.Unknown.ReadBinary(cur)
}

func (n NationState) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteN(1, uint64(n.Tech.Value())) {
		return false
	}
	if !n.Relations.WriteBinary(cur) {
		return false
	}
	return n.Unknown.WriteBinary(cur)
}

func (n NationState) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("tech", n.Tech.ToCanonical())
	t.Set("relations", n.Relations.ToCanonical())
	t.Set("unknown", n.Unknown.ToCanonical())
	return t
}

// Dwelling is one entry of the save's native-settlement vector
// (§6.1.7): position, owning tribe, and population.
type Dwelling struct {
	X, Y       uint8
	Tribe      uint8
	Population uint8
	Unknown    packed.FixedBytes
}

func NewDwelling() Dwelling { return Dwelling{Unknown: packed.NewFixedBytes(4)} }

func (d *Dwelling) ReadBinary(cur binio.Cursor) bool {
	x, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	y, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	tribe, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	pop, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	d.X, d.Y, d.Tribe, d.Population = uint8(x), uint8(y), uint8(tribe), uint8(pop)
	d.Unknown = packed.NewFixedBytes(4)
	return d.Unknown.ReadBinary(cur)
}

func (d Dwelling) WriteBinary(cur binio.Cursor) bool {
	vals := []uint8{d.X, d.Y, d.Tribe, d.Population}
	for _, v := range vals {
		if !cur.WriteN(1, uint64(v)) {
			return false
		}
	}
	return d.Unknown.WriteBinary(cur)
}

func (d Dwelling) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("x", int64(d.X))
	t.Set("y", int64(d.Y))
	t.Set("tribe", int64(d.Tribe))
	t.Set("population", int64(d.Population))
	t.Set("unknown", d.Unknown.ToCanonical())
	return t
}

// Tribe is one of the eight fixed native-nation entries (§6.1.8):
// name and alarm/tension level toward the human player, the remainder
// preserved opaque.
type Tribe struct {
	Name    packed.FixedString
	Alarm   uint8
	Unknown packed.FixedBytes
}

func NewTribe() Tribe {
	return Tribe{Name: packed.NewFixedString(16), Unknown: packed.NewFixedBytes(4)}
}

func (t *Tribe) ReadBinary(cur binio.Cursor) bool {
	t.Name = packed.NewFixedString(16)
	if !t.Name.ReadBinary(cur) {
		return false
	}
	alarm, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	t.Alarm = uint8(alarm)
	t.Unknown = packed.NewFixedBytes(4)
	return t.Unknown.ReadBinary(cur)
}

func (tr Tribe) WriteBinary(cur binio.Cursor) bool {
	if !tr.Name.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(1, uint64(tr.Alarm)) {
		return false
	}
	return tr.Unknown.WriteBinary(cur)
}

func (tr Tribe) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("name", tr.Name.ToCanonical())
	t.Set("alarm", int64(tr.Alarm))
	t.Set("unknown", tr.Unknown.ToCanonical())
	return t
}

// Stuff is the fixed block (§6.1.9) that follows the tribe vector:
// mostly an undocumented opaque blob, but its tail carries the land
// view's white-box cursor position, zoom level, and viewport origin
// (§4.6.5), which the bridge reads and writes explicitly.
type Stuff struct {
	Unknown    packed.FixedBytes
	WhiteBoxX  uint16
	WhiteBoxY  uint16
	ZoomLevel  uint8
	UnknownPad packed.FixedBytes
	ViewportX  uint16
	ViewportY  uint16
}

func NewStuff() Stuff {
	return Stuff{Unknown: packed.NewFixedBytes(32), UnknownPad: packed.NewFixedBytes(1)}
}

func (s *Stuff) ReadBinary(cur binio.Cursor) bool {
	s.Unknown = packed.NewFixedBytes(32)
	if !s.Unknown.ReadBinary(cur) {
		return false
	}
	wbx, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	wby, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	zoom, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	s.WhiteBoxX, s.WhiteBoxY, s.ZoomLevel = uint16(wbx), uint16(wby), uint8(zoom)
	s.UnknownPad = packed.NewFixedBytes(1)
	if !s.UnknownPad.ReadBinary(cur) {
		return false
	}
	vx, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	vy, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	s.ViewportX, s.ViewportY = uint16(vx), uint16(vy)
	return true
}

func (s Stuff) WriteBinary(cur binio.Cursor) bool {
	if !s.Unknown.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(2, uint64(s.WhiteBoxX)) || !cur.WriteN(2, uint64(s.WhiteBoxY)) {
		return false
	}
	if !cur.WriteN(1, uint64(s.ZoomLevel)) {
		return false
	}
	if !s.UnknownPad.WriteBinary(cur) {
		return false
	}
	return cur.WriteN(2, uint64(s.ViewportX)) && cur.WriteN(2, uint64(s.ViewportY))
}

func (s Stuff) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("unknown", s.Unknown.ToCanonical())
	t.Set("white box x", int64(s.WhiteBoxX))
	t.Set("white box y", int64(s.WhiteBoxY))
	t.Set("zoom level", int64(s.ZoomLevel))
	t.Set("unknown pad", s.UnknownPad.ToCanonical())
	t.Set("viewport x", int64(s.ViewportX))
	t.Set("viewport y", int64(s.ViewportY))
	return t
}
