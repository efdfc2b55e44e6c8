package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// TradeRouteLimits are the hard capacities §4.6.4 of the bridge spec
// checks against on translation; the schema layer itself always reads
// and writes exactly these fixed array sizes, since the legacy format
// has no variable-length trade-route storage.
const (
	MaxTradeRoutes  = 12
	MaxStops        = 4
	MaxCargoSlots   = 6
	MaxRouteNameLen = 32
)

// HarborStop is the sentinel stop-target value meaning "Europe" rather
// than a colony index.
const HarborStop = 999

// CargoSlot is one load/unload commodity instruction at a stop: which
// commodity, and whether it is a load or unload instruction.
type CargoSlot struct {
	Commodity Enum[uint8]
	Load      bool
}

func (c *CargoSlot) ReadBinary(cur binio.Cursor) bool {
	commodity, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	loadByte, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	c.Commodity = NewEnum(Cargo4Bit, uint8(commodity))
	c.Load = loadByte != 0
	return true
}

func (c CargoSlot) WriteBinary(cur binio.Cursor) bool {
	load := uint64(0)
	if c.Load {
		load = 1
	}
	return cur.WriteN(1, uint64(c.Commodity.Value())) && cur.WriteN(1, load)
}

func (c CargoSlot) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("commodity", c.Commodity.ToCanonical())
	t.Set("load", cdr.Value(c.Load))
	return t
}

// Stop is one trade-route waypoint (§4.6.4): a target (a colony index,
// or HarborStop for Europe) and up to MaxCargoSlots load/unload
// commodity instructions, of which only the first NumSlots are
// meaningful.
type Stop struct {
	Target   uint16
	NumSlots uint8
	Slots    [MaxCargoSlots]CargoSlot
}

func (s *Stop) ReadBinary(cur binio.Cursor) bool {
	target, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	s.Target = uint16(target)

	n, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	s.NumSlots = uint8(n)

	for i := range s.Slots {
		if !s.Slots[i].ReadBinary(cur) {
			return false
		}
	}
	return true
}

func (s Stop) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteN(2, uint64(s.Target)) {
		return false
	}
	if !cur.WriteN(1, uint64(s.NumSlots)) {
		return false
	}
	for _, slot := range s.Slots {
		if !slot.WriteBinary(cur) {
			return false
		}
	}
	return true
}

func (s Stop) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("target", int64(s.Target))
	t.Set("num slots", int64(s.NumSlots))
	slots := make(cdr.List, s.NumSlots)
	for i := 0; i < int(s.NumSlots) && i < len(s.Slots); i++ {
		slots[i] = s.Slots[i].ToCanonical()
	}
	t.Set("slots", slots)
	return t
}

// TradeRoute is one of the save's twelve fixed trade-route slots
// (§6.1.14): its kind, name, owning nation, and up to MaxStops stops.
type TradeRoute struct {
	Active   bool
	Kind     Enum[uint8]
	Name     packed.FixedString
	Nation   Enum[uint8]
	NumStops uint8
	Stops    [MaxStops]Stop
}

func NewTradeRoute() TradeRoute {
	return TradeRoute{Name: packed.NewFixedString(MaxRouteNameLen)}
}

func (r *TradeRoute) ReadBinary(cur binio.Cursor) bool {
	active, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	r.Active = active != 0

	kind, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	r.Kind = NewEnum(TradeRouteKind, uint8(kind))

	r.Name = packed.NewFixedString(MaxRouteNameLen)
	if !r.Name.ReadBinary(cur) {
		return false
	}

	nation, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	r.Nation = NewEnum(Nation, uint8(nation))

	numStops, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	r.NumStops = uint8(numStops)

	for i := range r.Stops {
		if !r.Stops[i].ReadBinary(cur) {
			return false
		}
	}
	return true
}

func (r TradeRoute) WriteBinary(cur binio.Cursor) bool {
	active := uint64(0)
	if r.Active {
		active = 1
	}
	if !cur.WriteN(1, active) {
		return false
	}
	if !cur.WriteN(1, uint64(r.Kind.Value())) {
		return false
	}
	if !r.Name.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(1, uint64(r.Nation.Value())) {
		return false
	}
	if !cur.WriteN(1, uint64(r.NumStops)) {
		return false
	}
	for _, s := range r.Stops {
		if !s.WriteBinary(cur) {
			return false
		}
	}
	return true
}

func (r TradeRoute) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("active", cdr.Value(r.Active))
	t.Set("kind", r.Kind.ToCanonical())
	t.Set("name", r.Name.ToCanonical())
	t.Set("nation", r.Nation.ToCanonical())
	t.Set("num stops", int64(r.NumStops))
	stops := make(cdr.List, r.NumStops)
	for i := 0; i < int(r.NumStops) && i < len(r.Stops); i++ {
		stops[i] = r.Stops[i].ToCanonical()
	}
	t.Set("stops", stops)
	return t
}
