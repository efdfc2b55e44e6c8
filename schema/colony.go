package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// ColonyFlags is the packed byte of per-colony boolean state: whether
// the colony has been visited this turn, is currently under siege,
// etc.
type ColonyFlags struct {
	Capital      bool `cdr:"capital"`
	CoastalShip  bool `cdr:"coastal_ship"`
	Besieged     bool `cdr:"besieged"`
	Starving     bool `cdr:"starving"`
	Rebelling    bool `cdr:"rebelling"`
	Reserved1    bool `cdr:"-"`
	Reserved2    bool `cdr:"-"`
	Reserved3    bool `cdr:"-"`
}

func (f *ColonyFlags) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, f) }
func (f ColonyFlags) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, f) }
func (f ColonyFlags) ToCanonical() cdr.Value            { return ReflectToCanonical(f) }
func (f *ColonyFlags) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, f)
}

// CargoHold is the fixed 16-slot commodity quantity array every
// colony (and every ship unit) carries, one uint16 per Cargo4Bit
// commodity in declared order.
type CargoHold [16]uint16

func (c *CargoHold) ReadBinary(cur binio.Cursor) bool {
	for i := range c {
		v, ok := cur.ReadN(2)
		if !ok {
			return false
		}
		c[i] = uint16(v)
	}
	return true
}

func (c CargoHold) WriteBinary(cur binio.Cursor) bool {
	for _, v := range c {
		if !cur.WriteN(2, uint64(v)) {
			return false
		}
	}
	return true
}

func (c CargoHold) ToCanonical() cdr.Value {
	list := make(cdr.List, len(c))
	for i, v := range c {
		list[i] = int64(v)
	}
	return list
}

// Colony is one entry of the save's colony vector (§6.1.4): position,
// owning nation, name, population, buildings, and cargo hold.
type Colony struct {
	X, Y      uint8
	Nation    Enum[uint8] // nation_type, stored as a full byte on this record
	Name      packed.FixedString
	Population uint8
	Buildings Buildings
	Cargo     CargoHold
	Flags     ColonyFlags
	Unknown   packed.FixedBytes
}

func NewColony() Colony {
	return Colony{Name: packed.NewFixedString(32), Unknown: packed.NewFixedBytes(4)}
}

func (c *Colony) ReadBinary(cur binio.Cursor) bool {
	x, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	y, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	c.X, c.Y = uint8(x), uint8(y)

	nation, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	c.Nation = NewEnum(Nation, uint8(nation))

	c.Name = packed.NewFixedString(32)
	if !c.Name.ReadBinary(cur) {
		return false
	}

	pop, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	c.Population = uint8(pop)

	if !c.Buildings.ReadBinary(cur) || !c.Cargo.ReadBinary(cur) || !c.Flags.ReadBinary(cur) {
		return false
	}

	c.Unknown = packed.NewFixedBytes(4)
	return c.Unknown.ReadBinary(cur)
}

func (c Colony) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteN(1, uint64(c.X)) || !cur.WriteN(1, uint64(c.Y)) {
		return false
	}
	if !cur.WriteN(1, uint64(c.Nation.Value())) {
		return false
	}
	if !c.Name.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(1, uint64(c.Population)) {
		return false
	}
	if !c.Buildings.WriteBinary(cur) || !c.Cargo.WriteBinary(cur) || !c.Flags.WriteBinary(cur) {
		return false
	}
	return c.Unknown.WriteBinary(cur)
}

func (c Colony) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("x", int64(c.X))
	t.Set("y", int64(c.Y))
	t.Set("nation", c.Nation.ToCanonical())
	t.Set("name", c.Name.ToCanonical())
	t.Set("population", int64(c.Population))
	t.Set("buildings", c.Buildings.ToCanonical())
	t.Set("cargo", c.Cargo.ToCanonical())
	t.Set("flags", c.Flags.ToCanonical())
	t.Set("unknown", c.Unknown.ToCanonical())
	return t
}
