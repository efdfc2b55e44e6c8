package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// UnitFlags is the packed byte of per-unit state flags.
type UnitFlags struct {
	Fortified bool `cdr:"fortified"`
	Sentry    bool `cdr:"sentry"`
	Damaged   bool `cdr:"damaged"`
	Veteran   bool `cdr:"veteran"`
	Mounted   bool `cdr:"mounted"`
	Armed     bool `cdr:"armed"`
	Reserved1 bool `cdr:"-"`
	Reserved2 bool `cdr:"-"`
}

func (f *UnitFlags) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, f) }
func (f UnitFlags) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, f) }
func (f UnitFlags) ToCanonical() cdr.Value            { return ReflectToCanonical(f) }
func (f *UnitFlags) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, f)
}

// Unit is one entry of the save's unit vector (§6.1.5): position,
// owning nation, type, orders, profession/occupation, movement points
// remaining, and (for ships) a cargo hold.
type Unit struct {
	X, Y       uint8
	Nation     Enum[uint8]
	Type       Enum[uint8]
	Profession Enum[uint8]
	Orders     Enum[uint8]
	MovesLeft  uint8
	Flags      UnitFlags
	Cargo      CargoHold
	Unknown    packed.FixedBytes
}

func NewUnit() Unit { return Unit{Unknown: packed.NewFixedBytes(6)} }

func (u *Unit) ReadBinary(cur binio.Cursor) bool {
	x, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	y, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	u.X, u.Y = uint8(x), uint8(y)

	readEnum := func(def *EnumDef[uint8]) (Enum[uint8], bool) {
		v, ok := cur.ReadN(1)
		if !ok {
			return Enum[uint8]{}, false
		}
		return NewEnum(def, uint8(v)), true
	}
	var ok2 bool
	if u.Nation, ok2 = readEnum(Nation); !ok2 {
		return false
	}
	if u.Type, ok2 = readEnum(Unit); !ok2 {
		return false
	}
	if u.Profession, ok2 = readEnum(Profession); !ok2 {
		return false
	}
	if u.Orders, ok2 = readEnum(Orders); !ok2 {
		return false
	}

	moves, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	u.MovesLeft = uint8(moves)

	if !u.Flags.ReadBinary(cur) || !u.Cargo.ReadBinary(cur) {
		return false
	}

	u.Unknown = packed.NewFixedBytes(6)
	return u.Unknown.ReadBinary(cur)
}

func (u Unit) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteN(1, uint64(u.X)) || !cur.WriteN(1, uint64(u.Y)) {
		return false
	}
	vals := []uint8{u.Nation.Value(), u.Type.Value(), u.Profession.Value(), u.Orders.Value()}
	for _, v := range vals {
		if !cur.WriteN(1, uint64(v)) {
			return false
		}
	}
	if !cur.WriteN(1, uint64(u.MovesLeft)) {
		return false
	}
	if !u.Flags.WriteBinary(cur) || !u.Cargo.WriteBinary(cur) {
		return false
	}
	return u.Unknown.WriteBinary(cur)
}

func (u Unit) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("x", int64(u.X))
	t.Set("y", int64(u.Y))
	t.Set("nation", u.Nation.ToCanonical())
	t.Set("type", u.Type.ToCanonical())
	t.Set("profession", u.Profession.ToCanonical())
	t.Set("orders", u.Orders.ToCanonical())
	t.Set("moves left", int64(u.MovesLeft))
	t.Set("flags", u.Flags.ToCanonical())
	t.Set("cargo", u.Cargo.ToCanonical())
	t.Set("unknown", u.Unknown.ToCanonical())
	return t
}
