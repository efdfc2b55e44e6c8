package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// Buildings is the 48-bit packed record (six bytes) describing a
// colony's construction level in every building slot. Fields are
// declared in the legacy LSB-first order: the first field occupies
// the lowest bits of byte 0.
//
// Per the worked example in the spec: Fortification=_2 (0b011),
// Armory=_0 (0b000), Docks=true (0b1) packs to byte 0 = 0x43, with
// every other field (including the reserved bit completing byte 0)
// left at zero.
type Buildings struct {
	Fortification  Enum[uint8] // 3 bits, level_3bit_type
	Armory         Enum[uint8] // 3 bits, level_3bit_type
	Docks          bool        // 1 bit
	Reserved       bool        // 1 bit, unused/reserved
	Warehouse      Enum[uint8] // 2 bits, level_2bit_type
	Church         Enum[uint8] // 2 bits, level_2bit_type
	Schoolhouse    Enum[uint8] // 2 bits, level_2bit_type
	Stable         bool        // 1 bit
	Newspaper      bool        // 1 bit
	Shipyard       Enum[uint8] // 2 bits, level_2bit_type
	Tobacconist    Enum[uint8] // 3 bits, level_3bit_type
	Weaver         Enum[uint8] // 3 bits, level_3bit_type
	Distiller      Enum[uint8] // 3 bits, level_3bit_type
	FurTrader      Enum[uint8] // 3 bits, level_3bit_type
	Blacksmith     Enum[uint8] // 3 bits, level_3bit_type
	Gunsmith       Enum[uint8] // 3 bits, level_3bit_type
	StockadeWall   bool        // 1 bit (redundant flag mirroring Fortification >= 1, kept opaque)
	CustomHouse    bool        // 1 bit
	Unused         uint16      // 10 bits, unused/reserved
}

var buildingsLayout = BitLayout{
	{"fortification", 3}, {"armory", 3}, {"docks", 1}, {"reserved", 1},
	{"warehouse", 2}, {"church", 2}, {"schoolhouse", 2},
	{"stable", 1}, {"newspaper", 1}, {"shipyard", 2},
	{"tobacconist", 3}, {"weaver", 3}, {"distiller", 3}, {"fur_trader", 3},
	{"blacksmith", 3}, {"gunsmith", 3},
	{"stockade_wall", 1}, {"custom_house", 1}, {"unused", 10},
}

func (b *Buildings) ReadBinary(cur binio.Cursor) bool {
	vals, ok := ReadBitRecord(cur, buildingsLayout)
	if !ok {
		return false
	}
	b.Fortification = NewEnum(Level3Bit, uint8(vals[0]))
	b.Armory = NewEnum(Level3Bit, uint8(vals[1]))
	b.Docks = vals[2] != 0
	b.Reserved = vals[3] != 0
	b.Warehouse = NewEnum(Level2Bit, uint8(vals[4]))
	b.Church = NewEnum(Level2Bit, uint8(vals[5]))
	b.Schoolhouse = NewEnum(Level2Bit, uint8(vals[6]))
	b.Stable = vals[7] != 0
	b.Newspaper = vals[8] != 0
	b.Shipyard = NewEnum(Level2Bit, uint8(vals[9]))
	b.Tobacconist = NewEnum(Level3Bit, uint8(vals[10]))
	b.Weaver = NewEnum(Level3Bit, uint8(vals[11]))
	b.Distiller = NewEnum(Level3Bit, uint8(vals[12]))
	b.FurTrader = NewEnum(Level3Bit, uint8(vals[13]))
	b.Blacksmith = NewEnum(Level3Bit, uint8(vals[14]))
	b.Gunsmith = NewEnum(Level3Bit, uint8(vals[15]))
	b.StockadeWall = vals[16] != 0
	b.CustomHouse = vals[17] != 0
	b.Unused = uint16(vals[18])
	return true
}

func (b Buildings) WriteBinary(cur binio.Cursor) bool {
	bv := func(v bool) uint64 {
		if v {
			return 1
		}
		return 0
	}
	vals := []uint64{
		uint64(b.Fortification.Value()), uint64(b.Armory.Value()), bv(b.Docks), bv(b.Reserved),
		uint64(b.Warehouse.Value()), uint64(b.Church.Value()), uint64(b.Schoolhouse.Value()),
		bv(b.Stable), bv(b.Newspaper), uint64(b.Shipyard.Value()),
		uint64(b.Tobacconist.Value()), uint64(b.Weaver.Value()), uint64(b.Distiller.Value()), uint64(b.FurTrader.Value()),
		uint64(b.Blacksmith.Value()), uint64(b.Gunsmith.Value()),
		bv(b.StockadeWall), bv(b.CustomHouse), uint64(b.Unused),
	}
	return WriteBitRecord(cur, buildingsLayout, vals)
}

func (b Buildings) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("fortification", b.Fortification.ToCanonical())
	t.Set("armory", b.Armory.ToCanonical())
	t.Set("docks", cdr.Value(b.Docks))
	t.Set("warehouse", b.Warehouse.ToCanonical())
	t.Set("church", b.Church.ToCanonical())
	t.Set("schoolhouse", b.Schoolhouse.ToCanonical())
	t.Set("stable", cdr.Value(b.Stable))
	t.Set("newspaper", cdr.Value(b.Newspaper))
	t.Set("shipyard", b.Shipyard.ToCanonical())
	t.Set("tobacconist", b.Tobacconist.ToCanonical())
	t.Set("weaver", b.Weaver.ToCanonical())
	t.Set("distiller", b.Distiller.ToCanonical())
	t.Set("fur trader", b.FurTrader.ToCanonical())
	t.Set("blacksmith", b.Blacksmith.ToCanonical())
	t.Set("gunsmith", b.Gunsmith.ToCanonical())
	t.Set("stockade wall", cdr.Value(b.StockadeWall))
	t.Set("custom house", cdr.Value(b.CustomHouse))
	return t
}
