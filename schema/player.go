package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// PlayerFlags is the single packed byte of per-player boolean state
// that sits between the name fields and the control enum.
type PlayerFlags struct {
	Human                bool `cdr:"human"`
	IndependenceDeclared bool `cdr:"independence_declared"`
	IsREF                bool `cdr:"is_ref"`
	Withdrawn            bool `cdr:"withdrawn"`
	MetEuropeans         bool `cdr:"met_europeans"`
	Reserved1            bool `cdr:"-"`
	Reserved2            bool `cdr:"-"`
	Reserved3            bool `cdr:"-"`
}

func (f *PlayerFlags) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, f) }
func (f PlayerFlags) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, f) }
func (f PlayerFlags) ToCanonical() cdr.Value            { return ReflectToCanonical(f) }
func (f *PlayerFlags) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, f)
}

// Player is one of the four fixed colonial-nation slots (§6.1.2):
// a 24-byte player name, a 24-byte country name, a packed flag byte,
// a control enum, a founded-colonies count, and a diplomacy byte.
type Player struct {
	Name             packed.FixedString
	Country          packed.FixedString
	Flags            PlayerFlags
	Control          Enum[uint8]
	FoundedColonies  uint8
	Diplomacy        uint8
}

// NewPlayer returns a zeroed player slot with correctly-sized string
// buffers.
func NewPlayer() Player {
	return Player{Name: packed.NewFixedString(24), Country: packed.NewFixedString(24)}
}

func (p *Player) ReadBinary(cur binio.Cursor) bool {
	p.Name = packed.NewFixedString(24)
	p.Country = packed.NewFixedString(24)
	if !p.Name.ReadBinary(cur) || !p.Country.ReadBinary(cur) || !p.Flags.ReadBinary(cur) {
		return false
	}
	ctrl, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	p.Control = NewEnum(Control, uint8(ctrl))
	founded, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	p.FoundedColonies = uint8(founded)
	diplo, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	p.Diplomacy = uint8(diplo)
	return true
}

func (p Player) WriteBinary(cur binio.Cursor) bool {
	if !p.Name.WriteBinary(cur) || !p.Country.WriteBinary(cur) || !p.Flags.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(1, uint64(p.Control.Value())) {
		return false
	}
	if !cur.WriteN(1, uint64(p.FoundedColonies)) {
		return false
	}
	return cur.WriteN(1, uint64(p.Diplomacy))
}

func (p Player) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("name", p.Name.ToCanonical())
	t.Set("country", p.Country.ToCanonical())
	t.Set("flags", p.Flags.ToCanonical())
	t.Set("control", p.Control.ToCanonical())
	t.Set("founded colonies", int64(p.FoundedColonies))
	t.Set("diplomacy", int64(p.Diplomacy))
	return t
}

// Other is the small fixed-size block (§6.1.3) of miscellaneous
// save-wide state that follows the four player records: mostly opaque
// to this codec, preserved bit-for-bit.
type Other struct {
	EndOfTurnSign Enum[uint16]
	Unknown       packed.FixedBytes // 20 bytes
}

func NewOther() Other { return Other{Unknown: packed.NewFixedBytes(20)} }

func (o *Other) ReadBinary(cur binio.Cursor) bool {
	sign, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	o.EndOfTurnSign = NewEnum(EndOfTurnSign, uint16(sign))
	o.Unknown = packed.NewFixedBytes(20)
	return o.Unknown.ReadBinary(cur)
}

func (o Other) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteN(2, uint64(o.EndOfTurnSign.Value())) {
		return false
	}
	return o.Unknown.WriteBinary(cur)
}

func (o Other) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("end of turn sign", o.EndOfTurnSign.ToCanonical())
	t.Set("unknown", o.Unknown.ToCanonical())
	return t
}
