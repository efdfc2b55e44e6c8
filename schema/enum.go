package schema

import (
	"github.com/colonize-reborn/sav/cdr"
)

// EnumInt is the set of underlying integer widths the legacy format
// uses for enum storage: 1, 2, or 4 bytes.
type EnumInt interface {
	~uint8 | ~uint16 | ~uint32
}

// EnumVariant binds one integer discriminant to its display name and
// its (possibly distinct) CDR name.
type EnumVariant[T EnumInt] struct {
	Value   T
	Display string
	CDR     string
}

// EnumDef is the static, read-only definition of one enum type: its
// name (used in error messages) and its variant table. Discriminants
// are not required to be contiguous.
type EnumDef[T EnumInt] struct {
	Name     string
	Variants []EnumVariant[T]
}

func (d *EnumDef[T]) byValue(v T) (EnumVariant[T], bool) {
	for _, variant := range d.Variants {
		if variant.Value == v {
			return variant, true
		}
	}
	return EnumVariant[T]{}, false
}

func (d *EnumDef[T]) byCDRName(name string) (EnumVariant[T], bool) {
	for _, variant := range d.Variants {
		if variant.CDR == name {
			return variant, true
		}
	}
	return EnumVariant[T]{}, false
}

// Enum is a value of an enum type: it always holds a raw integer, and
// additionally knows whether that integer is a recognized variant.
// Unrecognized values are preserved verbatim (round-trip fidelity for
// unknown/future discriminants) but render as CDR null and cannot be
// constructed from CDR input.
type Enum[T EnumInt] struct {
	def   *EnumDef[T]
	value T
}

// NewEnum constructs an Enum holding raw value v, recognized or not.
func NewEnum[T EnumInt](def *EnumDef[T], v T) Enum[T] {
	return Enum[T]{def: def, value: v}
}

// Value returns the raw underlying integer.
func (e Enum[T]) Value() T { return e.value }

// Known reports whether Value is a recognized variant.
func (e Enum[T]) Known() bool {
	_, ok := e.def.byValue(e.value)
	return ok
}

// String returns the display name, or a numeric fallback for an
// unrecognized value.
func (e Enum[T]) String() string {
	if v, ok := e.def.byValue(e.value); ok {
		return v.Display
	}
	return unknownEnumLabel(e.value)
}

// ToCanonical renders the CDR name, or null if the value is not a
// recognized variant.
func (e Enum[T]) ToCanonical() cdr.Value {
	if v, ok := e.def.byValue(e.value); ok {
		return cdr.Value(v.CDR)
	}
	return nil
}

// Name returns the variant's CDR name, or false if the value is not a
// recognized variant.
func (e Enum[T]) Name() (string, bool) {
	if v, ok := e.def.byValue(e.value); ok {
		return v.CDR, true
	}
	return "", false
}

// NewEnumFromName constructs an Enum from one of def's own CDR names,
// for callers (bridge translation tables) that build enum values from
// a fixed set of names they know to be valid. An unrecognized name
// yields the zero raw value rather than panicking.
func NewEnumFromName[T EnumInt](def *EnumDef[T], name string) Enum[T] {
	if v, ok := def.byCDRName(name); ok {
		return Enum[T]{def: def, value: v.Value}
	}
	return Enum[T]{def: def}
}

// FromCanonicalEnum parses a CDR string into a recognized Enum
// variant of def, or returns an "unrecognized value" error.
func FromCanonicalEnum[T EnumInt](conv *cdr.Converter, v cdr.Value, def *EnumDef[T]) (Enum[T], error) {
	str, err := conv.EnsureString(v)
	if err != nil {
		return Enum[T]{}, err
	}
	variant, ok := def.byCDRName(str)
	if !ok {
		return Enum[T]{}, conv.Err("unrecognized value for enum %s: '%s'", def.Name, str)
	}
	return Enum[T]{def: def, value: variant.Value}, nil
}

func unknownEnumLabel[T EnumInt](v T) string {
	return "unknown(" + itoaEnum(uint64(v)) + ")"
}

func itoaEnum(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
