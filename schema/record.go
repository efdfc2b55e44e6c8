package schema

import (
	"reflect"

	"github.com/colonize-reborn/sav/cdr"
)

// Canonicalizer is implemented by every packed value, enum, and
// aggregate record in this package.
type Canonicalizer interface {
	ToCanonical() cdr.Value
}

// ReflectToCanonical builds a CDR table for an aggregate record by
// walking its exported fields in declared order and reading each
// one's `cdr:"Display Name"` struct tag for the table key. A field
// without a tag (or tagged "-") is skipped, matching an opaque
// unknownNN field that the legacy format never surfaces in CDR
// output. v must be a struct or a pointer to one.
//
// The all-boolean flag records use it in place of a hand-written
// to_canonical: build a table, set each field under its display name,
// rely on the table's own key-ordering. The other aggregate records
// hand-write their ToCanonical. The inverse direction (from_canonical)
// is not reflected here because reconstructing a field often requires
// a parameter the struct tag doesn't carry (a FixedBits width, an enum
// definition); only the flag records have one (FromCanonicalBoolRecord).
func ReflectToCanonical(v any) cdr.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	rt := rv.Type()

	t := cdr.NewTable()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("cdr")
		if tag == "" || tag == "-" {
			continue
		}
		t.Set(tag, canonicalFieldValue(rv.Field(i)))
	}
	return t
}

func canonicalFieldValue(fv reflect.Value) cdr.Value {
	if fv.CanInterface() {
		if c, ok := fv.Interface().(Canonicalizer); ok {
			return c.ToCanonical()
		}
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make(cdr.List, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			list[i] = canonicalFieldValue(fv.Index(i))
		}
		return list
	case reflect.Bool:
		return cdr.Value(fv.Bool())
	case reflect.String:
		return cdr.Value(fv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cdr.Value(fv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cdr.Value(int64(fv.Uint()))
	default:
		return nil
	}
}
