package schema

import (
	"reflect"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// ReadBoolRecord reads one bit per exported bool field of the struct
// ptr points to, in declared order, least-significant bit first, and
// assigns them in place. Used by the many packed bit-records whose
// subfields are all plain flags.
func ReadBoolRecord(cur binio.Cursor, ptr any) bool {
	rv := reflect.ValueOf(ptr).Elem()
	flags, ok := ReadBoolFlags(cur, rv.NumField())
	if !ok {
		return false
	}
	for i := 0; i < rv.NumField(); i++ {
		rv.Field(i).SetBool(flags[i])
	}
	return true
}

// WriteBoolRecord packs one bit per exported bool field of v, in
// declared order, least-significant bit first.
func WriteBoolRecord(cur binio.Cursor, v any) bool {
	rv := reflect.ValueOf(v)
	flags := make([]bool, rv.NumField())
	for i := range flags {
		flags[i] = rv.Field(i).Bool()
	}
	return WriteBoolFlags(cur, flags)
}

// FromCanonicalBoolRecord parses a CDR table into the bool fields of
// ptr, matching each field's `cdr:"..."` tag against a table key.
func FromCanonicalBoolRecord(conv *cdr.Converter, v cdr.Value, ptr any) error {
	tv, err := conv.EnsureTable(v)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(ptr).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("cdr")
		if tag == "" || tag == "-" {
			continue
		}
		fv, err := tv.RequireField(conv, tag)
		if err != nil {
			return err
		}
		b, err := conv.EnsureBool(fv)
		if err != nil {
			return err
		}
		rv.Field(i).SetBool(b)
	}
	return tv.EndOfTracking(conv)
}
