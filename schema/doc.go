// Package schema defines the legacy save-file record types: enums
// with sparse discriminants, packed bit-records sharing one integer
// word, and aggregate records composed of named fields in a fixed
// declared order. Every record type provides a binary encode/decode
// pair and a to-canonical (CDR) projection. Enums additionally have a
// display string (Enum.String) and a CDR parser (FromCanonicalEnum),
// and the all-boolean flag records (TutorialHelp, GameFlags1,
// EventFlags, PlayerFlags, UnitFlags, ColonyFlags) have a
// FromCanonical method. The other aggregate records have no display
// string and no from-canonical conversion.
//
// The enum and bit-record machinery is shared across all concrete
// types via generic engines (enum.go, bitrecord.go); aggregate
// records hand-write their binary and to-canonical conversions,
// since Go has no value-level generics to express "N fields of
// varying, parameterized types in a fixed order" the way the
// original's code generator did. The flag records instead build their
// CDR table with a shared reflective helper (record.go) driven by a
// `cdr:"..."` struct tag.
package schema
