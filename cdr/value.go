// Package cdr implements the canonical data representation: a tagged
// tree of null/bool/int/double/string primitives, ordered tables, and
// lists, used as a structured, JSON-and-YAML-compatible projection of
// every schema record for analysis, debugging, and round-trip tests.
package cdr

// Value is any node in a CDR tree: nil, bool, int64, float64, string,
// *Table, or List.
type Value = any

// List is an ordered sequence of CDR values.
type List []Value

// Table is an ordered string-keyed map. Keys preserves the insertion
// (i.e. declared field) order; Values holds the actual values keyed by
// name. When rendered to JSON/YAML the table additionally emits a
// "__key_order" entry listing Keys, purely for human-friendly
// re-ordering on display — decoders never rely on it semantically.
type Table struct {
	Keys   []string
	Values map[string]Value
}

// NewTable returns an empty ordered table ready for Set calls.
func NewTable() *Table {
	return &Table{Values: make(map[string]Value)}
}

// Set assigns key to v, appending key to Keys the first time it is seen.
func (t *Table) Set(key string, v Value) *Table {
	if _, ok := t.Values[key]; !ok {
		t.Keys = append(t.Keys, key)
	}
	t.Values[key] = v
	return t
}

// Get returns the value stored at key, if any.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.Values[key]
	return v, ok
}

// keyOrderKey is the synthetic field name used to preserve declared
// field order across a CDR round trip to JSON/YAML.
const keyOrderKey = "__key_order"
