package cdr

import "fmt"

// Converter drives a single to-canonical/from-canonical walk, building
// up a field-name path as it descends so error messages can point at
// the exact field that failed.
type Converter struct {
	path []string
}

// NewConverter returns a converter with an empty path.
func NewConverter() *Converter { return &Converter{} }

// Field pushes name onto the path for the duration of fn, then pops it.
// Use this around the conversion of a named sub-field so that any error
// raised inside fn is reported with that field qualified in its path.
func (c *Converter) Field(name string, fn func() error) error {
	c.path = append(c.path, name)
	err := fn()
	c.path = c.path[:len(c.path)-1]
	return err
}

// Err formats msg like fmt.Errorf and, if the converter is currently
// inside one or more Field calls, prefixes the message with the
// dotted field path.
func (c *Converter) Err(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if len(c.path) == 0 {
		return fmt.Errorf("%s", msg)
	}
	p := c.path[0]
	for _, f := range c.path[1:] {
		p += "." + f
	}
	return fmt.Errorf("%s: %s", p, msg)
}

// EnsureString asserts that v is a string.
func (c *Converter) EnsureString(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", c.Err("expected string, instead found %T", v)
	}
	return s, nil
}

// EnsureInt asserts that v is an integer (int64 or int).
func (c *Converter) EnsureInt(v Value) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, c.Err("expected integer, instead found %T", v)
	}
}

// EnsureDouble asserts that v is a float64.
func (c *Converter) EnsureDouble(v Value) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, c.Err("expected double, instead found %T", v)
	}
	return f, nil
}

// EnsureBool asserts that v is a bool.
func (c *Converter) EnsureBool(v Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, c.Err("expected bool, instead found %T", v)
	}
	return b, nil
}

// EnsureList asserts that v is a List.
func (c *Converter) EnsureList(v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, c.Err("expected list, instead found %T", v)
	}
	return l, nil
}

// EnsureTable asserts that v is a *Table and returns a TableView that
// tracks which keys have been consumed by the caller.
func (c *Converter) EnsureTable(v Value) (*TableView, error) {
	t, ok := v.(*Table)
	if !ok {
		return nil, c.Err("expected table, instead found %T", v)
	}
	return &TableView{t: t, consumed: map[string]bool{keyOrderKey: true}}, nil
}

// TableView wraps a *Table while a record's from-canonical decoder
// consumes its fields, so that any keys left untouched at the end can
// be reported as an error (CDR -> record rejects unknown keys).
type TableView struct {
	t        *Table
	consumed map[string]bool
}

// Field looks up key, marking it consumed regardless of whether it was
// present.
func (tv *TableView) Field(key string) (Value, bool) {
	tv.consumed[key] = true
	v, ok := tv.t.Get(key)
	return v, ok
}

// RequireField looks up key via conv, returning an error if it is absent.
func (tv *TableView) RequireField(conv *Converter, key string) (Value, error) {
	v, ok := tv.Field(key)
	if !ok {
		return nil, conv.Err("missing required key '%s'", key)
	}
	return v, nil
}

// EndOfTracking reports an error naming any table key that was never
// consumed via Field/RequireField, implementing the "reject unknown
// keys" rule for CDR -> record conversion.
func (tv *TableView) EndOfTracking(conv *Converter) error {
	for _, k := range tv.t.Keys {
		if !tv.consumed[k] {
			return conv.Err("unrecognized key '%s' found in table", k)
		}
	}
	return nil
}
