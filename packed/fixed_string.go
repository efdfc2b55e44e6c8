package packed

import (
	"fmt"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// FixedString is an N-byte ASCII buffer that is null-terminated iff the
// string it holds is shorter than N. Equality is componentwise over
// the buffer, not over the trimmed string.
type FixedString struct {
	n int
	a []byte
}

// NewFixedString returns a zeroed FixedString of width n.
func NewFixedString(n int) FixedString {
	return FixedString{n: n, a: make([]byte, n)}
}

// Len returns the declared buffer width N.
func (s FixedString) Len() int { return s.n }

// Raw returns the underlying N-byte buffer.
func (s FixedString) Raw() []byte { return s.a }

// SetString overwrites the buffer with str followed by zero padding.
// An error is returned (and the buffer left unmodified) if str does not
// fit in N bytes.
func (s *FixedString) SetString(str string) error {
	if len(str) > s.n {
		return fmt.Errorf("expected string with length <= %d, but instead found length %d.", s.n, len(str))
	}
	s.a = make([]byte, s.n)
	copy(s.a, str)
	return nil
}

// String returns the buffer truncated at its first null byte (or the
// full buffer if it contains none).
func (s FixedString) String() string {
	for i, c := range s.a {
		if c == 0 {
			return string(s.a[:i])
		}
	}
	return string(s.a)
}

// Equal reports componentwise equality of the underlying buffers.
func (s FixedString) Equal(o FixedString) bool {
	if s.n != o.n {
		return false
	}
	for i := range s.a {
		if s.a[i] != o.a[i] {
			return false
		}
	}
	return true
}

// ReadBinary reads exactly N raw bytes into the string buffer.
func (s *FixedString) ReadBinary(b binio.Cursor) bool {
	buf, ok := b.ReadBytes(s.n)
	if !ok {
		return false
	}
	s.a = buf
	return true
}

// WriteBinary writes the string buffer verbatim.
func (s FixedString) WriteBinary(b binio.Cursor) bool {
	return b.WriteBytes(s.a)
}

// ToCanonical renders the trimmed string as a CDR string value.
func (s FixedString) ToCanonical() cdr.Value {
	return cdr.Value(s.String())
}

// FromCanonicalFixedString parses a CDR string value into a width-n FixedString,
// rejecting input longer than n bytes.
func FromCanonicalFixedString(conv *cdr.Converter, v cdr.Value, n int) (FixedString, error) {
	str, err := conv.EnsureString(v)
	if err != nil {
		return FixedString{}, err
	}
	res := NewFixedString(n)
	if err := res.SetString(str); err != nil {
		return FixedString{}, conv.Err("%s", err.Error())
	}
	return res, nil
}
