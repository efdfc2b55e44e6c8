package packed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
)

// FixedBytes is an opaque N-byte blob whose meaning is unknown or
// irrelevant; its CDR form is a sequence of lowercase hex pairs
// separated by single spaces, with no trailing space and the empty
// string for N=0.
type FixedBytes struct {
	n int
	a []byte
}

// NewFixedBytes returns a zeroed FixedBytes of width n.
func NewFixedBytes(n int) FixedBytes {
	return FixedBytes{n: n, a: make([]byte, n)}
}

// Len returns the declared width N.
func (b FixedBytes) Len() int { return b.n }

// Raw returns the underlying N-byte buffer.
func (b FixedBytes) Raw() []byte { return b.a }

// SetRaw replaces the buffer, which must have length N.
func (b *FixedBytes) SetRaw(data []byte) error {
	if len(data) != b.n {
		return fmt.Errorf("expected %d bytes, instead found %d", b.n, len(data))
	}
	b.a = append([]byte(nil), data...)
	return nil
}

// Equal reports componentwise equality of the underlying buffers.
func (b FixedBytes) Equal(o FixedBytes) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.a {
		if b.a[i] != o.a[i] {
			return false
		}
	}
	return true
}

// String renders the buffer as lowercase hex pairs separated by
// single spaces.
func (b FixedBytes) String() string {
	parts := make([]string, len(b.a))
	for i, c := range b.a {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

// ReadBinary reads exactly N raw bytes.
func (b *FixedBytes) ReadBinary(cur binio.Cursor) bool {
	buf, ok := cur.ReadBytes(b.n)
	if !ok {
		return false
	}
	b.a = buf
	return true
}

// WriteBinary writes the buffer verbatim.
func (b FixedBytes) WriteBinary(cur binio.Cursor) bool {
	return cur.WriteBytes(b.a)
}

// ToCanonical renders the buffer as a CDR hex string.
func (b FixedBytes) ToCanonical() cdr.Value {
	return cdr.Value(b.String())
}

// FromCanonicalFixedBytes parses a CDR hex string into a width-n
// FixedBytes.
func FromCanonicalFixedBytes(conv *cdr.Converter, v cdr.Value, n int) (FixedBytes, error) {
	str, err := conv.EnsureString(v)
	if err != nil {
		return FixedBytes{}, err
	}
	expectedLen := n*3 - 1
	if n == 0 {
		expectedLen = 0
	}
	if len(str) != expectedLen {
		return FixedBytes{}, conv.Err(
			"expected string with length equal to %d, but instead found length %d", expectedLen, len(str))
	}
	if n == 0 {
		return NewFixedBytes(0), nil
	}
	tokens := strings.Split(str, " ")
	if len(tokens) != n {
		return FixedBytes{}, conv.Err(
			"expected %d components when splitting string on spaces, instead found %d", n, len(tokens))
	}
	out := make([]byte, n)
	for i, tok := range tokens {
		if len(tok) != 2 {
			return FixedBytes{}, conv.Err(
				"expected a two-digit hex byte at idx %d but instead found a token of length %d", i, len(tok))
		}
		val, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return FixedBytes{}, conv.Err("failed to parse hex byte 0x%s", tok)
		}
		out[i] = byte(val)
	}
	res := NewFixedBytes(n)
	res.a = out
	return res, nil
}
