package packed

import (
	"math/bits"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/endian"
)

// FixedBits is an unsigned integer constrained to its declared number
// of low bits (<= 64). Constructing one from a value outside that
// range silently masks it down, per the legacy format's tolerance for
// unused/reserved bit patterns. Its CDR form is a string of '0'/'1'
// characters, most-significant bit first; its binary form requires
// NBits to be a multiple of 8.
type FixedBits struct {
	nbits int
	n     uint64
}

// NewFixedBits returns a FixedBits of width nbits holding the low
// nbits bits of v.
func NewFixedBits(nbits int, v uint64) FixedBits {
	return FixedBits{nbits: nbits, n: clampBits(nbits, v)}
}

func clampBits(nbits int, v uint64) uint64 {
	if nbits <= 0 || nbits >= 64 {
		return v
	}
	return v & ((uint64(1) << nbits) - 1)
}

// NBits returns the declared bit width.
func (b FixedBits) NBits() int { return b.nbits }

// Value returns the stored unsigned integer.
func (b FixedBits) Value() uint64 { return b.n }

// String renders the value as NBits binary digits, MSB first.
func (b FixedBits) String() string {
	out := make([]byte, b.nbits)
	for i := 0; i < b.nbits; i++ {
		shift := b.nbits - i - 1
		if b.n&(uint64(1)<<shift) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// ReadBinary requires NBits%8==0; it reads NBits/8 bytes individually,
// since ReadN only supports the cursor's fixed integer widths and a
// bit string's byte count isn't restricted to those.
func (b *FixedBits) ReadBinary(cur binio.Cursor) bool {
	if b.nbits%8 != 0 {
		return false
	}
	n := b.nbits / 8
	raw, ok := cur.ReadBytes(n)
	if !ok {
		return false
	}
	var v uint64
	if cur.Engine() == endian.GetLittleEndianEngine() {
		for i := n - 1; i >= 0; i-- {
			v = (v << 8) | uint64(raw[i])
		}
	} else {
		for i := 0; i < n; i++ {
			v = (v << 8) | uint64(raw[i])
		}
	}
	b.n = v
	return true
}

// WriteBinary requires NBits%8==0; it writes NBits/8 bytes individually.
func (b FixedBits) WriteBinary(cur binio.Cursor) bool {
	if b.nbits%8 != 0 {
		return false
	}
	n := b.nbits / 8
	raw := make([]byte, n)
	v := b.n
	if cur.Engine() == endian.GetLittleEndianEngine() {
		for i := 0; i < n; i++ {
			raw[i] = byte(v)
			v >>= 8
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			raw[i] = byte(v)
			v >>= 8
		}
	}
	return cur.WriteBytes(raw)
}

// ToCanonical renders the value as a CDR bit string.
func (b FixedBits) ToCanonical() cdr.Value {
	return cdr.Value(b.String())
}

// FromCanonicalFixedBits parses a CDR bit string of exactly nbits
// characters, each '0' or '1', into a FixedBits.
func FromCanonicalFixedBits(conv *cdr.Converter, v cdr.Value, nbits int) (FixedBits, error) {
	str, err := conv.EnsureString(v)
	if err != nil {
		return FixedBits{}, err
	}
	if len(str) != nbits {
		return FixedBits{}, conv.Err("expected bit string of length %d but found length %d", nbits, len(str))
	}
	var n uint64
	for i := 0; i < nbits; i++ {
		c := str[i]
		if c != '0' && c != '1' {
			return FixedBits{}, conv.Err("expected bit value '1' or '0' but found '%c'", c)
		}
		if c == '1' {
			n |= uint64(1) << (nbits - i - 1)
		}
	}
	return FixedBits{nbits: nbits, n: n}, nil
}

// OnesCount returns the number of set bits, useful for quick sanity
// checks in tests.
func (b FixedBits) OnesCount() int { return bits.OnesCount64(b.n) }
