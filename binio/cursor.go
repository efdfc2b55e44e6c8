package binio

import "github.com/colonize-reborn/sav/endian"

// Cursor is a mutable position over a byte-addressable resource (an
// in-memory buffer or an open file), supporting little/big-endian
// reads and writes of 1, 2, 3, 4, 6 and 8-byte unsigned integers.
//
// All methods report failure by returning false/nil rather than an
// error; on a false return the cursor's position is undefined and any
// record being populated from it must be discarded, per the legacy
// codec's error model.
type Cursor interface {
	// Pos returns the current byte offset.
	Pos() int
	// Size returns the total size of the underlying resource in bytes.
	Size() int
	// Remaining returns the number of bytes between Pos and Size.
	Remaining() int
	// EOF reports whether Remaining is zero.
	EOF() bool

	// ReadN reads n little/big-endian bytes (n in {1,2,3,4,6,8}) into an
	// unsigned integer and advances the cursor. Returns false on a short
	// read, leaving the cursor position undefined.
	ReadN(n int) (uint64, bool)
	// WriteN writes the low n bytes of v in the cursor's byte order and
	// advances the cursor. Returns false on a short write.
	WriteN(n int, v uint64) bool

	// ReadBytes reads exactly n raw bytes into a new slice.
	ReadBytes(n int) ([]byte, bool)
	// WriteBytes writes src verbatim.
	WriteBytes(src []byte) bool

	// ReadRemainder returns all bytes from Pos to Size and advances the
	// cursor to Size.
	ReadRemainder() []byte

	// Engine returns the byte-order engine this cursor was constructed with.
	Engine() endian.EndianEngine
}

func checkN(n int) bool {
	switch n {
	case 1, 2, 3, 4, 6, 8:
		return true
	default:
		return false
	}
}

// decodeN interprets the first n bytes of buf (n in {1,2,3,4,6,8}) as an
// unsigned integer according to engine's byte order.
func decodeN(engine endian.EndianEngine, buf []byte, n int) uint64 {
	le := engine == endian.GetLittleEndianEngine()
	var v uint64
	if le {
		for i := n - 1; i >= 0; i-- {
			v = (v << 8) | uint64(buf[i])
		}
	} else {
		for i := 0; i < n; i++ {
			v = (v << 8) | uint64(buf[i])
		}
	}
	return v
}

// encodeN writes the low n bytes of v into buf (which must have length
// n) according to engine's byte order.
func encodeN(engine endian.EndianEngine, buf []byte, n int, v uint64) {
	le := engine == endian.GetLittleEndianEngine()
	if le {
		for i := 0; i < n; i++ {
			buf[i] = byte(v)
			v >>= 8
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			buf[i] = byte(v)
			v >>= 8
		}
	}
}
