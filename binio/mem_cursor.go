package binio

import "github.com/colonize-reborn/sav/endian"

// MemCursor is a Cursor backed by an externally owned byte slice. The
// caller must keep the buffer alive for the lifetime of the cursor;
// MemCursor never takes ownership of it.
//
// Constructing a MemCursor for writing requires the destination buffer
// to already be sized to the expected output, since MemCursor never
// grows its buffer — a write past the end of buf fails like any other
// short write.
type MemCursor struct {
	buf    []byte
	idx    int
	engine endian.EndianEngine
}

var _ Cursor = (*MemCursor)(nil)

// NewMemCursor wraps buf for little-endian reads and writes starting
// at offset 0.
func NewMemCursor(buf []byte) *MemCursor {
	return NewMemCursorWithEngine(buf, endian.GetLittleEndianEngine())
}

// NewMemCursorWithEngine wraps buf using the given byte-order engine.
func NewMemCursorWithEngine(buf []byte, engine endian.EndianEngine) *MemCursor {
	return &MemCursor{buf: buf, engine: engine}
}

// Bytes returns the underlying buffer in its entirety, regardless of
// cursor position.
func (c *MemCursor) Bytes() []byte { return c.buf }

func (c *MemCursor) Pos() int  { return c.idx }
func (c *MemCursor) Size() int { return len(c.buf) }
func (c *MemCursor) Remaining() int {
	r := c.Size() - c.idx
	if r < 0 {
		return 0
	}
	return r
}
func (c *MemCursor) EOF() bool { return c.Remaining() == 0 }

func (c *MemCursor) Engine() endian.EndianEngine { return c.engine }

func (c *MemCursor) ReadN(n int) (uint64, bool) {
	if !checkN(n) || c.Remaining() < n {
		return 0, false
	}
	v := decodeN(c.engine, c.buf[c.idx:c.idx+n], n)
	c.idx += n
	return v, true
}

func (c *MemCursor) WriteN(n int, v uint64) bool {
	if !checkN(n) || c.Remaining() < n {
		return false
	}
	encodeN(c.engine, c.buf[c.idx:c.idx+n], n, v)
	c.idx += n
	return true
}

func (c *MemCursor) ReadBytes(n int) ([]byte, bool) {
	if n < 0 || c.Remaining() < n {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, c.buf[c.idx:c.idx+n])
	c.idx += n
	return out, true
}

func (c *MemCursor) WriteBytes(src []byte) bool {
	if c.Remaining() < len(src) {
		return false
	}
	copy(c.buf[c.idx:], src)
	c.idx += len(src)
	return true
}

func (c *MemCursor) ReadRemainder() []byte {
	n := c.Remaining()
	out := make([]byte, n)
	copy(out, c.buf[c.idx:])
	c.idx = c.Size()
	return out
}
