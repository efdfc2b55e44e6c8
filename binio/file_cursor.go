package binio

import (
	"io"
	"os"

	"github.com/colonize-reborn/sav/endian"
)

// FileCursor is a Cursor backed by an open *os.File. It exclusively
// owns the file handle and closes it when Close is called; callers
// should defer Close immediately after a successful Open/Create.
type FileCursor struct {
	f      *os.File
	engine endian.EndianEngine
}

var _ Cursor = (*FileCursor)(nil)

// OpenFileCursor opens path for reading and writing (it must already
// exist) and returns a little-endian FileCursor positioned at offset 0.
func OpenFileCursor(path string) (*FileCursor, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &FileCursor{f: f, engine: endian.GetLittleEndianEngine()}, nil
}

// CreateFileCursor creates (truncating if necessary) path for reading
// and writing and returns a little-endian FileCursor.
func CreateFileCursor(path string) (*FileCursor, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileCursor{f: f, engine: endian.GetLittleEndianEngine()}, nil
}

// Close releases the underlying file handle.
func (c *FileCursor) Close() error { return c.f.Close() }

func (c *FileCursor) Engine() endian.EndianEngine { return c.engine }

func (c *FileCursor) Pos() int {
	pos, err := c.f.Seek(0, os.SEEK_CUR)
	if err != nil {
		return 0
	}
	return int(pos)
}

func (c *FileCursor) Size() int {
	info, err := c.f.Stat()
	if err != nil {
		return 0
	}
	return int(info.Size())
}

func (c *FileCursor) Remaining() int {
	r := c.Size() - c.Pos()
	if r < 0 {
		return 0
	}
	return r
}

func (c *FileCursor) EOF() bool { return c.Remaining() == 0 }

func (c *FileCursor) ReadN(n int) (uint64, bool) {
	if !checkN(n) {
		return 0, false
	}
	buf := make([]byte, n)
	if _, err := readFull(c.f, buf); err != nil {
		return 0, false
	}
	return decodeN(c.engine, buf, n), true
}

func (c *FileCursor) WriteN(n int, v uint64) bool {
	if !checkN(n) {
		return false
	}
	buf := make([]byte, n)
	encodeN(c.engine, buf, n, v)
	_, err := c.f.Write(buf)
	return err == nil
}

func (c *FileCursor) ReadBytes(n int) ([]byte, bool) {
	if n < 0 {
		return nil, false
	}
	buf := make([]byte, n)
	if _, err := readFull(c.f, buf); err != nil {
		return nil, false
	}
	return buf, true
}

func (c *FileCursor) WriteBytes(src []byte) bool {
	_, err := c.f.Write(src)
	return err == nil
}

func (c *FileCursor) ReadRemainder() []byte {
	n := c.Remaining()
	buf := make([]byte, n)
	_, _ = readFull(c.f, buf)
	return buf
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	if total != len(buf) {
		return total, io.ErrUnexpectedEOF
	}
	return total, nil
}
