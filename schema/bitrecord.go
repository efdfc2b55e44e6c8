package schema

import "github.com/colonize-reborn/sav/binio"

// BitField describes one subfield of a packed bit-record: its
// declared width and, for documentation/debugging, its name.
type BitField struct {
	Name  string
	Width int
}

// BitLayout is the ordered list of subfields making up a packed
// bit-record's total width. The first declared field occupies the
// least-significant bits, per the legacy format's LSB-first packing.
type BitLayout []BitField

// TotalBits returns the sum of all field widths.
func (l BitLayout) TotalBits() int {
	total := 0
	for _, f := range l {
		total += f.Width
	}
	return total
}

// Unpack splits a little-endian integer into one value per field in
// l, in declared order, each masked to its field's width.
func (l BitLayout) Unpack(bits uint64) []uint64 {
	out := make([]uint64, len(l))
	for i, f := range l {
		mask := uint64(1)<<uint(f.Width) - 1
		out[i] = bits & mask
		bits >>= uint(f.Width)
	}
	return out
}

// Pack reassembles values (one per field, in declared order) into a
// single little-endian integer, masking each to its field's width.
func (l BitLayout) Pack(values []uint64) uint64 {
	var bits uint64
	var shift uint
	for i, f := range l {
		mask := uint64(1)<<uint(f.Width) - 1
		bits |= (values[i] & mask) << shift
		shift += uint(f.Width)
	}
	return bits
}

// ReadBitRecord reads TotalBits()/8 bytes from cur and unpacks them
// per l. TotalBits must be a multiple of 8.
func ReadBitRecord(cur binio.Cursor, l BitLayout) ([]uint64, bool) {
	total := l.TotalBits()
	if total%8 != 0 {
		return nil, false
	}
	raw, ok := cur.ReadN(total / 8)
	if !ok {
		return nil, false
	}
	return l.Unpack(raw), true
}

// WriteBitRecord packs values per l and writes TotalBits()/8 bytes to
// cur. TotalBits must be a multiple of 8.
func WriteBitRecord(cur binio.Cursor, l BitLayout, values []uint64) bool {
	total := l.TotalBits()
	if total%8 != 0 {
		return false
	}
	return cur.WriteN(total/8, l.Pack(values))
}

// ReadBoolFlags reads width/8 bytes and splits them into width
// single-bit booleans, first declared flag in the least-significant
// bit. This covers the many bit-records whose subfields are all
// plain bools (TutorialHelp, GameFlags1, Event, and similar).
func ReadBoolFlags(cur binio.Cursor, width int) ([]bool, bool) {
	if width%8 != 0 {
		return nil, false
	}
	raw, ok := cur.ReadN(width / 8)
	if !ok {
		return nil, false
	}
	out := make([]bool, width)
	for i := 0; i < width; i++ {
		out[i] = raw&(1<<uint(i)) != 0
	}
	return out, true
}

// WriteBoolFlags packs flags (first element in the least-significant
// bit) and writes len(flags)/8 bytes to cur.
func WriteBoolFlags(cur binio.Cursor, flags []bool) bool {
	width := len(flags)
	if width%8 != 0 {
		return false
	}
	var raw uint64
	for i, f := range flags {
		if f {
			raw |= 1 << uint(i)
		}
	}
	return cur.WriteN(width/8, raw)
}
