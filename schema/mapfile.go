package schema

import (
	"fmt"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/errs"
)

// MapFileMarker is the 2-byte opaque value every observed *.MP file
// carries after its dimensions; preserved verbatim on round-trip per
// §6.2 and the "no inference of undocumented field semantics" rule.
const MapFileMarker = 0x0004

// MapFile is the truncated *.MP format (§6.2): dimensions, the opaque
// marker, and the tile/mask/path vectors. Unlike SaveGame it carries
// no header counts to validate the vectors against; its own
// MapSizeX/MapSizeY are authoritative for all three vector lengths.
type MapFile struct {
	MapSizeX uint16
	MapSizeY uint16
	Marker   uint16
	Tile     []Tile
	Mask     []Mask
	Path     []Path
}

// Area returns MapSizeX * MapSizeY.
func (m *MapFile) Area() int { return int(m.MapSizeX) * int(m.MapSizeY) }

func (m *MapFile) ReadBinary(cur binio.Cursor) error {
	x, ok := cur.ReadN(2)
	if !ok {
		return fmt.Errorf("map_size_x: %w", errs.ErrShortRead)
	}
	y, ok := cur.ReadN(2)
	if !ok {
		return fmt.Errorf("map_size_y: %w", errs.ErrShortRead)
	}
	m.MapSizeX, m.MapSizeY = uint16(x), uint16(y)
	if m.MapSizeX < 3 || m.MapSizeY < 3 {
		return errs.ErrMapTooSmall
	}

	marker, ok := cur.ReadN(2)
	if !ok {
		return fmt.Errorf("marker: %w", errs.ErrShortRead)
	}
	m.Marker = uint16(marker)

	area := m.Area()
	m.Tile = make([]Tile, area)
	for i := range m.Tile {
		if !m.Tile[i].ReadBinary(cur) {
			return fmt.Errorf("tile[%d]: %w", i, errs.ErrShortRead)
		}
	}
	m.Mask = make([]Mask, area)
	for i := range m.Mask {
		if !m.Mask[i].ReadBinary(cur) {
			return fmt.Errorf("mask[%d]: %w", i, errs.ErrShortRead)
		}
	}
	m.Path = make([]Path, area)
	for i := range m.Path {
		if !m.Path[i].ReadBinary(cur) {
			return fmt.Errorf("path[%d]: %w", i, errs.ErrShortRead)
		}
	}
	return nil
}

func (m *MapFile) WriteBinary(cur binio.Cursor) error {
	area := m.Area()
	if len(m.Tile) != area || len(m.Mask) != area || len(m.Path) != area {
		return fmt.Errorf("vector length vs map area: %w", errs.ErrCountMismatch)
	}
	if !cur.WriteN(2, uint64(m.MapSizeX)) || !cur.WriteN(2, uint64(m.MapSizeY)) || !cur.WriteN(2, uint64(m.Marker)) {
		return fmt.Errorf("header: %w", errs.ErrShortWrite)
	}
	for i, t := range m.Tile {
		if !t.WriteBinary(cur) {
			return fmt.Errorf("tile[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, mk := range m.Mask {
		if !mk.WriteBinary(cur) {
			return fmt.Errorf("mask[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, p := range m.Path {
		if !p.WriteBinary(cur) {
			return fmt.Errorf("path[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	return nil
}

func (m *MapFile) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("map size x", int64(m.MapSizeX))
	t.Set("map size y", int64(m.MapSizeY))
	t.Set("marker", int64(m.Marker))

	tiles := make(cdr.List, len(m.Tile))
	for i, tl := range m.Tile {
		tiles[i] = tl.ToCanonical()
	}
	t.Set("tile", tiles)

	masks := make(cdr.List, len(m.Mask))
	for i, mk := range m.Mask {
		masks[i] = mk.ToCanonical()
	}
	t.Set("mask", masks)

	paths := make(cdr.List, len(m.Path))
	for i, p := range m.Path {
		paths[i] = p.ToCanonical()
	}
	t.Set("path", paths)

	return t
}
