// Package schema defines the record and ~35 enum types of the legacy
// Colonization save format: the complete on-disk layout of §3.2/§6.1.
// Every record has a binary codec and a CDR projection; see doc.go for
// which types also have a display string and a CDR parser.
package schema

import (
	"fmt"

	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/errs"
	"github.com/colonize-reborn/sav/packed"
)

// NumPlayers is the legacy format's fixed slot count: four colonial
// nations.
const NumPlayers = 4

// NumTribes is the fixed number of native-nation entries.
const NumTribes = 8

// SaveGame is the top-level save record (§3.2, §6.1). Because
// DwellingCount/UnitCount/ColonyCount in its header and the map
// dimensions drive the lengths of the seven dynamically sized vectors
// below, its binary codec is hand-written rather than generated, per
// §4.3.3: it reads the header first, then resizes Dwellings/Units/
// Colonies and the four map-shaped vectors before reading them.
// TradeRoutes is a fixed array of MaxTradeRoutes entries and is always
// read and written in full.
type SaveGame struct {
	Header        Header
	Players       [NumPlayers]Player
	Other         Other
	Colonies      []Colony
	Units         []Unit
	Nations       [NumPlayers]NationState
	Dwellings     []Dwelling
	Tribes        [NumTribes]Tribe
	Stuff         Stuff
	Tile          []Tile
	Mask          []Mask
	Path          []Path
	Seen          []Seen
	Connectivity  ConnectivityBlock
	Unknown2      packed.FixedBytes
	TradeRoutes   [MaxTradeRoutes]TradeRoute
}

// NewSaveGame returns a zeroed save with every fixed-size sub-record
// correctly initialized (string/byte buffer widths set).
func NewSaveGame() *SaveGame {
	sg := &SaveGame{
		Header:       NewHeader(),
		Other:        NewOther(),
		Stuff:        NewStuff(),
		Connectivity: NewConnectivityBlock(),
		Unknown2:     packed.NewFixedBytes(16),
	}
	for i := range sg.Players {
		sg.Players[i] = NewPlayer()
	}
	for i := range sg.Nations {
		sg.Nations[i] = NewNationState()
	}
	for i := range sg.Tribes {
		sg.Tribes[i] = NewTribe()
	}
	for i := range sg.TradeRoutes {
		sg.TradeRoutes[i] = NewTradeRoute()
	}
	return sg
}

// MapArea returns MapSizeX * MapSizeY, the length every tile/mask/path/
// seen vector must have.
func (sg *SaveGame) MapArea() int {
	return int(sg.Header.MapSizeX) * int(sg.Header.MapSizeY)
}

// validateHeader checks the invariants of §3.3 that the hand-written
// codec itself is responsible for (everything else is schema shape,
// not a save-level invariant).
func (sg *SaveGame) validateHeader() error {
	if sg.Header.Magic != Magic {
		return errs.ErrBadMagic
	}
	if sg.Header.MapSizeX < 3 || sg.Header.MapSizeY < 3 {
		return errs.ErrMapTooSmall
	}
	return nil
}

// ReadBinary implements the §4.3.3 protocol: read the header, then
// resize and read the seven dynamically-sized vectors.
func (sg *SaveGame) ReadBinary(cur binio.Cursor) error {
	if !sg.Header.ReadBinary(cur) {
		return fmt.Errorf("header: %w", errs.ErrShortRead)
	}
	if err := sg.validateHeader(); err != nil {
		return err
	}

	for i := range sg.Players {
		sg.Players[i] = NewPlayer()
		if !sg.Players[i].ReadBinary(cur) {
			return fmt.Errorf("player[%d]: %w", i, errs.ErrShortRead)
		}
	}

	sg.Other = NewOther()
	if !sg.Other.ReadBinary(cur) {
		return fmt.Errorf("other: %w", errs.ErrShortRead)
	}

	sg.Colonies = make([]Colony, sg.Header.ColonyCount)
	for i := range sg.Colonies {
		sg.Colonies[i] = NewColony()
		if !sg.Colonies[i].ReadBinary(cur) {
			return fmt.Errorf("colony[%d]: %w", i, errs.ErrShortRead)
		}
	}

	sg.Units = make([]Unit, sg.Header.UnitCount)
	for i := range sg.Units {
		sg.Units[i] = NewUnit()
		if !sg.Units[i].ReadBinary(cur) {
			return fmt.Errorf("unit[%d]: %w", i, errs.ErrShortRead)
		}
	}

	for i := range sg.Nations {
		sg.Nations[i] = NewNationState()
		if !sg.Nations[i].ReadBinary(cur) {
			return fmt.Errorf("nation[%d]: %w", i, errs.ErrShortRead)
		}
	}

	sg.Dwellings = make([]Dwelling, sg.Header.DwellingCount)
	for i := range sg.Dwellings {
		sg.Dwellings[i] = NewDwelling()
		if !sg.Dwellings[i].ReadBinary(cur) {
			return fmt.Errorf("dwelling[%d]: %w", i, errs.ErrShortRead)
		}
	}

	for i := range sg.Tribes {
		sg.Tribes[i] = NewTribe()
		if !sg.Tribes[i].ReadBinary(cur) {
			return fmt.Errorf("tribe[%d]: %w", i, errs.ErrShortRead)
		}
	}

	sg.Stuff = NewStuff()
	if !sg.Stuff.ReadBinary(cur) {
		return fmt.Errorf("stuff: %w", errs.ErrShortRead)
	}

	area := sg.MapArea()
	sg.Tile = make([]Tile, area)
	for i := range sg.Tile {
		if !sg.Tile[i].ReadBinary(cur) {
			return fmt.Errorf("tile[%d]: %w", i, errs.ErrShortRead)
		}
	}
	sg.Mask = make([]Mask, area)
	for i := range sg.Mask {
		if !sg.Mask[i].ReadBinary(cur) {
			return fmt.Errorf("mask[%d]: %w", i, errs.ErrShortRead)
		}
	}
	sg.Path = make([]Path, area)
	for i := range sg.Path {
		if !sg.Path[i].ReadBinary(cur) {
			return fmt.Errorf("path[%d]: %w", i, errs.ErrShortRead)
		}
	}
	sg.Seen = make([]Seen, area)
	for i := range sg.Seen {
		if !sg.Seen[i].ReadBinary(cur) {
			return fmt.Errorf("seen[%d]: %w", i, errs.ErrShortRead)
		}
	}

	if !sg.Connectivity.ReadBinary(cur) {
		return fmt.Errorf("connectivity: %w", errs.ErrShortRead)
	}

	sg.Unknown2 = packed.NewFixedBytes(16)
	if !sg.Unknown2.ReadBinary(cur) {
		return fmt.Errorf("unknown2: %w", errs.ErrShortRead)
	}

	for i := range sg.TradeRoutes {
		sg.TradeRoutes[i] = NewTradeRoute()
		if !sg.TradeRoutes[i].ReadBinary(cur) {
			return fmt.Errorf("trade_route[%d]: %w", i, errs.ErrShortRead)
		}
	}

	return nil
}

// WriteBinary implements the write half of §4.3.3: the caller must
// have already set the header's count fields to match the current
// vector lengths; WriteBinary asserts this rather than silently
// re-deriving it; any mismatch is reported via ErrCountMismatch.
func (sg *SaveGame) WriteBinary(cur binio.Cursor) error {
	if int(sg.Header.ColonyCount) != len(sg.Colonies) ||
		int(sg.Header.UnitCount) != len(sg.Units) ||
		int(sg.Header.DwellingCount) != len(sg.Dwellings) {
		return fmt.Errorf("colony/unit/dwelling counts: %w", errs.ErrCountMismatch)
	}
	if int(sg.Header.TradeRouteCount) > MaxTradeRoutes {
		return fmt.Errorf("trade route count exceeds fixed capacity: %w", errs.ErrCountMismatch)
	}
	area := sg.MapArea()
	if len(sg.Tile) != area || len(sg.Mask) != area || len(sg.Path) != area || len(sg.Seen) != area {
		return fmt.Errorf("tile/mask/path/seen length vs map area: %w", errs.ErrCountMismatch)
	}

	if !sg.Header.WriteBinary(cur) {
		return fmt.Errorf("header: %w", errs.ErrShortWrite)
	}
	for i, p := range sg.Players {
		if !p.WriteBinary(cur) {
			return fmt.Errorf("player[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	if !sg.Other.WriteBinary(cur) {
		return fmt.Errorf("other: %w", errs.ErrShortWrite)
	}
	for i, c := range sg.Colonies {
		if !c.WriteBinary(cur) {
			return fmt.Errorf("colony[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, u := range sg.Units {
		if !u.WriteBinary(cur) {
			return fmt.Errorf("unit[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, n := range sg.Nations {
		if !n.WriteBinary(cur) {
			return fmt.Errorf("nation[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, d := range sg.Dwellings {
		if !d.WriteBinary(cur) {
			return fmt.Errorf("dwelling[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, t := range sg.Tribes {
		if !t.WriteBinary(cur) {
			return fmt.Errorf("tribe[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	if !sg.Stuff.WriteBinary(cur) {
		return fmt.Errorf("stuff: %w", errs.ErrShortWrite)
	}
	for i, t := range sg.Tile {
		if !t.WriteBinary(cur) {
			return fmt.Errorf("tile[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, m := range sg.Mask {
		if !m.WriteBinary(cur) {
			return fmt.Errorf("mask[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, p := range sg.Path {
		if !p.WriteBinary(cur) {
			return fmt.Errorf("path[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	for i, s := range sg.Seen {
		if !s.WriteBinary(cur) {
			return fmt.Errorf("seen[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	if !sg.Connectivity.WriteBinary(cur) {
		return fmt.Errorf("connectivity: %w", errs.ErrShortWrite)
	}
	if !sg.Unknown2.WriteBinary(cur) {
		return fmt.Errorf("unknown2: %w", errs.ErrShortWrite)
	}
	for i, r := range sg.TradeRoutes {
		if !r.WriteBinary(cur) {
			return fmt.Errorf("trade_route[%d]: %w", i, errs.ErrShortWrite)
		}
	}
	return nil
}

// ToCanonical projects the entire save to a CDR tree, independent of
// binary I/O (§4.3, "CDR codec is orthogonal").
func (sg *SaveGame) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("header", sg.Header.ToCanonical())

	players := make(cdr.List, len(sg.Players))
	for i, p := range sg.Players {
		players[i] = p.ToCanonical()
	}
	t.Set("players", players)
	t.Set("other", sg.Other.ToCanonical())

	colonies := make(cdr.List, len(sg.Colonies))
	for i, c := range sg.Colonies {
		colonies[i] = c.ToCanonical()
	}
	t.Set("colonies", colonies)

	units := make(cdr.List, len(sg.Units))
	for i, u := range sg.Units {
		units[i] = u.ToCanonical()
	}
	t.Set("units", units)

	nations := make(cdr.List, len(sg.Nations))
	for i, n := range sg.Nations {
		nations[i] = n.ToCanonical()
	}
	t.Set("nations", nations)

	dwellings := make(cdr.List, len(sg.Dwellings))
	for i, d := range sg.Dwellings {
		dwellings[i] = d.ToCanonical()
	}
	t.Set("dwellings", dwellings)

	tribes := make(cdr.List, len(sg.Tribes))
	for i, tr := range sg.Tribes {
		tribes[i] = tr.ToCanonical()
	}
	t.Set("tribes", tribes)

	t.Set("stuff", sg.Stuff.ToCanonical())

	tiles := make(cdr.List, len(sg.Tile))
	for i, tl := range sg.Tile {
		tiles[i] = tl.ToCanonical()
	}
	t.Set("tile", tiles)

	masks := make(cdr.List, len(sg.Mask))
	for i, m := range sg.Mask {
		masks[i] = m.ToCanonical()
	}
	t.Set("mask", masks)

	paths := make(cdr.List, len(sg.Path))
	for i, p := range sg.Path {
		paths[i] = p.ToCanonical()
	}
	t.Set("path", paths)

	seens := make(cdr.List, len(sg.Seen))
	for i, s := range sg.Seen {
		seens[i] = s.ToCanonical()
	}
	t.Set("seen", seens)

	t.Set("connectivity", sg.Connectivity.ToCanonical())
	t.Set("unknown2", sg.Unknown2.ToCanonical())

	routes := make(cdr.List, len(sg.TradeRoutes))
	for i, r := range sg.TradeRoutes {
		routes[i] = r.ToCanonical()
	}
	t.Set("trade routes", routes)

	return t
}
