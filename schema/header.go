package schema

import (
	"github.com/colonize-reborn/sav/binio"
	"github.com/colonize-reborn/sav/cdr"
	"github.com/colonize-reborn/sav/packed"
)

// Magic is the 9-byte signature every save file begins with:
// "COLONIZE" followed by a null byte.
var Magic = [9]byte{'C', 'O', 'L', 'O', 'N', 'I', 'Z', 'E', 0}

// TutorialHelp is the packed bit-record of tutorial-hint suppression
// flags at the top of the header; all subfields are plain booleans so
// it's backed by ReadBoolRecord/WriteBoolRecord directly.
type TutorialHelp struct {
	Sail       bool `cdr:"sail"`
	Build      bool `cdr:"build"`
	Lumber     bool `cdr:"lumber"`
	Ore        bool `cdr:"ore"`
	Tools      bool `cdr:"tools"`
	Muskets    bool `cdr:"muskets"`
	LostCity   bool `cdr:"lost_city"`
	Attack     bool `cdr:"attack"`
}

func (t *TutorialHelp) ReadBinary(cur binio.Cursor) bool  { return ReadBoolRecord(cur, t) }
func (t TutorialHelp) WriteBinary(cur binio.Cursor) bool  { return WriteBoolRecord(cur, t) }
func (t TutorialHelp) ToCanonical() cdr.Value             { return ReflectToCanonical(t) }
func (t *TutorialHelp) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, t)
}

// GameFlags1 is the first packed byte of miscellaneous game-state
// flags in the header.
type GameFlags1 struct {
	Tutorial          bool `cdr:"tutorial"`
	EventsEnabled     bool `cdr:"events_enabled"`
	Paused            bool `cdr:"paused"`
	AutosaveEnabled   bool `cdr:"autosave_enabled"`
	SoundEnabled      bool `cdr:"sound_enabled"`
	FastMove          bool `cdr:"fast_move"`
	IndependenceDeclared bool `cdr:"independence_declared"`
	Reserved          bool `cdr:"-"`
}

func (f *GameFlags1) ReadBinary(cur binio.Cursor) bool  { return ReadBoolRecord(cur, f) }
func (f GameFlags1) WriteBinary(cur binio.Cursor) bool  { return WriteBoolRecord(cur, f) }
func (f GameFlags1) ToCanonical() cdr.Value             { return ReflectToCanonical(f) }
func (f *GameFlags1) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, f)
}

// EventFlags is the packed byte tracking which one-shot game events
// have already fired this game (e.g. founding fathers offers).
type EventFlags struct {
	DiscoveredNewWorld bool `cdr:"discovered_new_world"`
	MetNatives         bool `cdr:"met_natives"`
	BuiltColony        bool `cdr:"built_colony"`
	MetEuropean        bool `cdr:"met_european"`
	FirstCombat        bool `cdr:"first_combat"`
	FoundingFather     bool `cdr:"founding_father"`
	Reserved1          bool `cdr:"-"`
	Reserved2          bool `cdr:"-"`
}

func (f *EventFlags) ReadBinary(cur binio.Cursor) bool { return ReadBoolRecord(cur, f) }
func (f EventFlags) WriteBinary(cur binio.Cursor) bool { return WriteBoolRecord(cur, f) }
func (f EventFlags) ToCanonical() cdr.Value            { return ReflectToCanonical(f) }
func (f *EventFlags) FromCanonical(conv *cdr.Converter, v cdr.Value) error {
	return FromCanonicalBoolRecord(conv, v, f)
}

// ExpeditionaryForceState is the bit-packed record describing the
// Royal Expeditionary Force's buildup: counts of men-of-war, regulars,
// cavalry and artillery plus the nation slot it occupies once
// independence is declared.
type ExpeditionaryForceState struct {
	ManOfWar  packed.FixedBits // 4 bits
	Regular   packed.FixedBits // 6 bits
	Cavalry   packed.FixedBits // 6 bits
	Artillery packed.FixedBits // 6 bits
	RefSlot   Enum[uint8]      // 4 bits, Nation4BitShort
	Unused    packed.FixedBits // 6 bits, unused/reserved
}

var expeditionaryForceLayout = BitLayout{
	{"man_of_war", 4}, {"regular", 6}, {"cavalry", 6}, {"artillery", 6}, {"ref_slot", 4}, {"unused", 6},
}

func (e *ExpeditionaryForceState) ReadBinary(cur binio.Cursor) bool {
	vals, ok := ReadBitRecord(cur, expeditionaryForceLayout)
	if !ok {
		return false
	}
	e.ManOfWar = packed.NewFixedBits(4, vals[0])
	e.Regular = packed.NewFixedBits(6, vals[1])
	e.Cavalry = packed.NewFixedBits(6, vals[2])
	e.Artillery = packed.NewFixedBits(6, vals[3])
	e.RefSlot = NewEnum(Nation4BitShort, uint8(vals[4]))
	e.Unused = packed.NewFixedBits(6, vals[5])
	return true
}

func (e ExpeditionaryForceState) WriteBinary(cur binio.Cursor) bool {
	vals := []uint64{e.ManOfWar.Value(), e.Regular.Value(), e.Cavalry.Value(), e.Artillery.Value(), uint64(e.RefSlot.Value()), e.Unused.Value()}
	return WriteBitRecord(cur, expeditionaryForceLayout, vals)
}

func (e ExpeditionaryForceState) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("man of war", e.ManOfWar.ToCanonical())
	t.Set("regular", e.Regular.ToCanonical())
	t.Set("cavalry", e.Cavalry.ToCanonical())
	t.Set("artillery", e.Artillery.ToCanonical())
	t.Set("ref slot", e.RefSlot.ToCanonical())
	return t
}

// PriceGroupState is one entry of the header's per-commodity price
// tracking table: current buy/sell price and the direction it is
// currently trending.
type PriceGroupState struct {
	Buy   uint8 `cdr:"buy"`
	Sell  uint8 `cdr:"sell"`
	Trend Enum[uint8]
}

func (p *PriceGroupState) ReadBinary(cur binio.Cursor) bool {
	buy, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	sell, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	trend, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	p.Buy = uint8(buy)
	p.Sell = uint8(sell)
	p.Trend = NewEnum(priceTrend, uint8(trend))
	return true
}

func (p PriceGroupState) WriteBinary(cur binio.Cursor) bool {
	return cur.WriteN(1, uint64(p.Buy)) && cur.WriteN(1, uint64(p.Sell)) && cur.WriteN(1, uint64(p.Trend.Value()))
}

func (p PriceGroupState) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("buy", int64(p.Buy))
	t.Set("sell", int64(p.Sell))
	t.Set("trend", p.Trend.ToCanonical())
	return t
}

var priceTrend = &EnumDef[uint8]{
	Name: "price_trend_type",
	Variants: []EnumVariant[uint8]{
		{0x00, "steady", "steady"},
		{0x01, "rising", "rising"},
		{0x02, "falling", "falling"},
	},
}

// Header is the fixed-size block at the start of every save file. Its
// dwelling/unit/colony counts drive the dynamically-sized vectors the
// hand-written top-level codec (save.go) reads afterward; the trade
// route count only records how many of the fixed twelve route slots
// are in use.
type Header struct {
	Magic          [9]byte
	MapSizeX       uint16
	MapSizeY       uint16
	Turn           uint16
	Year           uint16
	Season         Enum[uint16]
	TutorialHelp   TutorialHelp
	GameFlags1     GameFlags1
	EventFlags     EventFlags
	Difficulty     Enum[uint8]
	DwellingCount  uint16
	UnitCount      uint16
	ColonyCount    uint16
	TradeRouteCount uint16
	Expeditionary  ExpeditionaryForceState
	Prices         [16]PriceGroupState
	ActiveUnit     uint16
	ShowEntireMap      bool
	FixedNationMapView Enum[uint16]
	Unknown1       packed.FixedBytes
}

// NewHeader returns a zeroed header with the magic signature, the
// map-reveal state defaulting to "no fixed nation", and a correctly
// sized opaque tail already set.
func NewHeader() Header {
	h := Header{
		Magic:              Magic,
		FixedNationMapView: NewEnumFromName(Nation2Byte, "none"),
		Unknown1:           packed.NewFixedBytes(5),
	}
	return h
}

func (h *Header) ReadBinary(cur binio.Cursor) bool {
	magic, ok := cur.ReadBytes(9)
	if !ok {
		return false
	}
	copy(h.Magic[:], magic)

	fields := []*uint16{&h.MapSizeX, &h.MapSizeY, &h.Turn, &h.Year}
	for _, f := range fields {
		v, ok := cur.ReadN(2)
		if !ok {
			return false
		}
		*f = uint16(v)
	}
	season, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	h.Season = NewEnum(Season, uint16(season))

	if !h.TutorialHelp.ReadBinary(cur) || !h.GameFlags1.ReadBinary(cur) || !h.EventFlags.ReadBinary(cur) {
		return false
	}

	diff, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	h.Difficulty = NewEnum(Difficulty, uint8(diff))

	counts := []*uint16{&h.DwellingCount, &h.UnitCount, &h.ColonyCount, &h.TradeRouteCount}
	for _, c := range counts {
		v, ok := cur.ReadN(2)
		if !ok {
			return false
		}
		*c = uint16(v)
	}

	if !h.Expeditionary.ReadBinary(cur) {
		return false
	}
	for i := range h.Prices {
		if !h.Prices[i].ReadBinary(cur) {
			return false
		}
	}

	active, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	h.ActiveUnit = uint16(active)

	showEntireMap, ok := cur.ReadN(1)
	if !ok {
		return false
	}
	h.ShowEntireMap = showEntireMap != 0

	fixedNation, ok := cur.ReadN(2)
	if !ok {
		return false
	}
	h.FixedNationMapView = NewEnum(Nation2Byte, uint16(fixedNation))

	h.Unknown1 = packed.NewFixedBytes(5)
	return h.Unknown1.ReadBinary(cur)
}

func (h Header) WriteBinary(cur binio.Cursor) bool {
	if !cur.WriteBytes(h.Magic[:]) {
		return false
	}
	fields := []uint16{h.MapSizeX, h.MapSizeY, h.Turn, h.Year}
	for _, f := range fields {
		if !cur.WriteN(2, uint64(f)) {
			return false
		}
	}
	if !cur.WriteN(2, uint64(h.Season.Value())) {
		return false
	}
	if !h.TutorialHelp.WriteBinary(cur) || !h.GameFlags1.WriteBinary(cur) || !h.EventFlags.WriteBinary(cur) {
		return false
	}
	if !cur.WriteN(1, uint64(h.Difficulty.Value())) {
		return false
	}
	counts := []uint16{h.DwellingCount, h.UnitCount, h.ColonyCount, h.TradeRouteCount}
	for _, c := range counts {
		if !cur.WriteN(2, uint64(c)) {
			return false
		}
	}
	if !h.Expeditionary.WriteBinary(cur) {
		return false
	}
	for _, p := range h.Prices {
		if !p.WriteBinary(cur) {
			return false
		}
	}
	if !cur.WriteN(2, uint64(h.ActiveUnit)) {
		return false
	}
	showEntireMap := uint64(0)
	if h.ShowEntireMap {
		showEntireMap = 1
	}
	if !cur.WriteN(1, showEntireMap) {
		return false
	}
	if !cur.WriteN(2, uint64(h.FixedNationMapView.Value())) {
		return false
	}
	return h.Unknown1.WriteBinary(cur)
}

func (h Header) ToCanonical() cdr.Value {
	t := cdr.NewTable()
	t.Set("map size x", int64(h.MapSizeX))
	t.Set("map size y", int64(h.MapSizeY))
	t.Set("turn", int64(h.Turn))
	t.Set("year", int64(h.Year))
	t.Set("season", h.Season.ToCanonical())
	t.Set("tutorial help", h.TutorialHelp.ToCanonical())
	t.Set("game flags 1", h.GameFlags1.ToCanonical())
	t.Set("event flags", h.EventFlags.ToCanonical())
	t.Set("difficulty", h.Difficulty.ToCanonical())
	t.Set("dwelling count", int64(h.DwellingCount))
	t.Set("unit count", int64(h.UnitCount))
	t.Set("colony count", int64(h.ColonyCount))
	t.Set("trade route count", int64(h.TradeRouteCount))
	t.Set("expeditionary force", h.Expeditionary.ToCanonical())
	prices := make(cdr.List, len(h.Prices))
	for i, p := range h.Prices {
		prices[i] = p.ToCanonical()
	}
	t.Set("prices", prices)
	t.Set("active unit", int64(h.ActiveUnit))
	t.Set("show entire map", cdr.Value(h.ShowEntireMap))
	t.Set("fixed nation map view", h.FixedNationMapView.ToCanonical())
	t.Set("unknown1", h.Unknown1.ToCanonical())
	return t
}
