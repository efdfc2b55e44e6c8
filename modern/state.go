// Package modern defines the slice of the reimplementation's
// normalized state tree that the bridge (§4.6) actually reads and
// writes: players/nations, colonies, trade routes, the terrain grid,
// and the land-view viewport. Everything else about the modern game's
// schema and invariants is out of scope per spec §1.
package modern

// Nation identifies one of the twelve playable/native nations by the
// same names as schema.Nation, kept as a distinct string type so the
// bridge package's translation tables have a natural two-sided key.
type Nation string

const (
	NationEngland     Nation = "england"
	NationFrance      Nation = "france"
	NationSpain       Nation = "spain"
	NationNetherlands Nation = "netherlands"
	NationNone        Nation = "none"
)

// ColonialNations lists the four legacy-format colonial slots in
// their fixed on-disk order.
var ColonialNations = [4]Nation{NationEngland, NationFrance, NationSpain, NationNetherlands}

// Human is the bridge's derived view of the single human-controlled
// side of a post-declaration game (§4.6.2): which colonial nation the
// player declared as, and which nation's REF slot now opposes them.
// RefSlot is the zero value (NationNone) before independence.
type Human struct {
	Declared Nation
	RefSlot  Nation
}

// Player is one modern player entry: either a colonial nation or (once
// independence is declared) its corresponding REF force.
type Player struct {
	Nation    Nation
	IsREF     bool
	Human     bool
	Withdrawn bool
}

// Surface is the modern terrain model's land/water split, independent
// of ground-terrain detail (§4.6.3).
type Surface int

const (
	SurfaceLand Surface = iota
	SurfaceWater
)

// GroundTerrain enumerates the eight base ground types plus arctic.
type GroundTerrain int

const (
	GroundTundra GroundTerrain = iota
	GroundDesert
	GroundPlains
	GroundPrairie
	GroundGrassland
	GroundSavannah
	GroundMarsh
	GroundSwamp
	GroundArctic
)

// River enumerates the independent river overlay the modern model
// tracks separately from ground terrain. The zero value, RiverNone,
// means no river.
type River int

const (
	RiverNone River = iota
	RiverMinor
	RiverMajor
)

// Overlay enumerates the mutually exclusive terrain features a land
// tile may carry on top of its ground type: none, forest, hills, or
// mountains. Forest, hills, and mountains can never coexist on one
// tile (§4.6.3).
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayForest
	OverlayHills
	OverlayMountains
)

// Tile is one modern terrain cell: surface (land/water), ground type
// (meaningful only on land), a single mutually-exclusive overlay, an
// independent river grade, and a sea-lane flag (meaningful only on
// water).
type Tile struct {
	Surface Surface
	Ground  GroundTerrain
	Overlay Overlay
	River   River
	SeaLane bool
}

// TerrainGrid is the modern map: width/height (always two less in
// each dimension than the legacy map, §4.6.3) and a row-major tile
// slice.
type TerrainGrid struct {
	Width, Height int
	Tiles         []Tile
}

func (g *TerrainGrid) At(x, y int) Tile    { return g.Tiles[y*g.Width+x] }
func (g *TerrainGrid) Set(x, y int, t Tile) { g.Tiles[y*g.Width+x] = t }

// Commodity enumerates the sixteen tradeable goods by their modern
// names (§4.6.4); TradeGoods is the modern name for the legacy "goods"
// code.
type Commodity string

const (
	Food      Commodity = "food"
	Sugar     Commodity = "sugar"
	Tobacco   Commodity = "tobacco"
	Cotton    Commodity = "cotton"
	Furs      Commodity = "furs"
	Lumber    Commodity = "lumber"
	Ore       Commodity = "ore"
	Silver    Commodity = "silver"
	Horses    Commodity = "horses"
	Rum       Commodity = "rum"
	Cigars    Commodity = "cigars"
	Cloth     Commodity = "cloth"
	Coats     Commodity = "coats"
	TradeGoods Commodity = "trade_goods"
	Tools     Commodity = "tools"
	Muskets   Commodity = "muskets"
)

// CargoInstruction is one load/unload instruction at a trade-route stop.
type CargoInstruction struct {
	Commodity Commodity
	Load      bool
}

// StopTarget names either a colony (by modern 1-based ID) or the
// Europe harbor sentinel.
type StopTarget struct {
	Harbor   bool
	ColonyID int
}

// Stop is one modern trade-route waypoint.
type Stop struct {
	Target StopTarget
	Cargo  []CargoInstruction
}

// TradeRoute is one modern trade route; all routes in the modern tree
// are implicitly human-owned, mirroring the legacy format's own
// restriction (§4.6.4).
type TradeRoute struct {
	ID    int
	Name  string
	Sea   bool
	Stops []Stop
}

// Colony is the minimal modern colony view the bridge touches: a
// 1-based ID, position, owner, and population. Buildings/cargo are
// intentionally out of scope for the bridge's terrain/trade-route/
// land-view focus (§1 scope).
type Colony struct {
	ID         int
	X, Y       int
	Owner      Nation
	Population int
}

// Zoom is the modern floating-point viewport zoom scalar (§4.6.5).
type Zoom float64

// MapRevealKind enumerates the legacy map-reveal variants.
type MapRevealKind int

const (
	RevealNone MapRevealKind = iota
	RevealEntireMap
	RevealFixedNation
)

// LandView is the modern viewport state (§4.6.5): zoom, center (in
// pixels, 32 per tile, legacy's +1 outer-ring offset already removed),
// and the current map-reveal mode.
type LandView struct {
	Zoom        Zoom
	CenterX     int
	CenterY     int
	Reveal      MapRevealKind
	RevealNation Nation
}

// State is the full slice of normalized state the bridge reads/writes.
type State struct {
	Players     []Player
	Human       Human
	Independence bool
	Terrain     TerrainGrid
	Colonies    []Colony
	TradeRoutes []TradeRoute
	LandView    LandView
}
