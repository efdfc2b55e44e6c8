package bridge

import (
	"fmt"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// ConvertToNG implements §4.6's top-level legacy -> modern conversion:
// a per-domain pipeline over players/REF, terrain, colonies, trade
// routes, and the land view, all sharing one IdMap for entity ID
// remapping. The first error from any stage aborts the whole
// conversion; partially-populated output is not meaningful.
func ConvertToNG(sg *schema.SaveGame) (*modern.State, *IdMap, error) {
	idMap := NewIdMap()
	out := &modern.State{}

	human, err := DeriveHuman(sg.Players, sg.Header.GameFlags1.IndependenceDeclared)
	if err != nil {
		return nil, nil, fmt.Errorf("deriving human/REF slots: %w", err)
	}
	out.Human = human
	out.Independence = sg.Header.GameFlags1.IndependenceDeclared

	for i, p := range sg.Players {
		out.Players = append(out.Players, modern.Player{
			Nation:    slotNation[i],
			IsREF:     p.Flags.IsREF,
			Human:     p.Flags.Human,
			Withdrawn: p.Flags.Withdrawn,
		})
	}

	terrain, err := LegacyToModernTerrain(sg)
	if err != nil {
		return nil, nil, fmt.Errorf("converting terrain: %w", err)
	}
	out.Terrain = terrain

	for idx, c := range sg.Colonies {
		nationName, ok := c.Nation.Name()
		if !ok {
			return nil, nil, fmt.Errorf("colony %d: unrecognized nation code 0x%x", idx, c.Nation.Value())
		}
		owner, ok := legacyNationNameToModern(nationName)
		if !ok {
			return nil, nil, fmt.Errorf("colony %d: owner %q is not a colonial nation", idx, nationName)
		}
		out.Colonies = append(out.Colonies, modern.Colony{
			ID:         idMap.ColonyID(idx),
			X:          int(c.X) - 1,
			Y:          int(c.Y) - 1,
			Owner:      owner,
			Population: int(c.Population),
		})
	}

	routes, err := LegacyToModernTradeRoutes(sg, idMap)
	if err != nil {
		return nil, nil, fmt.Errorf("converting trade routes: %w", err)
	}
	out.TradeRoutes = routes

	landView, err := LegacyToModernLandView(sg)
	if err != nil {
		return nil, nil, fmt.Errorf("converting land view: %w", err)
	}
	out.LandView = landView

	return out, idMap, nil
}

// ConvertToOG implements §4.6's modern -> legacy direction, the
// inverse pipeline. idMap should be the same one ConvertToNG produced
// (or a fresh one, for a save with no pre-existing ID assignments) so
// entity indices round-trip stably.
func ConvertToOG(state *modern.State, idMap *IdMap) (*schema.SaveGame, error) {
	sg := schema.NewSaveGame()

	humanFlags, refFlags, controls, err := CollapseREF(state.Players)
	if err != nil {
		return nil, fmt.Errorf("collapsing REF slots: %w", err)
	}
	sg.Header.GameFlags1.IndependenceDeclared = state.Independence
	for i := range sg.Players {
		sg.Players[i] = schema.NewPlayer()
		sg.Players[i].Flags.Human = humanFlags[i]
		sg.Players[i].Flags.IsREF = refFlags[i]
		sg.Players[i].Control = schema.NewEnum(schema.Control, controls[i])
		for _, p := range state.Players {
			if p.Nation == slotNation[i] {
				sg.Players[i].Flags.Withdrawn = p.Withdrawn
			}
		}
	}

	tiles, ogW, ogH, err := ModernToLegacyTiles(state.Terrain)
	if err != nil {
		return nil, fmt.Errorf("converting terrain: %w", err)
	}
	sg.Header.MapSizeX = uint16(ogW)
	sg.Header.MapSizeY = uint16(ogH)
	sg.Tile = tiles
	area := ogW * ogH
	sg.Mask = make([]schema.Mask, area)
	sg.Path = make([]schema.Path, area)
	for i := range sg.Path {
		sg.Path[i] = schema.Path{
			RegionID:      schema.NewEnum(schema.RegionID4Bit, 0),
			VisitorNation: schema.NewEnum(schema.Nation4BitShort, 0),
		}
	}
	sg.Seen = make([]schema.Seen, area)

	var human *modern.Player
	for i := range state.Players {
		if state.Players[i].Human {
			human = &state.Players[i]
		}
	}
	if human == nil {
		return nil, fmt.Errorf("no human player present")
	}

	for _, c := range state.Colonies {
		name, ok := modernNationNameToLegacy(c.Owner)
		if !ok {
			return nil, fmt.Errorf("colony %d: owner %q is not a colonial nation", c.ID, c.Owner)
		}
		idx := idMap.ColonyIndex(c.ID)
		for len(sg.Colonies) <= idx {
			sg.Colonies = append(sg.Colonies, schema.NewColony())
		}
		col := schema.NewColony()
		col.X, col.Y = uint8(c.X+1), uint8(c.Y+1)
		col.Nation = schema.NewEnumFromName(schema.Nation, name)
		if err := col.Name.SetString(fmt.Sprintf("colony-%d", c.ID)); err != nil {
			return nil, err
		}
		col.Population = uint8(c.Population)
		sg.Colonies[idx] = col
	}
	sg.Header.ColonyCount = uint16(len(sg.Colonies))

	routes, numRoutes, err := ModernToLegacyTradeRoutes(state.TradeRoutes, *human, idMap)
	if err != nil {
		return nil, fmt.Errorf("converting trade routes: %w", err)
	}
	sg.TradeRoutes = routes
	sg.Header.TradeRouteCount = numRoutes

	if err := ModernToLegacyLandView(state.LandView, sg); err != nil {
		return nil, fmt.Errorf("converting land view: %w", err)
	}

	return sg, nil
}
