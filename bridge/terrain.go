package bridge

import (
	"fmt"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// groundByCode maps every plain (non-forest, non-water) terrain code to
// its modern ground type. The forest-suffixed codes (tXf) and their
// water-suffixed duplicates (tXw) share the same ground type with the
// forest overlay added.
var groundByCode = map[string]modern.GroundTerrain{
	"tu": modern.GroundTundra, "de": modern.GroundDesert, "pl": modern.GroundPlains,
	"pr": modern.GroundPrairie, "gr": modern.GroundGrassland, "sa": modern.GroundSavannah,
	"mr": modern.GroundMarsh, "sw": modern.GroundSwamp,
}

var forestByCode = map[string]modern.GroundTerrain{
	"tuf": modern.GroundTundra, "tuw": modern.GroundTundra,
	"def": modern.GroundDesert, "dew": modern.GroundDesert,
	"plf": modern.GroundPlains, "plw": modern.GroundPlains,
	"prf": modern.GroundPrairie, "prw": modern.GroundPrairie,
	"grf": modern.GroundGrassland, "grw": modern.GroundGrassland,
	"saf": modern.GroundSavannah, "saw": modern.GroundSavannah,
	"mrf": modern.GroundMarsh, "mrw": modern.GroundMarsh,
	"swf": modern.GroundSwamp, "sww": modern.GroundSwamp,
}

// groundToPlainCode and groundToForestCode invert groundByCode/forestByCode
// for the modern -> legacy direction.
var groundToPlainCode = map[modern.GroundTerrain]string{
	modern.GroundTundra: "tu", modern.GroundDesert: "de", modern.GroundPlains: "pl",
	modern.GroundPrairie: "pr", modern.GroundGrassland: "gr", modern.GroundSavannah: "sa",
	modern.GroundMarsh: "mr", modern.GroundSwamp: "sw",
}

var groundToForestCode = map[modern.GroundTerrain]string{
	modern.GroundTundra: "tuf", modern.GroundDesert: "def", modern.GroundPlains: "plf",
	modern.GroundPrairie: "prf", modern.GroundGrassland: "grf", modern.GroundSavannah: "saf",
	modern.GroundMarsh: "mrf", modern.GroundSwamp: "swf",
}

// LegacyToModernTile implements §4.6.3's map_square_from_tile: it
// decodes a legacy Tile's surface code and hills/river code into a
// modern Tile. The two codes are independent in the wire format but
// interact in the modern model, since hills/mountains and river share
// a single legacy 3-bit field.
func LegacyToModernTile(t schema.Tile) (modern.Tile, error) {
	var out modern.Tile

	surfaceName, ok := t.Surface.Name()
	if !ok {
		return out, fmt.Errorf("unrecognized surface code %d", t.Surface.Value())
	}

	switch surfaceName {
	case "ttt":
		out.Surface = modern.SurfaceWater
		return out, nil
	case "tnt":
		out.Surface = modern.SurfaceWater
		out.SeaLane = true
		return out, nil
	case "arc":
		out.Surface = modern.SurfaceLand
		out.Ground = modern.GroundArctic
		return out, nil
	}

	out.Surface = modern.SurfaceLand
	if g, ok := groundByCode[surfaceName]; ok {
		out.Ground = g
	} else if g, ok := forestByCode[surfaceName]; ok {
		out.Ground = g
		out.Overlay = modern.OverlayForest
	} else {
		return out, fmt.Errorf("unrecognized land surface code %q", surfaceName)
	}

	hrName, ok := t.HillsRiver.Name()
	if !ok {
		return out, fmt.Errorf("unsupported value for hill_river: %03b", t.HillsRiver.Value())
	}
	switch hrName {
	case "empty":
	case "c":
		out.Overlay = modern.OverlayHills
	case "t":
		out.River = modern.RiverMinor
	case "tc":
		out.Overlay = modern.OverlayHills
		out.River = modern.RiverMinor
	case "cc":
		out.Overlay = modern.OverlayMountains
	case "tt":
		out.River = modern.RiverMajor
	default:
		return out, fmt.Errorf("unsupported value for hill_river: %s", hrName)
	}
	return out, nil
}

// ModernToLegacyTile implements §4.6.3's tile_from_map_square: it
// encodes a modern Tile back into a legacy Tile's two independent bit
// fields. Water tiles encode only the sea-lane distinction; for land
// tiles, the modern overlay and river are combined back into the
// legacy hills_river_3bit_type field, which can only hold hills-with-
// no-river, mountains-with-no-river, river-with-no-mound, or
// hills-with-minor-river -- mountains-with-river and hills-with-major-
// river have no legacy representation and are rejected.
func ModernToLegacyTile(t modern.Tile) (schema.Tile, error) {
	var out schema.Tile

	if t.Surface == modern.SurfaceWater {
		name := "ttt"
		if t.SeaLane {
			name = "tnt"
		}
		out.Surface = schema.NewEnumFromName(schema.Terrain5Bit, name)
		out.HillsRiver = schema.NewEnum(schema.HillsRiver3Bit, 0)
		return out, nil
	}

	if t.Ground == modern.GroundArctic {
		out.Surface = schema.NewEnumFromName(schema.Terrain5Bit, "arc")
	} else {
		var name string
		var ok bool
		if t.Overlay == modern.OverlayForest {
			name, ok = groundToForestCode[t.Ground]
		} else {
			name, ok = groundToPlainCode[t.Ground]
		}
		if !ok {
			return out, fmt.Errorf("unsupported ground terrain %d", t.Ground)
		}
		out.Surface = schema.NewEnumFromName(schema.Terrain5Bit, name)
	}

	hasHills := t.Overlay == modern.OverlayHills
	hasMountains := t.Overlay == modern.OverlayMountains
	hasMound := hasHills || hasMountains
	hasRiver := t.River != modern.RiverNone

	var hrName string
	switch {
	case hasMound && !hasRiver:
		if hasHills {
			hrName = "c"
		} else {
			hrName = "cc"
		}
	case !hasMound && hasRiver:
		if t.River == modern.RiverMajor {
			hrName = "tt"
		} else {
			hrName = "t"
		}
	case hasMound && hasRiver:
		if hasMountains {
			return out, fmt.Errorf("the OG does not support rivers on mountains tiles")
		}
		if t.River == modern.RiverMajor {
			return out, fmt.Errorf("the OG does not support major rivers on tiles containing either mountains or hills")
		}
		hrName = "tc"
	default:
		hrName = "empty"
	}
	out.HillsRiver = schema.NewEnumFromName(schema.HillsRiver3Bit, hrName)
	return out, nil
}

// LegacyToModernTerrain implements the legacy -> modern half of §4.6.3:
// it strips the legacy map's one-tile outer ring of ocean padding and
// translates the interior tiles into a modern TerrainGrid.
func LegacyToModernTerrain(sg *schema.SaveGame) (modern.TerrainGrid, error) {
	ogW, ogH := int(sg.Header.MapSizeX), int(sg.Header.MapSizeY)
	ngW, ngH := ogW-2, ogH-2
	if ngW <= 0 || ngH <= 0 {
		return modern.TerrainGrid{}, fmt.Errorf("legacy map too small to strip outer ring: %dx%d", ogW, ogH)
	}

	out := modern.TerrainGrid{Width: ngW, Height: ngH, Tiles: make([]modern.Tile, ngW*ngH)}
	for y := 1; y < ogH-1; y++ {
		for x := 1; x < ogW-1; x++ {
			t, err := LegacyToModernTile(sg.Tile[y*ogW+x])
			if err != nil {
				return modern.TerrainGrid{}, fmt.Errorf("tile (%d,%d): %w", x-1, y-1, err)
			}
			out.Set(x-1, y-1, t)
		}
	}
	return out, nil
}

// ModernToLegacyTiles implements the modern -> legacy half of §4.6.3:
// it re-adds the legacy map's one-tile outer ring, filled with plain
// ocean (ttt), around the modern grid's translated interior.
func ModernToLegacyTiles(g modern.TerrainGrid) ([]schema.Tile, int, int, error) {
	ogW, ogH := g.Width+2, g.Height+2
	out := make([]schema.Tile, ogW*ogH)
	ocean := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "ttt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	for y := 0; y < ogH; y++ {
		for x := 0; x < ogW; x++ {
			if x == 0 || x == ogW-1 || y == 0 || y == ogH-1 {
				out[y*ogW+x] = ocean
				continue
			}
			t, err := ModernToLegacyTile(g.At(x-1, y-1))
			if err != nil {
				return nil, 0, 0, fmt.Errorf("tile (%d,%d): %w", x-1, y-1, err)
			}
			out[y*ogW+x] = t
		}
	}
	return out, ogW, ogH, nil
}
