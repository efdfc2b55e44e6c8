package bridge

import (
	"fmt"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// zoomLevelToScalar and the reverse thresholds implement §4.6.5's
// 2-bit zoom enum <-> float scalar mapping. The legacy format only
// ever stores one of four discrete zoom levels; an unrecognized level
// falls back to 1.0, matching the original game's own default case.
func zoomLevelToScalar(level uint8) modern.Zoom {
	switch level {
	case 0:
		return 1.0
	case 1:
		return 0.5
	case 2:
		return 0.25
	case 3:
		return 0.125
	default:
		return 1.0
	}
}

func zoomScalarToLevel(z modern.Zoom) uint8 {
	switch {
	case z >= 0.75:
		return 0
	case z >= 0.37:
		return 1
	case z >= 0.19:
		return 2
	default:
		return 3
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LegacyToModernLandView implements §4.6.5's legacy -> modern
// direction: the zoom enum expands to a float scalar, the viewport
// center converts from tile coordinates (with the legacy format's own
// +1 tile offset removed) to pixel coordinates at 32 pixels per tile,
// and the map-reveal mode derives from the header's show_entire_map
// flag and fixed-nation-view field.
func LegacyToModernLandView(sg *schema.SaveGame) (modern.LandView, error) {
	out := modern.LandView{
		Zoom:    zoomLevelToScalar(sg.Stuff.ZoomLevel),
		CenterX: (int(sg.Stuff.ViewportX) - 1) * 32,
		CenterY: (int(sg.Stuff.ViewportY) - 1) * 32,
	}

	if sg.Header.ShowEntireMap {
		out.Reveal = modern.RevealEntireMap
		return out, nil
	}

	name, ok := sg.Header.FixedNationMapView.Name()
	if !ok {
		return out, fmt.Errorf("unrecognized fixed_nation_map_view value: %d", sg.Header.FixedNationMapView.Value())
	}
	if name == "none" {
		out.Reveal = modern.RevealNone
		return out, nil
	}

	nation, ok := legacyNationNameToModern(name)
	if !ok {
		return out, fmt.Errorf("fixed_nation_map_view %q is not a colonial nation", name)
	}
	out.Reveal = modern.RevealFixedNation
	out.RevealNation = nation
	return out, nil
}

// ModernToLegacyLandView implements §4.6.5's modern -> legacy
// direction. It requires the header's map size to already be populated
// so the viewport's tile-coordinate clamp range is known.
func ModernToLegacyLandView(lv modern.LandView, sg *schema.SaveGame) error {
	if sg.Header.MapSizeX == 0 || sg.Header.MapSizeY == 0 {
		return fmt.Errorf("the legacy map size must be populated before converting the land view state")
	}

	sg.Stuff.ZoomLevel = zoomScalarToLevel(lv.Zoom)

	viewportX := clampInt(lv.CenterX/32+1, 1, int(sg.Header.MapSizeX)-1)
	viewportY := clampInt(lv.CenterY/32+1, 1, int(sg.Header.MapSizeY)-1)
	sg.Stuff.ViewportX = uint16(viewportX)
	sg.Stuff.ViewportY = uint16(viewportY)

	switch lv.Reveal {
	case modern.RevealNone:
		sg.Header.ShowEntireMap = false
		sg.Header.FixedNationMapView = schema.NewEnumFromName(schema.Nation2Byte, "none")
	case modern.RevealEntireMap:
		sg.Header.ShowEntireMap = true
		sg.Header.FixedNationMapView = schema.NewEnumFromName(schema.Nation2Byte, "none")
	case modern.RevealFixedNation:
		name, ok := modernNationNameToLegacy(lv.RevealNation)
		if !ok {
			return fmt.Errorf("cannot reveal map fixed to non-colonial nation %q", lv.RevealNation)
		}
		sg.Header.ShowEntireMap = false
		sg.Header.FixedNationMapView = schema.NewEnumFromName(schema.Nation2Byte, name)
	default:
		return fmt.Errorf("unrecognized map reveal kind %d", lv.Reveal)
	}
	return nil
}

func legacyNationNameToModern(name string) (modern.Nation, bool) {
	switch name {
	case "england":
		return modern.NationEngland, true
	case "france":
		return modern.NationFrance, true
	case "spain":
		return modern.NationSpain, true
	case "netherlands":
		return modern.NationNetherlands, true
	default:
		return modern.NationNone, false
	}
}

func modernNationNameToLegacy(n modern.Nation) (string, bool) {
	switch n {
	case modern.NationEngland:
		return "england", true
	case modern.NationFrance:
		return "france", true
	case modern.NationSpain:
		return "spain", true
	case modern.NationNetherlands:
		return "netherlands", true
	default:
		return "", false
	}
}
