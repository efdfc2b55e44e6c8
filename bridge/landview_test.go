package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// TestZoomLevelRoundTrip verifies each of the four discrete legacy zoom
// levels maps to a scalar that maps back to the same level.
func TestZoomLevelRoundTrip(t *testing.T) {
	for level := uint8(0); level <= 3; level++ {
		scalar := zoomLevelToScalar(level)
		require.Equal(t, level, zoomScalarToLevel(scalar))
	}
}

// TestLandViewRevealNone verifies the no-reveal case translates in
// both directions.
func TestLandViewRevealNone(t *testing.T) {
	sg := schema.NewSaveGame()
	sg.Header.MapSizeX = 10
	sg.Header.MapSizeY = 10
	sg.Header.ShowEntireMap = false
	sg.Header.FixedNationMapView = schema.NewEnumFromName(schema.Nation2Byte, "none")
	sg.Stuff.ZoomLevel = 0
	sg.Stuff.ViewportX = 5
	sg.Stuff.ViewportY = 5

	lv, err := LegacyToModernLandView(sg)
	require.NoError(t, err)
	require.Equal(t, modern.RevealNone, lv.Reveal)

	back := schema.NewSaveGame()
	back.Header.MapSizeX = 10
	back.Header.MapSizeY = 10
	require.NoError(t, ModernToLegacyLandView(lv, back))
	require.False(t, back.Header.ShowEntireMap)
}

// TestLandViewRevealEntireMap verifies the show_entire_map flag
// round-trips independent of the fixed-nation field.
func TestLandViewRevealEntireMap(t *testing.T) {
	lv := modern.LandView{Reveal: modern.RevealEntireMap, Zoom: 1.0}
	sg := schema.NewSaveGame()
	sg.Header.MapSizeX = 10
	sg.Header.MapSizeY = 10

	require.NoError(t, ModernToLegacyLandView(lv, sg))
	require.True(t, sg.Header.ShowEntireMap)

	back, err := LegacyToModernLandView(sg)
	require.NoError(t, err)
	require.Equal(t, modern.RevealEntireMap, back.Reveal)
}

// TestLandViewRevealFixedNation verifies a fixed-nation reveal
// round-trips the specific nation.
func TestLandViewRevealFixedNation(t *testing.T) {
	lv := modern.LandView{Reveal: modern.RevealFixedNation, RevealNation: modern.NationFrance, Zoom: 1.0}
	sg := schema.NewSaveGame()
	sg.Header.MapSizeX = 10
	sg.Header.MapSizeY = 10

	require.NoError(t, ModernToLegacyLandView(lv, sg))
	require.False(t, sg.Header.ShowEntireMap)

	back, err := LegacyToModernLandView(sg)
	require.NoError(t, err)
	require.Equal(t, modern.RevealFixedNation, back.Reveal)
	require.Equal(t, modern.NationFrance, back.RevealNation)
}

// TestLandViewRequiresMapSize verifies converting the land view before
// the map size is populated fails rather than clamping against zero.
func TestLandViewRequiresMapSize(t *testing.T) {
	lv := modern.LandView{Reveal: modern.RevealNone}
	sg := schema.NewSaveGame()
	err := ModernToLegacyLandView(lv, sg)
	require.Error(t, err)
}
