package sav

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/archive"
	"github.com/colonize-reborn/sav/schema"
)

// newMinimalSave builds the smallest legal save: a 3x3 tile grid (a
// one-tile modern interior ringed by ocean padding) with no colonies,
// units, dwellings, or trade routes.
func newMinimalSave(t *testing.T) *schema.SaveGame {
	t.Helper()

	sg := schema.NewSaveGame()
	sg.Header.Magic = schema.Magic
	sg.Header.MapSizeX = 3
	sg.Header.MapSizeY = 3

	ocean := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "ttt"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	plains := schema.Tile{
		Surface:    schema.NewEnumFromName(schema.Terrain5Bit, "pl"),
		HillsRiver: schema.NewEnum(schema.HillsRiver3Bit, 0),
	}
	sg.Tile = []schema.Tile{
		ocean, ocean, ocean,
		ocean, plains, ocean,
		ocean, ocean, ocean,
	}
	sg.Mask = make([]schema.Mask, 9)
	sg.Path = make([]schema.Path, 9)
	sg.Seen = make([]schema.Seen, 9)
	sg.Players[0].Flags.Human = true

	return sg
}

// TestLoadSaveRoundTrip verifies a save written with Save decodes back
// to an equivalent SaveGame via Load.
func TestLoadSaveRoundTrip(t *testing.T) {
	sg := newMinimalSave(t)
	path := filepath.Join(t.TempDir(), "test.sav")

	require.NoError(t, Save(path, sg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, sg.Header.MapSizeX, loaded.Header.MapSizeX)
	require.Equal(t, sg.Header.MapSizeY, loaded.Header.MapSizeY)
	require.Equal(t, len(sg.Tile), len(loaded.Tile))
}

// TestLoadMissingFile verifies Load surfaces the underlying open error
// rather than panicking.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.sav"))
	require.Error(t, err)
}

// TestToJSONAndYAML verifies both CDR export paths produce non-empty
// output for a freshly constructed save.
func TestToJSONAndYAML(t *testing.T) {
	sg := newMinimalSave(t)

	data, err := ToJSON(sg)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	data, err = ToYAML(sg)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

// TestToModernFromModernRoundTrip verifies the bridge round-trips a
// minimal save's map dimensions and single interior tile.
func TestToModernFromModernRoundTrip(t *testing.T) {
	sg := newMinimalSave(t)

	state, idMap, err := ToModern(sg)
	require.NoError(t, err)
	require.Equal(t, 1, state.Terrain.Width)
	require.Equal(t, 1, state.Terrain.Height)

	back, err := FromModern(state, idMap)
	require.NoError(t, err)
	require.Equal(t, sg.Header.MapSizeX, back.Header.MapSizeX)
	require.Equal(t, sg.Header.MapSizeY, back.Header.MapSizeY)

	name, ok := back.Tile[1*3+1].Surface.Name()
	require.True(t, ok)
	require.Equal(t, "pl", name)
}

// TestArchiveRoundTrip verifies a save survives compression and
// decompression through the archive container for every built-in
// method.
func TestArchiveRoundTrip(t *testing.T) {
	sg := newMinimalSave(t)

	for _, method := range []archive.Method{archive.MethodNone, archive.MethodZstd, archive.MethodS2, archive.MethodLZ4} {
		blob, err := Archive(sg, method)
		require.NoError(t, err)
		require.NotEmpty(t, blob)

		back, err := Unarchive(blob)
		require.NoError(t, err)
		require.Equal(t, sg.Header.MapSizeX, back.Header.MapSizeX)
		require.Equal(t, sg.Header.MapSizeY, back.Header.MapSizeY)
		require.Equal(t, len(sg.Tile), len(back.Tile))
	}
}
