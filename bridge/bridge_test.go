package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/schema"
)

func minimalSave() *schema.SaveGame {
	sg := schema.NewSaveGame()
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
	sg.Players[0].Flags.Human = true
	return sg
}

// TestConvertToNGPlayers verifies ConvertToNG yields one modern player
// per legacy slot, carries over the human flag, and reports no
// declared independence.
func TestConvertToNGPlayers(t *testing.T) {
	sg := minimalSave()

	state, _, err := ConvertToNG(sg)
	require.NoError(t, err)
	require.Len(t, state.Players, schema.NumPlayers)
	require.True(t, state.Players[0].Human)
	require.False(t, state.Independence)
}

// TestConvertToNGWithColony verifies a legacy colony translates with
// its position shifted by the outer-ring offset and its owner resolved.
func TestConvertToNGWithColony(t *testing.T) {
	sg := minimalSave()
	col := schema.NewColony()
	col.X, col.Y = 1, 1
	col.Nation = schema.NewEnumFromName(schema.Nation, "england")
	col.Population = 3
	require.NoError(t, col.Name.SetString("jamestown"))
	sg.Colonies = append(sg.Colonies, col)

	state, _, err := ConvertToNG(sg)
	require.NoError(t, err)
	require.Len(t, state.Colonies, 1)
	require.Equal(t, 0, state.Colonies[0].X)
	require.Equal(t, 0, state.Colonies[0].Y)
	require.Equal(t, 3, state.Colonies[0].Population)
}

// TestConvertRoundTripPreservesMapSize verifies ConvertToNG followed by
// ConvertToOG reproduces the original map dimensions.
func TestConvertRoundTripPreservesMapSize(t *testing.T) {
	sg := minimalSave()

	state, idMap, err := ConvertToNG(sg)
	require.NoError(t, err)

	back, err := ConvertToOG(state, idMap)
	require.NoError(t, err)
	require.Equal(t, sg.Header.MapSizeX, back.Header.MapSizeX)
	require.Equal(t, sg.Header.MapSizeY, back.Header.MapSizeY)
	require.Len(t, back.Tile, len(sg.Tile))
}

// TestConvertToOGRequiresHuman verifies ConvertToOG rejects a player
// roster with no human player.
func TestConvertToOGRequiresHuman(t *testing.T) {
	sg := minimalSave()
	state, idMap, err := ConvertToNG(sg)
	require.NoError(t, err)

	for i := range state.Players {
		state.Players[i].Human = false
	}

	_, err = ConvertToOG(state, idMap)
	require.Error(t, err)
}
