package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

func humanOwner() modern.Player {
	return modern.Player{Nation: modern.NationEngland, Human: true}
}

// TestTradeRouteRoundTrip verifies a single sea route with one stop and
// mixed load/unload cargo survives modern -> legacy -> modern.
func TestTradeRouteRoundTrip(t *testing.T) {
	idMap := NewIdMap()
	routes := []modern.TradeRoute{{
		ID:   1,
		Name: "triangle",
		Sea:  true,
		Stops: []modern.Stop{{
			Target: modern.StopTarget{Harbor: true},
			Cargo: []modern.CargoInstruction{
				{Commodity: modern.TradeGoods, Load: true},
				{Commodity: modern.Rum, Load: false},
			},
		}},
	}}

	legacy, count, err := ModernToLegacyTradeRoutes(routes, humanOwner(), idMap)
	require.NoError(t, err)
	require.Equal(t, uint16(1), count)
	require.True(t, legacy[0].Active)

	sg := schema.NewSaveGame()
	sg.TradeRoutes = legacy
	sg.Header.TradeRouteCount = count

	back, err := LegacyToModernTradeRoutes(sg, idMap)
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Equal(t, "triangle", back[0].Name)
	require.True(t, back[0].Sea)
	require.Len(t, back[0].Stops, 1)
	require.True(t, back[0].Stops[0].Target.Harbor)
	require.Len(t, back[0].Stops[0].Cargo, 2)
}

// TestTradeRouteTooManyRejected verifies exceeding the 12-route limit
// is an explicit error, not silent truncation.
func TestTradeRouteTooManyRejected(t *testing.T) {
	idMap := NewIdMap()
	routes := make([]modern.TradeRoute, schema.MaxTradeRoutes+1)
	for i := range routes {
		routes[i] = modern.TradeRoute{ID: i + 1, Name: "r"}
	}
	_, _, err := ModernToLegacyTradeRoutes(routes, humanOwner(), idMap)
	require.Error(t, err)
}

// TestTradeRouteNonHumanOwnerRejected verifies a non-human owner is
// rejected, since the legacy format only supports human-owned routes.
func TestTradeRouteNonHumanOwnerRejected(t *testing.T) {
	idMap := NewIdMap()
	routes := []modern.TradeRoute{{ID: 1, Name: "r"}}
	_, _, err := ModernToLegacyTradeRoutes(routes, modern.Player{Nation: modern.NationEngland, Human: false}, idMap)
	require.Error(t, err)
}

// TestTradeRouteTooManyStopsRejected verifies exceeding the 4-stop
// limit is an explicit error.
func TestTradeRouteTooManyStopsRejected(t *testing.T) {
	idMap := NewIdMap()
	stops := make([]modern.Stop, schema.MaxStops+1)
	for i := range stops {
		stops[i] = modern.Stop{Target: modern.StopTarget{Harbor: true}}
	}
	routes := []modern.TradeRoute{{ID: 1, Name: "r", Stops: stops}}
	_, _, err := ModernToLegacyTradeRoutes(routes, humanOwner(), idMap)
	require.Error(t, err)
}

// TestTradeRouteNameTooLongRejected verifies a name over 32 bytes is
// rejected rather than truncated.
func TestTradeRouteNameTooLongRejected(t *testing.T) {
	idMap := NewIdMap()
	longName := make([]byte, schema.MaxRouteNameLen+1)
	for i := range longName {
		longName[i] = 'x'
	}
	routes := []modern.TradeRoute{{ID: 1, Name: string(longName)}}
	_, _, err := ModernToLegacyTradeRoutes(routes, humanOwner(), idMap)
	require.Error(t, err)
}
