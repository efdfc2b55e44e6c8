package bridge

import (
	"fmt"

	"github.com/colonize-reborn/sav/errs"
	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/schema"
)

// commodityByCDR and cdrByCommodity translate between the legacy
// Cargo4Bit enum's CDR names and modern.Commodity values; the legacy
// "goods" code renders as the modern "trade_goods" name (§4.6.4).
var commodityByCDR = map[string]modern.Commodity{
	"food": modern.Food, "sugar": modern.Sugar, "tobacco": modern.Tobacco,
	"cotton": modern.Cotton, "furs": modern.Furs, "lumber": modern.Lumber,
	"ore": modern.Ore, "silver": modern.Silver, "horses": modern.Horses,
	"rum": modern.Rum, "cigars": modern.Cigars, "cloth": modern.Cloth,
	"coats": modern.Coats, "trade_goods": modern.TradeGoods,
	"tools": modern.Tools, "muskets": modern.Muskets,
}

var cdrByCommodity = func() map[modern.Commodity]string {
	m := make(map[modern.Commodity]string, len(commodityByCDR))
	for k, v := range commodityByCDR {
		m[v] = k
	}
	return m
}()

func tradeRouteKindToModern(k schema.Enum[uint8]) (bool, error) {
	name, ok := k.Name()
	if !ok {
		return false, fmt.Errorf("unrecognized legacy trade route type 0x%02x", k.Value())
	}
	switch name {
	case "land":
		return false, nil
	case "sea":
		return true, nil
	default:
		return false, fmt.Errorf("unrecognized legacy trade route type %q", name)
	}
}

func tradeRouteKindToLegacy(sea bool) schema.Enum[uint8] {
	if sea {
		return schema.NewEnumFromName(schema.TradeRouteKind, "sea")
	}
	return schema.NewEnumFromName(schema.TradeRouteKind, "land")
}

// LegacyToModernTradeRoutes implements §4.6.4's legacy -> modern
// direction: it walks the header's active trade-route count, assigns
// each one a modern ID via idMap, and splits each stop's packed
// load/unload slots back into separate load and unload lists in the
// order the legacy slots appear.
func LegacyToModernTradeRoutes(sg *schema.SaveGame, idMap *IdMap) ([]modern.TradeRoute, error) {
	var out []modern.TradeRoute
	for idx := 0; idx < int(sg.Header.TradeRouteCount) && idx < schema.MaxTradeRoutes; idx++ {
		r := sg.TradeRoutes[idx]
		sea, err := tradeRouteKindToModern(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("trade route %d: %w", idx, err)
		}

		mr := modern.TradeRoute{
			ID:   idMap.TradeRouteID(idx),
			Name: r.Name.String(),
			Sea:  sea,
		}

		for i := 0; i < int(r.NumStops) && i < schema.MaxStops; i++ {
			stop := r.Stops[i]
			target := modern.StopTarget{}
			if int(stop.Target) == schema.HarborStop {
				target.Harbor = true
			} else {
				target.ColonyID = idMap.ColonyID(int(stop.Target))
			}

			var loads, unloads []modern.CargoInstruction
			for s := 0; s < int(stop.NumSlots) && s < schema.MaxCargoSlots; s++ {
				slot := stop.Slots[s]
				name, ok := slot.Commodity.Name()
				if !ok {
					return nil, fmt.Errorf("trade route %d stop %d slot %d: unrecognized commodity 0x%x", idx, i, s, slot.Commodity.Value())
				}
				commodity := commodityByCDR[name]
				if slot.Load {
					loads = append(loads, modern.CargoInstruction{Commodity: commodity, Load: true})
				} else {
					unloads = append(unloads, modern.CargoInstruction{Commodity: commodity, Load: false})
				}
			}

			mr.Stops = append(mr.Stops, modern.Stop{
				Target: target,
				Cargo:  append(loads, unloads...),
			})
		}
		out = append(out, mr)
	}
	return out, nil
}

// ModernToLegacyTradeRoutes implements §4.6.4's modern -> legacy
// direction: the legacy format only supports trade routes owned by the
// human player, at most 12 routes of at most 4 stops each with at most
// 6 load/unload slots in total, and route names of at most 32 bytes; any
// excess is an explicit translation error rather than silent
// truncation.
func ModernToLegacyTradeRoutes(routes []modern.TradeRoute, owner modern.Player, idMap *IdMap) ([schema.MaxTradeRoutes]schema.TradeRoute, uint16, error) {
	var out [schema.MaxTradeRoutes]schema.TradeRoute
	for i := range out {
		out[i] = schema.NewTradeRoute()
	}

	if len(routes) > schema.MaxTradeRoutes {
		return out, 0, fmt.Errorf("%d trade routes exceeds legacy limit of %d: %w", len(routes), schema.MaxTradeRoutes, errs.ErrTooManyTradeRoutes)
	}

	for idx, mr := range routes {
		if !owner.Human {
			return out, 0, errs.ErrNotHumanOwned
		}
		if len(mr.Name) > schema.MaxRouteNameLen {
			return out, 0, fmt.Errorf("trade route %q name exceeds %d bytes: %w", mr.Name, schema.MaxRouteNameLen, errs.ErrRouteNameTooLong)
		}
		if len(mr.Stops) > schema.MaxStops {
			return out, 0, fmt.Errorf("trade route %q has %d stops, exceeds legacy limit of %d: %w", mr.Name, len(mr.Stops), schema.MaxStops, errs.ErrTooManyStops)
		}

		idMap.SetTradeRoute(mr.ID, idx)

		r := schema.NewTradeRoute()
		r.Active = true
		r.Kind = tradeRouteKindToLegacy(mr.Sea)
		if err := r.Name.SetString(mr.Name); err != nil {
			return out, 0, fmt.Errorf("trade route %q: %w", mr.Name, err)
		}
		r.Nation = schema.NewEnum(schema.Nation, slotNationToCode(owner.Nation))
		r.NumStops = uint8(len(mr.Stops))

		for si, stop := range mr.Stops {
			var loads, unloads []modern.CargoInstruction
			for _, c := range stop.Cargo {
				if c.Load {
					loads = append(loads, c)
				} else {
					unloads = append(unloads, c)
				}
			}
			if len(loads) > schema.MaxCargoSlots {
				return out, 0, fmt.Errorf("trade route %q stop %d has %d loads, exceeds legacy limit of %d: %w", mr.Name, si, len(loads), schema.MaxCargoSlots, errs.ErrTooManyCargoSlots)
			}
			if len(unloads) > schema.MaxCargoSlots {
				return out, 0, fmt.Errorf("trade route %q stop %d has %d unloads, exceeds legacy limit of %d: %w", mr.Name, si, len(unloads), schema.MaxCargoSlots, errs.ErrTooManyCargoSlots)
			}
			if len(loads)+len(unloads) > schema.MaxCargoSlots {
				return out, 0, fmt.Errorf("trade route %q stop %d has %d cargo slots, exceeds legacy limit of %d: %w", mr.Name, si, len(loads)+len(unloads), schema.MaxCargoSlots, errs.ErrTooManyCargoSlots)
			}

			var legacyStop schema.Stop
			if stop.Target.Harbor {
				legacyStop.Target = schema.HarborStop
			} else {
				legacyStop.Target = uint16(idMap.ColonyIndex(stop.Target.ColonyID))
			}
			legacyStop.NumSlots = uint8(len(loads) + len(unloads))
			slot := 0
			for _, c := range loads {
				legacyStop.Slots[slot] = schema.CargoSlot{
					Commodity: schema.NewEnumFromName(schema.Cargo4Bit, cdrByCommodity[c.Commodity]),
					Load:      true,
				}
				slot++
			}
			for _, c := range unloads {
				legacyStop.Slots[slot] = schema.CargoSlot{
					Commodity: schema.NewEnumFromName(schema.Cargo4Bit, cdrByCommodity[c.Commodity]),
					Load:      false,
				}
				slot++
			}
			r.Stops[si] = legacyStop
		}
		out[idx] = r
	}
	return out, uint16(len(routes)), nil
}

func slotNationToCode(n modern.Nation) uint8 {
	switch n {
	case modern.NationEngland:
		return 0x00
	case modern.NationFrance:
		return 0x01
	case modern.NationSpain:
		return 0x02
	case modern.NationNetherlands:
		return 0x03
	default:
		return 0xFF
	}
}
