package bridge

import (
	"fmt"

	"github.com/colonize-reborn/sav/errs"
	"github.com/colonize-reborn/sav/modern"
	"github.com/colonize-reborn/sav/savlog"
	"github.com/colonize-reborn/sav/schema"
)

// slotNation maps a legacy player-vector index to its fixed colonial
// nation, per the on-disk declared order (english, french, spanish,
// dutch).
var slotNation = [schema.NumPlayers]modern.Nation{
	modern.NationEngland, modern.NationFrance, modern.NationSpain, modern.NationNetherlands,
}

// DeriveHuman implements §4.6.2's nation/REF-slot derivation for
// legacy -> modern conversion. If independence has not been declared,
// it returns the zero Human (no REF) and the sole human-controlled
// colonial player. If independence has been declared, exactly one
// slot must be human-controlled (the declarer) and exactly one must
// be AI-controlled (the REF, in the slot of the *other* colonial
// nation); any other configuration is ErrIndependenceInvariant.
func DeriveHuman(players [schema.NumPlayers]schema.Player, independenceDeclared bool) (modern.Human, error) {
	if !independenceDeclared {
		declarer, err := soleHumanSlot(players)
		if err != nil {
			return modern.Human{}, err
		}
		return modern.Human{Declared: slotNation[declarer]}, nil
	}

	humanSlot := -1
	refSlot := -1
	for i, p := range players {
		if p.Control.Value() != controlAI && p.Control.Value() != controlPlayer {
			continue
		}
		if p.Flags.Human {
			if humanSlot != -1 {
				return modern.Human{}, fmt.Errorf("slot %d: %w", i, errs.ErrIndependenceInvariant)
			}
			humanSlot = i
		}
		if p.Flags.IsREF {
			if refSlot != -1 {
				return modern.Human{}, fmt.Errorf("slot %d: %w", i, errs.ErrIndependenceInvariant)
			}
			refSlot = i
		}
	}
	if humanSlot == -1 || refSlot == -1 || humanSlot == refSlot {
		return modern.Human{}, errs.ErrIndependenceInvariant
	}

	h := modern.Human{Declared: slotNation[humanSlot], RefSlot: slotNation[refSlot]}
	savlog.Logger().Debug().
		Str("declared", string(h.Declared)).
		Str("ref_slot", string(h.RefSlot)).
		Msg("derived REF slot")
	return h, nil
}

const (
	controlPlayer = 0x00
	controlAI     = 0x01
)

// soleHumanSlot returns the index of the single human-controlled
// player among the four fixed colonial slots, or an error if the
// invariant (exactly one human slot, §3.3) is violated.
func soleHumanSlot(players [schema.NumPlayers]schema.Player) (int, error) {
	found := -1
	for i, p := range players {
		if p.Flags.Human {
			if found != -1 {
				return 0, errs.ErrIndependenceInvariant
			}
			found = i
		}
	}
	if found == -1 {
		return 0, errs.ErrIndependenceInvariant
	}
	return found, nil
}

// CollapseREF implements the modern -> legacy half of §4.6.2: given
// the modern player list, it returns the per-slot (human flag, REF
// flag, control) state to write into the four legacy player records.
// A human-controlled REF, or more than one REF player, is rejected.
func CollapseREF(players []modern.Player) (humanFlags, refFlags [schema.NumPlayers]bool, controls [schema.NumPlayers]uint8, err error) {
	sawREF := false
	for _, p := range players {
		slot := slotIndex(p.Nation)
		if slot == -1 {
			continue
		}
		if p.IsREF {
			if p.Human {
				return humanFlags, refFlags, controls, errs.ErrHumanREF
			}
			if sawREF {
				return humanFlags, refFlags, controls, errs.ErrMultipleREF
			}
			sawREF = true
			refFlags[slot] = true
			controls[slot] = controlAI
			continue
		}
		humanFlags[slot] = p.Human
		if p.Human {
			controls[slot] = controlPlayer
		} else {
			controls[slot] = controlAI
		}
	}
	return humanFlags, refFlags, controls, nil
}

func slotIndex(n modern.Nation) int {
	for i, sn := range slotNation {
		if sn == n {
			return i
		}
	}
	return -1
}
