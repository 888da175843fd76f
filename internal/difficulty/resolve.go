// Package difficulty resolves the effective cell range and tray size for a
// portal, game mode and optional age variant.
package difficulty

import "github.com/jonathan/picture-match/internal/types"

const (
	// DefaultSimpleTotal is the tray size of the simple game mode.
	DefaultSimpleTotal = 6
	// DefaultAdvancedTotal is the tray size of the advanced game mode.
	DefaultAdvancedTotal = 8
	// DefaultBonusDistractors is added to the tray when extra items are requested.
	DefaultBonusDistractors = 2
)

// Totals configures presented tray sizes per game mode.
type Totals struct {
	Simple           int `json:"simple"`
	Advanced         int `json:"advanced"`
	BonusDistractors int `json:"bonus_distractors"`
}

// DefaultTotals returns the standard tray sizes.
func DefaultTotals() Totals {
	return Totals{
		Simple:           DefaultSimpleTotal,
		Advanced:         DefaultAdvancedTotal,
		BonusDistractors: DefaultBonusDistractors,
	}
}

// TrayTotal returns how many items a session in the given mode presents.
// The tray size is independent of how many cells are selected.
func (t Totals) TrayTotal(mode types.GameMode, extraItems bool) int {
	total := t.Simple
	if mode == types.ModeAdvanced {
		total = t.Advanced
	}
	if extraItems {
		total += t.BonusDistractors
	}
	return max(total, 0)
}

// Resolve returns the variant override when the portal defines one for
// variant, and the portal defaults with the mode-derived extra flag otherwise.
func Resolve(portal *types.Portal, variant types.Variant, mode types.GameMode) types.Difficulty {
	if variant != types.VariantNone {
		if o, ok := portal.VariantOverrides[variant]; ok {
			return normalize(types.Difficulty{
				MinCells:   o.MinCells,
				MaxCells:   o.MaxCells,
				ExtraItems: o.ExtraItems,
				Guided:     o.Guided,
			})
		}
	}
	return normalize(types.Difficulty{
		MinCells:   portal.DefaultMinCells,
		MaxCells:   portal.DefaultMaxCells,
		ExtraItems: mode.ExtraItems(),
	})
}

func normalize(d types.Difficulty) types.Difficulty {
	d.MinCells = max(d.MinCells, 0)
	d.MaxCells = max(d.MaxCells, d.MinCells)
	return d
}
