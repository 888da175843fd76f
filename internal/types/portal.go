package types

import "fmt"

// Variant is an age tier that may override a portal's difficulty.
type Variant string

const (
	VariantNone    Variant = ""
	VariantToddler Variant = "toddler"
	VariantKids    Variant = "kids"
	VariantExpert  Variant = "expert"
)

// ReservesSpecialized reports whether specialized items are held back for
// their dedicated slots while such slots are still open.
func (v Variant) ReservesSpecialized() bool {
	return v == VariantKids
}

// GameMode distinguishes the size of the presented item tray.
type GameMode string

const (
	ModeSimple   GameMode = "simple"
	ModeAdvanced GameMode = "advanced"
)

// ParseGameMode parses a mode name. An empty name means simple.
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case "", ModeSimple:
		return ModeSimple, nil
	case ModeAdvanced:
		return ModeAdvanced, nil
	default:
		return "", fmt.Errorf("unknown game mode %q", s)
	}
}

// ExtraItems is the bonus-distractor flag a mode implies when no variant
// override supplies one.
func (m GameMode) ExtraItems() bool {
	return m == ModeAdvanced
}

// VariantOverride replaces a portal's default difficulty for one variant.
type VariantOverride struct {
	MinCells   int  `json:"minCells"`
	MaxCells   int  `json:"maxCells"`
	ExtraItems bool `json:"extraItems,omitempty"`
	// Guided variants walk the player slot by slot and need the solution map.
	Guided bool `json:"guided,omitempty"`
}

// Portal is a themed game world.
type Portal struct {
	ID               string                      `json:"id"`
	Name             string                      `json:"name,omitempty"`
	DefaultMinCells  int                         `json:"defaultMinCells"`
	DefaultMaxCells  int                         `json:"defaultMaxCells"`
	LayoutRef        string                      `json:"layoutRef"`
	VariantOverrides map[Variant]VariantOverride `json:"variantOverrides,omitempty"`
}

// Difficulty is the effective cell range and bonus flag for one generation.
type Difficulty struct {
	MinCells   int  `json:"minCells"`
	MaxCells   int  `json:"maxCells"`
	ExtraItems bool `json:"extraItems"`
	Guided     bool `json:"guided"`
}
