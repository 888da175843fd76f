package catalog

import (
	"fmt"

	"github.com/jonathan/picture-match/internal/schemas"
	"github.com/jonathan/picture-match/internal/types"
)

// Check verifies the rules a schema cannot express: unique IDs, valid codes,
// resolvable layout references and sane cell ranges. All problems are
// reported together.
func Check(c *types.Catalog) error {
	var errs []schemas.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, schemas.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	itemIDs := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		field := fmt.Sprintf("items.%d", i)
		if itemIDs[it.ID] {
			add(field, "duplicate item id %q", it.ID)
		}
		itemIDs[it.ID] = true
		if !it.Code.Valid() {
			add(field, "invalid code %q", it.Code)
		}
	}

	layoutIDs := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		field := fmt.Sprintf("layouts.%d", i)
		if layoutIDs[l.ID] {
			add(field, "duplicate layout id %q", l.ID)
		}
		layoutIDs[l.ID] = true
		checkSlots(field+".desktop", l.Desktop, add)
		checkSlots(field+".mobile", l.Mobile, add)
		if len(l.Mobile) > 0 && len(l.Mobile) != len(l.Desktop) {
			add(field, "mobile has %d slots, desktop has %d", len(l.Mobile), len(l.Desktop))
		}
	}

	portalIDs := make(map[string]bool, len(c.Portals))
	for i, p := range c.Portals {
		field := fmt.Sprintf("portals.%d", i)
		if portalIDs[p.ID] {
			add(field, "duplicate portal id %q", p.ID)
		}
		portalIDs[p.ID] = true
		if !layoutIDs[p.LayoutRef] {
			add(field, "layout %q does not exist", p.LayoutRef)
		}
		if p.DefaultMinCells > p.DefaultMaxCells {
			add(field, "defaultMinCells %d exceeds defaultMaxCells %d", p.DefaultMinCells, p.DefaultMaxCells)
		}
		for v, o := range p.VariantOverrides {
			if o.MinCells > o.MaxCells {
				add(fmt.Sprintf("%s.variantOverrides.%s", field, v), "minCells %d exceeds maxCells %d", o.MinCells, o.MaxCells)
			}
		}
	}

	if len(errs) > 0 {
		return &schemas.ValidationError{Errors: errs}
	}
	return nil
}

func checkSlots(field string, slots []types.Slot, add func(field, format string, args ...any)) {
	ids := make(map[string]bool, len(slots))
	for i, s := range slots {
		f := fmt.Sprintf("%s.%d", field, i)
		if ids[s.ID] {
			add(f, "duplicate slot id %q", s.ID)
		}
		ids[s.ID] = true
		if len(s.RequiredCodes) == 0 || len(s.RequiredCodes) > 2 {
			add(f, "slot needs one or two required codes, has %d", len(s.RequiredCodes))
		}
		for _, code := range s.RequiredCodes {
			if !code.Valid() || code.IsJoker() {
				add(f, "invalid required code %q", code)
			}
		}
	}
}
