package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/types"
)

var _ catalog.Store = (*DB)(nil)

// -----------------------------------------------------------------------------
// Portal Methods
// -----------------------------------------------------------------------------

// GetPortal retrieves a portal and its variant overrides by ID
func (db *DB) GetPortal(ctx context.Context, id string) (*types.Portal, error) {
	var p types.Portal
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, default_min_cells, default_max_cells, layout_ref
		 FROM portals WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.DefaultMinCells, &p.DefaultMaxCells, &p.LayoutRef)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portal: %w", err)
	}

	overrides, err := db.variantOverrides(ctx, id)
	if err != nil {
		return nil, err
	}
	p.VariantOverrides = overrides[id]
	return &p, nil
}

// ListPortals returns all portals in catalog order
func (db *DB) ListPortals(ctx context.Context) ([]types.Portal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, default_min_cells, default_max_cells, layout_ref
		 FROM portals ORDER BY ordinal, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portals: %w", err)
	}
	defer rows.Close()

	var portals []types.Portal
	for rows.Next() {
		var p types.Portal
		if err := rows.Scan(&p.ID, &p.Name, &p.DefaultMinCells, &p.DefaultMaxCells, &p.LayoutRef); err != nil {
			return nil, fmt.Errorf("failed to scan portal: %w", err)
		}
		portals = append(portals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list portals: %w", err)
	}

	overrides, err := db.variantOverrides(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range portals {
		portals[i].VariantOverrides = overrides[portals[i].ID]
	}
	return portals, nil
}

// variantOverrides loads overrides keyed by portal ID. An empty portalID
// loads every portal's overrides.
func (db *DB) variantOverrides(ctx context.Context, portalID string) (map[string]map[types.Variant]types.VariantOverride, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT portal_id, variant, min_cells, max_cells, extra_items, guided
		 FROM portal_variants WHERE $1 = '' OR portal_id = $1`,
		portalID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get variant overrides: %w", err)
	}
	defer rows.Close()

	out := make(map[string]map[types.Variant]types.VariantOverride)
	for rows.Next() {
		var pid, variant string
		var o types.VariantOverride
		if err := rows.Scan(&pid, &variant, &o.MinCells, &o.MaxCells, &o.ExtraItems, &o.Guided); err != nil {
			return nil, fmt.Errorf("failed to scan variant override: %w", err)
		}
		if out[pid] == nil {
			out[pid] = make(map[types.Variant]types.VariantOverride)
		}
		out[pid][types.Variant(variant)] = o
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Layout Methods
// -----------------------------------------------------------------------------

// GetLayout retrieves a layout with its desktop and mobile slots
func (db *DB) GetLayout(ctx context.Context, id string) (*types.Layout, error) {
	var l types.Layout
	err := db.pool.QueryRow(ctx,
		`SELECT id, background FROM layouts WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Background)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT device, slot_id, required_codes, strict, x, y, width, height
		 FROM layout_slots WHERE layout_id = $1
		 ORDER BY device, ordinal`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get layout slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var device string
		var codes []string
		var s types.Slot
		if err := rows.Scan(&device, &s.ID, &codes, &s.Strict,
			&s.Position.X, &s.Position.Y, &s.Size.Width, &s.Size.Height); err != nil {
			return nil, fmt.Errorf("failed to scan layout slot: %w", err)
		}
		s.RequiredCodes = toCodes(codes)
		if types.Device(device) == types.DeviceMobile {
			l.Mobile = append(l.Mobile, s)
		} else {
			l.Desktop = append(l.Desktop, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get layout slots: %w", err)
	}
	return &l, nil
}

// -----------------------------------------------------------------------------
// Item Methods
// -----------------------------------------------------------------------------

// ListItems returns the item pool in catalog order
func (db *DB) ListItems(ctx context.Context) ([]types.Item, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, display_name, code, category_label
		 FROM items ORDER BY ordinal, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var it types.Item
		var code string
		if err := rows.Scan(&it.ID, &it.DisplayName, &code, &it.CategoryLabel); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		it.Code = types.Code(code)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func toCodes(in []string) []types.Code {
	out := make([]types.Code, len(in))
	for i, c := range in {
		out[i] = types.Code(c)
	}
	return out
}

func fromCodes(in []types.Code) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = string(c)
	}
	return out
}
