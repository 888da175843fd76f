package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/picture-match/internal/types"
)

// ImportStats counts the rows written by ImportCatalog.
type ImportStats struct {
	Portals int `json:"portals"`
	Layouts int `json:"layouts"`
	Slots   int `json:"slots"`
	Items   int `json:"items"`
}

// ImportCatalog upserts a whole catalog in one transaction. Slots and variant
// overrides of imported layouts and portals are replaced.
func (db *DB) ImportCatalog(ctx context.Context, c *types.Catalog) (*ImportStats, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats := &ImportStats{}

	for _, l := range c.Layouts {
		if _, err := tx.Exec(ctx,
			`INSERT INTO layouts (id, background) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET background = $2`,
			l.ID, l.Background,
		); err != nil {
			return nil, fmt.Errorf("failed to import layout %s: %w", l.ID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM layout_slots WHERE layout_id = $1`, l.ID); err != nil {
			return nil, fmt.Errorf("failed to clear slots of layout %s: %w", l.ID, err)
		}
		n, err := insertSlots(ctx, tx, l.ID, types.DeviceDesktop, l.Desktop)
		if err != nil {
			return nil, err
		}
		m, err := insertSlots(ctx, tx, l.ID, types.DeviceMobile, l.Mobile)
		if err != nil {
			return nil, err
		}
		stats.Layouts++
		stats.Slots += n + m
	}

	for i, p := range c.Portals {
		if _, err := tx.Exec(ctx,
			`INSERT INTO portals (id, name, default_min_cells, default_max_cells, layout_ref, ordinal)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO UPDATE SET name = $2, default_min_cells = $3,
			   default_max_cells = $4, layout_ref = $5, ordinal = $6`,
			p.ID, p.Name, p.DefaultMinCells, p.DefaultMaxCells, p.LayoutRef, i,
		); err != nil {
			return nil, fmt.Errorf("failed to import portal %s: %w", p.ID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM portal_variants WHERE portal_id = $1`, p.ID); err != nil {
			return nil, fmt.Errorf("failed to clear variants of portal %s: %w", p.ID, err)
		}
		for v, o := range p.VariantOverrides {
			if _, err := tx.Exec(ctx,
				`INSERT INTO portal_variants (portal_id, variant, min_cells, max_cells, extra_items, guided)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, string(v), o.MinCells, o.MaxCells, o.ExtraItems, o.Guided,
			); err != nil {
				return nil, fmt.Errorf("failed to import variant %s of portal %s: %w", v, p.ID, err)
			}
		}
		stats.Portals++
	}

	for i, it := range c.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO items (id, display_name, code, category_label, ordinal)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET display_name = $2, code = $3,
			   category_label = $4, ordinal = $5`,
			it.ID, it.DisplayName, string(it.Code), it.CategoryLabel, i,
		); err != nil {
			return nil, fmt.Errorf("failed to import item %s: %w", it.ID, err)
		}
		stats.Items++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return stats, nil
}

func insertSlots(ctx context.Context, tx pgx.Tx, layoutID string, device types.Device, slots []types.Slot) (int, error) {
	for i, s := range slots {
		if _, err := tx.Exec(ctx,
			`INSERT INTO layout_slots
			   (layout_id, device, slot_id, ordinal, required_codes, strict, x, y, width, height)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			layoutID, string(device), s.ID, i, fromCodes(s.RequiredCodes), s.Strict,
			s.Position.X, s.Position.Y, s.Size.Width, s.Size.Height,
		); err != nil {
			return 0, fmt.Errorf("failed to import slot %s of layout %s: %w", s.ID, layoutID, err)
		}
	}
	return len(slots), nil
}
