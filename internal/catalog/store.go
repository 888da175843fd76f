// Package catalog provides read-only access to portals, layouts and items.
package catalog

import (
	"context"

	"github.com/jonathan/picture-match/internal/types"
)

// Store is a read-only source of catalog data. Lookups of missing records
// return nil and no error.
type Store interface {
	GetPortal(ctx context.Context, id string) (*types.Portal, error)
	ListPortals(ctx context.Context) ([]types.Portal, error)
	GetLayout(ctx context.Context, id string) (*types.Layout, error)
	ListItems(ctx context.Context) ([]types.Item, error)
}

// MemoryStore serves a catalog held in memory. It is safe for concurrent use
// because it is never written after construction.
type MemoryStore struct {
	portals map[string]types.Portal
	order   []string
	layouts map[string]types.Layout
	items   []types.Item
}

// NewMemoryStore indexes a catalog. Later duplicates of an ID are ignored.
func NewMemoryStore(c *types.Catalog) *MemoryStore {
	s := &MemoryStore{
		portals: make(map[string]types.Portal, len(c.Portals)),
		layouts: make(map[string]types.Layout, len(c.Layouts)),
		items:   append([]types.Item(nil), c.Items...),
	}
	for _, p := range c.Portals {
		if _, ok := s.portals[p.ID]; ok {
			continue
		}
		s.portals[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	for _, l := range c.Layouts {
		if _, ok := s.layouts[l.ID]; ok {
			continue
		}
		s.layouts[l.ID] = l
	}
	return s
}

// GetPortal returns the portal with the given ID.
func (s *MemoryStore) GetPortal(_ context.Context, id string) (*types.Portal, error) {
	p, ok := s.portals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListPortals returns all portals in catalog order.
func (s *MemoryStore) ListPortals(_ context.Context) ([]types.Portal, error) {
	out := make([]types.Portal, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.portals[id])
	}
	return out, nil
}

// GetLayout returns the layout with the given ID.
func (s *MemoryStore) GetLayout(_ context.Context, id string) (*types.Layout, error) {
	l, ok := s.layouts[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// ListItems returns a copy of the item pool.
func (s *MemoryStore) ListItems(_ context.Context) ([]types.Item, error) {
	return append([]types.Item(nil), s.items...), nil
}
