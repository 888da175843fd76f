// Package session generates playable sessions: it resolves difficulty,
// selects cells, allocates items, pads the tray with distractors and
// assembles the result.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/difficulty"
	"github.com/jonathan/picture-match/internal/selection"
	"github.com/jonathan/picture-match/internal/types"
)

// Input is everything one generation needs, already loaded from the catalog.
type Input struct {
	Portal  *types.Portal
	Layout  *types.Layout
	Items   []types.Item
	Device  types.Device
	Mode    types.GameMode
	Variant types.Variant
}

// Result is a generated session plus the intermediate values that produced it.
type Result struct {
	Session    *types.Session
	Difficulty types.Difficulty
	TrayTotal  int
	Allocation *selection.Allocation
	Fill       selection.Fill
}

// Generator produces sessions from a catalog store.
type Generator struct {
	store  catalog.Store
	totals difficulty.Totals
}

// NewGenerator creates a generator. Zero totals fall back to the defaults.
func NewGenerator(store catalog.Store, totals difficulty.Totals) *Generator {
	if totals == (difficulty.Totals{}) {
		totals = difficulty.DefaultTotals()
	}
	return &Generator{store: store, totals: totals}
}

// Totals returns the tray sizes the generator uses.
func (g *Generator) Totals() difficulty.Totals {
	return g.totals
}

// Generate validates the request, loads its portal, layout and items, and
// builds a session. A non-zero request seed makes the result reproducible.
func (g *Generator) Generate(ctx context.Context, req *types.GenerateRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}
	device, err := types.ParseDevice(req.Device)
	if err != nil {
		return nil, invalidRequest(err)
	}
	mode, err := types.ParseGameMode(req.Mode)
	if err != nil {
		return nil, invalidRequest(err)
	}

	in, err := g.load(ctx, req.PortalID)
	if err != nil {
		return nil, err
	}
	in.Device = device
	in.Mode = mode
	in.Variant = types.Variant(req.Variant)

	return Build(in, g.totals, selection.NewRand(req.Seed))
}

// load fetches the portal, then its layout and the item pool concurrently.
func (g *Generator) load(ctx context.Context, portalID string) (Input, error) {
	portal, err := g.store.GetPortal(ctx, portalID)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load portal: %w", err)
	}
	if portal == nil {
		return Input{}, &NotFoundError{Kind: "portal", ID: portalID}
	}

	var layout *types.Layout
	var items []types.Item

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		l, err := g.store.GetLayout(egCtx, portal.LayoutRef)
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		layout = l
		return nil
	})
	eg.Go(func() error {
		it, err := g.store.ListItems(egCtx)
		if err != nil {
			return fmt.Errorf("failed to load items: %w", err)
		}
		items = it
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Input{}, err
	}

	if layout == nil {
		return Input{}, &NotFoundError{Kind: "layout", ID: portal.LayoutRef}
	}

	return Input{Portal: portal, Layout: layout, Items: items}, nil
}

// Build runs one generation over already loaded catalog data. It performs no
// I/O; all randomness comes from r.
func Build(in Input, totals difficulty.Totals, r *rand.Rand) (*Result, error) {
	slots := in.Layout.SlotsFor(in.Device)
	if len(slots) == 0 {
		return nil, &NotFoundError{Kind: "layout slots", ID: fmt.Sprintf("%s/%s", in.Layout.ID, in.Device)}
	}

	d := difficulty.Resolve(in.Portal, in.Variant, in.Mode)

	cells, err := selection.SelectSlots(slots, in.Items, d, r)
	if err != nil {
		return nil, fmt.Errorf("portal %s: %w", in.Portal.ID, err)
	}

	pool := selection.Shuffle(in.Items, r)
	alloc := selection.Allocate(cells, pool, in.Variant)
	if len(alloc.Unfilled) > 0 {
		log.Printf("[session] portal %s: %d of %d cells unfilled: %v",
			in.Portal.ID, len(alloc.Unfilled), len(cells), alloc.Unfilled)
	}

	total := totals.TrayTotal(in.Mode, d.ExtraItems)
	fill := selection.FillDistractors(alloc.AssignedItems(cells), in.Items, total, r)
	if fill.Duplicates > 0 {
		log.Printf("[session] portal %s: item pool exhausted, %d duplicate items added",
			in.Portal.ID, fill.Duplicates)
	}

	s := Assemble(cells, fill.Items, in.Layout.Background, d, alloc.Assignments)
	diag := &types.Diagnostics{UnfilledCells: alloc.Unfilled, DuplicateItems: fill.Duplicates}
	if !diag.Empty() {
		s.Diagnostics = diag
	}

	return &Result{
		Session:    s,
		Difficulty: d,
		TrayTotal:  total,
		Allocation: alloc,
		Fill:       fill,
	}, nil
}
