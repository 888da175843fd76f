package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/difficulty"
	"github.com/jonathan/picture-match/internal/matching"
	"github.com/jonathan/picture-match/internal/selection"
	"github.com/jonathan/picture-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(id string, codes ...types.Code) types.Slot {
	return types.Slot{
		ID:            id,
		RequiredCodes: codes,
		Position:      types.Position{X: 100, Y: 50},
		Size:          types.Size{Width: 80, Height: 40},
	}
}

func item(id string, code types.Code) types.Item {
	return types.Item{ID: id, DisplayName: id, Code: code}
}

// nineSlotCatalog has nine single-code slots and one exact item per slot.
func nineSlotCatalog() *types.Catalog {
	var slots []types.Slot
	var items []types.Item
	for i, c := range []types.Code{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		slots = append(slots, slot(fmt.Sprintf("s%d", i+1), c))
		items = append(items, item(fmt.Sprintf("item-%s", c), c))
	}
	items = append(items, item("joker-1", types.JokerCode))

	return &types.Catalog{
		Portals: []types.Portal{{
			ID: "garden", DefaultMinCells: 6, DefaultMaxCells: 6, LayoutRef: "garden-layout",
			VariantOverrides: map[types.Variant]types.VariantOverride{
				types.VariantExpert: {MinCells: 8, MaxCells: 8, ExtraItems: true},
				types.VariantKids:   {MinCells: 3, MaxCells: 5, Guided: true},
			},
		}},
		Layouts: []types.Layout{{ID: "garden-layout", Background: "garden.png", Desktop: slots}},
		Items:   items,
	}
}

func newGenerator(c *types.Catalog) *Generator {
	return NewGenerator(catalog.NewMemoryStore(c), difficulty.Totals{})
}

func sortedIDs(items []types.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	sort.Strings(ids)
	return ids
}

func TestGenerate_FixedRangeAllMatched(t *testing.T) {
	g := newGenerator(nineSlotCatalog())

	for seed := int64(1); seed <= 20; seed++ {
		res, err := g.Generate(context.Background(), &types.GenerateRequest{PortalID: "garden", Seed: seed})
		require.NoError(t, err)

		s := res.Session
		require.Len(t, s.Cells, 6)
		require.Len(t, s.Items, 6)
		assert.Equal(t, types.LevelStandard, s.LevelType)
		assert.Nil(t, s.Diagnostics)
		assert.Empty(t, res.Allocation.Jokers)

		for _, c := range s.Cells {
			it, ok := res.Allocation.Assignments[c.ID]
			require.True(t, ok, "cell %s unassigned", c.ID)
			assert.True(t, matching.MatchesSlot(it.Code, c), "item %s does not fit cell %s", it.ID, c.ID)
		}
	}
}

func TestGenerate_JokersFillShortfall(t *testing.T) {
	c := &types.Catalog{
		Portals: []types.Portal{{ID: "p", DefaultMinCells: 6, DefaultMaxCells: 6, LayoutRef: "l"}},
		Layouts: []types.Layout{{ID: "l", Desktop: []types.Slot{
			slot("s1", "a"), slot("s2", "a"), slot("s3", "b"),
			slot("s4", "b"), slot("s5", "c"), slot("s6", "d"),
		}}},
		Items: []types.Item{
			item("a1", "a"), item("b1", "b"), item("c1", "c"), item("d1", "d"),
			item("j1", types.JokerCode), item("j2", types.JokerCode),
		},
	}
	g := newGenerator(c)

	for seed := int64(1); seed <= 10; seed++ {
		res, err := g.Generate(context.Background(), &types.GenerateRequest{PortalID: "p", Seed: seed})
		require.NoError(t, err)

		require.Len(t, res.Session.Cells, 6)
		require.Len(t, res.Session.Items, 6)
		assert.Len(t, res.Allocation.Jokers, 2)
		assert.Empty(t, res.Allocation.Unfilled)

		jokers := 0
		for _, it := range res.Allocation.Assignments {
			if it.IsJoker() {
				jokers++
			}
		}
		assert.Equal(t, 2, jokers)
	}
}

func TestGenerate_VariantOverrideWins(t *testing.T) {
	c := nineSlotCatalog()
	c.Portals[0].DefaultMinCells = 2
	c.Portals[0].DefaultMaxCells = 3
	g := newGenerator(c)

	for seed := int64(1); seed <= 10; seed++ {
		res, err := g.Generate(context.Background(), &types.GenerateRequest{
			PortalID: "garden", Variant: "expert", Seed: seed,
		})
		require.NoError(t, err)

		assert.Len(t, res.Session.Cells, 8)
		assert.Equal(t, types.LevelExtended, res.Session.LevelType)
		assert.True(t, res.Difficulty.ExtraItems)
		assert.Equal(t, 8, res.TrayTotal, "simple tray plus bonus distractors")
	}
}

func TestGenerate_CountBounds(t *testing.T) {
	c := nineSlotCatalog()
	c.Portals[0].DefaultMinCells = 2
	c.Portals[0].DefaultMaxCells = 20
	g := newGenerator(c)

	for seed := int64(1); seed <= 50; seed++ {
		res, err := g.Generate(context.Background(), &types.GenerateRequest{PortalID: "garden", Seed: seed})
		require.NoError(t, err)
		n := len(res.Session.Cells)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 9)
	}
}

func TestGenerate_ShuffleKeepsEveryItem(t *testing.T) {
	g := newGenerator(nineSlotCatalog())

	for seed := int64(1); seed <= 20; seed++ {
		res, err := g.Generate(context.Background(), &types.GenerateRequest{
			PortalID: "garden", Mode: "advanced", Variant: "kids", Seed: seed,
		})
		require.NoError(t, err)

		want := append(res.Allocation.AssignedItems(res.Session.Cells), res.Fill.Distractors...)
		assert.Equal(t, sortedIDs(want), sortedIDs(res.Session.Items))
		assert.Len(t, res.Session.Items, 8)

		seen := map[string]bool{}
		for _, it := range res.Session.Items {
			assert.False(t, seen[it.ID], "duplicate item %s", it.ID)
			seen[it.ID] = true
		}
	}
}

func TestGenerate_GuidedSolution(t *testing.T) {
	g := newGenerator(nineSlotCatalog())

	res, err := g.Generate(context.Background(), &types.GenerateRequest{
		PortalID: "garden", Variant: "kids", Seed: 7,
	})
	require.NoError(t, err)

	s := res.Session
	require.NotNil(t, s.Solution)
	assert.Len(t, s.Solution, len(s.Cells))
	for _, c := range s.Cells {
		it := res.Allocation.Assignments[c.ID]
		assert.Equal(t, c.ID, s.Solution[it.ID])
	}

	res, err = g.Generate(context.Background(), &types.GenerateRequest{PortalID: "garden", Seed: 7})
	require.NoError(t, err)
	assert.Nil(t, res.Session.Solution)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	g := newGenerator(nineSlotCatalog())
	req := &types.GenerateRequest{PortalID: "garden", Mode: "advanced", Seed: 42}

	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Session, second.Session)
}

func TestGenerate_MobileUsesScaledSlots(t *testing.T) {
	g := newGenerator(nineSlotCatalog())

	res, err := g.Generate(context.Background(), &types.GenerateRequest{
		PortalID: "garden", Device: "mobile", Seed: 3,
	})
	require.NoError(t, err)
	for _, c := range res.Session.Cells {
		assert.InDelta(t, 60, c.Position.X, 1e-9)
		assert.InDelta(t, 48, c.Size.Width, 1e-9)
	}
}

func TestGenerate_Errors(t *testing.T) {
	c := nineSlotCatalog()
	c.Portals = append(c.Portals,
		types.Portal{ID: "orphan", DefaultMinCells: 1, DefaultMaxCells: 1, LayoutRef: "gone"},
		types.Portal{ID: "empty", DefaultMinCells: 1, DefaultMaxCells: 1, LayoutRef: "empty-layout"},
		types.Portal{ID: "unfit", DefaultMinCells: 1, DefaultMaxCells: 1, LayoutRef: "unfit-layout"},
	)
	c.Layouts = append(c.Layouts,
		types.Layout{ID: "empty-layout"},
		types.Layout{ID: "unfit-layout", Desktop: []types.Slot{slot("z1", "z")}},
	)
	g := newGenerator(c)
	ctx := context.Background()

	_, err := g.Generate(ctx, &types.GenerateRequest{PortalID: "nope"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "portal", nf.Kind)

	_, err = g.Generate(ctx, &types.GenerateRequest{PortalID: "orphan"})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "layout", nf.Kind)
	assert.Equal(t, "gone", nf.ID)

	_, err = g.Generate(ctx, &types.GenerateRequest{PortalID: "empty"})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "layout slots", nf.Kind)

	_, err = g.Generate(ctx, &types.GenerateRequest{PortalID: "unfit"})
	assert.ErrorIs(t, err, selection.ErrNoEligibleSlots)

	_, err = g.Generate(ctx, &types.GenerateRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = g.Generate(ctx, &types.GenerateRequest{PortalID: "garden", Device: "watch"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

type failingStore struct {
	catalog.Store
	err error
}

func (f failingStore) ListItems(context.Context) ([]types.Item, error) {
	return nil, f.err
}

func TestGenerate_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	store := failingStore{Store: catalog.NewMemoryStore(nineSlotCatalog()), err: boom}
	g := NewGenerator(store, difficulty.DefaultTotals())

	_, err := g.Generate(context.Background(), &types.GenerateRequest{PortalID: "garden"})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to load items")
}

func TestBuild_PartialAllocationIsNotAnError(t *testing.T) {
	in := Input{
		Portal: &types.Portal{ID: "p", DefaultMinCells: 3, DefaultMaxCells: 3},
		Layout: &types.Layout{ID: "l", Desktop: []types.Slot{slot("s1", "a"), slot("s2", "a"), slot("s3", "a")}},
		Items:  []types.Item{item("a1", "a")},
		Mode:   types.ModeSimple,
	}

	res, err := Build(in, difficulty.DefaultTotals(), selection.NewRand(5))
	require.NoError(t, err)

	require.NotNil(t, res.Session.Diagnostics)
	assert.Len(t, res.Session.Diagnostics.UnfilledCells, 2)
	assert.Equal(t, 5, res.Session.Diagnostics.DuplicateItems)
	assert.Len(t, res.Session.Items, 6)
}

func TestGenerate_SampleCatalogFile(t *testing.T) {
	store, err := catalog.OpenFile("../catalog/testdata/catalog.json")
	require.NoError(t, err)
	g := NewGenerator(store, difficulty.DefaultTotals())

	res, err := g.Generate(context.Background(), &types.GenerateRequest{
		PortalID: "farm", Variant: "expert", Mode: "advanced", Seed: 11,
	})
	require.NoError(t, err)

	assert.Len(t, res.Session.Cells, 8)
	assert.Equal(t, 10, res.TrayTotal)
	assert.NoError(t, Validate(res.Session))

	for _, c := range res.Session.Cells {
		it, ok := res.Allocation.Assignments[c.ID]
		if !ok || it.IsJoker() {
			continue
		}
		assert.True(t, matching.MatchesSlot(it.Code, c))
	}
}
