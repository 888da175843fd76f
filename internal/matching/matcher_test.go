package matching

import (
	"testing"

	"github.com/jonathan/picture-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func codes(cs ...string) []types.Code {
	out := make([]types.Code, len(cs))
	for i, c := range cs {
		out[i] = types.Code(c)
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		item     types.Code
		required []types.Code
		strict   bool
		want     Result
	}{
		{name: "exact single", item: "r", required: codes("r"), want: Result{Exact, 0}},
		{name: "exact specialized", item: "rd", required: codes("rd"), want: Result{Exact, 0}},
		{name: "exact ignores strict", item: "rd", required: codes("rd"), strict: true, want: Result{Exact, 0}},
		{name: "hierarchical", item: "rd", required: codes("r"), want: Result{Hierarchical, 0}},
		{name: "strict refuses hierarchical", item: "rd", required: codes("r"), strict: true, want: Result{None, -1}},
		{name: "general never fills specialized", item: "r", required: codes("rd"), want: Result{None, -1}},
		{name: "other family", item: "sa", required: codes("r"), want: Result{None, -1}},
		{name: "dual first code", item: "r", required: codes("r", "s"), want: Result{Exact, 0}},
		{name: "dual second code", item: "s", required: codes("r", "s"), want: Result{Exact, 1}},
		{name: "dual hierarchical second", item: "sa", required: codes("r", "s"), want: Result{Hierarchical, 1}},
		{name: "exact beats earlier hierarchical", item: "sa", required: codes("s", "sa"), want: Result{Exact, 1}},
		{name: "joker never matches", item: types.JokerCode, required: codes("r"), want: Result{None, -1}},
		{name: "empty code", item: "", required: codes("r"), want: Result{None, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.item, tt.required, tt.strict)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Ok(), Matches(tt.item, tt.required, tt.strict))
		})
	}
}

func TestMatchesSlot_StrictExclusivity(t *testing.T) {
	slot := types.Slot{ID: "c1", RequiredCodes: codes("rd"), Strict: true}
	assert.False(t, MatchesSlot("r", slot))
	assert.True(t, MatchesSlot("rd", slot))
}

func TestReserved(t *testing.T) {
	generic := types.Slot{ID: "g", RequiredCodes: codes("r")}
	dedicated := types.Slot{ID: "d", RequiredCodes: codes("rd")}

	assert.True(t, Reserved("rd", generic, []types.Slot{generic, dedicated}))
	assert.False(t, Reserved("rd", generic, []types.Slot{generic}), "no dedicated slot open")
	assert.False(t, Reserved("r", generic, []types.Slot{dedicated}), "single-character item")
	assert.False(t, Reserved("rd", dedicated, []types.Slot{dedicated}), "exact slot itself")

	dual := types.Slot{ID: "x", RequiredCodes: codes("r", "s")}
	assert.False(t, Reserved("rd", dual, []types.Slot{dedicated}), "dual slots are not reserved")

	strict := types.Slot{ID: "st", RequiredCodes: codes("r"), Strict: true}
	assert.False(t, Reserved("rd", strict, []types.Slot{dedicated}))
}

func TestFit_OnlyKidsReserves(t *testing.T) {
	generic := types.Slot{ID: "g", RequiredCodes: codes("r")}
	dedicated := types.Slot{ID: "d", RequiredCodes: codes("rd")}
	open := []types.Slot{generic, dedicated}

	assert.False(t, Fit("rd", generic, open, types.VariantKids).Ok())
	assert.Equal(t, Hierarchical, Fit("rd", generic, open, types.VariantExpert).Kind)
	assert.True(t, Fit("rd", generic, open, types.VariantNone).Ok())
	assert.True(t, Fit("rd", generic, []types.Slot{generic}, types.VariantKids).Ok())
	assert.False(t, Fit("sa", generic, open, types.VariantNone).Ok())
	assert.Equal(t, Exact, Fit("rd", dedicated, open, types.VariantKids).Kind)
}

func TestFits(t *testing.T) {
	generic := types.Slot{ID: "g", RequiredCodes: codes("r")}
	strict := types.Slot{ID: "s", RequiredCodes: codes("rd"), Strict: true}
	joker := types.Item{ID: "j", Code: types.JokerCode}

	assert.True(t, Fits(joker, generic))
	assert.True(t, Fits(joker, strict), "jokers fit strict slots too")
	assert.True(t, Fits(types.Item{Code: "rd"}, generic))
	assert.False(t, Fits(types.Item{Code: "r"}, strict))
	assert.False(t, Fits(types.Item{Code: ""}, generic))
	assert.False(t, Matches(types.JokerCode, generic.RequiredCodes, false), "jokers never match by code")
}

func TestRank(t *testing.T) {
	tests := []struct {
		slot types.Slot
		want int
	}{
		{types.Slot{RequiredCodes: codes("rd")}, RankSpecific},
		{types.Slot{RequiredCodes: codes("r")}, RankGeneric},
		{types.Slot{RequiredCodes: codes("r", "s")}, RankDual},
		{types.Slot{RequiredCodes: codes("r", "sa")}, RankOther},
		{types.Slot{RequiredCodes: codes("*")}, RankOther},
		{types.Slot{}, RankOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rank(tt.slot), "codes %v", tt.slot.RequiredCodes)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "hierarchical", Hierarchical.String())
	assert.Equal(t, "none", None.String())
}
