// Package matching decides which item codes may occupy which slots.
//
// It is the single rule module used by session generation, the placement
// check endpoint and the CLI, so every caller applies identical rules.
package matching

import "github.com/jonathan/picture-match/internal/types"

// Kind classifies how an item code satisfies a slot.
type Kind int

const (
	// None means the code does not satisfy the slot.
	None Kind = iota
	// Exact means the code equals one of the slot's required codes.
	Exact
	// Hierarchical means a one-character required code is a prefix of the code.
	Hierarchical
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Hierarchical:
		return "hierarchical"
	default:
		return "none"
	}
}

// Result is the outcome of a match together with the index of the required
// code that produced it.
type Result struct {
	Kind  Kind
	Index int
}

// Ok reports whether the match succeeded.
func (r Result) Ok() bool {
	return r.Kind != None
}

// Match evaluates an item code against a slot's required codes. Exact matches
// win over hierarchical ones, and within a kind the first required code wins
// over the second. Strict slots accept exact matches only. Joker codes never
// match here; they are handed out by the allocator's fallback pass.
func Match(itemCode types.Code, required []types.Code, strict bool) Result {
	if itemCode == "" || itemCode.IsJoker() {
		return Result{Kind: None, Index: -1}
	}
	for i, rc := range required {
		if rc == itemCode {
			return Result{Kind: Exact, Index: i}
		}
	}
	if strict {
		return Result{Kind: None, Index: -1}
	}
	for i, rc := range required {
		if rc.Len() == 1 && !rc.IsJoker() && itemCode.HasPrefix(rc) {
			return Result{Kind: Hierarchical, Index: i}
		}
	}
	return Result{Kind: None, Index: -1}
}

// Matches reports whether itemCode may occupy a slot requiring the given codes.
func Matches(itemCode types.Code, required []types.Code, strict bool) bool {
	return Match(itemCode, required, strict).Ok()
}

// MatchesSlot is Matches applied to a slot.
func MatchesSlot(itemCode types.Code, slot types.Slot) bool {
	return Matches(itemCode, slot.RequiredCodes, slot.Strict)
}

// Reserved reports whether a hierarchical match of itemCode into slot should
// be refused because another open slot asks for itemCode exactly. It only
// applies to single-code, non-strict slots and two-character item codes.
func Reserved(itemCode types.Code, slot types.Slot, open []types.Slot) bool {
	if slot.Strict || len(slot.RequiredCodes) != 1 || !itemCode.Specific() {
		return false
	}
	if slot.RequiredCodes[0] == itemCode {
		return false
	}
	for _, other := range open {
		if other.ID == slot.ID {
			continue
		}
		if other.Requires(itemCode) {
			return true
		}
	}
	return false
}

// Fit is Match applied to a slot during allocation. For variants that
// reserve specialized items, a hierarchical match that another open slot
// reserves is refused.
func Fit(itemCode types.Code, slot types.Slot, open []types.Slot, variant types.Variant) Result {
	res := Match(itemCode, slot.RequiredCodes, slot.Strict)
	if res.Kind == Hierarchical && variant.ReservesSpecialized() && Reserved(itemCode, slot, open) {
		return Result{Kind: None, Index: -1}
	}
	return res
}

// Fits reports whether a player may place item into slot. Jokers fit any
// slot; other items must match it.
func Fits(item types.Item, slot types.Slot) bool {
	return item.IsJoker() || MatchesSlot(item.Code, slot)
}
