package selection

import (
	"github.com/jonathan/picture-match/internal/matching"
	"github.com/jonathan/picture-match/internal/types"
)

// Allocation is the result of assigning items to ordered slots.
type Allocation struct {
	// Assignments maps slot ID to the item placed there.
	Assignments map[string]types.Item
	// Used holds the IDs of every assigned item, jokers included.
	Used map[string]bool
	// Jokers lists the slot IDs filled by a joker.
	Jokers []string
	// Unfilled lists the slot IDs that got neither a match nor a joker.
	Unfilled []string
}

// AssignedItems returns the assigned items in slot order.
func (a *Allocation) AssignedItems(slots []types.Slot) []types.Item {
	items := make([]types.Item, 0, len(a.Assignments))
	for _, s := range slots {
		if it, ok := a.Assignments[s.ID]; ok {
			items = append(items, it)
		}
	}
	return items
}

// Allocate greedily assigns at most one unused item to each slot, in the
// given order. Unmatched slots then receive unused joker items in order.
// Slots that still have nothing are reported in Unfilled.
//
// Per slot, candidates are ranked exact match on the first required code,
// exact on the second, then (non-strict slots only) hierarchical on the first
// and hierarchical on the second. Ties go to the earlier item in pool.
func Allocate(slots []types.Slot, pool []types.Item, variant types.Variant) *Allocation {
	alloc := &Allocation{
		Assignments: make(map[string]types.Item, len(slots)),
		Used:        make(map[string]bool, len(slots)),
	}

	pending := make([]types.Slot, 0)
	for i, slot := range slots {
		open := slots[i+1:]
		idx := bestCandidate(slot, pool, alloc.Used, open, variant)
		if idx < 0 {
			pending = append(pending, slot)
			continue
		}
		item := pool[idx]
		alloc.Assignments[slot.ID] = item
		alloc.Used[item.ID] = true
	}

	for _, slot := range pending {
		joker, ok := nextJoker(pool, alloc.Used)
		if !ok {
			alloc.Unfilled = append(alloc.Unfilled, slot.ID)
			continue
		}
		alloc.Assignments[slot.ID] = joker
		alloc.Used[joker.ID] = true
		alloc.Jokers = append(alloc.Jokers, slot.ID)
	}

	return alloc
}

// bestCandidate returns the pool index of the best unused item for slot, or -1.
func bestCandidate(slot types.Slot, pool []types.Item, used map[string]bool, open []types.Slot, variant types.Variant) int {
	best, bestScore := -1, 0
	for i, item := range pool {
		if used[item.ID] {
			continue
		}
		res := matching.Fit(item.Code, slot, open, variant)
		if !res.Ok() {
			continue
		}
		score := candidateScore(res)
		if best < 0 || score < bestScore {
			best, bestScore = i, score
			if score == 0 {
				break
			}
		}
	}
	return best
}

// candidateScore orders match results; lower is better.
func candidateScore(res matching.Result) int {
	if res.Kind == matching.Exact {
		return res.Index
	}
	return 2 + res.Index
}

func nextJoker(pool []types.Item, used map[string]bool) (types.Item, bool) {
	for _, item := range pool {
		if item.IsJoker() && !used[item.ID] {
			return item, true
		}
	}
	return types.Item{}, false
}
