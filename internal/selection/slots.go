package selection

import (
	"math/rand/v2"
	"sort"

	"github.com/jonathan/picture-match/internal/matching"
	"github.com/jonathan/picture-match/internal/types"
)

// EligibleSlots returns the slots that at least one non-joker item matches,
// preserving layout order. Eligibility ignores the strict flag: a strict slot
// whose only candidates are specializations is still eligible and is left to
// the allocator's joker pass.
func EligibleSlots(slots []types.Slot, items []types.Item) []types.Slot {
	eligible := make([]types.Slot, 0, len(slots))
	for _, slot := range slots {
		for _, item := range items {
			if item.IsJoker() {
				continue
			}
			if matching.Matches(item.Code, slot.RequiredCodes, false) {
				eligible = append(eligible, slot)
				break
			}
		}
	}
	return eligible
}

// TargetCount picks how many cells to activate. A fixed range yields its
// value; otherwise a uniform draw from [MinCells, MaxCells]. The result is
// clamped to [min(MinCells, eligible), min(MaxCells, eligible)].
func TargetCount(d types.Difficulty, eligible int, r *rand.Rand) int {
	target := d.MinCells
	if d.MaxCells > d.MinCells {
		target = d.MinCells + r.IntN(d.MaxCells-d.MinCells+1)
	}
	lower := min(d.MinCells, eligible)
	upper := min(d.MaxCells, eligible)
	return max(lower, min(target, upper))
}

// SampleSlots draws n distinct slots uniformly without replacement.
func SampleSlots(eligible []types.Slot, n int, r *rand.Rand) []types.Slot {
	n = max(0, min(n, len(eligible)))
	return Shuffle(eligible, r)[:n]
}

// SortBySpecificity orders slots most specific first. Equal ranks keep
// their relative order.
func SortBySpecificity(slots []types.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return matching.Rank(slots[i]) < matching.Rank(slots[j])
	})
}

// SelectSlots filters the layout to eligible slots, samples the target count
// and returns them in allocation order.
func SelectSlots(slots []types.Slot, items []types.Item, d types.Difficulty, r *rand.Rand) ([]types.Slot, error) {
	eligible := EligibleSlots(slots, items)
	if len(eligible) == 0 {
		return nil, &Error{
			Message: "layout has no slot any catalog item can fill",
			Cause:   ErrNoEligibleSlots,
		}
	}

	n := TargetCount(d, len(eligible), r)
	selected := SampleSlots(eligible, n, r)
	SortBySpecificity(selected)
	return selected, nil
}
