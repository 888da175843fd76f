package selection

import (
	"math/rand/v2"

	"github.com/jonathan/picture-match/internal/types"
)

// Fill is the presented item tray.
type Fill struct {
	// Items is assigned plus distractor items, shuffled.
	Items []types.Item
	// Distractors are the items added on top of the assigned ones.
	Distractors []types.Item
	// Duplicates counts items repeated because every other source ran out.
	Duplicates int
}

// FillDistractors pads the assigned items up to total with unused, non-joker
// catalog items and shuffles the result.
//
// Distractors are a uniform sample without replacement of the unused
// non-joker items. Only when those run out are non-joker items repeated.
// The tray never shrinks below the assigned items.
func FillDistractors(assigned []types.Item, catalog []types.Item, total int, r *rand.Rand) Fill {
	needed := max(0, total-len(assigned))

	used := make(map[string]bool, len(assigned)+needed)
	for _, it := range assigned {
		used[it.ID] = true
	}

	var candidates []types.Item
	for _, it := range catalog {
		if it.IsJoker() || used[it.ID] {
			continue
		}
		used[it.ID] = true
		candidates = append(candidates, it)
	}

	distractors := make([]types.Item, 0, needed)
	distractors = appendSample(distractors, candidates, needed, r)

	duplicates := 0
	if len(distractors) < needed {
		source := nonJokers(catalog)
		if len(source) > 0 {
			source = Shuffle(source, r)
			for i := 0; len(distractors) < needed; i++ {
				distractors = append(distractors, source[i%len(source)])
				duplicates++
			}
		}
	}

	items := make([]types.Item, 0, len(assigned)+len(distractors))
	items = append(items, assigned...)
	items = append(items, distractors...)

	return Fill{
		Items:       Shuffle(items, r),
		Distractors: distractors,
		Duplicates:  duplicates,
	}
}

func appendSample(dst, from []types.Item, n int, r *rand.Rand) []types.Item {
	n = min(n, len(from))
	if n <= 0 {
		return dst
	}
	return append(dst, Shuffle(from, r)[:n]...)
}

func nonJokers(items []types.Item) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, it := range items {
		if !it.IsJoker() {
			out = append(out, it)
		}
	}
	return out
}
