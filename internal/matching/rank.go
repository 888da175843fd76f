package matching

import "github.com/jonathan/picture-match/internal/types"

// Specificity ranks, most specific first.
const (
	RankSpecific = 1 // one required code of two characters
	RankGeneric  = 2 // one required code of one character
	RankDual     = 3 // two required codes, both one character
	RankOther    = 4
)

// Rank returns the specificity rank of a slot. Lower ranks are allocated
// first so specific slots claim their exact item before generic slots can
// take it through the hierarchical fallback.
func Rank(slot types.Slot) int {
	codes := slot.RequiredCodes
	switch {
	case len(codes) == 1 && codes[0].Specific():
		return RankSpecific
	case len(codes) == 1 && codes[0].Len() == 1 && !codes[0].IsJoker():
		return RankGeneric
	case len(codes) == 2 && codes[0].Len() == 1 && codes[1].Len() == 1 &&
		!codes[0].IsJoker() && !codes[1].IsJoker():
		return RankDual
	default:
		return RankOther
	}
}
