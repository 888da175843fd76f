package selection

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a random source for one generation. A zero seed draws a
// fresh seed; any other seed makes the generation reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano())))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Shuffle returns a Fisher-Yates shuffled copy of in.
func Shuffle[T any](in []T, r *rand.Rand) []T {
	out := make([]T, len(in))
	copy(out, in)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
