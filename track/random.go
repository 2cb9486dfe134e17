package track

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies uniform integers in [0, n)
// *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source; seed 0 seeds from the wall clock
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
