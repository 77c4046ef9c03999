package service

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness used for shuffling and sampling. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG source; seed 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffle is an in-place Fisher–Yates shuffle.
func shuffle[T any](rnd Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
