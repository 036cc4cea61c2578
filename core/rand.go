package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandSource is the random capability handed to the engine
// *rand.Rand from golang.org/x/exp/rand satisfies it
type RandSource interface {
	// Intn returns a value in [0, n); n must be positive
	Intn(n int) int
}

// NewRandSource returns a deterministic source for the given seed
// Seed 0 selects a time-based seed
func NewRandSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
