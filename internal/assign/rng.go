package assign

import (
	"math/rand/v2"
	"time"
)

// NewSeededRNG creates a seeded random number generator.
// If seed is 0, the current time is used. The effective seed is returned so
// the caller can log it and reproduce the run later.
func NewSeededRNG(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x5ec2e75a47a)), seed
}
