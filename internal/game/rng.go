package game

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// RNG is the randomness source for code generation. *rand.Rand from
// math/rand/v2 satisfies it.
type RNG interface {
	Int64N(n int64) int64
}

// NewRNG returns a ChaCha8 generator seeded from crypto/rand.
func NewRNG() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// NewSeededRNG returns a deterministic generator for replays and tests.
func NewSeededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
