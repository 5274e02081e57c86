package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true once in every n calls on average.
func (r *RNG) Chance(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// FillRandom replaces the grid with a soup where each cell is alive with
// probability 1/density.
func FillRandom(r *RNG, g *Grid, density int) {
	for i := range g.cells {
		g.cells[i] = r.Chance(density)
	}
}
