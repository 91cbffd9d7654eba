package rng

import "math/rand"

// Seeded is a Generator with a deterministic seed.
// Use it for reproducible simulations and in tests.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a new Seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
