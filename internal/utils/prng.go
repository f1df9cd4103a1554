// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random decision in the
// simulation comes from one owned source.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a new service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random number in [lo, hi). An empty range returns lo.
func (s *PRNGService) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Angle returns a random angle in [-π, π).
func (s *PRNGService) Angle() float64 {
	return s.Range(-math.Pi, math.Pi)
}

// Direction returns a random unit vector.
func (s *PRNGService) Direction() Vec2 {
	return AngleToVector(s.Angle())
}
