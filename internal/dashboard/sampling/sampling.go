// Package sampling provides the seeded random streams used by the
// generators and aggregators. Each stream is identified by (seed, stream)
// so independent tables never share draws.
package sampling

import (
	"math/rand/v2"
)

// Stream identifiers. Every table that draws randomness owns one.
const (
	StreamEmployees uint64 = iota + 1
	StreamSalespeople
	StreamSales
	StreamInventory
	StreamWorkJournal
	StreamFinance
	StreamOperations
)

// Source is a deterministic random source
type Source struct {
	rng *rand.Rand
}

// New returns the source for stream under seed.
func New(seed, stream uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Uniform draws from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Normal draws from N(mean, sd).
func (s *Source) Normal(mean, sd float64) float64 {
	return mean + sd*s.rng.NormFloat64()
}

// IntBetween draws an integer from [lo, hi], both ends inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of list. list must not be empty.
func (s *Source) Pick(list []string) string {
	return list[s.rng.IntN(len(list))]
}

// Weighted returns an index drawn with the given weights. Weights need not
// sum to one.
func (s *Source) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
