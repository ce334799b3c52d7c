// Package rng provides deterministic-given-seed random sampling for the
// host driver's multi-day batches. The DP engine itself never calls this
// package; it is only used to draw stochastic initial SoC values across a
// simulated fleet or batch run.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps a seeded normal distribution sampler.
type Source struct {
	rnd *rand.Rand
}

// NewSource returns a Source seeded with seed. Two Sources created with the
// same seed produce identical sequences of Normal draws.
func NewSource(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Normal draws one sample from a normal distribution with the given mean
// and standard deviation.
func (s *Source) Normal(mean, std float64) float64 {
	d := distuv.Normal{Mu: mean, Sigma: std, Src: s.rnd}
	return d.Rand()
}
