package workload

import "math/rand"

// LengthSampler generates item lengths.
type LengthSampler interface {
	// Sample returns a positive length (>= 1).
	Sample(rng *rand.Rand) int
}

// UniformSampler draws integers uniformly from [min, max], both inclusive.
type UniformSampler struct {
	min, max int
}

// NewUniformSampler creates a sampler over [min, max]. Callers validate min <= max.
func NewUniformSampler(min, max int) *UniformSampler {
	return &UniformSampler{min: min, max: max}
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Intn(s.max-s.min+1)
}
