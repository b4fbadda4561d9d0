package workload

import (
	"fmt"
	"math/rand"
)

// Generator produces shuffled item batches from a BatchSpec.
// Not safe for concurrent use; each trial builds its own Generator
// around its own RNG.
type Generator struct {
	spec     BatchSpec
	samplers []LengthSampler
	rng      *rand.Rand
}

// NewGenerator validates spec and returns a Generator drawing from rng.
func NewGenerator(spec BatchSpec, rng *rand.Rand) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrInvalidBatchSpec)
	}
	samplers := make([]LengthSampler, len(spec.Bands))
	for i, b := range spec.Bands {
		samplers[i] = NewUniformSampler(b.Min, b.Max)
	}
	return &Generator{spec: spec, samplers: samplers, rng: rng}, nil
}

// Size returns the length of every batch this Generator produces.
func (g *Generator) Size() int {
	return g.spec.Size()
}

// GenerateBatch returns a fresh batch: band-by-band draws followed by a
// uniform random permutation.
func (g *Generator) GenerateBatch() []int {
	return g.GenerateInto(nil)
}

// GenerateInto is GenerateBatch reusing buf's storage when it is large enough.
func (g *Generator) GenerateInto(buf []int) []int {
	items := buf[:0]
	for i, b := range g.spec.Bands {
		for j := 0; j < b.Count; j++ {
			items = append(items, g.samplers[i].Sample(g.rng))
		}
	}
	// rand.Shuffle is a Fisher–Yates permutation.
	g.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}
