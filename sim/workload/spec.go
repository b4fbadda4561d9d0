package workload

import (
	"errors"
	"fmt"
)

// ErrInvalidBatchSpec is wrapped by every BatchSpec validation failure.
var ErrInvalidBatchSpec = errors.New("invalid batch spec")

// LengthBand is a range of item lengths and how many items to draw from it.
type LengthBand struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Count int `yaml:"count"`
}

// BatchSpec describes the composition of one item batch.
// Bands are generated in order, then the whole batch is shuffled.
type BatchSpec struct {
	Bands []LengthBand `yaml:"bands"`
}

// DefaultBatchSpec returns the 500-car mix: 30 long vehicles, then
// progressively shorter cars.
func DefaultBatchSpec() BatchSpec {
	return BatchSpec{Bands: []LengthBand{
		{Min: 600, Max: 2000, Count: 30},
		{Min: 500, Max: 599, Count: 70},
		{Min: 450, Max: 499, Count: 100},
		{Min: 400, Max: 449, Count: 200},
		{Min: 350, Max: 399, Count: 100},
	}}
}

// Size returns the number of items in a generated batch.
func (s BatchSpec) Size() int {
	n := 0
	for _, b := range s.Bands {
		n += b.Count
	}
	return n
}

// Validate checks band ranges and that the batch is non-empty.
func (s BatchSpec) Validate() error {
	if len(s.Bands) == 0 {
		return fmt.Errorf("%w: no length bands", ErrInvalidBatchSpec)
	}
	for i, b := range s.Bands {
		if b.Min <= 0 {
			return fmt.Errorf("%w: band %d: min must be positive, got %d", ErrInvalidBatchSpec, i, b.Min)
		}
		if b.Max < b.Min {
			return fmt.Errorf("%w: band %d: max %d below min %d", ErrInvalidBatchSpec, i, b.Max, b.Min)
		}
		if b.Count < 0 {
			return fmt.Errorf("%w: band %d: count must be non-negative, got %d", ErrInvalidBatchSpec, i, b.Count)
		}
	}
	if s.Size() == 0 {
		return fmt.Errorf("%w: bands produce an empty batch", ErrInvalidBatchSpec)
	}
	return nil
}
