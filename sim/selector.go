package sim

import (
	"fmt"
	"math/rand"
)

// LaneSelector decides which lane receives an item.
// Implementations never mutate fills. ok is false when no lane has room,
// which the simulator counts as overflow.
type LaneSelector interface {
	Select(itemLength int, fills []int, capacity int) (lane int, ok bool)
}

// Selector names accepted by NewLaneSelector.
const (
	FirstFitName    = "first-fit"
	EmptiestFitName = "emptiest-fit"
	FullestFitName  = "fullest-fit"
	RandomFitName   = "random-fit"
)

// validLaneSelectors is the set of recognized selector names.
// Shared by IsValidLaneSelector and NewLaneSelector.
var validLaneSelectors = map[string]bool{
	"":              true,
	FirstFitName:    true,
	EmptiestFitName: true,
	FullestFitName:  true,
	RandomFitName:   true,
}

// IsValidLaneSelector returns true if name is a recognized selector.
// The empty string is valid and means first-fit.
func IsValidLaneSelector(name string) bool {
	return validLaneSelectors[name]
}

// LaneSelectorNames returns every selector in canonical report order.
func LaneSelectorNames() []string {
	return []string{FirstFitName, EmptiestFitName, FullestFitName, RandomFitName}
}

// fits reports whether an item of length n can go into a lane holding fill.
func fits(fill, n, capacity int) bool {
	return fill+n <= capacity
}

// FirstFit places the item in the lowest-indexed lane with room.
type FirstFit struct{}

// Select implements LaneSelector for FirstFit.
func (FirstFit) Select(itemLength int, fills []int, capacity int) (int, bool) {
	for i, fill := range fills {
		if fits(fill, itemLength, capacity) {
			return i, true
		}
	}
	return -1, false
}

// EmptiestFit places the item in the qualifying lane with the smallest fill.
// Ties broken by first occurrence in index order (strict <).
type EmptiestFit struct{}

// Select implements LaneSelector for EmptiestFit.
func (EmptiestFit) Select(itemLength int, fills []int, capacity int) (int, bool) {
	best := -1
	bestFill := 0
	for i, fill := range fills {
		if !fits(fill, itemLength, capacity) {
			continue
		}
		if best == -1 || fill < bestFill {
			best = i
			bestFill = fill
		}
	}
	return best, best != -1
}

// FullestFit places the item in the qualifying lane with the largest fill.
// Ties broken by first occurrence in index order (strict >).
type FullestFit struct{}

// Select implements LaneSelector for FullestFit.
func (FullestFit) Select(itemLength int, fills []int, capacity int) (int, bool) {
	best := -1
	bestFill := 0
	for i, fill := range fills {
		if !fits(fill, itemLength, capacity) {
			continue
		}
		if best == -1 || fill > bestFill {
			best = i
			bestFill = fill
		}
	}
	return best, best != -1
}

// RandomFit places the item in a lane chosen uniformly among those with room.
// Holds its own RNG and candidate buffer, so one instance must not be shared
// between concurrent runs.
type RandomFit struct {
	rng        *rand.Rand
	candidates []int // reused across calls; reset per Select
}

// NewRandomFit creates a RandomFit drawing from rng.
func NewRandomFit(rng *rand.Rand) *RandomFit {
	return &RandomFit{rng: rng}
}

// Select implements LaneSelector for RandomFit.
func (rf *RandomFit) Select(itemLength int, fills []int, capacity int) (int, bool) {
	rf.candidates = rf.candidates[:0]
	for i, fill := range fills {
		if fits(fill, itemLength, capacity) {
			rf.candidates = append(rf.candidates, i)
		}
	}
	if len(rf.candidates) == 0 {
		return -1, false
	}
	return rf.candidates[rf.rng.Intn(len(rf.candidates))], true
}

// NewLaneSelector creates a lane selector by name.
// Empty string defaults to first-fit. rng is only used by random-fit and
// may be nil for the deterministic selectors.
// Panics on unrecognized names; validate with IsValidLaneSelector first.
func NewLaneSelector(name string, rng *rand.Rand) LaneSelector {
	if !IsValidLaneSelector(name) {
		panic(fmt.Sprintf("unknown lane selector %q", name))
	}
	switch name {
	case "", FirstFitName:
		return FirstFit{}
	case EmptiestFitName:
		return EmptiestFit{}
	case FullestFitName:
		return FullestFit{}
	case RandomFitName:
		if rng == nil {
			panic("NewLaneSelector: random-fit requires a non-nil rng")
		}
		return NewRandomFit(rng)
	default:
		panic(fmt.Sprintf("unhandled lane selector %q", name))
	}
}
