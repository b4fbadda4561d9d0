// Package trace provides per-item placement recording for packing runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Overflowed is the Lane value of a record whose item found no lane.
const Overflowed = -1

// PlacementRecord captures a single lane-selection decision.
type PlacementRecord struct {
	Seq        int // position in placement order (after any window sort)
	Window     int // window index; 0 for streaming runs
	ItemLength int
	Lane       int // chosen lane, or Overflowed
	FillBefore int // lane fill before placement; 0 for overflow
}

// Placed reports whether the item was assigned to a lane.
func (r PlacementRecord) Placed() bool {
	return r.Lane != Overflowed
}
