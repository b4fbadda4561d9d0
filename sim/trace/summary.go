package trace

// TraceSummary aggregates statistics from a PackingTrace.
type TraceSummary struct {
	TotalDecisions int
	PlacedCount    int
	OverflowCount  int
	OverflowLength int
	UsedLanes      int
	LaneItems      map[int][]int // lane → item lengths in placement order
	OverflowItems  []int         // overflowed lengths in placement order
}

// Summarize computes aggregate statistics from a PackingTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(pt *PackingTrace) *TraceSummary {
	summary := &TraceSummary{
		LaneItems: make(map[int][]int),
	}
	if pt == nil {
		return summary
	}

	summary.TotalDecisions = len(pt.Placements)
	for _, p := range pt.Placements {
		if !p.Placed() {
			summary.OverflowCount++
			summary.OverflowLength += p.ItemLength
			summary.OverflowItems = append(summary.OverflowItems, p.ItemLength)
			continue
		}
		summary.PlacedCount++
		summary.LaneItems[p.Lane] = append(summary.LaneItems[p.Lane], p.ItemLength)
	}
	summary.UsedLanes = len(summary.LaneItems)

	return summary
}
