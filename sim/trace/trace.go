package trace

// TraceLevel controls the verbosity of placement tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelPlacements captures every lane-selection decision.
	TraceLevelPlacements TraceLevel = "placements"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelPlacements: true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// PackingTrace collects placement records during one packing run.
type PackingTrace struct {
	Level      TraceLevel
	Placements []PlacementRecord
}

// NewPackingTrace creates a PackingTrace ready for recording.
func NewPackingTrace(level TraceLevel) *PackingTrace {
	return &PackingTrace{
		Level:      level,
		Placements: make([]PlacementRecord, 0),
	}
}

// Enabled reports whether records should be collected.
// Safe on a nil trace.
func (pt *PackingTrace) Enabled() bool {
	return pt != nil && pt.Level == TraceLevelPlacements
}

// RecordPlacement appends a placement record.
func (pt *PackingTrace) RecordPlacement(record PlacementRecord) {
	pt.Placements = append(pt.Placements, record)
}
