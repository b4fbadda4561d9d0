package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ferry-sim/ferry-sim/sim/trace"
)

var (
	// ErrInvalidConfig is wrapped by every lane/capacity/window validation failure.
	ErrInvalidConfig = errors.New("invalid packing configuration")

	// ErrInvalidItem is wrapped when an item length is not positive.
	ErrInvalidItem = errors.New("invalid item")
)

// PackingConfig holds the fixed parameters of a packing run.
type PackingConfig struct {
	Lanes    int // number of lanes (must be > 0)
	Capacity int // per-lane capacity (must be >= 0)
}

// Validate checks lane count and capacity ranges.
func (c PackingConfig) Validate() error {
	if c.Lanes <= 0 {
		return fmt.Errorf("%w: lanes must be positive, got %d", ErrInvalidConfig, c.Lanes)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative, got %d", ErrInvalidConfig, c.Capacity)
	}
	return nil
}

// Result is the outcome of one packing run.
// Conservation: sum(LaneFills) + Overflow == sum(items).
type Result struct {
	Overflow      int   // total length of items that fit in no lane
	OverflowCount int   // number of overflowed items
	Placed        int   // number of items assigned to a lane
	LaneFills     []int // final fill per lane; a fresh slice per run, owned by the caller
}

// Simulator drives an item batch through a LaneSelector.
// A Simulator is not safe for concurrent use: its selector may hold RNG
// state and its trace is appended to in place.
type Simulator struct {
	Config   PackingConfig
	Selector LaneSelector
	Trace    *trace.PackingTrace // nil disables tracing
}

// NewSimulator validates cfg and returns a Simulator using selector.
func NewSimulator(cfg PackingConfig, selector LaneSelector) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if selector == nil {
		return nil, fmt.Errorf("%w: nil lane selector", ErrInvalidConfig)
	}
	return &Simulator{Config: cfg, Selector: selector}, nil
}

// Run places items in arrival order (first-come-first-served, no reordering)
// and returns the accumulated overflow.
func (s *Simulator) Run(items []int) (Result, error) {
	if err := validateItems(items); err != nil {
		return Result{}, err
	}
	run := s.newRun()
	for _, item := range items {
		run.place(item, 0)
	}
	return run.result(), nil
}

// RunWindowed partitions items into consecutive windows of size window
// (the last one may be shorter), sorts each window by length descending and
// places it against lane state shared by all windows.
// window == 1 is equivalent to Run; window >= len(items) sorts the whole batch once.
// items is never modified.
func (s *Simulator) RunWindowed(items []int, window int) (Result, error) {
	if window <= 0 {
		return Result{}, fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidConfig, window)
	}
	if err := validateItems(items); err != nil {
		return Result{}, err
	}

	run := s.newRun()
	buf := make([]int, 0, min(window, len(items)))
	for start, w := 0, 0; start < len(items); start, w = start+window, w+1 {
		end := min(start+window, len(items))
		buf = append(buf[:0], items[start:end]...)
		sort.SliceStable(buf, func(i, j int) bool { return buf[i] > buf[j] })
		for _, item := range buf {
			run.place(item, w)
		}
	}
	return run.result(), nil
}

// Run is a convenience wrapper for NewSimulator(cfg, selector).Run(items).
func Run(items []int, cfg PackingConfig, selector LaneSelector) (Result, error) {
	s, err := NewSimulator(cfg, selector)
	if err != nil {
		return Result{}, err
	}
	return s.Run(items)
}

// RunWindowed is a convenience wrapper for NewSimulator(cfg, selector).RunWindowed(items, window).
func RunWindowed(items []int, cfg PackingConfig, selector LaneSelector, window int) (Result, error) {
	s, err := NewSimulator(cfg, selector)
	if err != nil {
		return Result{}, err
	}
	return s.RunWindowed(items, window)
}

func validateItems(items []int) error {
	for i, item := range items {
		if item <= 0 {
			return fmt.Errorf("%w: item %d has non-positive length %d", ErrInvalidItem, i, item)
		}
	}
	return nil
}

// packingRun is the lane state of a single Run/RunWindowed call.
type packingRun struct {
	sim      *Simulator
	fills    []int
	overflow int
	dropped  int
	placed   int
	seq      int
}

func (s *Simulator) newRun() *packingRun {
	return &packingRun{
		sim:   s,
		fills: make([]int, s.Config.Lanes),
	}
}

// place asks the selector for a lane and applies the decision.
func (r *packingRun) place(item, window int) {
	capacity := r.sim.Config.Capacity
	lane, ok := r.sim.Selector.Select(item, r.fills, capacity)
	if ok && (lane < 0 || lane >= len(r.fills) || r.fills[lane]+item > capacity) {
		panic(fmt.Sprintf("lane selector returned unusable lane %d for item %d", lane, item))
	}

	record := trace.PlacementRecord{Seq: r.seq, Window: window, ItemLength: item, Lane: trace.Overflowed}
	if ok {
		record.Lane = lane
		record.FillBefore = r.fills[lane]
		r.fills[lane] += item
		r.placed++
	} else {
		r.overflow += item
		r.dropped++
	}
	if r.sim.Trace.Enabled() {
		r.sim.Trace.RecordPlacement(record)
	}
	r.seq++
}

func (r *packingRun) result() Result {
	return Result{
		Overflow:      r.overflow,
		OverflowCount: r.dropped,
		Placed:        r.placed,
		LaneFills:     r.fills,
	}
}
