package experiment

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ferry-sim/ferry-sim/sim"
	"github.com/ferry-sim/ferry-sim/sim/workload"
)

// ErrInvalidExperiment is wrapped by every experiment validation failure.
var ErrInvalidExperiment = errors.New("invalid experiment")

const (
	DefaultTrials = 1000
	DefaultSeed   = 42

	DefaultMaxLanes       = 729
	DefaultCapacityBudget = 255000

	DefaultWindowLanes    = 85
	DefaultWindowCapacity = 3000
	DefaultMaxWindow      = 500
)

// Config holds the parameters shared by every sweep.
type Config struct {
	Trials    int                `yaml:"trials"`
	Seed      int64              `yaml:"seed"`
	Workers   int                `yaml:"workers"` // 0 = GOMAXPROCS
	Selectors []string           `yaml:"selectors"`
	Batch     workload.BatchSpec `yaml:"batch"`
}

// DefaultConfig returns 1000 trials of the default batch under all four selectors.
func DefaultConfig() Config {
	return Config{
		Trials:    DefaultTrials,
		Seed:      DefaultSeed,
		Selectors: sim.LaneSelectorNames(),
		Batch:     workload.DefaultBatchSpec(),
	}
}

// Validate checks trial count, worker count, selector names and batch spec.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidExperiment, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidExperiment, c.Workers)
	}
	if len(c.Selectors) == 0 {
		return fmt.Errorf("%w: at least one selector is required", ErrInvalidExperiment)
	}
	seen := make(map[string]bool, len(c.Selectors))
	for _, name := range c.Selectors {
		if name == "" || !sim.IsValidLaneSelector(name) {
			return fmt.Errorf("%w: unknown selector %q (valid: %v)", ErrInvalidExperiment, name, sim.LaneSelectorNames())
		}
		if seen[name] {
			return fmt.Errorf("%w: selector %q listed twice", ErrInvalidExperiment, name)
		}
		seen[name] = true
	}
	if err := c.Batch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}
	return nil
}

// workers resolves the worker pool size.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// LaneSweep varies the lane count n over [MinLanes, MaxLanes] with
// per-lane capacity CapacityBudget/n, so total capacity stays roughly fixed.
type LaneSweep struct {
	MinLanes       int `yaml:"min_lanes"`
	MaxLanes       int `yaml:"max_lanes"`
	CapacityBudget int `yaml:"capacity_budget"`
}

// DefaultLaneSweep returns n = 1..729 with a 255000 budget.
func DefaultLaneSweep() LaneSweep {
	return LaneSweep{MinLanes: 1, MaxLanes: DefaultMaxLanes, CapacityBudget: DefaultCapacityBudget}
}

// Validate checks the sweep bounds.
func (s LaneSweep) Validate() error {
	if s.MinLanes <= 0 {
		return fmt.Errorf("%w: min_lanes must be positive, got %d", ErrInvalidExperiment, s.MinLanes)
	}
	if s.MaxLanes < s.MinLanes {
		return fmt.Errorf("%w: max_lanes %d below min_lanes %d", ErrInvalidExperiment, s.MaxLanes, s.MinLanes)
	}
	if s.CapacityBudget < 0 {
		return fmt.Errorf("%w: capacity_budget must be non-negative, got %d", ErrInvalidExperiment, s.CapacityBudget)
	}
	return nil
}

// CapacityFor returns the per-lane capacity at lane count n (integer floor).
func (s LaneSweep) CapacityFor(n int) int {
	return s.CapacityBudget / n
}

// WindowSweep varies the sort-window size k over [MinWindow, MaxWindow]
// with a fixed lane count and capacity.
type WindowSweep struct {
	Lanes     int `yaml:"lanes"`
	Capacity  int `yaml:"capacity"`
	MinWindow int `yaml:"min_window"`
	MaxWindow int `yaml:"max_window"`
}

// DefaultWindowSweep returns k = 1..500 on 85 lanes of 3000.
func DefaultWindowSweep() WindowSweep {
	return WindowSweep{
		Lanes:     DefaultWindowLanes,
		Capacity:  DefaultWindowCapacity,
		MinWindow: 1,
		MaxWindow: DefaultMaxWindow,
	}
}

// Validate checks the sweep bounds and the fixed packing parameters.
func (s WindowSweep) Validate() error {
	if err := (sim.PackingConfig{Lanes: s.Lanes, Capacity: s.Capacity}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidExperiment, err)
	}
	if s.MinWindow <= 0 {
		return fmt.Errorf("%w: min_window must be positive, got %d", ErrInvalidExperiment, s.MinWindow)
	}
	if s.MaxWindow < s.MinWindow {
		return fmt.Errorf("%w: max_window %d below min_window %d", ErrInvalidExperiment, s.MaxWindow, s.MinWindow)
	}
	return nil
}
