// Package experiment runs randomized packing trials and aggregates overflow
// statistics across a swept parameter (lane count or sort-window size).
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ferry-sim/ferry-sim/sim"
	"github.com/ferry-sim/ferry-sim/sim/workload"
)

// SweepKind names the swept variable.
type SweepKind string

const (
	SweepLanes  SweepKind = "lanes"
	SweepWindow SweepKind = "window"
)

// sweepPoint is one value of the swept variable and the run it implies.
type sweepPoint struct {
	X       int
	Packing sim.PackingConfig
	Window  int // 0 = streaming mode
}

// Runner executes sweeps. Trials within a sweep point run concurrently on a
// bounded pool; each trial derives its own RNG from (Seed, point, trial), so
// results do not depend on the worker count or scheduling order.
type Runner struct {
	cfg Config
	Log *logrus.Entry
}

// NewRunner validates cfg and returns a Runner logging through the standard logrus logger.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg: cfg,
		Log: logrus.NewEntry(logrus.StandardLogger()),
	}, nil
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// SweepLanes averages streaming-mode overflow for each lane count in the sweep.
func (r *Runner) SweepLanes(ctx context.Context, sweep LaneSweep) ([]Series, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	points := make([]sweepPoint, 0, sweep.MaxLanes-sweep.MinLanes+1)
	for n := sweep.MinLanes; n <= sweep.MaxLanes; n++ {
		points = append(points, sweepPoint{
			X:       n,
			Packing: sim.PackingConfig{Lanes: n, Capacity: sweep.CapacityFor(n)},
		})
	}
	return r.sweep(ctx, SweepLanes, points)
}

// SweepWindow averages windowed-sort overflow for each window size in the sweep.
func (r *Runner) SweepWindow(ctx context.Context, sweep WindowSweep) ([]Series, error) {
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	packing := sim.PackingConfig{Lanes: sweep.Lanes, Capacity: sweep.Capacity}
	points := make([]sweepPoint, 0, sweep.MaxWindow-sweep.MinWindow+1)
	for k := sweep.MinWindow; k <= sweep.MaxWindow; k++ {
		points = append(points, sweepPoint{X: k, Packing: packing, Window: k})
	}
	return r.sweep(ctx, SweepWindow, points)
}

func (r *Runner) sweep(ctx context.Context, kind SweepKind, points []sweepPoint) ([]Series, error) {
	series := make([]Series, len(r.cfg.Selectors))
	for s, name := range r.cfg.Selectors {
		series[s] = Series{Selector: name, Points: make([]Point, 0, len(points))}
	}

	start := time.Now()
	r.Log.Infof("starting %s sweep: %d points, %d trials/point, %d workers, selectors=%v",
		kind, len(points), r.cfg.Trials, r.cfg.workers(), r.cfg.Selectors)

	for i, p := range points {
		r.Log.Debugf("%s sweep point %d/%d (x=%d, lanes=%d, capacity=%d)",
			kind, i+1, len(points), p.X, p.Packing.Lanes, p.Packing.Capacity)
		overflows, err := r.runPoint(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("%s sweep at x=%d: %w", kind, p.X, err)
		}
		for s := range series {
			series[s].Points = append(series[s].Points, summarize(p.X, overflows[s]))
		}
	}

	r.Log.Infof("%s sweep complete in %s", kind, time.Since(start).Round(time.Millisecond))
	return series, nil
}

// runPoint returns overflow[selector][trial] for one sweep point.
// Every selector sees the same freshly generated batch within a trial.
func (r *Runner) runPoint(ctx context.Context, p sweepPoint) ([][]float64, error) {
	overflows := make([][]float64, len(r.cfg.Selectors))
	for s := range overflows {
		overflows[s] = make([]float64, r.cfg.Trials)
	}

	master := sim.NewSimulationKey(r.cfg.Seed)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.workers())

	for trial := 0; trial < r.cfg.Trials; trial++ {
		if gctx.Err() != nil {
			break
		}
		trial := trial
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results, err := r.runTrial(sim.TrialKey(master, p.X, trial), p)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			for s, v := range results {
				overflows[s][trial] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation observed before any goroutine failed leaves Wait nil.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return overflows, nil
}

// runTrial generates one batch and packs it under every configured selector.
func (r *Runner) runTrial(key sim.SimulationKey, p sweepPoint) ([]float64, error) {
	rng := sim.NewPartitionedRNG(key)
	gen, err := workload.NewGenerator(r.cfg.Batch, rng.ForSubsystem(sim.SubsystemInputs))
	if err != nil {
		return nil, err
	}
	items := gen.GenerateBatch()

	out := make([]float64, len(r.cfg.Selectors))
	for s, name := range r.cfg.Selectors {
		selector := sim.NewLaneSelector(name, rng.ForSubsystem(sim.SubsystemSelector))
		simulator, err := sim.NewSimulator(p.Packing, selector)
		if err != nil {
			return nil, err
		}
		var res sim.Result
		if p.Window > 0 {
			res, err = simulator.RunWindowed(items, p.Window)
		} else {
			res, err = simulator.Run(items)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[s] = float64(res.Overflow)
	}
	return out, nil
}
