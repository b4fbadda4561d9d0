package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ferry-sim/ferry-sim/sim"
	"github.com/ferry-sim/ferry-sim/sim/experiment"
	"github.com/ferry-sim/ferry-sim/sim/trace"
	"github.com/ferry-sim/ferry-sim/sim/workload"
)

// runCmd packs one batch and prints the resulting lane assignment
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pack a single batch and print the lanes and overflow",
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := resolveRun(cmd.Flags())
		if err != nil {
			logrus.Fatalf("unable to resolve configuration; %v", err)
		}

		pt, res, err := executeRun(opts)
		if err != nil {
			logrus.Fatalf("Packing failed: %v", err)
		}
		printRun(os.Stdout, opts, pt, res)
	},
}

// runOptions is the fully layered input of the run command.
type runOptions struct {
	Packing  sim.PackingConfig
	Items    []int
	Selector string
	Window   int // 0 = streaming
	Seed     int64
	Trace    trace.TraceLevel
}

// resolveRun builds the run input. A problem file supplies items, lanes
// and capacity; otherwise one batch is generated from the experiment
// file's batch spec and packed on its window_sweep lanes and capacity.
// Changed flags and the environment override both.
func resolveRun(fs *pflag.FlagSet) (runOptions, error) {
	sweep, err := resolveSweep(fs)
	if err != nil {
		return runOptions{}, err
	}
	s, err := newSettings(fs)
	if err != nil {
		return runOptions{}, err
	}

	opts := runOptions{
		Packing: sim.PackingConfig{
			Lanes:    sweep.WindowSweep.Lanes,
			Capacity: sweep.WindowSweep.Capacity,
		},
		Selector: sim.FirstFitName,
		Seed:     sweep.Seed,
		Trace:    trace.TraceLevelNone,
	}

	var path string
	s.stringVar("problem", &path)
	if path != "" {
		p, err := workload.LoadProblem(path)
		if err != nil {
			return opts, err
		}
		opts.Packing = sim.PackingConfig{Lanes: p.Lanes, Capacity: p.Capacity}
		opts.Items = p.Items
	} else {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
		gen, err := workload.NewGenerator(sweep.Batch, rng.ForSubsystem(sim.SubsystemInputs))
		if err != nil {
			return opts, err
		}
		opts.Items = gen.GenerateBatch()
	}

	fromFile := opts.Packing
	s.intVar("lanes", &opts.Packing.Lanes)
	s.intVar("capacity", &opts.Packing.Capacity)
	if path != "" && opts.Packing != fromFile {
		logrus.Warnf("Overriding problem file %s: lanes %d -> %d, capacity %d -> %d",
			path, fromFile.Lanes, opts.Packing.Lanes, fromFile.Capacity, opts.Packing.Capacity)
	}
	s.stringVar("selector", &opts.Selector)
	s.intVar("window", &opts.Window)
	var level string
	s.stringVar("trace", &level)
	if level != "" {
		opts.Trace = trace.TraceLevel(level)
	}

	if err := opts.Packing.Validate(); err != nil {
		return opts, err
	}
	if !sim.IsValidLaneSelector(opts.Selector) {
		return opts, fmt.Errorf("%w: unknown selector %q (valid: %v)", sim.ErrInvalidConfig, opts.Selector, sim.LaneSelectorNames())
	}
	if opts.Window < 0 {
		return opts, fmt.Errorf("%w: window must be non-negative, got %d", sim.ErrInvalidConfig, opts.Window)
	}
	if !trace.IsValidTraceLevel(string(opts.Trace)) {
		return opts, fmt.Errorf("%w: unknown trace level %q", sim.ErrInvalidConfig, opts.Trace)
	}
	return opts, nil
}

// executeRun packs opts.Items once, always recording placements so the
// solution can be printed.
func executeRun(opts runOptions) (*trace.PackingTrace, sim.Result, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	selector := sim.NewLaneSelector(opts.Selector, rng.ForSubsystem(sim.SubsystemSelector))
	s, err := sim.NewSimulator(opts.Packing, selector)
	if err != nil {
		return nil, sim.Result{}, err
	}
	s.Trace = trace.NewPackingTrace(trace.TraceLevelPlacements)

	logrus.Infof("Packing %d items into %d lanes of %d with %s (window=%d)",
		len(opts.Items), opts.Packing.Lanes, opts.Packing.Capacity, opts.Selector, opts.Window)

	var res sim.Result
	if opts.Window > 0 {
		res, err = s.RunWindowed(opts.Items, opts.Window)
	} else {
		res, err = s.Run(opts.Items)
	}
	if err != nil {
		return nil, sim.Result{}, err
	}
	return s.Trace, res, nil
}

// printRun writes the problem header, the optional placement log and the solution.
func printRun(w io.Writer, opts runOptions, pt *trace.PackingTrace, res sim.Result) {
	printProblem(w, workload.Problem{
		Capacity: opts.Packing.Capacity,
		Lanes:    opts.Packing.Lanes,
		Items:    opts.Items,
	})
	if opts.Trace == trace.TraceLevelPlacements {
		writePlacements(w, pt)
	}
	printSolution(w, trace.Summarize(pt), res)
}

// printProblem writes the vehicle count, total length, lanes, capacity and lengths.
func printProblem(w io.Writer, p workload.Problem) {
	_, _ = fmt.Fprintf(w, "Number of vehicles           = %d\n", len(p.Items))
	_, _ = fmt.Fprintf(w, "Total length of vehicles     = %d cm\n", p.TotalLength())
	_, _ = fmt.Fprintf(w, "Number of lanes              = %d\n", p.Lanes)
	_, _ = fmt.Fprintf(w, "Capacity per lane            = %d cm\n", p.Capacity)
	_, _ = fmt.Fprintf(w, "List of all vehicle lengths  = %v\n", p.Items)
}

// printSolution writes every lane's total and contents, then the overflow.
func printSolution(w io.Writer, summary *trace.TraceSummary, res sim.Result) {
	for lane, fill := range res.LaneFills {
		items := summary.LaneItems[lane]
		if items == nil {
			items = []int{}
		}
		_, _ = fmt.Fprintf(w, "Ln %d\t%d cm\t%v\n", lane, fill, items)
	}
	overflow := summary.OverflowItems
	if overflow == nil {
		overflow = []int{}
	}
	_, _ = fmt.Fprintf(w, "Overflow = %v\n", overflow)
	_, _ = fmt.Fprintf(w, "Total length in overflow = %d cm\n", res.Overflow)
	logrus.Infof("%d of %d lanes used, %d items overflowed", summary.UsedLanes, len(res.LaneFills), summary.OverflowCount)
}

// writePlacements writes one line per placement decision.
func writePlacements(w io.Writer, pt *trace.PackingTrace) {
	for _, p := range pt.Placements {
		if !p.Placed() {
			_, _ = fmt.Fprintf(w, "#%d window=%d len=%d -> overflow\n", p.Seq, p.Window, p.ItemLength)
			continue
		}
		_, _ = fmt.Fprintf(w, "#%d window=%d len=%d -> lane %d (fill %d)\n", p.Seq, p.Window, p.ItemLength, p.Lane, p.FillBefore)
	}
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", experiment.DefaultSeed, "Seed for batch generation and random-fit")
	fs.String("problem", "", "Problem file: capacity, lane count, then one length per line")
	fs.Int("lanes", experiment.DefaultWindowLanes, "Number of lanes (overrides the problem file and window_sweep.lanes)")
	fs.Int("capacity", experiment.DefaultWindowCapacity, "Per-lane capacity (overrides the problem file and window_sweep.capacity)")
	fs.String("selector", sim.FirstFitName, fmt.Sprintf("Lane selector %v", sim.LaneSelectorNames()))
	fs.Int("window", 0, "Sort-window size (0 = streaming, no reordering)")
	fs.String("trace", string(trace.TraceLevelNone), "Trace level (none, placements)")
}
