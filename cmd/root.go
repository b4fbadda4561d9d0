package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ferry-sim/ferry-sim/sim"
	"github.com/ferry-sim/ferry-sim/sim/experiment"
)

// logLevel is the only flag read directly; every other value is layered
// through settings so the environment and experiment file can supply it.
var logLevel string

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ferry-sim",
	Short: "Monte-Carlo simulator for greedy ferry lane packing",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// sweepLanesCmd measures streaming-mode overflow against the number of lanes
var sweepLanesCmd = &cobra.Command{
	Use:   "sweep-lanes",
	Short: "Average overflow per selector while the lane count varies under a fixed capacity budget",
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(cmd, experiment.SweepLanes)
	},
}

// sweepWindowCmd measures windowed-sort overflow against the window size
var sweepWindowCmd = &cobra.Command{
	Use:   "sweep-window",
	Short: "Average overflow per selector while the sort-window size varies",
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(cmd, experiment.SweepWindow)
	},
}

// sweepOptions is the fully layered input of a sweep command.
type sweepOptions struct {
	ExperimentFile
	ReportPath string
}

// resolveSweep layers defaults, the experiment file, the environment and
// changed flags, in that order.
func resolveSweep(fs *pflag.FlagSet) (sweepOptions, error) {
	opts := sweepOptions{ExperimentFile: DefaultExperimentFile()}
	s, err := newSettings(fs)
	if err != nil {
		return opts, err
	}

	var path string
	s.stringVar("config", &path)
	if path != "" {
		if err := loadExperimentFile(path, &opts.ExperimentFile); err != nil {
			return opts, err
		}
	}

	s.int64Var("seed", &opts.Seed)
	s.intVar("trials", &opts.Trials)
	s.intVar("workers", &opts.Workers)
	s.stringsVar("selectors", &opts.Selectors)

	s.intVar("min-lanes", &opts.LaneSweep.MinLanes)
	s.intVar("max-lanes", &opts.LaneSweep.MaxLanes)
	s.intVar("capacity-budget", &opts.LaneSweep.CapacityBudget)

	s.intVar("lanes", &opts.WindowSweep.Lanes)
	s.intVar("capacity", &opts.WindowSweep.Capacity)
	s.intVar("min-window", &opts.WindowSweep.MinWindow)
	s.intVar("max-window", &opts.WindowSweep.MaxWindow)

	s.stringVar("report", &opts.ReportPath)
	return opts, nil
}

func runSweep(cmd *cobra.Command, kind experiment.SweepKind) {
	opts, err := resolveSweep(cmd.Flags())
	if err != nil {
		logrus.Fatalf("unable to resolve configuration; %v", err)
	}
	runner, err := experiment.NewRunner(opts.Config)
	if err != nil {
		logrus.Fatalf("Invalid experiment: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep := experiment.Report{Sweep: kind, Config: runner.Config()}
	var series []experiment.Series
	switch kind {
	case experiment.SweepLanes:
		rep.LaneSweep = &opts.LaneSweep
		series, err = runner.SweepLanes(ctx, opts.LaneSweep)
	case experiment.SweepWindow:
		rep.WindowSweep = &opts.WindowSweep
		series, err = runner.SweepWindow(ctx, opts.WindowSweep)
	}
	if err != nil {
		logrus.Fatalf("Sweep failed: %v", err)
	}
	rep.Series = series

	if err := experiment.WriteSeries(os.Stdout, series); err != nil {
		logrus.Fatalf("Writing series: %v", err)
	}
	if opts.ReportPath != "" {
		if err := experiment.SaveReport(opts.ReportPath, rep); err != nil {
			logrus.Fatalf("Saving report: %v", err)
		}
		logrus.Infof("Report written to %s", opts.ReportPath)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSharedFlags registers the persistent flags every subcommand inherits.
func addSharedFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Experiment YAML file (trials, seed, selectors, batch, sweeps)")
	fs.String("report", "", "Write a YAML report of every sweep point to this path")
}

// addTrialFlags registers the flags shared by every command that generates batches.
func addTrialFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", experiment.DefaultSeed, "Master seed for batch generation and random-fit")
	fs.Int("trials", experiment.DefaultTrials, "Trials per sweep point")
	fs.Int("workers", 0, "Concurrent trials (0 = GOMAXPROCS)")
	fs.StringSlice("selectors", sim.LaneSelectorNames(), "Comma-separated lane selectors to compare")
}

func addLaneSweepFlags(fs *pflag.FlagSet) {
	def := experiment.DefaultLaneSweep()
	fs.Int("min-lanes", def.MinLanes, "First lane count in the sweep")
	fs.Int("max-lanes", def.MaxLanes, "Last lane count in the sweep")
	fs.Int("capacity-budget", def.CapacityBudget, "Total capacity; each lane gets budget/lanes")
}

func addWindowSweepFlags(fs *pflag.FlagSet) {
	def := experiment.DefaultWindowSweep()
	fs.Int("lanes", def.Lanes, "Number of lanes")
	fs.Int("capacity", def.Capacity, "Per-lane capacity")
	fs.Int("min-window", def.MinWindow, "First sort-window size in the sweep")
	fs.Int("max-window", def.MaxWindow, "Last sort-window size in the sweep")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	addSharedFlags(rootCmd.PersistentFlags())

	addTrialFlags(sweepLanesCmd.Flags())
	addLaneSweepFlags(sweepLanesCmd.Flags())

	addTrialFlags(sweepWindowCmd.Flags())
	addWindowSweepFlags(sweepWindowCmd.Flags())

	addRunFlags(runCmd.Flags())

	rootCmd.AddCommand(sweepLanesCmd)
	rootCmd.AddCommand(sweepWindowCmd)
	rootCmd.AddCommand(runCmd)
}
