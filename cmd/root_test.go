package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferry-sim/ferry-sim/sim"
	"github.com/ferry-sim/ferry-sim/sim/experiment"
)

func TestResolveSweep_DefaultsWithoutInput(t *testing.T) {
	fs := parseFlags(t, laneSweepFlags)

	opts, err := resolveSweep(fs)
	require.NoError(t, err)

	assert.Equal(t, DefaultExperimentFile(), opts.ExperimentFile)
	assert.Empty(t, opts.ReportPath)
}

// TestResolveSweep_Precedence verifies flags > env > file > defaults.
func TestResolveSweep_Precedence(t *testing.T) {
	path := writeTempFile(t, "exp.yaml", "trials: 10\nworkers: 2\nseed: 5\n")

	// GIVEN the file sets trials, workers and seed, the environment overrides
	// trials and workers, and a flag overrides trials again
	t.Setenv("FERRYSIM_TRIALS", "20")
	t.Setenv("FERRYSIM_WORKERS", "3")
	fs := parseFlags(t, laneSweepFlags, "--config", path, "--trials", "30")

	// WHEN resolved
	opts, err := resolveSweep(fs)
	require.NoError(t, err)

	// THEN each key takes its highest-precedence source
	assert.Equal(t, 30, opts.Trials, "flag beats env and file")
	assert.Equal(t, 3, opts.Workers, "env beats file")
	assert.Equal(t, int64(5), opts.Seed, "file beats default")
}

func TestResolveSweep_ConfigPathFromEnv(t *testing.T) {
	path := writeTempFile(t, "exp.yaml", "trials: 11\n")
	t.Setenv("FERRYSIM_CONFIG", path)

	opts, err := resolveSweep(parseFlags(t, laneSweepFlags))
	require.NoError(t, err)

	assert.Equal(t, 11, opts.Trials)
}

func TestResolveSweep_SelectorsFromFlagAndEnv(t *testing.T) {
	opts, err := resolveSweep(parseFlags(t, laneSweepFlags, "--selectors", "fullest-fit,first-fit"))
	require.NoError(t, err)
	assert.Equal(t, []string{sim.FullestFitName, sim.FirstFitName}, opts.Selectors)

	t.Setenv("FERRYSIM_SELECTORS", "random-fit, emptiest-fit")
	opts, err = resolveSweep(parseFlags(t, laneSweepFlags))
	require.NoError(t, err)
	assert.Equal(t, []string{sim.RandomFitName, sim.EmptiestFitName}, opts.Selectors)
}

func TestResolveSweep_DashedKeysMapToUnderscoredEnv(t *testing.T) {
	t.Setenv("FERRYSIM_MAX_LANES", "12")
	t.Setenv("FERRYSIM_CAPACITY_BUDGET", "6000")

	opts, err := resolveSweep(parseFlags(t, laneSweepFlags, "--min-lanes", "3"))
	require.NoError(t, err)

	assert.Equal(t, experiment.LaneSweep{MinLanes: 3, MaxLanes: 12, CapacityBudget: 6000}, opts.LaneSweep)
}

func TestResolveSweep_WindowFlags(t *testing.T) {
	fs := parseFlags(t, windowSweepFlags, "--lanes", "10", "--capacity", "900", "--max-window", "40", "--report", "out.yaml")

	opts, err := resolveSweep(fs)
	require.NoError(t, err)

	assert.Equal(t, experiment.WindowSweep{Lanes: 10, Capacity: 900, MinWindow: 1, MaxWindow: 40}, opts.WindowSweep)
	assert.Equal(t, "out.yaml", opts.ReportPath)
}

func TestResolveSweep_BadConfigFile(t *testing.T) {
	path := writeTempFile(t, "exp.yaml", "trails: 10\n")

	_, err := resolveSweep(parseFlags(t, laneSweepFlags, "--config", path))

	assert.Error(t, err)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sweep-lanes", "sweep-window", "run"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestSweepWindowCmd_RegisteredFlagsResolve(t *testing.T) {
	// GIVEN the registered sweep-window command parsing its own and inherited flags
	require.NoError(t, sweepWindowCmd.ParseFlags([]string{"--trials", "9", "--max-window", "20", "--report", "r.yaml"}))

	// WHEN resolved from that flag set
	opts, err := resolveSweep(sweepWindowCmd.Flags())
	require.NoError(t, err)

	// THEN every value arrives through the layered settings
	assert.Equal(t, 9, opts.Trials)
	assert.Equal(t, 20, opts.WindowSweep.MaxWindow)
	assert.Equal(t, "r.yaml", opts.ReportPath)
	assert.Equal(t, experiment.DefaultLaneSweep(), opts.LaneSweep)
}
