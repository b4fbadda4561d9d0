package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// parseFlags builds a flag set the way rootCmd composes one for a
// subcommand: persistent flags plus whatever register adds.
func parseFlags(t *testing.T, register func(*pflag.FlagSet), args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addSharedFlags(fs)
	register(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func laneSweepFlags(fs *pflag.FlagSet) {
	addTrialFlags(fs)
	addLaneSweepFlags(fs)
}

func windowSweepFlags(fs *pflag.FlagSet) {
	addTrialFlags(fs)
	addWindowSweepFlags(fs)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
