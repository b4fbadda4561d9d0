package experiment

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ferry-sim/ferry-sim/sim/workload"
)

// newQuietRunner builds a Runner whose log output is discarded.
func newQuietRunner(t *testing.T, cfg Config) *Runner {
	t.Helper()
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r.Log = logrus.NewEntry(logger)
	return r
}

// constantBatch is a spec whose batches are n items of exactly length.
func constantBatch(length, n int) workload.BatchSpec {
	return workload.BatchSpec{Bands: []workload.LengthBand{{Min: length, Max: length, Count: n}}}
}

// smallConfig is a cheap configuration over the default band shape.
func smallConfig(trials int) Config {
	cfg := DefaultConfig()
	cfg.Trials = trials
	cfg.Workers = 4
	return cfg
}
