package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ferry-sim/ferry-sim/sim/experiment"
)

// ExperimentFile is the on-disk layout of an experiment configuration.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ExperimentFile struct {
	experiment.Config `yaml:",inline"`
	LaneSweep         experiment.LaneSweep   `yaml:"lane_sweep"`
	WindowSweep       experiment.WindowSweep `yaml:"window_sweep"`
}

// DefaultExperimentFile returns the built-in defaults every layer starts from.
func DefaultExperimentFile() ExperimentFile {
	return ExperimentFile{
		Config:      experiment.DefaultConfig(),
		LaneSweep:   experiment.DefaultLaneSweep(),
		WindowSweep: experiment.DefaultWindowSweep(),
	}
}

// loadExperimentFile decodes path over exp. Keys absent from the file keep
// their current values; unknown keys are an error so typos are not ignored.
func loadExperimentFile(path string, exp *ExperimentFile) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading experiment file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(exp); err != nil {
		return fmt.Errorf("parsing experiment file %s: %w", path, err)
	}
	return nil
}
