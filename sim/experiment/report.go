package experiment

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Report is the machine-readable record of a finished sweep.
type Report struct {
	Sweep       SweepKind    `yaml:"sweep"`
	Config      Config       `yaml:"config"`
	LaneSweep   *LaneSweep   `yaml:"lane_sweep,omitempty"`
	WindowSweep *WindowSweep `yaml:"window_sweep,omitempty"`
	Series      []Series     `yaml:"series"`
}

// WriteReport encodes rep as YAML.
func WriteReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// SaveReport writes rep to path, replacing any existing file.
func SaveReport(path string, rep Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := WriteReport(f, rep); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
