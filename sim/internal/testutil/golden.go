// Package testutil provides shared test infrastructure for the ferry-sim
// packages: the golden packing dataset and assertion helpers used across
// sim/ and sim/experiment/ test packages.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden_packings.yaml.
type GoldenDataset struct {
	Cases []GoldenCase `yaml:"cases"`
}

// GoldenCase is one hand-checked packing run and its exact outcome.
type GoldenCase struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	Lanes    int    `yaml:"lanes"`
	Capacity int    `yaml:"capacity"`
	Window   int    `yaml:"window"` // 0 = streaming
	Items    []int  `yaml:"items"`

	Overflow  int   `yaml:"overflow"`
	LaneFills []int `yaml:"lane_fills"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_packings.yaml")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}
	defer func() { _ = f.Close() }()

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
