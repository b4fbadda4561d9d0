package experiment

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Point is the aggregated overflow of all trials at one sweep value.
type Point struct {
	X            int     `yaml:"x"`
	MeanOverflow float64 `yaml:"mean_overflow"`
	StdDev       float64 `yaml:"std_dev"` // sample standard deviation; 0 for a single trial
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
}

// summarize reduces per-trial overflows to a Point. overflows must be non-empty.
func summarize(x int, overflows []float64) Point {
	p := Point{
		X:   x,
		Min: floats.Min(overflows),
		Max: floats.Max(overflows),
	}
	if len(overflows) < 2 {
		p.MeanOverflow = overflows[0]
		return p
	}
	p.MeanOverflow, p.StdDev = stat.MeanStdDev(overflows, nil)
	return p
}
