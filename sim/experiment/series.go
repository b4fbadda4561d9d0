package experiment

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Series is one selector's aggregated overflow, ordered by sweep value.
type Series struct {
	Selector string  `yaml:"selector"`
	Points   []Point `yaml:"points"`
}

// Means returns the mean overflow of every point, in sweep order.
func (s Series) Means() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.MeanOverflow
	}
	return out
}

// FormatSeries renders values as a bracketed, comma-separated list with no
// whitespace, e.g. "[1.500000,0.000000]".
func FormatSeries(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// WriteSeries writes one FormatSeries line of mean overflow per series.
func WriteSeries(w io.Writer, series []Series) error {
	for _, s := range series {
		if _, err := fmt.Fprintln(w, FormatSeries(s.Means())); err != nil {
			return err
		}
	}
	return nil
}
