package experiment

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSeries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, "[]"},
		{"single", []float64{3}, "[3.000000]"},
		{"several", []float64{1.5, 0, 1234.25}, "[1.500000,0.000000,1234.250000]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeries(tt.values))
		})
	}
}

func TestWriteSeries_OneLinePerSelector(t *testing.T) {
	series := []Series{
		{Selector: "first-fit", Points: []Point{{X: 1, MeanOverflow: 10}, {X: 2, MeanOverflow: 5}}},
		{Selector: "random-fit", Points: []Point{{X: 1, MeanOverflow: 12.5}, {X: 2, MeanOverflow: 0}}},
	}
	var buf bytes.Buffer

	require.NoError(t, WriteSeries(&buf, series))

	assert.Equal(t, "[10.000000,5.000000]\n[12.500000,0.000000]\n", buf.String())
}
