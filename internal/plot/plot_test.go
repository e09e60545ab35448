package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries(n int) Series {
	years := make([]float64, n)
	values := make([]float64, n)
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range years {
		years[i] = float64(1850 + i)
		values[i] = float64(i) * 0.01
		lower[i] = values[i] - 0.1
		upper[i] = values[i] + 0.1
	}
	return Series{Label: "Global", Years: years, Values: values, Lower: lower, Upper: upper}
}

func assertRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestLine_RendersPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "line.png")
	err := Line(LineConfig{
		Title:      "HadCRUT5: land and sea temperature anomalies relative to 1961-1990",
		YLabel:     "Annual Temperature Anomalies in °C",
		History:    "Data set produced by Met Office",
		Annotation: "current global anomaly (2024): +1.53°C, max: +1.53°C",
		Series:     []Series{testSeries(150)},
		Outfile:    out,
	})
	require.NoError(t, err)
	assertRendered(t, out)
}

func TestLine_NoSeries(t *testing.T) {
	err := Line(LineConfig{Outfile: "unused.png"})
	assert.Error(t, err)
}

func TestBars_RendersPNG(t *testing.T) {
	s := testSeries(150)
	out := filepath.Join(t.TempDir(), "bars.png")
	err := Bars(BarsConfig{
		Title:    "Global average temperature difference",
		Subtitle: "Compared to 1850-1900 pre-industrial levels",
		Years:    s.Years,
		Values:   s.Values,
		Outfile:  out,
	})
	require.NoError(t, err)
	assertRendered(t, out)
}

func TestStripe_RendersPNG(t *testing.T) {
	s := testSeries(150)
	for _, labels := range []bool{true, false} {
		out := filepath.Join(t.TempDir(), "stripe.png")
		err := Stripe(StripeConfig{
			Title:   "Global temperature change (1850-1999)",
			Years:   s.Years,
			Values:  s.Values,
			Labels:  labels,
			Outfile: out,
		})
		require.NoError(t, err)
		assertRendered(t, out)
	}
}

func TestThreshold_RendersPNG(t *testing.T) {
	s := testSeries(150)
	out := filepath.Join(t.TempDir(), "close.png")
	err := Threshold(ThresholdConfig{
		Title:     "HadCRUT5: Closing in to 1.5°C",
		YLabel:    "Temperature Anomalies relative to 1850-1900",
		Threshold: 1.5,
		Years:     s.Years,
		Values:    s.Values,
		Outfile:   out,
	})
	require.NoError(t, err)
	assertRendered(t, out)
}

func TestColorIndex(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"minimum", -1, 0},
		{"below minimum clamps", -2, 0},
		{"maximum", 1, barPaletteSize - 1},
		{"above maximum clamps", 2, barPaletteSize - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, colorIndex(tt.v, -1, 1, barPaletteSize))
		})
	}
}

func TestStripeGrid(t *testing.T) {
	g := stripeGrid{years: []float64{1850, 1851}, values: []float64{0.1, 0.2}}

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 1, r)
	assert.Equal(t, 0.2, g.Z(1, 0))
	assert.Equal(t, 1850.0, g.X(0))
	assert.Zero(t, g.Y(0))
}
