package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// rampSeries returns [0, 0.01, 0.02, ...] of length n, a convenient strictly
// increasing anomaly series.
func rampSeries(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i) * 0.01
	}
	return s
}

func TestOffset_NativePeriod(t *testing.T) {
	off, err := Offset(Period1961to1990, rampSeries(200), Annual)
	require.NoError(t, err)
	assert.Zero(t, off)
}

func TestOffset_1850to1900(t *testing.T) {
	t.Run("annual takes the first 50 elements", func(t *testing.T) {
		mean := rampSeries(200)
		off, err := Offset(Period1850to1900, mean, Annual)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(mean[:50], nil), off, 1e-12)
	})

	t.Run("monthly takes the first 600 elements", func(t *testing.T) {
		mean := rampSeries(2100)
		off, err := Offset(Period1850to1900, mean, Monthly)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(mean[:600], nil), off, 1e-12)
	})

	t.Run("short series clamps to available data", func(t *testing.T) {
		mean := []float64{0.0, 1.0, 2.0}
		off, err := Offset(Period1850to1900, mean, Annual)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, off, 1e-12)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := Offset(Period1850to1900, nil, Annual)
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestOffset_1880to1920(t *testing.T) {
	t.Run("annual takes indices 30 through 70 inclusive", func(t *testing.T) {
		mean := rampSeries(200)
		off, err := Offset(Period1880to1920, mean, Annual)
		require.NoError(t, err)
		// 41 calendar years: 1880..1920.
		assert.InDelta(t, stat.Mean(mean[30:71], nil), off, 1e-12)
	})

	t.Run("monthly takes indices 360 through 840 inclusive", func(t *testing.T) {
		mean := rampSeries(2100)
		off, err := Offset(Period1880to1920, mean, Monthly)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(mean[360:841], nil), off, 1e-12)
	})

	t.Run("series ending inside the window clamps", func(t *testing.T) {
		mean := rampSeries(40)
		off, err := Offset(Period1880to1920, mean, Annual)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(mean[30:40], nil), off, 1e-12)
	})

	t.Run("series ending before the window", func(t *testing.T) {
		_, err := Offset(Period1880to1920, rampSeries(20), Annual)
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestApply(t *testing.T) {
	in := []float64{1.5, -0.25, 0.0}
	out := Apply(in, 0.5)

	assert.Equal(t, []float64{1.0, -0.75, -0.5}, out)
	assert.Equal(t, []float64{1.5, -0.25, 0.0}, in, "input must not be mutated")
}

func TestApply_Linearity(t *testing.T) {
	mean := rampSeries(200)
	off, err := Offset(Period1850to1900, mean, Annual)
	require.NoError(t, err)

	normalized := Apply(mean, off)
	for i := range mean {
		assert.InDelta(t, mean[i], normalized[i]+off, 1e-8)
	}
}

func TestApplyRounded(t *testing.T) {
	out := applyRounded([]float64{0.123456789123}, 0)
	assert.Equal(t, []float64{0.12345679}, out)

	out = applyRounded([]float64{1.0}, 0.3)
	assert.Equal(t, []float64{0.7}, out)
}
