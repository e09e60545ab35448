package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Offset computes the scalar ("norm_temp") that re-bases a series to the
// given reference period. The mean series must be the Global one: the same
// offset is applied to every region so all series share one zero point.
//
// The window slices are expressed in time steps from the series start
// (1850-01-01), scaled by the granularity:
//
//	1850-1900  [0, 50*f)       the first 50 years
//	1880-1920  [30*f, 70*f+1)  years 1880..1920 inclusive, 41 years
//
// The inclusive upper edge of the second window is intentional. Slices are
// clamped to the series length, matching the tolerant slicing of the
// original analysis tooling.
func Offset(p Period, mean []float64, g Granularity) (float64, error) {
	f := g.StepsPerYear()

	switch p {
	case Period1961to1990:
		// The published files are already based on 1961-1990.
		return 0, nil
	case Period1850to1900:
		end := min(50*f, len(mean))
		if end == 0 {
			return 0, fmt.Errorf("%w: empty mean series", ErrFormat)
		}
		return stat.Mean(mean[:end], nil), nil
	case Period1880to1920:
		lo := 30 * f
		hi := min(70*f+1, len(mean))
		if lo >= len(mean) {
			return 0, fmt.Errorf("%w: series too short for period %s (%d steps)",
				ErrFormat, p, len(mean))
		}
		return stat.Mean(mean[lo:hi], nil), nil
	}
	return 0, fmt.Errorf("%w: unsupported reference period %s", ErrConfig, p)
}

// Apply subtracts offset from every element and returns a fresh slice; the
// input is never mutated.
func Apply(series []float64, offset float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v - offset
	}
	return out
}

// applyRounded is Apply followed by rounding to 8 decimal places. Only the
// mean series is rounded; the confidence bounds keep full precision.
func applyRounded(series []float64, offset float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = round8(v - offset)
	}
	return out
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
