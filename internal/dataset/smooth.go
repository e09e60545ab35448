package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Smooth down-samples a series into means over consecutive non-overlapping
// chunks of chunkSize elements; the final chunk may be shorter. The returned
// axis takes the first timestamp of each chunk, so a smoothed point is
// plotted at the start of the window it averages. chunkSize 1 is the
// identity on both axis and series.
func Smooth(axis, series []float64, chunkSize int) ([]float64, []float64, error) {
	if chunkSize < 1 {
		return nil, nil, fmt.Errorf("%w: chunk size %d, must be at least 1", ErrConfig, chunkSize)
	}
	if len(axis) != len(series) {
		return nil, nil, fmt.Errorf("%w: axis length %d does not match series length %d",
			ErrConfig, len(axis), len(series))
	}
	if chunkSize == 1 {
		return axis, series, nil
	}

	chunks := (len(series) + chunkSize - 1) / chunkSize
	outAxis := make([]float64, chunks)
	outSeries := make([]float64, chunks)
	for i := 0; i < chunks; i++ {
		lo := i * chunkSize
		hi := min(lo+chunkSize, len(series))
		outAxis[i] = axis[lo]
		outSeries[i] = stat.Mean(series[lo:hi], nil)
	}
	return outAxis, outSeries, nil
}
