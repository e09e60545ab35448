// Package netcdf adapts the go-native-netcdf container reader to the
// dataset pipeline: one summary-series file in, one dataset.Raw out.
package netcdf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/observability"
)

// seriesVariables are the three 1-D variables every summary-series file
// must provide.
var seriesVariables = [3]string{"tas_mean", "tas_lower", "tas_upper"}

// Reader parses HadCRUT5 summary-series files from the cache directory.
// It implements dataset.Reader.
type Reader struct {
	cacheDir string
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewReader creates a Reader over the given cache directory.
func NewReader(cacheDir string, logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{
		cacheDir: cacheDir,
		logger:   logger,
		metrics:  metrics,
	}
}

// Read opens filename as a NetCDF container and extracts the global
// attribute map, the dimension set, and the three series variables. Any
// missing file, unparseable container, or absent variable wraps
// dataset.ErrFormat.
func (r *Reader) Read(filename string) (dataset.Raw, error) {
	path := filepath.Join(r.cacheDir, filename)
	if _, err := os.Stat(path); err != nil {
		return dataset.Raw{}, fmt.Errorf("%w: %s not found in cache", dataset.ErrFormat, filename)
	}

	group, err := netcdf.Open(path)
	if err != nil {
		return dataset.Raw{}, fmt.Errorf("%w: open %s: %v", dataset.ErrFormat, filename, err)
	}
	defer group.Close()

	raw := dataset.Raw{
		Metadata: readAttributes(group.Attributes()),
	}

	var dims []string
	for i, name := range seriesVariables {
		series, varDims, err := readSeries(group, name)
		if err != nil {
			return dataset.Raw{}, fmt.Errorf("read %s from %s: %w", name, filename, err)
		}
		switch i {
		case 0:
			raw.Mean = series
		case 1:
			raw.Lower = series
		case 2:
			raw.Upper = series
		}
		for _, d := range varDims {
			if !slices.Contains(dims, d) {
				dims = append(dims, d)
			}
		}
	}
	raw.Dimensions = dims

	if len(raw.Lower) != len(raw.Mean) || len(raw.Upper) != len(raw.Mean) {
		return dataset.Raw{}, fmt.Errorf(
			"%w: %s series lengths differ (mean %d, lower %d, upper %d)",
			dataset.ErrFormat, filename, len(raw.Mean), len(raw.Lower), len(raw.Upper))
	}

	r.metrics.DatasetsLoaded.Inc()
	r.logger.Debug("dataset file parsed",
		"file", filename,
		"steps", raw.Len(),
		"dimensions", raw.Dimensions,
	)
	return raw, nil
}

// readAttributes stringifies the container's global attributes. The values
// are free-form (strings, numbers, arrays); the pipeline only ever consumes
// them as display text.
func readAttributes(attrs api.AttributeMap) map[string]string {
	meta := make(map[string]string, len(attrs.Keys()))
	for _, key := range attrs.Keys() {
		if val, ok := attrs.Get(key); ok {
			meta[key] = fmt.Sprint(val)
		}
	}
	return meta
}

// readSeries extracts a named 1-D numeric variable as float64, accepting
// either float32 or float64 storage.
func readSeries(group api.Group, name string) ([]float64, []string, error) {
	v, err := group.GetVariable(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: variable %s missing: %v", dataset.ErrFormat, name, err)
	}

	switch vals := v.Values.(type) {
	case []float64:
		return slices.Clone(vals), v.Dimensions, nil
	case []float32:
		out := make([]float64, len(vals))
		for i, f := range vals {
			out[i] = float64(f)
		}
		return out, v.Dimensions, nil
	default:
		return nil, nil, fmt.Errorf("%w: variable %s has unexpected type %T",
			dataset.ErrFormat, name, v.Values)
	}
}
