package command

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrisan/HadCRUT5/internal/dataset"
)

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSelectedRegions(t *testing.T) {
	tests := []struct {
		name                       string
		global, northern, southern bool
		want                       []dataset.Region
	}{
		{
			name: "no flag selects all regions",
			want: []dataset.Region{dataset.RegionGlobal, dataset.RegionNorthern, dataset.RegionSouthern},
		},
		{
			name:   "global only",
			global: true,
			want:   []dataset.Region{dataset.RegionGlobal},
		},
		{
			name:     "both hemispheres",
			northern: true,
			southern: true,
			want:     []dataset.Region{dataset.RegionNorthern, dataset.RegionSouthern},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plotGlobal = tt.global
			plotNorthern = tt.northern
			plotSouthern = tt.southern
			t.Cleanup(func() { plotGlobal, plotNorthern, plotSouthern = false, false, false })

			assert.Equal(t, tt.want, selectedRegions())
		})
	}
}

func TestAnomalyNote(t *testing.T) {
	years := []float64{2022, 2023, 2024}
	values := []float64{1.1, 1.53, 1.32}

	note := anomalyNote(years, values)
	assert.Equal(t, "current anomaly (2024): +1.32°C, max: +1.53°C", note)

	assert.Empty(t, anomalyNote(nil, nil))
}

func TestTitleGranularity(t *testing.T) {
	assert.Equal(t, "Annual", titleGranularity(dataset.Annual))
	assert.Equal(t, "Monthly", titleGranularity(dataset.Monthly))
}

func TestConfigShow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HADCRUT5_CACHE_DIR", "/var/cache/hadcrut5")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "dataset_version: "+dataset.DefaultVersion)
	assert.Contains(t, out, "cache_dir: /var/cache/hadcrut5")
	assert.Contains(t, out, "http_timeout: 10s")
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration saved")

	b, err := os.ReadFile(filepath.Join(home, ".hadcrut5.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "dataset_version: "+dataset.DefaultVersion)
}

func TestFetch_DownloadsAllRegions(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte("netcdf payload"))
	}))
	defer srv.Close()

	cache := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HADCRUT5_BASE_URL", srv.URL)
	t.Setenv("HADCRUT5_CACHE_DIR", cache)

	_, err := execute(t, "fetch")
	require.NoError(t, err)
	assert.EqualValues(t, 3, requests.Load())

	for _, region := range []dataset.Region{
		dataset.RegionGlobal, dataset.RegionNorthern, dataset.RegionSouthern,
	} {
		name := dataset.Filename(dataset.DefaultVersion, region, dataset.Annual)
		assert.FileExists(t, filepath.Join(cache, name))
	}

	// A second run is served entirely from the cache.
	_, err = execute(t, "fetch")
	require.NoError(t, err)
	assert.EqualValues(t, 3, requests.Load())
}

func TestFetch_RejectsUnknownTimeSeries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "fetch", "--time-series", "decadal")
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrConfig)
}

func TestPlot_RejectsUnknownPeriod(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "plot", "--period", "1900-1950")
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrConfig)
}
