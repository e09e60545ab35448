package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrisan/HadCRUT5/internal/dataset"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5.0.1.0", cfg.DatasetVersion)
	assert.Equal(t, "https://www.metoffice.gov.uk", cfg.BaseURL)
	assert.Equal(t, "current", cfg.VersionPath)
	assert.Equal(t, ".", cfg.CacheDir)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HADCRUT5_DATASET_VERSION", "5.0.2.0")
	t.Setenv("HADCRUT5_BASE_URL", "https://mirror.example.org")
	t.Setenv("HADCRUT5_VERSION_PATH", "HadCRUT.5.0.2.0")
	t.Setenv("HADCRUT5_CACHE_DIR", "/var/cache/hadcrut5")
	t.Setenv("HADCRUT5_HTTP_TIMEOUT", "30s")
	t.Setenv("HADCRUT5_LOG_LEVEL", "debug")
	t.Setenv("HADCRUT5_LOG_FORMAT", "json")
	t.Setenv("HADCRUT5_METRICS_FILE", "/var/lib/node_exporter/hadcrut5.prom")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "5.0.2.0", cfg.DatasetVersion)
	assert.Equal(t, "https://mirror.example.org", cfg.BaseURL)
	assert.Equal(t, "HadCRUT.5.0.2.0", cfg.VersionPath)
	assert.Equal(t, "/var/cache/hadcrut5", cfg.CacheDir)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/var/lib/node_exporter/hadcrut5.prom", cfg.MetricsFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"dataset_version: 5.0.0.0\nhttp_timeout: 5s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5.0.0.0", cfg.DatasetVersion)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	// Unset keys keep their defaults.
	assert.Equal(t, "current", cfg.VersionPath)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty dataset version", "HADCRUT5_DATASET_VERSION", ""},
		{"empty base url", "HADCRUT5_BASE_URL", ""},
		{"zero timeout", "HADCRUT5_HTTP_TIMEOUT", "0s"},
		{"bad log format", "HADCRUT5_LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			require.Error(t, err)
			assert.ErrorIs(t, err, dataset.ErrConfig)
		})
	}
}

func TestSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := &Config{
		DatasetVersion: "5.0.1.0",
		BaseURL:        "https://www.metoffice.gov.uk",
		VersionPath:    "current",
		CacheDir:       ".",
		HTTPTimeout:    10 * time.Second,
		LogLevel:       "info",
		LogFormat:      "text",
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DatasetVersion, loaded.DatasetVersion)
	assert.Equal(t, cfg.HTTPTimeout, loaded.HTTPTimeout)
}
