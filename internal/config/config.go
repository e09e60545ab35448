// Package config loads the toolkit settings from defaults, an optional YAML
// config file, and HADCRUT5_-prefixed environment variables, in increasing
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/madrisan/HadCRUT5/internal/dataset"
)

// Config holds all toolkit settings.
type Config struct {
	// DatasetVersion is the HadCRUT5 analysis version embedded in the
	// dataset filenames.
	DatasetVersion string `mapstructure:"dataset_version" yaml:"dataset_version"`

	// BaseURL is the archive host, VersionPath the version segment of the
	// archive layout (usually "current").
	BaseURL     string `mapstructure:"base_url" yaml:"base_url"`
	VersionPath string `mapstructure:"version_path" yaml:"version_path"`

	// CacheDir is where downloaded dataset files live.
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout" yaml:"http_timeout"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// MetricsFile, when set, receives a Prometheus textfile dump at the end
	// of a run (node-exporter textfile collector format).
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// Load reads configuration. cfgFile forces a specific config file; when
// empty, $HOME/.hadcrut5.yaml and ./.hadcrut5.yaml are tried and may be
// absent.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HADCRUT5")
	v.AutomaticEnv()
	// An explicitly empty env var must override, not fall back, so that
	// validation can report it.
	v.AllowEmptyEnv(true)

	v.SetDefault("dataset_version", dataset.DefaultVersion)
	v.SetDefault("base_url", "https://www.metoffice.gov.uk")
	v.SetDefault("version_path", "current")
	v.SetDefault("cache_dir", ".")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("metrics_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(".hadcrut5")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
		// A missing default config file is fine.
		_ = v.ReadInConfig()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatasetVersion == "" {
		return nil, fmt.Errorf("%w: dataset_version is required", dataset.ErrConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base_url is required", dataset.ErrConfig)
	}
	if cfg.VersionPath == "" {
		return nil, fmt.Errorf("%w: version_path is required", dataset.ErrConfig)
	}
	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("%w: cache_dir is required", dataset.ErrConfig)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("%w: http_timeout must be positive", dataset.ErrConfig)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%w: log_format must be \"text\" or \"json\"", dataset.ErrConfig)
	}

	return &cfg, nil
}

// Save writes the configuration as YAML. An empty path targets
// $HOME/.hadcrut5.yaml.
func Save(c *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".hadcrut5.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
