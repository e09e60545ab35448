// Package command implements the hadcrut5 CLI: chart subcommands over the
// HadCRUT5 download/load/normalize pipeline.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/madrisan/HadCRUT5/internal/adapter/archive"
	"github.com/madrisan/HadCRUT5/internal/adapter/netcdf"
	"github.com/madrisan/HadCRUT5/internal/config"
	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/observability"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hadcrut5",
	Short: "Charts of the HadCRUT5 temperature anomaly datasets",
	Long: `hadcrut5 downloads the Met Office HadCRUT5 summary series, re-bases the
anomalies to a chosen reference period, and renders line, bar, warming-stripe,
and threshold charts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and is the only entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hadcrut5.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "make the operation more talkative")
}

// runtime bundles the wired dependencies a subcommand needs for one run.
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	fetcher *archive.Client
	reader  *netcdf.Reader
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	logger := observability.NewLogger(level, cfg.LogFormat)
	metrics := observability.NewMetrics()
	return &runtime{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		fetcher: archive.NewClient(cfg.BaseURL, cfg.VersionPath, cfg.CacheDir, cfg.HTTPTimeout, clockwork.NewRealClock(), logger, metrics),
		reader:  netcdf.NewReader(cfg.CacheDir, logger, metrics),
	}, nil
}

// close flushes the run's metrics to the configured textfile, if any.
func (rt *runtime) close() {
	if rt.cfg.MetricsFile == "" {
		return
	}
	if err := rt.metrics.WriteTextfile(rt.cfg.MetricsFile); err != nil {
		rt.logger.Warn("write metrics textfile", "path", rt.cfg.MetricsFile, "error", err)
	}
}

// newPipeline builds a pipeline from the runtime and the subcommand's
// region/period/granularity selection.
func (rt *runtime) newPipeline(period dataset.Period, granularity dataset.Granularity, regions []dataset.Region) (*dataset.Pipeline, error) {
	return dataset.New(dataset.Options{
		Period:      period,
		Granularity: granularity,
		Regions:     regions,
		Version:     rt.cfg.DatasetVersion,
	}, rt.fetcher, rt.reader, rt.logger)
}

// runPipeline drives a pipeline through download, load, and normalize, and
// reports the reference-period offset.
func runPipeline(cmd *cobra.Command, rt *runtime, p *dataset.Pipeline) error {
	if err := p.Download(cmd.Context()); err != nil {
		return err
	}
	if err := p.Load(); err != nil {
		return err
	}
	if err := p.Normalize(); err != nil {
		return err
	}

	offset, err := p.Offset()
	if err != nil {
		return err
	}
	if offset != 0 {
		rt.logger.Info(
			fmt.Sprintf("the mean anomaly in %s is about %.6f°C", p.Period(), offset))
	}
	return nil
}
