package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/plot"
)

var (
	plotPeriod     string
	plotTimeSeries string
	plotOutfile    string
	plotSmoother   int
	plotAnnotate   int
	plotGlobal     bool
	plotNorthern   bool
	plotSouthern   bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Line chart of the temperature anomalies, with confidence bands",
	RunE:  runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotPeriod, "period", "p", "1961-1990", "reference period: 1961-1990, 1850-1900, or 1880-1920")
	plotCmd.Flags().StringVarP(&plotTimeSeries, "time-series", "t", "annual", "time series type: annual or monthly")
	plotCmd.Flags().StringVarP(&plotOutfile, "outfile", "f", "HadCRUT5-anomalies.png", "output chart file")
	plotCmd.Flags().IntVarP(&plotSmoother, "smoother", "m", 1, "average the series over N consecutive points")
	plotCmd.Flags().IntVarP(&plotAnnotate, "annotate", "a", 1, "annotation level: 0 none, 1 provenance, 2 also current and max anomaly")
	plotCmd.Flags().BoolVar(&plotGlobal, "global", false, "plot the global anomalies")
	plotCmd.Flags().BoolVar(&plotNorthern, "northern", false, "plot the northern hemisphere anomalies")
	plotCmd.Flags().BoolVar(&plotSouthern, "southern", false, "plot the southern hemisphere anomalies")
}

// selectedRegions maps the region flags to the pipeline selection; with no
// flag set all three regions are plotted.
func selectedRegions() []dataset.Region {
	var regions []dataset.Region
	if plotGlobal {
		regions = append(regions, dataset.RegionGlobal)
	}
	if plotNorthern {
		regions = append(regions, dataset.RegionNorthern)
	}
	if plotSouthern {
		regions = append(regions, dataset.RegionSouthern)
	}
	if len(regions) == 0 {
		regions = []dataset.Region{dataset.RegionGlobal, dataset.RegionNorthern, dataset.RegionSouthern}
	}
	return regions
}

func runPlot(cmd *cobra.Command, _ []string) error {
	period, err := dataset.ParsePeriod(plotPeriod)
	if err != nil {
		return err
	}
	granularity, err := dataset.ParseGranularity(plotTimeSeries)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := rt.newPipeline(period, granularity, selectedRegions())
	if err != nil {
		return err
	}
	if err := runPipeline(cmd, rt, p); err != nil {
		return err
	}

	years, err := p.Years()
	if err != nil {
		return err
	}

	var series []plot.Series
	for _, r := range p.Regions() {
		lower, mean, upper, err := p.Normalized(r)
		if err != nil {
			return err
		}
		s := plot.Series{Label: r.String(), Years: years, Values: mean}
		if plotSmoother > 1 {
			// A smoothed curve stands on its own; the bands stay raw and
			// would just clutter it.
			s.Years, s.Values, err = dataset.Smooth(years, mean, plotSmoother)
			if err != nil {
				return err
			}
		} else {
			s.Lower = lower
			s.Upper = upper
		}
		series = append(series, s)
	}

	cfg := plot.LineConfig{
		Title:   fmt.Sprintf("HadCRUT5: land and sea temperature anomalies relative to %s", period),
		YLabel:  fmt.Sprintf("%s Temperature Anomalies in °C", titleGranularity(granularity)),
		Series:  series,
		Outfile: plotOutfile,
	}
	if plotAnnotate >= 1 {
		if cfg.History, err = p.History(); err != nil {
			return err
		}
	}
	if plotAnnotate >= 2 {
		_, mean, _, err := p.Normalized(dataset.RegionGlobal)
		if err == nil {
			cfg.Annotation = anomalyNote(years, mean)
		}
	}

	if err := plot.Line(cfg); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	rt.metrics.ChartsRendered.WithLabelValues("plot").Inc()
	rt.logger.Info("chart written", "file", plotOutfile)
	return nil
}

func titleGranularity(g dataset.Granularity) string {
	if g == dataset.Monthly {
		return "Monthly"
	}
	return "Annual"
}

// anomalyNote summarizes the most recent and the maximum anomaly of a series.
func anomalyNote(years, values []float64) string {
	if len(values) == 0 {
		return ""
	}
	return fmt.Sprintf("current anomaly (%.0f): %+.2f°C, max: %+.2f°C",
		years[len(years)-1], values[len(values)-1], floats.Max(values))
}
