package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/plot"
)

var (
	closeThreshold float64
	closeSmoother  int
	closeOutfile   string
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Chart of the global anomalies closing in on a threshold",
	Long: `Plots the global annual anomalies relative to the 1850-1900 pre-industrial
period against a temperature threshold, 1.5°C by default.`,
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
	closeCmd.Flags().Float64VarP(&closeThreshold, "threshold", "T", 1.5, "threshold temperature in °C")
	closeCmd.Flags().IntVarP(&closeSmoother, "smoother", "m", 1, "average the series over N consecutive points")
	closeCmd.Flags().StringVarP(&closeOutfile, "outfile", "f", "HadCRUT5-close.png", "output chart file")
}

func runClose(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := rt.newPipeline(dataset.Period1850to1900, dataset.Annual, []dataset.Region{dataset.RegionGlobal})
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
	_, mean, _, err := p.Normalized(dataset.RegionGlobal)
	if err != nil {
		return err
	}
	if closeSmoother > 1 {
		if years, mean, err = dataset.Smooth(years, mean, closeSmoother); err != nil {
			return err
		}
	}

	err = plot.Threshold(plot.ThresholdConfig{
		Title:     fmt.Sprintf("HadCRUT5: closing in on %.1f°C", closeThreshold),
		YLabel:    "Temperature Anomalies relative to 1850-1900 in °C",
		Threshold: closeThreshold,
		Years:     years,
		Values:    mean,
		Outfile:   closeOutfile,
	})
	if err != nil {
		return fmt.Errorf("render threshold chart: %w", err)
	}
	rt.metrics.ChartsRendered.WithLabelValues("close").Inc()
	rt.logger.Info("chart written", "file", closeOutfile)
	return nil
}
