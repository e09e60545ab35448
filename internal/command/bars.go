package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/plot"
)

var (
	barsPeriod  string
	barsOutfile string
)

var barsCmd = &cobra.Command{
	Use:   "bars",
	Short: "Bar chart of the global annual anomalies, colored by value",
	RunE:  runBars,
}

func init() {
	rootCmd.AddCommand(barsCmd)
	barsCmd.Flags().StringVarP(&barsPeriod, "period", "p", "1961-1990", "reference period: 1961-1990, 1850-1900, or 1880-1920")
	barsCmd.Flags().StringVarP(&barsOutfile, "outfile", "f", "HadCRUT5-bars.png", "output chart file")
}

func runBars(cmd *cobra.Command, _ []string) error {
	period, err := dataset.ParsePeriod(barsPeriod)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := rt.newPipeline(period, dataset.Annual, []dataset.Region{dataset.RegionGlobal})
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

	err = plot.Bars(plot.BarsConfig{
		Title:    "HadCRUT5: global average temperature anomalies",
		Subtitle: fmt.Sprintf("Relative to the %s reference period", period),
		Years:    years,
		Values:   mean,
		Outfile:  barsOutfile,
	})
	if err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	rt.metrics.ChartsRendered.WithLabelValues("bars").Inc()
	rt.logger.Info("chart written", "file", barsOutfile)
	return nil
}
