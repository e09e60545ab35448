package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrisan/HadCRUT5/internal/dataset"
	"github.com/madrisan/HadCRUT5/internal/plot"
)

var (
	stripeRegion   string
	stripeOutfile  string
	stripeNoLabels bool
)

var stripeCmd = &cobra.Command{
	Use:   "stripe",
	Short: "Warming-stripes chart of one region's annual anomalies",
	RunE:  runStripe,
}

func init() {
	rootCmd.AddCommand(stripeCmd)
	stripeCmd.Flags().StringVarP(&stripeRegion, "region", "r", "global", "region: global, northern, or southern")
	stripeCmd.Flags().StringVarP(&stripeOutfile, "outfile", "f", "HadCRUT5-stripe.png", "output chart file")
	stripeCmd.Flags().BoolVar(&stripeNoLabels, "no-labels", false, "hide titles and axes")
}

func runStripe(cmd *cobra.Command, _ []string) error {
	region, err := dataset.ParseRegion(stripeRegion)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	// Warming stripes are drawn against pre-industrial levels.
	p, err := rt.newPipeline(dataset.Period1850to1900, dataset.Annual, []dataset.Region{region})
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
	_, mean, _, err := p.Normalized(region)
	if err != nil {
		return err
	}

	err = plot.Stripe(plot.StripeConfig{
		Title: fmt.Sprintf("%s temperature change (%.0f-%.0f)",
			region, years[0], years[len(years)-1]),
		Years:   years,
		Values:  mean,
		Labels:  !stripeNoLabels,
		Outfile: stripeOutfile,
	})
	if err != nil {
		return fmt.Errorf("render stripe chart: %w", err)
	}
	rt.metrics.ChartsRendered.WithLabelValues("stripe").Inc()
	rt.logger.Info("chart written", "file", stripeOutfile)
	return nil
}
