package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ThresholdConfig describes the approach of one region's anomaly series to
// a threshold temperature.
type ThresholdConfig struct {
	Title     string
	YLabel    string
	Threshold float64
	Years     []float64
	Values    []float64
	Outfile   string
}

// Threshold renders a single anomaly curve against a dotted threshold line
// and saves it to cfg.Outfile.
func Threshold(cfg ThresholdConfig) error {
	if len(cfg.Years) != len(cfg.Values) || len(cfg.Values) == 0 {
		return fmt.Errorf("threshold chart needs equal, non-empty year and value slices")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "year"
	p.Y.Label.Text = cfg.YLabel

	xmin, xmax, err := axisRange(cfg.Years)
	if err != nil {
		return err
	}

	limit, err := horizontalLine(cfg.Threshold, xmin, xmax, dimGray)
	if err != nil {
		return err
	}
	p.Add(limit)

	zero, err := horizontalLine(0, xmin, xmax, lightGray)
	if err != nil {
		return err
	}
	p.Add(zero)

	pts, err := xyPoints(cfg.Years, cfg.Values)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = steelBlue
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	// Keep the threshold visible even while the series sits below it.
	p.Y.Max = cfg.Threshold + 0.5

	return p.Save(10*vg.Inch, 8*vg.Inch, cfg.Outfile)
}
