package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// LineConfig describes a multi-region anomaly line chart.
type LineConfig struct {
	Title  string
	YLabel string

	// History is the dataset provenance string, drawn inside the chart.
	History string

	// Annotation, when non-empty, is drawn at the bottom right (current and
	// maximum anomaly note).
	Annotation string

	Series  []Series
	Outfile string
}

// Line renders a multi-series anomaly chart with optional confidence bands
// and a dotted zero line, and saves it to cfg.Outfile.
func Line(cfg LineConfig) error {
	if len(cfg.Series) == 0 {
		return fmt.Errorf("line chart needs at least one series")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "year"
	p.Y.Label.Text = cfg.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	xmin, xmax, err := axisRange(cfg.Series[0].Years)
	if err != nil {
		return err
	}

	// Bands go in first so every curve draws on top of them.
	for _, s := range cfg.Series {
		if s.Lower == nil || s.Upper == nil {
			continue
		}
		poly, err := bandPolygon(s)
		if err != nil {
			return fmt.Errorf("confidence band for %s: %w", s.Label, err)
		}
		p.Add(poly)
	}

	zero, err := horizontalLine(0, xmin, xmax, dimGray)
	if err != nil {
		return err
	}
	p.Add(zero)

	for i, s := range cfg.Series {
		pts, err := xyPoints(s.Years, s.Values)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if err := addNotes(p, cfg, xmin, xmax); err != nil {
		return err
	}

	return p.Save(10*vg.Inch, 8*vg.Inch, cfg.Outfile)
}

// addNotes places the history string near the top left and the anomaly
// annotation near the bottom right of the data area.
func addNotes(p *plot.Plot, cfg LineConfig, xmin, xmax float64) error {
	ymin, ymax := seriesExtent(cfg.Series)

	var xys plotter.XYs
	var texts []string
	if cfg.History != "" {
		xys = append(xys, plotter.XY{X: xmin, Y: ymax})
		texts = append(texts, cfg.History)
	}
	if cfg.Annotation != "" {
		xys = append(xys, plotter.XY{X: xmin + 0.55*(xmax-xmin), Y: ymin})
		texts = append(texts, cfg.Annotation)
	}
	if len(xys) == 0 {
		return nil
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

// seriesExtent returns the y range spanned by all curves and bands.
func seriesExtent(series []Series) (float64, float64) {
	ymin, ymax := series[0].Values[0], series[0].Values[0]
	scan := func(vals []float64) {
		for _, v := range vals {
			if v < ymin {
				ymin = v
			}
			if v > ymax {
				ymax = v
			}
		}
	}
	for _, s := range series {
		scan(s.Values)
		scan(s.Lower)
		scan(s.Upper)
	}
	return ymin, ymax
}
