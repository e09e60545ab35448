// Package plot renders the HadCRUT5 anomaly charts (line, bars, warming
// stripes, threshold approach) to image files with gonum/plot.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one labelled anomaly curve, optionally with a confidence band.
type Series struct {
	Label  string
	Years  []float64
	Values []float64

	// Lower/Upper, when both set, draw a shaded band behind the curve.
	Lower []float64
	Upper []float64
}

var (
	lightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	dimGray   = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

func xyPoints(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("axis length %d does not match series length %d", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

// bandPolygon builds the shaded uncertainty region between the lower and
// upper bounds: the upper curve forward, then the lower curve reversed.
func bandPolygon(s Series) (*plotter.Polygon, error) {
	if len(s.Lower) != len(s.Years) || len(s.Upper) != len(s.Years) {
		return nil, fmt.Errorf("confidence bounds do not match the year axis")
	}
	pts := make(plotter.XYs, 0, 2*len(s.Years))
	for i := range s.Years {
		pts = append(pts, plotter.XY{X: s.Years[i], Y: s.Upper[i]})
	}
	for i := len(s.Years) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: s.Years[i], Y: s.Lower[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = lightGray
	poly.LineStyle.Width = 0
	return poly, nil
}

// horizontalLine draws a dotted reference line at y across [xmin, xmax].
func horizontalLine(y, xmin, xmax float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}
	return line, nil
}

// axisRange returns the min and max of a slice, guarding empty input.
func axisRange(xs []float64) (float64, float64, error) {
	if len(xs) == 0 {
		return 0, 0, fmt.Errorf("empty axis")
	}
	return floats.Min(xs), floats.Max(xs), nil
}
