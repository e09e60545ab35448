package plot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BarsConfig describes the Global anomaly bar chart.
type BarsConfig struct {
	Title    string
	Subtitle string
	Years    []float64
	Values   []float64
	Outfile  string
}

// barPaletteSize is the number of discrete colors values are binned into.
const barPaletteSize = 64

// Bars renders one bar per year, colored from cold blue to warm red by
// anomaly value, and saves it to cfg.Outfile.
func Bars(cfg BarsConfig) error {
	if len(cfg.Years) != len(cfg.Values) || len(cfg.Values) == 0 {
		return fmt.Errorf("bar chart needs equal, non-empty year and value slices")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.Subtitle
	p.Y.Label.Text = "Temperature Anomaly in °C"

	colors := palette.Rainbow(barPaletteSize, palette.Blue, palette.Red, 1, 1, 1).Colors()

	// The color scale is anchored at -1°C like the original chart, so the
	// coldest decades stay deep blue regardless of the series minimum.
	vmin := -1.0
	vmax := floats.Max(cfg.Values)

	for i, v := range cfg.Values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(3))
		if err != nil {
			return fmt.Errorf("bar for year %.0f: %w", cfg.Years[i], err)
		}
		bar.XMin = cfg.Years[i]
		bar.Color = colors[colorIndex(v, vmin, vmax, barPaletteSize)]
		bar.LineStyle.Width = 0
		p.Add(bar)
	}

	return p.Save(10*vg.Inch, 8*vg.Inch, cfg.Outfile)
}

// colorIndex maps a value in [vmin, vmax] to a palette bin, clamping
// out-of-range values to the extreme bins.
func colorIndex(v, vmin, vmax float64, n int) int {
	if vmax <= vmin {
		return 0
	}
	idx := int((v - vmin) / (vmax - vmin) * float64(n-1))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
