package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// StripeConfig describes a warming-stripes chart: one colored column per
// year, no curve.
type StripeConfig struct {
	Title   string
	Years   []float64
	Values  []float64
	Labels  bool // when false, titles and axes are hidden
	Outfile string
}

// stripeColors is the classic warming-stripes scale: the 8 most saturated
// colors of the colorbrewer 9-blues and 9-reds, cold to warm.
var stripeColors = []color.Color{
	color.RGBA{0x08, 0x30, 0x6b, 0xff},
	color.RGBA{0x08, 0x51, 0x9c, 0xff},
	color.RGBA{0x21, 0x71, 0xb5, 0xff},
	color.RGBA{0x42, 0x92, 0xc6, 0xff},
	color.RGBA{0x6b, 0xae, 0xd6, 0xff},
	color.RGBA{0x9e, 0xca, 0xe1, 0xff},
	color.RGBA{0xc6, 0xdb, 0xef, 0xff},
	color.RGBA{0xde, 0xeb, 0xf7, 0xff},
	color.RGBA{0xfe, 0xe0, 0xd2, 0xff},
	color.RGBA{0xfc, 0xbb, 0xa1, 0xff},
	color.RGBA{0xfc, 0x92, 0x72, 0xff},
	color.RGBA{0xfb, 0x6a, 0x4a, 0xff},
	color.RGBA{0xef, 0x3b, 0x2c, 0xff},
	color.RGBA{0xcb, 0x18, 0x1d, 0xff},
	color.RGBA{0xa5, 0x0f, 0x15, 0xff},
	color.RGBA{0x67, 0x00, 0x0d, 0xff},
}

// stripePalette satisfies palette.Palette over the fixed stripe colors.
type stripePalette struct{}

func (stripePalette) Colors() []color.Color { return stripeColors }

// stripeGrid presents the anomaly series as a single-row heat map grid.
type stripeGrid struct {
	years  []float64
	values []float64
}

func (g stripeGrid) Dims() (int, int)   { return len(g.years), 1 }
func (g stripeGrid) Z(c, _ int) float64 { return g.values[c] }
func (g stripeGrid) X(c int) float64    { return g.years[c] }
func (g stripeGrid) Y(_ int) float64    { return 0 }

// Stripe renders a warming-stripes chart and saves it to cfg.Outfile.
func Stripe(cfg StripeConfig) error {
	if len(cfg.Years) != len(cfg.Values) || len(cfg.Values) == 0 {
		return fmt.Errorf("stripe chart needs equal, non-empty year and value slices")
	}

	p := plot.New()
	if cfg.Labels {
		p.Title.Text = cfg.Title
		p.X.Label.Text = "year"
	} else {
		p.HideAxes()
	}
	p.Y.Tick.Length = 0
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	heat := plotter.NewHeatMap(stripeGrid{years: cfg.Years, values: cfg.Values}, stripePalette{})
	p.Add(heat)

	return p.Save(10*vg.Inch, 4*vg.Inch, cfg.Outfile)
}
