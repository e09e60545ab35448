package dataset

import (
	"fmt"
)

// DefaultVersion is the HadCRUT5 analysis version the filenames are built
// from when the configuration does not override it.
const DefaultVersion = "5.0.1.0"

// StartYear is the first year of every HadCRUT5 summary series.
const StartYear = 1850

// Region identifies one of the three published summary series.
type Region int

const (
	RegionGlobal Region = iota
	RegionNorthern
	RegionSouthern
)

// String returns the human-readable region name used in chart legends.
func (r Region) String() string {
	switch r {
	case RegionGlobal:
		return "Global"
	case RegionNorthern:
		return "Northern Hemisphere"
	case RegionSouthern:
		return "Southern Hemisphere"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// tag returns the region component of the upstream filename.
func (r Region) tag() string {
	switch r {
	case RegionGlobal:
		return "global"
	case RegionNorthern:
		return "northern_hemisphere"
	case RegionSouthern:
		return "southern_hemisphere"
	}
	return ""
}

func (r Region) valid() bool {
	return r == RegionGlobal || r == RegionNorthern || r == RegionSouthern
}

// ParseRegion converts a CLI region selector into a Region.
func ParseRegion(s string) (Region, error) {
	switch s {
	case "global":
		return RegionGlobal, nil
	case "northern":
		return RegionNorthern, nil
	case "southern":
		return RegionSouthern, nil
	}
	return 0, fmt.Errorf("%w: unsupported region %q", ErrConfig, s)
}

// Granularity is the sampling cadence of a summary series.
type Granularity int

const (
	Annual Granularity = iota
	Monthly
)

// String returns the granularity component of the upstream filename.
func (g Granularity) String() string {
	switch g {
	case Annual:
		return "annual"
	case Monthly:
		return "monthly"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

func (g Granularity) valid() bool {
	return g == Annual || g == Monthly
}

// StepsPerYear returns the number of samples per calendar year.
func (g Granularity) StepsPerYear() int {
	if g == Monthly {
		return 12
	}
	return 1
}

// Step returns the year-axis increment between adjacent samples.
func (g Granularity) Step() float64 {
	return 1.0 / float64(g.StepsPerYear())
}

// ParseGranularity converts a CLI time-series selector into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "annual":
		return Annual, nil
	case "monthly":
		return Monthly, nil
	}
	return 0, fmt.Errorf("%w: unsupported time series type %q", ErrConfig, s)
}

// Period is the reference period anomalies are expressed against.
type Period int

const (
	// Period1961to1990 is the native baseline of the published files.
	Period1961to1990 Period = iota
	Period1850to1900
	Period1880to1920
)

func (p Period) String() string {
	switch p {
	case Period1961to1990:
		return "1961-1990"
	case Period1850to1900:
		return "1850-1900"
	case Period1880to1920:
		return "1880-1920"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

func (p Period) valid() bool {
	return p == Period1961to1990 || p == Period1850to1900 || p == Period1880to1920
}

// ParsePeriod converts a CLI period selector into a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "1961-1990":
		return Period1961to1990, nil
	case "1850-1900":
		return Period1850to1900, nil
	case "1880-1920":
		return Period1880to1920, nil
	}
	return 0, fmt.Errorf("%w: unsupported reference period %q", ErrConfig, s)
}

// Filename builds the upstream summary-series filename for a region and
// granularity, e.g.
// "HadCRUT.5.0.1.0.analysis.summary_series.global.annual.nc".
func Filename(version string, r Region, g Granularity) string {
	return fmt.Sprintf("HadCRUT.%s.analysis.summary_series.%s.%s.nc", version, r.tag(), g)
}

// Raw is one region's series exactly as read from the NetCDF container.
type Raw struct {
	// Metadata holds the file's global attributes, stringified. The
	// "history" attribute carries the provenance line shown on charts.
	Metadata map[string]string

	// Dimensions is the set of dimension names referenced by the series
	// variables, e.g. "time" and "bnds".
	Dimensions []string

	Mean  []float64
	Lower []float64
	Upper []float64
}

// Len returns the number of time steps in the series.
func (r Raw) Len() int {
	return len(r.Mean)
}

// History returns the provenance string recorded by the upstream analysis.
func (r Raw) History() string {
	return r.Metadata["history"]
}

// Normalized is one region's series after re-basing to a reference period.
// The mean is rounded to 8 decimal places; the confidence bounds are kept at
// full precision.
type Normalized struct {
	Mean  []float64
	Lower []float64
	Upper []float64
}
