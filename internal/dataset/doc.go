// Package dataset models the HadCRUT5 global and hemispheric temperature
// anomaly time series.
//
// # Data Source
//
// The Met Office Hadley Centre publishes the HadCRUT5 analysis as NetCDF
// summary series, one file per region (global, northern_hemisphere,
// southern_hemisphere) and granularity (annual, monthly), under
// https://www.metoffice.gov.uk/hadobs/hadcrut5/. Each file carries three
// equal-length 1-D variables:
//
//	tas_mean   near-surface temperature anomaly in °C
//	tas_lower  lower bound of the 95% confidence interval
//	tas_upper  upper bound of the 95% confidence interval
//
// with one value per time step starting at 1850-01-01. Anomalies in the
// source files are expressed relative to the 1961-1990 reference period.
//
// # Reference Periods
//
// A series can be re-based to a different reference period by subtracting a
// single scalar offset, computed from the Global mean series:
//
//	1961-1990  native baseline, offset is exactly zero
//	1850-1900  mean of the first 50 years (the pre-industrial convention
//	           used by the IPCC)
//	1880-1920  mean of calendar years 1880..1920 inclusive, a 41-year window
//
// The offset is always computed from the Global region and applied to every
// region, so that all plotted series share one zero point.
//
// # Pipeline
//
// Pipeline orchestrates the strict download → load → normalize order over a
// Fetcher (remote file cache) and a Reader (NetCDF container access), and
// exposes the normalized triples, the derived year axis, and the dataset
// provenance string to presentation code.
package dataset
