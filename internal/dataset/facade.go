package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Fetcher ensures a named dataset file is present in the local cache,
// downloading it on demand.
type Fetcher interface {
	EnsureLocal(ctx context.Context, filename string) error
}

// Reader parses a local dataset file into a Raw series.
type Reader interface {
	Read(filename string) (Raw, error)
}

// Options selects what a Pipeline downloads and how it normalizes.
// Invalid values are rejected by New before any network or file access.
type Options struct {
	Period      Period
	Granularity Granularity

	// Regions are the output regions. The Global region is always
	// downloaded and loaded internally, because the normalization offset,
	// the year axis, and the history string all derive from it.
	Regions []Region

	// Version overrides the HadCRUT5 analysis version; empty means
	// DefaultVersion.
	Version string
}

// pipeline state advances monotonically; operations guard the minimum state
// they require and re-running an earlier operation is permitted (a second
// Download is an idempotent cache check).
type pipelineState int

const (
	stateConfigured pipelineState = iota
	stateDownloaded
	stateLoaded
	stateNormalized
)

// Pipeline orchestrates the download → load → normalize sequence for the
// configured regions and exposes the results to presentation code. It owns
// its datasets; nothing is shared across instances.
type Pipeline struct {
	opts    Options
	version string
	fetcher Fetcher
	reader  Reader
	logger  *slog.Logger

	state      pipelineState
	raw        map[Region]Raw
	normalized map[Region]Normalized
	offset     float64
}

// New validates the options and builds a Pipeline. Unsupported period,
// granularity, or an empty or duplicated region selection fail with
// ErrConfig immediately.
func New(opts Options, fetcher Fetcher, reader Reader, logger *slog.Logger) (*Pipeline, error) {
	if !opts.Period.valid() {
		return nil, fmt.Errorf("%w: unsupported reference period %q", ErrConfig, opts.Period)
	}
	if !opts.Granularity.valid() {
		return nil, fmt.Errorf("%w: unsupported time series type %q", ErrConfig, opts.Granularity)
	}
	if len(opts.Regions) == 0 {
		return nil, fmt.Errorf("%w: at least one region must be enabled", ErrConfig)
	}
	seen := make(map[Region]bool, len(opts.Regions))
	for _, r := range opts.Regions {
		if !r.valid() {
			return nil, fmt.Errorf("%w: unsupported region %q", ErrConfig, r)
		}
		if seen[r] {
			return nil, fmt.Errorf("%w: region %q selected twice", ErrConfig, r)
		}
		seen[r] = true
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	return &Pipeline{
		opts:       opts,
		version:    version,
		fetcher:    fetcher,
		reader:     reader,
		logger:     logger,
		raw:        make(map[Region]Raw),
		normalized: make(map[Region]Normalized),
	}, nil
}

// loadRegions returns the regions to download and load: the enabled output
// regions plus, always, the Global reference region.
func (p *Pipeline) loadRegions() []Region {
	regions := slices.Clone(p.opts.Regions)
	if !slices.Contains(regions, RegionGlobal) {
		regions = append(regions, RegionGlobal)
	}
	return regions
}

// Download ensures every required dataset file exists in the local cache.
// A file already present causes no network traffic.
func (p *Pipeline) Download(ctx context.Context) error {
	for _, r := range p.loadRegions() {
		filename := Filename(p.version, r, p.opts.Granularity)
		if err := p.fetcher.EnsureLocal(ctx, filename); err != nil {
			return fmt.Errorf("download %s dataset: %w", r, err)
		}
	}
	p.advance(stateDownloaded)
	return nil
}

// Load parses every required dataset file. All regions must expose series of
// identical length: they share one time axis.
func (p *Pipeline) Load() error {
	if p.state < stateDownloaded {
		return fmt.Errorf("%w: Load called before Download", ErrState)
	}

	for _, r := range p.loadRegions() {
		filename := Filename(p.version, r, p.opts.Granularity)
		raw, err := p.reader.Read(filename)
		if err != nil {
			return fmt.Errorf("load %s dataset: %w", r, err)
		}
		p.raw[r] = raw
		p.logger.Debug("dataset loaded",
			"region", r.String(),
			"file", filename,
			"steps", raw.Len(),
		)
	}

	want := p.raw[RegionGlobal].Len()
	for r, raw := range p.raw {
		if raw.Len() != want {
			return fmt.Errorf("%w: %s series has %d steps, Global has %d",
				ErrFormat, r, raw.Len(), want)
		}
	}

	p.advance(stateLoaded)
	return nil
}

// Normalize computes the single reference-period offset from the Global mean
// series and applies it to every enabled region, producing fresh normalized
// triples. The mean is rounded to 8 decimal places, the bounds are not.
func (p *Pipeline) Normalize() error {
	if p.state < stateLoaded {
		return fmt.Errorf("%w: Normalize called before Load", ErrState)
	}

	offset, err := Offset(p.opts.Period, p.raw[RegionGlobal].Mean, p.opts.Granularity)
	if err != nil {
		return fmt.Errorf("normalize to %s: %w", p.opts.Period, err)
	}

	for _, r := range p.opts.Regions {
		raw := p.raw[r]
		p.normalized[r] = Normalized{
			Mean:  applyRounded(raw.Mean, offset),
			Lower: Apply(raw.Lower, offset),
			Upper: Apply(raw.Upper, offset),
		}
	}

	p.offset = offset
	p.logger.Debug("datasets normalized",
		"period", p.opts.Period.String(),
		"offset", offset,
	)
	p.advance(stateNormalized)
	return nil
}

// Years derives the time axis 1850 + i*step from the Global series length.
// Valid once Load has run.
func (p *Pipeline) Years() ([]float64, error) {
	if p.state < stateLoaded {
		return nil, fmt.Errorf("%w: Years requires a loaded dataset", ErrState)
	}
	step := p.opts.Granularity.Step()
	years := make([]float64, p.raw[RegionGlobal].Len())
	for i := range years {
		years[i] = StartYear + float64(i)*step
	}
	return years, nil
}

// Regions returns the enabled output regions in their configured order.
func (p *Pipeline) Regions() []Region {
	return slices.Clone(p.opts.Regions)
}

// Normalized returns the (lower, mean, upper) triple for an enabled region.
// Valid once Normalize has run.
func (p *Pipeline) Normalized(r Region) (lower, mean, upper []float64, err error) {
	if p.state < stateNormalized {
		return nil, nil, nil, fmt.Errorf("%w: Normalized requires a normalized dataset", ErrState)
	}
	n, ok := p.normalized[r]
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: region %q is not enabled", ErrConfig, r)
	}
	return n.Lower, n.Mean, n.Upper, nil
}

// History returns the provenance string of the Global reference region.
// Valid once Load has run.
func (p *Pipeline) History() (string, error) {
	if p.state < stateLoaded {
		return "", fmt.Errorf("%w: History requires a loaded dataset", ErrState)
	}
	return p.raw[RegionGlobal].History(), nil
}

// Offset returns the normalization scalar subtracted from every series.
// Valid once Normalize has run; zero for the native period.
func (p *Pipeline) Offset() (float64, error) {
	if p.state < stateNormalized {
		return 0, fmt.Errorf("%w: Offset requires a normalized dataset", ErrState)
	}
	return p.offset, nil
}

// Period echoes the configured reference period.
func (p *Pipeline) Period() Period {
	return p.opts.Period
}

// Granularity echoes the configured sampling cadence.
func (p *Pipeline) Granularity() Granularity {
	return p.opts.Granularity
}

func (p *Pipeline) advance(s pipelineState) {
	if p.state < s {
		p.state = s
	}
}
