package pvt

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SamplingConfig sets the pressure range and parallelism of an ensemble run.
//
//	Min = max(AtmosphericPressure, LowerFraction·pb)
//	Max = max(UpperMargin·pb, pr)
type SamplingConfig struct {
	AtmosphericPressure float64 `yaml:"atmospheric_pressure"` // psia
	LowerFraction       float64 `yaml:"lower_fraction"`
	UpperMargin         float64 `yaml:"upper_margin"`
	Workers             int     `yaml:"workers"` // 0 = GOMAXPROCS
}

// DefaultSamplingConfig returns the bounds used by the spreadsheet
// controller: [max(14.7, 0.1·pb), max(1.2·pb, pr)).
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		AtmosphericPressure: 14.7,
		LowerFraction:       0.1,
		UpperMargin:         1.2,
		Workers:             0,
	}
}

// Validate checks the sampling parameters. Returns a *ConfigError.
func (c SamplingConfig) Validate() error {
	if err := validateFinitePositive("sampling.atmospheric_pressure", c.AtmosphericPressure); err != nil {
		return err
	}
	if err := validateFinitePositive("sampling.lower_fraction", c.LowerFraction); err != nil {
		return err
	}
	if err := validateFinitePositive("sampling.upper_margin", c.UpperMargin); err != nil {
		return err
	}
	if c.LowerFraction >= c.UpperMargin {
		return &ConfigError{Field: "sampling.lower_fraction",
			Reason: fmt.Sprintf("must be below upper_margin (%g), got %g", c.UpperMargin, c.LowerFraction)}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "sampling.workers", Reason: fmt.Sprintf("must be non-negative, got %d", c.Workers)}
	}
	return nil
}

func (c SamplingConfig) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// PressureRangeFor computes the sampling interval for input. An empty or
// inverted interval is a *ConfigError.
func PressureRangeFor(input FluidSampleInput, cfg SamplingConfig) (PressureRange, error) {
	r := PressureRange{
		Min: math.Max(cfg.AtmosphericPressure, cfg.LowerFraction*input.Pb),
		Max: math.Max(cfg.UpperMargin*input.Pb, input.Pr),
	}
	if !(r.Min < r.Max) {
		return PressureRange{}, &ConfigError{Field: "sampling",
			Reason: fmt.Sprintf("pressure range [%g, %g) is empty", r.Min, r.Max)}
	}
	return r, nil
}

// PropertySampler draws random pressures and evaluates a PropertyTable.
// Run consumes the sampler's RNG; a reproducible rerun needs a new
// sampler with a fresh SamplerRNG built from the same seed.
type PropertySampler struct {
	dispatcher *RegimeDispatcher
	cfg        SamplingConfig
	rng        *SamplerRNG
	pRange     PressureRange
}

// NewPropertySampler validates cfg and computes the pressure range.
func NewPropertySampler(d *RegimeDispatcher, cfg SamplingConfig, rng *SamplerRNG) (*PropertySampler, error) {
	if d == nil {
		return nil, &ConfigError{Field: "dispatcher", Reason: "must not be nil"}
	}
	if rng == nil {
		return nil, &ConfigError{Field: "rng", Reason: "must not be nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r, err := PressureRangeFor(d.Input(), cfg)
	if err != nil {
		return nil, err
	}
	return &PropertySampler{dispatcher: d, cfg: cfg, rng: rng, pRange: r}, nil
}

// Range returns the pressure interval draws come from.
func (s *PropertySampler) Range() PressureRange {
	return s.pRange
}

// DrawPressures draws n pressures uniformly from Range, in order, from the
// sampler's RNG.
func (s *PropertySampler) DrawPressures(n int) []float64 {
	span := s.pRange.Max - s.pRange.Min
	out := make([]float64, n)
	for i := range out {
		out[i] = s.pRange.Min + s.rng.Float64()*span
	}
	return out
}

// Run draws SampleCount pressures, evaluates the deterministic point at pr
// and every draw, and returns the table. Draws are materialized first on
// the calling goroutine; evaluation fans out over Workers goroutines and
// writes each result at its draw index.
//
// Any failure aborts the whole run: the returned table is nil and the error
// identifies the sample (as *SampleError), property and pressure.
func (s *PropertySampler) Run(ctx context.Context) (*PropertyTable, error) {
	in := s.dispatcher.Input()
	pressures := s.DrawPressures(in.SampleCount)
	logrus.Debugf("sampling %d pressures in [%.1f, %.1f) psia with %d workers (seed %d)",
		len(pressures), s.pRange.Min, s.pRange.Max, s.cfg.workers(), s.rng.Key())

	det, err := s.dispatcher.Evaluate(in.Pr)
	if err != nil {
		return nil, fmt.Errorf("deterministic point: %w", err)
	}

	samples := make([]PropertyPoint, len(pressures))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers())
	for i, p := range pressures {
		if gctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pt, err := s.dispatcher.Evaluate(p)
			if err != nil {
				return &SampleError{Index: i, Pressure: p, Err: err}
			}
			samples[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// g.Wait is nil when ctx was cancelled before any goroutine started.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := &PropertyTable{
		Samples:       samples,
		Deterministic: det,
		BubblePoint:   s.dispatcher.Reference(),
		Range:         s.pRange,
		Seed:          int64(s.rng.Key()),
	}
	sat, unsat := table.CountByRegime()
	logrus.Infof("sampled %d points (%d saturated, %d undersaturated)", table.Len(), sat, unsat)
	return table, nil
}

// RunEnsemble builds a dispatcher, an owned RNG seeded from input.Seed and
// a sampler, then runs it.
func RunEnsemble(ctx context.Context, input FluidSampleInput, bundle CorrelationBundle, cfg SamplingConfig) (*PropertyTable, error) {
	d, err := NewRegimeDispatcher(input, bundle)
	if err != nil {
		return nil, err
	}
	s, err := NewPropertySampler(d, cfg, NewSamplerRNG(NewRunKey(input.Seed)))
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}
