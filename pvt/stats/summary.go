// Package stats summarizes a sampled PropertyTable.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pvt-sim/pvt-sim/pvt"
)

// PropertyStats aggregates one property across an ensemble.
type PropertyStats struct {
	Property string  `json:"property"`
	Unit     string  `json:"unit"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	P10      float64 `json:"p10"`
	P50      float64 `json:"p50"`
	P90      float64 `json:"p90"`
}

// EnsembleSummary aggregates a PropertyTable.
type EnsembleSummary struct {
	Seed           int64           `json:"seed"`
	Samples        int             `json:"samples"`
	Saturated      int             `json:"saturated"`
	Undersaturated int             `json:"undersaturated"`
	PressureMin    float64         `json:"pressure_min"`
	PressureMax    float64         `json:"pressure_max"`
	Pressure       PropertyStats   `json:"pressure"`
	Properties     []PropertyStats `json:"properties"` // pvt.AllProperties order
}

// Summarize computes per-property statistics. Safe for nil or empty tables
// (returns zero-value statistics).
func Summarize(t *pvt.PropertyTable) *EnsembleSummary {
	s := &EnsembleSummary{}
	if t == nil {
		return s
	}
	s.Seed = t.Seed
	s.Samples = t.Len()
	s.Saturated, s.Undersaturated = t.CountByRegime()
	s.PressureMin, s.PressureMax = t.Range.Min, t.Range.Max

	s.Pressure = describe("pressure", "psia", t.Pressures())
	for _, prop := range pvt.AllProperties {
		s.Properties = append(s.Properties, describe(prop.String(), prop.Unit(), t.Column(prop)))
	}
	return s
}

// Lookup returns the statistics for the named property.
func (s *EnsembleSummary) Lookup(name string) (PropertyStats, bool) {
	for _, ps := range s.Properties {
		if ps.Property == name {
			return ps, true
		}
	}
	return PropertyStats{}, false
}

func describe(name, unit string, values []float64) PropertyStats {
	ps := PropertyStats{Property: name, Unit: unit}
	if len(values) == 0 {
		return ps
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	ps.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		ps.StdDev = stat.StdDev(sorted, nil)
	}
	ps.Min = floats.Min(sorted)
	ps.Max = floats.Max(sorted)
	ps.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	ps.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	ps.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return ps
}
