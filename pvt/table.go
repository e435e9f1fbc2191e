package pvt

import "sort"

// PressureRange is the closed-open interval [Min, Max) pressures are drawn from.
type PressureRange struct {
	Min float64 // psia
	Max float64 // psia
}

// Contains reports whether p lies in [Min, Max).
func (r PressureRange) Contains(p float64) bool {
	return p >= r.Min && p < r.Max
}

// PropertyTable is the output of one sampling run. It is created fresh per
// run and never appended to afterwards.
type PropertyTable struct {
	Samples       []PropertyPoint // draw order
	Deterministic PropertyPoint   // evaluated at the reservoir pressure
	BubblePoint   BubblePointReference
	Range         PressureRange
	Seed          int64
}

// Len returns the number of ensemble samples.
func (t *PropertyTable) Len() int {
	return len(t.Samples)
}

// Pressures returns the sampled pressures in draw order.
func (t *PropertyTable) Pressures() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Pressure
	}
	return out
}

// Column returns one property across all samples, in draw order.
func (t *PropertyTable) Column(prop Property) []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Value(prop)
	}
	return out
}

// SortedByPressure returns a copy of the samples in ascending pressure
// order, for sinks that draw trend lines. Samples itself is not modified.
func (t *PropertyTable) SortedByPressure() []PropertyPoint {
	out := make([]PropertyPoint, len(t.Samples))
	copy(out, t.Samples)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pressure < out[j].Pressure })
	return out
}

// CountByRegime returns how many samples fell on each side of pb.
func (t *PropertyTable) CountByRegime() (saturated, undersaturated int) {
	for _, s := range t.Samples {
		if s.Regime == Undersaturated {
			undersaturated++
		} else {
			saturated++
		}
	}
	return saturated, undersaturated
}
