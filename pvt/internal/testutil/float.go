// Package testutil provides shared test infrastructure for the pvt packages:
// the reference black-oil fixture and float assertion helpers.
package testutil

import (
	"math"
	"testing"
)

// Reference black oil (38.982 API, γg 0.65) with the separator conditions
// and stock-tank gravity assumed by the spreadsheet controller.
const (
	RefPb           = 3970.0
	RefRsb          = 1124.0
	RefAPI          = 38.982
	RefGasSG        = 0.65
	RefTankOilSG    = 0.82
	RefPr           = 4409.0
	RefTemperatureF = 140.0
	RefSeparatorP   = 100.0
	RefSeparatorT   = 120.0
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertFinitePositive fails unless v is a finite number greater than zero.
func AssertFinitePositive(t *testing.T, name string, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		t.Errorf("%s: got %v, want a finite positive value", name, v)
	}
}
