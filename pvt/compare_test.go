package pvt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvt-sim/pvt-sim/pvt/correlation"
	"github.com/pvt-sim/pvt-sim/pvt/internal/testutil"
)

func findRow(t *testing.T, rows []CorrelationResult, name string) CorrelationResult {
	t.Helper()
	for _, r := range rows {
		if r.Correlation == name {
			return r
		}
	}
	t.Fatalf("no row for %s", name)
	return CorrelationResult{}
}

func TestCompareCorrelations_ReferencePressure_AllRows(t *testing.T) {
	// GIVEN the reference fluid at pr
	rows, err := CompareCorrelations(referenceInput(), testutil.RefPr)
	require.NoError(t, err)

	// THEN every library correlation appears once, in a fixed order
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Correlation
	}
	assert.Equal(t, []string{
		correlation.NameRsStanding,
		correlation.NameRsVelarde,
		correlation.NameBoStanding,
		correlation.NameBoVasquezBeggs,
		correlation.NameCoVasquezBeggs,
		correlation.NameCoPetroskyFarshad,
		correlation.NameRhoSaturated,
		correlation.NameRhoUndersaturated,
		correlation.NameMuDeadOil,
		correlation.NameMuSaturated,
		correlation.NameMuUndersaturated,
	}, names)

	testutil.AssertFloat64Equal(t, "rs standing", 1324.563654439923, findRow(t, rows, correlation.NameRsStanding).Value, 1e-9)
	testutil.AssertFloat64Equal(t, "co vb", 1.4361981002718976e-05, findRow(t, rows, correlation.NameCoVasquezBeggs).Value, 1e-9)
	testutil.AssertFloat64Equal(t, "co pf", 1.3325747304647714e-05, findRow(t, rows, correlation.NameCoPetroskyFarshad).Value, 1e-9)
	for _, r := range rows {
		assert.NoError(t, r.Err, r.Correlation)
	}
}

func TestCompareCorrelations_PressureBelowAtmospheric_FailuresRecordedPerRow(t *testing.T) {
	// GIVEN 10 psia, where only Velarde is out of range
	rows, err := CompareCorrelations(referenceInput(), 10)
	require.NoError(t, err)

	// THEN the Velarde row carries a domain error and the others still have values
	vel := findRow(t, rows, correlation.NameRsVelarde)
	var de *correlation.DomainError
	require.True(t, errors.As(vel.Err, &de))
	assert.Zero(t, vel.Value)
	assert.NoError(t, findRow(t, rows, correlation.NameRsStanding).Err)
	assert.NoError(t, findRow(t, rows, correlation.NameBoStanding).Err)
}

func TestCompareCorrelations_ZeroPressure_DependentRowsCarryUpstreamError(t *testing.T) {
	rows, err := CompareCorrelations(referenceInput(), 0)
	require.NoError(t, err)

	bo := findRow(t, rows, correlation.NameBoStanding)
	var de *correlation.DomainError
	require.True(t, errors.As(bo.Err, &de))
	assert.Equal(t, correlation.NameRsStanding, de.Correlation)

	// Dead-oil viscosity does not depend on pressure
	assert.NoError(t, findRow(t, rows, correlation.NameMuDeadOil).Err)
	assert.Len(t, rows, 11)
}

func TestCompareCorrelations_InvalidInput_ConfigError(t *testing.T) {
	in := referenceInput()
	in.GasSG = 0

	_, err := CompareCorrelations(in, testutil.RefPr)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
}
