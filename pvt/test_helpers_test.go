package pvt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pvt-sim/pvt-sim/pvt/internal/testutil"
)

// referenceInput returns the reference black oil with seed 42 and 200 draws.
func referenceInput() FluidSampleInput {
	return FluidSampleInput{
		Pb:           testutil.RefPb,
		Rsb:          testutil.RefRsb,
		API:          testutil.RefAPI,
		GasSG:        testutil.RefGasSG,
		TankOilSG:    testutil.RefTankOilSG,
		Pr:           testutil.RefPr,
		TemperatureF: testutil.RefTemperatureF,
		SeparatorP:   testutil.RefSeparatorP,
		SeparatorT:   testutil.RefSeparatorT,
		Seed:         42,
		SampleCount:  200,
	}
}

func mustDispatcher(t *testing.T, in FluidSampleInput, b CorrelationBundle) *RegimeDispatcher {
	t.Helper()
	d, err := NewRegimeDispatcher(in, b)
	require.NoError(t, err)
	return d
}
