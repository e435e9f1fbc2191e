package pvt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvt-sim/pvt-sim/pvt/correlation"
	"github.com/pvt-sim/pvt-sim/pvt/internal/testutil"
)

const relTol = 1e-9

func TestNewRegimeDispatcher_ReferenceMatchesBubblePointCorrelations(t *testing.T) {
	// GIVEN the reference fluid and the canonical bundle
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())

	// WHEN the bubble-point reference is read
	ref := d.Reference()

	// THEN Rs is the measured Rsb and the rest come from the saturated branch at pb
	assert.Equal(t, testutil.RefPb, ref.Pb)
	assert.Equal(t, testutil.RefRsb, ref.Rs)
	testutil.AssertFloat64Equal(t, "bo", 1.5858983471385988, ref.Bo, relTol)
	testutil.AssertFloat64Equal(t, "co", 1.5950119456168252e-05, ref.Co, relTol)
	testutil.AssertFloat64Equal(t, "rho", 39.26845387790753, ref.RhoOil, relTol)
	testutil.AssertFloat64Equal(t, "mu", 0.43992326604922344, ref.MuOil, relTol)
	testutil.AssertFloat64Equal(t, "mu_od", 2.6271100966611725, ref.MuDeadOil, relTol)
	testutil.AssertFloat64Equal(t, "rs_raw", 1168.226443978182, ref.RsStandingRaw, relTol)
}

// everyBundle lists the canonical bundle and each supported override.
func everyBundle() map[string]CorrelationBundle {
	return map[string]CorrelationBundle{
		"canonical":      DefaultCorrelationBundle(),
		"velarde":        {Rs: RsSelection{Saturated: RsVelarde}},
		"standing bo":    {Bo: BoSelection{Saturated: BoStanding}},
		"petrosky above": {Co: CoSelection{Undersaturated: CoPetroskyFarshad}},
		"all overrides":  {Rs: RsSelection{Saturated: RsVelarde}, Bo: BoSelection{Saturated: BoStanding}, Co: CoSelection{Undersaturated: CoPetroskyFarshad}},
	}
}

func TestEvaluate_AtBubblePoint_ReproducesReferenceExactly(t *testing.T) {
	for name, b := range everyBundle() {
		t.Run(name, func(t *testing.T) {
			d := mustDispatcher(t, referenceInput(), b)

			got, err := d.Evaluate(testutil.RefPb)

			require.NoError(t, err)
			assert.Equal(t, d.Reference().Point(), got)
		})
	}
}

func TestEvaluate_AtBubblePoint_RsEqualsRsb(t *testing.T) {
	for name, b := range everyBundle() {
		t.Run(name, func(t *testing.T) {
			d := mustDispatcher(t, referenceInput(), b)
			got, err := d.Evaluate(testutil.RefPb)
			require.NoError(t, err)
			assert.Equal(t, testutil.RefRsb, got.Rs)
			assert.Equal(t, testutil.RefRsb, d.Reference().Rs)
		})
	}
}

func TestEvaluate_AcrossBubblePoint_RsAndViscosityContinuous(t *testing.T) {
	for name, b := range everyBundle() {
		t.Run(name, func(t *testing.T) {
			// GIVEN pressures just below and just above pb
			d := mustDispatcher(t, referenceInput(), b)
			ref := d.Reference()
			below, err := d.Evaluate(testutil.RefPb * (1 - 1e-9))
			require.NoError(t, err)
			above, err := d.Evaluate(testutil.RefPb * (1 + 1e-9))
			require.NoError(t, err)

			// THEN Rs, μo, Bo and ρo on both sides agree with the reference
			assert.Equal(t, Saturated, below.Regime)
			assert.Equal(t, Undersaturated, above.Regime)
			assert.Equal(t, testutil.RefRsb, above.Rs)
			for _, pt := range []PropertyPoint{below, above} {
				assert.InEpsilon(t, ref.Rs, pt.Rs, 1e-6, "rs at %v", pt.Pressure)
				assert.InEpsilon(t, ref.MuOil, pt.MuOil, 1e-6, "mu at %v", pt.Pressure)
				assert.InEpsilon(t, ref.Bo, pt.Bo, 1e-6, "bo at %v", pt.Pressure)
				assert.InEpsilon(t, ref.RhoOil, pt.RhoOil, 1e-6, "rho at %v", pt.Pressure)
			}
		})
	}
}

func TestEvaluate_ReferencePressure_EndToEnd(t *testing.T) {
	// GIVEN pr = 4409 > pb = 3970
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())

	// WHEN evaluated at pr
	got, err := d.Evaluate(testutil.RefPr)
	require.NoError(t, err)

	// THEN Rs is held at Rsb and the rest follow the bubble-point anchor
	assert.Equal(t, Undersaturated, got.Regime)
	assert.Equal(t, testutil.RefRsb, got.Rs)
	testutil.AssertFloat64Equal(t, "co", 1.4361981002718976e-05, got.Co, relTol)
	testutil.AssertFloat64Equal(t, "bo", 1.5759308564127796, got.Bo, relTol)
	testutil.AssertFloat64Equal(t, "rho", 39.516820072561686, got.RhoOil, relTol)
	testutil.AssertFloat64Equal(t, "mu", 0.4559088097351366, got.MuOil, relTol)
	for _, prop := range AllProperties {
		testutil.AssertFinitePositive(t, prop.String(), got.Value(prop))
	}
}

func TestEvaluate_PetroskyAbovePb_UsesPetroskyCompressibility(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), CorrelationBundle{Co: CoSelection{Undersaturated: CoPetroskyFarshad}})

	got, err := d.Evaluate(testutil.RefPr)

	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "co", 1.3325747304647714e-05, got.Co, relTol)
	testutil.AssertFloat64Equal(t, "bo", 1.5766479208364896, got.Bo, relTol)
}

func TestEvaluate_SaturatedBranch_AnchoredStanding(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())

	got, err := d.Evaluate(2000)

	require.NoError(t, err)
	assert.Equal(t, Saturated, got.Regime)
	testutil.AssertFloat64Equal(t, "rs", 495.79359528382605, got.Rs, relTol)
}

func TestEvaluate_SaturatedBranch_Velarde(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), CorrelationBundle{Rs: RsSelection{Saturated: RsVelarde}})

	got, err := d.Evaluate(2000)

	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "rs", 522.1747307220623, got.Rs, relTol)
}

func TestEvaluate_RegimePartition(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())
	pb := testutil.RefPb
	tests := []struct {
		p    float64
		want Regime
	}{
		{100, Saturated},
		{pb, Saturated},
		{math.Nextafter(pb, math.Inf(1)), Undersaturated},
		{pb + 1, Undersaturated},
		{2 * pb, Undersaturated},
	}
	for _, tt := range tests {
		got, err := d.Evaluate(tt.p)
		require.NoError(t, err, "p=%v", tt.p)
		assert.Equal(t, tt.want, got.Regime, "p=%v", tt.p)
		assert.Equal(t, tt.want, RegimeAt(tt.p, pb), "p=%v", tt.p)
	}
}

func TestEvaluate_JustAbovePb_ContinuousWithReference(t *testing.T) {
	// GIVEN the canonical bundle (Vasquez–Beggs Co on both sides)
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())
	ref := d.Reference()

	// WHEN evaluated a hair above pb
	got, err := d.Evaluate(testutil.RefPb + 1e-6)
	require.NoError(t, err)

	// THEN every property is continuous across the boundary
	for _, prop := range AllProperties {
		testutil.AssertFloat64Equal(t, prop.String(), ref.Point().Value(prop), got.Value(prop), 1e-8)
	}
}

func TestEvaluate_MonotonicSanity(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())
	pb := testutil.RefPb

	// Rs non-decreasing up to pb
	prev := -1.0
	for p := 50.0; p <= pb; p += 50 {
		pt, err := d.Evaluate(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pt.Rs, prev, "p=%v", p)
		prev = pt.Rs
	}

	// Rs constant and density non-decreasing above pb, with co > 0
	prevRho := d.Reference().RhoOil
	for p := pb + 50; p <= 1.5*pb; p += 50 {
		pt, err := d.Evaluate(p)
		require.NoError(t, err)
		assert.Equal(t, testutil.RefRsb, pt.Rs, "p=%v", p)
		assert.Greater(t, pt.Co, 0.0, "p=%v", p)
		assert.GreaterOrEqual(t, pt.RhoOil, prevRho, "p=%v", p)
		prevRho = pt.RhoOil
	}
}

func TestEvaluate_NonPositivePressure_EvaluationError(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())
	for _, p := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := d.Evaluate(p)

		var ee *EvaluationError
		require.True(t, errors.As(err, &ee), "p=%v: expected *EvaluationError, got %v", p, err)
		assert.Equal(t, PropertyRs, ee.Property)
		var de *correlation.DomainError
		assert.True(t, errors.As(err, &de), "p=%v: domain error must be reachable", p)
	}
}

func TestEvaluate_VelardeBelowAtmospheric_TaggedWithPropertyAndPressure(t *testing.T) {
	// GIVEN Velarde, whose reduced pressure is negative below 14.7 psia
	d := mustDispatcher(t, referenceInput(), CorrelationBundle{Rs: RsSelection{Saturated: RsVelarde}})

	// WHEN evaluated at 10 psia
	_, err := d.Evaluate(10)

	// THEN the failure names the property, the correlation and the pressure
	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, PropertyRs, ee.Property)
	assert.Equal(t, correlation.NameRsVelarde, ee.Correlation)
	assert.Equal(t, 10.0, ee.Pressure)
	assert.Contains(t, err.Error(), "rs")
	assert.Contains(t, err.Error(), "p=10")
}

func TestNewRegimeDispatcher_InvalidInput_ConfigError(t *testing.T) {
	in := referenceInput()
	in.SeparatorP = 0

	_, err := NewRegimeDispatcher(in, DefaultCorrelationBundle())

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "separator_p", ce.Field)
}

func TestNewRegimeDispatcher_InvalidBundle_ConfigError(t *testing.T) {
	_, err := NewRegimeDispatcher(referenceInput(), CorrelationBundle{Bo: BoSelection{Saturated: "glaso"}})

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
}

func TestNewRegimeDispatcher_CorrelationFailsAtPb_EvaluationError(t *testing.T) {
	// GIVEN a temperature the Beggs–Robinson dead-oil correlation rejects
	in := referenceInput()
	in.TemperatureF = -10

	_, err := NewRegimeDispatcher(in, DefaultCorrelationBundle())

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee), "got %v", err)
	assert.Equal(t, PropertyMuOil, ee.Property)
	assert.Equal(t, testutil.RefPb, ee.Pressure)
}

func TestCorrelationFor_CanonicalBundle(t *testing.T) {
	d := mustDispatcher(t, referenceInput(), DefaultCorrelationBundle())
	assert.Equal(t, correlation.NameRsStanding, d.CorrelationFor(PropertyRs, Saturated))
	assert.Equal(t, nameRsConstant, d.CorrelationFor(PropertyRs, Undersaturated))
	assert.Equal(t, correlation.NameBoVasquezBeggs, d.CorrelationFor(PropertyBo, Saturated))
	assert.Equal(t, correlation.NameBoUndersaturated, d.CorrelationFor(PropertyBo, Undersaturated))
	assert.Equal(t, correlation.NameCoVasquezBeggs, d.CorrelationFor(PropertyCo, Saturated))
	assert.Equal(t, correlation.NameCoVasquezBeggs, d.CorrelationFor(PropertyCo, Undersaturated))
	assert.Equal(t, correlation.NameRhoSaturated, d.CorrelationFor(PropertyRhoOil, Saturated))
	assert.Equal(t, correlation.NameMuUndersaturated, d.CorrelationFor(PropertyMuOil, Undersaturated))
}
