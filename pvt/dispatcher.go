package pvt

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pvt-sim/pvt-sim/pvt/correlation"
)

// nameRsConstant identifies the constant-Rs assumption above pb in errors
// and comparison output.
const nameRsConstant = "rs-constant"

// RegimeDispatcher evaluates a consistent PropertyPoint at any pressure by
// choosing, per property, the saturated or undersaturated correlation from a
// CorrelationBundle.
//
// The bubble-point reference is computed once at construction with the
// saturated branch; every undersaturated formula is anchored to it. Evaluate
// at p = pb therefore returns the reference values exactly.
//
// A RegimeDispatcher is immutable after construction and safe for
// concurrent use.
type RegimeDispatcher struct {
	input          FluidSampleInput
	bundle         CorrelationBundle // resolved, no empty slots
	rsStandingAtPb float64
	ref            BubblePointReference
}

// NewRegimeDispatcher validates input and bundle and computes the
// BubblePointReference. Returns a *ConfigError for invalid parameters or an
// *EvaluationError if a correlation fails at pb.
func NewRegimeDispatcher(input FluidSampleInput, bundle CorrelationBundle) (*RegimeDispatcher, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	resolved := bundle.Resolved()
	d := &RegimeDispatcher{
		input:  input,
		bundle: resolved,
	}

	raw, err := correlation.RsStanding(input.API, input.GasSG, input.Pb, input.TemperatureF)
	if err != nil {
		return nil, wrapEval(PropertyRs, correlation.NameRsStanding, input.Pb, err)
	}
	d.rsStandingAtPb = raw

	pt, err := d.evaluateSaturated(input.Pb)
	if err != nil {
		return nil, err
	}
	muod, err := correlation.MuDeadOil(input.API, input.TemperatureF)
	if err != nil {
		return nil, wrapEval(PropertyMuOil, correlation.NameMuDeadOil, input.Pb, err)
	}
	d.ref = BubblePointReference{
		Pb:            input.Pb,
		Rs:            pt.Rs,
		Bo:            pt.Bo,
		Co:            pt.Co,
		RhoOil:        pt.RhoOil,
		MuOil:         pt.MuOil,
		MuDeadOil:     muod,
		RsStandingRaw: raw,
	}
	logrus.Debugf("bubble-point reference: pb=%.1f rs=%.2f bo=%.5f co=%.4e rho=%.3f mu=%.4f (raw Standing rs=%.2f)",
		d.ref.Pb, d.ref.Rs, d.ref.Bo, d.ref.Co, d.ref.RhoOil, d.ref.MuOil, raw)
	return d, nil
}

// Input returns the fluid parameters the dispatcher was built with.
func (d *RegimeDispatcher) Input() FluidSampleInput { return d.input }

// Bundle returns the resolved correlation selection.
func (d *RegimeDispatcher) Bundle() CorrelationBundle { return d.bundle }

// Reference returns the cached bubble-point property set.
func (d *RegimeDispatcher) Reference() BubblePointReference { return d.ref }

// Evaluate returns the property set at pressure p (psia). The saturated
// branch applies for p ≤ pb, the undersaturated branch for p > pb.
func (d *RegimeDispatcher) Evaluate(p float64) (PropertyPoint, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		name := d.rsCorrelationName(Saturated)
		return PropertyPoint{}, wrapEval(PropertyRs, name, p,
			&correlation.DomainError{Correlation: name, Param: "p", Value: p, Reason: "must be a finite positive pressure"})
	}
	if RegimeAt(p, d.input.Pb) == Saturated {
		return d.evaluateSaturated(p)
	}
	return d.evaluateUndersaturated(p)
}

func (d *RegimeDispatcher) evaluateSaturated(p float64) (PropertyPoint, error) {
	in := d.input

	rs, err := d.rsSaturated(p)
	if err != nil {
		return PropertyPoint{}, err
	}

	co, err := correlation.CoVasquezBeggs(in.Rsb, in.GasSG, in.API, in.TemperatureF, p, in.SeparatorP, in.SeparatorT)
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyCo, correlation.NameCoVasquezBeggs, p, err)
	}

	var bo float64
	switch d.bundle.Bo.Saturated {
	case BoStanding:
		bo, err = correlation.BoStanding(rs, in.GasSG, in.TankOilSG, in.TemperatureF)
	default:
		bo, err = correlation.BoVasquezBeggs(rs, in.API, in.GasSG, in.TemperatureF, in.SeparatorP, in.SeparatorT)
	}
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyBo, d.boCorrelationName(), p, err)
	}

	rho, err := correlation.OilDensitySaturated(rs, in.GasSG, in.TankOilSG, in.TemperatureF)
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyRhoOil, correlation.NameRhoSaturated, p, err)
	}

	mu, err := d.viscosity(rs, p)
	if err != nil {
		return PropertyPoint{}, err
	}

	return PropertyPoint{Pressure: p, Rs: rs, Bo: bo, Co: co, RhoOil: rho, MuOil: mu, Regime: Saturated}, nil
}

func (d *RegimeDispatcher) evaluateUndersaturated(p float64) (PropertyPoint, error) {
	in := d.input
	rs := in.Rsb

	var co float64
	var err error
	switch d.bundle.Co.Undersaturated {
	case CoPetroskyFarshad:
		co, err = correlation.CoPetroskyFarshad(in.Rsb, in.GasSG, p, in.TemperatureF, in.API)
	default:
		co, err = correlation.CoVasquezBeggs(in.Rsb, in.GasSG, in.API, in.TemperatureF, p, in.SeparatorP, in.SeparatorT)
	}
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyCo, d.coCorrelationName(Undersaturated), p, err)
	}

	bo, err := correlation.BoUndersaturated(d.ref.Bo, co, p, in.Pb)
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyBo, correlation.NameBoUndersaturated, p, err)
	}

	rho, err := correlation.OilDensityUndersaturated(d.ref.RhoOil, co, p, in.Pb)
	if err != nil {
		return PropertyPoint{}, wrapEval(PropertyRhoOil, correlation.NameRhoUndersaturated, p, err)
	}

	mu, err := d.viscosity(rs, p)
	if err != nil {
		return PropertyPoint{}, err
	}

	return PropertyPoint{Pressure: p, Rs: rs, Bo: bo, Co: co, RhoOil: rho, MuOil: mu, Regime: Undersaturated}, nil
}

// rsSaturated applies the configured saturated Rs correlation.
func (d *RegimeDispatcher) rsSaturated(p float64) (float64, error) {
	in := d.input
	switch d.bundle.Rs.Saturated {
	case RsVelarde:
		rs, err := correlation.RsVelarde(in.Rsb, in.GasSG, in.TankOilSG, in.Pb, p, in.TemperatureF)
		if err != nil {
			return 0, wrapEval(PropertyRs, correlation.NameRsVelarde, p, err)
		}
		return rs, nil
	default:
		rs, err := correlation.RsStanding(in.API, in.GasSG, p, in.TemperatureF)
		if err != nil {
			return 0, wrapEval(PropertyRs, correlation.NameRsStanding, p, err)
		}
		// x/x is exactly 1 in IEEE arithmetic, so Rs(pb) == Rsb bit for bit.
		return in.Rsb * (rs / d.rsStandingAtPb), nil
	}
}

// viscosity computes μob from rs and applies the undersaturated correction,
// which is the identity at or below pb.
func (d *RegimeDispatcher) viscosity(rs, p float64) (float64, error) {
	in := d.input
	muob, err := correlation.MuSaturatedOil(in.API, in.TemperatureF, rs)
	if err != nil {
		return 0, wrapEval(PropertyMuOil, correlation.NameMuSaturated, p, err)
	}
	mu, err := correlation.MuUndersaturatedOil(muob, p, in.Pb)
	if err != nil {
		return 0, wrapEval(PropertyMuOil, correlation.NameMuUndersaturated, p, err)
	}
	return mu, nil
}

// CorrelationFor names the correlation used for prop in regime r.
func (d *RegimeDispatcher) CorrelationFor(prop Property, r Regime) string {
	switch prop {
	case PropertyRs:
		return d.rsCorrelationName(r)
	case PropertyBo:
		if r == Undersaturated {
			return correlation.NameBoUndersaturated
		}
		return d.boCorrelationName()
	case PropertyCo:
		return d.coCorrelationName(r)
	case PropertyRhoOil:
		if r == Undersaturated {
			return correlation.NameRhoUndersaturated
		}
		return correlation.NameRhoSaturated
	case PropertyMuOil:
		if r == Undersaturated {
			return correlation.NameMuUndersaturated
		}
		return correlation.NameMuSaturated
	default:
		return ""
	}
}

func (d *RegimeDispatcher) rsCorrelationName(r Regime) string {
	if r == Undersaturated {
		return nameRsConstant
	}
	if d.bundle.Rs.Saturated == RsVelarde {
		return correlation.NameRsVelarde
	}
	return correlation.NameRsStanding
}

func (d *RegimeDispatcher) boCorrelationName() string {
	if d.bundle.Bo.Saturated == BoStanding {
		return correlation.NameBoStanding
	}
	return correlation.NameBoVasquezBeggs
}

func (d *RegimeDispatcher) coCorrelationName(r Regime) string {
	if r == Undersaturated && d.bundle.Co.Undersaturated == CoPetroskyFarshad {
		return correlation.NameCoPetroskyFarshad
	}
	return correlation.NameCoVasquezBeggs
}

func wrapEval(prop Property, corr string, p float64, err error) error {
	return &EvaluationError{Property: prop, Correlation: corr, Pressure: p, Err: err}
}
