package pvt

import (
	"fmt"

	"github.com/pvt-sim/pvt-sim/pvt/correlation"
)

// CorrelationResult is one row of a side-by-side correlation comparison.
// Exactly one of Value and Err is meaningful.
type CorrelationResult struct {
	Property    Property
	Correlation string
	Value       float64
	Err         error
}

// CompareCorrelations evaluates every correlation in the library at
// pressure p, regardless of regime, so alternatives can be compared.
// Rs-dependent rows use the raw Standing Rs at p; Co and the undersaturated
// density use the measured Rsb. A failing row carries its error and any row
// that depends on it carries the same error; the other rows are unaffected.
//
// Returns a *ConfigError only if the input itself is invalid.
func CompareCorrelations(input FluidSampleInput, p float64) ([]CorrelationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input
	var rows []CorrelationResult
	add := func(prop Property, name string, v float64, err error) {
		rows = append(rows, CorrelationResult{Property: prop, Correlation: name, Value: v, Err: err})
	}
	dependent := func(upstream string, err error) error {
		return fmt.Errorf("input from %s unavailable: %w", upstream, err)
	}

	rsStd, rsErr := correlation.RsStanding(in.API, in.GasSG, p, in.TemperatureF)
	add(PropertyRs, correlation.NameRsStanding, rsStd, rsErr)
	v, err := correlation.RsVelarde(in.Rsb, in.GasSG, in.TankOilSG, in.Pb, p, in.TemperatureF)
	add(PropertyRs, correlation.NameRsVelarde, v, err)

	if rsErr != nil {
		add(PropertyBo, correlation.NameBoStanding, 0, dependent(correlation.NameRsStanding, rsErr))
		add(PropertyBo, correlation.NameBoVasquezBeggs, 0, dependent(correlation.NameRsStanding, rsErr))
	} else {
		v, err = correlation.BoStanding(rsStd, in.GasSG, in.TankOilSG, in.TemperatureF)
		add(PropertyBo, correlation.NameBoStanding, v, err)
		v, err = correlation.BoVasquezBeggs(rsStd, in.API, in.GasSG, in.TemperatureF, in.SeparatorP, in.SeparatorT)
		add(PropertyBo, correlation.NameBoVasquezBeggs, v, err)
	}

	coVB, coErr := correlation.CoVasquezBeggs(in.Rsb, in.GasSG, in.API, in.TemperatureF, p, in.SeparatorP, in.SeparatorT)
	add(PropertyCo, correlation.NameCoVasquezBeggs, coVB, coErr)
	v, err = correlation.CoPetroskyFarshad(in.Rsb, in.GasSG, p, in.TemperatureF, in.API)
	add(PropertyCo, correlation.NameCoPetroskyFarshad, v, err)

	if rsErr != nil {
		add(PropertyRhoOil, correlation.NameRhoSaturated, 0, dependent(correlation.NameRsStanding, rsErr))
	} else {
		v, err = correlation.OilDensitySaturated(rsStd, in.GasSG, in.TankOilSG, in.TemperatureF)
		add(PropertyRhoOil, correlation.NameRhoSaturated, v, err)
	}
	rhoPb, rhoPbErr := correlation.OilDensitySaturated(in.Rsb, in.GasSG, in.TankOilSG, in.TemperatureF)
	switch {
	case rhoPbErr != nil:
		add(PropertyRhoOil, correlation.NameRhoUndersaturated, 0, dependent(correlation.NameRhoSaturated, rhoPbErr))
	case coErr != nil:
		add(PropertyRhoOil, correlation.NameRhoUndersaturated, 0, dependent(correlation.NameCoVasquezBeggs, coErr))
	default:
		v, err = correlation.OilDensityUndersaturated(rhoPb, coVB, p, in.Pb)
		add(PropertyRhoOil, correlation.NameRhoUndersaturated, v, err)
	}

	v, err = correlation.MuDeadOil(in.API, in.TemperatureF)
	add(PropertyMuOil, correlation.NameMuDeadOil, v, err)
	if rsErr != nil {
		add(PropertyMuOil, correlation.NameMuSaturated, 0, dependent(correlation.NameRsStanding, rsErr))
		add(PropertyMuOil, correlation.NameMuUndersaturated, 0, dependent(correlation.NameRsStanding, rsErr))
		return rows, nil
	}
	muob, muobErr := correlation.MuSaturatedOil(in.API, in.TemperatureF, rsStd)
	add(PropertyMuOil, correlation.NameMuSaturated, muob, muobErr)
	if muobErr != nil {
		add(PropertyMuOil, correlation.NameMuUndersaturated, 0, dependent(correlation.NameMuSaturated, muobErr))
	} else {
		v, err = correlation.MuUndersaturatedOil(muob, p, in.Pb)
		add(PropertyMuOil, correlation.NameMuUndersaturated, v, err)
	}
	return rows, nil
}
