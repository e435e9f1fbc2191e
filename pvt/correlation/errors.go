package correlation

import (
	"fmt"
	"math"
)

// Correlation names used in DomainError and by callers that report which
// correlation produced a value.
const (
	NameRsStanding          = "rs-standing"
	NameRsVelarde           = "rs-velarde"
	NameBoStanding          = "bo-standing"
	NameBoVasquezBeggs      = "bo-vasquez-beggs"
	NameGasGravityCorrected = "gas-gravity-vasquez-beggs"
	NameCoVasquezBeggs      = "co-vasquez-beggs"
	NameCoPetroskyFarshad   = "co-petrosky-farshad"
	NameRhoSaturated        = "rho-saturated"
	NameRhoUndersaturated   = "rho-undersaturated"
	NameBoUndersaturated    = "bo-undersaturated"
	NameMuDeadOil           = "mu-dead-beggs-robinson"
	NameMuSaturated         = "mu-saturated-beggs-robinson"
	NameMuUndersaturated    = "mu-undersaturated-vasquez-beggs"
)

// DomainError reports an argument outside a correlation's validity range,
// or a computation that did not produce a finite number.
type DomainError struct {
	Correlation string  // correlation name, one of the Name* constants
	Param       string  // offending argument ("result" for a non-finite output)
	Value       float64 // offending value
	Reason      string  // short constraint description, e.g. "must be > 0"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", e.Correlation, e.Param, e.Value, e.Reason)
}

func requirePositive(corr, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Correlation: corr, Param: param, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &DomainError{Correlation: corr, Param: param, Value: v, Reason: "must be > 0"}
	}
	return nil
}

func requireNonNegative(corr, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Correlation: corr, Param: param, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &DomainError{Correlation: corr, Param: param, Value: v, Reason: "must be >= 0"}
	}
	return nil
}

func requireFinite(corr, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Correlation: corr, Param: param, Value: v, Reason: "must be finite"}
	}
	return nil
}

// finite returns v unless it is NaN or ±Inf.
func finite(corr string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DomainError{Correlation: corr, Param: "result", Value: v, Reason: "is not a finite number"}
	}
	return v, nil
}
