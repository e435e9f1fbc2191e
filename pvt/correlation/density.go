package correlation

import "math"

// OilDensitySaturated returns the saturated oil density (lb/ft³) using the
// material balance form with a Standing Bo:
//
//	ρo = (62.4·γo + 0.0136·Rs·γg) / Bo
func OilDensitySaturated(rs, gasSG, oilSG, tF float64) (float64, error) {
	bo, err := BoStanding(rs, gasSG, oilSG, tF)
	if err != nil {
		return 0, err
	}
	if bo <= 0 {
		return 0, &DomainError{Correlation: NameRhoSaturated, Param: "bo", Value: bo, Reason: "must be > 0"}
	}
	rho := (62.4*oilSG + 0.0136*rs*gasSG) / bo
	return finite(NameRhoSaturated, rho)
}

// OilDensityUndersaturated compresses the bubble-point density above pb:
//
//	ρo = ρob·exp(Co·(p − pb))
func OilDensityUndersaturated(rhoAtPb, co, p, pb float64) (float64, error) {
	if err := requirePositive(NameRhoUndersaturated, "rho_ob", rhoAtPb); err != nil {
		return 0, err
	}
	if err := requireFinite(NameRhoUndersaturated, "co", co); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRhoUndersaturated, "p", p); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRhoUndersaturated, "pb", pb); err != nil {
		return 0, err
	}
	return finite(NameRhoUndersaturated, rhoAtPb*math.Exp(co*(p-pb)))
}

// BoUndersaturated shrinks the bubble-point formation-volume factor above
// pb. It is the inverse of the density relation, so ρo·Bo stays constant:
//
//	Bo = Bob·exp(−Co·(p − pb))
func BoUndersaturated(boAtPb, co, p, pb float64) (float64, error) {
	if err := requirePositive(NameBoUndersaturated, "bo_b", boAtPb); err != nil {
		return 0, err
	}
	if err := requireFinite(NameBoUndersaturated, "co", co); err != nil {
		return 0, err
	}
	if err := requirePositive(NameBoUndersaturated, "p", p); err != nil {
		return 0, err
	}
	if err := requirePositive(NameBoUndersaturated, "pb", pb); err != nil {
		return 0, err
	}
	return finite(NameBoUndersaturated, boAtPb*math.Exp(-co*(p-pb)))
}
