package correlation

import "math"

// separatorReferencePsia is the separator pressure at which no gas gravity
// correction applies.
const separatorReferencePsia = 114.7

// vasquezBeggsAPIThreshold splits the Vasquez–Beggs coefficient tables.
const vasquezBeggsAPIThreshold = 30.0

type boCoeffs struct {
	C1, C2, C3 float64
}

var (
	boCoeffsHeavy = boCoeffs{C1: 4.677e-4, C2: 1.751e-5, C3: -1.811e-8} // API ≤ 30
	boCoeffsLight = boCoeffs{C1: 4.670e-4, C2: 1.100e-5, C3: 1.337e-9}  // API > 30
)

// CorrectedGasSG normalizes gas specific gravity to a 100 psig separator:
//
//	γgs = γg·(1 + 5.912e-5·API·Tsep·log10(psep/114.7))
func CorrectedGasSG(gasSG, api, pSep, tSep float64) (float64, error) {
	if err := requirePositive(NameGasGravityCorrected, "gas_sg", gasSG); err != nil {
		return 0, err
	}
	if err := requirePositive(NameGasGravityCorrected, "p_sep", pSep); err != nil {
		return 0, err
	}
	if err := requireFinite(NameGasGravityCorrected, "api", api); err != nil {
		return 0, err
	}
	if err := requireFinite(NameGasGravityCorrected, "t_sep", tSep); err != nil {
		return 0, err
	}
	gs := gasSG * (1 + 5.912e-5*api*tSep*math.Log10(pSep/separatorReferencePsia))
	if gs <= 0 {
		return 0, &DomainError{Correlation: NameGasGravityCorrected, Param: "result", Value: gs, Reason: "must be > 0"}
	}
	return finite(NameGasGravityCorrected, gs)
}

// BoVasquezBeggs returns the saturated oil formation-volume factor from
// Vasquez and Beggs (1980):
//
//	Bo = 1 + C1·Rs + (T − 60)·(API/γgs)·(C2 + C3·Rs)
func BoVasquezBeggs(rs, api, gasSG, tF, pSep, tSep float64) (float64, error) {
	if err := requireNonNegative(NameBoVasquezBeggs, "rs", rs); err != nil {
		return 0, err
	}
	if err := requirePositive(NameBoVasquezBeggs, "api", api); err != nil {
		return 0, err
	}
	if err := requireFinite(NameBoVasquezBeggs, "t_f", tF); err != nil {
		return 0, err
	}
	gs, err := CorrectedGasSG(gasSG, api, pSep, tSep)
	if err != nil {
		return 0, err
	}
	c := boCoeffsLight
	if api <= vasquezBeggsAPIThreshold {
		c = boCoeffsHeavy
	}
	bo := 1 + c.C1*rs + (tF-60)*(api/gs)*(c.C2+c.C3*rs)
	return finite(NameBoVasquezBeggs, bo)
}

// CoVasquezBeggs returns the isothermal oil compressibility from Vasquez
// and Beggs (1980):
//
//	Co = (−1433 + 5·Rsb + 17.2·T − 1180·γgs + 12.61·API) / (1e5·p)
func CoVasquezBeggs(rsb, gasSG, api, tF, p, pSep, tSep float64) (float64, error) {
	if err := requireNonNegative(NameCoVasquezBeggs, "rsb", rsb); err != nil {
		return 0, err
	}
	if err := requirePositive(NameCoVasquezBeggs, "p", p); err != nil {
		return 0, err
	}
	if err := requireFinite(NameCoVasquezBeggs, "t_f", tF); err != nil {
		return 0, err
	}
	if err := requirePositive(NameCoVasquezBeggs, "p_sep", pSep); err != nil {
		return 0, err
	}
	gs, err := CorrectedGasSG(gasSG, api, pSep, tSep)
	if err != nil {
		return 0, err
	}
	co := (-1433 + 5*rsb + 17.2*tF - 1180*gs + 12.61*api) / (1e5 * p)
	return finite(NameCoVasquezBeggs, co)
}

// MuUndersaturatedOil applies the Vasquez–Beggs pressure correction to the
// bubble-point viscosity. At or below pb the saturated viscosity is returned
// unchanged; above pb:
//
//	μo = μob·(p/pb)^m,  m = 2.6·pb^1.187·exp(−11.513 − 8.98e-5·pb)
func MuUndersaturatedOil(muob, p, pb float64) (float64, error) {
	if err := requirePositive(NameMuUndersaturated, "p", p); err != nil {
		return 0, err
	}
	if err := requirePositive(NameMuUndersaturated, "pb", pb); err != nil {
		return 0, err
	}
	if err := requirePositive(NameMuUndersaturated, "mu_ob", muob); err != nil {
		return 0, err
	}
	if p <= pb {
		return muob, nil
	}
	m := 2.6 * math.Pow(pb, 1.187) * math.Exp(-11.513-8.98e-5*pb)
	return finite(NameMuUndersaturated, muob*math.Pow(p/pb, m))
}
