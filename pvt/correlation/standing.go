package correlation

import "math"

// RsStanding returns the solution gas-oil ratio from Standing (1947).
//
//	x  = 0.0125·API − 0.00091·T
//	Rs = γg·((p/18.2 + 1.4)·10^x)^1.2048
//
// Valid in the saturated range (p ≤ pb).
func RsStanding(api, gasSG, p, tF float64) (float64, error) {
	if err := requirePositive(NameRsStanding, "api", api); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRsStanding, "gas_sg", gasSG); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRsStanding, "p", p); err != nil {
		return 0, err
	}
	if err := requireFinite(NameRsStanding, "t_f", tF); err != nil {
		return 0, err
	}
	x := 0.0125*api - 0.00091*tF
	rs := gasSG * math.Pow((p/18.2+1.4)*math.Pow(10, x), 1.2048)
	return finite(NameRsStanding, rs)
}

// BoStanding returns the oil formation-volume factor from Standing (1981).
//
//	Bo = 0.9759 + 0.000120·(Rs·(γg/γo)^0.5 + 1.25·T)^1.2
func BoStanding(rs, gasSG, oilSG, tF float64) (float64, error) {
	if err := requireNonNegative(NameBoStanding, "rs", rs); err != nil {
		return 0, err
	}
	if err := requirePositive(NameBoStanding, "gas_sg", gasSG); err != nil {
		return 0, err
	}
	if err := requirePositive(NameBoStanding, "oil_sg", oilSG); err != nil {
		return 0, err
	}
	if err := requireFinite(NameBoStanding, "t_f", tF); err != nil {
		return 0, err
	}
	base := rs*math.Sqrt(gasSG/oilSG) + 1.25*tF
	if base < 0 {
		return 0, &DomainError{Correlation: NameBoStanding, Param: "t_f", Value: tF,
			Reason: "makes the 1.2 power base negative"}
	}
	bo := 0.9759 + 0.000120*math.Pow(base, 1.2)
	return finite(NameBoStanding, bo)
}
