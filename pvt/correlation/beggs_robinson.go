package correlation

import "math"

// MuDeadOil returns the gas-free oil viscosity (cp) from Beggs and
// Robinson (1975):
//
//	z = 3.0324 − 0.02023·API,  x = 10^z·T^−1.163,  μod = 10^x − 1
func MuDeadOil(api, tF float64) (float64, error) {
	if err := requirePositive(NameMuDeadOil, "api", api); err != nil {
		return 0, err
	}
	if err := requirePositive(NameMuDeadOil, "t_f", tF); err != nil {
		return 0, err
	}
	z := 3.0324 - 0.02023*api
	x := math.Pow(10, z) * math.Pow(tF, -1.163)
	return finite(NameMuDeadOil, math.Pow(10, x)-1)
}

// MuSaturatedOil returns the live-oil viscosity at the given Rs:
//
//	a = 10.715·(Rs + 100)^−0.515,  b = 5.44·(Rs + 150)^−0.338,  μob = a·μod^b
func MuSaturatedOil(api, tF, rs float64) (float64, error) {
	if err := requireNonNegative(NameMuSaturated, "rs", rs); err != nil {
		return 0, err
	}
	muod, err := MuDeadOil(api, tF)
	if err != nil {
		return 0, err
	}
	if muod <= 0 {
		return 0, &DomainError{Correlation: NameMuSaturated, Param: "mu_od", Value: muod, Reason: "must be > 0"}
	}
	a := 10.715 * math.Pow(rs+100, -0.515)
	b := 5.44 * math.Pow(rs+150, -0.338)
	return finite(NameMuSaturated, a*math.Pow(muod, b))
}
