package correlation

import "math"

// Velarde, Blasingame and McCain (1997) coefficient sets for the reduced
// solution gas-oil ratio. Each row is {K0, gas SG exp, API exp, T exp, (pb−14.7) exp}.
var (
	velardeA1 = [5]float64{9.73e-7, 1.672608, 0.929870, 0.247235, 1.056052}
	velardeA2 = [5]float64{0.022339, -1.004750, 0.337711, 0.132795, 0.302065}
	velardeA3 = [5]float64{0.725167, -1.485480, -0.164741, -0.091330, 0.047094}
)

// atmosphericPsia is the reference pressure subtracted in the reduced
// pressure definition.
const atmosphericPsia = 14.7

// APIFromOilSG converts stock-tank oil specific gravity to API gravity.
func APIFromOilSG(oilSG float64) float64 {
	return 141.5/oilSG - 131.5
}

// RsVelarde returns the solution gas-oil ratio below the bubble point from
// the Velarde–Blasingame–McCain correlation:
//
//	pr  = (p − 14.7)/(pb − 14.7)
//	Rs  = Rsb·(α1·pr^α2 + (1 − α1)·pr^α3)
//
// Rs(pb) is exactly Rsb. The API gravity in the coefficients is derived from
// oilSG, not taken from a separately measured API.
func RsVelarde(rsb, gasSG, oilSG, pb, p, tF float64) (float64, error) {
	if err := requireNonNegative(NameRsVelarde, "rsb", rsb); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRsVelarde, "gas_sg", gasSG); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRsVelarde, "oil_sg", oilSG); err != nil {
		return 0, err
	}
	if err := requireFinite(NameRsVelarde, "pb", pb); err != nil {
		return 0, err
	}
	if pb <= atmosphericPsia {
		return 0, &DomainError{Correlation: NameRsVelarde, Param: "pb", Value: pb, Reason: "must be > 14.7"}
	}
	if err := requirePositive(NameRsVelarde, "p", p); err != nil {
		return 0, err
	}
	if err := requirePositive(NameRsVelarde, "t_f", tF); err != nil {
		return 0, err
	}
	api := APIFromOilSG(oilSG)
	if err := requirePositive(NameRsVelarde, "api", api); err != nil {
		return 0, err
	}

	pr := (p - atmosphericPsia) / (pb - atmosphericPsia)
	if pr <= 0 {
		return 0, &DomainError{Correlation: NameRsVelarde, Param: "reduced_pressure", Value: pr, Reason: "must be > 0"}
	}

	if pr == 1 {
		return finite(NameRsVelarde, rsb)
	}

	dp := pb - atmosphericPsia
	alpha := func(k [5]float64) float64 {
		return k[0] * math.Pow(gasSG, k[1]) * math.Pow(api, k[2]) * math.Pow(tF, k[3]) * math.Pow(dp, k[4])
	}
	a1, a2, a3 := alpha(velardeA1), alpha(velardeA2), alpha(velardeA3)

	rsr := a1*math.Pow(pr, a2) + (1-a1)*math.Pow(pr, a3)
	return finite(NameRsVelarde, rsb*rsr)
}
