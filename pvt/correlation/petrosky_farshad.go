package correlation

import "math"

// CoPetroskyFarshad returns the undersaturated oil compressibility from
// Petrosky and Farshad (1993):
//
//	Co = 1.705e-7·Rsb^0.69357·γg^0.1885·API^0.3272·T^0.6729·p^−0.5906
//
// Only meaningful for p above the bubble point.
func CoPetroskyFarshad(rsb, gasSG, p, tF, api float64) (float64, error) {
	args := []struct {
		name string
		v    float64
	}{
		{"rsb", rsb}, {"gas_sg", gasSG}, {"p", p}, {"t_f", tF}, {"api", api},
	}
	for _, a := range args {
		if err := requirePositive(NameCoPetroskyFarshad, a.name, a.v); err != nil {
			return 0, err
		}
	}
	co := 1.705e-7 *
		math.Pow(rsb, 0.69357) *
		math.Pow(gasSG, 0.1885) *
		math.Pow(api, 0.3272) *
		math.Pow(tF, 0.6729) *
		math.Pow(p, -0.5906)
	return finite(NameCoPetroskyFarshad, co)
}
