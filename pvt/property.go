package pvt

// Property names one evaluated quantity.
type Property int

const (
	PropertyRs Property = iota
	PropertyBo
	PropertyCo
	PropertyRhoOil
	PropertyMuOil
)

// AllProperties lists properties in evaluation order.
var AllProperties = []Property{PropertyRs, PropertyBo, PropertyCo, PropertyRhoOil, PropertyMuOil}

func (p Property) String() string {
	switch p {
	case PropertyRs:
		return "rs"
	case PropertyBo:
		return "bo"
	case PropertyCo:
		return "co"
	case PropertyRhoOil:
		return "rho_oil"
	case PropertyMuOil:
		return "mu_oil"
	default:
		return "unknown"
	}
}

// Unit returns the field unit the property is reported in.
func (p Property) Unit() string {
	switch p {
	case PropertyRs:
		return "scf/STB"
	case PropertyBo:
		return "rb/STB"
	case PropertyCo:
		return "1/psia"
	case PropertyRhoOil:
		return "lb/ft3"
	case PropertyMuOil:
		return "cp"
	default:
		return ""
	}
}

// Regime is the side of the bubble point a pressure falls on.
type Regime int

const (
	// Saturated covers p ≤ pb.
	Saturated Regime = iota
	// Undersaturated covers p > pb.
	Undersaturated
)

func (r Regime) String() string {
	if r == Undersaturated {
		return "undersaturated"
	}
	return "saturated"
}

// RegimeAt classifies p against pb. The boundary belongs to the saturated side.
func RegimeAt(p, pb float64) Regime {
	if p <= pb {
		return Saturated
	}
	return Undersaturated
}

// PropertyPoint is one evaluated property set.
type PropertyPoint struct {
	Pressure float64 // psia
	Rs       float64 // scf/STB
	Bo       float64 // rb/STB
	Co       float64 // 1/psia
	RhoOil   float64 // lb/ft³
	MuOil    float64 // cp
	Regime   Regime
}

// Value returns the field for prop.
func (pt PropertyPoint) Value(prop Property) float64 {
	switch prop {
	case PropertyRs:
		return pt.Rs
	case PropertyBo:
		return pt.Bo
	case PropertyCo:
		return pt.Co
	case PropertyRhoOil:
		return pt.RhoOil
	case PropertyMuOil:
		return pt.MuOil
	default:
		return 0
	}
}

// BubblePointReference is the property set at p = pb that anchors the
// undersaturated branch.
type BubblePointReference struct {
	Pb     float64
	Rs     float64 // equals the measured Rsb
	Bo     float64
	Co     float64
	RhoOil float64
	MuOil  float64

	// MuDeadOil is the gas-free viscosity at reservoir temperature.
	MuDeadOil float64
	// RsStandingRaw is the unscaled Standing Rs at pb; its distance from Rsb
	// shows how far the correlation is from the measurement.
	RsStandingRaw float64
}

// Point returns the reference as a PropertyPoint.
func (r BubblePointReference) Point() PropertyPoint {
	return PropertyPoint{
		Pressure: r.Pb,
		Rs:       r.Rs,
		Bo:       r.Bo,
		Co:       r.Co,
		RhoOil:   r.RhoOil,
		MuOil:    r.MuOil,
		Regime:   Saturated,
	}
}
