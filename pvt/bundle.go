package pvt

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Correlation strategy names accepted in a CorrelationBundle.
const (
	RsStanding = "standing"
	RsVelarde  = "velarde"
	RsConstant = "constant"

	BoVasquezBeggs = "vasquez-beggs"
	BoStanding     = "standing"

	CoVasquezBeggs    = "vasquez-beggs"
	CoPetroskyFarshad = "petrosky-farshad"
)

// CorrelationBundle selects one correlation per property and regime.
// Empty strings mean "use the default".
type CorrelationBundle struct {
	Rs RsSelection `yaml:"rs"`
	Bo BoSelection `yaml:"bo"`
	Co CoSelection `yaml:"co"`
}

// RsSelection configures the solution gas-oil ratio. Standing's Rs is always
// scaled by Rsb/Standing(pb) so that Rs(pb) equals the measured Rsb; Velarde
// reproduces Rsb at pb on its own.
type RsSelection struct {
	Saturated      string `yaml:"saturated"`
	Undersaturated string `yaml:"undersaturated"`
}

// BoSelection configures the formation-volume factor. Above pb Bo is always
// derived from the bubble-point anchor and Co.
type BoSelection struct {
	Saturated string `yaml:"saturated"`
}

// CoSelection configures the isothermal compressibility.
type CoSelection struct {
	Saturated      string `yaml:"saturated"`
	Undersaturated string `yaml:"undersaturated"`
}

// Valid strategy names per slot. Shared by Validate() and the dispatcher.
var (
	ValidRsSaturated      = map[string]bool{"": true, RsStanding: true, RsVelarde: true}
	ValidRsUndersaturated = map[string]bool{"": true, RsConstant: true}
	ValidBoSaturated      = map[string]bool{"": true, BoVasquezBeggs: true, BoStanding: true}
	ValidCoSaturated      = map[string]bool{"": true, CoVasquezBeggs: true}
	ValidCoUndersaturated = map[string]bool{"": true, CoVasquezBeggs: true, CoPetroskyFarshad: true}
)

// DefaultCorrelationBundle returns the canonical assignment: anchored
// Standing Rs below pb and constant Rs above, Vasquez–Beggs Bo below pb,
// Vasquez–Beggs Co on both sides.
func DefaultCorrelationBundle() CorrelationBundle {
	return CorrelationBundle{
		Rs: RsSelection{Saturated: RsStanding, Undersaturated: RsConstant},
		Bo: BoSelection{Saturated: BoVasquezBeggs},
		Co: CoSelection{Saturated: CoVasquezBeggs, Undersaturated: CoVasquezBeggs},
	}
}

// LoadCorrelationBundle reads a YAML bundle file. Unknown keys are rejected.
func LoadCorrelationBundle(path string) (*CorrelationBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading correlation bundle: %w", err)
	}
	var b CorrelationBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&b); err != nil {
		return nil, fmt.Errorf("parsing correlation bundle: %w", err)
	}
	return &b, nil
}

// Validate checks every strategy name in the bundle.
func (b CorrelationBundle) Validate() error {
	checks := []struct {
		field string
		name  string
		valid map[string]bool
	}{
		{"rs.saturated", b.Rs.Saturated, ValidRsSaturated},
		{"rs.undersaturated", b.Rs.Undersaturated, ValidRsUndersaturated},
		{"bo.saturated", b.Bo.Saturated, ValidBoSaturated},
		{"co.saturated", b.Co.Saturated, ValidCoSaturated},
		{"co.undersaturated", b.Co.Undersaturated, ValidCoUndersaturated},
	}
	for _, c := range checks {
		if !c.valid[c.name] {
			return &ConfigError{Field: "correlations." + c.field, Reason: fmt.Sprintf("unknown correlation %q", c.name)}
		}
	}
	return nil
}

// Resolved returns a copy with every empty slot replaced by its default.
func (b CorrelationBundle) Resolved() CorrelationBundle {
	def := DefaultCorrelationBundle()
	out := b
	if out.Rs.Saturated == "" {
		out.Rs.Saturated = def.Rs.Saturated
	}
	if out.Rs.Undersaturated == "" {
		out.Rs.Undersaturated = def.Rs.Undersaturated
	}
	if out.Bo.Saturated == "" {
		out.Bo.Saturated = def.Bo.Saturated
	}
	if out.Co.Saturated == "" {
		out.Co.Saturated = def.Co.Saturated
	}
	if out.Co.Undersaturated == "" {
		out.Co.Undersaturated = def.Co.Undersaturated
	}
	return out
}
