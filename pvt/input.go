package pvt

import (
	"fmt"
	"math"
)

// FluidSampleInput holds the measured reservoir parameters for one run.
// Units: psia, °F, scf/STB.
type FluidSampleInput struct {
	Pb           float64 `yaml:"pb"`            // bubble-point pressure (> 0)
	Rsb          float64 `yaml:"rsb"`           // solution GOR at pb (≥ 0)
	API          float64 `yaml:"api"`           // oil API gravity (> 0)
	GasSG        float64 `yaml:"gas_sg"`        // gas specific gravity, air = 1 (> 0)
	TankOilSG    float64 `yaml:"tank_oil_sg"`   // stock-tank oil specific gravity, assumed (> 0)
	Pr           float64 `yaml:"pr"`            // reference reservoir pressure (> 0)
	TemperatureF float64 `yaml:"temperature_f"` // reservoir temperature
	SeparatorP   float64 `yaml:"separator_p"`   // separator pressure (> 0)
	SeparatorT   float64 `yaml:"separator_t"`   // separator temperature (> 0)
	Seed         int64   `yaml:"seed"`
	SampleCount  int     `yaml:"sample_count"` // Monte-Carlo draws (> 0)
}

// Validate checks every field before a run starts. Returns a *ConfigError.
func (in FluidSampleInput) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"pb", in.Pb},
		{"api", in.API},
		{"gas_sg", in.GasSG},
		{"tank_oil_sg", in.TankOilSG},
		{"pr", in.Pr},
		{"separator_p", in.SeparatorP},
		{"separator_t", in.SeparatorT},
	}
	for _, f := range positive {
		if err := validateFinitePositive(f.name, f.v); err != nil {
			return err
		}
	}
	if math.IsNaN(in.Rsb) || math.IsInf(in.Rsb, 0) || in.Rsb < 0 {
		return &ConfigError{Field: "rsb", Reason: fmt.Sprintf("must be a finite non-negative number, got %g", in.Rsb)}
	}
	if math.IsNaN(in.TemperatureF) || math.IsInf(in.TemperatureF, 0) {
		return &ConfigError{Field: "temperature_f", Reason: fmt.Sprintf("must be a finite number, got %g", in.TemperatureF)}
	}
	if in.SampleCount <= 0 {
		return &ConfigError{Field: "sample_count", Reason: fmt.Sprintf("must be positive, got %d", in.SampleCount)}
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return &ConfigError{Field: name, Reason: fmt.Sprintf("must be a finite number, got %g", val)}
	}
	if val <= 0 {
		return &ConfigError{Field: name, Reason: fmt.Sprintf("must be positive, got %g", val)}
	}
	return nil
}
