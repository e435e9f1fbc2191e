package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pvt-sim/pvt-sim/pvt"
)

// RunConfig is the structure of a run config file. All top-level sections
// must be listed here to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	Fluid        pvt.FluidSampleInput  `yaml:"fluid"`
	Sampling     pvt.SamplingConfig    `yaml:"sampling"`
	Correlations pvt.CorrelationBundle `yaml:"correlations"`
}

// DefaultRunConfig returns the values used when neither the config file nor
// a flag sets a field. Reservoir measurements (pb, rsb, api, gas_sg, pr,
// temperature_f) have no default and must be supplied.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Fluid: pvt.FluidSampleInput{
			TankOilSG:   0.82,
			SeparatorP:  100,
			SeparatorT:  120,
			Seed:        42,
			SampleCount: 200,
		},
		Sampling:     pvt.DefaultSamplingConfig(),
		Correlations: pvt.DefaultCorrelationBundle(),
	}
}

// LoadRunConfig reads path on top of DefaultRunConfig. Unknown keys are
// rejected; an empty file yields the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}
