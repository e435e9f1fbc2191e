package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const referenceConfigYAML = `fluid:
  pb: 3970
  rsb: 1124
  api: 38.982
  gas_sg: 0.65
  pr: 4409
  temperature_f: 140
sampling:
  workers: 2
correlations:
  co:
    undersaturated: petrosky-farshad
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func referenceRunConfig(t *testing.T) RunConfig {
	t.Helper()
	cfg, err := LoadRunConfig(writeConfig(t, referenceConfigYAML))
	require.NoError(t, err)
	return cfg
}
