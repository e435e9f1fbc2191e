package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pvt-sim/pvt-sim/pvt"
)

// compareCmd evaluates every correlation in the library at one pressure
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all correlations side by side at one pressure",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		p := cfg.Fluid.Pr
		if cmd.Flags().Changed("pressure") {
			p = comparePressure
		}
		if err := runCompare(cfg, p, os.Stdout); err != nil {
			logrus.Fatalf("Compare failed: %v", err)
		}
	},
}

// runCompare prints the comparison table for cfg.Fluid at p. Row failures
// are printed, not returned; only an invalid fluid is an error.
func runCompare(cfg RunConfig, p float64, out io.Writer) error {
	rows, err := pvt.CompareCorrelations(cfg.Fluid, p)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range rows {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		logrus.Warnf("%d of %d correlations failed at %.1f psia", failed, len(rows), p)
	}
	printComparison(out, p, pvt.RegimeAt(p, cfg.Fluid.Pb), rows)
	return nil
}
