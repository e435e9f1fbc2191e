package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pvt-sim/pvt-sim/pvt"
	"github.com/pvt-sim/pvt-sim/pvt/stats"
)

var (
	// Shared by run and compare
	configPath   string  // Run config YAML (fluid, sampling, correlations)
	bundlePath   string  // Correlation bundle YAML, replaces the correlations section
	logLevel     string  // Log verbosity level
	pb           float64 // Bubble-point pressure, psia
	rsb          float64 // Solution GOR at pb, scf/STB
	api          float64 // Stock-tank oil gravity, °API
	gasSG        float64 // Gas specific gravity (air = 1)
	tankOilSG    float64 // Stock-tank oil specific gravity (water = 1)
	pr           float64 // Reservoir pressure, psia
	temperatureF float64 // Reservoir temperature, °F
	separatorP   float64 // Separator pressure, psia
	separatorT   float64 // Separator temperature, °F

	// Correlation choices
	rsSaturated      string // Rs below pb
	boSaturated      string // Bo below pb
	coUndersaturated string // Co above pb

	// run only
	seed        int64  // Seed for pressure draws
	sampleCount int    // Number of ensemble draws
	workers     int    // Parallel evaluators (0 = GOMAXPROCS)
	outputPath  string // CSV table destination
	summaryPath string // JSON summary destination

	// compare only
	comparePressure float64 // Pressure for the correlation comparison
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pvt-sim",
	Short: "Black-oil PVT property estimation with empirical correlations",
}

// runCmd evaluates the reservoir-pressure point and a seeded ensemble
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate PVT properties at pr and over a random pressure ensemble",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting ensemble: pb=%.1f rsb=%.1f pr=%.1f T=%.1f°F, %d samples, seed %d",
			cfg.Fluid.Pb, cfg.Fluid.Rsb, cfg.Fluid.Pr, cfg.Fluid.TemperatureF, cfg.Fluid.SampleCount, cfg.Fluid.Seed)

		if err := runEnsemble(cmd.Context(), cfg, os.Stdout, outputPath, summaryPath); err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		logrus.Info("Run complete.")
	},
}

// setLogLevel applies --log to the package-level logrus logger.
func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveRunConfig loads --config (or the defaults), replaces the
// correlations section with --correlations when given, and applies every
// flag the user set explicitly. Unset flags never overwrite file values.
func resolveRunConfig(cmd *cobra.Command) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if configPath != "" {
		loaded, err := LoadRunConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if bundlePath != "" {
		bundle, err := pvt.LoadCorrelationBundle(bundlePath)
		if err != nil {
			return cfg, err
		}
		if err := bundle.Validate(); err != nil {
			return cfg, err
		}
		logrus.Infof("Loaded correlation bundle from %s", bundlePath)
		cfg.Correlations = *bundle
	}
	applyFlagOverrides(cmd, &cfg)
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *RunConfig) {
	f := cmd.Flags()
	floats := []struct {
		flag string
		dst  *float64
		val  float64
	}{
		{"pb", &cfg.Fluid.Pb, pb},
		{"rsb", &cfg.Fluid.Rsb, rsb},
		{"api", &cfg.Fluid.API, api},
		{"gas-sg", &cfg.Fluid.GasSG, gasSG},
		{"oil-sg", &cfg.Fluid.TankOilSG, tankOilSG},
		{"pr", &cfg.Fluid.Pr, pr},
		{"temperature", &cfg.Fluid.TemperatureF, temperatureF},
		{"separator-p", &cfg.Fluid.SeparatorP, separatorP},
		{"separator-t", &cfg.Fluid.SeparatorT, separatorT},
	}
	for _, o := range floats {
		if f.Changed(o.flag) {
			*o.dst = o.val
		}
	}
	if f.Changed("seed") {
		cfg.Fluid.Seed = seed
	}
	if f.Changed("samples") {
		cfg.Fluid.SampleCount = sampleCount
	}
	if f.Changed("workers") {
		cfg.Sampling.Workers = workers
	}
	if f.Changed("rs-saturated") {
		cfg.Correlations.Rs.Saturated = rsSaturated
	}
	if f.Changed("bo-saturated") {
		cfg.Correlations.Bo.Saturated = boSaturated
	}
	if f.Changed("co-undersaturated") {
		cfg.Correlations.Co.Undersaturated = coUndersaturated
	}
}

// runEnsemble builds the dispatcher and sampler, writes the text report to
// out and the optional CSV table and JSON summary to their paths.
func runEnsemble(ctx context.Context, cfg RunConfig, out io.Writer, csvPath, jsonPath string) error {
	d, err := pvt.NewRegimeDispatcher(cfg.Fluid, cfg.Correlations)
	if err != nil {
		return err
	}
	sampler, err := pvt.NewPropertySampler(d, cfg.Sampling, pvt.NewSamplerRNG(pvt.NewRunKey(cfg.Fluid.Seed)))
	if err != nil {
		return err
	}
	table, err := sampler.Run(ctx)
	if err != nil {
		return err
	}
	summary := stats.Summarize(table)
	printRunReport(out, d, table, summary)

	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error { return writeTableCSV(w, table) }); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
		logrus.Infof("Wrote %d rows to %s", table.Len(), csvPath)
	}
	if jsonPath != "" {
		if err := writeFile(jsonPath, func(w io.Writer) error { return writeSummaryJSON(w, summary) }); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		logrus.Infof("Wrote summary to %s", jsonPath)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Execute runs the CLI root command. An interrupt cancels a running ensemble.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// addFluidFlags registers the fluid, correlation and config flags on c.
func addFluidFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Run config YAML with fluid, sampling and correlations sections")
	c.Flags().StringVar(&bundlePath, "correlations", "", "Correlation bundle YAML (rs, bo, co); replaces the config's correlations section")
	c.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	c.Flags().Float64Var(&pb, "pb", 0, "Bubble-point pressure (psia)")
	c.Flags().Float64Var(&rsb, "rsb", 0, "Solution gas-oil ratio at pb (scf/STB)")
	c.Flags().Float64Var(&api, "api", 0, "Stock-tank oil gravity (°API)")
	c.Flags().Float64Var(&gasSG, "gas-sg", 0, "Gas specific gravity (air = 1)")
	c.Flags().Float64Var(&tankOilSG, "oil-sg", 0.82, "Stock-tank oil specific gravity (water = 1)")
	c.Flags().Float64Var(&pr, "pr", 0, "Reservoir pressure (psia)")
	c.Flags().Float64Var(&temperatureF, "temperature", 0, "Reservoir temperature (°F)")
	c.Flags().Float64Var(&separatorP, "separator-p", 100, "Separator pressure (psia)")
	c.Flags().Float64Var(&separatorT, "separator-t", 120, "Separator temperature (°F)")

	c.Flags().StringVar(&rsSaturated, "rs-saturated", pvt.RsStanding, "Rs correlation below pb (standing, velarde)")
	c.Flags().StringVar(&boSaturated, "bo-saturated", pvt.BoVasquezBeggs, "Bo correlation below pb (vasquez-beggs, standing)")
	c.Flags().StringVar(&coUndersaturated, "co-undersaturated", pvt.CoVasquezBeggs, "Co correlation above pb (vasquez-beggs, petrosky-farshad)")
}

// init sets up CLI flags and subcommands
func init() {
	addFluidFlags(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the pressure draws")
	runCmd.Flags().IntVar(&sampleCount, "samples", 200, "Number of random pressure samples")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Parallel evaluators (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the sampled table as CSV to this path")
	runCmd.Flags().StringVar(&summaryPath, "summary-json", "", "Write the ensemble summary as JSON to this path")

	addFluidFlags(compareCmd)
	compareCmd.Flags().Float64Var(&comparePressure, "pressure", 0, "Pressure to compare at (psia, default pr)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
