package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pvt-sim/pvt-sim/pvt"
	"github.com/pvt-sim/pvt-sim/pvt/stats"
)

// tableHeader is the first CSV row; columns follow in pvt.AllProperties order.
var tableHeader = []string{"pressure_psia", "regime", "rs", "bo", "co", "rho_oil", "mu_oil"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeTableCSV writes one row per sample, in draw order.
func writeTableCSV(w io.Writer, t *pvt.PropertyTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	for _, pt := range t.Samples {
		row := []string{formatFloat(pt.Pressure), pt.Regime.String()}
		for _, prop := range pvt.AllProperties {
			row = append(row, formatFloat(pt.Value(prop)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSummaryJSON(w io.Writer, s *stats.EnsembleSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printRunReport writes the bubble-point reference, the deterministic point
// and the ensemble statistics as plain text.
func printRunReport(w io.Writer, d *pvt.RegimeDispatcher, t *pvt.PropertyTable, s *stats.EnsembleSummary) {
	ref := t.BubblePoint
	fmt.Fprintf(w, "=== Bubble Point Reference (pb = %.1f psia) ===\n", ref.Pb)
	refPoint := ref.Point()
	for _, prop := range pvt.AllProperties {
		fmt.Fprintf(w, "  %-8s %14.6g %-8s %s\n", prop, refPoint.Value(prop), prop.Unit(), d.CorrelationFor(prop, pvt.Saturated))
	}
	fmt.Fprintf(w, "  %-8s %14.6g %-8s %s\n", "mu_dead", ref.MuDeadOil, "cp", "dead oil")
	fmt.Fprintf(w, "  Standing Rs at pb before anchoring: %.2f scf/STB\n", ref.RsStandingRaw)

	det := t.Deterministic
	fmt.Fprintf(w, "\n=== Reservoir Pressure (pr = %.1f psia, %s) ===\n", det.Pressure, det.Regime)
	for _, prop := range pvt.AllProperties {
		fmt.Fprintf(w, "  %-8s %14.6g %-8s %s\n", prop, det.Value(prop), prop.Unit(), d.CorrelationFor(prop, det.Regime))
	}

	fmt.Fprintf(w, "\n=== Ensemble (seed %d) ===\n", s.Seed)
	fmt.Fprintf(w, "  %d samples in [%.1f, %.1f) psia: %d saturated, %d undersaturated\n",
		s.Samples, s.PressureMin, s.PressureMax, s.Saturated, s.Undersaturated)
	fmt.Fprintf(w, "  %-8s %12s %12s %12s %12s %12s\n", "property", "mean", "std_dev", "p10", "p50", "p90")
	for _, ps := range s.Properties {
		fmt.Fprintf(w, "  %-8s %12.5g %12.5g %12.5g %12.5g %12.5g\n", ps.Property, ps.Mean, ps.StdDev, ps.P10, ps.P50, ps.P90)
	}
}

// printComparison writes one line per correlation. Failed rows show the error
// in place of a value.
func printComparison(w io.Writer, p float64, regime pvt.Regime, rows []pvt.CorrelationResult) {
	fmt.Fprintf(w, "=== Correlations at p = %.1f psia (%s) ===\n", p, regime)
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "  %-8s %-32s error: %v\n", r.Property, r.Correlation, r.Err)
			continue
		}
		fmt.Fprintf(w, "  %-8s %-32s %14.6g %s\n", r.Property, r.Correlation, r.Value, r.Property.Unit())
	}
}
