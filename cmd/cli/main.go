package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sszqubits/adapters/report"
	"sszqubits/app"
	"sszqubits/domain/experiment"
	"sszqubits/domain/physics"
	"sszqubits/internal"
	"sszqubits/internal/config"
	apperrors "sszqubits/internal/errors"
	"sszqubits/internal/sweep"
	"sszqubits/internal/synth"
)

func main() {
	// .env is optional; the environment wins when both are set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	logger := internal.NewLogger(internal.ParseLevel(cfg.Log.Level))

	rootCmd := &cobra.Command{
		Use:   "sszqubits",
		Short: "Segment-density drift predictions, discrimination runs and historical validation",
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newZonesCmd(),
		newSweepCmd(cfg, logger),
		newClassifyCmd(logger),
		newValidateCmd(),
		newReportCmd(cfg, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

// fail prints the error with its application code when one is attached, then
// exits non-zero.
func fail(err error) {
	if apperrors.IsAppError(err) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", apperrors.GetCode(err), err)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print the pre-registered falsifiable predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			preds, err := app.FalsifiablePredictions(physics.Earth())
			if err != nil {
				return err
			}
			return printJSON(preds)
		},
	}
	return cmd
}

func newZonesCmd() *cobra.Command {
	var eps float64
	var center float64

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Compute coherent zone geometry for a phase tolerance",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := physics.Earth()
			width, err := c.ZoneWidth(eps, c.ReferenceMass, c.ReferenceRadius)
			if err != nil {
				return err
			}
			hMin, hMax, err := c.CoherentZone(center, 2*eps, c.ReferenceMass, c.ReferenceRadius)
			if err != nil {
				return err
			}
			return printJSON(map[string]float64{
				"tolerance":    eps,
				"zone_width_m": width,
				"h_min_m":      hMin,
				"h_max_m":      hMax,
			})
		},
	}

	cmd.Flags().Float64Var(&eps, "eps", 1e-18, "Phase tolerance")
	cmd.Flags().Float64Var(&center, "center", 0, "Zone center height in meters")
	return cmd
}

func newSweepCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var heights, frequencies, times string
	var out string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate phase drift over a parameter grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			hs, err := parseFloats(heights)
			if err != nil {
				return apperrors.Wrapf(err, "invalid heights %q", heights)
			}
			fs, err := parseFloats(frequencies)
			if err != nil {
				return apperrors.Wrapf(err, "invalid frequencies %q", frequencies)
			}
			ts, err := parseFloats(times)
			if err != nil {
				return apperrors.Wrapf(err, "invalid times %q", times)
			}

			engine := sweep.NewEngine(physics.Earth(), cfg.Sweep.Workers)
			points, err := engine.PhaseDriftGrid(cmd.Context(), hs, fs, ts)
			if err != nil {
				return err
			}
			logger.Info("sweep finished: %d cells across %d workers", len(points), cfg.Sweep.Workers)

			if out != "" {
				return report.WriteJSON(report.FigureData{Sweep: report.SweepRows(points)}, out)
			}
			return printJSON(report.SweepRows(points))
		},
	}

	cmd.Flags().StringVar(&heights, "heights", "0.001,0.01,0.1,1", "Comma-separated height separations in meters")
	cmd.Flags().StringVar(&frequencies, "frequencies", "5e9,7e9", "Comma-separated linear frequencies in Hz")
	cmd.Flags().StringVar(&times, "times", "1,10,100", "Comma-separated elapsed times in seconds")
	cmd.Flags().StringVar(&out, "out", "", "Optional JSON output path")
	return cmd
}

func newClassifyCmd(logger *internal.Logger) *cobra.Command {
	var confound string
	var seed int64
	var sigma float64

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Run a discrimination round against synthetic data with a known ground truth",
		Long: `Generate a synthetic measurement set carrying either genuine drift or a
named confound, then run the model comparison and the scaling-signature
gate against it.

Example: sszqubits classify --confound thermal --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg := synth.DefaultConfig()
			genCfg.Seed = seed
			if sigma > 0 {
				genCfg.Sigma = sigma
			}
			genCfg.Confound = experiment.Confound(confound)

			svc := app.NewDiscriminationService(physics.Earth())
			result, err := svc.Discriminate(cmd.Context(), app.DiscriminationRequest{Synthetic: &genCfg})
			if err != nil {
				return err
			}
			logger.Info("run %s: verdict=%s classified=%s", result.RunID, result.Fit.Verdict, result.Classification.Best)
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&confound, "confound", string(experiment.ConfoundNone), "Injected ground truth: none, thermal, lo_noise, vibration, magnetic, charge")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "Override phase noise sigma in radians")
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check predictions against published redshift experiments",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewDiscriminationService(physics.Earth())
			cases, err := svc.Validate(cmd.Context())
			if err != nil {
				return err
			}
			failed := 0
			for _, vc := range cases {
				if !vc.Passed {
					failed++
				}
			}
			if err := printJSON(cases); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d benchmarks failed", failed, len(cases))
			}
			return nil
		},
	}
	return cmd
}

func newReportCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the full Excel and JSON artifact set for one run",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := physics.Earth()
			svc := app.NewDiscriminationService(c)

			preds, err := app.FalsifiablePredictions(c)
			if err != nil {
				return err
			}
			cases, err := svc.Validate(cmd.Context())
			if err != nil {
				return err
			}
			engine := sweep.NewEngine(c, cfg.Sweep.Workers)
			points, err := engine.PhaseDriftGrid(cmd.Context(),
				logspace(1e-3, 1, 7), []float64{5e9, 7e9}, []float64{1, 10, 100})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Paths.ReportDir, 0o755); err != nil {
				return err
			}
			wb := report.Workbook{Predictions: preds, Validation: cases, Sweep: points}
			xlsxPath := filepath.Join(cfg.Paths.ReportDir, name+".xlsx")
			if err := report.WriteExcel(wb, xlsxPath); err != nil {
				return err
			}
			jsonPath := filepath.Join(cfg.Paths.ReportDir, name+".json")
			fd := report.FigureData{Predictions: preds, Validation: cases, Sweep: report.SweepRows(points)}
			if err := report.WriteJSON(fd, jsonPath); err != nil {
				return err
			}

			logger.Info("wrote %s and %s", xlsxPath, jsonPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "run", "Base name for the generated artifacts")
	return cmd
}

func parseFloats(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func logspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (math.Log10(hi) - math.Log10(lo)) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, math.Log10(lo)+float64(i)*step)
	}
	return out
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
