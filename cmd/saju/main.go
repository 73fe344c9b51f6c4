/*
main.go - Command-line front end for the saju engine

PURPOSE:
  Runs the engine without the HTTP server: analyze one birth date, score
  two birth dates, or compute constitution codes for a YAML roster.

COMMANDS:
  saju analyze <YYYY-MM-DD> [--hour H] [--year Y] [--name N] [--json]
  saju compat <YYYY-MM-DD> <YYYY-MM-DD> [--hour-a H] [--hour-b H] [--json]
  saju roster <file.yaml>

CONFIGURATION:
  --config points at the same YAML file the server reads. Only the engine
  section (evaluation year, allocator) is used here. SAJU_* environment
  variables apply as well.

SEE ALSO:
  - config/load.go: Configuration sources
  - roster/roster.go: Roster format
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/saju-engine/config"
	"github.com/warp/saju-engine/roster"
	"github.com/warp/saju-engine/saju"
	"github.com/warp/saju-engine/sasang"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		engine     *saju.Engine
	)

	cmd := &cobra.Command{
		Use:          "saju",
		Short:        "Four-pillar chart, element balance and constitution",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			engine, err = saju.NewEngine(cfg.Engine.EngineOptions())
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (optional)")

	getEngine := func() *saju.Engine { return engine }
	cmd.AddCommand(analyzeCmd(getEngine), compatCmd(getEngine), rosterCmd(getEngine))
	return cmd
}

// optionalHour returns nil unless the flag was set on the command line.
func optionalHour(cmd *cobra.Command, flag string, v int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return saju.Hour(v)
}

// =============================================================================
// ANALYZE
// =============================================================================

func analyzeCmd(engine func() *saju.Engine) *cobra.Command {
	var (
		hour   int
		year   int
		name   string
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "analyze <YYYY-MM-DD>",
		Short: "Analyze one birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := engine()
			if year == 0 {
				year = e.EvaluationYear()
			}

			a, err := e.AnalyzeForYear(args[0], optionalHour(cmd, "hour", hour), year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, a)
			}
			printAnalysis(out, a, name)
			return nil
		},
	}

	c.Flags().IntVar(&hour, "hour", 0, "Birth hour 0-23 (omit if unknown)")
	c.Flags().IntVar(&year, "year", 0, "Evaluation year for the fortune (default: configured year)")
	c.Flags().StringVar(&name, "name", "당신", "Name used in fun facts")
	c.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return c
}

func printAnalysis(w io.Writer, a saju.Analysis, name string) {
	labels := []string{"년주", "월주", "일주", "시주"}
	for i, p := range a.Chart.Pillars() {
		fmt.Fprintf(w, "%s %s (%s)\n", labels[i], p.Format(), p.FormatHanja())
	}
	fmt.Fprintf(w, "띠 %s %s\n", a.Chart.Zodiac, a.Chart.ZodiacEmoji)
	fmt.Fprintf(w, "오행 %s\n", formatBalance(a.Balance))

	c := a.Health.Constitution
	fmt.Fprintf(w, "체질 %s (%s)\n", c.Korean(), c.Code())
	if info, ok := sasang.Get(c); ok {
		fmt.Fprintf(w, "별명 %s %s\n", info.Emoji, info.Nickname)
	}
	fmt.Fprintf(w, "강한 장기 %s, 약한 장기 %s\n", a.Health.StrongOrgan, a.Health.WeakOrgan)
	fmt.Fprintf(w, "%d년 %s\n", a.Health.EvaluationYear, a.Health.YearFortune)

	for _, f := range saju.FunFacts(c, a.Balance, name) {
		fmt.Fprintf(w, "- %s\n", f)
	}
}

func formatBalance(b saju.ElementBalance) string {
	parts := make([]string, len(saju.Elements))
	for i, e := range saju.Elements {
		parts[i] = fmt.Sprintf("%s %d", e, b[e])
	}
	return strings.Join(parts, " | ")
}

// =============================================================================
// COMPAT
// =============================================================================

type compatOutput struct {
	saju.CompatibilityResult
	ConstitutionPair string              `json:"constitution_pair"`
	FunPoints        []string            `json:"fun_points"`
	A                saju.ElementBalance `json:"a"`
	B                saju.ElementBalance `json:"b"`
}

func compatCmd(engine func() *saju.Engine) *cobra.Command {
	var (
		hourA  int
		hourB  int
		asJSON bool
	)

	c := &cobra.Command{
		Use:   "compat <YYYY-MM-DD> <YYYY-MM-DD>",
		Short: "Score two birth dates (the order matters)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := engine()

			a, err := e.Analyze(args[0], optionalHour(cmd, "hour-a", hourA))
			if err != nil {
				return fmt.Errorf("first: %w", err)
			}
			b, err := e.Analyze(args[1], optionalHour(cmd, "hour-b", hourB))
			if err != nil {
				return fmt.Errorf("second: %w", err)
			}

			ca, cb := a.Health.Constitution, b.Health.Constitution
			res := compatOutput{
				CompatibilityResult: saju.CalculateCompatibility(a.Balance, b.Balance),
				ConstitutionPair:    sasang.PairDescription(ca, cb),
				FunPoints:           sasang.FunPoints(ca, cb),
				A:                   a.Balance,
				B:                   b.Balance,
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			fmt.Fprintf(out, "점수 %d\n%s\n", res.Score, res.Description)
			fmt.Fprintf(out, "A %s\nB %s\n", formatBalance(res.A), formatBalance(res.B))
			for _, d := range res.Details {
				fmt.Fprintf(out, "- %s\n", d)
			}
			fmt.Fprintln(out, res.ConstitutionPair)
			for _, p := range res.FunPoints {
				fmt.Fprintf(out, "* %s\n", p)
			}
			return nil
		},
	}

	c.Flags().IntVar(&hourA, "hour-a", 0, "Birth hour of the first person")
	c.Flags().IntVar(&hourB, "hour-b", 0, "Birth hour of the second person")
	c.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return c
}

// =============================================================================
// ROSTER
// =============================================================================

func rosterCmd(engine func() *saju.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <file.yaml>",
		Short: "Print the constitution code of every roster entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.Load(args[0])
			if err != nil {
				return err
			}
			computed, err := roster.Compute(r, engine())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range computed {
				fmt.Fprintf(out, "%s\t%s\t%s\n", c.ID, c.Code, c.Name)
			}
			if r.Duplicates > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d duplicate ids\n", r.Duplicates)
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
