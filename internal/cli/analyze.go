package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/teamlens/internal/analyze"
	"github.com/ppiankov/teamlens/internal/model"
	"github.com/ppiankov/teamlens/internal/render"
	"github.com/spf13/cobra"
)

var (
	rate       int
	outJSON    string
	outMD      string
	strict     bool
	noValidate bool
	top        int
	noFooter   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze one team table and print the report",
	Long: `Analyze reads a team table - a JSON object mapping member names to
ranked theme lists - and prints four sections:
- Strengths Histogram: how often each theme lands in the team's top ranks
- Weaknesses Histogram: the same for the bottom ranks
- Distances: pairwise profile dissimilarity in [0,1]
- Specific Themes: dominant themes held by exactly one member

The table is read from the given file, or from standard input when no
file is given.

Example:
  teamlens analyze team.json
  cat team.json | teamlens analyze
  teamlens analyze team.json --rate 3 --json report.json --md report.md
  teamlens analyze team.json --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Analysis flags
	analyzeCmd.Flags().IntVar(&rate, "rate", 5, "themes taken from each end of a profile")

	// Input flags
	analyzeCmd.Flags().BoolVar(&strict, "strict", false, "reject tables containing unknown theme labels")
	analyzeCmd.Flags().BoolVar(&noValidate, "no-validate", false, "silently accept unknown theme labels")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().IntVar(&top, "top", 0, "histogram rows to show, highest counts first (0 = all)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	mode, err := validationMode()
	if err != nil {
		return err
	}

	subject := "stdin"
	var (
		table    model.Table
		warnings []string
	)

	if len(args) == 1 {
		subject = args[0]
		table, warnings, err = model.LoadTable(args[0], mode)
	} else {
		table, warnings, err = model.DecodeTable(os.Stdin, mode)
	}
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", subject)
		fmt.Fprintf(os.Stderr, "Members: %d\n", len(table))
		fmt.Fprintf(os.Stderr, "Rate: %d\n", rate)
		fmt.Fprintln(os.Stderr)
	}

	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	analyzer := analyze.NewAnalyzer(rate)
	report, err := analyzer.Analyze(subject, table)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	report.Warnings = warnings

	renderer := render.NewRenderer(!noFooter, top)
	if err := renderer.RenderText(report, os.Stdout); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	return nil
}

// validationMode resolves the --strict/--no-validate flags into a decode
// policy. Warn is the default.
func validationMode() (model.ValidationMode, error) {
	if strict && noValidate {
		return "", fmt.Errorf("--strict and --no-validate are mutually exclusive")
	}
	if strict {
		return model.ValidateReject, nil
	}
	if noValidate {
		return model.ValidatePass, nil
	}
	return model.ValidateWarn, nil
}
