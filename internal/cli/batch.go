package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ppiankov/teamlens/internal/analyze"
	"github.com/ppiankov/teamlens/internal/cache"
	"github.com/ppiankov/teamlens/internal/model"
	"github.com/ppiankov/teamlens/internal/render"
	"github.com/ppiankov/teamlens/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	noCache      bool
	// rate, strict, noValidate, top and noFooter are defined in analyze.go
	// and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file|dir>...",
	Short: "Analyze multiple team tables in parallel",
	Long: `Batch processes multiple table files concurrently:
- Accept table files and directories (scanned for *.json)
- Analyze tables in parallel with a configurable worker count
- Skip recomputation for files with identical content (report cache)
- Write a JSON and Markdown report per table

Example:
  teamlens batch teams/
  teamlens batch q1.json q2.json --concurrency 10 --output-dir ./reports
  teamlens batch teams/ --rate 3 --no-cache`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./teamlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")

	// Flags shared with the analyze command
	batchCmd.Flags().IntVar(&rate, "rate", 5, "themes taken from each end of a profile")
	batchCmd.Flags().BoolVar(&strict, "strict", false, "reject tables containing unknown theme labels")
	batchCmd.Flags().BoolVar(&noValidate, "no-validate", false, "silently accept unknown theme labels")
	batchCmd.Flags().IntVar(&top, "top", 0, "histogram rows to show, highest counts first (0 = all)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	mode, err := validationMode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Teamlens Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Rate:         %d\n", rate)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Collect table files
	paths, err := worker.CollectPaths(args)
	if err != nil {
		return fmt.Errorf("collect tables: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Found %d table files\n", len(paths))
	fmt.Fprintf(os.Stderr, "\n")

	// Create report cache
	cfg := model.DefaultConfig()
	var reports cache.Cache
	if cfg.Cache.Enabled && !noCache {
		reports = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	// Process files
	analyzer := analyze.NewAnalyzer(rate)
	processor := worker.NewBatchProcessor(analyzer, concurrency, rate, mode, reports)

	fmt.Fprintf(os.Stderr, "⚙️  Processing tables with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results := processor.ProcessPaths(ctx, paths)

	// Render results
	renderer := render.NewRenderer(!noFooter, top)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		slug := tableSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		cached := ""
		if result.Cached {
			cached = " (cached)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s (%d members, %d pairs)%s\n",
			result.Path, result.Report.Members, len(result.Report.Distances), cached)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d tables\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d tables failed", failureCount, len(results))
	}

	return nil
}

// tableSlug derives an output file stem from a table path.
func tableSlug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
