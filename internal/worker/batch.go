package worker

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ppiankov/teamlens/internal/cache"
	"github.com/ppiankov/teamlens/internal/model"
)

// TableAnalyzer produces a report for one decoded table.
type TableAnalyzer interface {
	Analyze(subject string, table model.Table) (*model.Report, error)
}

// FileTask analyzes one table file.
type FileTask struct {
	Path     string
	Analyzer TableAnalyzer
	Mode     model.ValidationMode
	Rate     int         // Cache key component; must match the analyzer's rate
	Reports  cache.Cache // Optional report cache, nil disables caching
}

// Run loads, decodes and analyzes the table file.
func (t *FileTask) Run(ctx context.Context) Outcome {
	if err := ctx.Err(); err != nil {
		return &FileResult{Path: t.Path, Error: err}
	}

	doc, err := os.ReadFile(t.Path)
	if err != nil {
		return &FileResult{Path: t.Path, Error: fmt.Errorf("read table: %w", err)}
	}

	var key string
	if t.Reports != nil {
		key = cache.Key(doc, t.Rate)
		if report, found := t.Reports.Get(key); found {
			return &FileResult{Path: t.Path, Report: report, Cached: true}
		}
	}

	table, warnings, err := model.DecodeTable(bytes.NewReader(doc), t.Mode)
	if err != nil {
		return &FileResult{Path: t.Path, Error: err}
	}

	report, err := t.Analyzer.Analyze(t.Path, table)
	if err != nil {
		return &FileResult{Path: t.Path, Error: err}
	}
	report.Warnings = warnings

	if t.Reports != nil {
		t.Reports.Set(key, report)
	}

	return &FileResult{Path: t.Path, Report: report}
}

// FileResult represents the result of analyzing one table file.
type FileResult struct {
	Path   string
	Report *model.Report
	Cached bool
	Error  error
}

// Err returns the error from the file result.
func (r *FileResult) Err() error {
	return r.Error
}

// BatchProcessor analyzes multiple table files concurrently.
type BatchProcessor struct {
	analyzer    TableAnalyzer
	concurrency int
	rate        int
	mode        model.ValidationMode
	reports     cache.Cache
}

// NewBatchProcessor creates a new batch processor. reports may be nil to
// disable caching.
func NewBatchProcessor(analyzer TableAnalyzer, concurrency, rate int, mode model.ValidationMode, reports cache.Cache) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		rate:        rate,
		mode:        mode,
		reports:     reports,
	}
}

// ProcessPaths analyzes the given table files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&FileTask{
			Path:     path,
			Analyzer: b.analyzer,
			Mode:     b.mode,
			Rate:     b.rate,
			Reports:  b.reports,
		})
	}

	outcomes := pool.Wait()

	results := make([]*FileResult, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = outcome.(*FileResult)
	}

	// Pool completion order is nondeterministic
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return results
}

// CollectPaths expands files and directories into a deduplicated, sorted
// list of .json table files. Directories are scanned one level deep.
func CollectPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(arg, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", arg, err)
		}
		for _, match := range matches {
			add(match)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no table files found")
	}

	sort.Strings(paths)
	return paths, nil
}
