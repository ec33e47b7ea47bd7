package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/teamlens/internal/model"
)

// Renderer writes analysis reports in the supported output formats.
type Renderer struct {
	includeFooter bool
	top           int // Histogram rows per section, 0 for all
}

// NewRenderer creates a renderer. top limits how many histogram rows each
// section shows (highest counts first); 0 shows the full vocabulary.
func NewRenderer(includeFooter bool, top int) *Renderer {
	return &Renderer{
		includeFooter: includeFooter,
		top:           top,
	}
}

// RenderText writes the four labeled report sections to w.
func (r *Renderer) RenderText(report *model.Report, w io.Writer) error {
	var b strings.Builder

	b.WriteString("=== Strengths Histogram ===\n")
	writeHistogram(&b, report.Strengths, r.top)
	b.WriteString("\n")

	b.WriteString("=== Weaknesses Histogram ===\n")
	writeHistogram(&b, report.Weaknesses, r.top)
	b.WriteString("\n")

	b.WriteString("=== Distances ===\n")
	for _, pair := range report.Distances {
		fmt.Fprintf(&b, "%s <-> %s: %.2f\n", pair.MemberA, pair.MemberB, pair.Distance)
	}
	b.WriteString("\n")

	b.WriteString("=== Specific Themes ===\n")
	for _, spec := range report.Specifics {
		fmt.Fprintf(&b, "%s: {%s}\n", spec.Member, joinThemes(spec.Themes))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the report as indented JSON to the given path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown document to the given path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Team Themes Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "Generated: %s · Members: %d · Rate: %d\n\n",
		report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), report.Members, report.Rate)

	b.WriteString("## Strengths Histogram\n\n")
	writeHistogramTable(&b, report.Strengths, r.top)

	b.WriteString("## Weaknesses Histogram\n\n")
	writeHistogramTable(&b, report.Weaknesses, r.top)

	b.WriteString("## Distances\n\n")
	if len(report.Distances) == 0 {
		b.WriteString("No member pairs to compare.\n\n")
	} else {
		b.WriteString("| Member | Member | Distance |\n")
		b.WriteString("|--------|--------|----------|\n")
		for _, pair := range report.Distances {
			fmt.Fprintf(&b, "| %s | %s | %.2f |\n", pair.MemberA, pair.MemberB, pair.Distance)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Specific Themes\n\n")
	for _, spec := range report.Specifics {
		if len(spec.Themes) == 0 {
			fmt.Fprintf(&b, "- **%s**: none\n", spec.Member)
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", spec.Member, joinThemes(spec.Themes))
	}
	b.WriteString("\n")

	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("*Report produced by [teamlens](https://github.com/ppiankov/teamlens).*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

type histogramRow struct {
	Theme model.Theme
	Count int
}

// histogramRows orders a histogram for display: vocabulary order first,
// then any out-of-vocabulary labels. With top > 0 the rows are re-sorted
// by descending count and truncated.
func histogramRows(hist map[model.Theme]int, top int) []histogramRow {
	rows := make([]histogramRow, 0, len(hist))
	for _, theme := range model.AllThemes {
		if count, ok := hist[theme]; ok {
			rows = append(rows, histogramRow{Theme: theme, Count: count})
		}
	}

	var extras []histogramRow
	for theme, count := range hist {
		if !model.IsTheme(string(theme)) {
			extras = append(extras, histogramRow{Theme: theme, Count: count})
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Theme < extras[j].Theme })
	rows = append(rows, extras...)

	if top > 0 {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
		if top < len(rows) {
			rows = rows[:top]
		}
	}

	return rows
}

func writeHistogram(b *strings.Builder, hist map[model.Theme]int, top int) {
	for _, row := range histogramRows(hist, top) {
		fmt.Fprintf(b, "%s: %d\n", row.Theme, row.Count)
	}
}

func writeHistogramTable(b *strings.Builder, hist map[model.Theme]int, top int) {
	b.WriteString("| Theme | Count |\n")
	b.WriteString("|-------|-------|\n")
	for _, row := range histogramRows(hist, top) {
		fmt.Fprintf(b, "| %s | %d |\n", row.Theme, row.Count)
	}
	b.WriteString("\n")
}

func joinThemes(themes []model.Theme) string {
	labels := make([]string, len(themes))
	for i, theme := range themes {
		labels[i] = string(theme)
	}
	return strings.Join(labels, ", ")
}
