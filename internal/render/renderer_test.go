package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/teamlens/internal/model"
)

func sampleReport() *model.Report {
	strengths := make(map[model.Theme]int, len(model.AllThemes))
	weaknesses := make(map[model.Theme]int, len(model.AllThemes))
	for _, theme := range model.AllThemes {
		strengths[theme] = 0
		weaknesses[theme] = 0
	}
	strengths[model.ThemeAchiever] = 2
	weaknesses[model.ThemeWoo] = 1

	return &model.Report{
		Subject:     "team.json",
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Rate:        5,
		Members:     2,
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Distances: []model.PairDistance{
			{MemberA: "alice", MemberB: "bob", Distance: 0.43},
		},
		Specifics: []model.MemberSpecific{
			{Member: "alice", Themes: []model.Theme{model.ThemeAchiever, model.ThemeFocus}},
			{Member: "bob", Themes: nil},
		},
	}
}

func TestRenderer_RenderText(t *testing.T) {
	var b strings.Builder
	renderer := NewRenderer(true, 0)

	if err := renderer.RenderText(sampleReport(), &b); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	out := b.String()

	for _, section := range []string{
		"=== Strengths Histogram ===",
		"=== Weaknesses Histogram ===",
		"=== Distances ===",
		"=== Specific Themes ===",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("expected output to contain section %q", section)
		}
	}

	// Distances print with two decimals
	if !strings.Contains(out, "alice <-> bob: 0.43") {
		t.Errorf("expected two-decimal distance line, got:\n%s", out)
	}

	if !strings.Contains(out, "Achiever: 2") {
		t.Error("expected Achiever strength count in output")
	}
	if !strings.Contains(out, "alice: {Achiever, Focus}") {
		t.Error("expected alice's specific themes in output")
	}

	// Zero counts are printed, never omitted
	if !strings.Contains(out, "Harmony: 0") {
		t.Error("expected zero-count themes to be printed")
	}
}

func TestRenderer_RenderText_Top(t *testing.T) {
	var b strings.Builder
	renderer := NewRenderer(true, 1)

	if err := renderer.RenderText(sampleReport(), &b); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "Achiever: 2") {
		t.Error("expected the highest-count theme to survive truncation")
	}
	if strings.Contains(out, "Harmony: 0") {
		t.Error("expected zero-count themes to be truncated away with --top 1")
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	renderer := NewRenderer(true, 0)

	if err := renderer.RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	for _, want := range []string{`"subject": "team.json"`, `"member_a": "alice"`, `"specific_themes"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected JSON report to contain %s", want)
		}
	}
}

func TestRenderer_RenderMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	renderer := NewRenderer(true, 0)

	if err := renderer.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"# Team Themes Report: team.json",
		"## Strengths Histogram",
		"| alice | bob | 0.43 |",
		"- **bob**: none",
		"*Report produced by",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected Markdown report to contain %q", want)
		}
	}
}

func TestRenderer_RenderMarkdown_NoFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	renderer := NewRenderer(false, 0)

	if err := renderer.RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	if strings.Contains(string(data), "*Report produced by") {
		t.Error("expected no footer")
	}
}
