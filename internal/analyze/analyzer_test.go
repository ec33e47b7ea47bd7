package analyze

import (
	"errors"
	"testing"

	"github.com/ppiankov/teamlens/internal/model"
)

func TestAnalyzer_Analyze(t *testing.T) {
	table := model.Table{
		"alice": vocab(0, 10),
		"bob":   vocab(5, 15),
		"carol": vocab(10, 20),
	}

	analyzer := NewAnalyzer(5)
	report, err := analyzer.Analyze("team.json", table)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.Subject != "team.json" {
		t.Errorf("expected subject team.json, got %s", report.Subject)
	}
	if report.Rate != 5 {
		t.Errorf("expected rate 5, got %d", report.Rate)
	}
	if report.Members != 3 {
		t.Errorf("expected 3 members, got %d", report.Members)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}

	if len(report.Strengths) != len(model.AllThemes) {
		t.Errorf("expected full-vocabulary strengths, got %d keys", len(report.Strengths))
	}
	if len(report.Weaknesses) != len(model.AllThemes) {
		t.Errorf("expected full-vocabulary weaknesses, got %d keys", len(report.Weaknesses))
	}

	// 3 members -> 3 pairs, and one specifics entry per member
	if len(report.Distances) != 3 {
		t.Errorf("expected 3 pair distances, got %d", len(report.Distances))
	}
	if len(report.Specifics) != 3 {
		t.Errorf("expected 3 specifics entries, got %d", len(report.Specifics))
	}
}

func TestAnalyzer_Analyze_EmptyTable(t *testing.T) {
	analyzer := NewAnalyzer(5)

	_, err := analyzer.Analyze("empty.json", model.Table{})
	if !errors.Is(err, model.ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestAnalyzer_Analyze_BadRate(t *testing.T) {
	analyzer := NewAnalyzer(0)

	_, err := analyzer.Analyze("team.json", model.Table{"alice": vocab(0, 10)})
	if !errors.Is(err, ErrRate) {
		t.Errorf("expected ErrRate, got %v", err)
	}
}

func TestAnalyzer_Analyze_SingleMember(t *testing.T) {
	analyzer := NewAnalyzer(5)

	report, err := analyzer.Analyze("solo.json", model.Table{"alice": vocab(0, 10)})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(report.Distances) != 0 {
		t.Errorf("expected no distances for a single member, got %d", len(report.Distances))
	}
	if len(report.Specifics) != 1 {
		t.Fatalf("expected 1 specifics entry, got %d", len(report.Specifics))
	}
	if len(report.Specifics[0].Themes) != 5 {
		t.Errorf("expected the member's full top-5 set, got %v", report.Specifics[0].Themes)
	}
}
