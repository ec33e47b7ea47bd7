package analyze

import (
	"fmt"
	"slices"
	"time"

	"github.com/ppiankov/teamlens/internal/model"
)

// Analyzer runs the three analyses over a table and assembles a report.
// Each call reads the table without mutating it and allocates its own
// result structures, so one Analyzer may serve concurrent callers.
type Analyzer struct {
	rate int
}

// NewAnalyzer creates an analyzer with the given rate (themes taken from
// each end of a profile).
func NewAnalyzer(rate int) *Analyzer {
	return &Analyzer{rate: rate}
}

// Analyze computes the histograms, pairwise distances and specific themes
// for one table and returns them as a single report.
func (a *Analyzer) Analyze(subject string, table model.Table) (*model.Report, error) {
	if len(table) == 0 {
		return nil, model.ErrEmptyTable
	}

	strengths, weaknesses := Histogram(table, a.rate)

	distSeq, err := Distances(table, a.rate)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}

	specSeq, err := Specifics(table, a.rate)
	if err != nil {
		return nil, fmt.Errorf("specific themes: %w", err)
	}

	return &model.Report{
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
		Rate:        a.rate,
		Members:     len(table),
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Distances:   slices.AppendSeq(make([]model.PairDistance, 0), distSeq),
		Specifics:   slices.AppendSeq(make([]model.MemberSpecific, 0), specSeq),
	}, nil
}
