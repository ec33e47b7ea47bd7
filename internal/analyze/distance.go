package analyze

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ppiankov/teamlens/internal/model"
)

var (
	// ErrRate is returned when the rate parameter is below 1.
	ErrRate = errors.New("rate must be at least 1")

	// ErrEmptyProfile is returned when a member's profile has no themes,
	// which would make the Jaccard union empty and the distance undefined.
	ErrEmptyProfile = errors.New("profile has no themes")
)

// Distances returns a lazy sequence of pairwise profile distances: one
// entry per unordered pair of distinct members, emitted in sorted member
// order with the first member preceding the second, each pair exactly once.
//
// distance = 1 - (jaccard(topA, topB) + jaccard(bottomA, bottomB)) / 2,
// over the top-rate and bottom-rate theme sets of each profile. 0 means
// both ends match exactly, 1 means both ends are fully disjoint.
//
// The preconditions rate >= 1 and every profile non-empty are checked up
// front; a violation fails the whole call before the first pair is emitted.
func Distances(table model.Table, rate int) (iter.Seq[model.PairDistance], error) {
	if rate < 1 {
		return nil, ErrRate
	}

	names := table.Members()
	for _, name := range names {
		if len(table[name]) == 0 {
			return nil, fmt.Errorf("member %q: %w", name, ErrEmptyProfile)
		}
	}

	return func(yield func(model.PairDistance) bool) {
		for i, nameA := range names {
			for _, nameB := range names[i+1:] {
				pair := model.PairDistance{
					MemberA:  nameA,
					MemberB:  nameB,
					Distance: distance(table[nameA], table[nameB], rate),
				}
				if !yield(pair) {
					return
				}
			}
		}
	}, nil
}

func distance(a, b model.Profile, rate int) float64 {
	sJaccard := jaccard(toSet(firstN(a, rate)), toSet(firstN(b, rate)))
	wJaccard := jaccard(toSet(lastN(a, rate)), toSet(lastN(b, rate)))

	return 1 - (sJaccard+wJaccard)/2
}

// jaccard computes |X ∩ Y| / |X ∪ Y|. Callers guarantee the union is
// non-empty.
func jaccard(x, y map[model.Theme]struct{}) float64 {
	intersection := 0
	union := len(y)
	for theme := range x {
		if _, ok := y[theme]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}
