package analyze

import (
	"testing"

	"github.com/ppiankov/teamlens/internal/model"
)

// vocab returns a profile slice from the vocabulary range [from, to).
func vocab(from, to int) model.Profile {
	return model.Profile(model.AllThemes[from:to])
}

func TestHistogram_CoversFullVocabulary(t *testing.T) {
	tables := map[string]model.Table{
		"empty":      {},
		"one member": {"alice": vocab(0, 10)},
		"two members": {
			"alice": vocab(0, 10),
			"bob":   vocab(10, 20),
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			strengths, weaknesses := Histogram(table, 5)

			if len(strengths) != len(model.AllThemes) {
				t.Errorf("expected %d strength keys, got %d", len(model.AllThemes), len(strengths))
			}
			if len(weaknesses) != len(model.AllThemes) {
				t.Errorf("expected %d weakness keys, got %d", len(model.AllThemes), len(weaknesses))
			}
			for _, theme := range model.AllThemes {
				if _, ok := strengths[theme]; !ok {
					t.Errorf("strengths missing vocabulary theme %s", theme)
				}
				if _, ok := weaknesses[theme]; !ok {
					t.Errorf("weaknesses missing vocabulary theme %s", theme)
				}
			}
		})
	}
}

func TestHistogram_Counts(t *testing.T) {
	table := model.Table{
		"alice": vocab(0, 10),
		"bob":   vocab(0, 10),
		"carol": vocab(5, 15),
	}

	strengths, weaknesses := Histogram(table, 5)

	// alice and bob share a top-5; carol's top-5 starts at index 5
	for i := 0; i < 5; i++ {
		if got := strengths[model.AllThemes[i]]; got != 2 {
			t.Errorf("expected count 2 for %s, got %d", model.AllThemes[i], got)
		}
	}
	for i := 5; i < 10; i++ {
		if got := strengths[model.AllThemes[i]]; got != 1 {
			t.Errorf("expected count 1 for %s, got %d", model.AllThemes[i], got)
		}
	}

	// alice's and bob's bottom-5 coincide with carol's top-5
	for i := 5; i < 10; i++ {
		if got := weaknesses[model.AllThemes[i]]; got != 2 {
			t.Errorf("expected weakness count 2 for %s, got %d", model.AllThemes[i], got)
		}
	}
}

func TestHistogram_CountConservation(t *testing.T) {
	table := model.Table{
		"alice": vocab(0, 10),
		"bob":   vocab(3, 6), // shorter than the rate
		"carol": vocab(12, 20),
	}
	rate := 5

	strengths, weaknesses := Histogram(table, rate)

	expected := 0
	for _, profile := range table {
		n := len(profile)
		if n > rate {
			n = rate
		}
		expected += n
	}

	sSum, wSum := 0, 0
	for _, count := range strengths {
		sSum += count
	}
	for _, count := range weaknesses {
		wSum += count
	}

	if sSum != expected {
		t.Errorf("expected strength counts to sum to %d, got %d", expected, sSum)
	}
	if wSum != expected {
		t.Errorf("expected weakness counts to sum to %d, got %d", expected, wSum)
	}
}

func TestHistogram_ShortProfileTruncation(t *testing.T) {
	table := model.Table{"alice": vocab(0, 3)}

	strengths, weaknesses := Histogram(table, 5)

	// The whole profile counts on both ends
	for i := 0; i < 3; i++ {
		if strengths[model.AllThemes[i]] != 1 {
			t.Errorf("expected %s counted as strength", model.AllThemes[i])
		}
		if weaknesses[model.AllThemes[i]] != 1 {
			t.Errorf("expected %s counted as weakness", model.AllThemes[i])
		}
	}
}

func TestHistogram_UnknownLabelAddsKey(t *testing.T) {
	table := model.Table{
		"alice": {model.ThemeAchiever, model.Theme("Procrastination")},
	}

	strengths, _ := Histogram(table, 5)

	if len(strengths) != len(model.AllThemes)+1 {
		t.Errorf("expected one extra key beyond the vocabulary, got %d keys", len(strengths))
	}
	if got := strengths[model.Theme("Procrastination")]; got != 1 {
		t.Errorf("expected unknown label counted once, got %d", got)
	}
}

func TestHistogram_ZeroRate(t *testing.T) {
	table := model.Table{"alice": vocab(0, 10)}

	strengths, weaknesses := Histogram(table, 0)

	for theme, count := range strengths {
		if count != 0 {
			t.Errorf("expected zero strength count for %s, got %d", theme, count)
		}
	}
	for theme, count := range weaknesses {
		if count != 0 {
			t.Errorf("expected zero weakness count for %s, got %d", theme, count)
		}
	}
}
