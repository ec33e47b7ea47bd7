package analyze

import "github.com/ppiankov/teamlens/internal/model"

// Histogram counts how often each theme appears among the top and bottom
// rate positions of each member's profile. Both returned maps cover every
// vocabulary theme, zero-filled, so absent themes are present with count 0.
// Profiles shorter than rate contribute in full. Labels outside the
// vocabulary are counted as extra keys; validating them is the input
// boundary's job, not this function's.
func Histogram(table model.Table, rate int) (strengths, weaknesses map[model.Theme]int) {
	strengths = emptyHistogram()
	weaknesses = emptyHistogram()

	for _, profile := range table {
		for _, theme := range firstN(profile, rate) {
			strengths[theme]++
		}
		for _, theme := range lastN(profile, rate) {
			weaknesses[theme]++
		}
	}

	return strengths, weaknesses
}

func emptyHistogram() map[model.Theme]int {
	hist := make(map[model.Theme]int, len(model.AllThemes))
	for _, theme := range model.AllThemes {
		hist[theme] = 0
	}
	return hist
}
