package analyze

import "github.com/ppiankov/teamlens/internal/model"

// firstN returns the leading n elements of a profile, or the whole profile
// when it is shorter than n.
func firstN(p model.Profile, n int) model.Profile {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}

// lastN returns the trailing n elements of a profile, or the whole profile
// when it is shorter than n.
func lastN(p model.Profile, n int) model.Profile {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	return p[len(p)-n:]
}

// toSet collapses a profile slice into a theme set. Duplicates inside a
// profile are not expected but collapse naturally here.
func toSet(p model.Profile) map[model.Theme]struct{} {
	set := make(map[model.Theme]struct{}, len(p))
	for _, theme := range p {
		set[theme] = struct{}{}
	}
	return set
}
