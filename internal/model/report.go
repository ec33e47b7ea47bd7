package model

import "time"

// Report represents the complete analysis of one team table.
type Report struct {
	Subject     string    `json:"subject"`      // Source file path, or "stdin"
	GeneratedAt time.Time `json:"generated_at"` // When the analysis ran
	Rate        int       `json:"rate"`         // Themes taken from each end of a profile
	Members     int       `json:"members"`      // Team size

	Strengths  map[Theme]int `json:"strengths"`  // Theme -> top-rate occurrences
	Weaknesses map[Theme]int `json:"weaknesses"` // Theme -> bottom-rate occurrences

	Distances []PairDistance   `json:"distances"`       // One per unordered member pair
	Specifics []MemberSpecific `json:"specific_themes"` // One per member

	Warnings []string `json:"warnings,omitempty"` // Input validation findings
}

// PairDistance is the dissimilarity between two members' profiles,
// in [0,1]: 0 for identical top/bottom theme sets, 1 for fully disjoint.
type PairDistance struct {
	MemberA  string  `json:"member_a"`
	MemberB  string  `json:"member_b"`
	Distance float64 `json:"distance"`
}

// MemberSpecific lists the top-rate themes held by this member and no one
// else on the team, in vocabulary order.
type MemberSpecific struct {
	Member string  `json:"member"`
	Themes []Theme `json:"themes"`
}
