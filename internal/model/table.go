package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Profile is one member's themes ranked from most to least dominant.
type Profile []Theme

// Table maps member names to their ranked profiles.
type Table map[string]Profile

// Members returns member names in sorted order. Go map iteration is
// randomized, so every analysis pins "table order" to this.
func (t Table) Members() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationMode controls what happens to profile labels outside the
// vocabulary while decoding a table document.
type ValidationMode string

const (
	ValidateWarn   ValidationMode = "warn"   // Keep the label, report it
	ValidateReject ValidationMode = "reject" // Fail the decode
	ValidatePass   ValidationMode = "pass"   // Keep the label silently
)

// ErrEmptyTable is returned when a decoded document contains no members.
var ErrEmptyTable = errors.New("table contains no members")

// DecodeTable parses a JSON object mapping member names to ranked theme
// lists. Labels outside the vocabulary are handled per mode: warnings are
// returned alongside the table in warn mode, turned into an error in
// reject mode, and ignored in pass mode.
func DecodeTable(r io.Reader, mode ValidationMode) (Table, []string, error) {
	var raw map[string][]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode table: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil, ErrEmptyTable
	}

	table := make(Table, len(raw))
	var warnings []string

	for name, labels := range raw {
		profile := make(Profile, 0, len(labels))
		for i, label := range labels {
			if !IsTheme(label) && mode != ValidatePass {
				msg := fmt.Sprintf("%s: unknown theme %q at rank %d", name, label, i+1)
				if mode == ValidateReject {
					return nil, nil, errors.New(msg)
				}
				warnings = append(warnings, msg)
			}
			profile = append(profile, Theme(label))
		}
		table[name] = profile
	}

	sort.Strings(warnings)
	return table, warnings, nil
}

// LoadTable reads and decodes a table document from a file.
func LoadTable(path string, mode ValidationMode) (Table, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return DecodeTable(f, mode)
}
