// Package checklist holds the checklist data model and the state engine
// that keeps cascading completion consistent across the catalog tree.
package checklist

import (
	"fmt"
	"strings"
)

// Mode selects the counting semantics for a single checklist item.
type Mode string

const (
	// ModeSimple is binary checked/unchecked.
	ModeSimple Mode = "simple"
	// ModeRepeat counts repetitions toward a target; checked means
	// current >= target.
	ModeRepeat Mode = "repeat"
)

// AllModes returns the supported item modes.
func AllModes() []Mode {
	return []Mode{ModeSimple, ModeRepeat}
}

// ParseMode converts a string to a Mode or returns an error for unknown
// values. Empty input parses as the default simple mode.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return ModeSimple, nil
	}
	for _, candidate := range AllModes() {
		if candidate == m {
			return candidate, nil
		}
	}
	return ModeSimple, fmt.Errorf("checklist: unknown mode %q", raw)
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	for _, candidate := range AllModes() {
		if candidate == m {
			return true
		}
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}
