// Package domain contains core concepts of the lunch roster.
// This file defines Participant entities and related invariants.
// No persistence, scheduling, or CLI logic should be added here.
package domain

import "strings"

// Participant is one person on the roster. Names are unique case-insensitively.
type Participant struct {
	Name  string
	Local bool
}

// Key is the case-folded name used for uniqueness checks and storage keys.
func (p Participant) Key() string {
	return NameKey(p.Name)
}

func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SplitByLocality returns locals and non-locals, preserving input order.
func SplitByLocality(participants []Participant) (locals, nonLocals []Participant) {
	for _, p := range participants {
		if p.Local {
			locals = append(locals, p)
			continue
		}
		nonLocals = append(nonLocals, p)
	}
	return locals, nonLocals
}
