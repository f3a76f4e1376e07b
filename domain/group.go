package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Group is an ordered set of participants eating together.
type Group []Participant

func (g Group) Names() []string {
	return lo.Map(g, func(p Participant, _ int) string { return p.Name })
}

func (g Group) LocalCount() int {
	return lo.CountBy(g, func(p Participant) bool { return p.Local })
}

// Allocation is one roll: a partition of the roster into groups.
type Allocation []Group

func (a Allocation) Size() int {
	return lo.SumBy(a, func(g Group) int { return len(g) })
}

// Session is a committed allocation, recorded by name only.
// Sessions are append-only once stored.
type Session struct {
	ID          uuid.UUID
	CommittedAt time.Time
	Groups      [][]string
}

func NewSession(groups [][]string, at time.Time) Session {
	return Session{
		ID:          uuid.New(),
		CommittedAt: at.UTC(),
		Groups:      groups,
	}
}
