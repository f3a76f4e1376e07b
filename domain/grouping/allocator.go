// Package grouping splits a roster into lunch groups. Every group is seeded
// with a local member when locals exist, and members who already shared a
// group in past sessions are kept apart when possible.
package grouping

import (
	"fmt"
	"log/slog"
	"math/rand"

	"lunch-roll/domain"
	"lunch-roll/errors"
)

const (
	repeatPairCost   = 10
	missingLocalCost = 20
)

type IAllocator interface {
	Allocate(participants []domain.Participant, groupSize int, history []domain.Session) (domain.Allocation, error)
}

// Allocator owns the random source used to shuffle the roster.
// Everything after the shuffle is deterministic.
type Allocator struct {
	rng *rand.Rand
	log *slog.Logger
}

func NewAllocator(rng *rand.Rand, log *slog.Logger) *Allocator {
	return &Allocator{rng: rng, log: log}
}

// Allocate partitions participants into groups of roughly groupSize.
// The caller's slice is never modified.
func (a *Allocator) Allocate(participants []domain.Participant, groupSize int, history []domain.Session) (domain.Allocation, error) {
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 participants, got %d", errors.ErrInvalidInput, len(participants))
	}
	if groupSize < 2 {
		return nil, fmt.Errorf("%w: group size must be at least 2, got %d", errors.ErrInvalidInput, groupSize)
	}

	// 1. Shuffle a copy
	shuffled := a.shuffle(participants)

	// 2. Seed every group with locals
	locals, nonLocals := domain.SplitByLocality(shuffled)
	count := GroupCount(len(shuffled), groupSize, len(locals))
	groups := seed(locals, count)

	// 3. Place non-locals where they cost the least
	penalties := BuildPenalties(history)
	for _, p := range nonLocals {
		idx := bestGroup(groups, p, penalties)
		groups[idx] = append(groups[idx], p)
	}

	// 4. Even out the sizes
	groups, moves := rebalance(groups)

	a.log.Debug("Allocation done",
		"participants", len(participants),
		"locals", len(locals),
		"groups", len(groups),
		"rebalance_moves", moves,
		"history_sessions", len(history))
	return groups, nil
}

func (a *Allocator) shuffle(participants []domain.Participant) []domain.Participant {
	out := make([]domain.Participant, len(participants))
	copy(out, participants)
	a.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// GroupCount is ceil(total/groupSize), capped by the number of locals able
// to seed a group, and never below 1.
func GroupCount(total, groupSize, locals int) int {
	desired := (total + groupSize - 1) / groupSize
	return max(1, min(desired, max(locals, 1)))
}

// seed hands one local to each group, then deals leftovers round-robin.
func seed(locals []domain.Participant, count int) domain.Allocation {
	groups := make(domain.Allocation, count)
	for i, local := range locals {
		groups[i%count] = append(groups[i%count], local)
	}
	return groups
}

// Cost scores placing candidate into group. Lower is better.
func Cost(group domain.Group, candidate domain.Participant, penalties PairPenalties) int {
	cost := len(group)
	for _, member := range group {
		cost += repeatPairCost * penalties.Penalty(member.Name, candidate.Name)
	}
	if !candidate.Local && group.LocalCount() == 0 {
		cost += missingLocalCost
	}
	return cost
}

// bestGroup returns the index with the lowest cost; ties go to the lowest index.
func bestGroup(groups domain.Allocation, candidate domain.Participant, penalties PairPenalties) int {
	best, bestCost := 0, 0
	for i, group := range groups {
		cost := Cost(group, candidate, penalties)
		if i == 0 || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best
}
