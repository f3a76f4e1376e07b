package grouping

import (
	"slices"
	"strings"

	"lunch-roll/domain"
)

// Pair is an unordered pair of participant names, stored with A <= B.
type Pair struct {
	A string
	B string
}

func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

type PairCount struct {
	Pair  Pair
	Count int
}

// PairPenalties counts, for each pair, the sessions in which both names
// shared a group.
type PairPenalties map[Pair]int

// BuildPenalties rebuilds the pair counts from the full history.
func BuildPenalties(history []domain.Session) PairPenalties {
	penalties := PairPenalties{}
	for _, session := range history {
		penalties.Record(session.Groups)
	}
	return penalties
}

// Record folds one session into the counts. A pair seen twice within the
// same session still counts once.
func (p PairPenalties) Record(groups [][]string) {
	seen := map[Pair]struct{}{}
	for _, group := range groups {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if group[i] == group[j] {
					continue
				}
				seen[NewPair(group[i], group[j])] = struct{}{}
			}
		}
	}
	for pair := range seen {
		p[pair]++
	}
}

func (p PairPenalties) Penalty(a, b string) int {
	if a == b {
		return 0
	}
	return p[NewPair(a, b)]
}

// Top returns the n most repeated pairs, highest count first.
// n <= 0 returns every pair.
func (p PairPenalties) Top(n int) []PairCount {
	counts := make([]PairCount, 0, len(p))
	for pair, count := range p {
		counts = append(counts, PairCount{Pair: pair, Count: count})
	}
	slices.SortFunc(counts, func(x, y PairCount) int {
		if x.Count != y.Count {
			return y.Count - x.Count
		}
		if c := strings.Compare(x.Pair.A, y.Pair.A); c != 0 {
			return c
		}
		return strings.Compare(x.Pair.B, y.Pair.B)
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
