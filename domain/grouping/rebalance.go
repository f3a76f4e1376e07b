package grouping

import (
	"slices"

	"lunch-roll/domain"
)

const maxRebalanceIterations = 100

// rebalance moves members from the largest group to the smallest until sizes
// differ by at most one. A group's last local is never moved, so the loop may
// stop with a larger skew. Groups come back sorted by size, largest first.
func rebalance(groups domain.Allocation) (domain.Allocation, int) {
	moves := 0
	for range maxRebalanceIterations {
		slices.SortStableFunc(groups, func(a, b domain.Group) int {
			return len(b) - len(a)
		})
		largest, smallest := 0, len(groups)-1
		if len(groups[largest])-len(groups[smallest]) <= 1 {
			break
		}
		idx, ok := movable(groups[largest])
		if !ok {
			break
		}
		member := groups[largest][idx]
		groups[largest] = slices.Delete(groups[largest], idx, idx+1)
		groups[smallest] = append(groups[smallest], member)
		moves++
	}
	return groups, moves
}

// movable picks the first non-local, or the first local when another local stays behind.
func movable(group domain.Group) (int, bool) {
	if idx := slices.IndexFunc(group, func(p domain.Participant) bool { return !p.Local }); idx >= 0 {
		return idx, true
	}
	if group.LocalCount() > 1 {
		return slices.IndexFunc(group, func(p domain.Participant) bool { return p.Local }), true
	}
	return 0, false
}
