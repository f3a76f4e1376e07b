package grouping

import (
	"fmt"

	"lunch-roll/domain"
	"lunch-roll/errors"

	"github.com/samber/lo"
)

// Commit turns the last allocation into the groups of a new session.
// Members no longer on the roster are dropped, then groups left with fewer
// than two members are dropped too.
func Commit(last domain.Allocation, current []domain.Participant) ([][]string, error) {
	if len(last) == 0 {
		return nil, fmt.Errorf("%w: no allocation has been rolled", errors.ErrNothingToCommit)
	}
	onRoster := lo.SliceToMap(current, func(p domain.Participant) (string, struct{}) {
		return p.Key(), struct{}{}
	})

	var groups [][]string
	for _, group := range last {
		names := lo.FilterMap(group, func(p domain.Participant, _ int) (string, bool) {
			_, ok := onRoster[p.Key()]
			return p.Name, ok
		})
		if len(names) >= 2 {
			groups = append(groups, names)
		}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no group of two or more is still on the roster", errors.ErrNothingToCommit)
	}
	return groups, nil
}
