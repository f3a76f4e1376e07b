package grouping

import (
	"testing"

	"lunch-roll/domain"
	"lunch-roll/errors"

	"github.com/stretchr/testify/require"
)

func TestCommit(t *testing.T) {
	ana, bo, cy, di := local("Ana"), guest("Bo"), guest("Cy"), guest("Di")

	tests := []struct {
		description string
		last        domain.Allocation
		current     []domain.Participant
		want        [][]string
		wantErr     error
	}{
		{
			"Should keep every group when the roster is unchanged",
			domain.Allocation{{ana, bo}, {cy, di}},
			[]domain.Participant{ana, bo, cy, di},
			[][]string{{"Ana", "Bo"}, {"Cy", "Di"}},
			nil,
		},
		{
			"Should drop a group reduced to one member",
			domain.Allocation{{ana, bo}, {cy}},
			[]domain.Participant{ana, bo, cy},
			[][]string{{"Ana", "Bo"}},
			nil,
		},
		{
			"Should drop removed participants",
			domain.Allocation{{ana, bo, cy}, {di}},
			[]domain.Participant{ana, cy, di},
			[][]string{{"Ana", "Cy"}},
			nil,
		},
		{
			"Should match roster names case-insensitively",
			domain.Allocation{{ana, bo}},
			[]domain.Participant{{Name: "ana"}, {Name: "BO"}},
			[][]string{{"Ana", "Bo"}},
			nil,
		},
		{
			"Should refuse without an allocation",
			nil,
			[]domain.Participant{ana, bo},
			nil,
			errors.ErrNothingToCommit,
		},
		{
			"Should refuse when every group is below two",
			domain.Allocation{{ana, bo}, {cy, di}},
			[]domain.Participant{ana, cy},
			nil,
			errors.ErrNothingToCommit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			groups, err := Commit(tt.last, tt.current)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.Nil(groups)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, groups)
		})
	}
}
