package services

import (
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"lunch-roll/domain"
	"lunch-roll/domain/grouping"
	errs "lunch-roll/errors"
	"lunch-roll/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

// LunchCycleSuite runs the roster through roll and commit against a real
// in-memory store.
type LunchCycleSuite struct {
	suite.Suite
	db      *badger.DB
	service *LunchService
}

func TestLunchCycleSuite(t *testing.T) {
	suite.Run(t, new(LunchCycleSuite))
}

func (s *LunchCycleSuite) SetupTest() {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.db = db

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := repositories.NewRosterRepository(db, log)
	s.service = NewLunchService(log, repository, grouping.NewAllocator(rand.New(rand.NewSource(2026)), log))

	for _, p := range []struct {
		name  string
		local bool
	}{
		{"Ana", true}, {"Bo", false}, {"Cy", true}, {"Di", false}, {"Ed", false}, {"Flo", true},
	} {
		_, err = s.service.AddParticipant(p.name, p.local)
		s.Require().NoError(err)
	}
}

func (s *LunchCycleSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *LunchCycleSuite) TestRollThenCommit() {
	ctx := context.Background()

	canCommit, err := s.service.CanCommit()
	s.Require().NoError(err)
	s.False(canCommit)

	allocation, err := s.service.Roll(ctx)
	s.Require().NoError(err)
	s.Len(allocation, 3)
	s.Equal(6, allocation.Size())

	canCommit, err = s.service.CanCommit()
	s.Require().NoError(err)
	s.True(canCommit)

	session, err := s.service.Commit(ctx)
	s.Require().NoError(err)
	s.Equal(lo.Map(allocation, func(g domain.Group, _ int) []string { return g.Names() }), session.Groups)

	history, err := s.service.History()
	s.Require().NoError(err)
	s.Len(history, 1)
	s.Equal(session.ID, history[0].ID)

	// Pending is gone once committed
	canCommit, err = s.service.CanCommit()
	s.Require().NoError(err)
	s.False(canCommit)
	_, err = s.service.Commit(ctx)
	s.ErrorIs(err, errs.ErrNothingToCommit)
}

func (s *LunchCycleSuite) TestSecondRollAvoidsFirstPairs() {
	ctx := context.Background()

	_, err := s.service.Roll(ctx)
	s.Require().NoError(err)
	first, err := s.service.Commit(ctx)
	s.Require().NoError(err)

	// Three groups of two: each non-local can always find a local it has not met
	second, err := s.service.Roll(ctx)
	s.Require().NoError(err)
	penalties := grouping.BuildPenalties([]domain.Session{first})
	for _, group := range second {
		names := group.Names()
		s.Require().Len(names, 2)
		s.Zero(penalties.Penalty(names[0], names[1]), "repeated pair %v", names)
	}

	pairs, err := s.service.PairCounts(0)
	s.Require().NoError(err)
	s.Len(pairs, 3)
}

func (s *LunchCycleSuite) TestCommitAfterRemoval() {
	ctx := context.Background()
	s.Require().NoError(s.service.SetGroupSize(3))

	allocation, err := s.service.Roll(ctx)
	s.Require().NoError(err)
	s.Len(allocation, 2)

	// Remove everyone from the first group but one
	for _, p := range allocation[0][1:] {
		s.Require().NoError(s.service.RemoveParticipant(p.Name))
	}

	session, err := s.service.Commit(ctx)
	s.Require().NoError(err)
	s.Equal([][]string{allocation[1].Names()}, session.Groups)
}

func (s *LunchCycleSuite) TestCommitRefusedWhenRosterCleared() {
	ctx := context.Background()
	_, err := s.service.Roll(ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.service.ClearParticipants())

	_, err = s.service.Commit(ctx)
	s.ErrorIs(err, errs.ErrNothingToCommit)

	history, err := s.service.History()
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *LunchCycleSuite) TestParticipantsSortedAndUnique() {
	_, err := s.service.AddParticipant("ana", false)
	s.ErrorIs(err, errs.ErrParticipantAlreadyExists)
	_, err = s.service.AddParticipant("bea", false)
	s.Require().NoError(err)

	participants, err := s.service.Participants()
	s.Require().NoError(err)
	s.Equal([]string{"Ana", "bea", "Bo", "Cy", "Di", "Ed", "Flo"},
		lo.Map(participants, func(p domain.Participant, _ int) string { return p.Name }))
}

func (s *LunchCycleSuite) TestImportedHistoryMatchesRosterCasing() {
	summary, err := s.service.Import(repositories.LegacyState{
		Version:      2,
		Participants: []domain.Participant{{Name: "ANA"}, {Name: "Gus"}},
		History:      [][][]string{{{"ana", "bo"}}, {{"ANA", "BO"}, {"gus", "cy"}}},
	})
	s.Require().NoError(err)
	s.Equal(1, summary.Added)
	s.Equal(1, summary.Skipped)

	history, err := s.service.History()
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal([][]string{{"Ana", "Bo"}}, history[0].Groups)
	s.Equal([][]string{{"Ana", "Bo"}, {"Gus", "Cy"}}, history[1].Groups)

	penalties := grouping.BuildPenalties(history)
	s.Equal(2, penalties.Penalty("Ana", "Bo"))
	ana, bo := domain.Participant{Name: "Ana", Local: true}, domain.Participant{Name: "Bo"}
	s.Equal(1+2*10, grouping.Cost(domain.Group{ana}, bo, penalties))

	pairs, err := s.service.PairCounts(1)
	s.Require().NoError(err)
	s.Equal([]grouping.PairCount{{Pair: grouping.NewPair("Ana", "Bo"), Count: 2}}, pairs)
}
