package e2e

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testWeeklyLunchSuite struct {
	BaseCliSuite
}

func TestWeeklyLunchSuite(t *testing.T) {
	suite.Run(t, &testWeeklyLunchSuite{})
}

func (s *testWeeklyLunchSuite) TestRosterSurvivesRestarts() {
	s.MustLunch("add", "-local", "Ana")
	s.MustLunch("add", "Bo")
	s.MustLunch("add", "-local", "Cy")
	s.MustLunch("add", "Di")

	_, err := s.Lunch("add", "ANA")
	s.Error(err, "duplicates are refused across casing")

	out := s.MustLunch("list")
	s.Contains(out, "4 participants")
}

func (s *testWeeklyLunchSuite) TestRollCommitAcrossProcesses() {
	// --- STEP 0: ROSTER ---
	s.Run("Step 0: Build a roster with two locals", func() {
		for _, args := range [][]string{
			{"add", "-local", "Ana"}, {"add", "Bo"}, {"add", "Cy"}, {"add", "Di"}, {"add", "-local", "Ed"},
		} {
			s.MustLunch(args...)
		}
	})

	// --- STEP 1: ROLL ---
	s.Run("Step 1: Roll two groups", func() {
		out := s.MustLunch("roll")
		s.Contains(out, "Created 2 groups.")
	})

	// --- STEP 2: COMMIT IN ANOTHER PROCESS ---
	s.Run("Step 2: Commit the pending roll", func() {
		out := s.MustLunch("commit")
		s.Contains(out, "with 2 groups.")
		_, err := s.Lunch("commit")
		s.Error(err, "the roll was already committed")
	})

	// --- STEP 3: HISTORY ---
	s.Run("Step 3: History shows one session", func() {
		out := s.MustLunch("history")
		s.Contains(out, "Ana")
		s.Contains(out, "Ed")
	})
}
