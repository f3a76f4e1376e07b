package main

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"lunch-roll/domain/grouping"
	errs "lunch-roll/errors"
	"lunch-roll/internal"
	"lunch-roll/repositories"
	"lunch-roll/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	repository := repositories.NewRosterRepository(db, log)
	service := services.NewLunchService(log, repository, grouping.NewAllocator(rand.New(rand.NewSource(4)), log))
	out := &bytes.Buffer{}
	return newApp(log, service, out, internal.Config{RollSchedule: "@weekly"}), out
}

func TestApp_RosterCommands(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t)
	ctx := context.Background()

	req.NoError(a.dispatch(ctx, []string{"add", "-local", "Ana", "Maria"}))
	req.Contains(out.String(), "Added Ana Maria (local).")
	req.Contains(out.String(), "1 participant\n")

	req.NoError(a.dispatch(ctx, []string{"add", "Bo"}))
	req.ErrorIs(a.dispatch(ctx, []string{"add", "bo"}), errs.ErrParticipantAlreadyExists)

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"toggle", "bo"}))
	req.Contains(out.String(), "Bo is now local.")

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"list"}))
	req.Contains(out.String(), "Ana Maria")
	req.Contains(out.String(), "2 participants")

	req.Error(a.dispatch(ctx, []string{"clear"}))
	req.NoError(a.dispatch(ctx, []string{"clear", "-yes"}))
	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"list"}))
	req.Contains(out.String(), "No participants yet.")

	req.ErrorIs(a.dispatch(ctx, []string{"remove", "Ghost"}), errs.ErrParticipantNotFound)
	req.Error(a.dispatch(ctx, []string{"remove"}))
	req.Error(a.dispatch(ctx, []string{"dance"}))
}

func TestApp_AddLocalFlagPosition(t *testing.T) {
	tests := []struct {
		description string
		args        []string
		want        string
	}{
		{"Flag before the name", []string{"add", "-local", "Ana"}, "Added Ana (local)."},
		{"Flag after the name", []string{"add", "Ana", "-local"}, "Added Ana (local)."},
		{"Flag after a two-word name", []string{"add", "Ana", "Maria", "--local"}, "Added Ana Maria (local)."},
		{"No flag", []string{"add", "Ana"}, "Added Ana (not local)."},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			a, out := newTestApp(t)

			req.NoError(a.dispatch(context.Background(), tt.args))
			req.Contains(out.String(), tt.want)
			req.NotContains(out.String(), "-local (")
		})
	}

	a, _ := newTestApp(t)
	require.Error(t, a.dispatch(context.Background(), []string{"add", "-local"}))
}

func TestApp_Size(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t)
	ctx := context.Background()

	req.NoError(a.dispatch(ctx, []string{"size"}))
	req.Contains(out.String(), "Group size: 2")

	req.NoError(a.dispatch(ctx, []string{"size", "4"}))
	req.ErrorIs(a.dispatch(ctx, []string{"size", "1"}), errs.ErrInvalidGroupSize)
	req.ErrorIs(a.dispatch(ctx, []string{"size", "four"}), errs.ErrInvalidGroupSize)

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"size"}))
	req.Contains(out.String(), "Group size: 4")
}

func TestApp_RollCommitHistory(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t)
	ctx := context.Background()

	req.ErrorIs(a.dispatch(ctx, []string{"roll"}), errs.ErrInvalidInput)
	req.ErrorIs(a.dispatch(ctx, []string{"commit"}), errs.ErrNothingToCommit)

	for _, args := range [][]string{
		{"add", "-local", "Ana"}, {"add", "Bo"}, {"add", "Cy"}, {"add", "Di"}, {"add", "-local", "Ed"},
	} {
		req.NoError(a.dispatch(ctx, args))
	}

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"roll"}))
	req.Contains(out.String(), "Group 1 (3)")
	req.Contains(out.String(), "Group 2 (2)")
	req.Contains(out.String(), "Created 2 groups.")

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"commit"}))
	req.Contains(out.String(), "with 2 groups.")

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"history"}))
	req.Contains(out.String(), "Ana")

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"pairs", "-top", "2"}))
	req.Contains(out.String(), " & ")
}

func TestApp_ImportAndExport(t *testing.T) {
	req := require.New(t)
	a, out := newTestApp(t)
	ctx := context.Background()
	dir := t.TempDir()

	export := filepath.Join(dir, "only-lunch.json")
	req.NoError(os.WriteFile(export, []byte(`{
		"version": 2,
		"participants": [{"name": "Ana", "local": true}, {"name": "Bo"}, "Cy"],
		"groupSize": 3,
		"history": [[["Ana", "Bo"]]]
	}`), 0o600))
	notes := filepath.Join(dir, "notes.txt")
	req.NoError(os.WriteFile(notes, []byte("Ana, Bo, Cy\n"), 0o600))

	req.ErrorIs(a.dispatch(ctx, []string{"import", notes}), errs.ErrUnsupportedImport)

	req.NoError(a.dispatch(ctx, []string{"import", export}))
	req.Contains(out.String(), "Imported 3 participants (0 already present), 1 session.")

	out.Reset()
	req.NoError(a.dispatch(ctx, []string{"export"}))
	var state exportedState
	req.NoError(yaml.Unmarshal(out.Bytes(), &state))
	req.Equal(3, state.GroupSize)
	req.Equal([]exportedParticipant{{Name: "Ana", Local: true}, {Name: "Bo"}, {Name: "Cy"}}, state.Participants)
	req.Len(state.History, 1)
	req.Equal([][]string{{"Ana", "Bo"}}, state.History[0].Groups)
}

func TestApp_ScheduleStopsWithContext(t *testing.T) {
	req := require.New(t)
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.NoError(a.dispatch(ctx, []string{"schedule"}))
}
