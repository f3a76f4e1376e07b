package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lunch-roll/domain"
	"lunch-roll/domain/grouping"
	errs "lunch-roll/errors"
	"lunch-roll/repositories"

	"github.com/samber/lo"
)

type ILunchService interface {
	AddParticipant(name string, local bool) (domain.Participant, error)
	RemoveParticipant(name string) error
	ToggleLocal(name string) (domain.Participant, error)
	ClearParticipants() error
	Participants() ([]domain.Participant, error)
	SetGroupSize(size int) error
	GroupSize() (int, error)
	Roll(ctx context.Context) (domain.Allocation, error)
	CanCommit() (bool, error)
	Commit(ctx context.Context) (domain.Session, error)
	History() ([]domain.Session, error)
	PairCounts(top int) ([]grouping.PairCount, error)
	Import(state repositories.LegacyState) (ImportSummary, error)
}

type ImportSummary struct {
	Added        int
	Skipped      int
	Sessions     int
	GroupSizeSet bool
}

// LunchService owns the roster and the roll/commit cycle. The last roll is
// kept by the repository as the pending allocation until it is committed.
type LunchService struct {
	log        *slog.Logger
	repository repositories.IRosterRepository
	allocator  grouping.IAllocator
	now        func() time.Time
	mu         sync.Mutex
}

func NewLunchService(log *slog.Logger, repository repositories.IRosterRepository, allocator grouping.IAllocator) *LunchService {
	return &LunchService{
		log:        log,
		repository: repository,
		allocator:  allocator,
		now:        time.Now,
	}
}

func (s *LunchService) AddParticipant(name string, local bool) (domain.Participant, error) {
	req := AddParticipantRequest{Name: strings.TrimSpace(name), Local: local}
	if err := ValidateAddParticipant(req); err != nil {
		return domain.Participant{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First casing wins, later duplicates are refused
	existing, err := s.repository.GetParticipant(req.Name)
	switch {
	case err == nil:
		return domain.Participant{}, fmt.Errorf("%w: %q", errs.ErrParticipantAlreadyExists, existing.Name)
	case !errors.Is(err, errs.ErrParticipantNotFound):
		return domain.Participant{}, err
	}

	participant := domain.Participant{Name: req.Name, Local: req.Local}
	if err = s.repository.SaveParticipant(participant); err != nil {
		return domain.Participant{}, err
	}
	s.log.Info("Participant added", "name", participant.Name, "local", participant.Local)
	return participant, nil
}

func (s *LunchService) RemoveParticipant(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.DeleteParticipant(strings.TrimSpace(name)); err != nil {
		return err
	}
	s.log.Info("Participant removed", "name", name)
	return nil
}

func (s *LunchService) ToggleLocal(name string) (domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant, err := s.repository.GetParticipant(strings.TrimSpace(name))
	if err != nil {
		return domain.Participant{}, err
	}
	participant.Local = !participant.Local
	if err = s.repository.SaveParticipant(participant); err != nil {
		return domain.Participant{}, err
	}
	s.log.Info("Participant locality changed", "name", participant.Name, "local", participant.Local)
	return participant, nil
}

func (s *LunchService) ClearParticipants() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.ClearParticipants(); err != nil {
		return err
	}
	s.log.Info("Roster cleared")
	return nil
}

// Participants lists the roster alphabetically, ignoring case.
func (s *LunchService) Participants() ([]domain.Participant, error) {
	return s.repository.ListParticipants()
}

func (s *LunchService) SetGroupSize(size int) error {
	if err := ValidateGroupSize(GroupSizeRequest{Size: size}); err != nil {
		return err
	}
	return s.repository.SetGroupSize(size)
}

func (s *LunchService) GroupSize() (int, error) {
	return s.repository.GetGroupSize()
}

// Roll allocates the current roster against the full history and keeps the
// result pending. Rolling again replaces the pending allocation.
func (s *LunchService) Roll(ctx context.Context) (domain.Allocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	participants, err := s.repository.ListParticipants()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	size, err := s.repository.GetGroupSize()
	if err != nil {
		return nil, fmt.Errorf("load group size: %w", err)
	}
	history, err := s.repository.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	allocation, err := s.allocator.Allocate(participants, size, history)
	if err != nil {
		return nil, err
	}
	if err = s.repository.SavePending(allocation); err != nil {
		return nil, fmt.Errorf("save pending allocation: %w", err)
	}
	s.log.Info("Groups rolled", "participants", len(participants), "groups", len(allocation), "group_size", size)
	return allocation, nil
}

// CanCommit reports whether a rolled allocation is waiting to be committed.
func (s *LunchService) CanCommit() (bool, error) {
	pending, err := s.repository.GetPending()
	if err != nil {
		return false, err
	}
	return len(pending) > 0, nil
}

// Commit records the pending allocation as a new session. Members removed
// from the roster since the roll are left out. History is untouched when
// nothing survives.
func (s *LunchService) Commit(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repository.GetPending()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load pending allocation: %w", err)
	}
	participants, err := s.repository.ListParticipants()
	if err != nil {
		return domain.Session{}, fmt.Errorf("load roster: %w", err)
	}

	groups, err := grouping.Commit(pending, participants)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.NewSession(groups, s.now())
	if err = s.repository.AppendSession(session); err != nil {
		return domain.Session{}, fmt.Errorf("append session: %w", err)
	}
	if err = s.repository.ClearPending(); err != nil {
		return domain.Session{}, fmt.Errorf("clear pending allocation: %w", err)
	}
	s.log.Info("Session committed", "session_id", session.ID, "groups", len(session.Groups))
	return session, nil
}

func (s *LunchService) History() ([]domain.Session, error) {
	return s.repository.ListSessions()
}

// PairCounts returns the most repeated pairs across the history.
func (s *LunchService) PairCounts(top int) ([]grouping.PairCount, error) {
	history, err := s.repository.ListSessions()
	if err != nil {
		return nil, err
	}
	return grouping.BuildPenalties(history).Top(top), nil
}

// Import merges a legacy export into the store. Participants already on the
// roster keep their current record.
func (s *LunchService) Import(state repositories.LegacyState) (ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary ImportSummary
	for _, participant := range state.Participants {
		_, err := s.repository.GetParticipant(participant.Name)
		switch {
		case err == nil:
			summary.Skipped++
			continue
		case !errors.Is(err, errs.ErrParticipantNotFound):
			return summary, err
		}
		if err = s.repository.SaveParticipant(participant); err != nil {
			return summary, err
		}
		summary.Added++
	}

	if state.GroupSize != 0 {
		if err := ValidateGroupSize(GroupSizeRequest{Size: state.GroupSize}); err != nil {
			s.log.Warn("Ignoring imported group size", "size", state.GroupSize, "err", err)
		} else {
			if err = s.repository.SetGroupSize(state.GroupSize); err != nil {
				return summary, err
			}
			summary.GroupSizeSet = true
		}
	}

	roster, err := s.repository.ListParticipants()
	if err != nil {
		return summary, err
	}
	canonical := lo.SliceToMap(roster, func(p domain.Participant) (string, string) {
		return p.Key(), p.Name
	})

	// Legacy sessions carry no timestamp; keep their order with nanosecond steps
	base := s.now()
	for i, groups := range state.History {
		session := domain.NewSession(canonicalGroups(groups, canonical), base.Add(time.Duration(i)))
		if err := s.repository.AppendSession(session); err != nil {
			return summary, err
		}
		summary.Sessions++
	}
	s.log.Info("Legacy state imported",
		"version", state.Version,
		"added", summary.Added,
		"skipped", summary.Skipped,
		"sessions", summary.Sessions)
	return summary, nil
}

// canonicalGroups spells every name the way the roster does, so pair counts
// do not split on casing. Names off the roster keep the first casing seen.
func canonicalGroups(groups [][]string, canonical map[string]string) [][]string {
	return lo.Map(groups, func(group []string, _ int) []string {
		return lo.Map(group, func(name string, _ int) string {
			key := domain.NameKey(name)
			if known, ok := canonical[key]; ok {
				return known
			}
			canonical[key] = name
			return name
		})
	})
}
