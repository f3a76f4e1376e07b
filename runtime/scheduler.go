//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=../mocks/mock_roller.go -package=mocks
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lunch-roll/domain"

	"github.com/robfig/cron/v3"
)

type Roller interface {
	Roll(ctx context.Context) (domain.Allocation, error)
	Commit(ctx context.Context) (domain.Session, error)
}

// RollScheduler rolls groups on a cron schedule, e.g. "0 11 * * MON" or
// "CRON_TZ=Europe/Paris 30 11 * * FRI". Failed rolls are logged and the
// schedule keeps running.
type RollScheduler struct {
	log        *slog.Logger
	roller     Roller
	spec       string
	schedule   cron.Schedule
	autoCommit bool
	onRoll     func(domain.Allocation)
}

func NewRollScheduler(
	log *slog.Logger,
	roller Roller,
	spec string,
	autoCommit bool,
	onRoll func(domain.Allocation),
) (*RollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid roll schedule %q: %w", spec, err)
	}
	return &RollScheduler{
		log:        log,
		roller:     roller,
		spec:       spec,
		schedule:   schedule,
		autoCommit: autoCommit,
		onRoll:     onRoll,
	}, nil
}

// Next returns the first roll time strictly after t.
func (s *RollScheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Run blocks until ctx is canceled, rolling on every schedule tick.
func (s *RollScheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{log: s.log})))
	c.Schedule(s.schedule, cron.FuncJob(func() { s.Tick(ctx) }))
	c.Start()
	s.log.Info("Roll scheduler started", "schedule", s.spec, "next", s.Next(time.Now()), "auto_commit", s.autoCommit)

	<-ctx.Done()
	// Wait for a running roll to finish
	<-c.Stop().Done()
	s.log.Info("Roll scheduler stopped")
	return nil
}

// Tick performs one scheduled roll, then commits it when auto-commit is on.
func (s *RollScheduler) Tick(ctx context.Context) {
	allocation, err := s.roller.Roll(ctx)
	if err != nil {
		s.log.Error("Scheduled roll failed", "err", err)
		return
	}
	if s.onRoll != nil {
		s.onRoll(allocation)
	}
	if !s.autoCommit {
		return
	}
	session, err := s.roller.Commit(ctx)
	if err != nil {
		s.log.Error("Scheduled commit failed", "err", err)
		return
	}
	s.log.Info("Scheduled roll committed", "session_id", session.ID)
}

// cronLogger routes cron's own messages, including recovered panics, to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{"err", err}, keysAndValues...)...)
}
