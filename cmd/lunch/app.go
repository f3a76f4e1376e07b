package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"lunch-roll/domain"
	errs "lunch-roll/errors"
	"lunch-roll/internal"
	"lunch-roll/internal/mimetypes"
	"lunch-roll/repositories"
	"lunch-roll/runtime"
	"lunch-roll/services"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const usage = `Usage: lunch <command> [flags] [args]

Roster
  add <name> [-local]     add a participant (-local may come first or last)
  remove <name>           remove a participant
  toggle <name>           flip a participant's local flag
  list                    show the roster
  clear -yes              remove every participant
  size [n]                show or set the group size

Groups
  roll                    draw new groups (replaces an uncommitted roll)
  commit                  save the last roll to the history
  history                 show committed sessions
  pairs [-top n]          show the most repeated pairs
  schedule                roll on ROLL_SCHEDULE until interrupted

Data
  import <file.json>      merge a browser export
  export                  print roster, size and history as YAML
`

type app struct {
	log     *slog.Logger
	service services.ILunchService
	out     io.Writer
	config  internal.Config
}

func newApp(log *slog.Logger, service services.ILunchService, out io.Writer, config internal.Config) *app {
	return &app{log: log, service: service, out: out, config: config}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}
	command, rest := args[0], args[1:]
	switch command {
	case "add":
		return a.add(rest)
	case "remove", "rm":
		return a.withName(rest, func(name string) error {
			if err := a.service.RemoveParticipant(name); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed %s.\n", name)
			return a.count()
		})
	case "toggle":
		return a.withName(rest, func(name string) error {
			participant, err := a.service.ToggleLocal(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s is now %s.\n", participant.Name, localLabel(participant.Local))
			return nil
		})
	case "list", "ls":
		return a.list()
	case "clear":
		return a.clear(rest)
	case "size":
		return a.size(rest)
	case "roll":
		return a.roll(ctx)
	case "commit", "save":
		return a.commit(ctx)
	case "history":
		return a.history()
	case "pairs":
		return a.pairs(rest)
	case "schedule":
		return a.schedule(ctx)
	case "import":
		return a.withName(rest, a.importFile)
	case "export":
		return a.export()
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q, run 'lunch help'", command)
	}
}

// withName joins the remaining arguments so names with spaces need no quoting.
func (a *app) withName(args []string, fn func(name string) error) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("missing argument, run 'lunch help'")
	}
	return fn(name)
}

func (a *app) add(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	local := fs.Bool("local", false, "participant anchors a group")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// flag stops at the first name word, so a trailing -local is picked up here
	words := lo.Reject(fs.Args(), func(arg string, _ int) bool { return arg == "-local" || arg == "--local" })
	if len(words) != len(fs.Args()) {
		*local = true
	}
	return a.withName(words, func(name string) error {
		participant, err := a.service.AddParticipant(name, *local)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s (%s).\n", participant.Name, localLabel(participant.Local))
		return a.count()
	})
}

func (a *app) count() error {
	participants, err := a.service.Participants()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, plural(len(participants), "participant"))
	return nil
}

func (a *app) list() error {
	participants, err := a.service.Participants()
	if err != nil {
		return err
	}
	if len(participants) == 0 {
		fmt.Fprintln(a.out, "No participants yet. Add some with 'lunch add <name>'.")
		return nil
	}
	renderParticipants(a.out, participants)
	return nil
}

func (a *app) clear(args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(a.out)
	yes := fs.Bool("yes", false, "confirm removing every participant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return fmt.Errorf("refusing to clear the roster without -yes")
	}
	if err := a.service.ClearParticipants(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cleared.")
	return nil
}

func (a *app) size(args []string) error {
	if len(args) == 0 {
		size, err := a.service.GroupSize()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Group size: %d\n", size)
		return nil
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", errs.ErrInvalidGroupSize, args[0])
	}
	if err = a.service.SetGroupSize(size); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Group size set to %d.\n", size)
	return nil
}

func (a *app) roll(ctx context.Context) error {
	allocation, err := a.service.Roll(ctx)
	if err != nil {
		return err
	}
	renderAllocation(a.out, allocation, a.config.Colours)
	fmt.Fprintf(a.out, "Created %s. Run 'lunch commit' to save them.\n", plural(len(allocation), "group"))
	return nil
}

func (a *app) commit(ctx context.Context) error {
	session, err := a.service.Commit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved session %s with %s.\n", shortID(session.ID.String()), plural(len(session.Groups), "group"))
	return nil
}

func (a *app) history() error {
	sessions, err := a.service.History()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "No sessions committed yet.")
		return nil
	}
	renderHistory(a.out, sessions)
	return nil
}

func (a *app) pairs(args []string) error {
	fs := flag.NewFlagSet("pairs", flag.ContinueOnError)
	fs.SetOutput(a.out)
	top := fs.Int("top", 10, "number of pairs to show, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	counts, err := a.service.PairCounts(*top)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "No pairs yet.")
		return nil
	}
	renderPairs(a.out, counts)
	return nil
}

func (a *app) schedule(ctx context.Context) error {
	scheduler, err := runtime.NewRollScheduler(a.log, a.service, a.config.RollSchedule, a.config.AutoCommit,
		func(allocation domain.Allocation) {
			renderAllocation(a.out, allocation, a.config.Colours)
		})
	if err != nil {
		return err
	}
	return scheduler.Run(ctx)
}

func (a *app) importFile(path string) error {
	detected, err := mimetypes.DetectFile(path)
	if err != nil {
		return err
	}
	if _, ok := mimetypes.Matches(detected, mimetypes.ApplicationJSON); !ok {
		return fmt.Errorf("%w: %s is %s, expected %s", errs.ErrUnsupportedImport, path, detected, mimetypes.ApplicationJSON)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	state, err := repositories.ParseLegacyState(raw)
	if err != nil {
		return err
	}
	summary, err := a.service.Import(state)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %s (%d already present), %s.\n",
		plural(summary.Added, "participant"), summary.Skipped, plural(summary.Sessions, "session"))
	return nil
}

type exportedState struct {
	GroupSize    int                   `yaml:"groupSize"`
	Participants []exportedParticipant `yaml:"participants"`
	History      []exportedSession     `yaml:"history"`
}

type exportedParticipant struct {
	Name  string `yaml:"name"`
	Local bool   `yaml:"local"`
}

type exportedSession struct {
	ID          string     `yaml:"id"`
	CommittedAt string     `yaml:"committedAt"`
	Groups      [][]string `yaml:"groups,flow"`
}

func (a *app) export() error {
	size, err := a.service.GroupSize()
	if err != nil {
		return err
	}
	participants, err := a.service.Participants()
	if err != nil {
		return err
	}
	sessions, err := a.service.History()
	if err != nil {
		return err
	}
	state := exportedState{GroupSize: size}
	for _, p := range participants {
		state.Participants = append(state.Participants, exportedParticipant{Name: p.Name, Local: p.Local})
	}
	for _, s := range sessions {
		state.History = append(state.History, exportedSession{
			ID:          s.ID.String(),
			CommittedAt: s.CommittedAt.Format(timeLayout),
			Groups:      s.Groups,
		})
	}
	encoder := yaml.NewEncoder(a.out)
	encoder.SetIndent(2)
	if err = encoder.Encode(state); err != nil {
		return err
	}
	return encoder.Close()
}
