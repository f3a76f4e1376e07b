package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseCliSuite struct {
	suite.Suite
	Config Config
	store  string
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseCliSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.LunchBin == "" {
		s.T().Skip("E2E_LUNCH_BIN not set")
	}
}

// SetupTest gives every scenario its own store
func (s *BaseCliSuite) SetupTest() {
	s.store = s.T().TempDir()
}

// Lunch runs one CLI command against the scenario's store and returns stdout.
func (s *BaseCliSuite) Lunch(args ...string) (string, error) {
	header := fmt.Sprintf("  ====== lunch %s ======", strings.Join(args, " "))
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(s.Config.LunchBin, args...)
	cmd.Env = append(os.Environ(),
		"BADGER_FILEPATH="+s.store,
		"SEED="+strconv.FormatInt(s.Config.Seed, 10),
		"COLOURS=false",
		"LOG_LEVEL=ERROR",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	s.T().Logf("exit in %v\n%s%s", time.Since(start), stdout.String(), stderr.String())
	if err != nil {
		return stdout.String(), fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// MustLunch runs a command that is expected to succeed
func (s *BaseCliSuite) MustLunch(args ...string) string {
	out, err := s.Lunch(args...)
	s.Require().NoError(err)
	return out
}
