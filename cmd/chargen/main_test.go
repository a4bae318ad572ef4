package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
)

type CLITestSuite struct {
	suite.Suite
	redis *miniredis.Miniredis
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.redis = miniredis.RunT(s.T())
	s.T().Setenv("REDIS_ADDR", "")
	s.T().Setenv("CHARGEN_SEED", "0")
	s.T().Setenv("CHARGEN_LOG_LEVEL", "warn")
}

// run executes the CLI and returns stdout and stderr
func (s *CLITestSuite) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", "testdata/missing.env"}, args...))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func (s *CLITestSuite) generateJSON(args ...string) *dnd5e.Character {
	out, _, err := s.run(append([]string{"generate", "--format", "json"}, args...)...)
	s.Require().NoError(err)

	var c dnd5e.Character
	s.Require().NoError(json.Unmarshal([]byte(out), &c))
	return &c
}

func (s *CLITestSuite) TestGenerateIsReproducible() {
	first := s.generateJSON("--seed", "42")
	second := s.generateJSON("--seed", "42")

	s.NotEqual(first.ID, second.ID)
	s.True(strings.HasPrefix(first.ID, "char_"))
	first.ID, second.ID = "", ""
	first.CreatedAt, second.CreatedAt = time.Time{}, time.Time{}
	s.Equal(first, second)
}

func (s *CLITestSuite) TestGenerateSeedFromEnvironment() {
	s.T().Setenv("CHARGEN_SEED", "77")
	c := s.generateJSON()
	s.Equal(int64(77), c.Seed)

	c = s.generateJSON("--seed", "5")
	s.Equal(int64(5), c.Seed)
}

func (s *CLITestSuite) TestGeneratePins() {
	c := s.generateJSON("--seed", "1", "--race", "elf", "--subrace", "high-elf", "--class", "wizard", "--background", "sage", "--name", "Laeral")

	s.Equal("elf", c.Race.ID)
	s.Equal("high-elf", c.Race.SubraceID)
	s.Equal("wizard", c.Class.ID)
	s.Equal("sage", c.Background.ID)
	s.Equal("Laeral", c.Name)
}

func (s *CLITestSuite) TestGenerateBatchText() {
	out, _, err := s.run("generate", "--seed", "9", "--count", "3")
	s.Require().NoError(err)
	s.Equal(2, strings.Count(out, strings.Repeat("-", 40)))
	s.Contains(out, "Sources: ")
}

func (s *CLITestSuite) TestGenerateTrace() {
	_, stderr, err := s.run("generate", "--seed", "4", "--trace")
	s.Require().NoError(err)
	for _, stage := range generator.Stages {
		s.Contains(stderr, stage)
	}
}

func (s *CLITestSuite) TestGenerateRejectsBadInput() {
	testCases := []struct {
		name string
		args []string
		exit int
	}{
		{"unknown race", []string{"generate", "--race", "kobold"}, 2},
		{"bad format", []string{"generate", "--format", "yaml"}, 2},
		{"bad method", []string{"generate", "--method", "point_buy"}, 2},
		{"batch too large", []string{"generate", "--count", "101"}, 2},
		{"save without redis", []string{"generate", "--save"}, 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, _, err := s.run(tc.args...)
			s.Require().Error(err)
			s.Equal(tc.exit, errors.GetCode(err).ExitCode(), "got %v", err)
		})
	}
}

func (s *CLITestSuite) TestInvalidConfigIsRejected() {
	s.T().Setenv("CHARGEN_ABILITY_METHOD", "point_buy")

	_, _, err := s.run("list", "races")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "CHARGEN_ABILITY_METHOD")
	s.Equal(2, errors.GetCode(err).ExitCode())

	_, _, err = s.run("--log-format", "xml", "list", "races")
	s.Require().Error(err)
	s.Contains(err.Error(), "CHARGEN_LOG_FORMAT")
}

func (s *CLITestSuite) TestList() {
	out, _, err := s.run("list", "races")
	s.Require().NoError(err)
	s.Contains(out, "dwarf")
	s.Contains(out, "hill-dwarf")

	out, _, err = s.run("list", "classes")
	s.Require().NoError(err)
	s.Contains(out, "d12")

	out, _, err = s.run("list", "pantheons")
	s.Require().NoError(err)
	s.Contains(out, "forgotten-realms")

	out, _, err = s.run("list", "backgrounds")
	s.Require().NoError(err)
	s.Contains(out, "acolyte")
}

func (s *CLITestSuite) TestSavedCharacterLifecycle() {
	s.T().Setenv("REDIS_ADDR", s.redis.Addr())

	saved := s.generateJSON("--seed", "3", "--save")

	out, _, err := s.run("saved")
	s.Require().NoError(err)
	s.Contains(out, saved.ID)
	s.Contains(out, saved.Name)

	out, _, err = s.run("show", saved.ID, "--format", "json")
	s.Require().NoError(err)
	var shown dnd5e.Character
	s.Require().NoError(json.Unmarshal([]byte(out), &shown))
	s.Equal(saved.Name, shown.Name)
	s.Equal(saved.AbilityScores, shown.AbilityScores)

	out, _, err = s.run("delete", saved.ID)
	s.Require().NoError(err)
	s.Contains(out, "deleted")

	_, _, err = s.run("show", saved.ID)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(3, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestStorageCommandsNeedRedis() {
	_, _, err := s.run("saved")
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CLITestSuite) TestRedisDown() {
	addr := s.redis.Addr()
	s.redis.Close()
	s.T().Setenv("REDIS_ADDR", addr)

	_, _, err := s.run("saved")
	s.Require().Error(err)
	s.Equal(69, errors.GetCode(err).ExitCode())
}
