package generator

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/backgrounds"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/races"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx   context.Context
	bus   events.EventBus
	clock *clock.Fixed
	svc   Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	svc, err := New(&Config{
		Roller:      random.NewSeededRoller(7),
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) generate(in *GenerateInput) *dnd5e.Character {
	out, err := s.svc.Generate(s.ctx, in)
	s.Require().NoError(err)
	s.Require().NotNil(out.Character)
	return out.Character
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"missing roller", &Config{EventBus: s.bus, IDGenerator: idgen.NewSequential("c")}},
		{"missing bus", &Config{Roller: random.NewSeededRoller(1), IDGenerator: idgen.NewSequential("c")}},
		{"missing id generator", &Config{Roller: random.NewSeededRoller(1), EventBus: s.bus}},
		{"bad method", &Config{
			Roller:        random.NewSeededRoller(1),
			EventBus:      s.bus,
			IDGenerator:   idgen.NewSequential("c"),
			AbilityMethod: "point_buy",
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestSameSeedSameCharacter() {
	first := s.generate(&GenerateInput{Seed: 42})
	second := s.generate(&GenerateInput{Seed: 42})

	s.NotEqual(first.ID, second.ID)
	second.ID = first.ID
	s.Equal(first, second)
	s.Equal(int64(42), first.Seed)
}

func (s *OrchestratorTestSuite) TestInvariantsAcrossSeeds() {
	for seed := int64(1); seed <= 200; seed++ {
		c := s.generate(&GenerateInput{Seed: seed})

		keys := map[string]bool{}
		for _, p := range c.Proficiencies {
			s.False(keys[p.Key()], "seed %d: duplicate proficiency %s", seed, p.Key())
			keys[p.Key()] = true
		}

		langs := map[dnd5e.Language]bool{}
		for _, l := range c.Languages {
			s.False(langs[l], "seed %d: duplicate language %s", seed, l)
			langs[l] = true
		}
		s.True(langs[dnd5e.LanguageCommon], "seed %d: everyone speaks Common", seed)

		s.Require().NotNil(c.Personality)
		s.Len(c.Personality.Traits, 2)
		s.NotEqual(c.Personality.Traits[0], c.Personality.Traits[1], "seed %d", seed)

		for _, a := range dnd5e.Abilities {
			v := c.AbilityScores.Get(a)
			s.GreaterOrEqual(v, 3, "seed %d: %s", seed, a)
			s.LessOrEqual(v, 20, "seed %d: %s", seed, a)
		}

		s.Positive(c.HitPoints)
		s.Equal(2, c.ProficiencyBonus)
		s.Equal(1, c.Level)
		s.True(c.Alignment.Valid())
		s.NotEmpty(c.Name)
		s.NotEmpty(c.Equipment)
		s.Equal(s.clock.At, c.CreatedAt)

		class, err := classes.Get(c.Class.ID)
		s.Require().NoError(err)
		bg, err := backgrounds.Get(c.Background.ID)
		s.Require().NoError(err)
		if class.RequiresDeity || bg.RequiresDeity {
			s.NotNil(c.Faith, "seed %d: %s %s needs a deity", seed, class.ID, bg.ID)
		}

		for _, st := range class.SavingThrows {
			s.True(c.HasProficiency(dnd5e.SavingThrowProficiency(st)), "seed %d", seed)
		}
	}
}

func (s *OrchestratorTestSuite) TestPinnedChoicesAreHonored() {
	c := s.generate(&GenerateInput{
		Seed:         9,
		RaceID:       races.Elf,
		SubraceID:    "drow",
		BackgroundID: backgrounds.Sage,
		ClassID:      classes.Wizard,
		PantheonID:   "elven",
		Name:         "Viconia",
		Gender:       dnd5e.GenderFemale,
	})

	s.Equal(races.Elf, c.Race.ID)
	s.Equal("drow", c.Race.SubraceID)
	s.Equal(120, c.Race.Darkvision)
	s.Equal(backgrounds.Sage, c.Background.ID)
	s.Equal(classes.Wizard, c.Class.ID)
	s.Equal("Viconia", c.Name)
	s.Equal(dnd5e.GenderFemale, c.Characteristics.Gender)
	s.Require().NotNil(c.Faith)
	s.Equal("elven", c.Faith.Pantheon.ID)
}

func (s *OrchestratorTestSuite) TestUnknownPinsAreInvalid() {
	testCases := []struct {
		name  string
		input *GenerateInput
	}{
		{"race", &GenerateInput{RaceID: "kobold"}},
		{"subrace", &GenerateInput{RaceID: races.Dwarf, SubraceID: "duergar"}},
		{"subrace without race", &GenerateInput{SubraceID: "hill-dwarf"}},
		{"background", &GenerateInput{BackgroundID: "pirate"}},
		{"class", &GenerateInput{ClassID: "artificer"}},
		{"pantheon", &GenerateInput{PantheonID: "cthulhu"}},
		{"gender", &GenerateInput{Gender: "other"}},
		{"method", &GenerateInput{AbilityMethod: "point_buy"}},
		{"level", &GenerateInput{Level: 3}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.Generate(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}

	_, err := s.svc.Generate(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAbilityMethods() {
	array := s.generate(&GenerateInput{Seed: 3, AbilityMethod: MethodStandardArray})
	s.ElementsMatch(StandardArray, array.AbilityRolls)

	classic := s.generate(&GenerateInput{Seed: 3, AbilityMethod: MethodClassic})
	s.Len(classic.AbilityRolls, 6)
	for _, r := range classic.AbilityRolls {
		s.GreaterOrEqual(r, 3)
		s.LessOrEqual(r, 18)
	}
}

func (s *OrchestratorTestSuite) TestStagesPublishInOrder() {
	var seen []string
	var sources []string
	for _, name := range Stages {
		s.bus.SubscribeFunc(EventPrefix+name, 50, func(_ context.Context, e events.Event) error {
			stage, _ := e.Context().Get(ContextKeyStage)
			seen = append(seen, stage.(string))
			sources = append(sources, e.Source().GetID())
			return nil
		})
	}

	c := s.generate(&GenerateInput{Seed: 5})
	s.Equal(Stages, seen)
	for _, id := range sources {
		s.Equal(c.ID, id)
	}
}

func (s *OrchestratorTestSuite) TestSubscriberErrorStopsGeneration() {
	s.bus.SubscribeFunc(EventPrefix+StageClass, 50, func(context.Context, events.Event) error {
		return errors.Internal("listener broke")
	})

	_, err := s.svc.Generate(s.ctx, &GenerateInput{Seed: 5})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.Generate(ctx, &GenerateInput{Seed: 5})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestRollerFailureSurfaces() {
	svc, err := New(&Config{
		Roller:      testutils.NewSequenceRoller(1, 1),
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	_, err = svc.Generate(s.ctx, &GenerateInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "dice roller failed")
}

// With every die showing 1 each weighted draw lands on the first eligible
// entry, so the whole character is predictable.
func (s *OrchestratorTestSuite) TestLowestRollsPickFirstEntries() {
	roller := testutils.NewSequenceRoller()
	roller.Fallback = 1

	svc, err := New(&Config{
		Roller:      roller,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)

	out, err := svc.Generate(s.ctx, &GenerateInput{})
	s.Require().NoError(err)
	c := out.Character

	s.Equal("char_1", c.ID)
	s.Equal(races.Dwarf, c.Race.ID)
	s.Equal("hill-dwarf", c.Race.SubraceID)
	s.Equal(dnd5e.GenderFemale, c.Characteristics.Gender)
	s.Equal(50, c.Characteristics.Age)
	s.Equal(46, c.Characteristics.HeightInches)

	s.Equal([]int{3, 3, 3, 3, 3, 3}, c.AbilityRolls)
	s.Equal(5, c.AbilityScores.Constitution)
	s.Equal(4, c.AbilityScores.Wisdom)

	s.Equal(backgrounds.Acolyte, c.Background.ID)
	s.Equal(classes.Barbarian, c.Class.ID)
	s.Require().NotNil(c.Faith, "acolytes always worship")

	s.Equal([]dnd5e.Language{
		dnd5e.LanguageCommon,
		dnd5e.LanguageDwarvish,
		dnd5e.LanguageElvish,
		dnd5e.LanguageGiant,
	}, c.Languages)

	// d12 - 3 for Con 5 + 1 for Dwarven Toughness
	s.Equal(10, c.HitPoints)
}
