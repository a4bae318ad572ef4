package proficiencies_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

type ProficienciesTestSuite struct {
	suite.Suite
}

func TestProficienciesSuite(t *testing.T) {
	suite.Run(t, new(ProficienciesTestSuite))
}

func (s *ProficienciesTestSuite) TestPoolsHaveUniqueKeys() {
	kinds := []dnd5e.ProficiencyKind{
		dnd5e.ProficiencyKindSkill,
		dnd5e.ProficiencyKindTool,
		dnd5e.ProficiencyKindWeapon,
		dnd5e.ProficiencyKindArmor,
		dnd5e.ProficiencyKindVehicle,
		dnd5e.ProficiencyKindSavingThrow,
	}
	for _, kind := range kinds {
		s.Run(string(kind), func() {
			pool := proficiencies.Pool(kind)
			s.NotEmpty(pool)
			seen := map[string]bool{}
			for _, p := range pool {
				s.Equal(kind, p.Kind)
				s.False(seen[p.Key()], "duplicate %s", p.Key())
				seen[p.Key()] = true
			}
		})
	}
}

func (s *ProficienciesTestSuite) TestPoolSizes() {
	s.Len(proficiencies.Pool(dnd5e.ProficiencyKindSkill), 18)
	s.Len(proficiencies.Pool(dnd5e.ProficiencyKindSavingThrow), 6)
	s.Len(proficiencies.Pool(dnd5e.ProficiencyKindTool), 37)
	s.Nil(proficiencies.Pool("psionics"))
}

func (s *ProficienciesTestSuite) TestChooseSkills() {
	opt := proficiencies.ChooseSkills(dnd5e.ChoiceSourceClass, 2, dnd5e.SkillArcana, dnd5e.SkillHistory)
	s.Equal("Choose 2 skills", opt.Description)
	s.Equal(dnd5e.ProficiencyKindSkill, opt.Kind)
	s.Len(opt.From, 2)

	anySkill := proficiencies.ChooseSkills(dnd5e.ChoiceSourceRace, 1)
	s.Equal("Choose a skill", anySkill.Description)
	s.Empty(anySkill.From)
}

func (s *ProficienciesTestSuite) TestToolOptions() {
	opt := proficiencies.AnyMusicalInstrument(dnd5e.ChoiceSourceBackground, 1)
	s.Equal(dnd5e.ProficiencyKindTool, opt.Kind)
	s.Len(opt.From, len(proficiencies.MusicalInstruments))
	s.Contains(opt.From, dnd5e.ToolProficiency("Lute"))
}
