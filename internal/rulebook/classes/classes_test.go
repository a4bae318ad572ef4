package classes_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

type ClassesTestSuite struct {
	suite.Suite
}

func TestClassesSuite(t *testing.T) {
	suite.Run(t, new(ClassesTestSuite))
}

func (s *ClassesTestSuite) TestRegistry() {
	all := classes.All()
	s.Len(all, 12)

	for _, c := range all {
		s.Run(c.ID, func() {
			got, err := classes.Get(c.ID)
			s.Require().NoError(err)
			s.Same(c, got)

			s.Contains([]int{6, 8, 10, 12}, c.HitDie)
			s.NotEmpty(c.PrimaryAbilities)
			s.Len(c.SavingThrows, 2)
			s.NotEmpty(c.Features)
			s.NotEmpty(c.Equipment)

			hasSkills := false
			for _, opt := range c.ProficiencyOptions {
				s.Equal(dnd5e.ChoiceSourceClass, opt.Source)
				s.Positive(opt.Count)
				if opt.Kind == dnd5e.ProficiencyKindSkill {
					hasSkills = true
					if len(opt.From) > 0 {
						s.GreaterOrEqual(len(opt.From), opt.Count)
					}
				}
			}
			s.True(hasSkills, "class must offer skills")
		})
	}
}

func (s *ClassesTestSuite) TestEquipmentEntriesAreWellFormed() {
	for _, c := range classes.All() {
		for _, choice := range c.Equipment {
			s.NotEmpty(choice.Bundles, c.ID)
			for _, bundle := range choice.Bundles {
				for _, e := range bundle {
					set := 0
					if e.Name != "" {
						set++
					}
					if e.From != "" {
						set++
						s.NotEmpty(e.From.Items(), "%s: catalog %s", c.ID, e.From)
					}
					if e.Pack != "" {
						set++
						_, ok := equipment.GetPack(e.Pack)
						s.True(ok, "%s: pack %s", c.ID, e.Pack)
					}
					s.Equal(1, set, "%s: entry %+v", c.ID, e)
					s.Positive(e.Quantity, c.ID)
				}
			}
		}
	}
}

func (s *ClassesTestSuite) TestGetUnknown() {
	_, err := classes.Get("artificer")
	s.True(errors.IsNotFound(err))
}

func (s *ClassesTestSuite) TestDeityRequired() {
	for _, c := range classes.All() {
		want := c.ID == classes.Cleric || c.ID == classes.Paladin
		s.Equal(want, c.RequiresDeity, c.ID)
	}
}

func (s *ClassesTestSuite) TestSecretLanguages() {
	druid, err := classes.Get(classes.Druid)
	s.Require().NoError(err)
	s.Equal([]dnd5e.Language{dnd5e.LanguageDruidic}, druid.Languages)

	rogue, err := classes.Get(classes.Rogue)
	s.Require().NoError(err)
	s.Equal([]dnd5e.Language{dnd5e.LanguageThievesCant}, rogue.Languages)
}

func (s *ClassesTestSuite) TestGrantsStartWithSavingThrows() {
	wizard, err := classes.Get(classes.Wizard)
	s.Require().NoError(err)

	g := wizard.Grants()
	s.Require().GreaterOrEqual(len(g), 2)
	s.Equal(dnd5e.SavingThrowProficiency(dnd5e.AbilityIntelligence), g[0])
	s.Equal(dnd5e.SavingThrowProficiency(dnd5e.AbilityWisdom), g[1])
	s.Equal(6, wizard.Info().HitDie)
}
