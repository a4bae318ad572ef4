package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{15, 2},
		{18, 4},
		{20, 5},
	}
	for _, tc := range testCases {
		s.Equal(tc.expected, dnd5e.Modifier(tc.score), "score %d", tc.score)
	}
}

func (s *EntitiesTestSuite) TestAbilityScoresAddCaps() {
	scores := dnd5e.AbilityScores{Strength: 19}
	scores.Add(dnd5e.AbilityStrength, 2)
	s.Equal(20, scores.Strength)

	scores.Add(dnd5e.AbilityWisdom, 1)
	s.Equal(1, scores.Get(dnd5e.AbilityWisdom))
}

func (s *EntitiesTestSuite) TestSkillAbility() {
	s.Equal(dnd5e.AbilityDexterity, dnd5e.SkillStealth.Ability())
	s.Equal(dnd5e.AbilityWisdom, dnd5e.SkillAnimalHandling.Ability())
	s.Len(dnd5e.Skills, 18)
	for _, sk := range dnd5e.Skills {
		s.True(sk.Ability().Valid(), string(sk))
	}
}

func (s *EntitiesTestSuite) TestProficiencyKeyIgnoresCase() {
	a := dnd5e.ToolProficiency("Thieves' Tools")
	b := dnd5e.ToolProficiency("thieves' tools")
	s.Equal(a.Key(), b.Key())
	s.NotEqual(a.Key(), dnd5e.WeaponProficiency("Thieves' Tools").Key())
}

func (s *EntitiesTestSuite) TestProficiencyString() {
	s.Equal("Sleight of Hand", dnd5e.SkillProficiency(dnd5e.SkillSleightOfHand).String())
	s.Equal("Wisdom saves", dnd5e.SavingThrowProficiency(dnd5e.AbilityWisdom).String())
	s.Equal("Shields", dnd5e.ArmorProficiency("Shields").String())
}

func (s *EntitiesTestSuite) TestAlignmentAxes() {
	s.Equal(1, dnd5e.AlignmentLawfulEvil.Lawfulness())
	s.Equal(-1, dnd5e.AlignmentLawfulEvil.Morality())
	s.Equal(0, dnd5e.AlignmentNeutral.Distance(dnd5e.AlignmentNeutral))
	s.Equal(1, dnd5e.AlignmentNeutral.Distance(dnd5e.AlignmentNeutralGood))
	s.Equal(4, dnd5e.AlignmentLawfulGood.Distance(dnd5e.AlignmentChaoticEvil))
	s.True(dnd5e.AlignmentNeutralEvil.IsEvil())
}

func (s *EntitiesTestSuite) TestIdealTagMatches() {
	s.Equal(1, dnd5e.IdealLawful.Matches(dnd5e.AlignmentLawfulGood))
	s.Equal(0, dnd5e.IdealLawful.Matches(dnd5e.AlignmentChaoticGood))
	s.Equal(2, dnd5e.IdealNeutral.Matches(dnd5e.AlignmentNeutral))
	s.Equal(0, dnd5e.IdealAny.Matches(dnd5e.AlignmentNeutral))
}

func (s *EntitiesTestSuite) TestLanguages() {
	s.True(dnd5e.LanguageDraconic.IsExotic())
	s.False(dnd5e.LanguageElvish.IsExotic())
	s.NotContains(dnd5e.LearnableLanguages(), dnd5e.LanguageDruidic)
	s.NotContains(dnd5e.LearnableLanguages(), dnd5e.LanguageThievesCant)
}

func (s *EntitiesTestSuite) TestCharacterCitations() {
	c := &dnd5e.Character{
		Race: &dnd5e.RaceInfo{
			Citations: dnd5e.Citations{{Book: dnd5e.BookPHB, Page: 18}, {Book: dnd5e.BookPHB, Page: 17}},
		},
		Class: &dnd5e.ClassInfo{Citation: dnd5e.Citation{Book: dnd5e.BookPHB, Page: 17}},
		Features: []dnd5e.Feature{
			{Name: "Darkvision", Citation: dnd5e.Citation{Book: dnd5e.BookPHB, Page: 20}},
			{Name: "no citation"},
		},
	}
	s.Equal(dnd5e.Citations{
		{Book: dnd5e.BookPHB, Page: 17},
		{Book: dnd5e.BookPHB, Page: 18},
		{Book: dnd5e.BookPHB, Page: 20},
	}, c.Citations())
}

func (s *EntitiesTestSuite) TestHasProficiencyAndLanguage() {
	c := &dnd5e.Character{
		Languages:     []dnd5e.Language{dnd5e.LanguageCommon},
		Proficiencies: dnd5e.SkillProficiencies(dnd5e.SkillArcana),
	}
	s.True(c.HasLanguage(dnd5e.LanguageCommon))
	s.False(c.HasLanguage(dnd5e.LanguageElvish))
	s.True(c.HasProficiency(dnd5e.SkillProficiency(dnd5e.SkillArcana)))
	s.False(c.HasProficiency(dnd5e.SkillProficiency(dnd5e.SkillHistory)))
}
