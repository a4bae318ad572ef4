package generator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/backgrounds"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/races"
)

type ResolveTestSuite struct {
	suite.Suite
	b *build
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) SetupTest() {
	scores := &dnd5e.AbilityScores{}
	for _, a := range dnd5e.Abilities {
		scores.Set(a, 10)
	}
	s.b = &build{
		src:  random.NewSeeded(11),
		char: &dnd5e.Character{AbilityScores: scores},
	}
}

func (s *ResolveTestSuite) TestDrawProficiencySkipsHeld() {
	s.b.addProficiency(dnd5e.SkillProficiency(dnd5e.SkillAthletics))
	opt := proficiencies.ChooseSkills(dnd5e.ChoiceSourceClass, 1, dnd5e.SkillAthletics, dnd5e.SkillAcrobatics)

	for i := 0; i < 20; i++ {
		p, err := s.b.drawProficiency(opt)
		s.Require().NoError(err)
		s.Equal(dnd5e.SkillProficiency(dnd5e.SkillAcrobatics), p)
	}
}

func (s *ResolveTestSuite) TestDrawProficiencyFallsBackToWholeKind() {
	s.b.addProficiency(dnd5e.SkillProficiency(dnd5e.SkillAthletics))
	opt := proficiencies.ChooseSkills(dnd5e.ChoiceSourceRace, 1, dnd5e.SkillAthletics)

	p, err := s.b.drawProficiency(opt)
	s.Require().NoError(err)
	s.Equal(dnd5e.ProficiencyKindSkill, p.Kind)
	s.False(s.b.char.HasProficiency(p))
}

func (s *ResolveTestSuite) TestDrawProficiencyExhausted() {
	for _, p := range proficiencies.Pool(dnd5e.ProficiencyKindVehicle) {
		s.b.addProficiency(p)
	}

	_, err := s.b.drawProficiency(dnd5e.ProficiencyOption{
		Description: "Vehicles",
		Kind:        dnd5e.ProficiencyKindVehicle,
		Count:       1,
		Source:      dnd5e.ChoiceSourceBackground,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal("vehicle", errors.GetMeta(err)["pool"])
	s.Equal("background", errors.GetMeta(err)["source"])
}

func (s *ResolveTestSuite) TestSkillWeightFollowsModifier() {
	s.b.char.AbilityScores.Set(dnd5e.AbilityDexterity, 18)
	s.b.char.AbilityScores.Set(dnd5e.AbilityStrength, 1)

	s.Equal(10, s.b.proficiencyWeight(dnd5e.SkillProficiency(dnd5e.SkillStealth)))
	s.Equal(1, s.b.proficiencyWeight(dnd5e.SkillProficiency(dnd5e.SkillAthletics)))
	s.Equal(1, s.b.proficiencyWeight(dnd5e.ToolProficiency(proficiencies.ThievesTools)))

	s.b.addProficiency(dnd5e.SkillProficiency(dnd5e.SkillStealth))
	s.Equal(0, s.b.proficiencyWeight(dnd5e.SkillProficiency(dnd5e.SkillStealth)))
}

func (s *ResolveTestSuite) TestCollidingSkillGrantIsReplaced() {
	halfOrc, err := races.Get(races.HalfOrc)
	s.Require().NoError(err)
	s.b.traits = halfOrc.With(nil)
	s.b.background, err = backgrounds.Get(backgrounds.Soldier)
	s.Require().NoError(err)
	s.b.class, err = classes.Get(classes.Fighter)
	s.Require().NoError(err)

	_, err = (&orchestrator{}).resolveProficiencies(s.b)
	s.Require().NoError(err)

	// Menacing and Soldier both grant Intimidation; the second becomes a free pick
	skills := s.b.char.ProficienciesOf(dnd5e.ProficiencyKindSkill)
	s.Len(skills, 5)
	s.True(s.b.char.HasProficiency(dnd5e.SkillProficiency(dnd5e.SkillIntimidation)))
	s.True(s.b.char.HasProficiency(dnd5e.SkillProficiency(dnd5e.SkillAthletics)))
	s.Len(s.b.char.ProficienciesOf(dnd5e.ProficiencyKindTool), 1)
}

func (s *ResolveTestSuite) TestRepeatedArmorGrantIsDropped() {
	dwarf, err := races.Get(races.Dwarf)
	s.Require().NoError(err)
	mountain, err := dwarf.Subrace("mountain-dwarf")
	s.Require().NoError(err)
	s.b.traits = dwarf.With(mountain)
	s.b.background, err = backgrounds.Get(backgrounds.Soldier)
	s.Require().NoError(err)
	s.b.class, err = classes.Get(classes.Fighter)
	s.Require().NoError(err)

	_, err = (&orchestrator{}).resolveProficiencies(s.b)
	s.Require().NoError(err)

	s.Equal(proficiencies.Armor(
		proficiencies.LightArmor,
		proficiencies.MediumArmor,
		proficiencies.HeavyArmor,
		proficiencies.Shields,
	), s.b.char.ProficienciesOf(dnd5e.ProficiencyKindArmor))
}

func (s *ResolveTestSuite) TestDrawLanguage() {
	s.b.addLanguage(dnd5e.LanguageCommon)
	s.b.addLanguage(dnd5e.LanguageElvish)

	s.Run("skips known", func() {
		opt := dnd5e.LanguageOption{Count: 1, From: []dnd5e.Language{dnd5e.LanguageElvish, dnd5e.LanguageSylvan}}
		l, err := s.b.drawLanguage(opt)
		s.Require().NoError(err)
		s.Equal(dnd5e.LanguageSylvan, l)
	})

	s.Run("falls back", func() {
		opt := dnd5e.LanguageOption{Count: 1, From: []dnd5e.Language{dnd5e.LanguageElvish}}
		l, err := s.b.drawLanguage(opt)
		s.Require().NoError(err)
		s.False(s.b.char.HasLanguage(l))
		s.NotEqual(dnd5e.LanguageDruidic, l)
	})

	s.Run("exhausted", func() {
		for _, l := range dnd5e.LearnableLanguages() {
			s.b.addLanguage(l)
		}
		_, err := s.b.drawLanguage(dnd5e.LanguageOption{Count: 1, Source: dnd5e.ChoiceSourceRace})
		s.Require().Error(err)
		s.True(errors.IsResourceExhausted(err))
		s.Equal("language", errors.GetMeta(err)["pool"])
	})
}

func (s *ResolveTestSuite) TestAddLanguageDeduplicates() {
	s.True(s.b.addLanguage(dnd5e.LanguageOrc))
	s.False(s.b.addLanguage(dnd5e.LanguageOrc))
	s.Equal([]dnd5e.Language{dnd5e.LanguageOrc}, s.b.char.Languages)
}

func (s *ResolveTestSuite) TestAlignmentWeight() {
	s.b.ideal = dnd5e.IdealGood

	s.Equal(8, s.b.alignmentWeight(dnd5e.AlignmentLawfulGood))
	s.Equal(2, s.b.alignmentWeight(dnd5e.AlignmentLawfulNeutral))
	s.Equal(1, s.b.alignmentWeight(dnd5e.AlignmentChaoticEvil))

	s.b.deity = &dnd5e.Deity{Name: "Bane", Alignment: dnd5e.AlignmentLawfulEvil}
	s.Equal(3, s.b.alignmentWeight(dnd5e.AlignmentLawfulEvil))
	s.Equal(6, s.b.alignmentWeight(dnd5e.AlignmentLawfulNeutral))
	s.Equal(1, s.b.alignmentWeight(dnd5e.AlignmentChaoticEvil))
}

func (s *ResolveTestSuite) TestClassAffinity() {
	s.b.char.AbilityScores.Set(dnd5e.AbilityIntelligence, 16)
	s.b.char.AbilityScores.Set(dnd5e.AbilityDexterity, 14)
	s.b.char.AbilityScores.Set(dnd5e.AbilityStrength, 8)

	wizard, err := classes.Get(classes.Wizard)
	s.Require().NoError(err)
	s.Equal(81, s.b.classAffinity(wizard))

	fighter, err := classes.Get(classes.Fighter)
	s.Require().NoError(err)
	s.Equal(64, s.b.classAffinity(fighter))
}

func (s *ResolveTestSuite) TestUnpackPrefersProficientTools() {
	s.b.addProficiency(dnd5e.ToolProficiency("Lute"))

	items, err := s.b.unpack(equipment.AnyProficient(equipment.CatalogMusicalInstrument, 1))
	s.Require().NoError(err)
	s.Equal([]dnd5e.Item{{Name: "Lute", Quantity: 1}}, items)

	items, err = s.b.unpack(equipment.AnyProficient(equipment.CatalogGamingSet, 2))
	s.Require().NoError(err)
	s.Len(items, 2)
	for _, it := range items {
		s.Contains(proficiencies.GamingSets, it.Name)
	}
}

func (s *ResolveTestSuite) TestUnpackPacksAndFixedItems() {
	items, err := s.b.unpack(equipment.Packed(equipment.PackExplorer))
	s.Require().NoError(err)
	s.Equal(equipment.Expand(equipment.PackExplorer), items)

	items, err = s.b.unpack(equipment.Item("Javelin", 4))
	s.Require().NoError(err)
	s.Equal([]dnd5e.Item{{Name: "Javelin", Quantity: 4}}, items)

	_, err = s.b.unpack(equipment.Packed("bag-of-holding"))
	s.True(errors.IsInternal(err))
}
