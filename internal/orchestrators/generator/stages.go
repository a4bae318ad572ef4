package generator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/backgrounds"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/content"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/races"
)

var genderWeights = map[dnd5e.Gender]int{
	dnd5e.GenderFemale:    48,
	dnd5e.GenderMale:      48,
	dnd5e.GenderNonbinary: 4,
}

var genders = []dnd5e.Gender{dnd5e.GenderFemale, dnd5e.GenderMale, dnd5e.GenderNonbinary}

func (o *orchestrator) chooseRace(b *build) (string, error) {
	race := b.pins.race
	if race == nil {
		race, _ = random.Choose(b.src, races.All())
	}

	sub := b.pins.subrace
	if sub == nil && len(race.Subraces) > 0 {
		sub, _ = random.Choose(b.src, race.Subraces)
	}

	b.race = race
	b.traits = race.With(sub)
	info := b.traits.Info
	b.char.Race = &info

	return info.DisplayName(), nil
}

func (o *orchestrator) rollCharacteristics(b *build) (string, error) {
	gender := b.in.Gender
	if gender == "" {
		gender, _ = random.ChooseWeighted(b.src, genders, func(g dnd5e.Gender) int {
			return genderWeights[g]
		})
	}

	age := b.traits.Age
	ph := b.traits.Physique
	heightMod := b.src.Roll(ph.HeightMod.Count, ph.HeightMod.Size)
	weightMod := 1
	if ph.WeightMod.Count > 0 {
		weightMod = b.src.Roll(ph.WeightMod.Count, ph.WeightMod.Size)
	}

	b.char.Characteristics = &dnd5e.Characteristics{
		Gender:       gender,
		Age:          age.Min + b.src.Intn(age.Max-age.Min+1),
		HeightInches: ph.BaseHeight + heightMod,
		WeightPounds: ph.BaseWeight + heightMod*weightMod,
	}

	name := b.in.Name
	if name == "" {
		drawn, err := o.drawName(b, gender)
		if err != nil {
			return "", err
		}
		name = drawn
	}
	b.char.Name = name

	c := b.char.Characteristics
	return fmt.Sprintf("%s, %s, age %d, %d in, %d lb", name, gender, c.Age, c.HeightInches, c.WeightPounds), nil
}

func (o *orchestrator) drawName(b *build, gender dnd5e.Gender) (string, error) {
	table, err := o.content.Names(b.traits.NameTables...)
	if err != nil {
		return "", err
	}

	given, ok := random.Choose(b.src, table.Given(gender))
	if !ok {
		return "", errors.ResourceExhaustedf("no names for %s", b.traits.Info.ID).WithMeta("pool", "names")
	}
	if family, ok := random.Choose(b.src, table.Family); ok {
		return given + " " + family, nil
	}
	return given, nil
}

func (o *orchestrator) rollAbilities(b *build) (string, error) {
	rolls := make([]int, len(dnd5e.Abilities))
	switch b.pins.method {
	case MethodClassic:
		for i := range rolls {
			rolls[i] = b.src.Roll(3, 6)
		}
	case MethodStandardArray:
		copy(rolls, random.Shuffle(b.src, StandardArray))
	default:
		for i := range rolls {
			rolls[i] = b.src.RollDropLowest(4, 6, 1).Total
		}
	}

	scores := &dnd5e.AbilityScores{}
	for i, a := range dnd5e.Abilities {
		scores.Set(a, rolls[i])
	}
	b.char.AbilityRolls = rolls
	b.char.AbilityScores = scores

	boosted := make(map[dnd5e.Ability]bool)
	for _, inc := range b.traits.AbilityIncreases {
		scores.Add(inc.Ability, inc.Amount)
		boosted[inc.Ability] = true
	}

	// Flexible increases land on distinct abilities, favouring the strong ones
	choose := b.traits.ChooseIncrease
	for i := 0; i < choose.Count; i++ {
		a, ok := random.ChooseWeighted(b.src, dnd5e.Abilities, func(a dnd5e.Ability) int {
			if boosted[a] {
				return 0
			}
			return b.abilityWeight(a)
		})
		if !ok {
			break
		}
		scores.Add(a, choose.Amount)
		boosted[a] = true
	}

	parts := make([]string, 0, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		parts = append(parts, fmt.Sprintf("%s %d", strings.ToUpper(string(a)), scores.Get(a)))
	}
	return strings.Join(parts, " "), nil
}

func (o *orchestrator) chooseBackground(b *build) (string, error) {
	bg := b.pins.background
	if bg == nil {
		bg, _ = random.ChooseWeighted(b.src, backgrounds.All(), func(bg *backgrounds.Background) int {
			w := 0
			for _, s := range bg.Skills {
				w += b.skillWeight(s)
			}
			return w
		})
	}

	b.background = bg
	info := bg.Info()
	b.char.Background = &info
	return bg.Name, nil
}

// classAffinity squares the mean primary ability weight so strong matches
// dominate. Fighters need only their best primary ability.
func (b *build) classAffinity(c *classes.Class) int {
	if len(c.PrimaryAbilities) == 0 {
		return 1
	}

	var w int
	if c.EitherPrimary {
		for _, a := range c.PrimaryAbilities {
			w = max(w, b.abilityWeight(a))
		}
	} else {
		for _, a := range c.PrimaryAbilities {
			w += b.abilityWeight(a)
		}
		w /= len(c.PrimaryAbilities)
	}
	return w * w
}

func (o *orchestrator) chooseClass(b *build) (string, error) {
	c := b.pins.class
	if c == nil {
		c, _ = random.ChooseWeighted(b.src, classes.All(), b.classAffinity)
	}

	b.class = c
	info := c.Info()
	b.char.Class = &info
	return c.Name, nil
}

func (o *orchestrator) drawPersonality(b *build) (string, error) {
	table, err := o.content.Personality(b.background.PersonalityTable)
	if err != nil {
		return "", err
	}

	ideal, _ := random.Choose(b.src, table.Ideals)
	bond, _ := random.Choose(b.src, table.Bonds)
	flaw, _ := random.Choose(b.src, table.Flaws)

	b.ideal = ideal.Tag
	b.char.Personality = &dnd5e.Personality{
		Traits: random.Sample(b.src, table.Traits, 2),
		Ideal:  dnd5e.Ideal{Text: ideal.Text, Tag: ideal.Tag},
		Bond:   bond,
		Flaw:   flaw,
	}
	return fmt.Sprintf("ideal: %s", ideal.Tag), nil
}

func (o *orchestrator) resolveLanguages(b *build) (string, error) {
	for _, l := range b.traits.Languages {
		b.addLanguage(l)
	}

	var options []dnd5e.LanguageOption
	options = append(options, b.traits.LanguageOptions...)
	options = append(options, b.background.LanguageOptions...)
	options = append(options, b.class.LanguageOptions...)

	for _, opt := range options {
		for i := 0; i < opt.Count; i++ {
			l, err := b.drawLanguage(opt)
			if err != nil {
				return "", err
			}
			b.addLanguage(l)
		}
	}

	// Secret languages are never drawn, only granted
	for _, l := range b.class.Languages {
		b.addLanguage(l)
	}

	names := make([]string, len(b.char.Languages))
	for i, l := range b.char.Languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", "), nil
}

func (o *orchestrator) chooseDeity(b *build) (string, error) {
	pantheon := b.pins.pantheon
	required := b.class.RequiresDeity || b.background.RequiresDeity || pantheon != nil
	if !required && !b.src.Chance(DeityChance) {
		return "none", nil
	}

	if pantheon == nil {
		favoured := make(map[string]bool, len(b.traits.Pantheons))
		for _, id := range b.traits.Pantheons {
			favoured[id] = true
		}
		pantheon, _ = random.ChooseWeighted(b.src, o.content.Pantheons(), func(p *content.Pantheon) int {
			if favoured[p.ID] {
				return 3
			}
			return 1
		})
		if pantheon == nil {
			return "", errors.ResourceExhaustedf("no pantheons loaded").WithMeta("pool", "pantheons")
		}
	}

	deity, ok := random.ChooseWeighted(b.src, pantheon.Deities, func(d dnd5e.Deity) int {
		return 1 + 2*b.ideal.Matches(d.Alignment)
	})
	if !ok {
		return "", errors.ResourceExhaustedf("pantheon %s has no deities", pantheon.ID).WithMeta("pool", "deities")
	}

	deity.Domains = append([]string(nil), deity.Domains...)
	b.deity = &deity
	b.char.Faith = &dnd5e.Faith{Pantheon: pantheon.Ref(), Deity: deity}
	return fmt.Sprintf("%s (%s)", deity.Name, pantheon.Name), nil
}

// alignmentWeight is doubled so halving evil alignments stays integral
func (b *build) alignmentWeight(a dnd5e.Alignment) int {
	w := 1 + 3*b.ideal.Matches(a)
	if b.deity != nil && b.deity.Alignment.Distance(a) <= 1 {
		w += 2
	}
	if a.IsEvil() {
		return w
	}
	return 2 * w
}

func (o *orchestrator) chooseAlignment(b *build) (string, error) {
	a, _ := random.ChooseWeighted(b.src, dnd5e.Alignments, b.alignmentWeight)
	b.char.Alignment = a
	return a.Name(), nil
}

func (o *orchestrator) resolveProficiencies(b *build) (string, error) {
	var grants []dnd5e.Proficiency
	grants = append(grants, b.traits.Proficiencies...)
	grants = append(grants, b.background.Grants()...)
	grants = append(grants, b.class.Grants()...)

	for _, p := range grants {
		if b.addProficiency(p) {
			continue
		}
		if !replaceable(p.Kind) {
			continue
		}
		// Overlapping skill or tool grants become a free pick of the same kind
		replacement, err := b.drawProficiency(dnd5e.ProficiencyOption{
			Description: "Replacement for " + p.String(),
			Kind:        p.Kind,
			Count:       1,
		})
		if err != nil {
			return "", err
		}
		b.addProficiency(replacement)
	}

	var options []dnd5e.ProficiencyOption
	options = append(options, b.traits.ProficiencyOptions...)
	options = append(options, b.class.ProficiencyOptions...)
	options = append(options, b.background.ProficiencyOptions...)

	for _, opt := range options {
		for i := 0; i < opt.Count; i++ {
			p, err := b.drawProficiency(opt)
			if err != nil {
				return "", err
			}
			b.addProficiency(p)
		}
	}

	return fmt.Sprintf("%d proficiencies", len(b.char.Proficiencies)), nil
}

func (o *orchestrator) finalize(b *build) (string, error) {
	c := b.char

	var features []dnd5e.Feature
	features = append(features, b.traits.Features...)
	features = append(features, b.background.Feature)
	features = append(features, b.class.Features...)
	c.Features = features

	c.HitPoints = max(1, b.class.HitDie+c.Modifier(dnd5e.AbilityConstitution)+b.traits.HitPointBonus)
	c.ProficiencyBonus = proficiencyBonus
	c.CreatedAt = o.clock.Now()

	if c.Languages == nil {
		c.Languages = []dnd5e.Language{}
	}
	if c.Proficiencies == nil {
		c.Proficiencies = []dnd5e.Proficiency{}
	}
	if c.Equipment == nil {
		c.Equipment = []dnd5e.Item{}
	}

	return fmt.Sprintf("%s, %s %s, %d hp", c.Name, c.Race.DisplayName(), c.Class.Name, c.HitPoints), nil
}
