package generator

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

const (
	standardLanguageWeight = 3
	exoticLanguageWeight   = 1
)

// addLanguage appends l unless it is already known
func (b *build) addLanguage(l dnd5e.Language) bool {
	if b.char.HasLanguage(l) {
		return false
	}
	b.char.Languages = append(b.char.Languages, l)
	return true
}

// drawLanguage picks one unknown language for an option. It draws from the
// option's list weighted toward standard languages, falls back to any
// unknown learnable language, and fails once every language is known.
func (b *build) drawLanguage(opt dnd5e.LanguageOption) (dnd5e.Language, error) {
	pool := opt.From
	if len(pool) == 0 {
		pool = dnd5e.LearnableLanguages()
	}

	l, ok := random.ChooseWeighted(b.src, pool, func(l dnd5e.Language) int {
		if b.char.HasLanguage(l) {
			return 0
		}
		if l.IsExotic() {
			return exoticLanguageWeight
		}
		return standardLanguageWeight
	})
	if ok {
		return l, nil
	}

	var rest []dnd5e.Language
	for _, l := range dnd5e.LearnableLanguages() {
		if !b.char.HasLanguage(l) {
			rest = append(rest, l)
		}
	}
	if l, ok := random.Choose(b.src, rest); ok {
		return l, nil
	}

	return "", errors.ResourceExhaustedf("no language left to learn for %s option", opt.Source).
		WithMeta("pool", "language").
		WithMeta("source", string(opt.Source))
}

// addProficiency appends p unless a proficiency with the same key is held
func (b *build) addProficiency(p dnd5e.Proficiency) bool {
	if b.char.HasProficiency(p) {
		return false
	}
	b.char.Proficiencies = append(b.char.Proficiencies, p)
	return true
}

// replaceable kinds get a substitute pick when granted twice. A repeated
// armor, weapon, vehicle or saving throw grant adds nothing and is dropped.
func replaceable(kind dnd5e.ProficiencyKind) bool {
	return kind == dnd5e.ProficiencyKindSkill || kind == dnd5e.ProficiencyKindTool
}

// drawProficiency resolves one pick of a deferred option against what the
// character already holds. Skills are weighted by ability modifier, other
// kinds are uniform. An exhausted option list falls back to every
// proficiency of the kind; an exhausted kind is an error.
func (b *build) drawProficiency(opt dnd5e.ProficiencyOption) (dnd5e.Proficiency, error) {
	pool := opt.From
	if len(pool) == 0 {
		pool = proficiencies.Pool(opt.Kind)
	}

	p, ok := random.ChooseWeighted(b.src, pool, b.proficiencyWeight)
	if ok {
		return p, nil
	}

	var rest []dnd5e.Proficiency
	for _, p := range proficiencies.Pool(opt.Kind) {
		if !b.char.HasProficiency(p) {
			rest = append(rest, p)
		}
	}
	if p, ok := random.Choose(b.src, rest); ok {
		return p, nil
	}

	return dnd5e.Proficiency{}, errors.ResourceExhaustedf("no %s proficiency left for %q", opt.Kind, opt.Description).
		WithMeta("pool", string(opt.Kind)).
		WithMeta("source", string(opt.Source))
}

func (b *build) proficiencyWeight(p dnd5e.Proficiency) int {
	if b.char.HasProficiency(p) {
		return 0
	}
	if s, ok := p.Skill(); ok {
		return b.skillWeight(s)
	}
	return 1
}
