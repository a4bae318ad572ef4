// Package classes is the closed registry of character classes.
package classes

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

// Class is a character class at first level
type Class struct {
	ID       string
	Name     string
	Citation dnd5e.Citation
	HitDie   int

	PrimaryAbilities []dnd5e.Ability
	// EitherPrimary means any one primary ability suffices (fighter: Str or Dex)
	EitherPrimary bool

	SavingThrows       []dnd5e.Ability
	Proficiencies      []dnd5e.Proficiency
	ProficiencyOptions []dnd5e.ProficiencyOption

	Languages       []dnd5e.Language
	LanguageOptions []dnd5e.LanguageOption

	Equipment []equipment.Choice
	Features  []dnd5e.Feature

	RequiresDeity bool
}

// Info is the summary stored on a character
func (c *Class) Info() dnd5e.ClassInfo {
	return dnd5e.ClassInfo{ID: c.ID, Name: c.Name, HitDie: c.HitDie, Citation: c.Citation}
}

// Grants returns saving throws followed by the other fixed proficiencies
func (c *Class) Grants() []dnd5e.Proficiency {
	out := make([]dnd5e.Proficiency, 0, len(c.SavingThrows)+len(c.Proficiencies))
	for _, a := range c.SavingThrows {
		out = append(out, dnd5e.SavingThrowProficiency(a))
	}
	return append(out, c.Proficiencies...)
}

var byID = func() map[string]*Class {
	m := make(map[string]*Class, len(all))
	for _, c := range all {
		m[c.ID] = c
	}
	return m
}()

// All returns every class in book order
func All() []*Class {
	out := make([]*Class, len(all))
	copy(out, all)
	return out
}

// Get looks up a class by ID
func Get(id string) (*Class, error) {
	c, ok := byID[id]
	if !ok {
		return nil, errors.NotFoundf("class %q not found", id)
	}
	return c, nil
}
