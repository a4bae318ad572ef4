// Package backgrounds is the closed registry of character backgrounds.
package backgrounds

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

// Background is a pre-adventure history
type Background struct {
	ID       string
	Name     string
	Citation dnd5e.Citation

	Skills             []dnd5e.Skill
	Proficiencies      []dnd5e.Proficiency
	ProficiencyOptions []dnd5e.ProficiencyOption
	LanguageOptions    []dnd5e.LanguageOption

	Equipment []equipment.Entry
	Gold      int
	Feature   dnd5e.Feature

	// PersonalityTable keys the background's traits, ideals, bonds and flaws
	PersonalityTable string
	RequiresDeity    bool
}

// Info is the summary stored on a character
func (b *Background) Info() dnd5e.BackgroundInfo {
	return dnd5e.BackgroundInfo{ID: b.ID, Name: b.Name, Citation: b.Citation}
}

// Grants returns the skill grants followed by the other fixed proficiencies
func (b *Background) Grants() []dnd5e.Proficiency {
	out := dnd5e.SkillProficiencies(b.Skills...)
	return append(out, b.Proficiencies...)
}

var byID = func() map[string]*Background {
	m := make(map[string]*Background, len(all))
	for _, b := range all {
		m[b.ID] = b
	}
	return m
}()

// All returns every background in book order
func All() []*Background {
	out := make([]*Background, len(all))
	copy(out, all)
	return out
}

// Get looks up a background by ID
func Get(id string) (*Background, error) {
	b, ok := byID[id]
	if !ok {
		return nil, errors.NotFoundf("background %q not found", id)
	}
	return b, nil
}
