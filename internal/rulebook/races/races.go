// Package races is the closed registry of playable races and subraces.
package races

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// AbilityIncrease is a fixed racial bonus
type AbilityIncrease struct {
	Ability dnd5e.Ability
	Amount  int
}

// ChooseIncrease grants +Amount to Count distinct abilities the race does
// not already increase
type ChooseIncrease struct {
	Count  int
	Amount int
}

// AgeRange bounds the adult age of a race
type AgeRange struct {
	Min int
	Max int
}

// Physique is a row of the height and weight table (PHB p.121).
// Height = BaseHeight + HeightMod; weight = BaseWeight + HeightMod x WeightMod.
// A zero WeightMod multiplies by one.
type Physique struct {
	BaseHeight int
	HeightMod  dnd5e.Dice
	BaseWeight int
	WeightMod  dnd5e.Dice
}

// Race is a playable race
type Race struct {
	ID       string
	Name     string
	Citation dnd5e.Citation

	Size       dnd5e.Size
	Speed      int
	Darkvision int

	AbilityIncreases []AbilityIncrease
	ChooseIncrease   ChooseIncrease
	Resistances      []string
	Features         []dnd5e.Feature

	Languages          []dnd5e.Language
	LanguageOptions    []dnd5e.LanguageOption
	Proficiencies      []dnd5e.Proficiency
	ProficiencyOptions []dnd5e.ProficiencyOption

	Age      AgeRange
	Physique Physique

	// Pantheons the race favours when a deity is drawn
	Pantheons []string
	// NameTables are merged when drawing a name
	NameTables []string

	Subraces []*Subrace
}

// Subrace refines a race. Zero Speed and Darkvision inherit from the race;
// a nil Physique uses the race's row.
type Subrace struct {
	ID       string
	Name     string
	Citation dnd5e.Citation

	Speed      int
	Darkvision int

	AbilityIncreases   []AbilityIncrease
	Resistances        []string
	Features           []dnd5e.Feature
	LanguageOptions    []dnd5e.LanguageOption
	Proficiencies      []dnd5e.Proficiency
	ProficiencyOptions []dnd5e.ProficiencyOption

	Physique      *Physique
	HitPointBonus int
}

// Traits is a race flattened with its subrace
type Traits struct {
	Info dnd5e.RaceInfo

	AbilityIncreases   []AbilityIncrease
	ChooseIncrease     ChooseIncrease
	Features           []dnd5e.Feature
	Languages          []dnd5e.Language
	LanguageOptions    []dnd5e.LanguageOption
	Proficiencies      []dnd5e.Proficiency
	ProficiencyOptions []dnd5e.ProficiencyOption

	Age           AgeRange
	Physique      Physique
	HitPointBonus int
	Pantheons     []string
	NameTables    []string
}

// Subrace finds a subrace of r
func (r *Race) Subrace(id string) (*Subrace, error) {
	for _, sub := range r.Subraces {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, errors.NotFoundf("subrace %q not found for race %s", id, r.ID)
}

// With flattens the race and an optional subrace into one set of traits
func (r *Race) With(sub *Subrace) Traits {
	t := Traits{
		Info: dnd5e.RaceInfo{
			ID:          r.ID,
			Name:        r.Name,
			Size:        r.Size,
			Speed:       r.Speed,
			Darkvision:  r.Darkvision,
			Resistances: append([]string(nil), r.Resistances...),
			Citations:   dnd5e.Citations{r.Citation},
		},
		AbilityIncreases:   append([]AbilityIncrease(nil), r.AbilityIncreases...),
		ChooseIncrease:     r.ChooseIncrease,
		Features:           append([]dnd5e.Feature(nil), r.Features...),
		Languages:          append([]dnd5e.Language(nil), r.Languages...),
		LanguageOptions:    append([]dnd5e.LanguageOption(nil), r.LanguageOptions...),
		Proficiencies:      append([]dnd5e.Proficiency(nil), r.Proficiencies...),
		ProficiencyOptions: append([]dnd5e.ProficiencyOption(nil), r.ProficiencyOptions...),
		Age:                r.Age,
		Physique:           r.Physique,
		Pantheons:          r.Pantheons,
		NameTables:         r.NameTables,
	}
	if sub == nil {
		return t
	}

	t.Info.SubraceID = sub.ID
	t.Info.SubraceName = sub.Name
	t.Info.Citations = append(t.Info.Citations, sub.Citation)
	if sub.Speed > 0 {
		t.Info.Speed = sub.Speed
	}
	if sub.Darkvision > 0 {
		t.Info.Darkvision = sub.Darkvision
	}
	t.Info.Resistances = append(t.Info.Resistances, sub.Resistances...)
	t.AbilityIncreases = append(t.AbilityIncreases, sub.AbilityIncreases...)
	t.Features = append(t.Features, sub.Features...)
	t.LanguageOptions = append(t.LanguageOptions, sub.LanguageOptions...)
	t.Proficiencies = append(t.Proficiencies, sub.Proficiencies...)
	t.ProficiencyOptions = append(t.ProficiencyOptions, sub.ProficiencyOptions...)
	if sub.Physique != nil {
		t.Physique = *sub.Physique
	}
	t.HitPointBonus = sub.HitPointBonus
	return t
}

var byID = func() map[string]*Race {
	m := make(map[string]*Race, len(all))
	for _, r := range all {
		m[r.ID] = r
	}
	return m
}()

// All returns every race in book order
func All() []*Race {
	out := make([]*Race, len(all))
	copy(out, all)
	return out
}

// Get looks up a race by ID
func Get(id string) (*Race, error) {
	r, ok := byID[id]
	if !ok {
		return nil, errors.NotFoundf("race %q not found", id)
	}
	return r, nil
}
