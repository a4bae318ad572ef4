package dnd5e

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Size is a creature size category
type Size string

// Size constants
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// Gender of a generated character
type Gender string

// Gender constants
const (
	GenderFemale    Gender = "female"
	GenderMale      Gender = "male"
	GenderNonbinary Gender = "nonbinary"
)

// Characteristics are the physical details rolled after race
type Characteristics struct {
	Gender       Gender `json:"gender"`
	Age          int    `json:"age"`
	HeightInches int    `json:"height_inches"`
	WeightPounds int    `json:"weight_pounds"`
}

// Ideal is a background ideal with its alignment hint
type Ideal struct {
	Text string   `json:"text"`
	Tag  IdealTag `json:"tag"`
}

// Personality is drawn from the background's tables
type Personality struct {
	Traits []string `json:"traits"`
	Ideal  Ideal    `json:"ideal"`
	Bond   string   `json:"bond"`
	Flaw   string   `json:"flaw"`
}

// Deity is a god a character may worship
type Deity struct {
	Name      string    `json:"name" yaml:"name"`
	Title     string    `json:"title,omitempty" yaml:"title"`
	Alignment Alignment `json:"alignment" yaml:"alignment"`
	Domains   []string  `json:"domains" yaml:"domains"`
	Symbol    string    `json:"symbol,omitempty" yaml:"symbol"`
}

// PantheonRef names the pantheon a deity was drawn from
type PantheonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Faith is the deity stage result
type Faith struct {
	Pantheon PantheonRef `json:"pantheon"`
	Deity    Deity       `json:"deity"`
}

// Item is a piece of starting equipment
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Feature is a racial trait, class feature or background feature
type Feature struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Source      ChoiceSource `json:"source"`
	Citation    Citation     `json:"citation"`
}

// RaceInfo records the chosen race and subrace
type RaceInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SubraceID   string    `json:"subrace_id,omitempty"`
	SubraceName string    `json:"subrace_name,omitempty"`
	Size        Size      `json:"size"`
	Speed       int       `json:"speed"`
	Darkvision  int       `json:"darkvision,omitempty"`
	Resistances []string  `json:"resistances,omitempty"`
	Citations   Citations `json:"citations"`
}

// DisplayName is "High Elf" when a subrace exists, else "Elf"
func (r RaceInfo) DisplayName() string {
	if r.SubraceName != "" {
		return r.SubraceName
	}
	return r.Name
}

// BackgroundInfo records the chosen background
type BackgroundInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Citation Citation `json:"citation"`
}

// ClassInfo records the chosen class
type ClassInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	HitDie   int      `json:"hit_die"`
	Citation Citation `json:"citation"`
}

// Character is a fully generated character. The generator builds it in one
// pass; nothing mutates it afterwards.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Seed      int64     `json:"seed,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Race            *RaceInfo        `json:"race,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
	AbilityScores   *AbilityScores   `json:"ability_scores,omitempty"`
	AbilityRolls    []int            `json:"ability_rolls,omitempty"`
	Background      *BackgroundInfo  `json:"background,omitempty"`
	Class           *ClassInfo       `json:"class,omitempty"`
	Personality     *Personality     `json:"personality,omitempty"`
	Faith           *Faith           `json:"faith,omitempty"`
	Alignment       Alignment        `json:"alignment,omitempty"`

	Languages     []Language    `json:"languages"`
	Proficiencies []Proficiency `json:"proficiencies"`
	Equipment     []Item        `json:"equipment"`
	Gold          int           `json:"gold"`
	Features      []Feature     `json:"features"`

	HitPoints        int `json:"hit_points"`
	ProficiencyBonus int `json:"proficiency_bonus"`
}

// HasProficiency reports whether a proficiency with the same key is held
func (c *Character) HasProficiency(p Proficiency) bool {
	key := p.Key()
	for _, have := range c.Proficiencies {
		if have.Key() == key {
			return true
		}
	}
	return false
}

// HasLanguage reports whether the language is known
func (c *Character) HasLanguage(l Language) bool {
	for _, have := range c.Languages {
		if have == l {
			return true
		}
	}
	return false
}

// ProficienciesOf returns held proficiencies of one kind, in grant order
func (c *Character) ProficienciesOf(kind ProficiencyKind) []Proficiency {
	var out []Proficiency
	for _, p := range c.Proficiencies {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Modifier is a shortcut for the ability modifier, zero before abilities are rolled
func (c *Character) Modifier(a Ability) int {
	if c.AbilityScores == nil {
		return 0
	}
	return c.AbilityScores.Modifier(a)
}

// Citations gathers every reference the character draws on
func (c *Character) Citations() Citations {
	var all Citations
	if c.Race != nil {
		all = append(all, c.Race.Citations...)
	}
	if c.Background != nil {
		all = append(all, c.Background.Citation)
	}
	if c.Class != nil {
		all = append(all, c.Class.Citation)
	}
	for _, f := range c.Features {
		all = append(all, f.Citation)
	}
	return all.Normalize()
}

var _ core.Entity = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return "character"
}
