// Package dnd5e holds the D&D 5e data model a generated character is built from.
// Types here are plain data; the rules that fill them live in the rulebook
// packages and the generator.
package dnd5e

// Ability is one of the six core abilities
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists the abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Name returns the display name, e.g. "Strength"
func (a Ability) Name() string {
	if n, ok := abilityNames[a]; ok {
		return n
	}
	return string(a)
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// Get returns the score for an ability
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// Set replaces the score for an ability
func (s *AbilityScores) Set(a Ability, v int) {
	switch a {
	case AbilityStrength:
		s.Strength = v
	case AbilityDexterity:
		s.Dexterity = v
	case AbilityConstitution:
		s.Constitution = v
	case AbilityIntelligence:
		s.Intelligence = v
	case AbilityWisdom:
		s.Wisdom = v
	case AbilityCharisma:
		s.Charisma = v
	}
}

// Add increases an ability score, capped at 20
func (s *AbilityScores) Add(a Ability, delta int) {
	v := s.Get(a) + delta
	if v > MaxAbilityScore {
		v = MaxAbilityScore
	}
	s.Set(a, v)
}

// Modifier returns the modifier for an ability
func (s AbilityScores) Modifier(a Ability) int {
	return Modifier(s.Get(a))
}

// MaxAbilityScore is the cap for a player character
const MaxAbilityScore = 20

// Modifier converts a score to its modifier, rounding down: 9 -> -1, 10 -> 0, 15 -> +2
func Modifier(score int) int {
	if score < 10 {
		return (score - 11) / 2
	}
	return (score - 10) / 2
}
