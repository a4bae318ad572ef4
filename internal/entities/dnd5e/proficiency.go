package dnd5e

import "strings"

// ProficiencyKind groups proficiencies that can replace one another
type ProficiencyKind string

// ProficiencyKind constants
const (
	ProficiencyKindSkill       ProficiencyKind = "skill"
	ProficiencyKindTool        ProficiencyKind = "tool"
	ProficiencyKindWeapon      ProficiencyKind = "weapon"
	ProficiencyKindArmor       ProficiencyKind = "armor"
	ProficiencyKindVehicle     ProficiencyKind = "vehicle"
	ProficiencyKindSavingThrow ProficiencyKind = "saving_throw"
)

// Proficiency is a concrete grant, e.g. {skill, stealth} or {tool, Thieves' Tools}
type Proficiency struct {
	Kind ProficiencyKind `json:"kind"`
	Name string          `json:"name"`
}

// Key identifies the proficiency for de-duplication
func (p Proficiency) Key() string {
	return string(p.Kind) + ":" + strings.ToLower(p.Name)
}

// String is the display form
func (p Proficiency) String() string {
	switch p.Kind {
	case ProficiencyKindSkill:
		return skillDisplay(Skill(p.Name))
	case ProficiencyKindSavingThrow:
		return Ability(p.Name).Name() + " saves"
	default:
		return p.Name
	}
}

// Skill returns the skill for a skill proficiency
func (p Proficiency) Skill() (Skill, bool) {
	if p.Kind != ProficiencyKindSkill {
		return "", false
	}
	return Skill(p.Name), true
}

// SkillProficiency grants a skill
func SkillProficiency(s Skill) Proficiency {
	return Proficiency{Kind: ProficiencyKindSkill, Name: string(s)}
}

// SavingThrowProficiency grants a saving throw
func SavingThrowProficiency(a Ability) Proficiency {
	return Proficiency{Kind: ProficiencyKindSavingThrow, Name: string(a)}
}

// ToolProficiency grants a tool, kit or instrument
func ToolProficiency(name string) Proficiency {
	return Proficiency{Kind: ProficiencyKindTool, Name: name}
}

// WeaponProficiency grants a weapon or weapon category
func WeaponProficiency(name string) Proficiency {
	return Proficiency{Kind: ProficiencyKindWeapon, Name: name}
}

// ArmorProficiency grants an armor category or shields
func ArmorProficiency(name string) Proficiency {
	return Proficiency{Kind: ProficiencyKindArmor, Name: name}
}

// VehicleProficiency grants a vehicle category
func VehicleProficiency(name string) Proficiency {
	return Proficiency{Kind: ProficiencyKindVehicle, Name: name}
}

// SkillProficiencies converts skills to grants
func SkillProficiencies(skills ...Skill) []Proficiency {
	out := make([]Proficiency, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillProficiency(s))
	}
	return out
}

func skillDisplay(s Skill) string {
	words := strings.Split(string(s), "-")
	for i, w := range words {
		if w == "of" {
			continue
		}
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ChoiceSource records which module contributed a deferred choice
type ChoiceSource string

// ChoiceSource constants
const (
	ChoiceSourceRace       ChoiceSource = "race"
	ChoiceSourceBackground ChoiceSource = "background"
	ChoiceSourceClass      ChoiceSource = "class"
)

// ProficiencyOption is a deferred grant: choose Count proficiencies of Kind
// from From. An empty From means any proficiency of that kind.
type ProficiencyOption struct {
	Description string          `json:"description"`
	Kind        ProficiencyKind `json:"kind"`
	Count       int             `json:"count"`
	From        []Proficiency   `json:"from,omitempty"`
	Source      ChoiceSource    `json:"source"`
}
