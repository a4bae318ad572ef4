package proficiencies

import (
	"fmt"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// ChooseSkills offers count skills from a list; no skills means any skill
func ChooseSkills(source dnd5e.ChoiceSource, count int, from ...dnd5e.Skill) dnd5e.ProficiencyOption {
	desc := fmt.Sprintf("Choose %d skills", count)
	if count == 1 {
		desc = "Choose a skill"
	}
	return dnd5e.ProficiencyOption{
		Description: desc,
		Kind:        dnd5e.ProficiencyKindSkill,
		Count:       count,
		From:        dnd5e.SkillProficiencies(from...),
		Source:      source,
	}
}

// ChooseTools offers count tools from a named list
func ChooseTools(source dnd5e.ChoiceSource, desc string, count int, from ...string) dnd5e.ProficiencyOption {
	return dnd5e.ProficiencyOption{
		Description: desc,
		Kind:        dnd5e.ProficiencyKindTool,
		Count:       count,
		From:        Tools(from...),
		Source:      source,
	}
}

// AnyArtisansTools offers count artisan's tools
func AnyArtisansTools(source dnd5e.ChoiceSource, count int) dnd5e.ProficiencyOption {
	return ChooseTools(source, "Artisan's tools", count, ArtisansTools...)
}

// AnyGamingSet offers count gaming sets
func AnyGamingSet(source dnd5e.ChoiceSource, count int) dnd5e.ProficiencyOption {
	return ChooseTools(source, "Gaming set", count, GamingSets...)
}

// AnyMusicalInstrument offers count musical instruments
func AnyMusicalInstrument(source dnd5e.ChoiceSource, count int) dnd5e.ProficiencyOption {
	return ChooseTools(source, "Musical instrument", count, MusicalInstruments...)
}
