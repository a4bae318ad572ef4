package generator

import "github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"

const (
	// Ability score methods
	MethodStandard      = "4d6_drop_lowest"
	MethodClassic       = "3d6"
	MethodStandardArray = "standard_array"

	// EventPrefix is prepended to the stage name of every published event
	EventPrefix = "chargen.stage."

	// Event context keys
	ContextKeyStage   = "stage"
	ContextKeySummary = "summary"

	// DeityChance is the percent chance a character without a required
	// deity still worships one
	DeityChance = 75

	startingLevel    = 1
	proficiencyBonus = 2
)

// Methods lists the supported ability score methods
var Methods = []string{MethodStandard, MethodClassic, MethodStandardArray}

// StandardArray is shuffled and assigned in ability order
var StandardArray = []int{15, 14, 13, 12, 10, 8}

// Stage names, in pipeline order
const (
	StageRace            = "race"
	StageCharacteristics = "characteristics"
	StageAbilities       = "abilities"
	StageBackground      = "background"
	StageClass           = "class"
	StagePersonality     = "personality"
	StageLanguages       = "languages"
	StageDeity           = "deity"
	StageAlignment       = "alignment"
	StageProficiencies   = "proficiencies"
	StageEquipment       = "equipment"
	StageFinalize        = "finalize"
)

// Stages lists every stage in the order it runs
var Stages = []string{
	StageRace,
	StageCharacteristics,
	StageAbilities,
	StageBackground,
	StageClass,
	StagePersonality,
	StageLanguages,
	StageDeity,
	StageAlignment,
	StageProficiencies,
	StageEquipment,
	StageFinalize,
}

// GenerateInput pins parts of the character. Empty fields are drawn at
// random.
type GenerateInput struct {
	RaceID       string
	SubraceID    string
	BackgroundID string
	ClassID      string
	PantheonID   string
	Name         string
	Gender       dnd5e.Gender
	// Level must be 0 or 1
	Level         int
	AbilityMethod string
	// Seed makes the draw reproducible. Zero uses the configured roller.
	Seed int64
}

// GenerateOutput holds the finished character
type GenerateOutput struct {
	Character *dnd5e.Character
}
