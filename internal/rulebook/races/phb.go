package races

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

// Race IDs
const (
	Dwarf      = "dwarf"
	Elf        = "elf"
	Halfling   = "halfling"
	Human      = "human"
	Dragonborn = "dragonborn"
	Gnome      = "gnome"
	HalfElf    = "half-elf"
	HalfOrc    = "half-orc"
	Tiefling   = "tiefling"
)

func phb(page int) dnd5e.Citation {
	return dnd5e.Citation{Book: dnd5e.BookPHB, Page: page}
}

func trait(name string, page int, desc string) dnd5e.Feature {
	return dnd5e.Feature{Name: name, Description: desc, Source: dnd5e.ChoiceSourceRace, Citation: phb(page)}
}

func inc(a dnd5e.Ability, amount int) AbilityIncrease {
	return AbilityIncrease{Ability: a, Amount: amount}
}

func dice(count, size int) dnd5e.Dice {
	return dnd5e.Dice{Count: count, Size: size}
}

func anyLanguage(count int) dnd5e.LanguageOption {
	return dnd5e.LanguageOption{Count: count, Source: dnd5e.ChoiceSourceRace}
}

var all = []*Race{
	{
		ID:         Dwarf,
		Name:       "Dwarf",
		Citation:   phb(18),
		Size:       dnd5e.SizeMedium,
		Speed:      25,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityConstitution, 2),
		},
		Resistances: []string{"poison"},
		Features: []dnd5e.Feature{
			trait("Darkvision", 20, "See in dim light within 60 feet as if it were bright light."),
			trait("Dwarven Resilience", 20, "Advantage on saves against poison and resistance to poison damage."),
			trait("Dwarven Combat Training", 20, "Proficient with the battleaxe, handaxe, light hammer and warhammer."),
			trait("Stonecunning", 20, "Double proficiency on History checks about the origin of stonework."),
		},
		Languages:     []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageDwarvish},
		Proficiencies: proficiencies.Weapons("Battleaxe", "Handaxe", "Light Hammer", "Warhammer"),
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.ChooseTools(dnd5e.ChoiceSourceRace, "Dwarven tool proficiency", 1,
				"Smith's Tools", "Brewer's Supplies", "Mason's Tools"),
		},
		Age:        AgeRange{Min: 50, Max: 350},
		Physique:   Physique{BaseHeight: 44, HeightMod: dice(2, 4), BaseWeight: 115, WeightMod: dice(2, 6)},
		Pantheons:  []string{"dwarven"},
		NameTables: []string{"dwarf"},
		Subraces: []*Subrace{
			{
				ID:       "hill-dwarf",
				Name:     "Hill Dwarf",
				Citation: phb(20),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityWisdom, 1),
				},
				Features: []dnd5e.Feature{
					trait("Dwarven Toughness", 20, "Hit point maximum increases by 1 per level."),
				},
				HitPointBonus: 1,
			},
			{
				ID:       "mountain-dwarf",
				Name:     "Mountain Dwarf",
				Citation: phb(20),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityStrength, 2),
				},
				Features: []dnd5e.Feature{
					trait("Dwarven Armor Training", 20, "Proficient with light and medium armor."),
				},
				Proficiencies: proficiencies.Armor(proficiencies.LightArmor, proficiencies.MediumArmor),
				Physique:      &Physique{BaseHeight: 48, HeightMod: dice(2, 4), BaseWeight: 130, WeightMod: dice(2, 6)},
			},
		},
	},
	{
		ID:         Elf,
		Name:       "Elf",
		Citation:   phb(21),
		Size:       dnd5e.SizeMedium,
		Speed:      30,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityDexterity, 2),
		},
		Features: []dnd5e.Feature{
			trait("Darkvision", 23, "See in dim light within 60 feet as if it were bright light."),
			trait("Keen Senses", 23, "Proficiency in the Perception skill."),
			trait("Fey Ancestry", 23, "Advantage against being charmed; magic can't put you to sleep."),
			trait("Trance", 23, "Four hours of meditation replace a long rest's sleep."),
		},
		Languages:     []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageElvish},
		Proficiencies: dnd5e.SkillProficiencies(dnd5e.SkillPerception),
		Age:           AgeRange{Min: 100, Max: 750},
		Physique:      Physique{BaseHeight: 54, HeightMod: dice(2, 10), BaseWeight: 90, WeightMod: dice(1, 4)},
		Pantheons:     []string{"elven"},
		NameTables:    []string{"elf"},
		Subraces: []*Subrace{
			{
				ID:       "high-elf",
				Name:     "High Elf",
				Citation: phb(23),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityIntelligence, 1),
				},
				Features: []dnd5e.Feature{
					trait("Elf Weapon Training", 23, "Proficient with the longsword, shortsword, shortbow and longbow."),
					trait("Cantrip", 24, "One wizard cantrip, cast with Intelligence."),
					trait("Extra Language", 24, "One additional language of your choice."),
				},
				LanguageOptions: []dnd5e.LanguageOption{anyLanguage(1)},
				Proficiencies:   proficiencies.Weapons("Longsword", "Shortsword", "Shortbow", "Longbow"),
			},
			{
				ID:       "wood-elf",
				Name:     "Wood Elf",
				Citation: phb(24),
				Speed:    35,
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityWisdom, 1),
				},
				Features: []dnd5e.Feature{
					trait("Elf Weapon Training", 24, "Proficient with the longsword, shortsword, shortbow and longbow."),
					trait("Fleet of Foot", 24, "Base walking speed of 35 feet."),
					trait("Mask of the Wild", 24, "Can hide when only lightly obscured by nature."),
				},
				Proficiencies: proficiencies.Weapons("Longsword", "Shortsword", "Shortbow", "Longbow"),
				Physique:      &Physique{BaseHeight: 54, HeightMod: dice(2, 10), BaseWeight: 100, WeightMod: dice(1, 4)},
			},
			{
				ID:         "drow",
				Name:       "Dark Elf (Drow)",
				Citation:   phb(24),
				Darkvision: 120,
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityCharisma, 1),
				},
				Features: []dnd5e.Feature{
					trait("Superior Darkvision", 24, "Darkvision reaches 120 feet."),
					trait("Sunlight Sensitivity", 24, "Disadvantage on attacks and sight-based Perception in direct sunlight."),
					trait("Drow Magic", 24, "Know the dancing lights cantrip; more spells at higher levels."),
					trait("Drow Weapon Training", 24, "Proficient with rapiers, shortswords and hand crossbows."),
				},
				Proficiencies: proficiencies.Weapons("Rapier", "Shortsword", "Hand Crossbow"),
				Physique:      &Physique{BaseHeight: 53, HeightMod: dice(2, 6), BaseWeight: 75, WeightMod: dice(1, 6)},
			},
		},
	},
	{
		ID:       Halfling,
		Name:     "Halfling",
		Citation: phb(26),
		Size:     dnd5e.SizeSmall,
		Speed:    25,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityDexterity, 2),
		},
		Features: []dnd5e.Feature{
			trait("Lucky", 28, "Reroll a natural 1 on an attack, ability check or save."),
			trait("Brave", 28, "Advantage on saves against being frightened."),
			trait("Halfling Nimbleness", 28, "Move through the space of any larger creature."),
		},
		Languages:  []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageHalfling},
		Age:        AgeRange{Min: 20, Max: 150},
		Physique:   Physique{BaseHeight: 31, HeightMod: dice(2, 4), BaseWeight: 35},
		Pantheons:  []string{"halfling"},
		NameTables: []string{"halfling"},
		Subraces: []*Subrace{
			{
				ID:       "lightfoot",
				Name:     "Lightfoot Halfling",
				Citation: phb(28),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityCharisma, 1),
				},
				Features: []dnd5e.Feature{
					trait("Naturally Stealthy", 28, "Can hide behind a creature at least one size larger."),
				},
			},
			{
				ID:       "stout",
				Name:     "Stout Halfling",
				Citation: phb(28),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityConstitution, 1),
				},
				Resistances: []string{"poison"},
				Features: []dnd5e.Feature{
					trait("Stout Resilience", 28, "Advantage on saves against poison and resistance to poison damage."),
				},
			},
		},
	},
	{
		ID:       Human,
		Name:     "Human",
		Citation: phb(29),
		Size:     dnd5e.SizeMedium,
		Speed:    30,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityStrength, 1),
			inc(dnd5e.AbilityDexterity, 1),
			inc(dnd5e.AbilityConstitution, 1),
			inc(dnd5e.AbilityIntelligence, 1),
			inc(dnd5e.AbilityWisdom, 1),
			inc(dnd5e.AbilityCharisma, 1),
		},
		Languages:       []dnd5e.Language{dnd5e.LanguageCommon},
		LanguageOptions: []dnd5e.LanguageOption{anyLanguage(1)},
		Age:             AgeRange{Min: 18, Max: 80},
		Physique:        Physique{BaseHeight: 56, HeightMod: dice(2, 10), BaseWeight: 110, WeightMod: dice(2, 4)},
		Pantheons:       []string{"forgotten-realms", "greyhawk", "greek", "norse"},
		NameTables:      []string{"human"},
	},
	{
		ID:       Dragonborn,
		Name:     "Dragonborn",
		Citation: phb(32),
		Size:     dnd5e.SizeMedium,
		Speed:    30,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityStrength, 2),
			inc(dnd5e.AbilityCharisma, 1),
		},
		Features: []dnd5e.Feature{
			trait("Draconic Ancestry", 34, "Dragon ancestry sets breath weapon and damage resistance."),
			trait("Breath Weapon", 34, "Exhale destructive energy once per short rest."),
		},
		Languages:  []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageDraconic},
		Age:        AgeRange{Min: 15, Max: 80},
		Physique:   Physique{BaseHeight: 66, HeightMod: dice(2, 8), BaseWeight: 175, WeightMod: dice(2, 6)},
		Pantheons:  []string{"draconic"},
		NameTables: []string{"dragonborn"},
		Subraces: []*Subrace{
			ancestry("black", "acid", "5 by 30 ft. line, Dex save"),
			ancestry("blue", "lightning", "5 by 30 ft. line, Dex save"),
			ancestry("brass", "fire", "5 by 30 ft. line, Dex save"),
			ancestry("bronze", "lightning", "5 by 30 ft. line, Dex save"),
			ancestry("copper", "acid", "5 by 30 ft. line, Dex save"),
			ancestry("gold", "fire", "15 ft. cone, Dex save"),
			ancestry("green", "poison", "15 ft. cone, Con save"),
			ancestry("red", "fire", "15 ft. cone, Dex save"),
			ancestry("silver", "cold", "15 ft. cone, Con save"),
			ancestry("white", "cold", "15 ft. cone, Con save"),
		},
	},
	{
		ID:         Gnome,
		Name:       "Gnome",
		Citation:   phb(35),
		Size:       dnd5e.SizeSmall,
		Speed:      25,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityIntelligence, 2),
		},
		Features: []dnd5e.Feature{
			trait("Darkvision", 37, "See in dim light within 60 feet as if it were bright light."),
			trait("Gnome Cunning", 37, "Advantage on Int, Wis and Cha saves against magic."),
		},
		Languages:  []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageGnomish},
		Age:        AgeRange{Min: 40, Max: 425},
		Physique:   Physique{BaseHeight: 35, HeightMod: dice(2, 4), BaseWeight: 35},
		Pantheons:  []string{"gnomish"},
		NameTables: []string{"gnome"},
		Subraces: []*Subrace{
			{
				ID:       "forest-gnome",
				Name:     "Forest Gnome",
				Citation: phb(37),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityDexterity, 1),
				},
				Features: []dnd5e.Feature{
					trait("Natural Illusionist", 37, "Know the minor illusion cantrip."),
					trait("Speak with Small Beasts", 37, "Communicate simple ideas with Small or smaller beasts."),
				},
			},
			{
				ID:       "rock-gnome",
				Name:     "Rock Gnome",
				Citation: phb(37),
				AbilityIncreases: []AbilityIncrease{
					inc(dnd5e.AbilityConstitution, 1),
				},
				Features: []dnd5e.Feature{
					trait("Artificer's Lore", 37, "Double proficiency on History checks about magic items and technology."),
					trait("Tinker", 37, "Build tiny clockwork devices with tinker's tools."),
				},
				Proficiencies: proficiencies.Tools("Tinker's Tools"),
			},
		},
	},
	{
		ID:         HalfElf,
		Name:       "Half-Elf",
		Citation:   phb(38),
		Size:       dnd5e.SizeMedium,
		Speed:      30,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityCharisma, 2),
		},
		ChooseIncrease: ChooseIncrease{Count: 2, Amount: 1},
		Features: []dnd5e.Feature{
			trait("Darkvision", 39, "See in dim light within 60 feet as if it were bright light."),
			trait("Fey Ancestry", 39, "Advantage against being charmed; magic can't put you to sleep."),
			trait("Skill Versatility", 39, "Proficiency in two skills of your choice."),
		},
		Languages:       []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageElvish},
		LanguageOptions: []dnd5e.LanguageOption{anyLanguage(1)},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.ChooseSkills(dnd5e.ChoiceSourceRace, 2),
		},
		Age:        AgeRange{Min: 20, Max: 180},
		Physique:   Physique{BaseHeight: 57, HeightMod: dice(2, 8), BaseWeight: 110, WeightMod: dice(2, 4)},
		Pantheons:  []string{"elven", "forgotten-realms"},
		NameTables: []string{"human", "elf"},
	},
	{
		ID:         HalfOrc,
		Name:       "Half-Orc",
		Citation:   phb(40),
		Size:       dnd5e.SizeMedium,
		Speed:      30,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityStrength, 2),
			inc(dnd5e.AbilityConstitution, 1),
		},
		Features: []dnd5e.Feature{
			trait("Darkvision", 41, "See in dim light within 60 feet as if it were bright light."),
			trait("Menacing", 41, "Proficiency in the Intimidation skill."),
			trait("Relentless Endurance", 41, "Drop to 1 hit point instead of 0 once per long rest."),
			trait("Savage Attacks", 41, "Roll one extra weapon damage die on a melee critical hit."),
		},
		Languages:     []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageOrc},
		Proficiencies: dnd5e.SkillProficiencies(dnd5e.SkillIntimidation),
		Age:           AgeRange{Min: 14, Max: 75},
		Physique:      Physique{BaseHeight: 58, HeightMod: dice(2, 10), BaseWeight: 140, WeightMod: dice(2, 6)},
		Pantheons:     []string{"orc", "forgotten-realms"},
		NameTables:    []string{"half-orc"},
	},
	{
		ID:         Tiefling,
		Name:       "Tiefling",
		Citation:   phb(42),
		Size:       dnd5e.SizeMedium,
		Speed:      30,
		Darkvision: 60,
		AbilityIncreases: []AbilityIncrease{
			inc(dnd5e.AbilityIntelligence, 1),
			inc(dnd5e.AbilityCharisma, 2),
		},
		Resistances: []string{"fire"},
		Features: []dnd5e.Feature{
			trait("Darkvision", 43, "See in dim light within 60 feet as if it were bright light."),
			trait("Hellish Resistance", 43, "Resistance to fire damage."),
			trait("Infernal Legacy", 43, "Know the thaumaturgy cantrip; more spells at higher levels."),
		},
		Languages:  []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageInfernal},
		Age:        AgeRange{Min: 18, Max: 90},
		Physique:   Physique{BaseHeight: 57, HeightMod: dice(2, 8), BaseWeight: 110, WeightMod: dice(2, 4)},
		Pantheons:  []string{"forgotten-realms", "greyhawk"},
		NameTables: []string{"tiefling"},
	},
}

// ancestry builds a dragonborn draconic ancestry (PHB p.34)
func ancestry(color, damage, breath string) *Subrace {
	title := cases.Title(language.English).String(color)
	name := title + " Dragon Ancestry"
	return &Subrace{
		ID:          color + "-dragonborn",
		Name:        title + " Dragonborn",
		Citation:    phb(34),
		Resistances: []string{damage},
		Features: []dnd5e.Feature{
			trait(name, 34, "Breath weapon deals "+damage+" damage ("+breath+") and grants "+damage+" resistance."),
		},
	}
}
