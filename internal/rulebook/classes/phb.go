package classes

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	eq "github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

// Class IDs
const (
	Barbarian = "barbarian"
	Bard      = "bard"
	Cleric    = "cleric"
	Druid     = "druid"
	Fighter   = "fighter"
	Monk      = "monk"
	Paladin   = "paladin"
	Ranger    = "ranger"
	Rogue     = "rogue"
	Sorcerer  = "sorcerer"
	Warlock   = "warlock"
	Wizard    = "wizard"
)

const src = dnd5e.ChoiceSourceClass

func phb(page int) dnd5e.Citation {
	return dnd5e.Citation{Book: dnd5e.BookPHB, Page: page}
}

func feature(name string, page int, desc string) dnd5e.Feature {
	return dnd5e.Feature{Name: name, Description: desc, Source: src, Citation: phb(page)}
}

func skills(count int, from ...dnd5e.Skill) []dnd5e.ProficiencyOption {
	return []dnd5e.ProficiencyOption{proficiencies.ChooseSkills(src, count, from...)}
}

func grants(groups ...[]dnd5e.Proficiency) []dnd5e.Proficiency {
	var out []dnd5e.Proficiency
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	allArmor      = proficiencies.Armor(proficiencies.LightArmor, proficiencies.MediumArmor, proficiencies.HeavyArmor, proficiencies.Shields)
	lightMedium   = proficiencies.Armor(proficiencies.LightArmor, proficiencies.MediumArmor, proficiencies.Shields)
	simpleMartial = proficiencies.Weapons(proficiencies.SimpleWeapons, proficiencies.MartialWeapons)
	casterWeapons = proficiencies.Weapons("Dagger", "Dart", "Sling", "Quarterstaff", "Light Crossbow")
	finesse       = proficiencies.Weapons(proficiencies.SimpleWeapons, "Hand Crossbow", "Longsword", "Rapier", "Shortsword")
)

var all = []*Class{
	{
		ID:               Barbarian,
		Name:             "Barbarian",
		Citation:         phb(46),
		HitDie:           12,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityStrength},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		Proficiencies:    grants(proficiencies.Armor(proficiencies.LightArmor, proficiencies.MediumArmor, proficiencies.Shields), simpleMartial),
		ProficiencyOptions: skills(2,
			dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillIntimidation,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillSurvival),
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Greataxe")}, eq.Bundle{eq.Any(eq.CatalogMartialMeleeWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.Item("Handaxe", 2)}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.Fixed(eq.Packed(eq.PackExplorer), eq.Item("Javelin", 4)),
		},
		Features: []dnd5e.Feature{
			feature("Rage", 48, "Bonus damage and resistance to bludgeoning, piercing and slashing while raging."),
			feature("Unarmored Defense", 48, "AC equals 10 + Dex modifier + Con modifier without armor."),
		},
	},
	{
		ID:               Bard,
		Name:             "Bard",
		Citation:         phb(51),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityCharisma},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityDexterity, dnd5e.AbilityCharisma},
		Proficiencies:    grants(proficiencies.Armor(proficiencies.LightArmor), finesse),
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyMusicalInstrument(src, 3),
			proficiencies.ChooseSkills(src, 3),
		},
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Rapier")}, eq.Bundle{eq.One("Longsword")}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackDiplomat)}, eq.Bundle{eq.Packed(eq.PackEntertainer)}),
			eq.OneOf(eq.Bundle{eq.One("Lute")}, eq.Bundle{eq.AnyProficient(eq.CatalogMusicalInstrument, 1)}),
			eq.Fixed(eq.One("Leather Armor"), eq.One("Dagger")),
		},
		Features: []dnd5e.Feature{
			feature("Spellcasting", 52, "Cast bard spells using Charisma."),
			feature("Bardic Inspiration", 53, "Grant an ally a d6 to add to one roll."),
		},
	},
	{
		ID:               Cleric,
		Name:             "Cleric",
		Citation:         phb(56),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityWisdom},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma},
		Proficiencies:    grants(lightMedium, proficiencies.Weapons(proficiencies.SimpleWeapons)),
		ProficiencyOptions: skills(2,
			dnd5e.SkillHistory, dnd5e.SkillInsight, dnd5e.SkillMedicine,
			dnd5e.SkillPersuasion, dnd5e.SkillReligion),
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Mace")}, eq.Bundle{eq.One("Warhammer")}),
			eq.OneOf(eq.Bundle{eq.One("Scale Mail")}, eq.Bundle{eq.One("Leather Armor")}),
			eq.OneOf(eq.Bundle{eq.One("Light Crossbow"), eq.Item("Crossbow Bolt", 20)}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackPriest)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.One("Shield"), eq.One("Holy Symbol")),
		},
		Features: []dnd5e.Feature{
			feature("Spellcasting", 58, "Cast cleric spells using Wisdom."),
			feature("Divine Domain", 58, "A domain tied to your deity grants spells and features."),
		},
		RequiresDeity: true,
	},
	{
		ID:               Druid,
		Name:             "Druid",
		Citation:         phb(64),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityWisdom},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
		Proficiencies: grants(
			lightMedium,
			proficiencies.Weapons("Club", "Dagger", "Dart", "Javelin", "Mace", "Quarterstaff",
				"Scimitar", "Sickle", "Sling", "Spear"),
			proficiencies.Tools(proficiencies.HerbalismKit),
		),
		ProficiencyOptions: skills(2,
			dnd5e.SkillArcana, dnd5e.SkillAnimalHandling, dnd5e.SkillInsight, dnd5e.SkillMedicine,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillReligion, dnd5e.SkillSurvival),
		Languages: []dnd5e.Language{dnd5e.LanguageDruidic},
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Wooden Shield")}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.One("Scimitar")}, eq.Bundle{eq.Any(eq.CatalogSimpleMeleeWeapon, 1)}),
			eq.Fixed(eq.One("Leather Armor"), eq.Packed(eq.PackExplorer), eq.One("Druidic Focus")),
		},
		Features: []dnd5e.Feature{
			feature("Druidic", 66, "You know Druidic, the secret language of druids."),
			feature("Spellcasting", 66, "Cast druid spells using Wisdom."),
		},
	},
	{
		ID:               Fighter,
		Name:             "Fighter",
		Citation:         phb(70),
		HitDie:           10,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity},
		EitherPrimary:    true,
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		Proficiencies:    grants(allArmor, simpleMartial),
		ProficiencyOptions: skills(2,
			dnd5e.SkillAcrobatics, dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillHistory,
			dnd5e.SkillInsight, dnd5e.SkillIntimidation, dnd5e.SkillPerception, dnd5e.SkillSurvival),
		Equipment: []eq.Choice{
			eq.OneOf(
				eq.Bundle{eq.One("Chain Mail")},
				eq.Bundle{eq.One("Leather Armor"), eq.One("Longbow"), eq.Item("Arrow", 20)},
			),
			eq.OneOf(
				eq.Bundle{eq.Any(eq.CatalogMartialWeapon, 1), eq.One("Shield")},
				eq.Bundle{eq.Any(eq.CatalogMartialWeapon, 2)},
			),
			eq.OneOf(eq.Bundle{eq.One("Light Crossbow"), eq.Item("Crossbow Bolt", 20)}, eq.Bundle{eq.Item("Handaxe", 2)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackDungeoneer)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
		},
		Features: []dnd5e.Feature{
			feature("Fighting Style", 72, "Adopt a particular style of fighting as your specialty."),
			feature("Second Wind", 72, "Regain 1d10 + fighter level hit points as a bonus action."),
		},
	},
	{
		ID:               Monk,
		Name:             "Monk",
		Citation:         phb(76),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityDexterity, dnd5e.AbilityWisdom},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity},
		Proficiencies:    proficiencies.Weapons(proficiencies.SimpleWeapons, "Shortsword"),
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.ChooseTools(src, "Artisan's tools or musical instrument", 1,
				append(append([]string(nil), proficiencies.ArtisansTools...), proficiencies.MusicalInstruments...)...),
			proficiencies.ChooseSkills(src, 2,
				dnd5e.SkillAcrobatics, dnd5e.SkillAthletics, dnd5e.SkillHistory,
				dnd5e.SkillInsight, dnd5e.SkillReligion, dnd5e.SkillStealth),
		},
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Shortsword")}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackDungeoneer)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.Item("Dart", 10)),
		},
		Features: []dnd5e.Feature{
			feature("Unarmored Defense", 78, "AC equals 10 + Dex modifier + Wis modifier without armor or shield."),
			feature("Martial Arts", 78, "Use Dex for unarmed strikes and monk weapons; d4 martial arts die."),
		},
	},
	{
		ID:               Paladin,
		Name:             "Paladin",
		Citation:         phb(82),
		HitDie:           10,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityCharisma},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma},
		Proficiencies:    grants(allArmor, simpleMartial),
		ProficiencyOptions: skills(2,
			dnd5e.SkillAthletics, dnd5e.SkillInsight, dnd5e.SkillIntimidation,
			dnd5e.SkillMedicine, dnd5e.SkillPersuasion, dnd5e.SkillReligion),
		Equipment: []eq.Choice{
			eq.OneOf(
				eq.Bundle{eq.Any(eq.CatalogMartialWeapon, 1), eq.One("Shield")},
				eq.Bundle{eq.Any(eq.CatalogMartialWeapon, 2)},
			),
			eq.OneOf(eq.Bundle{eq.Item("Javelin", 5)}, eq.Bundle{eq.Any(eq.CatalogSimpleMeleeWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackPriest)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.One("Chain Mail"), eq.One("Holy Symbol")),
		},
		Features: []dnd5e.Feature{
			feature("Divine Sense", 84, "Detect celestials, fiends and undead within 60 feet."),
			feature("Lay on Hands", 84, "A pool of healing equal to five times your paladin level."),
		},
		RequiresDeity: true,
	},
	{
		ID:               Ranger,
		Name:             "Ranger",
		Citation:         phb(89),
		HitDie:           10,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityDexterity, dnd5e.AbilityWisdom},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity},
		Proficiencies:    grants(lightMedium, simpleMartial),
		ProficiencyOptions: skills(3,
			dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillInsight, dnd5e.SkillInvestigation,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillStealth, dnd5e.SkillSurvival),
		// Favored Enemy teaches one language spoken by the chosen enemy
		LanguageOptions: []dnd5e.LanguageOption{{Count: 1, Source: src}},
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Scale Mail")}, eq.Bundle{eq.One("Leather Armor")}),
			eq.OneOf(eq.Bundle{eq.Item("Shortsword", 2)}, eq.Bundle{eq.Any(eq.CatalogSimpleMeleeWeapon, 2)}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackDungeoneer)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.One("Longbow"), eq.One("Quiver"), eq.Item("Arrow", 20)),
		},
		Features: []dnd5e.Feature{
			feature("Favored Enemy", 91, "Advantage on tracking and recalling lore about one type of enemy."),
			feature("Natural Explorer", 91, "Expert navigation and foraging in one favored terrain."),
		},
	},
	{
		ID:               Rogue,
		Name:             "Rogue",
		Citation:         phb(94),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityDexterity},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityDexterity, dnd5e.AbilityIntelligence},
		Proficiencies: grants(
			proficiencies.Armor(proficiencies.LightArmor),
			finesse,
			proficiencies.Tools(proficiencies.ThievesTools),
		),
		ProficiencyOptions: skills(4,
			dnd5e.SkillAcrobatics, dnd5e.SkillAthletics, dnd5e.SkillDeception, dnd5e.SkillInsight,
			dnd5e.SkillIntimidation, dnd5e.SkillInvestigation, dnd5e.SkillPerception, dnd5e.SkillPerformance,
			dnd5e.SkillPersuasion, dnd5e.SkillSleightOfHand, dnd5e.SkillStealth),
		Languages: []dnd5e.Language{dnd5e.LanguageThievesCant},
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Rapier")}, eq.Bundle{eq.One("Shortsword")}),
			eq.OneOf(eq.Bundle{eq.One("Shortbow"), eq.One("Quiver"), eq.Item("Arrow", 20)}, eq.Bundle{eq.One("Shortsword")}),
			eq.OneOf(
				eq.Bundle{eq.Packed(eq.PackBurglar)},
				eq.Bundle{eq.Packed(eq.PackDungeoneer)},
				eq.Bundle{eq.Packed(eq.PackExplorer)},
			),
			eq.Fixed(eq.One("Leather Armor"), eq.Item("Dagger", 2), eq.One("Thieves' Tools")),
		},
		Features: []dnd5e.Feature{
			feature("Expertise", 96, "Double proficiency bonus for two chosen proficiencies."),
			feature("Sneak Attack", 96, "Extra 1d6 damage once per turn with advantage or a nearby ally."),
			feature("Thieves' Cant", 96, "A secret mix of dialect, jargon and code known to rogues."),
		},
	},
	{
		ID:               Sorcerer,
		Name:             "Sorcerer",
		Citation:         phb(99),
		HitDie:           6,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityCharisma},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityConstitution, dnd5e.AbilityCharisma},
		Proficiencies:    casterWeapons,
		ProficiencyOptions: skills(2,
			dnd5e.SkillArcana, dnd5e.SkillDeception, dnd5e.SkillInsight,
			dnd5e.SkillIntimidation, dnd5e.SkillPersuasion, dnd5e.SkillReligion),
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Light Crossbow"), eq.Item("Crossbow Bolt", 20)}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.One("Component Pouch")}, eq.Bundle{eq.One("Arcane Focus")}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackDungeoneer)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.Item("Dagger", 2)),
		},
		Features: []dnd5e.Feature{
			feature("Spellcasting", 101, "Cast sorcerer spells using Charisma."),
			feature("Sorcerous Origin", 101, "The source of your innate magic grants features."),
		},
	},
	{
		ID:               Warlock,
		Name:             "Warlock",
		Citation:         phb(105),
		HitDie:           8,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityCharisma},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma},
		Proficiencies:    grants(proficiencies.Armor(proficiencies.LightArmor), proficiencies.Weapons(proficiencies.SimpleWeapons)),
		ProficiencyOptions: skills(2,
			dnd5e.SkillArcana, dnd5e.SkillDeception, dnd5e.SkillHistory, dnd5e.SkillIntimidation,
			dnd5e.SkillInvestigation, dnd5e.SkillNature, dnd5e.SkillReligion),
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Light Crossbow"), eq.Item("Crossbow Bolt", 20)}, eq.Bundle{eq.Any(eq.CatalogSimpleWeapon, 1)}),
			eq.OneOf(eq.Bundle{eq.One("Component Pouch")}, eq.Bundle{eq.One("Arcane Focus")}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackScholar)}, eq.Bundle{eq.Packed(eq.PackDungeoneer)}),
			eq.Fixed(eq.One("Leather Armor"), eq.Any(eq.CatalogSimpleWeapon, 1), eq.Item("Dagger", 2)),
		},
		Features: []dnd5e.Feature{
			feature("Otherworldly Patron", 107, "A pact with an otherworldly being shapes your power."),
			feature("Pact Magic", 107, "Cast warlock spells using Charisma; slots recover on a short rest."),
		},
	},
	{
		ID:               Wizard,
		Name:             "Wizard",
		Citation:         phb(112),
		HitDie:           6,
		PrimaryAbilities: []dnd5e.Ability{dnd5e.AbilityIntelligence},
		SavingThrows:     []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
		Proficiencies:    casterWeapons,
		ProficiencyOptions: skills(2,
			dnd5e.SkillArcana, dnd5e.SkillHistory, dnd5e.SkillInsight,
			dnd5e.SkillInvestigation, dnd5e.SkillMedicine, dnd5e.SkillReligion),
		Equipment: []eq.Choice{
			eq.OneOf(eq.Bundle{eq.One("Quarterstaff")}, eq.Bundle{eq.One("Dagger")}),
			eq.OneOf(eq.Bundle{eq.One("Component Pouch")}, eq.Bundle{eq.One("Arcane Focus")}),
			eq.OneOf(eq.Bundle{eq.Packed(eq.PackScholar)}, eq.Bundle{eq.Packed(eq.PackExplorer)}),
			eq.Fixed(eq.One("Spellbook")),
		},
		Features: []dnd5e.Feature{
			feature("Spellcasting", 114, "Cast wizard spells from your spellbook using Intelligence."),
			feature("Arcane Recovery", 115, "Recover expended spell slots once per day after a short rest."),
		},
	},
}
