package backgrounds

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

// Background IDs
const (
	Acolyte      = "acolyte"
	Charlatan    = "charlatan"
	Criminal     = "criminal"
	Entertainer  = "entertainer"
	FolkHero     = "folk-hero"
	GuildArtisan = "guild-artisan"
	Hermit       = "hermit"
	Noble        = "noble"
	Outlander    = "outlander"
	Sage         = "sage"
	Sailor       = "sailor"
	Soldier      = "soldier"
	Urchin       = "urchin"
)

const src = dnd5e.ChoiceSourceBackground

func phb(page int) dnd5e.Citation {
	return dnd5e.Citation{Book: dnd5e.BookPHB, Page: page}
}

func feature(name string, page int, desc string) dnd5e.Feature {
	return dnd5e.Feature{Name: name, Description: desc, Source: src, Citation: phb(page)}
}

func languages(count int) []dnd5e.LanguageOption {
	return []dnd5e.LanguageOption{{Count: count, Source: src}}
}

var all = []*Background{
	{
		ID:              Acolyte,
		Name:            "Acolyte",
		Citation:        phb(127),
		Skills:          []dnd5e.Skill{dnd5e.SkillInsight, dnd5e.SkillReligion},
		LanguageOptions: languages(2),
		Equipment: []equipment.Entry{
			equipment.One("Holy Symbol"),
			equipment.One("Prayer Book"),
			equipment.Item("Stick of Incense", 5),
			equipment.One("Vestments"),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             15,
		Feature:          feature("Shelter of the Faithful", 127, "Temples of your faith offer you and your companions food, lodging and healing."),
		PersonalityTable: Acolyte,
		RequiresDeity:    true,
	},
	{
		ID:            Charlatan,
		Name:          "Charlatan",
		Citation:      phb(128),
		Skills:        []dnd5e.Skill{dnd5e.SkillDeception, dnd5e.SkillSleightOfHand},
		Proficiencies: proficiencies.Tools(proficiencies.DisguiseKit, proficiencies.ForgeryKit),
		Equipment: []equipment.Entry{
			equipment.One("Fine Clothes"),
			equipment.One("Disguise Kit"),
			equipment.One("Weighted Dice"),
			equipment.One("Belt Pouch"),
		},
		Gold:             15,
		Feature:          feature("False Identity", 128, "A second identity with papers, acquaintances and disguises to match."),
		PersonalityTable: Charlatan,
	},
	{
		ID:            Criminal,
		Name:          "Criminal",
		Citation:      phb(129),
		Skills:        []dnd5e.Skill{dnd5e.SkillDeception, dnd5e.SkillStealth},
		Proficiencies: proficiencies.Tools(proficiencies.ThievesTools),
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyGamingSet(src, 1),
		},
		Equipment: []equipment.Entry{
			equipment.One("Crowbar"),
			equipment.One("Dark Common Clothes with Hood"),
			equipment.One("Belt Pouch"),
		},
		Gold:             15,
		Feature:          feature("Criminal Contact", 129, "A reliable contact who relays messages through a network of criminals."),
		PersonalityTable: Criminal,
	},
	{
		ID:            Entertainer,
		Name:          "Entertainer",
		Citation:      phb(130),
		Skills:        []dnd5e.Skill{dnd5e.SkillAcrobatics, dnd5e.SkillPerformance},
		Proficiencies: proficiencies.Tools(proficiencies.DisguiseKit),
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyMusicalInstrument(src, 1),
		},
		Equipment: []equipment.Entry{
			equipment.AnyProficient(equipment.CatalogMusicalInstrument, 1),
			equipment.One("Favor of an Admirer"),
			equipment.One("Costume"),
			equipment.One("Belt Pouch"),
		},
		Gold:             15,
		Feature:          feature("By Popular Demand", 130, "Free lodging and food wherever you perform."),
		PersonalityTable: Entertainer,
	},
	{
		ID:            FolkHero,
		Name:          "Folk Hero",
		Citation:      phb(131),
		Skills:        []dnd5e.Skill{dnd5e.SkillAnimalHandling, dnd5e.SkillSurvival},
		Proficiencies: []dnd5e.Proficiency{dnd5e.VehicleProficiency(proficiencies.LandVehicles)},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyArtisansTools(src, 1),
		},
		Equipment: []equipment.Entry{
			equipment.AnyProficient(equipment.CatalogArtisansTools, 1),
			equipment.One("Shovel"),
			equipment.One("Iron Pot"),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("Rustic Hospitality", 131, "Common folk will shelter and hide you."),
		PersonalityTable: FolkHero,
	},
	{
		ID:       GuildArtisan,
		Name:     "Guild Artisan",
		Citation: phb(132),
		Skills:   []dnd5e.Skill{dnd5e.SkillInsight, dnd5e.SkillPersuasion},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyArtisansTools(src, 1),
		},
		LanguageOptions: languages(1),
		Equipment: []equipment.Entry{
			equipment.AnyProficient(equipment.CatalogArtisansTools, 1),
			equipment.One("Letter of Introduction from Your Guild"),
			equipment.One("Traveler's Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             15,
		Feature:          feature("Guild Membership", 133, "Your guild provides lodging, support and access to the powerful."),
		PersonalityTable: GuildArtisan,
	},
	{
		ID:              Hermit,
		Name:            "Hermit",
		Citation:        phb(134),
		Skills:          []dnd5e.Skill{dnd5e.SkillMedicine, dnd5e.SkillReligion},
		Proficiencies:   proficiencies.Tools(proficiencies.HerbalismKit),
		LanguageOptions: languages(1),
		Equipment: []equipment.Entry{
			equipment.One("Scroll Case Stuffed with Notes"),
			equipment.One("Winter Blanket"),
			equipment.One("Common Clothes"),
			equipment.One("Herbalism Kit"),
		},
		Gold:             5,
		Feature:          feature("Discovery", 134, "Your seclusion revealed a unique and powerful secret."),
		PersonalityTable: Hermit,
	},
	{
		ID:       Noble,
		Name:     "Noble",
		Citation: phb(135),
		Skills:   []dnd5e.Skill{dnd5e.SkillHistory, dnd5e.SkillPersuasion},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyGamingSet(src, 1),
		},
		LanguageOptions: languages(1),
		Equipment: []equipment.Entry{
			equipment.One("Fine Clothes"),
			equipment.One("Signet Ring"),
			equipment.One("Scroll of Pedigree"),
			equipment.One("Purse"),
		},
		Gold:             25,
		Feature:          feature("Position of Privilege", 135, "People assume you have the right to be wherever you are."),
		PersonalityTable: Noble,
	},
	{
		ID:       Outlander,
		Name:     "Outlander",
		Citation: phb(136),
		Skills:   []dnd5e.Skill{dnd5e.SkillAthletics, dnd5e.SkillSurvival},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyMusicalInstrument(src, 1),
		},
		LanguageOptions: languages(1),
		Equipment: []equipment.Entry{
			equipment.One("Quarterstaff"),
			equipment.One("Hunting Trap"),
			equipment.One("Trophy from an Animal You Killed"),
			equipment.One("Traveler's Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("Wanderer", 136, "You never forget a map and can forage for yourself and five others."),
		PersonalityTable: Outlander,
	},
	{
		ID:              Sage,
		Name:            "Sage",
		Citation:        phb(137),
		Skills:          []dnd5e.Skill{dnd5e.SkillArcana, dnd5e.SkillHistory},
		LanguageOptions: languages(2),
		Equipment: []equipment.Entry{
			equipment.One("Bottle of Black Ink"),
			equipment.One("Quill"),
			equipment.One("Small Knife"),
			equipment.One("Letter from a Dead Colleague"),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("Researcher", 138, "You know where to find lore you don't already know."),
		PersonalityTable: Sage,
	},
	{
		ID:       Sailor,
		Name:     "Sailor",
		Citation: phb(139),
		Skills:   []dnd5e.Skill{dnd5e.SkillAthletics, dnd5e.SkillPerception},
		Proficiencies: []dnd5e.Proficiency{
			dnd5e.ToolProficiency(proficiencies.NavigatorsTools),
			dnd5e.VehicleProficiency(proficiencies.WaterVehicles),
		},
		Equipment: []equipment.Entry{
			equipment.One("Club"),
			equipment.One("Silk Rope (50 feet)"),
			equipment.One("Lucky Charm"),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("Ship's Passage", 139, "Free passage on a sailing ship for you and your companions."),
		PersonalityTable: Sailor,
	},
	{
		ID:            Soldier,
		Name:          "Soldier",
		Citation:      phb(140),
		Skills:        []dnd5e.Skill{dnd5e.SkillAthletics, dnd5e.SkillIntimidation},
		Proficiencies: []dnd5e.Proficiency{dnd5e.VehicleProficiency(proficiencies.LandVehicles)},
		ProficiencyOptions: []dnd5e.ProficiencyOption{
			proficiencies.AnyGamingSet(src, 1),
		},
		Equipment: []equipment.Entry{
			equipment.One("Insignia of Rank"),
			equipment.One("Trophy from a Fallen Enemy"),
			equipment.AnyProficient(equipment.CatalogGamingSet, 1),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("Military Rank", 140, "Soldiers loyal to your former organization recognize your authority."),
		PersonalityTable: Soldier,
	},
	{
		ID:            Urchin,
		Name:          "Urchin",
		Citation:      phb(141),
		Skills:        []dnd5e.Skill{dnd5e.SkillSleightOfHand, dnd5e.SkillStealth},
		Proficiencies: proficiencies.Tools(proficiencies.DisguiseKit, proficiencies.ThievesTools),
		Equipment: []equipment.Entry{
			equipment.One("Small Knife"),
			equipment.One("Map of Your Home City"),
			equipment.One("Pet Mouse"),
			equipment.One("Token to Remember Your Parents"),
			equipment.One("Common Clothes"),
			equipment.One("Belt Pouch"),
		},
		Gold:             10,
		Feature:          feature("City Secrets", 141, "You move through a city twice as fast using its hidden paths."),
		PersonalityTable: Urchin,
	},
}
