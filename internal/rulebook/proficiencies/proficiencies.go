// Package proficiencies holds the tool, weapon, armor and vehicle catalogs
// that deferred proficiency options and "any X" equipment entries draw from.
package proficiencies

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// ArtisansTools (PHB p.154)
var ArtisansTools = []string{
	"Alchemist's Supplies",
	"Brewer's Supplies",
	"Calligrapher's Supplies",
	"Carpenter's Tools",
	"Cartographer's Tools",
	"Cobbler's Tools",
	"Cook's Utensils",
	"Glassblower's Tools",
	"Jeweler's Tools",
	"Leatherworker's Tools",
	"Mason's Tools",
	"Painter's Supplies",
	"Potter's Tools",
	"Smith's Tools",
	"Tinker's Tools",
	"Weaver's Tools",
	"Woodcarver's Tools",
}

// GamingSets (PHB p.154)
var GamingSets = []string{
	"Dice Set",
	"Dragonchess Set",
	"Playing Card Set",
	"Three-Dragon Ante Set",
}

// MusicalInstruments (PHB p.154)
var MusicalInstruments = []string{
	"Bagpipes",
	"Drum",
	"Dulcimer",
	"Flute",
	"Lute",
	"Lyre",
	"Horn",
	"Pan Flute",
	"Shawm",
	"Viol",
}

// Named tools and kits
const (
	DisguiseKit     = "Disguise Kit"
	ForgeryKit      = "Forgery Kit"
	HerbalismKit    = "Herbalism Kit"
	NavigatorsTools = "Navigator's Tools"
	PoisonersKit    = "Poisoner's Kit"
	ThievesTools    = "Thieves' Tools"
)

// OtherTools are tools outside the three tool families
var OtherTools = []string{
	DisguiseKit,
	ForgeryKit,
	HerbalismKit,
	NavigatorsTools,
	PoisonersKit,
	ThievesTools,
}

// SimpleMeleeWeapons (PHB p.149)
var SimpleMeleeWeapons = []string{
	"Club",
	"Dagger",
	"Greatclub",
	"Handaxe",
	"Javelin",
	"Light Hammer",
	"Mace",
	"Quarterstaff",
	"Sickle",
	"Spear",
}

// SimpleRangedWeapons (PHB p.149)
var SimpleRangedWeapons = []string{
	"Light Crossbow",
	"Dart",
	"Shortbow",
	"Sling",
}

// MartialMeleeWeapons (PHB p.149)
var MartialMeleeWeapons = []string{
	"Battleaxe",
	"Flail",
	"Glaive",
	"Greataxe",
	"Greatsword",
	"Halberd",
	"Lance",
	"Longsword",
	"Maul",
	"Morningstar",
	"Pike",
	"Rapier",
	"Scimitar",
	"Shortsword",
	"Trident",
	"War Pick",
	"Warhammer",
	"Whip",
}

// MartialRangedWeapons (PHB p.149)
var MartialRangedWeapons = []string{
	"Blowgun",
	"Hand Crossbow",
	"Heavy Crossbow",
	"Longbow",
	"Net",
}

// Weapon and armor categories granted by classes
const (
	SimpleWeapons  = "Simple Weapons"
	MartialWeapons = "Martial Weapons"
	LightArmor     = "Light Armor"
	MediumArmor    = "Medium Armor"
	HeavyArmor     = "Heavy Armor"
	Shields        = "Shields"
)

// Vehicle categories
const (
	LandVehicles  = "Vehicles (Land)"
	WaterVehicles = "Vehicles (Water)"
)

// SimpleWeaponList is every simple weapon
func SimpleWeaponList() []string {
	return concat(SimpleMeleeWeapons, SimpleRangedWeapons)
}

// MartialWeaponList is every martial weapon
func MartialWeaponList() []string {
	return concat(MartialMeleeWeapons, MartialRangedWeapons)
}

// AllTools is every tool proficiency
func AllTools() []string {
	return concat(ArtisansTools, GamingSets, MusicalInstruments, OtherTools)
}

// Pool returns every proficiency of a kind. It is the unweighted fallback
// when a deferred option has nothing left to offer.
func Pool(kind dnd5e.ProficiencyKind) []dnd5e.Proficiency {
	switch kind {
	case dnd5e.ProficiencyKindSkill:
		return dnd5e.SkillProficiencies(dnd5e.Skills...)
	case dnd5e.ProficiencyKindTool:
		return wrap(dnd5e.ToolProficiency, AllTools())
	case dnd5e.ProficiencyKindWeapon:
		return wrap(dnd5e.WeaponProficiency, concat(
			[]string{SimpleWeapons, MartialWeapons},
			SimpleWeaponList(),
			MartialWeaponList(),
		))
	case dnd5e.ProficiencyKindArmor:
		return wrap(dnd5e.ArmorProficiency, []string{LightArmor, MediumArmor, HeavyArmor, Shields})
	case dnd5e.ProficiencyKindVehicle:
		return wrap(dnd5e.VehicleProficiency, []string{LandVehicles, WaterVehicles})
	case dnd5e.ProficiencyKindSavingThrow:
		out := make([]dnd5e.Proficiency, 0, len(dnd5e.Abilities))
		for _, a := range dnd5e.Abilities {
			out = append(out, dnd5e.SavingThrowProficiency(a))
		}
		return out
	default:
		return nil
	}
}

// Tools converts names to tool grants
func Tools(names ...string) []dnd5e.Proficiency {
	return wrap(dnd5e.ToolProficiency, names)
}

// Weapons converts names to weapon grants
func Weapons(names ...string) []dnd5e.Proficiency {
	return wrap(dnd5e.WeaponProficiency, names)
}

// Armor converts names to armor grants
func Armor(names ...string) []dnd5e.Proficiency {
	return wrap(dnd5e.ArmorProficiency, names)
}

// SavingThrows converts abilities to saving throw grants
func SavingThrows(abilities ...dnd5e.Ability) []dnd5e.Proficiency {
	out := make([]dnd5e.Proficiency, 0, len(abilities))
	for _, a := range abilities {
		out = append(out, dnd5e.SavingThrowProficiency(a))
	}
	return out
}

func wrap(fn func(string) dnd5e.Proficiency, names []string) []dnd5e.Proficiency {
	out := make([]dnd5e.Proficiency, 0, len(names))
	for _, n := range names {
		out = append(out, fn(n))
	}
	return out
}

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
