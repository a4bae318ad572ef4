// Package equipment describes starting equipment: fixed items, "any X"
// draws from a catalog, equipment packs, and the choice groups classes offer.
package equipment

import (
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/proficiencies"
)

// Catalog names a family of items an entry can draw from
type Catalog string

// Catalog constants
const (
	CatalogSimpleWeapon       Catalog = "simple-weapon"
	CatalogSimpleMeleeWeapon  Catalog = "simple-melee-weapon"
	CatalogMartialWeapon      Catalog = "martial-weapon"
	CatalogMartialMeleeWeapon Catalog = "martial-melee-weapon"
	CatalogArtisansTools      Catalog = "artisans-tools"
	CatalogGamingSet          Catalog = "gaming-set"
	CatalogMusicalInstrument  Catalog = "musical-instrument"
)

// Items lists the catalog contents
func (c Catalog) Items() []string {
	switch c {
	case CatalogSimpleWeapon:
		return proficiencies.SimpleWeaponList()
	case CatalogSimpleMeleeWeapon:
		return proficiencies.SimpleMeleeWeapons
	case CatalogMartialWeapon:
		return proficiencies.MartialWeaponList()
	case CatalogMartialMeleeWeapon:
		return proficiencies.MartialMeleeWeapons
	case CatalogArtisansTools:
		return proficiencies.ArtisansTools
	case CatalogGamingSet:
		return proficiencies.GamingSets
	case CatalogMusicalInstrument:
		return proficiencies.MusicalInstruments
	default:
		return nil
	}
}

// Entry is one line of starting equipment. Exactly one of Name, From or
// Pack is set.
type Entry struct {
	Name     string
	Quantity int

	// From draws Quantity items from a catalog
	From Catalog
	// PreferProficient restricts a catalog draw to tools the character is
	// proficient with, when there are any
	PreferProficient bool

	Pack PackID
}

// Item is a fixed entry
func Item(name string, quantity int) Entry {
	return Entry{Name: name, Quantity: quantity}
}

// One is a single fixed item
func One(name string) Entry {
	return Item(name, 1)
}

// Any draws quantity items from a catalog
func Any(c Catalog, quantity int) Entry {
	return Entry{From: c, Quantity: quantity}
}

// AnyProficient draws from a catalog, preferring items the character can use
func AnyProficient(c Catalog, quantity int) Entry {
	return Entry{From: c, Quantity: quantity, PreferProficient: true}
}

// Packed adds the contents of an equipment pack
func Packed(p PackID) Entry {
	return Entry{Pack: p, Quantity: 1}
}

// Bundle is one alternative of a choice: "(a) a longbow and 20 arrows"
type Bundle []Entry

// Choice is a class starting equipment group; one bundle is taken
type Choice struct {
	Bundles []Bundle
}

// OneOf builds a choice from alternatives
func OneOf(bundles ...Bundle) Choice {
	return Choice{Bundles: bundles}
}

// Fixed builds a choice with a single bundle
func Fixed(entries ...Entry) Choice {
	return Choice{Bundles: []Bundle{entries}}
}

// Merge combines identical items by summing quantity, keeping first-seen order
func Merge(items []dnd5e.Item) []dnd5e.Item {
	index := make(map[string]int, len(items))
	out := make([]dnd5e.Item, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if i, ok := index[it.Name]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.Name] = len(out)
		out = append(out, it)
	}
	return out
}

var srdReplacer = strings.NewReplacer("'", "", ",", "", "(", "", ")", "", " ", "-")

// SRDKey maps an item name to its SRD API index, e.g. "Thieves' Tools" to
// "thieves-tools"
func SRDKey(name string) string {
	return srdReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
