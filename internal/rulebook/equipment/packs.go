package equipment

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// PackID identifies an equipment pack
type PackID string

// PackID constants
const (
	PackBurglar     PackID = "burglars-pack"
	PackDiplomat    PackID = "diplomats-pack"
	PackDungeoneer  PackID = "dungeoneers-pack"
	PackEntertainer PackID = "entertainers-pack"
	PackExplorer    PackID = "explorers-pack"
	PackPriest      PackID = "priests-pack"
	PackScholar     PackID = "scholars-pack"
)

// Pack is a named bundle of adventuring gear (PHB p.151)
type Pack struct {
	ID       PackID
	Name     string
	Contents []dnd5e.Item
}

var packs = map[PackID]*Pack{
	PackBurglar: {
		ID:   PackBurglar,
		Name: "Burglar's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Ball Bearings (bag of 1,000)", Quantity: 1},
			{Name: "String (10 feet)", Quantity: 1},
			{Name: "Bell", Quantity: 1},
			{Name: "Candle", Quantity: 5},
			{Name: "Crowbar", Quantity: 1},
			{Name: "Hammer", Quantity: 1},
			{Name: "Piton", Quantity: 10},
			{Name: "Hooded Lantern", Quantity: 1},
			{Name: "Flask of Oil", Quantity: 2},
			{Name: "Rations (1 day)", Quantity: 5},
			{Name: "Tinderbox", Quantity: 1},
			{Name: "Waterskin", Quantity: 1},
			{Name: "Hempen Rope (50 feet)", Quantity: 1},
		},
	},
	PackDiplomat: {
		ID:   PackDiplomat,
		Name: "Diplomat's Pack",
		Contents: []dnd5e.Item{
			{Name: "Chest", Quantity: 1},
			{Name: "Case for Maps and Scrolls", Quantity: 2},
			{Name: "Fine Clothes", Quantity: 1},
			{Name: "Bottle of Ink", Quantity: 1},
			{Name: "Ink Pen", Quantity: 1},
			{Name: "Lamp", Quantity: 1},
			{Name: "Flask of Oil", Quantity: 2},
			{Name: "Sheet of Paper", Quantity: 5},
			{Name: "Vial of Perfume", Quantity: 1},
			{Name: "Sealing Wax", Quantity: 1},
			{Name: "Soap", Quantity: 1},
		},
	},
	PackDungeoneer: {
		ID:   PackDungeoneer,
		Name: "Dungeoneer's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Crowbar", Quantity: 1},
			{Name: "Hammer", Quantity: 1},
			{Name: "Piton", Quantity: 10},
			{Name: "Torch", Quantity: 10},
			{Name: "Tinderbox", Quantity: 1},
			{Name: "Rations (1 day)", Quantity: 10},
			{Name: "Waterskin", Quantity: 1},
			{Name: "Hempen Rope (50 feet)", Quantity: 1},
		},
	},
	PackEntertainer: {
		ID:   PackEntertainer,
		Name: "Entertainer's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Bedroll", Quantity: 1},
			{Name: "Costume", Quantity: 2},
			{Name: "Candle", Quantity: 5},
			{Name: "Rations (1 day)", Quantity: 5},
			{Name: "Waterskin", Quantity: 1},
			{Name: "Disguise Kit", Quantity: 1},
		},
	},
	PackExplorer: {
		ID:   PackExplorer,
		Name: "Explorer's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Bedroll", Quantity: 1},
			{Name: "Mess Kit", Quantity: 1},
			{Name: "Tinderbox", Quantity: 1},
			{Name: "Torch", Quantity: 10},
			{Name: "Rations (1 day)", Quantity: 10},
			{Name: "Waterskin", Quantity: 1},
			{Name: "Hempen Rope (50 feet)", Quantity: 1},
		},
	},
	PackPriest: {
		ID:   PackPriest,
		Name: "Priest's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Blanket", Quantity: 1},
			{Name: "Candle", Quantity: 10},
			{Name: "Tinderbox", Quantity: 1},
			{Name: "Alms Box", Quantity: 1},
			{Name: "Block of Incense", Quantity: 2},
			{Name: "Censer", Quantity: 1},
			{Name: "Vestments", Quantity: 1},
			{Name: "Rations (1 day)", Quantity: 2},
			{Name: "Waterskin", Quantity: 1},
		},
	},
	PackScholar: {
		ID:   PackScholar,
		Name: "Scholar's Pack",
		Contents: []dnd5e.Item{
			{Name: "Backpack", Quantity: 1},
			{Name: "Book of Lore", Quantity: 1},
			{Name: "Bottle of Ink", Quantity: 1},
			{Name: "Ink Pen", Quantity: 1},
			{Name: "Sheet of Parchment", Quantity: 10},
			{Name: "Little Bag of Sand", Quantity: 1},
			{Name: "Small Knife", Quantity: 1},
		},
	},
}

// GetPack looks up a pack
func GetPack(id PackID) (*Pack, bool) {
	p, ok := packs[id]
	return p, ok
}

// Expand returns a copy of the pack contents
func Expand(id PackID) []dnd5e.Item {
	p, ok := packs[id]
	if !ok {
		return nil
	}
	out := make([]dnd5e.Item, len(p.Contents))
	copy(out, p.Contents)
	return out
}
