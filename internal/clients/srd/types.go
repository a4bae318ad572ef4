package srd

import (
	"fmt"
	"strconv"
	"strings"
)

// Race is the SRD view of a race, used to cross-check the bundled rulebook
type Race struct {
	ID              string
	Name            string
	Speed           int
	Size            string
	SizeDescription string
	AbilityBonuses  map[string]int
	Traits          []string
	Languages       []string
	Proficiencies   []string
	Subraces        []Subrace
}

// Subrace is a reference to a subrace
type Subrace struct {
	ID   string
	Name string
}

// Cost is a price in a single coin
type Cost struct {
	Quantity int
	Unit     string
}

// Equipment is the SRD view of one item
type Equipment struct {
	ID       string
	Name     string
	Type     string
	Category string
	Weight   float32
	Cost     *Cost

	// Weapons
	WeaponCategory string
	WeaponRange    string
	Damage         string
	Properties     []string

	// Armor
	ArmorCategory       string
	ArmorClass          int
	DexBonus            bool
	StrengthMinimum     int
	StealthDisadvantage bool
}

// Note is a short annotation for a character sheet, e.g. "1d8 slashing, 3 lb, 15 gp"
func (e *Equipment) Note() string {
	if e == nil {
		return ""
	}

	var parts []string
	switch {
	case e.Damage != "":
		parts = append(parts, e.Damage)
	case e.ArmorClass > 0:
		ac := "AC " + strconv.Itoa(e.ArmorClass)
		if e.DexBonus {
			ac += " + Dex"
		}
		parts = append(parts, ac)
	}
	if e.Weight > 0 {
		parts = append(parts, strconv.FormatFloat(float64(e.Weight), 'f', -1, 32)+" lb")
	}
	if e.Cost != nil && e.Cost.Quantity > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", e.Cost.Quantity, e.Cost.Unit))
	}
	return strings.Join(parts, ", ")
}
