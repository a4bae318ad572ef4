// Package render writes a generated character as a plain-text sheet or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Format names an output format
type Format string

// Supported formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists every output format
var Formats = []string{string(FormatText), string(FormatJSON)}

// titled title-cases s with a fresh Caser
func titled(s string) string {
	return cases.Title(language.English).String(s)
}

type options struct {
	itemNotes map[string]string
}

// Option tweaks the text sheet
type Option func(*options)

// WithItemNotes appends a note after each equipment line whose item name
// is a key, e.g. SRD weight and cost
func WithItemNotes(notes map[string]string) Option {
	return func(o *options) {
		o.itemNotes = notes
	}
}

// Write renders c in the given format
func Write(w io.Writer, format Format, c *dnd5e.Character, opts ...Option) error {
	switch format {
	case FormatJSON:
		return JSON(w, c)
	case FormatText, "":
		return Text(w, c, opts...)
	default:
		return errors.InvalidArgumentf("unknown format %q", format)
	}
}

// WriteAll renders several characters. Text sheets are separated by a rule;
// JSON is a single object for one character and an array otherwise.
func WriteAll(w io.Writer, format Format, chars []*dnd5e.Character, opts ...Option) error {
	if format == FormatJSON && len(chars) != 1 {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if chars == nil {
			chars = []*dnd5e.Character{}
		}
		if err := enc.Encode(chars); err != nil {
			return errors.Wrap(err, "failed to encode characters")
		}
		return nil
	}

	for i, c := range chars {
		if i > 0 && format != FormatJSON {
			if _, err := io.WriteString(w, "\n"+strings.Repeat("-", 40)+"\n\n"); err != nil {
				return errors.Wrap(err, "failed to write separator")
			}
		}
		if err := Write(w, format, c, opts...); err != nil {
			return err
		}
	}
	return nil
}

// Summary is a one-line listing entry
func Summary(c *dnd5e.Character) string {
	if c == nil {
		return ""
	}
	race, class := "?", "?"
	if c.Race != nil {
		race = c.Race.DisplayName()
	}
	if c.Class != nil {
		class = c.Class.Name
	}
	return fmt.Sprintf("%s\t%s\t%s %s %d\t%s", c.ID, c.Name, race, class, c.Level, string(c.Alignment))
}

// JSON writes c as indented JSON
func JSON(w io.Writer, c *dnd5e.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to encode character")
	}
	return nil
}

// Text writes a character sheet
func Text(w io.Writer, c *dnd5e.Character, opts ...Option) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var sections [][]string
	sections = append(sections, header(c))
	sections = append(sections, abilityLines(c))
	if c.Personality != nil {
		sections = append(sections, personalityLines(c.Personality))
	}
	sections = append(sections,
		proficiencyLines(c),
		equipmentLines(c, o.itemNotes),
		featureLines(c),
		citationLines(c),
	)

	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		if len(s) > 0 {
			blocks = append(blocks, strings.Join(s, "\n"))
		}
	}

	if _, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n"); err != nil {
		return errors.Wrap(err, "failed to write character sheet")
	}
	return nil
}

func header(c *dnd5e.Character) []string {
	lines := []string{c.Name}

	var who []string
	if c.Characteristics != nil {
		who = append(who, titled(string(c.Characteristics.Gender)))
	}
	if c.Race != nil {
		who = append(who, c.Race.DisplayName())
	}
	if c.Class != nil {
		who = append(who, fmt.Sprintf("%s %d", c.Class.Name, c.Level))
	}
	if len(who) > 0 {
		lines = append(lines, strings.Join(who, " "))
	}

	if c.Background != nil {
		lines = append(lines, "Background: "+c.Background.Name)
	}
	if c.Alignment != "" {
		lines = append(lines, "Alignment: "+c.Alignment.Name())
	}
	if c.Faith != nil {
		faith := c.Faith.Deity.Name
		if c.Faith.Deity.Title != "" {
			faith += ", " + c.Faith.Deity.Title
		}
		lines = append(lines, fmt.Sprintf("Deity: %s (%s)", faith, c.Faith.Pantheon.Name))
	}
	if ch := c.Characteristics; ch != nil {
		lines = append(lines, fmt.Sprintf("Age %d, %d'%d\", %d lb",
			ch.Age, ch.HeightInches/12, ch.HeightInches%12, ch.WeightPounds))
	}
	if c.Race != nil {
		speed := fmt.Sprintf("Size: %s | Speed: %d ft", titled(string(c.Race.Size)), c.Race.Speed)
		if c.Race.Darkvision > 0 {
			speed += fmt.Sprintf(" | Darkvision: %d ft", c.Race.Darkvision)
		}
		lines = append(lines, speed)
	}
	lines = append(lines, fmt.Sprintf("HP: %d | Proficiency: %+d", c.HitPoints, c.ProficiencyBonus))
	if len(c.Languages) > 0 {
		names := make([]string, len(c.Languages))
		for i, l := range c.Languages {
			names[i] = string(l)
		}
		lines = append(lines, "Languages: "+strings.Join(names, ", "))
	}
	return lines
}

func abilityLines(c *dnd5e.Character) []string {
	if c.AbilityScores == nil {
		return nil
	}
	lines := []string{"Ability Scores"}
	for _, a := range dnd5e.Abilities {
		score := c.AbilityScores.Get(a)
		lines = append(lines, fmt.Sprintf("  %s %2d (%+d)", strings.ToUpper(string(a)), score, dnd5e.Modifier(score)))
	}
	return lines
}

func personalityLines(p *dnd5e.Personality) []string {
	lines := []string{"Personality"}
	for _, t := range p.Traits {
		lines = append(lines, "  Trait: "+t)
	}
	lines = append(lines,
		fmt.Sprintf("  Ideal: %s (%s)", p.Ideal.Text, titled(string(p.Ideal.Tag))),
		"  Bond: "+p.Bond,
		"  Flaw: "+p.Flaw,
	)
	return lines
}

var kindOrder = []dnd5e.ProficiencyKind{
	dnd5e.ProficiencyKindSavingThrow,
	dnd5e.ProficiencyKindSkill,
	dnd5e.ProficiencyKindArmor,
	dnd5e.ProficiencyKindWeapon,
	dnd5e.ProficiencyKindTool,
	dnd5e.ProficiencyKindVehicle,
}

func proficiencyLines(c *dnd5e.Character) []string {
	if len(c.Proficiencies) == 0 {
		return nil
	}
	lines := []string{"Proficiencies"}
	for _, kind := range kindOrder {
		held := c.ProficienciesOf(kind)
		if len(held) == 0 {
			continue
		}
		names := make([]string, len(held))
		for i, p := range held {
			names[i] = p.String()
		}
		label := titled(strings.ReplaceAll(string(kind), "_", " ")) + "s"
		lines = append(lines, fmt.Sprintf("  %s: %s", label, strings.Join(names, ", ")))
	}
	return lines
}

func equipmentLines(c *dnd5e.Character, notes map[string]string) []string {
	lines := []string{"Equipment"}
	for _, it := range c.Equipment {
		line := "  " + it.Name
		if it.Quantity > 1 {
			line = fmt.Sprintf("  %s x%d", it.Name, it.Quantity)
		}
		if note, ok := notes[it.Name]; ok && note != "" {
			line += " [" + note + "]"
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("  %d gp", c.Gold))
	return lines
}

func featureLines(c *dnd5e.Character) []string {
	if len(c.Features) == 0 {
		return nil
	}
	lines := []string{"Features"}
	for _, f := range c.Features {
		lines = append(lines, fmt.Sprintf("  %s (%s, %s)", f.Name, titled(string(f.Source)), f.Citation))
	}
	return lines
}

func citationLines(c *dnd5e.Character) []string {
	cites := c.Citations()
	if len(cites) == 0 {
		return nil
	}
	refs := make([]string, len(cites))
	for i, ci := range cites {
		refs[i] = ci.String()
	}
	return []string{"Sources: " + strings.Join(refs, "; ")}
}
