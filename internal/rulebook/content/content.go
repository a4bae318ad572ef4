// Package content loads the static flavor tables shipped with the generator:
// names, background personality tables and pantheons.
package content

import (
	"embed"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	namesFile       = "names.yaml"
	personalityFile = "personality.yaml"
	pantheonsFile   = "pantheons.yaml"
)

// NameTable holds given and family names for one race
type NameTable struct {
	Male   []string `yaml:"male"`
	Female []string `yaml:"female"`
	Family []string `yaml:"family"`
}

// Given returns the given names for a gender; nonbinary draws from both lists
func (t NameTable) Given(g dnd5e.Gender) []string {
	switch g {
	case dnd5e.GenderMale:
		return t.Male
	case dnd5e.GenderFemale:
		return t.Female
	default:
		out := make([]string, 0, len(t.Male)+len(t.Female))
		out = append(out, t.Male...)
		return append(out, t.Female...)
	}
}

// IdealEntry is one row of an ideals table
type IdealEntry struct {
	Text string         `yaml:"text"`
	Tag  dnd5e.IdealTag `yaml:"tag"`
}

// PersonalityTable holds a background's d8/d6 tables
type PersonalityTable struct {
	Traits []string     `yaml:"traits"`
	Ideals []IdealEntry `yaml:"ideals"`
	Bonds  []string     `yaml:"bonds"`
	Flaws  []string     `yaml:"flaws"`
}

// Pantheon is a group of deities
type Pantheon struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Page    int           `yaml:"page"`
	Deities []dnd5e.Deity `yaml:"deities"`
}

// Ref is the summary stored on a character
func (p *Pantheon) Ref() dnd5e.PantheonRef {
	return dnd5e.PantheonRef{ID: p.ID, Name: p.Name}
}

// Content is the parsed set of tables
type Content struct {
	names       map[string]NameTable
	personality map[string]PersonalityTable
	pantheons   []*Pantheon
}

var loadDefault = sync.OnceValues(func() (*Content, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded content")
	}
	return Parse(sub)
})

// Default returns the embedded tables, parsed once
func Default() (*Content, error) {
	return loadDefault()
}

// Parse reads names.yaml, personality.yaml and pantheons.yaml from fsys
func Parse(fsys fs.FS) (*Content, error) {
	c := &Content{}
	if err := decode(fsys, namesFile, &c.names); err != nil {
		return nil, err
	}
	if err := decode(fsys, personalityFile, &c.personality); err != nil {
		return nil, err
	}
	if err := decode(fsys, pantheonsFile, &c.pantheons); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+name)
	}
	return nil
}

func (c *Content) validate() error {
	vb := errors.NewValidationBuilder()

	for key, t := range c.names {
		if len(t.Male) == 0 || len(t.Female) == 0 {
			vb.Field("names."+key, "needs male and female names")
		}
	}

	for key, t := range c.personality {
		if len(t.Traits) < 2 {
			vb.Fieldf("personality."+key+".traits", "needs at least 2 traits, got %d", len(t.Traits))
		}
		if len(t.Ideals) == 0 || len(t.Bonds) == 0 || len(t.Flaws) == 0 {
			vb.Field("personality."+key, "needs ideals, bonds and flaws")
		}
		for _, ideal := range t.Ideals {
			if !validTag(ideal.Tag) {
				vb.Fieldf("personality."+key+".ideals", "unknown tag %q", ideal.Tag)
			}
		}
	}

	seen := map[string]bool{}
	for _, p := range c.pantheons {
		if p.ID == "" || seen[p.ID] {
			vb.Fieldf("pantheons", "missing or duplicate id %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.Deities) == 0 {
			vb.Field("pantheons."+p.ID, "has no deities")
		}
		for _, d := range p.Deities {
			if !d.Alignment.Valid() {
				vb.Fieldf("pantheons."+p.ID, "deity %s has invalid alignment %q", d.Name, d.Alignment)
			}
		}
	}

	return vb.Build()
}

func validTag(t dnd5e.IdealTag) bool {
	switch t {
	case dnd5e.IdealAny, dnd5e.IdealLawful, dnd5e.IdealChaotic,
		dnd5e.IdealGood, dnd5e.IdealEvil, dnd5e.IdealNeutral:
		return true
	}
	return false
}

// Names merges the given name tables
func (c *Content) Names(tables ...string) (NameTable, error) {
	var out NameTable
	for _, key := range tables {
		t, ok := c.names[key]
		if !ok {
			return NameTable{}, errors.NotFoundf("name table %q not found", key)
		}
		out.Male = append(out.Male, t.Male...)
		out.Female = append(out.Female, t.Female...)
		out.Family = append(out.Family, t.Family...)
	}
	return out, nil
}

// Personality returns a background's personality table
func (c *Content) Personality(key string) (PersonalityTable, error) {
	t, ok := c.personality[key]
	if !ok {
		return PersonalityTable{}, errors.NotFoundf("personality table %q not found", key)
	}
	return t, nil
}

// Pantheons returns every pantheon in file order
func (c *Content) Pantheons() []*Pantheon {
	out := make([]*Pantheon, len(c.pantheons))
	copy(out, c.pantheons)
	return out
}

// Pantheon looks up a pantheon by ID
func (c *Content) Pantheon(id string) (*Pantheon, error) {
	for _, p := range c.pantheons {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFoundf("pantheon %q not found", id)
}

// NameTableKeys lists the loaded name tables, sorted
func (c *Content) NameTableKeys() []string {
	keys := make([]string, 0, len(c.names))
	for k := range c.names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
