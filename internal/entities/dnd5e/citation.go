package dnd5e

import (
	"fmt"
	"sort"
)

// Book is a source rulebook
type Book string

// Book constants
const (
	BookPHB  Book = "PHB"
	BookSCAG Book = "SCAG"
	BookDMG  Book = "DMG"
)

// Citation points at a page in a rulebook
type Citation struct {
	Book Book `json:"book"`
	Page int  `json:"page"`
}

// String renders "PHB p.17"
func (c Citation) String() string {
	return fmt.Sprintf("%s p.%d", c.Book, c.Page)
}

// Citations is a set of references
type Citations []Citation

// Normalize returns the citations de-duplicated and sorted by book then page
func (cs Citations) Normalize() Citations {
	seen := make(map[Citation]struct{}, len(cs))
	out := make(Citations, 0, len(cs))
	for _, c := range cs {
		if c.Book == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Book != out[j].Book {
			return out[i].Book < out[j].Book
		}
		return out[i].Page < out[j].Page
	})
	return out
}

// Dice is a dice expression such as 2d10
type Dice struct {
	Count int `json:"count"`
	Size  int `json:"size"`
}

// String renders "2d10"
func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Size)
}

// Max is the highest possible total
func (d Dice) Max() int {
	return d.Count * d.Size
}
