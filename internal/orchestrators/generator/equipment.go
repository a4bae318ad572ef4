package generator

import (
	"fmt"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

func (o *orchestrator) drawEquipment(b *build) (string, error) {
	var items []dnd5e.Item

	for _, e := range b.background.Equipment {
		got, err := b.unpack(e)
		if err != nil {
			return "", err
		}
		items = append(items, got...)
	}

	for _, choice := range b.class.Equipment {
		bundle, ok := random.Choose(b.src, choice.Bundles)
		if !ok {
			continue
		}
		for _, e := range bundle {
			got, err := b.unpack(e)
			if err != nil {
				return "", err
			}
			items = append(items, got...)
		}
	}

	b.char.Equipment = equipment.Merge(items)
	b.char.Gold = b.background.Gold
	return fmt.Sprintf("%d items, %d gp", len(b.char.Equipment), b.char.Gold), nil
}

// unpack turns one entry into concrete items
func (b *build) unpack(e equipment.Entry) ([]dnd5e.Item, error) {
	switch {
	case e.Pack != "":
		contents := equipment.Expand(e.Pack)
		if contents == nil {
			return nil, errors.Internalf("unknown equipment pack %q", e.Pack)
		}
		return contents, nil

	case e.From != "":
		pool := e.From.Items()
		if e.PreferProficient {
			if held := b.proficientTools(pool); len(held) > 0 {
				pool = held
			}
		}
		out := make([]dnd5e.Item, 0, e.Quantity)
		for i := 0; i < e.Quantity; i++ {
			name, ok := random.Choose(b.src, pool)
			if !ok {
				return nil, errors.ResourceExhaustedf("equipment catalog %s is empty", e.From).
					WithMeta("pool", string(e.From))
			}
			out = append(out, dnd5e.Item{Name: name, Quantity: 1})
		}
		return out, nil

	default:
		return []dnd5e.Item{{Name: e.Name, Quantity: e.Quantity}}, nil
	}
}

func (b *build) proficientTools(names []string) []string {
	var out []string
	for _, n := range names {
		if b.char.HasProficiency(dnd5e.ToolProficiency(n)) {
			out = append(out, n)
		}
	}
	return out
}
