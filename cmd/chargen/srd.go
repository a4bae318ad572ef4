package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/clients/srd"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
)

func newSRDCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srd",
		Short: "Look up reference data in the D&D 5e SRD API",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "race <key>",
			Short:   "Show the SRD entry for a race",
			Example: "  chargen srd race half-orc",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				a, err := root.newApp(ctx, needs{srd: true})
				if err != nil {
					return err
				}
				defer a.Close()

				race, err := a.srd.GetRace(ctx, args[0])
				if err != nil {
					return err
				}
				writeRace(cmd.OutOrStdout(), race)
				return nil
			},
		},
		&cobra.Command{
			Use:     "equipment <name-or-key>...",
			Short:   "Show SRD entries for equipment",
			Example: "  chargen srd equipment \"Chain Mail\" longsword",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				a, err := root.newApp(ctx, needs{srd: true})
				if err != nil {
					return err
				}
				defer a.Close()

				keys := make([]string, len(args))
				for i, arg := range args {
					keys[i] = equipment.SRDKey(arg)
				}
				items, err := a.srd.ListEquipment(ctx, keys)
				if err != nil {
					return err
				}
				for _, it := range items {
					writeEquipment(cmd.OutOrStdout(), it)
				}
				return nil
			},
		},
	)
	return cmd
}

func writeRace(w io.Writer, r *srd.Race) {
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.ID)
	fmt.Fprintf(w, "  Size: %s | Speed: %d ft\n", r.Size, r.Speed)

	if len(r.AbilityBonuses) > 0 {
		abilities := make([]string, 0, len(r.AbilityBonuses))
		for a := range r.AbilityBonuses {
			abilities = append(abilities, a)
		}
		sort.Strings(abilities)
		bonuses := make([]string, len(abilities))
		for i, a := range abilities {
			bonuses[i] = fmt.Sprintf("%s %+d", strings.ToUpper(a), r.AbilityBonuses[a])
		}
		fmt.Fprintf(w, "  Ability bonuses: %s\n", strings.Join(bonuses, ", "))
	}
	writeList(w, "Traits", r.Traits)
	writeList(w, "Languages", r.Languages)
	writeList(w, "Proficiencies", r.Proficiencies)

	subs := make([]string, len(r.Subraces))
	for i, s := range r.Subraces {
		subs[i] = s.ID
	}
	writeList(w, "Subraces", subs)
}

func writeEquipment(w io.Writer, e *srd.Equipment) {
	fmt.Fprintf(w, "%s (%s, %s)\n", e.Name, e.ID, e.Type)
	if note := e.Note(); note != "" {
		fmt.Fprintf(w, "  %s\n", note)
	}
	if e.WeaponCategory != "" {
		fmt.Fprintf(w, "  %s %s weapon\n", e.WeaponCategory, strings.ToLower(e.WeaponRange))
	}
	writeList(w, "Properties", e.Properties)
	if e.ArmorCategory != "" {
		fmt.Fprintf(w, "  %s armor", e.ArmorCategory)
		if e.StrengthMinimum > 0 {
			fmt.Fprintf(w, ", Str %d", e.StrengthMinimum)
		}
		if e.StealthDisadvantage {
			fmt.Fprint(w, ", stealth disadvantage")
		}
		fmt.Fprintln(w)
	}
}

func writeList(w io.Writer, label string, items []string) {
	if len(items) > 0 {
		fmt.Fprintf(w, "  %s: %s\n", label, strings.Join(items, ", "))
	}
}
