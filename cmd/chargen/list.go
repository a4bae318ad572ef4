package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/backgrounds"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/content"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/races"
)

func newListCmd(_ *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the IDs that generate accepts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "races",
			Short: "List races and their subraces",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
					for _, r := range races.All() {
						subs := make([]string, len(r.Subraces))
						for i, s := range r.Subraces {
							subs[i] = s.ID
						}
						fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, strings.Join(subs, ", "))
					}
				})
			},
		},
		&cobra.Command{
			Use:   "classes",
			Short: "List classes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
					for _, c := range classes.All() {
						fmt.Fprintf(w, "%s\t%s\td%d\n", c.ID, c.Name, c.HitDie)
					}
				})
			},
		},
		&cobra.Command{
			Use:   "backgrounds",
			Short: "List backgrounds",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
					for _, b := range backgrounds.All() {
						skills := make([]string, len(b.Skills))
						for i, s := range b.Skills {
							skills[i] = string(s)
						}
						fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.Name, strings.Join(skills, ", "))
					}
				})
			},
		},
		&cobra.Command{
			Use:   "pantheons",
			Short: "List pantheons and their deity counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := content.Default()
				if err != nil {
					return err
				}
				return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
					for _, p := range c.Pantheons() {
						fmt.Fprintf(w, "%s\t%s\t%d deities\n", p.ID, p.Name, len(p.Deities))
					}
				})
			},
		},
	)
	return cmd
}

func writeTable(out io.Writer, rows func(w io.Writer)) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	rows(tw)
	return tw.Flush()
}
