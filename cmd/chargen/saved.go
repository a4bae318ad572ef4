package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/render"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var (
		format   string
		annotate bool
	)

	cmd := &cobra.Command{
		Use:   "show <character-id>",
		Short: "Print a saved character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vb := errors.NewValidationBuilder()
			errors.ValidateEnum("format", format, render.Formats, vb)
			if err := vb.Build(); err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := root.newApp(ctx, needs{storage: true, srd: annotate})
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.service.GetCharacter(ctx, &character.GetCharacterInput{
				CharacterID: args[0],
				Annotate:    annotate,
			})
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), render.Format(format), out.Character, render.WithItemNotes(out.ItemNotes))
		},
	}

	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "output format: text or json")
	cmd.Flags().BoolVar(&annotate, "srd", false, "annotate equipment with SRD weight and cost")
	return cmd
}

func newSavedCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List saved characters, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := root.newApp(ctx, needs{storage: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return listSaved(ctx, a.service, cmd.OutOrStdout(), cmd.ErrOrStderr(), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many; 0 shows all")
	return cmd
}

func newDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <character-id>",
		Short: "Delete a saved character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := root.newApp(ctx, needs{storage: true})
			if err != nil {
				return err
			}
			defer a.Close()

			return deleteSaved(ctx, a.service, cmd.OutOrStdout(), args[0])
		},
	}
}

// listSaved prints one summary line per saved character
func listSaved(ctx context.Context, svc character.Service, stdout, stderr io.Writer, limit int) error {
	out, err := svc.ListCharacters(ctx, &character.ListCharactersInput{Limit: limit})
	if err != nil {
		return err
	}
	if len(out.Characters) == 0 {
		fmt.Fprintln(stderr, "no saved characters")
		return nil
	}
	for _, c := range out.Characters {
		fmt.Fprintln(stdout, render.Summary(c))
	}
	return nil
}

func deleteSaved(ctx context.Context, svc character.Service, stdout io.Writer, id string) error {
	out, err := svc.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: id})
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out.Message)
	return nil
}
