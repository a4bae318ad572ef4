package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-chargen/internal/render"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

type generateOptions struct {
	seed       int64
	count      int
	race       string
	subrace    string
	class      string
	background string
	pantheon   string
	name       string
	gender     string
	method     string
	format     string
	save       bool
	annotate   bool
	trace      bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more characters",
		Example: `  chargen generate
  chargen generate --seed 42 --race elf --subrace high-elf --class wizard
  chargen generate --count 5 --format json --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "deterministic seed; 0 draws from crypto randomness (default CHARGEN_SEED)")
	f.IntVar(&opts.count, "count", 1, fmt.Sprintf("number of characters, at most %d", character.MaxBatch))
	f.StringVar(&opts.race, "race", "", "pin the race, e.g. dwarf")
	f.StringVar(&opts.subrace, "subrace", "", "pin the subrace, e.g. hill-dwarf (needs --race)")
	f.StringVar(&opts.class, "class", "", "pin the class, e.g. wizard")
	f.StringVar(&opts.background, "background", "", "pin the background, e.g. sage")
	f.StringVar(&opts.pantheon, "pantheon", "", "pin the pantheon, e.g. forgotten-realms")
	f.StringVar(&opts.name, "name", "", "use this name instead of drawing one")
	f.StringVar(&opts.gender, "gender", "", "female, male or nonbinary")
	f.StringVar(&opts.method, "method", "", "ability method: 4d6_drop_lowest, 3d6 or standard_array (default CHARGEN_ABILITY_METHOD)")
	f.StringVar(&opts.format, "format", string(render.FormatText), "output format: text or json")
	f.BoolVar(&opts.save, "save", false, "store the characters in redis (needs REDIS_ADDR)")
	f.BoolVar(&opts.annotate, "srd", false, "annotate equipment with SRD weight and cost")
	f.BoolVar(&opts.trace, "trace", false, "print each generation stage to stderr")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	format := render.Format(opts.format)
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", opts.format, render.Formats, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = root.cfg.Generator.Seed
	}

	ctx := cmd.Context()
	a, err := root.newApp(ctx, needs{storage: opts.save, srd: opts.annotate})
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.trace {
		traceStages(a.bus, func(stage, summary string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%-16s %s\n", stage, summary)
		})
	}

	out, err := a.service.GenerateCharacters(ctx, &character.GenerateCharactersInput{
		Options: &generator.GenerateInput{
			RaceID:        opts.race,
			SubraceID:     opts.subrace,
			BackgroundID:  opts.background,
			ClassID:       opts.class,
			PantheonID:    opts.pantheon,
			Name:          opts.name,
			Gender:        dnd5e.Gender(opts.gender),
			AbilityMethod: opts.method,
			Seed:          seed,
		},
		Count:    opts.count,
		Save:     opts.save,
		Annotate: opts.annotate,
	})
	if err != nil {
		return err
	}

	if err := render.WriteAll(cmd.OutOrStdout(), format, out.Characters, render.WithItemNotes(out.ItemNotes)); err != nil {
		return err
	}
	if opts.save {
		for _, c := range out.Characters {
			fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", c.ID)
		}
	}
	return nil
}

// traceStages reports every stage event the generator publishes
func traceStages(bus events.EventBus, report func(stage, summary string)) {
	for _, name := range generator.Stages {
		bus.SubscribeFunc(generator.EventPrefix+name, 100, func(_ context.Context, e events.Event) error {
			stage, _ := e.Context().Get(generator.ContextKeyStage)
			summary, _ := e.Context().Get(generator.ContextKeySummary)
			report(fmt.Sprint(stage), fmt.Sprint(summary))
			return nil
		})
	}
}
