// Package character implements the character orchestrator
package character

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-chargen/internal/clients/srd"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/equipment"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

const lookupConcurrency = 4

// Config holds the dependencies for the character orchestrator
type Config struct {
	Generator generator.Service
	// CharacterRepo is optional; without it nothing can be saved or loaded
	CharacterRepo characterrepo.Repository
	// SRDClient is optional; without it equipment cannot be annotated
	SRDClient srd.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	generator     generator.Service
	characterRepo characterrepo.Repository
	srdClient     srd.Client
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		generator:     cfg.Generator,
		characterRepo: cfg.CharacterRepo,
		srdClient:     cfg.SRDClient,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// GenerateCharacters generates a batch of characters. Saving is all or
// nothing: when one character fails to store, the ones already stored by
// this call are deleted again.
func (o *Orchestrator) GenerateCharacters(
	ctx context.Context,
	input *character.GenerateCharactersInput,
) (*character.GenerateCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", count, 1, character.MaxBatch, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := o.requireStorage(input.Save); err != nil {
		return nil, err
	}
	if err := o.requireSRD(input.Annotate); err != nil {
		return nil, err
	}

	opts := generator.GenerateInput{}
	if input.Options != nil {
		opts = *input.Options
	}

	chars := make([]*dnd5e.Character, 0, count)
	for i := 0; i < count; i++ {
		req := opts
		if opts.Seed != 0 {
			req.Seed = opts.Seed + int64(i)
		}

		out, err := o.generator.Generate(ctx, &req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate character %d of %d", i+1, count)
		}
		chars = append(chars, out.Character)
	}

	if input.Save {
		if err := o.saveAll(ctx, chars); err != nil {
			return nil, err
		}
	}

	output := &character.GenerateCharactersOutput{Characters: chars}
	if input.Annotate {
		notes, err := o.itemNotes(ctx, chars...)
		if err != nil {
			return nil, err
		}
		output.ItemNotes = notes
	}
	return output, nil
}

// GetCharacter retrieves a saved character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if err := o.requireStorage(true); err != nil {
		return nil, err
	}
	if err := o.requireSRD(input.Annotate); err != nil {
		return nil, err
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}

	output := &character.GetCharacterOutput{Character: got.Character}
	if input.Annotate {
		notes, err := o.itemNotes(ctx, got.Character)
		if err != nil {
			return nil, err
		}
		output.ItemNotes = notes
	}
	return output, nil
}

// ListCharacters lists saved characters, oldest first
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}
	if err := o.requireStorage(true); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.List(ctx, characterrepo.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{
		Characters: result.Characters,
	}, nil
}

// DeleteCharacter deletes a saved character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if err := o.requireStorage(true); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &character.DeleteCharacterOutput{
		Message: fmt.Sprintf("Character %s deleted successfully", input.CharacterID),
	}, nil
}

func (o *Orchestrator) saveAll(ctx context.Context, chars []*dnd5e.Character) error {
	for i, c := range chars {
		if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c}); err != nil {
			o.rollback(ctx, chars[:i])
			return errors.Wrap(err, "failed to save character").
				WithMeta("character_id", c.ID)
		}
		slog.InfoContext(ctx, "saved character", "character_id", c.ID, "name", c.Name)
	}
	return nil
}

// rollback deletes characters stored earlier in the same batch. It runs
// even when ctx is canceled.
func (o *Orchestrator) rollback(ctx context.Context, saved []*dnd5e.Character) {
	ctx = context.WithoutCancel(ctx)
	for _, c := range saved {
		if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: c.ID}); err != nil {
			slog.WarnContext(ctx, "failed to roll back saved character", "character_id", c.ID, "error", err)
			continue
		}
		slog.InfoContext(ctx, "rolled back saved character", "character_id", c.ID)
	}
}

func (o *Orchestrator) requireStorage(needed bool) error {
	if needed && o.characterRepo == nil {
		return errors.FailedPrecondition("character storage is not configured")
	}
	return nil
}

func (o *Orchestrator) requireSRD(needed bool) error {
	if needed && o.srdClient == nil {
		return errors.FailedPrecondition("SRD client is not configured")
	}
	return nil
}

// itemNotes looks up every distinct equipment name. Items the SRD does not
// know, such as holy symbols or trinkets, are skipped.
func (o *Orchestrator) itemNotes(ctx context.Context, chars ...*dnd5e.Character) (map[string]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, c := range chars {
		for _, it := range c.Equipment {
			if !seen[it.Name] {
				seen[it.Name] = true
				names = append(names, it.Name)
			}
		}
	}

	var mu sync.Mutex
	notes := make(map[string]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, name := range names {
		g.Go(func() error {
			eq, err := o.srdClient.GetEquipment(gctx, equipment.SRDKey(name))
			if err != nil {
				if errors.IsCanceled(err) {
					return err
				}
				slog.DebugContext(gctx, "no SRD entry", "item", name, "error", err)
				return nil
			}
			if note := eq.Note(); note != "" {
				mu.Lock()
				notes[name] = note
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to look up equipment")
	}
	return notes, nil
}
