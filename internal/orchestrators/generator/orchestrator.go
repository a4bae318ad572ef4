// Package generator runs the character generation pipeline: race,
// characteristics, ability scores, background, class, personality,
// languages, deity, alignment, proficiencies, equipment and finalize.
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/content"
)

// Service generates characters
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the generator
type Config struct {
	// Roller draws every random value when the input carries no seed
	Roller      dice.Roller
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	// Optional
	Clock         clock.Clock
	Content       *content.Content
	AbilityMethod string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.AbilityMethod != "" {
		errors.ValidateEnum("AbilityMethod", c.AbilityMethod, Methods, vb)
	}

	return vb.Build()
}

type orchestrator struct {
	roller        dice.Roller
	bus           events.EventBus
	idGen         idgen.Generator
	clock         clock.Clock
	content       *content.Content
	abilityMethod string
}

// New creates a generator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		roller:        cfg.Roller,
		bus:           cfg.EventBus,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		content:       cfg.Content,
		abilityMethod: cfg.AbilityMethod,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.abilityMethod == "" {
		o.abilityMethod = MethodStandard
	}
	if o.content == nil {
		c, err := content.Default()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load content")
		}
		o.content = c
	}

	return o, nil
}

type stage struct {
	name string
	run  func(b *build) (string, error)
}

func (o *orchestrator) stages() []stage {
	return []stage{
		{StageRace, o.chooseRace},
		{StageCharacteristics, o.rollCharacteristics},
		{StageAbilities, o.rollAbilities},
		{StageBackground, o.chooseBackground},
		{StageClass, o.chooseClass},
		{StagePersonality, o.drawPersonality},
		{StageLanguages, o.resolveLanguages},
		{StageDeity, o.chooseDeity},
		{StageAlignment, o.chooseAlignment},
		{StageProficiencies, o.resolveProficiencies},
		{StageEquipment, o.drawEquipment},
		{StageFinalize, o.finalize},
	}
}

// Generate runs every stage against a fresh character
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pins, err := o.resolvePins(input)
	if err != nil {
		return nil, err
	}

	src := random.New(o.roller)
	if input.Seed != 0 {
		src = random.NewSeeded(input.Seed)
	}

	b := &build{
		src:  src,
		in:   input,
		pins: pins,
		char: &dnd5e.Character{
			ID:    o.idGen.Generate(),
			Level: startingLevel,
			Seed:  input.Seed,
		},
	}

	for _, st := range o.stages() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "generation canceled")
		}

		summary, err := st.run(b)
		if err != nil {
			slog.Error("Stage failed", "stage", st.name, "character_id", b.char.ID, "error", err)
			return nil, errors.Wrapf(err, "%s stage failed", st.name)
		}
		if err := src.Err(); err != nil {
			return nil, errors.Wrapf(err, "%s stage failed", st.name)
		}

		slog.Debug("Stage complete", "stage", st.name, "character_id", b.char.ID, "summary", summary)
		if err := o.publish(ctx, b.char, st.name, summary); err != nil {
			return nil, err
		}
	}

	return &GenerateOutput{Character: b.char}, nil
}

func (o *orchestrator) publish(ctx context.Context, c *dnd5e.Character, name, summary string) error {
	event := events.NewGameEvent(EventPrefix+name, c, nil)
	event.Context().Set(ContextKeyStage, name)
	event.Context().Set(ContextKeySummary, summary)

	if err := o.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s event", name)
	}
	return nil
}
