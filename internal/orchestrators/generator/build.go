package generator

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/random"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/backgrounds"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/classes"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/content"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/races"
)

// build is the state threaded through the stages of one generation
type build struct {
	src  *random.Source
	in   *GenerateInput
	pins pins
	char *dnd5e.Character

	race       *races.Race
	traits     races.Traits
	background *backgrounds.Background
	class      *classes.Class
	ideal      dnd5e.IdealTag
	deity      *dnd5e.Deity
}

// pins are the input IDs resolved against the registries
type pins struct {
	race       *races.Race
	subrace    *races.Subrace
	background *backgrounds.Background
	class      *classes.Class
	pantheon   *content.Pantheon
	method     string
}

// resolvePins rejects unknown IDs before any stage runs
func (o *orchestrator) resolvePins(in *GenerateInput) (pins, error) {
	var (
		p   pins
		err error
	)

	if in.Level != 0 && in.Level != startingLevel {
		return p, errors.InvalidArgumentf("only level %d characters are supported, got %d", startingLevel, in.Level)
	}

	switch in.Gender {
	case "", dnd5e.GenderFemale, dnd5e.GenderMale, dnd5e.GenderNonbinary:
	default:
		return p, errors.InvalidArgumentf("unknown gender %q", in.Gender)
	}

	p.method = o.abilityMethod
	if in.AbilityMethod != "" {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("AbilityMethod", in.AbilityMethod, Methods, vb)
		if err := vb.Build(); err != nil {
			return p, err
		}
		p.method = in.AbilityMethod
	}

	if in.RaceID != "" {
		if p.race, err = races.Get(in.RaceID); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown race")
		}
	}
	if in.SubraceID != "" {
		if p.race == nil {
			return p, errors.InvalidArgument("subrace requires a race")
		}
		if p.subrace, err = p.race.Subrace(in.SubraceID); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown subrace")
		}
	}
	if in.BackgroundID != "" {
		if p.background, err = backgrounds.Get(in.BackgroundID); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown background")
		}
	}
	if in.ClassID != "" {
		if p.class, err = classes.Get(in.ClassID); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown class")
		}
	}
	if in.PantheonID != "" {
		if p.pantheon, err = o.content.Pantheon(in.PantheonID); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown pantheon")
		}
	}

	return p, nil
}

// skillWeight favours skills the character is good at
func (b *build) skillWeight(s dnd5e.Skill) int {
	return max(1, b.char.Modifier(s.Ability())+6)
}

func (b *build) abilityWeight(a dnd5e.Ability) int {
	return max(1, b.char.Modifier(a)+6)
}
