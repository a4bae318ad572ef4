// Package srd is the client for the D&D 5e SRD API. Generated characters use
// it to annotate their gear and to compare bundled races with the SRD.
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/rpg-chargen/internal/clients/srd Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

const (
	defaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour

	// fetchConcurrency bounds parallel equipment lookups
	fetchConcurrency = 8
)

// Client defines the SRD lookups
type Client interface {
	// GetRace fetches a race by SRD index, e.g. "half-orc"
	GetRace(ctx context.Context, key string) (*Race, error)

	// GetEquipment fetches an item by SRD index, e.g. "chain-mail"
	GetEquipment(ctx context.Context, key string) (*Equipment, error)

	// ListEquipment fetches several items concurrently, preserving order
	ListEquipment(ctx context.Context, keys []string) ([]*Equipment, error)
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate sets defaults and rejects negative durations
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	api dnd5e.Interface
}

// New creates a cached SRD client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{api: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func (c *client) GetRace(ctx context.Context, key string) (*Race, error) {
	if key == "" {
		return nil, errors.InvalidArgument("race key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "race lookup canceled")
	}

	race, err := c.api.GetRace(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get race").
			WithMeta("race", key)
	}
	if race == nil {
		return nil, errors.NotFoundf("race %s not found", key)
	}
	return convertRace(race), nil
}

func (c *client) GetEquipment(ctx context.Context, key string) (*Equipment, error) {
	if key == "" {
		return nil, errors.InvalidArgument("equipment key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "equipment lookup canceled")
	}

	slog.DebugContext(ctx, "fetching equipment", "equipment", key)
	item, err := c.api.GetEquipment(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment").
			WithMeta("equipment", key)
	}
	eq := convertEquipment(item)
	if eq == nil {
		return nil, errors.NotFoundf("equipment %s not found", key)
	}
	return eq, nil
}

func (c *client) ListEquipment(ctx context.Context, keys []string) ([]*Equipment, error) {
	out := make([]*Equipment, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			eq, err := c.GetEquipment(gctx, key)
			if err != nil {
				return err
			}
			out[i] = eq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func convertRace(race *entities.Race) *Race {
	out := &Race{
		ID:              race.Key,
		Name:            race.Name,
		Speed:           race.Speed,
		Size:            race.Size,
		SizeDescription: race.SizeDescription,
		AbilityBonuses:  make(map[string]int, len(race.AbilityBonuses)),
	}

	for _, b := range race.AbilityBonuses {
		if b == nil || b.AbilityScore == nil {
			continue
		}
		out.AbilityBonuses[b.AbilityScore.Key] = b.Bonus
	}
	for _, t := range race.Traits {
		out.Traits = append(out.Traits, t.Name)
	}
	for _, l := range race.Languages {
		out.Languages = append(out.Languages, l.Name)
	}
	for _, p := range race.StartingProficiencies {
		out.Proficiencies = append(out.Proficiencies, p.Name)
	}
	for _, s := range race.SubRaces {
		out.Subraces = append(out.Subraces, Subrace{ID: s.Key, Name: s.Name})
	}
	return out
}

func convertCost(c *entities.Cost) *Cost {
	if c == nil {
		return nil
	}
	return &Cost{Quantity: c.Quantity, Unit: c.Unit}
}

func convertEquipment(item dnd5e.EquipmentInterface) *Equipment {
	switch eq := item.(type) {
	case *entities.Weapon:
		if eq == nil {
			return nil
		}
		out := &Equipment{
			ID:             eq.Key,
			Name:           eq.Name,
			Type:           eq.GetType(),
			Weight:         eq.Weight,
			Cost:           convertCost(eq.Cost),
			WeaponCategory: eq.WeaponCategory,
			WeaponRange:    eq.WeaponRange,
		}
		if eq.EquipmentCategory != nil {
			out.Category = eq.EquipmentCategory.Key
		}
		if eq.Damage != nil {
			out.Damage = eq.Damage.DamageDice
			if eq.Damage.DamageType != nil {
				out.Damage += " " + strings.ToLower(eq.Damage.DamageType.Name)
			}
		}
		for _, p := range eq.Properties {
			out.Properties = append(out.Properties, p.Name)
		}
		return out

	case *entities.Armor:
		if eq == nil {
			return nil
		}
		out := &Equipment{
			ID:                  eq.Key,
			Name:                eq.Name,
			Type:                eq.GetType(),
			Weight:              eq.Weight,
			Cost:                convertCost(eq.Cost),
			ArmorCategory:       eq.ArmorCategory,
			StrengthMinimum:     eq.StrMinimum,
			StealthDisadvantage: eq.StealthDisadvantage,
		}
		if eq.EquipmentCategory != nil {
			out.Category = eq.EquipmentCategory.Key
		}
		if eq.ArmorClass != nil {
			out.ArmorClass = eq.ArmorClass.Base
			out.DexBonus = eq.ArmorClass.DexBonus
		}
		return out

	case *entities.Equipment:
		if eq == nil {
			return nil
		}
		out := &Equipment{
			ID:     eq.Key,
			Name:   eq.Name,
			Type:   eq.GetType(),
			Weight: eq.Weight,
			Cost:   convertCost(eq.Cost),
		}
		if eq.EquipmentCategory != nil {
			out.Category = eq.EquipmentCategory.Key
		}
		return out
	}
	return nil
}
