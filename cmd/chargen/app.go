package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-chargen/internal/clients/srd"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	characterorch "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook/content"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

const pingTimeout = 5 * time.Second

// needs selects which optional backends a command connects to
type needs struct {
	storage bool
	srd     bool
}

// app is the wired object graph for one command run
type app struct {
	bus     events.EventBus
	content *content.Content
	service character.Service
	srd     srd.Client

	closers []func() error
}

// Close releases backend connections
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Warn("failed to close backend", "error", err)
		}
	}
}

func (o *rootOptions) newApp(ctx context.Context, n needs) (*app, error) {
	cfg := o.cfg
	a := &app{bus: events.NewBus()}

	c, err := content.Default()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content tables")
	}
	a.content = c

	gen, err := generator.New(&generator.Config{
		Roller:        dice.DefaultRoller,
		EventBus:      a.bus,
		IDGenerator:   idgen.NewUUID("char"),
		Content:       c,
		AbilityMethod: cfg.Generator.AbilityMethod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	var repo characterrepo.Repository
	if n.storage && cfg.StorageEnabled() {
		client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis settings")
		}
		a.closers = append(a.closers, client.Close)

		if err := redisclient.Ping(ctx, client, pingTimeout); err != nil {
			a.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unavailable").
				WithMeta("addr", cfg.Redis.Addr)
		}

		repo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{
			Client: client,
			TTL:    cfg.Redis.CharacterTTL,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		slog.Debug("character storage enabled", "addr", cfg.Redis.Addr)
	}

	if n.srd {
		a.srd, err = srd.New(&srd.Config{
			BaseURL:     cfg.SRD.BaseURL,
			HTTPTimeout: cfg.SRD.Timeout,
			CacheTTL:    cfg.SRD.CacheTTL,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	svc, err := characterorch.New(&characterorch.Config{
		Generator:     gen,
		CharacterRepo: repo,
		SRDClient:     a.srd,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.service = svc

	return a, nil
}
