package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/kingdom-randomizer/internal/catalog"
	"github.com/KirkDiggler/kingdom-randomizer/internal/config"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/notify"
	"github.com/KirkDiggler/kingdom-randomizer/internal/orchestrators/kingdom"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/clock"
	"github.com/KirkDiggler/kingdom-randomizer/internal/pkg/idgen"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
	redisclient "github.com/KirkDiggler/kingdom-randomizer/internal/redis"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

// app holds the wired dependencies of one CLI invocation
type app struct {
	catalog  catalog.Catalog
	service  kingdom.Service
	notifier *notify.BusNotifier
	client   redisclient.Client
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	client, err := connectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}

	repo, err := kingdomsession.NewRedisRepository(&kingdomsession.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	engine, err := randomizer.NewEngine(&randomizer.Config{Roller: dice.DefaultRoller})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	notifier, err := notify.NewBusNotifier(&notify.Config{EventBus: events.NewBus()})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	service, err := kingdom.NewOrchestrator(&kingdom.Config{
		Catalog:     cat,
		Engine:      engine,
		SessionRepo: repo,
		Notifier:    notifier,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &app{
		catalog:  cat,
		service:  service,
		notifier: notifier,
		client:   client,
	}, nil
}

func (a *app) Close() {
	if err := a.client.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}

// connectRedis dials addr, or starts an embedded server when addr is empty
func connectRedis(ctx context.Context, addr string) (redisclient.Client, error) {
	if addr == "" {
		slog.Debug("No redis address configured, using embedded store")
		embedded, err := redisclient.NewEmbedded()
		if err != nil {
			return nil, errors.Wrap(err, "failed to start embedded redis")
		}
		return embedded, nil
	}

	client, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis address")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis at "+addr)
	}
	return client, nil
}
