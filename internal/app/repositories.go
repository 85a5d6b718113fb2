package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/golf-scoring/internal/config"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	cacherepo "github.com/riskibarqy/golf-scoring/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-scoring/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

// Repositories is the store the services run against, already wrapped in the
// read-through cache when that is enabled.
type Repositories struct {
	Events  event.Repository
	Teams   team.Repository
	Players player.Repository
	Scores  score.Repository
	// Cache is nil when CACHE_ENABLED=false.
	Cache *basecache.Store
}

// OpenRepositories picks postgres when DB_URL is set and the in-memory store
// otherwise. The returned close func releases the database handle.
func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, func() error, error) {
	var (
		repos   Repositories
		closeFn = func() error { return nil }
	)

	if cfg.UsesPostgres() {
		db, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return Repositories{}, nil, err
		}
		closeFn = db.Close

		repos = Repositories{
			Events:  postgres.NewEventRepository(db),
			Teams:   postgres.NewTeamRepository(db),
			Players: postgres.NewPlayerRepository(db),
			Scores:  postgres.NewScoreRepository(db),
		}
		if cfg.SeedDemoData {
			logger.Warn("demo seed only applies to the in-memory store, skipping", "store", "postgres")
		}
		logger.Info("store ready", "store", "postgres", "db", dbNameFromURL(cfg.DBURL))
	} else {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			seed, err := memory.DemoSeed()
			if err != nil {
				return Repositories{}, nil, fmt.Errorf("load demo seed: %w", err)
			}
			if err := store.Load(seed); err != nil {
				return Repositories{}, nil, fmt.Errorf("apply demo seed: %w", err)
			}
		}

		repos = Repositories{
			Events:  memory.NewEventRepository(store),
			Teams:   memory.NewTeamRepository(store),
			Players: memory.NewPlayerRepository(store),
			Scores:  memory.NewScoreRepository(store),
		}
		logger.Info("store ready", "store", "memory", "seeded", cfg.SeedDemoData)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = Repositories{
			Events:  cacherepo.NewEventRepository(repos.Events, store),
			Teams:   cacherepo.NewTeamRepository(repos.Teams, store),
			Players: cacherepo.NewPlayerRepository(repos.Players, store),
			Scores:  cacherepo.NewScoreRepository(repos.Scores, store),
			Cache:   store,
		}
	}

	return repos, closeFn, nil
}
