package components

import (
	"log/slog"

	"go.uber.org/fx"

	"dropdeck/internal/engine"
	"dropdeck/internal/infra/cache"
	"dropdeck/internal/infra/catalog"
	repo_impl "dropdeck/internal/infra/repository"
	"dropdeck/internal/pkg/config"
	"dropdeck/internal/usecase/commands"
	"dropdeck/internal/usecase/queries"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCache,
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(commands.CatalogGateway)),
			fx.As(new(queries.CatalogReader)),
			fx.As(new(engine.CatalogGateway)),
		),
		fx.Annotate(
			repo_impl.NewDropRepository,
			fx.As(new(commands.DropRepository)),
			fx.As(new(queries.DropReader)),
			fx.As(new(engine.DropStore)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
			fx.As(new(queries.SettingsReader)),
		),
	),
)

// NewCache picks the redis backend when an address is configured, otherwise the
// in-process one. Catalog reads survive either way; the cache is a read-through
// layer, not a source of truth.
func NewCache(cfg config.Config, logger *slog.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory cache", "error", err)
		return cache.NewMemoryCache()
	}
	logger.Info("redis catalog cache enabled", "addr", cfg.Redis.Addr)
	return redisCache
}

func NewCatalogClient(cfg config.Config, c cache.Cache) *catalog.Client {
	return catalog.NewClient(cfg.Catalog, c, cfg.Redis.CacheTTL)
}
