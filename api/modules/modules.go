package modules

import (
	"leaguehub/api/cache"
	"leaguehub/api/handlers"
	championservice "leaguehub/api/services/champion"
	featuredservice "leaguehub/api/services/featured"
	"leaguehub/fetcher/assets"
	"leaguehub/fetcher/requests"
	"leaguehub/pkg/config"
	"leaguehub/pkg/redis"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ModuleDependencies is what every module is built from.
type ModuleDependencies struct {
	Config *config.Config
	Logger *zap.Logger
	// Redis is optional, nil keeps every cache in memory.
	Redis *redis.RedisClient
	// HttpClient is optional, used by tests.
	HttpClient *http.Client

	client *requests.Client
	assets *assets.Assets
	remote cache.RemoteCache
}

// Module containing the necessary services and handlers.
type Module struct {
	ChampionService *championservice.ChampionService
	FeaturedService *featuredservice.FeaturedService
	ChampionHandler *handlers.ChampionHandler
	FeaturedHandler *handlers.FeaturedHandler
	StatusHandler   *handlers.StatusHandler

	closers []func()
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	// Only authenticated calls are rate limited.
	var limiter requests.Limiter
	if deps.Config.Limits.Enabled {
		limiter = requests.NewRateLimiter(deps.Config.Limits.Lower, deps.Config.Limits.Higher)
	}

	deps.client = requests.NewClient(&requests.ClientDeps{
		ApiKey:     deps.Config.Riot.ApiKey,
		URLFormat:  deps.Config.Riot.URLFormat,
		Timeout:    deps.Config.Upstream.Timeout,
		Limiter:    limiter,
		HttpClient: deps.HttpClient,
	})
	deps.assets = assets.NewAssets(deps.client, deps.Config.DDragon.BaseURL, deps.Config.DDragon.Locale)

	// Avoid a typed nil on the interface.
	if deps.Redis != nil {
		deps.remote = deps.Redis
	}

	module := &Module{}
	module.ChampionService, module.ChampionHandler = initializeChampionHandler(deps, module)
	module.FeaturedService, module.FeaturedHandler = initializeFeaturedHandler(deps, module)
	module.StatusHandler = initializeStatusHandler(deps)

	return module
}

// Handlers returns every handler for the router.
func (m *Module) Handlers() []any {
	return []any{m.ChampionHandler, m.FeaturedHandler, m.StatusHandler}
}

// Close stops the cache workers.
func (m *Module) Close() {
	for _, closer := range m.closers {
		closer()
	}
}

// newStore creates a store with the shared settings and registers it for closing.
func newStore[T any](deps *ModuleDependencies, module *Module, ttl time.Duration) *cache.Store[T] {
	store := cache.NewStore[T](&cache.StoreDeps{
		Remote:  deps.remote,
		TTL:     ttl,
		Logger:  deps.Logger,
		Options: []cache.Option{cache.WithSweepInterval(deps.Config.Cache.SweepInterval)},
	})
	module.closers = append(module.closers, store.Close)
	return store
}
