package modules

import (
	"leaguehub/api/handlers"
	featuredservice "leaguehub/api/services/featured"
	leaguefetcher "leaguehub/fetcher/data/league"
	playerfetcher "leaguehub/fetcher/data/player"
	"leaguehub/fetcher/throttle"
	"leaguehub/pkg/models/featured"
)

func initializeFeaturedHandler(deps *ModuleDependencies, module *Module) (*featuredservice.FeaturedService, *handlers.FeaturedHandler) {
	featuredDeps := &featuredservice.FeaturedServiceDeps{
		Leagues:  leaguefetcher.NewLeagueFetcher(deps.client),
		Players:  playerfetcher.NewPlayerFetcher(deps.client),
		Versions: module.ChampionService,
		Icons:    deps.assets,
		Throttle: throttle.NewFixedDelay(deps.Config.Throttle.Delay),
		Cache:    newStore[*featured.Result](deps, module, deps.Config.Cache.FeaturedTTL),
		Logger:   deps.Logger,
	}

	featuredService := featuredservice.NewFeaturedService(featuredDeps)

	featuredHandlerDeps := &handlers.FeaturedHandlerDependencies{
		FeaturedService: featuredService,
	}

	return featuredService, handlers.NewFeaturedHandler(featuredHandlerDeps)
}
