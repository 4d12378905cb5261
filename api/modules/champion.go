package modules

import (
	"leaguehub/api/handlers"
	championservice "leaguehub/api/services/champion"
	"leaguehub/pkg/models/champion"
)

func initializeChampionHandler(deps *ModuleDependencies, module *Module) (*championservice.ChampionService, *handlers.ChampionHandler) {
	ttl := deps.Config.Cache.CatalogTTL

	championDeps := &championservice.ChampionServiceDeps{
		Source:       deps.assets,
		VersionCache: newStore[string](deps, module, ttl),
		ListCache:    newStore[*champion.Listing](deps, module, ttl),
		DetailCache:  newStore[*champion.Detail](deps, module, ttl),
		Logger:       deps.Logger,
	}

	championService := championservice.NewChampionService(championDeps)

	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}

	return championService, handlers.NewChampionHandler(championHandlerDeps)
}
