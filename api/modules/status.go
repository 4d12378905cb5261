package modules

import (
	"leaguehub/api/handlers"
	statusfetcher "leaguehub/fetcher/data/status"
)

func initializeStatusHandler(deps *ModuleDependencies) *handlers.StatusHandler {
	statusHandlerDeps := &handlers.StatusHandlerDependencies{
		StatusFetcher: statusfetcher.NewStatusFetcher(deps.client),
	}

	return handlers.NewStatusHandler(statusHandlerDeps)
}
