package routes

import (
	"context"
	"errors"
	"leaguehub/api/handlers"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	base   *gin.RouterGroup
	// The domain routes are served on /api and on the /api/v1 alias.
	groups []*gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	base := engine.Group("/api")
	return &Router{
		Engine: engine,
		base:   base,
		groups: []*gin.RouterGroup{base, base.Group("/v1")},
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.FeaturedHandler:
			r.registerFeaturedHandler(handler)
		case *handlers.StatusHandler:
			r.registerStatusHandler(handler)
		}
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	for _, group := range r.groups {
		champions := group.Group("/champions")
		{
			champions.GET("", handler.GetAllChampions)
			champions.GET("/:championId", handler.GetChampionData)
		}
	}
}

// Register the featured handler.
func (r *Router) registerFeaturedHandler(handler *handlers.FeaturedHandler) {
	for _, group := range r.groups {
		group.GET("/featured", handler.GetFeatured)
	}
}

// Register the health check and the platform status.
func (r *Router) registerStatusHandler(handler *handlers.StatusHandler) {
	r.base.GET("/health", handler.Health)
	for _, group := range r.groups {
		group.GET("/status/:platform", handler.GetPlatformStatus)
	}
}

// Run starts the router and shuts it down gracefully when the context is done.
func (r *Router) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// The featured aggregation may take a few seconds.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
