package jobs

import (
	"context"
	"leaguehub/pkg/models/champion"
	"time"

	"go.uber.org/zap"
)

// CatalogWarmer refetches the catalog into the caches.
type CatalogWarmer interface {
	Warm(ctx context.Context) (*champion.Listing, error)
}

// WarmCatalog refreshes the catalog caches ahead of their expiration.
func WarmCatalog(ctx context.Context, warmer CatalogWarmer, logger *zap.Logger) error {
	logger.Info("Starting catalog warmup")
	startTime := time.Now()

	listing, err := warmer.Warm(ctx)
	if err != nil {
		logger.Warn("Catalog warmup failed", zap.Error(err))
		return err
	}

	logger.Info("Catalog warmup completed",
		zap.String("version", listing.Version),
		zap.Int("count", listing.Count),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}
