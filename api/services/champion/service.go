package championservice

import (
	"context"
	"leaguehub/api/cache"
	"leaguehub/pkg/models/champion"

	"go.uber.org/zap"
)

// CatalogSource is the upstream side of the catalog.
type CatalogSource interface {
	GetLatestVersion(ctx context.Context) (string, error)
	GetChampionSummaries(ctx context.Context, version string) ([]champion.Summary, error)
	GetChampionDetail(ctx context.Context, version string, championId string) (*champion.Detail, error)
}

// ChampionService resolves the catalog version, listing and details through the caches.
type ChampionService struct {
	source       CatalogSource
	versionCache *cache.Store[string]
	listCache    *cache.Store[*champion.Listing]
	detailCache  *cache.Store[*champion.Detail]
	warmGroup    cache.Group[*champion.Listing]
	logger       *zap.Logger
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	Source       CatalogSource
	VersionCache *cache.Store[string]
	ListCache    *cache.Store[*champion.Listing]
	DetailCache  *cache.Store[*champion.Detail]
	Logger       *zap.Logger
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChampionService{
		source:       deps.Source,
		versionCache: deps.VersionCache,
		listCache:    deps.ListCache,
		detailCache:  deps.DetailCache,
		logger:       logger.Named("champion"),
	}
}

// ResolveVersion returns the current catalog version.
// Any failure is returned, nothing on the catalog works without a version.
func (cs *ChampionService) ResolveVersion(ctx context.Context) (string, error) {
	version, _, err := cs.versionCache.GetOrLoad(ctx, cache.CatalogVersionKey, cs.fetchVersion)
	return version, err
}

// fetchVersion gets the latest version from the upstream.
func (cs *ChampionService) fetchVersion(ctx context.Context) (string, error) {
	version, err := cs.source.GetLatestVersion(ctx)
	if err != nil {
		cs.logger.Warn("Failed to resolve the catalog version", zap.Error(err))
		return "", err
	}

	cs.logger.Debug("Catalog version resolved", zap.String("version", version))
	return version, nil
}

// ListSummaries returns the sorted catalog and if it came from the cache.
func (cs *ChampionService) ListSummaries(ctx context.Context) (*champion.Listing, bool, error) {
	return cs.listCache.GetOrLoad(ctx, cache.CatalogListKey, func(ctx context.Context) (*champion.Listing, error) {
		version, err := cs.ResolveVersion(ctx)
		if err != nil {
			return nil, err
		}
		return cs.fetchListing(ctx, version)
	})
}

// fetchListing gets the catalog of a version from the upstream.
func (cs *ChampionService) fetchListing(ctx context.Context, version string) (*champion.Listing, error) {
	summaries, err := cs.source.GetChampionSummaries(ctx, version)
	if err != nil {
		cs.logger.Warn("Failed to fetch the catalog", zap.String("version", version), zap.Error(err))
		return nil, err
	}

	listing := &champion.Listing{
		Version:   version,
		Count:     len(summaries),
		Champions: summaries,
	}
	cs.logger.Debug("Catalog fetched", zap.String("version", version), zap.Int("count", listing.Count))

	return listing, nil
}

// GetDetail returns the full record of a champion and if it came from the cache.
func (cs *ChampionService) GetDetail(ctx context.Context, championId string) (*champion.Detail, bool, error) {
	return cs.detailCache.GetOrLoad(ctx, cache.CatalogDetailKey(championId), func(ctx context.Context) (*champion.Detail, error) {
		version, err := cs.ResolveVersion(ctx)
		if err != nil {
			return nil, err
		}

		detail, err := cs.source.GetChampionDetail(ctx, version, championId)
		if err != nil {
			cs.logger.Debug("Failed to fetch the champion", zap.String("championId", championId), zap.Error(err))
			return nil, err
		}
		return detail, nil
	})
}

// Warm refetches the version and the catalog, replacing the cached ones.
func (cs *ChampionService) Warm(ctx context.Context) (*champion.Listing, error) {
	return cs.warmGroup.Do(ctx, "warm", func(ctx context.Context) (*champion.Listing, error) {
		version, err := cs.fetchVersion(ctx)
		if err != nil {
			return nil, err
		}

		listing, err := cs.fetchListing(ctx, version)
		if err != nil {
			return nil, err
		}

		cs.versionCache.Set(ctx, cache.CatalogVersionKey, version)
		cs.listCache.Set(ctx, cache.CatalogListKey, listing)
		return listing, nil
	})
}
