package featuredservice

import (
	"context"
	"leaguehub/api/cache"
	"leaguehub/api/filters"
	leaguefetcher "leaguehub/fetcher/data/league"
	playerfetcher "leaguehub/fetcher/data/player"
	"leaguehub/fetcher/throttle"
	"leaguehub/pkg/models/featured"
	"leaguehub/pkg/regions"
	tiervalues "leaguehub/pkg/riotvalues/tier"
	"sort"

	"go.uber.org/zap"
)

// LeaderboardFetcher gets the ranked leaderboard of a platform.
type LeaderboardFetcher interface {
	GetChallengerLeague(ctx context.Context, platform string, queue string) (*leaguefetcher.HighEloLeagueEntry, error)
}

// PlayerFetcher does the two lookups of each featured player.
type PlayerFetcher interface {
	GetSummonerByPuuid(ctx context.Context, platform string, puuid string) (*playerfetcher.SummonerByPuuid, error)
	GetAccountByPuuid(ctx context.Context, region string, puuid string) (*playerfetcher.Account, error)
}

// VersionResolver gives the catalog version used on the profile icons.
type VersionResolver interface {
	ResolveVersion(ctx context.Context) (string, error)
}

// ProfileIcons builds the profile icon url.
type ProfileIcons interface {
	ProfileIconURL(version string, iconId int) string
}

// FeaturedService aggregates the top of the leaderboard with the player lookups.
type FeaturedService struct {
	leagues  LeaderboardFetcher
	players  PlayerFetcher
	versions VersionResolver
	icons    ProfileIcons
	throttle throttle.Throttle
	cache    *cache.Store[*featured.Result]
	logger   *zap.Logger
}

// FeaturedServiceDeps is the dependency list for the featured service.
type FeaturedServiceDeps struct {
	Leagues LeaderboardFetcher
	Players PlayerFetcher
	// Versions and Icons are optional, without them no icon url is set.
	Versions VersionResolver
	Icons    ProfileIcons
	Throttle throttle.Throttle
	Cache    *cache.Store[*featured.Result]
	Logger   *zap.Logger
}

// NewFeaturedService creates a featured service.
func NewFeaturedService(deps *FeaturedServiceDeps) *FeaturedService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	t := deps.Throttle
	if t == nil {
		t = throttle.NewFixedDelay(throttle.DefaultDelay)
	}

	return &FeaturedService{
		leagues:  deps.Leagues,
		players:  deps.Players,
		versions: deps.Versions,
		icons:    deps.Icons,
		throttle: t,
		cache:    deps.Cache,
		logger:   logger.Named("featured"),
	}
}

// GetFeatured returns the featured players of a platform and queue and if it came from the cache.
// Any failure aborts the whole aggregation, nothing partial is returned or cached.
// Concurrent identical requests share one aggregation, it stops once all of them have gone.
func (fs *FeaturedService) GetFeatured(ctx context.Context, filter *filters.FeaturedFilter) (*featured.Result, bool, error) {
	key := cache.FeaturedKey(filter.Platform, filter.Queue, filter.Limit)

	return fs.cache.GetOrLoad(ctx, key, func(ctx context.Context) (*featured.Result, error) {
		result, err := fs.aggregate(ctx, filter)
		if err != nil {
			fs.logger.Warn("Featured aggregation failed",
				zap.String("platform", filter.Platform),
				zap.String("queue", filter.Queue),
				zap.Error(err),
			)
			return nil, err
		}
		return result, nil
	})
}

// aggregate runs the leaderboard fetch and the sequential player lookups.
func (fs *FeaturedService) aggregate(ctx context.Context, filter *filters.FeaturedFilter) (*featured.Result, error) {
	league, err := fs.leagues.GetChallengerLeague(ctx, filter.Platform, filter.Queue)
	if err != nil {
		return nil, err
	}

	top := TopEntries(league.Tier, league.Entries, filter.Limit)
	region := regions.RegionFor(regions.Platform(filter.Platform)).Host()
	iconVersion := fs.iconVersion(ctx)

	players := make([]featured.Player, 0, len(top))
	for i, entry := range top {
		// Space the consecutive entries.
		if i > 0 {
			if err := fs.throttle.Wait(ctx); err != nil {
				return nil, err
			}
		}

		summoner, err := fs.players.GetSummonerByPuuid(ctx, filter.Platform, entry.Puuid)
		if err != nil {
			return nil, err
		}

		account, err := fs.players.GetAccountByPuuid(ctx, region, entry.Puuid)
		if err != nil {
			return nil, err
		}

		players = append(players, fs.mergePlayer(entry, summoner, account, iconVersion))
	}

	fs.logger.Debug("Featured aggregation done",
		zap.String("platform", filter.Platform),
		zap.String("region", region),
		zap.Int("count", len(players)),
	)

	return &featured.Result{
		Platform: filter.Platform,
		Queue:    filter.Queue,
		Count:    len(players),
		Players:  players,
	}, nil
}

// iconVersion resolves the catalog version, an empty string disables the icon urls.
func (fs *FeaturedService) iconVersion(ctx context.Context) string {
	if fs.versions == nil || fs.icons == nil {
		return ""
	}

	version, err := fs.versions.ResolveVersion(ctx)
	if err != nil {
		fs.logger.Debug("No catalog version for the profile icons", zap.Error(err))
		return ""
	}

	return version
}

// mergePlayer creates the featured player from the entry and the two lookups.
func (fs *FeaturedService) mergePlayer(entry featured.LeaderboardEntry, summoner *playerfetcher.SummonerByPuuid, account *playerfetcher.Account, iconVersion string) featured.Player {
	player := featured.Player{
		Puuid:         entry.Puuid,
		RiotId:        account.RiotId(),
		ProfileIconId: summoner.ProfileIconId,
		SummonerLevel: summoner.SummonerLevel,
		LeaguePoints:  entry.LeaguePoints,
		Wins:          entry.Wins,
		Losses:        entry.Losses,
		Rank:          entry.Rank,
		RankTier:      entry.RankTier,
		HotStreak:     entry.HotStreak,
	}

	if iconVersion != "" {
		player.ProfileIconURL = fs.icons.ProfileIconURL(iconVersion, summoner.ProfileIconId)
	}

	return player
}

// TopEntries sorts the entries by league points, equal points keep their order, and takes the first limit.
func TopEntries(tier string, entries []leaguefetcher.LeagueEntry, limit int) []featured.LeaderboardEntry {
	sorted := make([]featured.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		sorted = append(sorted, toLeaderboardEntry(tier, entry))
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LeaguePoints > sorted[j].LeaguePoints
	})

	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// toLeaderboardEntry converts a raw league entry.
// The tier comes from the league, entries only carry it on the non apex endpoints.
func toLeaderboardEntry(tier string, entry leaguefetcher.LeagueEntry) featured.LeaderboardEntry {
	rank := ""
	if entry.Rank != nil {
		rank = *entry.Rank
	}
	if entry.Tier != nil {
		tier = *entry.Tier
	}

	return featured.LeaderboardEntry{
		Puuid:        entry.Puuid,
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		Rank:         rank,
		RankTier:     tiervalues.FormatRankTier(tier, rank),
		HotStreak:    entry.HotStreak,
	}
}
