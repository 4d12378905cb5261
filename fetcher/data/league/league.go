package leaguefetcher

import (
	"context"
	"fmt"
	"strings"
)

// AuthGetter does authenticated calls on a routing host.
type AuthGetter interface {
	AuthGet(ctx context.Context, host string, path string, out any) error
}

// LeagueFetcher fetches the league endpoints of a platform.
type LeagueFetcher struct {
	client AuthGetter
}

// NewLeagueFetcher creates a league fetcher.
func NewLeagueFetcher(client AuthGetter) *LeagueFetcher {
	return &LeagueFetcher{client: client}
}

// GetHighEloLeague gets a high elo league (challenger, grandmaster or master) for a queue.
func (l *LeagueFetcher) GetHighEloLeague(ctx context.Context, platform string, division string, queue string) (*HighEloLeagueEntry, error) {
	path := fmt.Sprintf("/lol/league/v4/%sleagues/by-queue/%s", strings.ToLower(division), queue)

	var league HighEloLeagueEntry
	if err := l.client.AuthGet(ctx, platform, path, &league); err != nil {
		return nil, err
	}

	return &league, nil
}

// GetChallengerLeague gets the challenger leaderboard for a queue.
func (l *LeagueFetcher) GetChallengerLeague(ctx context.Context, platform string, queue string) (*HighEloLeagueEntry, error) {
	return l.GetHighEloLeague(ctx, platform, "challenger", queue)
}
