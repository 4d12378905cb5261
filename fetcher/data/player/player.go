package playerfetcher

import (
	"context"
	"fmt"
	"net/url"
)

// AuthGetter does authenticated calls on a routing host.
type AuthGetter interface {
	AuthGet(ctx context.Context, host string, path string, out any) error
}

// PlayerFetcher fetches summoner data from platform hosts and accounts from region hosts.
type PlayerFetcher struct {
	client AuthGetter
}

// NewPlayerFetcher creates a player fetcher.
func NewPlayerFetcher(client AuthGetter) *PlayerFetcher {
	return &PlayerFetcher{client: client}
}

// GetSummonerByPuuid gets a player summoner data on the platform.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, platform string, puuid string) (*SummonerByPuuid, error) {
	path := fmt.Sprintf("/lol/summoner/v4/summoners/by-puuid/%s", url.PathEscape(puuid))

	var summoner SummonerByPuuid
	if err := p.client.AuthGet(ctx, platform, path, &summoner); err != nil {
		return nil, err
	}

	return &summoner, nil
}

// GetAccountByPuuid gets a player riot id on the region.
func (p *PlayerFetcher) GetAccountByPuuid(ctx context.Context, region string, puuid string) (*Account, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-puuid/%s", url.PathEscape(puuid))

	var account Account
	if err := p.client.AuthGet(ctx, region, path, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
