package statusfetcher

import (
	"context"
	"encoding/json"
)

// AuthGetter does authenticated calls on a routing host.
type AuthGetter interface {
	AuthGet(ctx context.Context, host string, path string, out any) error
}

// StatusFetcher fetches the platform status.
type StatusFetcher struct {
	client AuthGetter
}

// NewStatusFetcher creates a status fetcher.
func NewStatusFetcher(client AuthGetter) *StatusFetcher {
	return &StatusFetcher{client: client}
}

// GetPlatformData returns the raw platform status document.
func (s *StatusFetcher) GetPlatformData(ctx context.Context, platform string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.client.AuthGet(ctx, platform, "/lol/status/v4/platform-data", &data); err != nil {
		return nil, err
	}
	return data, nil
}
