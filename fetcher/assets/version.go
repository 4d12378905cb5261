package assets

import (
	"context"
	"strings"
)

// Getter does unauthenticated JSON calls.
type Getter interface {
	Get(ctx context.Context, url string, out any) error
}

// Assets fetches the static data CDN.
type Assets struct {
	client  Getter
	baseURL string
	locale  string
}

// NewAssets creates the CDN fetcher for a base url and a data locale.
func NewAssets(client Getter, baseURL string, locale string) *Assets {
	return &Assets{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  locale,
	}
}

// Locale returns the data locale.
func (a *Assets) Locale() string {
	return a.locale
}

// GetVersions gets all the versions, latest first.
func (a *Assets) GetVersions(ctx context.Context) ([]string, error) {
	var versions []string
	if err := a.client.Get(ctx, a.baseURL+"/api/versions.json", &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetLatestVersion gets the first version of the feed.
// An empty feed results in the "latest" alias.
func (a *Assets) GetLatestVersion(ctx context.Context) (string, error) {
	versions, err := a.GetVersions(ctx)
	if err != nil {
		return "", err
	}

	if len(versions) == 0 || versions[0] == "" {
		return LatestVersion, nil
	}

	return versions[0], nil
}
