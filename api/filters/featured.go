package filters

import (
	"leaguehub/pkg/regions"
	queuevalues "leaguehub/pkg/riotvalues/queue"
	"strconv"
	"strings"
)

// Bounds of the featured players limit.
const (
	DefaultFeaturedLimit = 10
	MinFeaturedLimit     = 1
	MaxFeaturedLimit     = 20
)

// Query parameters for the featured players.
// The limit is kept as text, so a non numeric value falls back to the default instead of failing.
type FeaturedQueryParams struct {
	Platform string `form:"platform"`
	Queue    string `form:"queue"`
	Limit    string `form:"limit"`
}

// FeaturedFilter is the normalized featured query.
type FeaturedFilter struct {
	Platform string
	Queue    string
	Limit    int
}

// NewFeaturedFilter normalizes the query, a unknown platform or queue is an error.
func NewFeaturedFilter(qp *FeaturedQueryParams) (*FeaturedFilter, error) {
	platform, err := regions.ParsePlatform(qp.Platform)
	if err != nil {
		return nil, err
	}

	queue, err := queuevalues.ResolveRankedQueue(qp.Queue)
	if err != nil {
		return nil, err
	}

	return &FeaturedFilter{
		Platform: string(platform),
		Queue:    queue,
		Limit:    ClampLimit(qp.Limit),
	}, nil
}

// ClampLimit parses the limit and clamps it to [1, 20], absent or non numeric is 10.
func ClampLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultFeaturedLimit
	}

	return min(max(limit, MinFeaturedLimit), MaxFeaturedLimit)
}
