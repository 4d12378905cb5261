package filters

import "leaguehub/pkg/regions"

// URI params for the status endpoint.
type StatusURIParams struct {
	Platform string `uri:"platform" binding:"required"`
}

type GetStatusFilter struct {
	Platform string
}

func NewGetStatusFilter(pp *StatusURIParams) (*GetStatusFilter, error) {
	platform, err := regions.ParsePlatform(pp.Platform)
	if err != nil {
		return nil, err
	}

	return &GetStatusFilter{
		Platform: string(platform),
	}, nil
}
