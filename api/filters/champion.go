package filters

import "strings"

// URI params for the champion endpoints.
type ChampionURIParams struct {
	ChampionId string `uri:"championId" binding:"required"`
}

type GetChampionDataFilter struct {
	ChampionId string
}

func NewGetChampionDataFilter(pp *ChampionURIParams) *GetChampionDataFilter {
	return &GetChampionDataFilter{
		ChampionId: strings.TrimSpace(pp.ChampionId),
	}
}
