package dto

import "leaguehub/pkg/models/champion"

// ChampionListResponse is the catalog listing payload.
type ChampionListResponse struct {
	Ok        bool               `json:"ok"`
	Version   string             `json:"version"`
	Count     int                `json:"count"`
	Champions []champion.Summary `json:"champions"`
	Cached    bool               `json:"cached"`
}

// NewChampionListResponse creates the listing payload.
func NewChampionListResponse(listing *champion.Listing, cached bool) ChampionListResponse {
	return ChampionListResponse{
		Ok:        true,
		Version:   listing.Version,
		Count:     listing.Count,
		Champions: listing.Champions,
		Cached:    cached,
	}
}

// ChampionDetailResponse is the single champion payload.
type ChampionDetailResponse struct {
	Ok       bool             `json:"ok"`
	Version  string           `json:"version"`
	Champion *champion.Detail `json:"champion"`
	Cached   bool             `json:"cached"`
}

// NewChampionDetailResponse creates the detail payload.
func NewChampionDetailResponse(detail *champion.Detail, cached bool) ChampionDetailResponse {
	return ChampionDetailResponse{
		Ok:       true,
		Version:  detail.Version,
		Champion: detail,
		Cached:   cached,
	}
}
