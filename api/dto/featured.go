package dto

import "leaguehub/pkg/models/featured"

// FeaturedResponse is the featured players payload.
type FeaturedResponse struct {
	Ok       bool              `json:"ok"`
	Platform string            `json:"platform"`
	Queue    string            `json:"queue"`
	Count    int               `json:"count"`
	Players  []featured.Player `json:"players"`
	Cached   bool              `json:"cached"`
}

func NewFeaturedResponse(result *featured.Result, cached bool) FeaturedResponse {
	return FeaturedResponse{
		Ok:       true,
		Platform: result.Platform,
		Queue:    result.Queue,
		Count:    result.Count,
		Players:  result.Players,
		Cached:   cached,
	}
}
