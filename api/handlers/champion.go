package handlers

import (
	"context"
	"leaguehub/api/dto"
	"leaguehub/api/filters"
	"leaguehub/pkg/models/champion"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChampionService is what the champion handler needs from the catalog.
type ChampionService interface {
	ListSummaries(ctx context.Context) (*champion.Listing, bool, error)
	GetDetail(ctx context.Context, championId string) (*champion.Detail, bool, error)
}

// ChampionHandler is the handler for the champion endpoints.
type ChampionHandler struct {
	ChampionService ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService ChampionService
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		ChampionService: deps.ChampionService,
	}
}

// Helper to bind the default URI params for champions.
func (h *ChampionHandler) bindURIParams(c *gin.Context) (*filters.ChampionURIParams, error) {
	var mp filters.ChampionURIParams
	if err := c.ShouldBindUri(&mp); err != nil {
		return nil, err
	}
	return &mp, nil
}

// GetChampionData is the handler to return the full record of a champion.
func (h *ChampionHandler) GetChampionData(c *gin.Context) {
	pp, err := h.bindURIParams(c)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	filters := filters.NewGetChampionDataFilter(pp)

	detail, cached, err := h.ChampionService.GetDetail(c.Request.Context(), filters.ChampionId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChampionDetailResponse(detail, cached))
}

// GetAllChampions is the handler to return the sorted catalog.
func (h *ChampionHandler) GetAllChampions(c *gin.Context) {
	listing, cached, err := h.ChampionService.ListSummaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChampionListResponse(listing, cached))
}
