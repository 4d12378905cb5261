package handlers

import (
	"context"
	"leaguehub/api/dto"
	"leaguehub/api/filters"
	"leaguehub/pkg/models/featured"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeaturedService is what the featured handler needs from the aggregator.
type FeaturedService interface {
	GetFeatured(ctx context.Context, filter *filters.FeaturedFilter) (*featured.Result, bool, error)
}

// FeaturedHandler is the handler for the featured players.
type FeaturedHandler struct {
	featuredService FeaturedService
}

type FeaturedHandlerDependencies struct {
	FeaturedService FeaturedService
}

// NewFeaturedHandler creates a new instance of the featured handler.
func NewFeaturedHandler(deps *FeaturedHandlerDependencies) *FeaturedHandler {
	return &FeaturedHandler{
		featuredService: deps.FeaturedService,
	}
}

// GetFeatured is the handler for the top players of a platform.
func (h *FeaturedHandler) GetFeatured(c *gin.Context) {
	var qp filters.FeaturedQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondInvalid(c, err)
		return
	}

	filter, err := filters.NewFeaturedFilter(&qp)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	result, cached, err := h.featuredService.GetFeatured(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFeaturedResponse(result, cached))
}
