package handlers

import (
	"context"
	"encoding/json"
	"leaguehub/api/filters"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusFetcher gets the status document of a platform.
type StatusFetcher interface {
	GetPlatformData(ctx context.Context, platform string) (json.RawMessage, error)
}

// StatusHandler is the handler for the platform status and the health check.
type StatusHandler struct {
	statusFetcher StatusFetcher
}

type StatusHandlerDependencies struct {
	StatusFetcher StatusFetcher
}

// NewStatusHandler creates a new instance of the status handler.
func NewStatusHandler(deps *StatusHandlerDependencies) *StatusHandler {
	return &StatusHandler{
		statusFetcher: deps.StatusFetcher,
	}
}

// Health returns ok while the server is up.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetPlatformStatus returns the platform status document as it comes.
func (h *StatusHandler) GetPlatformStatus(c *gin.Context) {
	var pp filters.StatusURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		respondInvalid(c, err)
		return
	}

	filter, err := filters.NewGetStatusFilter(&pp)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	data, err := h.statusFetcher.GetPlatformData(c.Request.Context(), filter.Platform)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
