package handlers

import (
	"context"
	"errors"
	"leaguehub/api/dto"
	"leaguehub/fetcher/assets"
	"leaguehub/fetcher/requests"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy to a status and a error kind.
func respondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	c.JSON(status, body)
}

// respondInvalid is used for bad input.
func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   dto.InvalidRequestKind,
		Details: err.Error(),
	})
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		cfgErr       *requests.ConfigurationError
		upstreamErr  *requests.UpstreamError
		transportErr *requests.TransportError
		notFoundErr  *assets.NotFoundError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, dto.ErrorResponse{Error: dto.NotFoundKind, Details: err.Error()}
	case errors.As(err, &upstreamErr):
		return upstreamErr.StatusCode, dto.ErrorResponse{Error: dto.UpstreamErrorKind, Details: upstreamErr.Details()}
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ConfigurationErrorKind, Details: err.Error()}
	case errors.As(err, &transportErr):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: dto.TransportErrorKind, Details: err.Error()}
	case errors.Is(err, context.Canceled):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: dto.CanceledKind, Details: err.Error()}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: dto.InternalErrorKind, Details: err.Error()}
	}
}
