package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error onto an HTTP response. Every
// nested-entity handler funnels its failures through here so the
// taxonomy-to-status mapping lives in exactly one place.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Deal store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Deal store unavailable"})
	default:
		logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
