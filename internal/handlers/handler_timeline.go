package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timelineHandler handles HTTP requests for a deal's audit trail.
type timelineHandler struct {
	dealService portssvc.TimelineSvc
}

// registerTimelineRoutes registers timeline routes under the deals group.
func registerTimelineRoutes(deals *gin.RouterGroup, dealService portssvc.TimelineSvc) {
	h := &timelineHandler{dealService: dealService}

	timeline := deals.Group("/:dealID/timeline")
	{
		timeline.GET("", h.listTimeline)
		timeline.POST("", h.addTimelineEvent)
	}
}

// listTimeline godoc
// @Summary List a deal's timeline
// @Description Returns the audit trail in insertion order
// @Tags timeline
// @Produce json
// @Param dealID path string true "Deal ID"
// @Success 200 {array} dto.TimelineEventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/timeline [get]
func (h *timelineHandler) listTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	events, err := h.dealService.ListTimeline(c.Request.Context(), dealID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimelineEventResponse(events))
}

// addTimelineEvent godoc
// @Summary Record a timeline event
// @Description Appends a caller-supplied audit event to the deal's timeline
// @Tags timeline
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param event body dto.AddTimelineEventRequest true "Event details"
// @Success 201 {object} dto.TimelineEventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/timeline [post]
func (h *timelineHandler) addTimelineEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.AddTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTimelineEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.dealService.AddTimelineEvent(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Timeline event added",
		slog.String("deal_id", dealID),
		slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToTimelineEventResponse(event))
}
