package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// participantHandler handles HTTP requests for a deal's participants.
type participantHandler struct {
	dealService portssvc.ParticipantWriterSvc
}

// registerParticipantRoutes registers participant routes under the deals group.
func registerParticipantRoutes(deals *gin.RouterGroup, dealService portssvc.ParticipantWriterSvc) {
	h := &participantHandler{dealService: dealService}

	participants := deals.Group("/:dealID/participants")
	{
		participants.POST("", h.addParticipant)
		participants.PATCH("/:participantID", h.updateParticipant)
		participants.DELETE("/:participantID", h.removeParticipant)
	}
}

// addParticipant godoc
// @Summary Add a participant to a deal
// @Description Adds a party to the deal and records a timeline event
// @Tags participants
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param participant body dto.AddParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/participants [post]
func (h *participantHandler) addParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	participant, err := h.dealService.AddParticipant(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Participant added successfully",
		slog.String("deal_id", dealID),
		slog.String("participant_id", participant.ParticipantID))
	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// updateParticipant godoc
// @Summary Update a participant
// @Description Shallow-merges fields onto the existing participant
// @Tags participants
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param participantID path string true "Participant ID"
// @Param participant body dto.UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or participant not found"
// @Security BearerAuth
// @Router /deals/{dealID}/participants/{participantID} [patch]
func (h *participantHandler) updateParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	participantID := c.Param("participantID")

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	participant, err := h.dealService.UpdateParticipant(c.Request.Context(), dealID, participantID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal or participant not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// removeParticipant godoc
// @Summary Remove a participant from a deal
// @Description Removes the party and records a timeline event
// @Tags participants
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param participantID path string true "Participant ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or participant not found"
// @Security BearerAuth
// @Router /deals/{dealID}/participants/{participantID} [delete]
func (h *participantHandler) removeParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	participantID := c.Param("participantID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.dealService.RemoveParticipant(c.Request.Context(), dealID, participantID, userID); err != nil {
		writeServiceError(c, logger, err, "Deal or participant not found")
		return
	}

	c.Status(http.StatusNoContent)
}
