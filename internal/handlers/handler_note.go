package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// noteHandler handles HTTP requests for a deal's notes.
type noteHandler struct {
	dealService portssvc.NoteWriterSvc
}

// registerNoteRoutes registers note routes under the deals group.
func registerNoteRoutes(deals *gin.RouterGroup, dealService portssvc.NoteWriterSvc) {
	h := &noteHandler{dealService: dealService}

	notes := deals.Group("/:dealID/notes")
	{
		notes.POST("", h.addNote)
		notes.PATCH("/:noteID", h.updateNote)
		notes.DELETE("/:noteID", h.removeNote)
	}
}

// addNote godoc
// @Summary Annotate a deal
// @Description Adds a note; private notes do not record a timeline event
// @Tags notes
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param note body dto.AddNoteRequest true "Note details"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/notes [post]
func (h *noteHandler) addNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	note, err := h.dealService.AddNote(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Note added successfully",
		slog.String("deal_id", dealID),
		slog.String("note_id", note.NoteID))
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// updateNote godoc
// @Summary Update a note
// @Description Replaces the note text and marks the creation-time label as edited
// @Tags notes
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param noteID path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Replacement text"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or note not found"
// @Security BearerAuth
// @Router /deals/{dealID}/notes/{noteID} [patch]
func (h *noteHandler) updateNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	noteID := c.Param("noteID")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	note, err := h.dealService.UpdateNote(c.Request.Context(), dealID, noteID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal or note not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// removeNote godoc
// @Summary Remove a note from a deal
// @Tags notes
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param noteID path string true "Note ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or note not found"
// @Security BearerAuth
// @Router /deals/{dealID}/notes/{noteID} [delete]
func (h *noteHandler) removeNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	noteID := c.Param("noteID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.dealService.RemoveNote(c.Request.Context(), dealID, noteID, userID); err != nil {
		writeServiceError(c, logger, err, "Deal or note not found")
		return
	}

	c.Status(http.StatusNoContent)
}
