package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for a deal's documents.
type documentHandler struct {
	dealService portssvc.DocumentWriterSvc
}

// registerDocumentRoutes registers document routes under the deals group.
func registerDocumentRoutes(deals *gin.RouterGroup, dealService portssvc.DocumentWriterSvc) {
	h := &documentHandler{dealService: dealService}

	documents := deals.Group("/:dealID/documents")
	{
		documents.POST("", h.addDocument)
		documents.PATCH("/:documentID", h.updateDocument)
		documents.DELETE("/:documentID", h.removeDocument)
	}
}

// addDocument godoc
// @Summary Attach a document to a deal
// @Description Attaches a document and records a timeline event
// @Tags documents
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param document body dto.AddDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/documents [post]
func (h *documentHandler) addDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	document, err := h.dealService.AddDocument(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Document added successfully",
		slog.String("deal_id", dealID),
		slog.String("document_id", document.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(document))
}

// updateDocument godoc
// @Summary Update a document
// @Description Shallow-merges fields; a genuine status change records a timeline event
// @Tags documents
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param documentID path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or document not found"
// @Security BearerAuth
// @Router /deals/{dealID}/documents/{documentID} [patch]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	documentID := c.Param("documentID")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	document, err := h.dealService.UpdateDocument(c.Request.Context(), dealID, documentID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal or document not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// removeDocument godoc
// @Summary Remove a document from a deal
// @Description Removes the document and records a timeline event
// @Tags documents
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param documentID path string true "Document ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or document not found"
// @Security BearerAuth
// @Router /deals/{dealID}/documents/{documentID} [delete]
func (h *documentHandler) removeDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	documentID := c.Param("documentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.dealService.RemoveDocument(c.Request.Context(), dealID, documentID, userID); err != nil {
		writeServiceError(c, logger, err, "Deal or document not found")
		return
	}

	c.Status(http.StatusNoContent)
}
