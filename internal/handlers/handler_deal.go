package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dealHandler handles HTTP requests for the deal collection itself.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(ds portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{dealService: ds}
}

// registerDealRoutes registers routes related to deals and the selection.
func registerDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := newDealHandler(dealService)

	deals := rg.Group("/deals")
	{
		deals.GET("", h.listDeals)
		deals.POST("", h.createDeal)
		deals.POST("/refresh", h.refreshDeals)
		deals.GET("/state", h.getStoreState)
		deals.GET("/selection", h.getSelection)
		deals.PUT("/selection", h.selectDeal)
		deals.DELETE("/selection", h.clearSelection)
		deals.GET("/:dealID", h.getDeal)
		deals.PATCH("/:dealID", h.updateDeal)
		deals.DELETE("/:dealID", h.deleteDeal)
	}

	registerParticipantRoutes(deals, dealService)
	registerDocumentRoutes(deals, dealService)
	registerTaskRoutes(deals, dealService)
	registerNoteRoutes(deals, dealService)
	registerTimelineRoutes(deals, dealService)
}

// listDeals godoc
// @Summary List deals
// @Description Returns a paginated snapshot of the current deal collection
// @Tags deals
// @Produce json
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListDealsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDealsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDeals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	deals := h.dealService.ListDeals(c.Request.Context(), params)
	c.JSON(http.StatusOK, dto.ListDealsResponse{Deals: dto.ToListDealResponse(deals)})
}

// refreshDeals godoc
// @Summary Reload the deal collection
// @Description Replaces the in-memory collection from the backing source
// @Tags deals
// @Produce json
// @Success 200 {object} dto.ListDealsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Backing source unavailable"
// @Security BearerAuth
// @Router /deals/refresh [post]
func (h *dealHandler) refreshDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh deal collection")

	deals, err := h.dealService.FetchAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Deal collection not available")
		return
	}

	c.JSON(http.StatusOK, dto.ListDealsResponse{Deals: dto.ToListDealResponse(deals)})
}

// getStoreState godoc
// @Summary Get store state
// @Description Reports the loading/error pair of the last bulk load plus collection size
// @Tags deals
// @Produce json
// @Success 200 {object} dto.StoreStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deals/state [get]
func (h *dealHandler) getStoreState(c *gin.Context) {
	c.JSON(http.StatusOK, h.dealService.StoreState(c.Request.Context()))
}

// createDeal godoc
// @Summary Create a new deal
// @Description Creates a deal with defaults applied and an initial timeline entry
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deals [post]
func (h *dealHandler) createDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create deal", slog.String("deal_name", req.Name))

	deal, err := h.dealService.CreateDeal(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeServiceError(c, logger, err, "Invalid deal data")
		return
	}

	logger.Info("Deal created successfully", slog.String("deal_id", deal.DealID))
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// getDeal godoc
// @Summary Get a deal by ID
// @Description Retrieves a deal by its ID from the in-memory collection
// @Tags deals
// @Produce json
// @Param dealID path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	dealID := c.Param("dealID")

	deal := h.dealService.GetDealByID(c.Request.Context(), dealID)
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// updateDeal godoc
// @Summary Update a deal
// @Description Shallow-merges the provided fields onto the existing deal
// @Tags deals
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param deal body dto.UpdateDealRequest true "Fields to update"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID} [patch]
func (h *dealHandler) updateDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Deal updated successfully", slog.String("deal_id", dealID))
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// deleteDeal godoc
// @Summary Delete a deal
// @Description Removes the deal, clearing the selection if it pointed here
// @Tags deals
// @Produce json
// @Param dealID path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID} [delete]
func (h *dealHandler) deleteDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.dealService.DeleteDeal(c.Request.Context(), dealID, userID); err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Deal deleted successfully", slog.String("deal_id", dealID))
	c.Status(http.StatusNoContent)
}

// getSelection godoc
// @Summary Get the selected deal
// @Description Returns the currently selected deal, or 404 when nothing is selected
// @Tags deals
// @Produce json
// @Success 200 {object} dto.DealResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No deal selected"
// @Security BearerAuth
// @Router /deals/selection [get]
func (h *dealHandler) getSelection(c *gin.Context) {
	deal := h.dealService.SelectedDeal(c.Request.Context())
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deal selected"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// selectDeal godoc
// @Summary Select a deal
// @Description Resolves the id against the collection and sets the selection
// @Tags deals
// @Accept json
// @Produce json
// @Param selection body dto.SelectDealRequest true "Deal to select"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/selection [put]
func (h *dealHandler) selectDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SelectDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deal, err := h.dealService.SelectDeal(c.Request.Context(), req.DealID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// clearSelection godoc
// @Summary Clear the deal selection
// @Tags deals
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deals/selection [delete]
func (h *dealHandler) clearSelection(c *gin.Context) {
	h.dealService.ClearSelection(c.Request.Context())
	c.Status(http.StatusNoContent)
}
