package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests for a deal's tasks.
type taskHandler struct {
	dealService portssvc.TaskWriterSvc
}

// registerTaskRoutes registers task routes under the deals group.
func registerTaskRoutes(deals *gin.RouterGroup, dealService portssvc.TaskWriterSvc) {
	h := &taskHandler{dealService: dealService}

	tasks := deals.Group("/:dealID/tasks")
	{
		tasks.POST("", h.addTask)
		tasks.PATCH("/:taskID", h.updateTask)
		tasks.POST("/:taskID/complete", h.completeTask)
		tasks.DELETE("/:taskID", h.removeTask)
	}
}

// addTask godoc
// @Summary Create a task on a deal
// @Description Creates a task and records a timeline event
// @Tags tasks
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param task body dto.AddTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal not found"
// @Security BearerAuth
// @Router /deals/{dealID}/tasks [post]
func (h *taskHandler) addTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")

	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.dealService.AddTask(c.Request.Context(), dealID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal not found")
		return
	}

	logger.Info("Task added successfully",
		slog.String("deal_id", dealID),
		slog.String("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Shallow-merges fields; a genuine status change records a timeline event
// @Tags tasks
// @Accept json
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param taskID path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or task not found"
// @Security BearerAuth
// @Router /deals/{dealID}/tasks/{taskID} [patch]
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	taskID := c.Param("taskID")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.dealService.UpdateTask(c.Request.Context(), dealID, taskID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal or task not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// completeTask godoc
// @Summary Mark a task completed
// @Description Convenience that routes through the task update path
// @Tags tasks
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param taskID path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or task not found"
// @Security BearerAuth
// @Router /deals/{dealID}/tasks/{taskID}/complete [post]
func (h *taskHandler) completeTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	taskID := c.Param("taskID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	task, err := h.dealService.CompleteTask(c.Request.Context(), dealID, taskID, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Deal or task not found")
		return
	}

	logger.Info("Task completed",
		slog.String("deal_id", dealID),
		slog.String("task_id", taskID))
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// removeTask godoc
// @Summary Remove a task from a deal
// @Description Removes the task and records a timeline event
// @Tags tasks
// @Produce json
// @Param dealID path string true "Deal ID"
// @Param taskID path string true "Task ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deal or task not found"
// @Security BearerAuth
// @Router /deals/{dealID}/tasks/{taskID} [delete]
func (h *taskHandler) removeTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealID := c.Param("dealID")
	taskID := c.Param("taskID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.dealService.RemoveTask(c.Request.Context(), dealID, taskID, userID); err != nil {
		writeServiceError(c, logger, err, "Deal or task not found")
		return
	}

	c.Status(http.StatusNoContent)
}
