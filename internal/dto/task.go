package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
)

// AddTaskRequest defines the data needed to create a task on a deal.
// Status defaults to pending and priority to medium when omitted.
type AddTaskRequest struct {
	Description string               `json:"description" binding:"required"`
	AssignedTo  string               `json:"assignedTo"`
	DueAt       *time.Time           `json:"dueAt"`
	Status      *domain.TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority    *domain.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest defines the fields allowed for a partial update.
// A status change (and only a genuine change) produces a timeline event.
type UpdateTaskRequest struct {
	Description *string              `json:"description"`
	AssignedTo  *string              `json:"assignedTo"`
	DueAt       *time.Time           `json:"dueAt"`
	Status      *domain.TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority    *domain.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID      string              `json:"taskID"`
	Description string              `json:"description"`
	AssignedTo  string              `json:"assignedTo,omitempty"`
	CreatedBy   string              `json:"createdBy"`
	CreatedAt   time.Time           `json:"createdAt"`
	DueAt       *time.Time          `json:"dueAt,omitempty"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	Comments    []CommentResponse   `json:"comments,omitempty"`
}

// ToTaskResponse converts a domain.Task to its DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	res := TaskResponse{
		TaskID:      t.TaskID,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		DueAt:       t.DueAt,
		Status:      t.Status,
		Priority:    t.Priority,
	}
	if len(t.Comments) > 0 {
		res.Comments = make([]CommentResponse, len(t.Comments))
		for i, cm := range t.Comments {
			res.Comments[i] = CommentResponse{
				CommentID: cm.CommentID,
				Text:      cm.Text,
				Author:    cm.Author,
				CreatedAt: cm.CreatedAt,
			}
		}
	}
	return res
}

// ToListTaskResponse converts a slice of tasks to DTOs.
func ToListTaskResponse(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i])
	}
	return res
}
