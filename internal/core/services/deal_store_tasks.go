package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/utils"
)

func locateTask(deal *domain.Deal, taskID string) int {
	for i := range deal.Tasks {
		if deal.Tasks[i].TaskID == taskID {
			return i
		}
	}
	return -1
}

// AddTask creates a task on the deal and records an audit event.
func (s *dealStore) AddTask(ctx context.Context, dealID string, req dto.AddTaskRequest, userID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for task add", slog.String("deal_id", dealID))
		return nil, err
	}

	task := domain.Task{
		TaskID:      utils.NewID(),
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
		Status:      domain.TaskPending,
		Priority:    domain.PriorityMedium,
	}
	if req.DueAt != nil {
		due := *req.DueAt
		task.DueAt = &due
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	deal := s.deals[idx].Clone()
	deal.Tasks = append(deal.Tasks, task)
	s.recordEvent(&deal,
		fmt.Sprintf("Task created: %s", task.Description),
		userID, task.TaskID, domain.RefTask)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Task added",
		slog.String("deal_id", dealID),
		slog.String("task_id", task.TaskID))
	return &task, nil
}

// UpdateTask shallow-merges fields onto the existing task. An audit event
// is recorded only when the status field is present and genuinely differs
// from the stored value.
func (s *dealStore) UpdateTask(ctx context.Context, dealID string, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTaskLocked(ctx, dealID, taskID, req, userID)
}

// updateTaskLocked carries the shared merge logic for UpdateTask and
// CompleteTask. Caller must hold the write lock.
func (s *dealStore) updateTaskLocked(ctx context.Context, dealID string, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error) {
	idx, err := s.locate(dealID)
	if err != nil {
		return nil, err
	}

	deal := s.deals[idx].Clone()
	tIdx := locateTask(&deal, taskID)
	if tIdx < 0 {
		s.LogDebug(ctx, "Task not found for update",
			slog.String("deal_id", dealID),
			slog.String("task_id", taskID))
		return nil, apperrors.ErrNotFound
	}

	task := deal.Tasks[tIdx]
	prevStatus := task.Status

	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.DueAt != nil {
		due := *req.DueAt
		task.DueAt = &due
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	deal.Tasks[tIdx] = task
	if req.Status != nil && *req.Status != prevStatus {
		s.recordEvent(&deal,
			fmt.Sprintf("Task status changed to %s: %s", task.Status, task.Description),
			userID, task.TaskID, domain.RefTask)
	}
	s.deals[idx] = deal

	s.LogInfo(ctx, "Task updated",
		slog.String("deal_id", dealID),
		slog.String("task_id", taskID))
	return &task, nil
}

// CompleteTask marks a task completed. It routes through the task update
// path and therefore inherits its status-gated audit emission rule.
func (s *dealStore) CompleteTask(ctx context.Context, dealID string, taskID string, userID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := domain.TaskCompleted
	return s.updateTaskLocked(ctx, dealID, taskID, dto.UpdateTaskRequest{Status: &completed}, userID)
}

// RemoveTask removes a task from the deal and records an audit event.
func (s *dealStore) RemoveTask(ctx context.Context, dealID string, taskID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return err
	}

	deal := s.deals[idx].Clone()
	tIdx := locateTask(&deal, taskID)
	if tIdx < 0 {
		s.LogDebug(ctx, "Task not found for removal",
			slog.String("deal_id", dealID),
			slog.String("task_id", taskID))
		return apperrors.ErrNotFound
	}

	removed := deal.Tasks[tIdx]
	deal.Tasks = append(deal.Tasks[:tIdx:tIdx], deal.Tasks[tIdx+1:]...)
	s.recordEvent(&deal,
		fmt.Sprintf("Task removed: %s", removed.Description),
		userID, removed.TaskID, domain.RefTask)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Task removed",
		slog.String("deal_id", dealID),
		slog.String("task_id", taskID))
	return nil
}
