package services_test

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

func (suite *DealStoreTestSuite) TestAddTask_DefaultsApplied() {
	suite.seedStore(newTestDeal("deal-1"))

	task, err := suite.store.AddTask(suite.ctx, "deal-1", dto.AddTaskRequest{
		Description: "Order title search",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(task.TaskID)
	suite.Equal(domain.TaskPending, task.Status)
	suite.Equal(domain.PriorityMedium, task.Priority)
	suite.Equal("user-1", task.CreatedBy)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Len(deal.Tasks, 2)
	suite.Equal("Task created: Order title search", deal.Timeline[len(deal.Timeline)-1].Description)
}

func (suite *DealStoreTestSuite) TestAddTask_ExplicitFields() {
	suite.seedStore(newTestDeal("deal-1"))

	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	status := domain.TaskInProgress
	priority := domain.PriorityHigh
	task, err := suite.store.AddTask(suite.ctx, "deal-1", dto.AddTaskRequest{
		Description: "Walk the site",
		AssignedTo:  "user-2",
		DueAt:       &due,
		Status:      &status,
		Priority:    &priority,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TaskInProgress, task.Status)
	suite.Equal(domain.PriorityHigh, task.Priority)
	suite.Require().NotNil(task.DueAt)
	suite.True(task.DueAt.Equal(due))
}

func (suite *DealStoreTestSuite) TestUpdateTask_StatusChangeEmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	blocked := domain.TaskBlocked
	task, err := suite.store.UpdateTask(suite.ctx, "deal-1", "deal-1-t1", dto.UpdateTaskRequest{
		Status: &blocked,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TaskBlocked, task.Status)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Require().Len(deal.Timeline, before+1)
	suite.Equal("Task status changed to blocked: Review appraisal", deal.Timeline[len(deal.Timeline)-1].Description)
}

func (suite *DealStoreTestSuite) TestUpdateTask_SameStatusStaysSilent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	pending := domain.TaskPending
	_, err := suite.store.UpdateTask(suite.ctx, "deal-1", "deal-1-t1", dto.UpdateTaskRequest{
		Status: &pending,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline, before)
}

func (suite *DealStoreTestSuite) TestCompleteTask_EmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	task, err := suite.store.CompleteTask(suite.ctx, "deal-1", "deal-1-t1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TaskCompleted, task.Status)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Require().Len(deal.Timeline, before+1)
	suite.Equal("Task status changed to completed: Review appraisal", deal.Timeline[len(deal.Timeline)-1].Description)
}

func (suite *DealStoreTestSuite) TestCompleteTask_AlreadyCompletedStaysSilent() {
	suite.seedStore(newTestDeal("deal-1"))

	_, err := suite.store.CompleteTask(suite.ctx, "deal-1", "deal-1-t1", "user-1")
	suite.Require().NoError(err)
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	_, err = suite.store.CompleteTask(suite.ctx, "deal-1", "deal-1-t1", "user-1")

	suite.Require().NoError(err)
	suite.Len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateTask_NotFound() {
	suite.seedStore(newTestDeal("deal-1"))

	_, err := suite.store.UpdateTask(suite.ctx, "deal-1", "no-such-task", dto.UpdateTaskRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DealStoreTestSuite) TestRemoveTask_NotFoundLeavesDealUntouched() {
	suite.seedStore(newTestDeal("deal-1"))
	before := suite.store.GetDealByID(suite.ctx, "deal-1")

	err := suite.store.RemoveTask(suite.ctx, "deal-1", "no-such-task", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// The owning deal keeps its tasks and its audit trail.
	after := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Equal(before.Tasks, after.Tasks)
	suite.Equal(before.Timeline, after.Timeline)
}

func (suite *DealStoreTestSuite) TestRemoveTask_EmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))

	err := suite.store.RemoveTask(suite.ctx, "deal-1", "deal-1-t1", "user-1")

	suite.Require().NoError(err)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Empty(deal.Tasks)
	suite.Equal("Task removed: Review appraisal", deal.Timeline[len(deal.Timeline)-1].Description)
}
