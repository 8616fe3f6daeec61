package services_test

import (
	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

func (suite *DealStoreTestSuite) TestAddTimelineEvent_Success() {
	suite.seedStore(newTestDeal("deal-1"))

	ev, err := suite.store.AddTimelineEvent(suite.ctx, "deal-1", dto.AddTimelineEventRequest{
		Description: "Rate lock extended",
		RefID:       "deal-1-d1",
		RefType:     domain.RefDocument,
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(ev.EventID)
	suite.Equal("Rate lock extended", ev.Description)
	suite.Equal("user-1", ev.ActorID)

	events, err := suite.store.ListTimeline(suite.ctx, "deal-1")
	suite.Require().NoError(err)
	suite.Equal(ev.EventID, events[len(events)-1].EventID)
}

func (suite *DealStoreTestSuite) TestTimeline_PreservesInsertionOrder() {
	suite.seedStore()

	created, err := suite.store.CreateDeal(suite.ctx, dto.CreateDealRequest{Name: "Order Test"}, "user-1")
	suite.Require().NoError(err)

	_, err = suite.store.AddParticipant(suite.ctx, created.DealID, dto.AddParticipantRequest{
		Name: "Summit Capital",
		Role: domain.RoleLender,
	}, "user-1")
	suite.Require().NoError(err)

	_, err = suite.store.AddDocument(suite.ctx, created.DealID, dto.AddDocumentRequest{
		Name: "Loan Agreement",
	}, "user-1")
	suite.Require().NoError(err)

	_, err = suite.store.AddTask(suite.ctx, created.DealID, dto.AddTaskRequest{
		Description: "Collect signatures",
	}, "user-1")
	suite.Require().NoError(err)

	events, err := suite.store.ListTimeline(suite.ctx, created.DealID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 4)
	suite.Equal("Deal created", events[0].Description)
	suite.Equal("Added Summit Capital as lender", events[1].Description)
	suite.Equal("Document uploaded: Loan Agreement", events[2].Description)
	suite.Equal("Task created: Collect signatures", events[3].Description)
}

func (suite *DealStoreTestSuite) TestTimeline_EventIDsAreUnique() {
	suite.seedStore()

	created, err := suite.store.CreateDeal(suite.ctx, dto.CreateDealRequest{Name: "Unique Test"}, "user-1")
	suite.Require().NoError(err)

	for i := 0; i < 20; i++ {
		_, err = suite.store.AddTimelineEvent(suite.ctx, created.DealID, dto.AddTimelineEventRequest{
			Description: "Checkpoint",
		}, "user-1")
		suite.Require().NoError(err)
	}

	events, err := suite.store.ListTimeline(suite.ctx, created.DealID)
	suite.Require().NoError(err)

	seen := make(map[string]bool)
	for _, ev := range events {
		suite.False(seen[ev.EventID], "duplicate event id %s", ev.EventID)
		seen[ev.EventID] = true
	}
}

func (suite *DealStoreTestSuite) TestListTimeline_ReturnsIsolatedCopy() {
	suite.seedStore(newTestDeal("deal-1"))

	events, err := suite.store.ListTimeline(suite.ctx, "deal-1")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(events)

	events[0].Description = "mutated"

	fresh, err := suite.store.ListTimeline(suite.ctx, "deal-1")
	suite.Require().NoError(err)
	suite.Equal("Deal created", fresh[0].Description)
}

func (suite *DealStoreTestSuite) TestListTimeline_DealNotFound() {
	suite.seedStore()

	_, err := suite.store.ListTimeline(suite.ctx, "no-such-deal")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
