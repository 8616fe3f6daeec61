package services_test

import (
	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/shopspring/decimal"
)

func (suite *DealStoreTestSuite) TestAddParticipant_Success() {
	suite.seedStore(newTestDeal("deal-1"))

	allocation := decimal.NewFromInt(500_000)
	req := dto.AddParticipantRequest{
		Name:       "Summit Capital",
		Role:       domain.RoleLender,
		Allocation: &allocation,
	}

	p, err := suite.store.AddParticipant(suite.ctx, "deal-1", req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(p.ParticipantID)
	suite.Equal(domain.Invited, p.Status)
	suite.True(p.Allocation.Equal(allocation))

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Len(deal.Participants, 2)

	// Addition emits an audit event.
	last := deal.Timeline[len(deal.Timeline)-1]
	suite.Equal("Added Summit Capital as lender", last.Description)
	suite.Equal("user-1", last.ActorID)
	suite.Equal(p.ParticipantID, last.RefID)
	suite.Equal(domain.RefParticipant, last.RefType)
}

func (suite *DealStoreTestSuite) TestAddParticipant_ExplicitStatusKept() {
	suite.seedStore(newTestDeal("deal-1"))

	p, err := suite.store.AddParticipant(suite.ctx, "deal-1", dto.AddParticipantRequest{
		Name:   "Summit Capital",
		Role:   domain.RoleBroker,
		Status: domain.Participating,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Participating, p.Status)
}

func (suite *DealStoreTestSuite) TestUpdateParticipant_NeverEmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	status := domain.ParticipantDeclined
	newName := "Renamed Lender"
	p, err := suite.store.UpdateParticipant(suite.ctx, "deal-1", "deal-1-p1", dto.UpdateParticipantRequest{
		Name:   &newName,
		Status: &status,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Renamed Lender", p.Name)
	suite.Equal(domain.ParticipantDeclined, p.Status)

	// Even a status change stays silent for participants.
	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Len(deal.Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateParticipant_NotFound() {
	suite.seedStore(newTestDeal("deal-1"))

	_, err := suite.store.UpdateParticipant(suite.ctx, "deal-1", "no-such-participant", dto.UpdateParticipantRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DealStoreTestSuite) TestRemoveParticipant_EmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))

	err := suite.store.RemoveParticipant(suite.ctx, "deal-1", "deal-1-p1", "user-1")

	suite.Require().NoError(err)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Empty(deal.Participants)

	last := deal.Timeline[len(deal.Timeline)-1]
	suite.Equal("Removed Existing Lender from deal", last.Description)
	suite.Equal(domain.RefParticipant, last.RefType)
}

func (suite *DealStoreTestSuite) TestRemoveParticipant_DealNotFound() {
	suite.seedStore(newTestDeal("deal-1"))

	err := suite.store.RemoveParticipant(suite.ctx, "no-such-deal", "deal-1-p1", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
