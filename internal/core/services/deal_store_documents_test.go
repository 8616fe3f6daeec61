package services_test

import (
	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

func (suite *DealStoreTestSuite) TestAddDocument_Success() {
	suite.seedStore(newTestDeal("deal-1"))

	doc, err := suite.store.AddDocument(suite.ctx, "deal-1", dto.AddDocumentRequest{
		Name:     "Environmental Report",
		FileType: "pdf",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(doc.DocumentID)
	suite.Equal(domain.DocumentPending, doc.Status)
	suite.Equal("user-1", doc.UploadedBy)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Len(deal.Documents, 2)

	last := deal.Timeline[len(deal.Timeline)-1]
	suite.Equal("Document uploaded: Environmental Report", last.Description)
	suite.Equal(domain.RefDocument, last.RefType)
}

func (suite *DealStoreTestSuite) TestUpdateDocument_StatusChangeEmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	approved := domain.DocumentApproved
	doc, err := suite.store.UpdateDocument(suite.ctx, "deal-1", "deal-1-d1", dto.UpdateDocumentRequest{
		Status: &approved,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DocumentApproved, doc.Status)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Require().Len(deal.Timeline, before+1)
	suite.Equal("Document Term Sheet status changed to approved", deal.Timeline[len(deal.Timeline)-1].Description)
}

func (suite *DealStoreTestSuite) TestUpdateDocument_SameStatusStaysSilent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	pending := domain.DocumentPending
	_, err := suite.store.UpdateDocument(suite.ctx, "deal-1", "deal-1-d1", dto.UpdateDocumentRequest{
		Status: &pending,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateDocument_NonStatusFieldsStaySilent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	newName := "Term Sheet v2"
	doc, err := suite.store.UpdateDocument(suite.ctx, "deal-1", "deal-1-d1", dto.UpdateDocumentRequest{
		Name: &newName,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Term Sheet v2", doc.Name)
	suite.Len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateDocument_NotFound() {
	suite.seedStore(newTestDeal("deal-1"))

	_, err := suite.store.UpdateDocument(suite.ctx, "deal-1", "no-such-document", dto.UpdateDocumentRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DealStoreTestSuite) TestRemoveDocument_EmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))

	err := suite.store.RemoveDocument(suite.ctx, "deal-1", "deal-1-d1", "user-1")

	suite.Require().NoError(err)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Empty(deal.Documents)
	suite.Equal("Document removed: Term Sheet", deal.Timeline[len(deal.Timeline)-1].Description)
}
