package services_test

import (
	"strings"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

func (suite *DealStoreTestSuite) TestAddNote_PublicEmitsEvent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	note, err := suite.store.AddNote(suite.ctx, "deal-1", dto.AddNoteRequest{
		Text: "Borrower confirmed rate lock",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(note.NoteID)
	suite.False(note.IsPrivate)
	suite.NotEmpty(note.CreatedAtLabel)
	suite.Equal("user-1", note.Author)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Require().Len(deal.Timeline, before+1)
	suite.Equal("Note added", deal.Timeline[len(deal.Timeline)-1].Description)
}

func (suite *DealStoreTestSuite) TestAddNote_PrivateStaysSilent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	note, err := suite.store.AddNote(suite.ctx, "deal-1", dto.AddNoteRequest{
		Text:      "Internal pricing concern",
		IsPrivate: true,
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(note.IsPrivate)

	// Stored like any other note, but no audit event.
	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Len(deal.Notes, 2)
	suite.Len(deal.Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateNote_MarksEditedOnce() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	note, err := suite.store.UpdateNote(suite.ctx, "deal-1", "deal-1-n1", dto.UpdateNoteRequest{
		Text: "Revised note",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Revised note", note.Text)
	suite.True(strings.HasSuffix(note.CreatedAtLabel, " (edited)"))

	// A second edit does not stack the marker.
	note, err = suite.store.UpdateNote(suite.ctx, "deal-1", "deal-1-n1", dto.UpdateNoteRequest{
		Text: "Revised again",
	}, "user-1")
	suite.Require().NoError(err)
	suite.Equal(1, strings.Count(note.CreatedAtLabel, "(edited)"))

	// Note edits never touch the audit trail.
	suite.Len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline, before)
}

func (suite *DealStoreTestSuite) TestUpdateNote_NotFound() {
	suite.seedStore(newTestDeal("deal-1"))

	_, err := suite.store.UpdateNote(suite.ctx, "deal-1", "no-such-note", dto.UpdateNoteRequest{Text: "x"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DealStoreTestSuite) TestRemoveNote_StaysSilent() {
	suite.seedStore(newTestDeal("deal-1"))
	before := len(suite.store.GetDealByID(suite.ctx, "deal-1").Timeline)

	err := suite.store.RemoveNote(suite.ctx, "deal-1", "deal-1-n1", "user-1")

	suite.Require().NoError(err)

	deal := suite.store.GetDealByID(suite.ctx, "deal-1")
	suite.Empty(deal.Notes)
	suite.Len(deal.Timeline, before)
}
