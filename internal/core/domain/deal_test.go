package domain_test

import (
	"testing"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDeal() domain.Deal {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	closed := now.Add(90 * 24 * time.Hour)
	due := now.Add(7 * 24 * time.Hour)
	return domain.Deal{
		DealID:    "deal-1",
		Name:      "Clone Source",
		DealType:  domain.Acquisition,
		Status:    domain.Closing,
		Amount:    decimal.NewFromInt(3_000_000),
		CreatedAt: now,
		CreatedBy: "user-1",
		ClosedAt:  &closed,
		Borrower:  domain.Borrower{BorrowerID: "b-1", Name: "Borrower LLC"},
		Property:  &domain.Property{Address: "100 Main St", Value: decimal.NewFromInt(4_000_000)},
		Tags:      []string{"bridge", "west-region"},
		Participants: []domain.Participant{
			{ParticipantID: "p-1", Name: "Lender One", Role: domain.RoleLender, Status: domain.Participating},
		},
		Documents: []domain.Document{
			{DocumentID: "d-1", Name: "Appraisal", Status: domain.DocumentApproved,
				Comments: []domain.Comment{{CommentID: "c-1", Text: "Looks good", Author: "user-2", CreatedAt: now}}},
		},
		Tasks: []domain.Task{
			{TaskID: "t-1", Description: "Close out", Status: domain.TaskInProgress, Priority: domain.PriorityHigh, DueAt: &due},
		},
		Notes: []domain.Note{
			{NoteID: "n-1", Text: "Watch the rate lock", Author: "user-1", CreatedAt: now},
		},
		Timeline: []domain.TimelineEvent{
			{EventID: "e-1", Description: "Deal created", ActorID: "user-1", OccurredAt: now},
		},
	}
}

func TestDealClone_EqualValue(t *testing.T) {
	original := buildDeal()
	clone := original.Clone()

	assert.Equal(t, original.DealID, clone.DealID)
	assert.Equal(t, original.Name, clone.Name)
	assert.True(t, original.Amount.Equal(clone.Amount))
	assert.Equal(t, original.Tags, clone.Tags)
	assert.Equal(t, original.Participants, clone.Participants)
	assert.Equal(t, original.Documents, clone.Documents)
	assert.Equal(t, original.Tasks, clone.Tasks)
	assert.Equal(t, original.Timeline, clone.Timeline)
}

func TestDealClone_IndependentCollections(t *testing.T) {
	original := buildDeal()
	clone := original.Clone()

	clone.Participants[0].Name = "mutated"
	clone.Documents[0].Comments[0].Text = "mutated"
	clone.Tasks[0].Description = "mutated"
	clone.Notes[0].Text = "mutated"
	clone.Timeline[0].Description = "mutated"
	clone.Tags[0] = "mutated"

	assert.Equal(t, "Lender One", original.Participants[0].Name)
	assert.Equal(t, "Looks good", original.Documents[0].Comments[0].Text)
	assert.Equal(t, "Close out", original.Tasks[0].Description)
	assert.Equal(t, "Watch the rate lock", original.Notes[0].Text)
	assert.Equal(t, "Deal created", original.Timeline[0].Description)
	assert.Equal(t, "bridge", original.Tags[0])
}

func TestDealClone_IndependentPointers(t *testing.T) {
	original := buildDeal()
	clone := original.Clone()

	require.NotNil(t, clone.ClosedAt)
	require.NotNil(t, clone.Property)
	assert.NotSame(t, original.ClosedAt, clone.ClosedAt)
	assert.NotSame(t, original.Property, clone.Property)

	clone.Property.Address = "mutated"
	assert.Equal(t, "100 Main St", original.Property.Address)
}

func TestDealClone_NilCollectionsStayNil(t *testing.T) {
	bare := domain.Deal{DealID: "deal-bare", Name: "Bare"}
	clone := bare.Clone()

	assert.Nil(t, clone.ClosedAt)
	assert.Nil(t, clone.Property)
	assert.Nil(t, clone.Tags)
	assert.Empty(t, clone.Participants)
}
