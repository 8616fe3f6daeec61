package seed

import (
	"context"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	portsrepo "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DealSeedLoader serves a fixed, deterministic deal set. It backs the
// store when no database is configured (local development, demos, tests).
type DealSeedLoader struct{}

// NewDealSeedLoader creates the static seed loader.
func NewDealSeedLoader() portsrepo.DealLoader {
	return &DealSeedLoader{}
}

// LoadDeals returns a fresh copy of the seed set. Identifiers are fixed
// strings so repeated loads (and tests) see a stable collection.
func (l *DealSeedLoader) LoadDeals(ctx context.Context) ([]domain.Deal, error) {
	base := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	deals := []domain.Deal{
		{
			DealID:    "seed-deal-harborview",
			Name:      "Harborview Apartments Refinance",
			DealType:  domain.Refinance,
			Status:    domain.Underwriting,
			Amount:    decimal.NewFromInt(4_250_000),
			TermMonths: 120,
			Rate:      decimal.RequireFromString("6.15"),
			CreatedAt: base,
			CreatedBy: "seed-user-mrivera",
			Borrower: domain.Borrower{
				BorrowerID: "seed-borrower-harborview",
				Name:       "Harborview Holdings LLC",
				Entity:     "LLC",
				Email:      "finance@harborview.example",
			},
			Property: &domain.Property{
				Address:      "1200 Harborview Dr, Tacoma, WA",
				PropertyType: "multifamily",
				Value:        decimal.NewFromInt(6_100_000),
			},
			Tags: []string{"multifamily", "refi"},
			Participants: []domain.Participant{
				{
					ParticipantID: "seed-participant-cascade",
					Name:          "Cascade Community Bank",
					Role:          domain.RoleLender,
					Status:        domain.Participating,
					Allocation:    decimal.NewFromInt(3_000_000),
				},
				{
					ParticipantID: "seed-participant-pioneer",
					Name:          "Pioneer Capital Brokers",
					Role:          domain.RoleBroker,
					Status:        domain.Invited,
				},
			},
			Documents: []domain.Document{
				{
					DocumentID: "seed-document-appraisal",
					Name:       "Appraisal Report",
					FileType:   "pdf",
					UploadedBy: "seed-user-mrivera",
					UploadedAt: base.Add(24 * time.Hour),
					Status:     domain.DocumentPending,
				},
			},
			Tasks: []domain.Task{
				{
					TaskID:      "seed-task-titlework",
					Description: "Order preliminary title report",
					AssignedTo:  "seed-user-jchen",
					CreatedBy:   "seed-user-mrivera",
					CreatedAt:   base.Add(2 * time.Hour),
					Status:      domain.TaskInProgress,
					Priority:    domain.PriorityHigh,
				},
			},
			Notes: []domain.Note{
				{
					NoteID:         "seed-note-siteplan",
					Text:           "Borrower to provide updated rent roll by end of month.",
					Author:         "seed-user-mrivera",
					CreatedAt:      base.Add(3 * time.Hour),
					CreatedAtLabel: base.Add(3 * time.Hour).Format("Jan 2, 2006 3:04 PM"),
				},
			},
			Timeline: []domain.TimelineEvent{
				{
					EventID:     "seed-event-harborview-created",
					OccurredAt:  base,
					Description: "Deal created",
					ActorID:     "seed-user-mrivera",
				},
				{
					EventID:     "seed-event-harborview-lender",
					OccurredAt:  base.Add(time.Hour),
					Description: "Added Cascade Community Bank as lender",
					ActorID:     "seed-user-mrivera",
					RefID:       "seed-participant-cascade",
					RefType:     domain.RefParticipant,
				},
			},
		},
		{
			DealID:    "seed-deal-stclair",
			Name:      "St. Clair Industrial Acquisition",
			DealType:  domain.Acquisition,
			Status:    domain.Prospect,
			Amount:    decimal.NewFromInt(9_800_000),
			CreatedAt: base.Add(48 * time.Hour),
			CreatedBy: "seed-user-jchen",
			Borrower: domain.Borrower{
				BorrowerID: "seed-borrower-stclair",
				Name:       "St. Clair Industrial Partners LP",
				Entity:     "LP",
			},
			Tags:         []string{"industrial"},
			Participants: []domain.Participant{},
			Documents:    []domain.Document{},
			Tasks:        []domain.Task{},
			Notes:        []domain.Note{},
			Timeline: []domain.TimelineEvent{
				{
					EventID:     "seed-event-stclair-created",
					OccurredAt:  base.Add(48 * time.Hour),
					Description: "Deal created",
					ActorID:     "seed-user-jchen",
				},
			},
		},
		{
			DealID:    "seed-deal-meridianplaza",
			Name:      "Meridian Plaza Syndication",
			DealType:  domain.Syndication,
			Status:    domain.Approved,
			Amount:    decimal.NewFromInt(15_500_000),
			TermMonths: 84,
			Rate:      decimal.RequireFromString("5.85"),
			CreatedAt: base.Add(-30 * 24 * time.Hour),
			CreatedBy: "seed-user-mrivera",
			Borrower: domain.Borrower{
				BorrowerID: "seed-borrower-meridian",
				Name:       "Meridian Plaza Investors LLC",
				Entity:     "LLC",
			},
			Participants: []domain.Participant{
				{
					ParticipantID: "seed-participant-firstnw",
					Name:          "First Northwest Bank",
					Role:          domain.RoleBank,
					Status:        domain.Participating,
					Allocation:    decimal.NewFromInt(8_000_000),
				},
			},
			Documents: []domain.Document{},
			Tasks:     []domain.Task{},
			Notes:     []domain.Note{},
			Timeline: []domain.TimelineEvent{
				{
					EventID:     "seed-event-meridian-created",
					OccurredAt:  base.Add(-30 * 24 * time.Hour),
					Description: "Deal created",
					ActorID:     "seed-user-mrivera",
				},
			},
		},
	}

	// Hand back deep copies so callers cannot mutate the seed templates.
	out := make([]domain.Deal, len(deals))
	for i := range deals {
		out[i] = deals[i].Clone()
	}
	return out, nil
}
