package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealType classifies the financing structure of a deal.
type DealType string

const (
	Syndication   DealType = "syndication"
	Origination   DealType = "origination"
	Participation DealType = "participation"
	Refinance     DealType = "refinance"
	Acquisition   DealType = "acquisition"
)

// DealStatus indicates where a deal sits in the origination pipeline.
// Transitions are caller-driven; the store does not enforce legality.
type DealStatus string

const (
	Prospect         DealStatus = "prospect"
	Submitted        DealStatus = "submitted"
	Underwriting     DealStatus = "underwriting"
	Approved         DealStatus = "approved"
	CommitmentIssued DealStatus = "commitment_issued"
	Closing          DealStatus = "closing"
	Funded           DealStatus = "funded"
	Closed           DealStatus = "closed"
	Declined         DealStatus = "declined"
)

// Borrower is the borrowing party descriptor embedded in a deal.
// It is not an independent aggregate; it lives and dies with its deal.
type Borrower struct {
	BorrowerID string `json:"borrowerID"`
	Name       string `json:"name"`
	Entity     string `json:"entity,omitempty"` // e.g. LLC, LP, individual
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Property describes the collateral property backing a deal, when any.
type Property struct {
	Address      string          `json:"address"`
	PropertyType string          `json:"propertyType,omitempty"`
	Value        decimal.Decimal `json:"value"`
}

// Deal is the root aggregate representing one financing transaction.
// Its owned collections are modified exclusively through deal store
// operations scoped to this deal's ID.
type Deal struct {
	DealID     string          `json:"dealID"` // Primary key, immutable
	Name       string          `json:"name"`
	DealType   DealType        `json:"dealType"` // Default: Origination
	Status     DealStatus      `json:"status"`   // Default: Prospect
	Amount     decimal.Decimal `json:"amount"`
	TermMonths int             `json:"termMonths,omitempty"`
	Rate       decimal.Decimal `json:"rate,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"` // UserID reference
	ClosedAt   *time.Time      `json:"closedAt,omitempty"`
	Borrower   Borrower        `json:"borrower"`
	Property   *Property       `json:"property,omitempty"`
	Tags       []string        `json:"tags,omitempty"`

	Participants []Participant   `json:"participants"`
	Documents    []Document      `json:"documents"`
	Tasks        []Task          `json:"tasks"`
	Notes        []Note          `json:"notes"`
	Timeline     []TimelineEvent `json:"timeline"` // Append-only, insertion order
}

// Clone returns a deep copy of the deal. The store hands out clones so
// callers holding a snapshot can never observe or corrupt later mutations.
func (d Deal) Clone() Deal {
	out := d
	if d.ClosedAt != nil {
		t := *d.ClosedAt
		out.ClosedAt = &t
	}
	if d.Property != nil {
		p := *d.Property
		out.Property = &p
	}
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	out.Participants = append([]Participant(nil), d.Participants...)
	out.Documents = make([]Document, len(d.Documents))
	for i, doc := range d.Documents {
		out.Documents[i] = doc.clone()
	}
	out.Tasks = make([]Task, len(d.Tasks))
	for i, task := range d.Tasks {
		out.Tasks[i] = task.clone()
	}
	out.Notes = append([]Note(nil), d.Notes...)
	out.Timeline = append([]TimelineEvent(nil), d.Timeline...)
	return out
}
