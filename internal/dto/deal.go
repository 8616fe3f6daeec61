package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BorrowerPayload carries borrower descriptor fields on deal requests.
type BorrowerPayload struct {
	Name   string `json:"name"`
	Entity string `json:"entity"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
}

// PropertyPayload carries the optional collateral property descriptor.
type PropertyPayload struct {
	Address      string          `json:"address" binding:"required"`
	PropertyType string          `json:"propertyType"`
	Value        decimal.Decimal `json:"value"`
}

// CreateDealRequest defines the data needed to create a new deal.
// Type and status default to origination/prospect when omitted.
type CreateDealRequest struct {
	Name       string             `json:"name" binding:"required"`
	DealType   *domain.DealType   `json:"dealType" binding:"omitempty,oneof=syndication origination participation refinance acquisition"`
	Status     *domain.DealStatus `json:"status" binding:"omitempty,oneof=prospect submitted underwriting approved commitment_issued closing funded closed declined"`
	Amount     decimal.Decimal    `json:"amount"`
	TermMonths *int               `json:"termMonths"`
	Rate       *decimal.Decimal   `json:"rate"`
	Borrower   *BorrowerPayload   `json:"borrower"`
	Property   *PropertyPayload   `json:"property"`
	Tags       []string           `json:"tags"`
}

// UpdateDealRequest defines the fields allowed for a partial deal update.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateDealRequest struct {
	Name       *string            `json:"name"`
	DealType   *domain.DealType   `json:"dealType" binding:"omitempty,oneof=syndication origination participation refinance acquisition"`
	Status     *domain.DealStatus `json:"status" binding:"omitempty,oneof=prospect submitted underwriting approved commitment_issued closing funded closed declined"`
	Amount     *decimal.Decimal   `json:"amount"`
	TermMonths *int               `json:"termMonths"`
	Rate       *decimal.Decimal   `json:"rate"`
	ClosedAt   *time.Time         `json:"closedAt"`
	Borrower   *BorrowerPayload   `json:"borrower"`
	Property   *PropertyPayload   `json:"property"`
	Tags       *[]string          `json:"tags"`
}

// SelectDealRequest identifies the deal to set as the selection.
type SelectDealRequest struct {
	DealID string `json:"dealID" binding:"required"`
}

// DealResponse defines the data returned for a deal. Mirrors domain.Deal.
type DealResponse struct {
	DealID       string                  `json:"dealID"`
	Name         string                  `json:"name"`
	DealType     domain.DealType         `json:"dealType"`
	Status       domain.DealStatus       `json:"status"`
	Amount       decimal.Decimal         `json:"amount"`
	TermMonths   int                     `json:"termMonths,omitempty"`
	Rate         decimal.Decimal         `json:"rate"`
	CreatedAt    time.Time               `json:"createdAt"`
	CreatedBy    string                  `json:"createdBy"`
	ClosedAt     *time.Time              `json:"closedAt,omitempty"`
	Borrower     domain.Borrower         `json:"borrower"`
	Property     *domain.Property        `json:"property,omitempty"`
	Tags         []string                `json:"tags,omitempty"`
	Participants []ParticipantResponse   `json:"participants"`
	Documents    []DocumentResponse      `json:"documents"`
	Tasks        []TaskResponse          `json:"tasks"`
	Notes        []NoteResponse          `json:"notes"`
	Timeline     []TimelineEventResponse `json:"timeline"`
}

// ToDealResponse converts a domain.Deal to a DealResponse DTO.
func ToDealResponse(d *domain.Deal) DealResponse {
	return DealResponse{
		DealID:       d.DealID,
		Name:         d.Name,
		DealType:     d.DealType,
		Status:       d.Status,
		Amount:       d.Amount,
		TermMonths:   d.TermMonths,
		Rate:         d.Rate,
		CreatedAt:    d.CreatedAt,
		CreatedBy:    d.CreatedBy,
		ClosedAt:     d.ClosedAt,
		Borrower:     d.Borrower,
		Property:     d.Property,
		Tags:         d.Tags,
		Participants: ToListParticipantResponse(d.Participants),
		Documents:    ToListDocumentResponse(d.Documents),
		Tasks:        ToListTaskResponse(d.Tasks),
		Notes:        ToListNoteResponse(d.Notes),
		Timeline:     ToListTimelineEventResponse(d.Timeline),
	}
}

// ToListDealResponse converts a slice of deals to response DTOs.
func ToListDealResponse(deals []domain.Deal) []DealResponse {
	res := make([]DealResponse, len(deals))
	for i := range deals {
		res[i] = ToDealResponse(&deals[i])
	}
	return res
}

// ListDealsParams defines query parameters for listing deals.
type ListDealsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListDealsResponse wraps the list of deals.
type ListDealsResponse struct {
	Deals []DealResponse `json:"deals"`
}

// StoreStateResponse reflects the outcome of the most recent bulk load
// plus the current collection/selection state.
type StoreStateResponse struct {
	Loading        bool   `json:"loading"`
	Error          string `json:"error,omitempty"`
	DealCount      int    `json:"dealCount"`
	SelectedDealID string `json:"selectedDealID,omitempty"`
}
