package dto

import (
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddParticipantRequest defines the data needed to add a party to a deal.
type AddParticipantRequest struct {
	Name         string                   `json:"name" binding:"required"`
	Role         domain.ParticipantRole   `json:"role" binding:"required,oneof=lender broker vendor lessor bank borrower"`
	Status       domain.ParticipantStatus `json:"status" binding:"omitempty,oneof=invited participating declined"`
	Allocation   *decimal.Decimal         `json:"allocation"`
	ContactName  string                   `json:"contactName"`
	ContactEmail string                   `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string                   `json:"contactPhone"`
}

// UpdateParticipantRequest defines the fields allowed for a partial update.
type UpdateParticipantRequest struct {
	Name         *string                   `json:"name"`
	Role         *domain.ParticipantRole   `json:"role" binding:"omitempty,oneof=lender broker vendor lessor bank borrower"`
	Status       *domain.ParticipantStatus `json:"status" binding:"omitempty,oneof=invited participating declined"`
	Allocation   *decimal.Decimal          `json:"allocation"`
	ContactName  *string                   `json:"contactName"`
	ContactEmail *string                   `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string                   `json:"contactPhone"`
}

// ParticipantResponse defines the data returned for a participant.
type ParticipantResponse struct {
	ParticipantID string                   `json:"participantID"`
	Name          string                   `json:"name"`
	Role          domain.ParticipantRole   `json:"role"`
	Status        domain.ParticipantStatus `json:"status"`
	Allocation    decimal.Decimal          `json:"allocation"`
	ContactName   string                   `json:"contactName,omitempty"`
	ContactEmail  string                   `json:"contactEmail,omitempty"`
	ContactPhone  string                   `json:"contactPhone,omitempty"`
}

// ToParticipantResponse converts a domain.Participant to its DTO.
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID: p.ParticipantID,
		Name:          p.Name,
		Role:          p.Role,
		Status:        p.Status,
		Allocation:    p.Allocation,
		ContactName:   p.ContactName,
		ContactEmail:  p.ContactEmail,
		ContactPhone:  p.ContactPhone,
	}
}

// ToListParticipantResponse converts a slice of participants to DTOs.
func ToListParticipantResponse(participants []domain.Participant) []ParticipantResponse {
	res := make([]ParticipantResponse, len(participants))
	for i := range participants {
		res[i] = ToParticipantResponse(&participants[i])
	}
	return res
}
