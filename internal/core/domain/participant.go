package domain

import "github.com/shopspring/decimal"

// ParticipantRole identifies how a party takes part in a deal.
type ParticipantRole string

const (
	RoleLender   ParticipantRole = "lender"
	RoleBroker   ParticipantRole = "broker"
	RoleVendor   ParticipantRole = "vendor"
	RoleLessor   ParticipantRole = "lessor"
	RoleBank     ParticipantRole = "bank"
	RoleBorrower ParticipantRole = "borrower"
)

// ParticipantStatus tracks a party's standing on the deal.
type ParticipantStatus string

const (
	Invited             ParticipantStatus = "invited"
	Participating       ParticipantStatus = "participating"
	ParticipantDeclined ParticipantStatus = "declined"
)

// Participant is a party to a deal, owned by exactly one deal.
// ParticipantID is unique within the owning deal's participant collection.
type Participant struct {
	ParticipantID string            `json:"participantID"`
	Name          string            `json:"name"`
	Role          ParticipantRole   `json:"role"`
	Status        ParticipantStatus `json:"status"`
	Allocation    decimal.Decimal   `json:"allocation,omitempty"` // Monetary share, optional
	ContactName   string            `json:"contactName,omitempty"`
	ContactEmail  string            `json:"contactEmail,omitempty"`
	ContactPhone  string            `json:"contactPhone,omitempty"`
}
