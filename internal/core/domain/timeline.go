package domain

import "time"

// TimelineRefType names the kind of owned entity a timeline event points back at.
type TimelineRefType string

const (
	RefParticipant TimelineRefType = "participant"
	RefDocument    TimelineRefType = "document"
	RefTask        TimelineRefType = "task"
	RefNote        TimelineRefType = "note"
)

// TimelineEvent is a derived, append-only audit record on a deal.
// Events are created exclusively as a side effect of other mutations and
// are never updated or deleted; ordering is insertion order, not a
// re-sort by timestamp.
type TimelineEvent struct {
	EventID     string          `json:"eventID"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Description string          `json:"description"`
	ActorID     string          `json:"actorID"` // UserID reference
	RefID       string          `json:"refID,omitempty"`
	RefType     TimelineRefType `json:"refType,omitempty"`
}
