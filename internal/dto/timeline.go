package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
)

// AddTimelineEventRequest defines a caller-supplied audit event.
type AddTimelineEventRequest struct {
	Description string                 `json:"description" binding:"required"`
	RefID       string                 `json:"refID"`
	RefType     domain.TimelineRefType `json:"refType" binding:"omitempty,oneof=participant document task note"`
}

// TimelineEventResponse defines the data returned for a timeline event.
type TimelineEventResponse struct {
	EventID     string                 `json:"eventID"`
	OccurredAt  time.Time              `json:"occurredAt"`
	Description string                 `json:"description"`
	ActorID     string                 `json:"actorID"`
	RefID       string                 `json:"refID,omitempty"`
	RefType     domain.TimelineRefType `json:"refType,omitempty"`
}

// ToTimelineEventResponse converts a domain.TimelineEvent to its DTO.
func ToTimelineEventResponse(ev *domain.TimelineEvent) TimelineEventResponse {
	return TimelineEventResponse{
		EventID:     ev.EventID,
		OccurredAt:  ev.OccurredAt,
		Description: ev.Description,
		ActorID:     ev.ActorID,
		RefID:       ev.RefID,
		RefType:     ev.RefType,
	}
}

// ToListTimelineEventResponse converts a slice of events to DTOs.
func ToListTimelineEventResponse(events []domain.TimelineEvent) []TimelineEventResponse {
	res := make([]TimelineEventResponse, len(events))
	for i := range events {
		res[i] = ToTimelineEventResponse(&events[i])
	}
	return res
}
