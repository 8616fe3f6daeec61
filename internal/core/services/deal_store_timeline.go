package services

import (
	"context"
	"log/slog"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

// AddTimelineEvent appends a caller-supplied audit event to the deal's
// timeline. Like the derived events, it flows through the single
// recordEvent append path, preserving insertion order.
func (s *dealStore) AddTimelineEvent(ctx context.Context, dealID string, req dto.AddTimelineEventRequest, userID string) (*domain.TimelineEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for timeline event", slog.String("deal_id", dealID))
		return nil, err
	}

	deal := s.deals[idx].Clone()
	ev := s.recordEvent(&deal, req.Description, userID, req.RefID, req.RefType)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Timeline event recorded",
		slog.String("deal_id", dealID),
		slog.String("event_id", ev.EventID))
	return &ev, nil
}

// ListTimeline returns the deal's timeline in insertion order.
func (s *dealStore) ListTimeline(ctx context.Context, dealID string) ([]domain.TimelineEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return nil, err
	}

	return append([]domain.TimelineEvent(nil), s.deals[idx].Timeline...), nil
}
