package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/utils"
)

// locateParticipant finds a participant inside an already-cloned deal.
// Returns the position or -1.
func locateParticipant(deal *domain.Deal, participantID string) int {
	for i := range deal.Participants {
		if deal.Participants[i].ParticipantID == participantID {
			return i
		}
	}
	return -1
}

// AddParticipant appends a party to the deal and records an audit event.
func (s *dealStore) AddParticipant(ctx context.Context, dealID string, req dto.AddParticipantRequest, userID string) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for participant add", slog.String("deal_id", dealID))
		return nil, err
	}

	participant := domain.Participant{
		ParticipantID: utils.NewID(),
		Name:          req.Name,
		Role:          req.Role,
		Status:        req.Status,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}
	if participant.Status == "" {
		participant.Status = domain.Invited
	}
	if req.Allocation != nil {
		participant.Allocation = *req.Allocation
	}

	deal := s.deals[idx].Clone()
	deal.Participants = append(deal.Participants, participant)
	s.recordEvent(&deal,
		fmt.Sprintf("Added %s as %s", participant.Name, participant.Role),
		userID, participant.ParticipantID, domain.RefParticipant)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Participant added",
		slog.String("deal_id", dealID),
		slog.String("participant_id", participant.ParticipantID))
	return &participant, nil
}

// UpdateParticipant shallow-merges fields onto the existing participant.
// Participant updates never produce a timeline event.
func (s *dealStore) UpdateParticipant(ctx context.Context, dealID string, participantID string, req dto.UpdateParticipantRequest, userID string) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return nil, err
	}

	deal := s.deals[idx].Clone()
	pIdx := locateParticipant(&deal, participantID)
	if pIdx < 0 {
		s.LogDebug(ctx, "Participant not found for update",
			slog.String("deal_id", dealID),
			slog.String("participant_id", participantID))
		return nil, apperrors.ErrNotFound
	}

	participant := deal.Participants[pIdx]
	if req.Name != nil {
		participant.Name = *req.Name
	}
	if req.Role != nil {
		participant.Role = *req.Role
	}
	if req.Status != nil {
		participant.Status = *req.Status
	}
	if req.Allocation != nil {
		participant.Allocation = *req.Allocation
	}
	if req.ContactName != nil {
		participant.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		participant.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		participant.ContactPhone = *req.ContactPhone
	}

	deal.Participants[pIdx] = participant
	s.deals[idx] = deal

	s.LogInfo(ctx, "Participant updated",
		slog.String("deal_id", dealID),
		slog.String("participant_id", participantID))
	return &participant, nil
}

// RemoveParticipant removes a party from the deal and records an audit event.
func (s *dealStore) RemoveParticipant(ctx context.Context, dealID string, participantID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return err
	}

	deal := s.deals[idx].Clone()
	pIdx := locateParticipant(&deal, participantID)
	if pIdx < 0 {
		s.LogDebug(ctx, "Participant not found for removal",
			slog.String("deal_id", dealID),
			slog.String("participant_id", participantID))
		return apperrors.ErrNotFound
	}

	removed := deal.Participants[pIdx]
	deal.Participants = append(deal.Participants[:pIdx:pIdx], deal.Participants[pIdx+1:]...)
	s.recordEvent(&deal,
		fmt.Sprintf("Removed %s from deal", removed.Name),
		userID, removed.ParticipantID, domain.RefParticipant)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Participant removed",
		slog.String("deal_id", dealID),
		slog.String("participant_id", participantID))
	return nil
}
