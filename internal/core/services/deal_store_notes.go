package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/utils"
)

const editedMarker = " (edited)"

func locateNote(deal *domain.Deal, noteID string) int {
	for i := range deal.Notes {
		if deal.Notes[i].NoteID == noteID {
			return i
		}
	}
	return -1
}

// AddNote annotates the deal. Private notes are stored like any other but
// do not produce a timeline event.
func (s *dealStore) AddNote(ctx context.Context, dealID string, req dto.AddNoteRequest, userID string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for note add", slog.String("deal_id", dealID))
		return nil, err
	}

	now := time.Now()
	note := domain.Note{
		NoteID:         utils.NewID(),
		Text:           req.Text,
		Author:         userID,
		CreatedAt:      now,
		CreatedAtLabel: now.Format(noteTimeLayout),
		IsPrivate:      req.IsPrivate,
	}

	deal := s.deals[idx].Clone()
	deal.Notes = append(deal.Notes, note)
	if !note.IsPrivate {
		s.recordEvent(&deal, "Note added", userID, note.NoteID, domain.RefNote)
	}
	s.deals[idx] = deal

	s.LogInfo(ctx, "Note added",
		slog.String("deal_id", dealID),
		slog.String("note_id", note.NoteID),
		slog.Bool("private", note.IsPrivate))
	return &note, nil
}

// UpdateNote replaces the note's text and marks the creation-time label
// as edited. No timeline event is recorded.
func (s *dealStore) UpdateNote(ctx context.Context, dealID string, noteID string, req dto.UpdateNoteRequest, userID string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return nil, err
	}

	deal := s.deals[idx].Clone()
	nIdx := locateNote(&deal, noteID)
	if nIdx < 0 {
		s.LogDebug(ctx, "Note not found for update",
			slog.String("deal_id", dealID),
			slog.String("note_id", noteID))
		return nil, apperrors.ErrNotFound
	}

	note := deal.Notes[nIdx]
	note.Text = req.Text
	if !strings.HasSuffix(note.CreatedAtLabel, editedMarker) {
		note.CreatedAtLabel += editedMarker
	}

	deal.Notes[nIdx] = note
	s.deals[idx] = deal

	s.LogInfo(ctx, "Note updated",
		slog.String("deal_id", dealID),
		slog.String("note_id", noteID))
	return &note, nil
}

// RemoveNote deletes the note. Note removal does not produce a timeline
// event, matching the emission rules of the other note operations.
func (s *dealStore) RemoveNote(ctx context.Context, dealID string, noteID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return err
	}

	deal := s.deals[idx].Clone()
	nIdx := locateNote(&deal, noteID)
	if nIdx < 0 {
		s.LogDebug(ctx, "Note not found for removal",
			slog.String("deal_id", dealID),
			slog.String("note_id", noteID))
		return apperrors.ErrNotFound
	}

	deal.Notes = append(deal.Notes[:nIdx:nIdx], deal.Notes[nIdx+1:]...)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Note removed",
		slog.String("deal_id", dealID),
		slog.String("note_id", noteID))
	return nil
}
