package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
)

// AddNoteRequest defines the data needed to annotate a deal.
// Private notes are stored but do not produce a timeline event.
type AddNoteRequest struct {
	Text      string `json:"text" binding:"required"`
	IsPrivate bool   `json:"isPrivate"`
}

// UpdateNoteRequest replaces the note's text. The stored creation-time
// label picks up an "(edited)" marker.
type UpdateNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// NoteResponse defines the data returned for a note.
type NoteResponse struct {
	NoteID         string    `json:"noteID"`
	Text           string    `json:"text"`
	Author         string    `json:"author"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedAtLabel string    `json:"createdAtLabel"`
	IsPrivate      bool      `json:"isPrivate"`
}

// ToNoteResponse converts a domain.Note to its DTO.
func ToNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		NoteID:         n.NoteID,
		Text:           n.Text,
		Author:         n.Author,
		CreatedAt:      n.CreatedAt,
		CreatedAtLabel: n.CreatedAtLabel,
		IsPrivate:      n.IsPrivate,
	}
}

// ToListNoteResponse converts a slice of notes to DTOs.
func ToListNoteResponse(notes []domain.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i := range notes {
		res[i] = ToNoteResponse(&notes[i])
	}
	return res
}
