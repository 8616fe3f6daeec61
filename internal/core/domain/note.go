package domain

import "time"

// Note is a free-text annotation on a deal, owned by exactly one deal.
// NoteID is unique within the owning deal.
//
// CreatedAtLabel is the human-facing rendering of CreatedAt; editing the
// note suffixes it with an "(edited)" marker. It is a cosmetic audit
// marker only, CreatedAt itself never changes.
type Note struct {
	NoteID         string    `json:"noteID"`
	Text           string    `json:"text"`
	Author         string    `json:"author"` // UserID reference
	CreatedAt      time.Time `json:"createdAt"`
	CreatedAtLabel string    `json:"createdAtLabel"`
	IsPrivate      bool      `json:"isPrivate,omitempty"`
}
