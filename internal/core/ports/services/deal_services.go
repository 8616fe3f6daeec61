package services

import (
	"context"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
)

// DealReaderSvc defines read operations against the in-memory collection.
// Reads never perform I/O and are safe at any time.
type DealReaderSvc interface {
	// GetDealByID is a pure lookup; nil means absent, not failure.
	GetDealByID(ctx context.Context, dealID string) *domain.Deal

	// ListDeals returns a paginated snapshot of the collection.
	ListDeals(ctx context.Context, params dto.ListDealsParams) []domain.Deal

	// SelectedDeal returns the currently selected deal, or nil.
	SelectedDeal(ctx context.Context) *domain.Deal

	// StoreState reports the loading/error pair of the most recent bulk
	// load plus the collection size.
	StoreState(ctx context.Context) dto.StoreStateResponse
}

// DealWriterSvc defines mutations of the deal collection itself.
type DealWriterSvc interface {
	// FetchAll replaces the whole collection from the backing loader.
	// On failure the previous collection is left untouched.
	FetchAll(ctx context.Context) ([]domain.Deal, error)

	// CreateDeal builds a new deal with defaults applied and an initial
	// timeline entry, and appends it to the collection.
	CreateDeal(ctx context.Context, req dto.CreateDealRequest, creatorUserID string) (*domain.Deal, error)

	// UpdateDeal shallow-merges the provided fields onto the existing deal.
	UpdateDeal(ctx context.Context, dealID string, req dto.UpdateDealRequest, userID string) (*domain.Deal, error)

	// DeleteDeal removes the deal, clearing the selection if it pointed here.
	DeleteDeal(ctx context.Context, dealID string, userID string) error

	// SelectDeal resolves the id against the collection and sets the
	// selected-deal mirror; ErrNotFound if absent.
	SelectDeal(ctx context.Context, dealID string) (*domain.Deal, error)

	// ClearSelection unsets the selected-deal mirror.
	ClearSelection(ctx context.Context)
}

// ParticipantWriterSvc mutates a deal's participant collection.
type ParticipantWriterSvc interface {
	AddParticipant(ctx context.Context, dealID string, req dto.AddParticipantRequest, userID string) (*domain.Participant, error)
	UpdateParticipant(ctx context.Context, dealID string, participantID string, req dto.UpdateParticipantRequest, userID string) (*domain.Participant, error)
	RemoveParticipant(ctx context.Context, dealID string, participantID string, userID string) error
}

// DocumentWriterSvc mutates a deal's document collection.
type DocumentWriterSvc interface {
	AddDocument(ctx context.Context, dealID string, req dto.AddDocumentRequest, userID string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, dealID string, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error)
	RemoveDocument(ctx context.Context, dealID string, documentID string, userID string) error
}

// TaskWriterSvc mutates a deal's task collection.
type TaskWriterSvc interface {
	AddTask(ctx context.Context, dealID string, req dto.AddTaskRequest, userID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, dealID string, taskID string, req dto.UpdateTaskRequest, userID string) (*domain.Task, error)

	// CompleteTask is a convenience that routes through UpdateTask with
	// status "completed", inheriting its timeline emission rule.
	CompleteTask(ctx context.Context, dealID string, taskID string, userID string) (*domain.Task, error)

	RemoveTask(ctx context.Context, dealID string, taskID string, userID string) error
}

// NoteWriterSvc mutates a deal's note collection.
type NoteWriterSvc interface {
	AddNote(ctx context.Context, dealID string, req dto.AddNoteRequest, userID string) (*domain.Note, error)
	UpdateNote(ctx context.Context, dealID string, noteID string, req dto.UpdateNoteRequest, userID string) (*domain.Note, error)
	RemoveNote(ctx context.Context, dealID string, noteID string, userID string) error
}

// TimelineSvc exposes the deal's audit trail.
type TimelineSvc interface {
	// AddTimelineEvent appends a caller-supplied event to the deal's
	// timeline, preserving insertion order.
	AddTimelineEvent(ctx context.Context, dealID string, req dto.AddTimelineEventRequest, userID string) (*domain.TimelineEvent, error)

	// ListTimeline returns the deal's timeline in insertion order.
	ListTimeline(ctx context.Context, dealID string) ([]domain.TimelineEvent, error)
}

// DealSvcFacade combines all deal store interfaces.
// This is a facade for clients that need access to all operations.
type DealSvcFacade interface {
	DealReaderSvc
	DealWriterSvc
	ParticipantWriterSvc
	DocumentWriterSvc
	TaskWriterSvc
	NoteWriterSvc
	TimelineSvc
}
