package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	portsrepo "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/repositories"
	portssvc "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/services"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/utils"
)

// noteTimeLayout renders the human-facing creation-time label on notes.
const noteTimeLayout = "Jan 2, 2006 3:04 PM"

// dealStore is the authoritative in-memory deal collection plus the
// selected-deal mirror and the loading/error pair of the last bulk load.
//
// A single store-level mutex linearizes every mutation, so two operations
// racing on the same deal cannot lose updates. Mutations work on a clone
// of the stored deal and write the whole value back; reads hand out
// clones, so a caller holding a snapshot is never exposed to a
// half-written entity.
type dealStore struct {
	BaseService
	loader portsrepo.DealLoader

	mu         sync.RWMutex
	deals      []domain.Deal
	index      map[string]int // dealID -> position in deals
	selectedID string         // empty when nothing is selected
	loading    bool
	loadErr    string
}

// NewDealStore creates the deal store service backed by the given loader.
func NewDealStore(loader portsrepo.DealLoader) portssvc.DealSvcFacade {
	return &dealStore{
		loader: loader,
		deals:  []domain.Deal{},
		index:  map[string]int{},
	}
}

// Ensure dealStore implements the facade.
var _ portssvc.DealSvcFacade = (*dealStore)(nil)

// reindex rebuilds the id lookup. Caller must hold the write lock.
func (s *dealStore) reindex() {
	s.index = make(map[string]int, len(s.deals))
	for i := range s.deals {
		s.index[s.deals[i].DealID] = i
	}
}

// locate returns the position of a deal. Caller must hold at least the
// read lock.
func (s *dealStore) locate(dealID string) (int, error) {
	idx, ok := s.index[dealID]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	return idx, nil
}

// recordEvent appends a derived audit event to the given deal value.
// This is the single choke point for timeline writes; no other code
// appends to a deal's timeline slice.
func (s *dealStore) recordEvent(deal *domain.Deal, description, actorID, refID string, refType domain.TimelineRefType) domain.TimelineEvent {
	ev := domain.TimelineEvent{
		EventID:     utils.NewID(),
		OccurredAt:  time.Now(),
		Description: description,
		ActorID:     actorID,
		RefID:       refID,
		RefType:     refType,
	}
	deal.Timeline = append(append([]domain.TimelineEvent{}, deal.Timeline...), ev)
	return ev
}

// FetchAll replaces the in-memory collection with a fresh load from the
// backing loader. On failure the previous collection is left untouched
// and the store-level error field is set.
func (s *dealStore) FetchAll(ctx context.Context) ([]domain.Deal, error) {
	s.mu.Lock()
	s.loading = true
	s.loadErr = ""
	s.mu.Unlock()

	loaded, err := s.loader.LoadDeals(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.loadErr = err.Error()
		s.LogError(ctx, err, "Failed to load deals from backing source")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.deals = make([]domain.Deal, len(loaded))
	for i := range loaded {
		s.deals[i] = loaded[i].Clone()
	}
	s.reindex()

	// The selection survives a reload only if the deal is still present.
	if s.selectedID != "" {
		if _, ok := s.index[s.selectedID]; !ok {
			s.selectedID = ""
		}
	}

	s.LogInfo(ctx, "Deal collection loaded", slog.Int("count", len(s.deals)))
	return s.snapshotLocked(), nil
}

// snapshotLocked clones the whole collection. Caller must hold a lock.
func (s *dealStore) snapshotLocked() []domain.Deal {
	out := make([]domain.Deal, len(s.deals))
	for i := range s.deals {
		out[i] = s.deals[i].Clone()
	}
	return out
}

// GetDealByID is a pure lookup against the current collection. It never
// performs I/O; nil means absent, not failure.
func (s *dealStore) GetDealByID(ctx context.Context, dealID string) *domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[dealID]
	if !ok {
		return nil
	}
	deal := s.deals[idx].Clone()
	return &deal
}

// ListDeals returns a paginated snapshot of the collection.
func (s *dealStore) ListDeals(ctx context.Context, params dto.ListDealsParams) []domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.deals) {
		return []domain.Deal{}
	}
	end := len(s.deals)
	if params.Limit > 0 && offset+params.Limit < end {
		end = offset + params.Limit
	}

	out := make([]domain.Deal, 0, end-offset)
	for i := offset; i < end; i++ {
		out = append(out, s.deals[i].Clone())
	}
	return out
}

// SelectedDeal returns the currently selected deal, or nil.
func (s *dealStore) SelectedDeal(ctx context.Context) *domain.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return nil
	}
	idx, ok := s.index[s.selectedID]
	if !ok {
		return nil
	}
	deal := s.deals[idx].Clone()
	return &deal
}

// StoreState reports the loading/error pair and the collection size.
func (s *dealStore) StoreState(ctx context.Context) dto.StoreStateResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return dto.StoreStateResponse{
		Loading:        s.loading,
		Error:          s.loadErr,
		DealCount:      len(s.deals),
		SelectedDealID: s.selectedID,
	}
}

// CreateDeal builds a new deal with defaults applied, appends it to the
// collection and seeds its timeline with the initial creation event.
func (s *dealStore) CreateDeal(ctx context.Context, req dto.CreateDealRequest, creatorUserID string) (*domain.Deal, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("deal name is required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	deal := domain.Deal{
		DealID:       utils.NewID(),
		Name:         req.Name,
		DealType:     domain.Origination,
		Status:       domain.Prospect,
		Amount:       req.Amount,
		CreatedAt:    now,
		CreatedBy:    creatorUserID,
		Tags:         append([]string(nil), req.Tags...),
		Participants: []domain.Participant{},
		Documents:    []domain.Document{},
		Tasks:        []domain.Task{},
		Notes:        []domain.Note{},
		Timeline:     []domain.TimelineEvent{},
	}
	if req.DealType != nil {
		deal.DealType = *req.DealType
	}
	if req.Status != nil {
		deal.Status = *req.Status
	}
	if req.TermMonths != nil {
		deal.TermMonths = *req.TermMonths
	}
	if req.Rate != nil {
		deal.Rate = *req.Rate
	}
	if req.Borrower != nil {
		deal.Borrower = domain.Borrower{
			BorrowerID: utils.NewID(),
			Name:       req.Borrower.Name,
			Entity:     req.Borrower.Entity,
			Email:      req.Borrower.Email,
			Phone:      req.Borrower.Phone,
		}
	} else {
		// An unset borrower sub-record still gets an identifier.
		deal.Borrower = domain.Borrower{BorrowerID: utils.NewID()}
	}
	if req.Property != nil {
		deal.Property = &domain.Property{
			Address:      req.Property.Address,
			PropertyType: req.Property.PropertyType,
			Value:        req.Property.Value,
		}
	}

	s.recordEvent(&deal, "Deal created", creatorUserID, "", "")

	s.mu.Lock()
	s.deals = append(s.deals, deal)
	s.index[deal.DealID] = len(s.deals) - 1
	s.mu.Unlock()

	s.LogInfo(ctx, "Deal created successfully",
		slog.String("deal_id", deal.DealID),
		slog.String("deal_name", deal.Name))

	out := deal.Clone()
	return &out, nil
}

// UpdateDeal shallow-merges the provided fields onto the existing deal.
// The selected-deal mirror resolves by id, so it reflects the update
// immediately.
func (s *dealStore) UpdateDeal(ctx context.Context, dealID string, req dto.UpdateDealRequest, userID string) (*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for update", slog.String("deal_id", dealID))
		return nil, err
	}

	deal := s.deals[idx].Clone()
	if req.Name != nil {
		deal.Name = *req.Name
	}
	if req.DealType != nil {
		deal.DealType = *req.DealType
	}
	if req.Status != nil {
		deal.Status = *req.Status
	}
	if req.Amount != nil {
		deal.Amount = *req.Amount
	}
	if req.TermMonths != nil {
		deal.TermMonths = *req.TermMonths
	}
	if req.Rate != nil {
		deal.Rate = *req.Rate
	}
	if req.ClosedAt != nil {
		closedAt := *req.ClosedAt
		deal.ClosedAt = &closedAt
	}
	if req.Borrower != nil {
		deal.Borrower.Name = req.Borrower.Name
		deal.Borrower.Entity = req.Borrower.Entity
		deal.Borrower.Email = req.Borrower.Email
		deal.Borrower.Phone = req.Borrower.Phone
		if deal.Borrower.BorrowerID == "" {
			deal.Borrower.BorrowerID = utils.NewID()
		}
	}
	if req.Property != nil {
		deal.Property = &domain.Property{
			Address:      req.Property.Address,
			PropertyType: req.Property.PropertyType,
			Value:        req.Property.Value,
		}
	}
	if req.Tags != nil {
		deal.Tags = append([]string(nil), (*req.Tags)...)
	}

	s.deals[idx] = deal

	s.LogInfo(ctx, "Deal updated successfully", slog.String("deal_id", dealID))

	out := deal.Clone()
	return &out, nil
}

// DeleteDeal removes the deal from the collection, clearing the
// selected-deal mirror if it pointed at the removed deal.
func (s *dealStore) DeleteDeal(ctx context.Context, dealID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for delete", slog.String("deal_id", dealID))
		return err
	}

	s.deals = append(s.deals[:idx:idx], s.deals[idx+1:]...)
	s.reindex()

	if s.selectedID == dealID {
		s.selectedID = ""
	}

	s.LogInfo(ctx, "Deal deleted successfully", slog.String("deal_id", dealID))
	return nil
}

// SelectDeal resolves the id against the current collection and sets the
// selection. Passing an arbitrary object is deliberately not supported;
// callers must reference a deal the store actually holds.
func (s *dealStore) SelectDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for selection", slog.String("deal_id", dealID))
		return nil, err
	}

	s.selectedID = dealID
	deal := s.deals[idx].Clone()

	s.LogDebug(ctx, "Deal selected", slog.String("deal_id", dealID))
	return &deal, nil
}

// ClearSelection unsets the selected-deal mirror.
func (s *dealStore) ClearSelection(ctx context.Context) {
	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()

	s.LogDebug(ctx, "Deal selection cleared")
}
