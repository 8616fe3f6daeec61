package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/apperrors"
	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	"github.com/dealdeskhq/dealdesk_backend/internal/dto"
	"github.com/dealdeskhq/dealdesk_backend/internal/utils"
)

func locateDocument(deal *domain.Deal, documentID string) int {
	for i := range deal.Documents {
		if deal.Documents[i].DocumentID == documentID {
			return i
		}
	}
	return -1
}

// AddDocument attaches a document to the deal and records an audit event.
func (s *dealStore) AddDocument(ctx context.Context, dealID string, req dto.AddDocumentRequest, userID string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		s.LogDebug(ctx, "Deal not found for document add", slog.String("deal_id", dealID))
		return nil, err
	}

	document := domain.Document{
		DocumentID: utils.NewID(),
		Name:       req.Name,
		FileType:   req.FileType,
		UploadedBy: userID,
		UploadedAt: time.Now(),
		Status:     domain.DocumentPending,
		URL:        req.URL,
	}
	if req.Status != nil {
		document.Status = *req.Status
	}

	deal := s.deals[idx].Clone()
	deal.Documents = append(deal.Documents, document)
	s.recordEvent(&deal,
		fmt.Sprintf("Document uploaded: %s", document.Name),
		userID, document.DocumentID, domain.RefDocument)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Document added",
		slog.String("deal_id", dealID),
		slog.String("document_id", document.DocumentID))
	return &document, nil
}

// UpdateDocument shallow-merges fields onto the existing document. An
// audit event is recorded only when the status field is present and
// genuinely differs from the stored value.
func (s *dealStore) UpdateDocument(ctx context.Context, dealID string, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return nil, err
	}

	deal := s.deals[idx].Clone()
	dIdx := locateDocument(&deal, documentID)
	if dIdx < 0 {
		s.LogDebug(ctx, "Document not found for update",
			slog.String("deal_id", dealID),
			slog.String("document_id", documentID))
		return nil, apperrors.ErrNotFound
	}

	document := deal.Documents[dIdx]
	prevStatus := document.Status

	if req.Name != nil {
		document.Name = *req.Name
	}
	if req.FileType != nil {
		document.FileType = *req.FileType
	}
	if req.Status != nil {
		document.Status = *req.Status
	}
	if req.URL != nil {
		document.URL = *req.URL
	}

	deal.Documents[dIdx] = document
	if req.Status != nil && *req.Status != prevStatus {
		s.recordEvent(&deal,
			fmt.Sprintf("Document %s status changed to %s", document.Name, document.Status),
			userID, document.DocumentID, domain.RefDocument)
	}
	s.deals[idx] = deal

	s.LogInfo(ctx, "Document updated",
		slog.String("deal_id", dealID),
		slog.String("document_id", documentID))
	return &document, nil
}

// RemoveDocument detaches a document from the deal and records an audit event.
func (s *dealStore) RemoveDocument(ctx context.Context, dealID string, documentID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.locate(dealID)
	if err != nil {
		return err
	}

	deal := s.deals[idx].Clone()
	dIdx := locateDocument(&deal, documentID)
	if dIdx < 0 {
		s.LogDebug(ctx, "Document not found for removal",
			slog.String("deal_id", dealID),
			slog.String("document_id", documentID))
		return apperrors.ErrNotFound
	}

	removed := deal.Documents[dIdx]
	deal.Documents = append(deal.Documents[:dIdx:dIdx], deal.Documents[dIdx+1:]...)
	s.recordEvent(&deal,
		fmt.Sprintf("Document removed: %s", removed.Name),
		userID, removed.DocumentID, domain.RefDocument)
	s.deals[idx] = deal

	s.LogInfo(ctx, "Document removed",
		slog.String("deal_id", dealID),
		slog.String("document_id", documentID))
	return nil
}
