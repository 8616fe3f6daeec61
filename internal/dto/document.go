package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
)

// AddDocumentRequest defines the data needed to attach a document to a deal.
// Status defaults to pending when omitted.
type AddDocumentRequest struct {
	Name     string                 `json:"name" binding:"required"`
	FileType string                 `json:"fileType"`
	Status   *domain.DocumentStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	URL      string                 `json:"url" binding:"omitempty,url"`
}

// UpdateDocumentRequest defines the fields allowed for a partial update.
// A status change (and only a genuine change) produces a timeline event.
type UpdateDocumentRequest struct {
	Name     *string                `json:"name"`
	FileType *string                `json:"fileType"`
	Status   *domain.DocumentStatus `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	URL      *string                `json:"url" binding:"omitempty,url"`
}

// CommentResponse defines the data returned for a comment.
type CommentResponse struct {
	CommentID string    `json:"commentID"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID string                `json:"documentID"`
	Name       string                `json:"name"`
	FileType   string                `json:"fileType,omitempty"`
	UploadedBy string                `json:"uploadedBy"`
	UploadedAt time.Time             `json:"uploadedAt"`
	Status     domain.DocumentStatus `json:"status"`
	URL        string                `json:"url,omitempty"`
	Comments   []CommentResponse     `json:"comments,omitempty"`
}

// ToDocumentResponse converts a domain.Document to its DTO.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	res := DocumentResponse{
		DocumentID: doc.DocumentID,
		Name:       doc.Name,
		FileType:   doc.FileType,
		UploadedBy: doc.UploadedBy,
		UploadedAt: doc.UploadedAt,
		Status:     doc.Status,
		URL:        doc.URL,
	}
	if len(doc.Comments) > 0 {
		res.Comments = make([]CommentResponse, len(doc.Comments))
		for i, cm := range doc.Comments {
			res.Comments[i] = CommentResponse{
				CommentID: cm.CommentID,
				Text:      cm.Text,
				Author:    cm.Author,
				CreatedAt: cm.CreatedAt,
			}
		}
	}
	return res
}

// ToListDocumentResponse converts a slice of documents to DTOs.
func ToListDocumentResponse(documents []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(documents))
	for i := range documents {
		res[i] = ToDocumentResponse(&documents[i])
	}
	return res
}
