package domain

import "time"

// DocumentStatus tracks review state of an uploaded artifact.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Comment is a short remark attached to a document or task.
type Comment struct {
	CommentID string    `json:"commentID"`
	Text      string    `json:"text"`
	Author    string    `json:"author"` // UserID reference
	CreatedAt time.Time `json:"createdAt"`
}

// Document is an artifact attached to a deal, owned by exactly one deal.
// DocumentID is unique within the owning deal.
type Document struct {
	DocumentID string         `json:"documentID"`
	Name       string         `json:"name"`
	FileType   string         `json:"fileType,omitempty"` // Extension, e.g. "pdf"
	UploadedBy string         `json:"uploadedBy"`         // UserID reference
	UploadedAt time.Time      `json:"uploadedAt"`
	Status     DocumentStatus `json:"status"`
	URL        string         `json:"url,omitempty"`
	Comments   []Comment      `json:"comments,omitempty"`
}

func (doc Document) clone() Document {
	out := doc
	if doc.Comments != nil {
		out.Comments = append([]Comment(nil), doc.Comments...)
	}
	return out
}
