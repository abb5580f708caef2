package model

import (
	"strings"
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// ContentStatus is a kanban column in the content production pipeline.
type ContentStatus string

const (
	ContentStatusIdea      ContentStatus = "idea"
	ContentStatusBrief     ContentStatus = "brief"
	ContentStatusWriting   ContentStatus = "writing"
	ContentStatusReview    ContentStatus = "review"
	ContentStatusPublished ContentStatus = "published"
)

// Valid reports whether the content status is supported.
func (s ContentStatus) Valid() bool {
	switch s {
	case ContentStatusIdea, ContentStatusBrief, ContentStatusWriting,
		ContentStatusReview, ContentStatusPublished:
		return true
	default:
		return false
	}
}

// ContentItem is one piece of planned or produced content for a client.
type ContentItem struct {
	ID        string        `json:"id"                 db:"id"`
	ClientID  string        `json:"client_id"          db:"client_id"`
	Title     string        `json:"title"              db:"title"`
	Status    ContentStatus `json:"status"             db:"status"`
	DueDate   *time.Time    `json:"due_date,omitempty" db:"due_date"`
	URL       *string       `json:"url,omitempty"      db:"url"`
	CreatedAt time.Time     `json:"created_at"         db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"         db:"updated_at"`
}

// CreateContentRequest represents parameters to create a ContentItem.
type CreateContentRequest struct {
	ClientID string        `json:"-"`
	Title    string        `json:"title"`
	Status   ContentStatus `json:"status,omitempty"`
	DueDate  *time.Time    `json:"due_date,omitempty"`
	URL      *string       `json:"url,omitempty"`
}

// Validate checks required fields on a create content request.
func (r *CreateContentRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.ValidationField("title", "title is required")
	}
	if r.ClientID == "" {
		return errors.ValidationField("client_id", "client is required")
	}
	if r.Status != "" && !r.Status.Valid() {
		return errors.ValidationField("status", "unknown status")
	}
	return nil
}

// UpdateContentRequest represents parameters to update a ContentItem.
// Nil fields are left unchanged.
type UpdateContentRequest struct {
	Title   *string        `json:"title,omitempty"`
	Status  *ContentStatus `json:"status,omitempty"`
	DueDate *time.Time     `json:"due_date,omitempty"`
	URL     *string        `json:"url,omitempty"`
}

// Validate checks field constraints on an update content request.
func (r *UpdateContentRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.ValidationField("title", "title cannot be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.ValidationField("status", "unknown status")
	}
	return nil
}
