package model

import (
	"strings"
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// Keyword is a tracked search term for a client. Position is the latest
// recorded SERP position (nil until the first recording); PreviousPosition
// is the one before that, kept for movement display.
type Keyword struct {
	ID               string    `json:"id"                          db:"id"`
	ClientID         string    `json:"client_id"                   db:"client_id"`
	Term             string    `json:"term"                        db:"term"`
	Position         *int      `json:"position,omitempty"          db:"position"`
	PreviousPosition *int      `json:"previous_position,omitempty" db:"previous_position"`
	CreatedAt        time.Time `json:"created_at"                  db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"                  db:"updated_at"`
}

// Movement returns the position delta since the previous recording.
// Positive means the keyword moved up (lower position number).
func (k *Keyword) Movement() int {
	if k.Position == nil || k.PreviousPosition == nil {
		return 0
	}
	return *k.PreviousPosition - *k.Position
}

// PositionRecord is one historical SERP position measurement.
type PositionRecord struct {
	ID         string    `json:"id"          db:"id"`
	KeywordID  string    `json:"keyword_id"  db:"keyword_id"`
	Position   int       `json:"position"    db:"position"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// CreateKeywordRequest represents parameters to create a Keyword.
type CreateKeywordRequest struct {
	ClientID string `json:"-"`
	Term     string `json:"term"`
}

// Validate checks required fields on a create keyword request.
func (r *CreateKeywordRequest) Validate() error {
	if strings.TrimSpace(r.Term) == "" {
		return errors.ValidationField("term", "term is required")
	}
	if r.ClientID == "" {
		return errors.ValidationField("client_id", "client is required")
	}
	return nil
}

// UpdateKeywordRequest represents updatable keyword fields. Nil fields are
// left unchanged.
type UpdateKeywordRequest struct {
	Term *string `json:"term,omitempty"`
}

// Validate checks constraints on an update keyword request.
func (r *UpdateKeywordRequest) Validate() error {
	if r.Term != nil && strings.TrimSpace(*r.Term) == "" {
		return errors.ValidationField("term", "term cannot be empty")
	}
	return nil
}

// RecordPositionRequest records a new SERP position for a keyword.
type RecordPositionRequest struct {
	KeywordID string `json:"-"`
	Position  int    `json:"position"`
}

// Validate checks constraints on a record position request.
func (r *RecordPositionRequest) Validate() error {
	if r.Position < 1 {
		return errors.ValidationField("position", "position must be at least 1")
	}
	return nil
}
