package model

import (
	"strings"
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// RoadmapStatus is the completion state of a roadmap task.
type RoadmapStatus string

const (
	RoadmapStatusPending   RoadmapStatus = "pending"
	RoadmapStatusCompleted RoadmapStatus = "completed"
)

// Valid reports whether the roadmap status is supported.
func (s RoadmapStatus) Valid() bool {
	return s == RoadmapStatusPending || s == RoadmapStatusCompleted
}

// RoadmapTask is a per-client checklist item, unrelated to the Google
// integration but sharing the same ownership model.
type RoadmapTask struct {
	ID        string        `json:"id"         db:"id"`
	ClientID  string        `json:"client_id"  db:"client_id"`
	Title     string        `json:"title"      db:"title"`
	Status    RoadmapStatus `json:"status"     db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateRoadmapTaskRequest represents parameters to create a RoadmapTask.
type CreateRoadmapTaskRequest struct {
	ClientID string `json:"-"`
	Title    string `json:"title"`
}

// Validate checks required fields on a create roadmap task request.
func (r *CreateRoadmapTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.ValidationField("title", "title is required")
	}
	if r.ClientID == "" {
		return errors.ValidationField("client_id", "client is required")
	}
	return nil
}
