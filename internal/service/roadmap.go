package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// RoadmapServiceOptions groups dependencies for RoadmapService.
type RoadmapServiceOptions struct {
	Tasks   core.RoadmapRepository
	Clients core.ClientRepository
}

// RoadmapService orchestrates per-client roadmap tasks.
type RoadmapService struct {
	tasks   core.RoadmapRepository
	clients core.ClientRepository
}

// NewRoadmapService constructs a new RoadmapService.
func NewRoadmapService(opts RoadmapServiceOptions) *RoadmapService {
	return &RoadmapService{tasks: opts.Tasks, clients: opts.Clients}
}

// Create adds a roadmap task to a client the session user owns.
func (s *RoadmapService) Create(ctx context.Context, sess *domainauth.Session, clientID string, req *model.CreateRoadmapTaskRequest) (*model.RoadmapTask, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	req.ClientID = clientID
	return s.tasks.Create(ctx, req)
}

// ListByClient returns a client's roadmap tasks. Non-owners see an empty
// list rather than an error.
func (s *RoadmapService) ListByClient(ctx context.Context, sess *domainauth.Session, clientID string) ([]*model.RoadmapTask, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		if apperrors.IsForbidden(err) {
			return []*model.RoadmapTask{}, nil
		}
		return nil, err
	}
	return s.tasks.ListByClient(ctx, clientID)
}

// SetStatus flips a task between pending and completed.
func (s *RoadmapService) SetStatus(ctx context.Context, sess *domainauth.Session, id string, status model.RoadmapStatus) (*model.RoadmapTask, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := authorizeClient(ctx, s.clients, sess, task.ClientID); err != nil {
		return nil, err
	}
	return s.tasks.SetStatus(ctx, id, status)
}

// Delete removes a roadmap task.
func (s *RoadmapService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if _, err := authorizeClient(ctx, s.clients, sess, task.ClientID); err != nil {
		return false, err
	}
	return s.tasks.Delete(ctx, id)
}
