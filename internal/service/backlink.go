package service

import (
	"context"
	"time"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// BacklinkServiceOptions groups dependencies for BacklinkService.
type BacklinkServiceOptions struct {
	Backlinks core.BacklinkRepository
	Clients   core.ClientRepository

	// Now overrides the clock in tests (follow-up classification).
	Now func() time.Time
}

// BacklinkService orchestrates backlink outreach tracking for a client.
type BacklinkService struct {
	backlinks core.BacklinkRepository
	clients   core.ClientRepository
	now       func() time.Time
}

// NewBacklinkService constructs a new BacklinkService.
func NewBacklinkService(opts BacklinkServiceOptions) *BacklinkService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &BacklinkService{backlinks: opts.Backlinks, clients: opts.Clients, now: now}
}

// BacklinkView is a backlink together with its follow-up classification.
type BacklinkView struct {
	model.Backlink
	FollowUpState model.FollowUpState `json:"follow_up_state"`
}

func (s *BacklinkService) view(b *model.Backlink) *BacklinkView {
	return &BacklinkView{Backlink: *b, FollowUpState: b.FollowUp(s.now())}
}

// Create adds an outreach prospect to a client the session user owns.
func (s *BacklinkService) Create(ctx context.Context, sess *domainauth.Session, clientID string, req *model.CreateBacklinkRequest) (*BacklinkView, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	req.ClientID = clientID
	b, err := s.backlinks.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.view(b), nil
}

// ListByClient returns a client's backlinks with follow-up states. Non-owners
// see an empty list rather than an error.
func (s *BacklinkService) ListByClient(ctx context.Context, sess *domainauth.Session, clientID string) ([]*BacklinkView, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		if apperrors.IsForbidden(err) {
			return []*BacklinkView{}, nil
		}
		return nil, err
	}
	items, err := s.backlinks.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	views := make([]*BacklinkView, len(items))
	for i, b := range items {
		views[i] = s.view(b)
	}
	return views, nil
}

// GetByID retrieves a backlink the session user may access.
func (s *BacklinkService) GetByID(ctx context.Context, sess *domainauth.Session, id string) (*BacklinkView, error) {
	b, err := s.backlinks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := authorizeClient(ctx, s.clients, sess, b.ClientID); err != nil {
		return nil, err
	}
	return s.view(b), nil
}

// Update updates a backlink the session user owns.
func (s *BacklinkService) Update(ctx context.Context, sess *domainauth.Session, id string, req model.UpdateBacklinkRequest) (*BacklinkView, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return nil, err
	}
	b, err := s.backlinks.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return s.view(b), nil
}

// Delete removes a backlink.
func (s *BacklinkService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return false, err
	}
	return s.backlinks.Delete(ctx, id)
}
