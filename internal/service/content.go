package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// ContentServiceOptions groups dependencies for ContentService.
type ContentServiceOptions struct {
	Content core.ContentRepository
	Clients core.ClientRepository
}

// ContentService orchestrates the content pipeline for a client.
type ContentService struct {
	content core.ContentRepository
	clients core.ClientRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(opts ContentServiceOptions) *ContentService {
	return &ContentService{content: opts.Content, clients: opts.Clients}
}

// Create adds a content item to a client the session user owns.
func (s *ContentService) Create(ctx context.Context, sess *domainauth.Session, clientID string, req *model.CreateContentRequest) (*model.ContentItem, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	req.ClientID = clientID
	return s.content.Create(ctx, req)
}

// ListByClient returns a client's content items. Non-owners see an empty
// list rather than an error.
func (s *ContentService) ListByClient(ctx context.Context, sess *domainauth.Session, clientID string) ([]*model.ContentItem, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		if apperrors.IsForbidden(err) {
			return []*model.ContentItem{}, nil
		}
		return nil, err
	}
	return s.content.ListByClient(ctx, clientID)
}

// GetByID retrieves a content item the session user may access.
func (s *ContentService) GetByID(ctx context.Context, sess *domainauth.Session, id string) (*model.ContentItem, error) {
	item, err := s.content.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := authorizeClient(ctx, s.clients, sess, item.ClientID); err != nil {
		return nil, err
	}
	return item, nil
}

// Update updates a content item the session user owns.
func (s *ContentService) Update(ctx context.Context, sess *domainauth.Session, id string, req model.UpdateContentRequest) (*model.ContentItem, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.content.Update(ctx, id, req)
}

// Delete removes a content item.
func (s *ContentService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return false, err
	}
	return s.content.Delete(ctx, id)
}
