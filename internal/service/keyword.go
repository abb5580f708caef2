package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// KeywordServiceOptions groups dependencies for KeywordService.
type KeywordServiceOptions struct {
	Keywords core.KeywordRepository
	Clients  core.ClientRepository
}

// KeywordService orchestrates keyword tracking for a client.
type KeywordService struct {
	keywords core.KeywordRepository
	clients  core.ClientRepository
}

// NewKeywordService constructs a new KeywordService.
func NewKeywordService(opts KeywordServiceOptions) *KeywordService {
	return &KeywordService{keywords: opts.Keywords, clients: opts.Clients}
}

// Create adds a keyword to a client the session user owns.
func (s *KeywordService) Create(ctx context.Context, sess *domainauth.Session, clientID string, req *model.CreateKeywordRequest) (*model.Keyword, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	req.ClientID = clientID
	return s.keywords.Create(ctx, req)
}

// ListByClient returns a client's keywords. Non-owners see an empty list
// rather than an error.
func (s *KeywordService) ListByClient(ctx context.Context, sess *domainauth.Session, clientID string) ([]*model.Keyword, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		if apperrors.IsForbidden(err) {
			return []*model.Keyword{}, nil
		}
		return nil, err
	}
	return s.keywords.ListByClient(ctx, clientID)
}

// GetByID retrieves a keyword the session user may access.
func (s *KeywordService) GetByID(ctx context.Context, sess *domainauth.Session, id string) (*model.Keyword, error) {
	kw, err := s.keywords.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := authorizeClient(ctx, s.clients, sess, kw.ClientID); err != nil {
		return nil, err
	}
	return kw, nil
}

// Update changes a keyword's term. Positions are never edited directly; use
// RecordPosition.
func (s *KeywordService) Update(ctx context.Context, sess *domainauth.Session, id string, req model.UpdateKeywordRequest) (*model.Keyword, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.keywords.Update(ctx, id, req)
}

// RecordPosition records a new SERP position for a keyword. The shift of the
// previous position and the history append happen atomically.
func (s *KeywordService) RecordPosition(ctx context.Context, sess *domainauth.Session, keywordID string, req *model.RecordPositionRequest) (*model.Keyword, error) {
	if _, err := s.GetByID(ctx, sess, keywordID); err != nil {
		return nil, err
	}
	req.KeywordID = keywordID
	return s.keywords.RecordPosition(ctx, req)
}

// History returns recent position records for a keyword, newest first.
func (s *KeywordService) History(ctx context.Context, sess *domainauth.Session, keywordID string, limit int) ([]*model.PositionRecord, error) {
	if _, err := s.GetByID(ctx, sess, keywordID); err != nil {
		return nil, err
	}
	return s.keywords.History(ctx, keywordID, limit)
}

// Delete removes a keyword and its history.
func (s *KeywordService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return false, err
	}
	return s.keywords.Delete(ctx, id)
}
