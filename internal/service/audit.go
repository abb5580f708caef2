package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// AuditServiceOptions groups dependencies for AuditService.
type AuditServiceOptions struct {
	Audits  core.AuditRepository
	Clients core.ClientRepository
}

// AuditService owns the per-client technical audit checklist.
type AuditService struct {
	audits  core.AuditRepository
	clients core.ClientRepository
}

// NewAuditService constructs a new AuditService.
func NewAuditService(opts AuditServiceOptions) *AuditService {
	return &AuditService{audits: opts.Audits, clients: opts.Clients}
}

// Checklist returns the known audit checklist items.
func (s *AuditService) Checklist() []model.ChecklistItem {
	return model.Checklist()
}

// Get returns a client's audit. A client that has never saved an audit gets
// an empty one, with every checklist item implicitly pending.
func (s *AuditService) Get(ctx context.Context, sess *domainauth.Session, clientID string) (*model.Audit, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	audit, err := s.audits.Get(ctx, clientID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return &model.Audit{ClientID: clientID, Items: model.AuditItems{}}, nil
		}
		return nil, err
	}
	audit.Items = audit.Items.Normalize()
	return audit, nil
}

// Save replaces a client's audit blob. Unknown checklist item ids are
// dropped and invalid statuses reset to pending before storage.
func (s *AuditService) Save(ctx context.Context, sess *domainauth.Session, clientID string, items model.AuditItems) (*model.Audit, error) {
	if _, err := authorizeClient(ctx, s.clients, sess, clientID); err != nil {
		return nil, err
	}
	return s.audits.Upsert(ctx, clientID, items.Normalize())
}
