package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// ClientServiceOptions groups dependencies for ClientService.
type ClientServiceOptions struct {
	Clients core.ClientRepository
}

// ClientService orchestrates client (tenant) CRUD with the ownership policy.
type ClientService struct {
	clients core.ClientRepository
}

// NewClientService constructs a new ClientService.
func NewClientService(opts ClientServiceOptions) *ClientService {
	return &ClientService{clients: opts.Clients}
}

// Create creates a client owned by the session user.
func (s *ClientService) Create(ctx context.Context, sess *domainauth.Session, req *model.CreateClientRequest) (*model.Client, error) {
	if sess == nil {
		return nil, apperrors.Forbidden("login required")
	}
	req.OwnerID = sess.UserID
	return s.clients.Create(ctx, req)
}

// GetByID retrieves a client the session user may access.
func (s *ClientService) GetByID(ctx context.Context, sess *domainauth.Session, id string) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domainauth.Authorize(sess, client.OwnerID) {
		return nil, apperrors.Forbidden("not allowed to access this client")
	}
	return client, nil
}

// List returns the clients visible to the session user: all of them for
// admins, the user's own otherwise. A nil session sees nothing rather than
// an error.
func (s *ClientService) List(ctx context.Context, sess *domainauth.Session, opts model.ClientsListOptions) ([]*model.Client, error) {
	if sess == nil {
		return []*model.Client{}, nil
	}
	if !sess.IsAdmin() {
		opts.OwnerID = sess.UserID
	}
	return s.clients.List(ctx, opts)
}

// Update updates a client the session user owns.
func (s *ClientService) Update(ctx context.Context, sess *domainauth.Session, id string, req model.UpdateClientRequest) (*model.Client, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return nil, err
	}
	return s.clients.Update(ctx, id, req)
}

// Delete removes a client and, through the schema, everything scoped to it:
// credentials, keywords with their history, backlinks, content, roadmap
// tasks and the audit blob.
func (s *ClientService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	if _, err := s.GetByID(ctx, sess, id); err != nil {
		return false, err
	}
	return s.clients.Delete(ctx, id)
}

// authorizeClient is the shared transitive ownership check used by every
// client-scoped service: resolve the client row, then apply the policy to
// its owner.
func authorizeClient(ctx context.Context, clients core.ClientRepository, sess *domainauth.Session, clientID string) (*model.Client, error) {
	client, err := clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !domainauth.Authorize(sess, client.OwnerID) {
		return nil, apperrors.Forbidden("not allowed to access this client")
	}
	return client, nil
}
