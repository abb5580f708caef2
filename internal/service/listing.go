package service

import (
	"context"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
)

// ListingServiceOptions groups dependencies for ListingService.
type ListingServiceOptions struct {
	Listings core.ListingRepository
}

// ListingService owns the backlink marketplace. Listings are shared
// inventory: any authenticated user can browse, only admins manage.
type ListingService struct {
	listings core.ListingRepository
}

// NewListingService constructs a new ListingService.
func NewListingService(opts ListingServiceOptions) *ListingService {
	return &ListingService{listings: opts.Listings}
}

// List returns marketplace listings for any authenticated user.
func (s *ListingService) List(ctx context.Context, sess *domainauth.Session, opts model.ListingsListOptions) ([]*model.Listing, error) {
	if sess == nil {
		return []*model.Listing{}, nil
	}
	return s.listings.List(ctx, opts)
}

// GetByID retrieves a listing for any authenticated user.
func (s *ListingService) GetByID(ctx context.Context, sess *domainauth.Session, id string) (*model.Listing, error) {
	if sess == nil {
		return nil, apperrors.Forbidden("login required")
	}
	return s.listings.GetByID(ctx, id)
}

// Create adds a listing. Admin only.
func (s *ListingService) Create(ctx context.Context, sess *domainauth.Session, req *model.CreateListingRequest) (*model.Listing, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.listings.Create(ctx, req)
}

// Update updates a listing. Admin only.
func (s *ListingService) Update(ctx context.Context, sess *domainauth.Session, id string, req model.UpdateListingRequest) (*model.Listing, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.listings.Update(ctx, id, req)
}

// Delete removes a listing. Admin only.
func (s *ListingService) Delete(ctx context.Context, sess *domainauth.Session, id string) (bool, error) {
	if err := requireAdmin(sess); err != nil {
		return false, err
	}
	return s.listings.Delete(ctx, id)
}

func requireAdmin(sess *domainauth.Session) error {
	if sess == nil || !sess.IsAdmin() {
		return apperrors.Forbidden("admin role required")
	}
	return nil
}
