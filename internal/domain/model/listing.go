package model

import (
	"strings"
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// ListingStatus is the availability of a marketplace listing.
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusSold      ListingStatus = "sold"
)

// Valid reports whether the listing status is supported.
func (s ListingStatus) Valid() bool {
	return s == ListingStatusAvailable || s == ListingStatusSold
}

// Listing is a backlink marketplace entry. Listings are agency-wide:
// admins manage them, every authenticated user can browse them.
type Listing struct {
	ID              string        `json:"id"               db:"id"`
	SourceDomain    string        `json:"source_domain"    db:"source_domain"`
	DomainAuthority int           `json:"domain_authority" db:"domain_authority"`
	MonthlyTraffic  int           `json:"monthly_traffic"  db:"monthly_traffic"`
	PriceCents      int           `json:"price_cents"      db:"price_cents"`
	Category        string        `json:"category"         db:"category"`
	Status          ListingStatus `json:"status"           db:"status"`
	CreatedAt       time.Time     `json:"created_at"       db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"       db:"updated_at"`
}

// ListingsListOptions controls filtering, sorting and paging when browsing
// the marketplace.
type ListingsListOptions struct {
	Limit  int
	Offset int

	Status             *ListingStatus
	Category           *string
	MaxPriceCents      *int
	MinDomainAuthority *int

	// Sort is one of price_cents, domain_authority, monthly_traffic or
	// created_at; Dir is asc or desc. Unknown values fall back to newest
	// first.
	Sort string
	Dir  string
}

// CreateListingRequest represents parameters to create a Listing.
type CreateListingRequest struct {
	SourceDomain    string `json:"source_domain"`
	DomainAuthority int    `json:"domain_authority"`
	MonthlyTraffic  int    `json:"monthly_traffic"`
	PriceCents      int    `json:"price_cents"`
	Category        string `json:"category"`
}

// Validate checks required fields on a create listing request.
func (r *CreateListingRequest) Validate() error {
	if strings.TrimSpace(r.SourceDomain) == "" {
		return errors.ValidationField("source_domain", "source domain is required")
	}
	if r.DomainAuthority < 0 || r.DomainAuthority > 100 {
		return errors.ValidationField("domain_authority", "domain authority must be between 0 and 100")
	}
	if r.PriceCents < 0 {
		return errors.ValidationField("price_cents", "price cannot be negative")
	}
	return nil
}

// UpdateListingRequest represents parameters to update a Listing.
// Nil fields are left unchanged.
type UpdateListingRequest struct {
	SourceDomain    *string        `json:"source_domain,omitempty"`
	DomainAuthority *int           `json:"domain_authority,omitempty"`
	MonthlyTraffic  *int           `json:"monthly_traffic,omitempty"`
	PriceCents      *int           `json:"price_cents,omitempty"`
	Category        *string        `json:"category,omitempty"`
	Status          *ListingStatus `json:"status,omitempty"`
}

// Validate checks field constraints on an update listing request.
func (r *UpdateListingRequest) Validate() error {
	if r.SourceDomain != nil && strings.TrimSpace(*r.SourceDomain) == "" {
		return errors.ValidationField("source_domain", "source domain cannot be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.ValidationField("status", "unknown status")
	}
	if r.DomainAuthority != nil && (*r.DomainAuthority < 0 || *r.DomainAuthority > 100) {
		return errors.ValidationField("domain_authority", "domain authority must be between 0 and 100")
	}
	return nil
}
