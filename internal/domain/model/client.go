package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/seopulse/seopulse-api/internal/errors"
)

const maxClientNameLen = 255

// Client represents an agency customer (tenant). All SEO data (keywords,
// backlinks, content, audits, credentials) is scoped to a client, and
// access follows the client's owner.
type Client struct {
	ID      string `json:"id"       db:"id"`
	Name    string `json:"name"     db:"name"`
	Domain  string `json:"domain"   db:"domain"`
	OwnerID string `json:"owner_id" db:"owner_id"`

	// SiteURL is the Search Console property (e.g. "sc-domain:example.com"
	// or "https://example.com/"). Optional; settable independently of
	// AnalyticsPropertyID.
	SiteURL *string `json:"site_url,omitempty" db:"site_url"`

	// AnalyticsPropertyID is the numeric GA4 property id. Optional.
	AnalyticsPropertyID *string `json:"analytics_property_id,omitempty" db:"analytics_property_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasSearchConsole reports whether a Search Console property is configured.
func (c *Client) HasSearchConsole() bool {
	return c.SiteURL != nil && strings.TrimSpace(*c.SiteURL) != ""
}

// HasAnalytics reports whether a GA4 property is configured.
func (c *Client) HasAnalytics() bool {
	return c.AnalyticsPropertyID != nil && strings.TrimSpace(*c.AnalyticsPropertyID) != ""
}

// CreateClientRequest represents parameters to create a Client.
// OwnerID is taken from the session, never from the request body.
type CreateClientRequest struct {
	Name                string  `json:"name"`
	Domain              string  `json:"domain"`
	SiteURL             *string `json:"site_url,omitempty"`
	AnalyticsPropertyID *string `json:"analytics_property_id,omitempty"`
	OwnerID             string  `json:"-"`
}

// Validate checks required fields on a create client request.
func (r *CreateClientRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.ValidationField("name", "name is required")
	}
	if utf8.RuneCountInString(r.Name) > maxClientNameLen {
		return errors.ValidationField("name", "name is too long")
	}
	if strings.TrimSpace(r.Domain) == "" {
		return errors.ValidationField("domain", "domain is required")
	}
	if r.OwnerID == "" {
		return errors.ValidationField("owner_id", "owner is required")
	}
	return nil
}

// UpdateClientRequest represents parameters to update a Client.
// Nil fields are left unchanged.
type UpdateClientRequest struct {
	Name                *string `json:"name,omitempty"`
	Domain              *string `json:"domain,omitempty"`
	SiteURL             *string `json:"site_url,omitempty"`
	AnalyticsPropertyID *string `json:"analytics_property_id,omitempty"`
}

// Validate checks field constraints on an update client request.
func (r *UpdateClientRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.ValidationField("name", "name cannot be empty")
	}
	if r.Name != nil && utf8.RuneCountInString(*r.Name) > maxClientNameLen {
		return errors.ValidationField("name", "name is too long")
	}
	if r.Domain != nil && strings.TrimSpace(*r.Domain) == "" {
		return errors.ValidationField("domain", "domain cannot be empty")
	}
	return nil
}

// ClientsListOptions controls paging for listing clients.
type ClientsListOptions struct {
	Limit  int
	Offset int
	// OwnerID restricts the listing to one owner. Empty means all owners
	// (admin listings).
	OwnerID string
}
