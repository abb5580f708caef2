package model

import (
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// BacklinkStatus tracks where an outreach prospect sits in the pipeline.
type BacklinkStatus string

const (
	BacklinkStatusProspect    BacklinkStatus = "prospect"
	BacklinkStatusContacted   BacklinkStatus = "contacted"
	BacklinkStatusNegotiating BacklinkStatus = "negotiating"
	BacklinkStatusPlaced      BacklinkStatus = "placed"
	BacklinkStatusRejected    BacklinkStatus = "rejected"
)

// Valid reports whether the backlink status is supported.
func (s BacklinkStatus) Valid() bool {
	switch s {
	case BacklinkStatusProspect, BacklinkStatusContacted, BacklinkStatusNegotiating,
		BacklinkStatusPlaced, BacklinkStatusRejected:
		return true
	default:
		return false
	}
}

// FollowUpState classifies a follow-up date against the current time.
type FollowUpState string

const (
	FollowUpNone      FollowUpState = "none"
	FollowUpScheduled FollowUpState = "scheduled"
	FollowUpDueSoon   FollowUpState = "due_soon"
	FollowUpOverdue   FollowUpState = "overdue"
)

// followUpDueSoonWindow is how far ahead a follow-up counts as "due soon".
const followUpDueSoonWindow = 3 * 24 * time.Hour

// Backlink is an outreach prospect for a client.
type Backlink struct {
	ID           string         `json:"id"                      db:"id"`
	ClientID     string         `json:"client_id"               db:"client_id"`
	SourceDomain string         `json:"source_domain"           db:"source_domain"`
	TargetURL    string         `json:"target_url"              db:"target_url"`
	Status       BacklinkStatus `json:"status"                  db:"status"`
	ContactEmail *string        `json:"contact_email,omitempty" db:"contact_email"`
	FollowUpAt   *time.Time     `json:"follow_up_at,omitempty"  db:"follow_up_at"`
	Notes        *string        `json:"notes,omitempty"         db:"notes"`
	CreatedAt    time.Time      `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"              db:"updated_at"`
}

// FollowUp classifies the backlink's follow-up date relative to now:
// past dates are overdue, dates within the next three days are due soon,
// anything later is scheduled. Placed and rejected prospects never need
// follow-up.
func (b *Backlink) FollowUp(now time.Time) FollowUpState {
	if b.FollowUpAt == nil {
		return FollowUpNone
	}
	if b.Status == BacklinkStatusPlaced || b.Status == BacklinkStatusRejected {
		return FollowUpNone
	}
	switch {
	case b.FollowUpAt.Before(now):
		return FollowUpOverdue
	case b.FollowUpAt.Before(now.Add(followUpDueSoonWindow)):
		return FollowUpDueSoon
	default:
		return FollowUpScheduled
	}
}

// NormalizeSourceDomain lowercases a prospect domain and reduces it to its
// registrable form ("blog.example.co.uk" -> "example.co.uk"). Input that has
// no registrable suffix is returned trimmed and lowercased as-is.
func NormalizeSourceDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(d); err == nil {
		return etld
	}
	return d
}

// CreateBacklinkRequest represents parameters to create a Backlink.
type CreateBacklinkRequest struct {
	ClientID     string         `json:"-"`
	SourceDomain string         `json:"source_domain"`
	TargetURL    string         `json:"target_url"`
	Status       BacklinkStatus `json:"status,omitempty"`
	ContactEmail *string        `json:"contact_email,omitempty"`
	FollowUpAt   *time.Time     `json:"follow_up_at,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
}

// Validate checks required fields on a create backlink request.
func (r *CreateBacklinkRequest) Validate() error {
	if strings.TrimSpace(r.SourceDomain) == "" {
		return errors.ValidationField("source_domain", "source domain is required")
	}
	if r.ClientID == "" {
		return errors.ValidationField("client_id", "client is required")
	}
	if r.Status != "" && !r.Status.Valid() {
		return errors.ValidationField("status", "unknown status")
	}
	return nil
}

// UpdateBacklinkRequest represents parameters to update a Backlink.
// Nil fields are left unchanged.
type UpdateBacklinkRequest struct {
	SourceDomain *string         `json:"source_domain,omitempty"`
	TargetURL    *string         `json:"target_url,omitempty"`
	Status       *BacklinkStatus `json:"status,omitempty"`
	ContactEmail *string         `json:"contact_email,omitempty"`
	FollowUpAt   *time.Time      `json:"follow_up_at,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
}

// Validate checks field constraints on an update backlink request.
func (r *UpdateBacklinkRequest) Validate() error {
	if r.SourceDomain != nil && strings.TrimSpace(*r.SourceDomain) == "" {
		return errors.ValidationField("source_domain", "source domain cannot be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.ValidationField("status", "unknown status")
	}
	return nil
}
