package model

import (
	"time"
)

// AuditItemStatus is the state of one technical-audit checklist item.
type AuditItemStatus string

const (
	AuditItemPending       AuditItemStatus = "pending"
	AuditItemPassed        AuditItemStatus = "passed"
	AuditItemFailed        AuditItemStatus = "failed"
	AuditItemNotApplicable AuditItemStatus = "n/a"
)

// Valid reports whether the audit item status is supported.
func (s AuditItemStatus) Valid() bool {
	switch s {
	case AuditItemPending, AuditItemPassed, AuditItemFailed, AuditItemNotApplicable:
		return true
	default:
		return false
	}
}

// AuditEntry is the recorded state for one checklist item.
type AuditEntry struct {
	Status AuditItemStatus `json:"status"`
	Notes  string          `json:"notes,omitempty"`
}

// AuditItems is the audit blob as stored: a mapping from checklist item id
// to its entry. The checklist evolves, so entries are validated against the
// item registry on save rather than pinned to a fixed schema.
type AuditItems map[string]AuditEntry

// Audit is the technical audit for one client.
type Audit struct {
	ClientID  string     `json:"client_id"  db:"client_id"`
	Items     AuditItems `json:"items"      db:"items"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// ChecklistItem describes one known technical-audit check.
type ChecklistItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

// auditChecklist is the registry of known checklist items. Stored blobs may
// reference a subset; unknown ids are dropped on read.
var auditChecklist = []ChecklistItem{
	{ID: "meta-titles", Category: "on-page", Title: "Unique meta titles on all pages"},
	{ID: "meta-descriptions", Category: "on-page", Title: "Meta descriptions present and within length"},
	{ID: "heading-structure", Category: "on-page", Title: "Single H1 and logical heading order"},
	{ID: "image-alt-text", Category: "on-page", Title: "Images carry descriptive alt text"},
	{ID: "canonical-tags", Category: "indexing", Title: "Canonical tags on duplicate-prone pages"},
	{ID: "robots-txt", Category: "indexing", Title: "robots.txt present and not blocking key paths"},
	{ID: "xml-sitemap", Category: "indexing", Title: "XML sitemap submitted to Search Console"},
	{ID: "noindex-review", Category: "indexing", Title: "No unintended noindex directives"},
	{ID: "https", Category: "technical", Title: "Site served over HTTPS with valid certificate"},
	{ID: "mobile-friendly", Category: "technical", Title: "Pages pass mobile usability checks"},
	{ID: "core-web-vitals", Category: "technical", Title: "Core Web Vitals within thresholds"},
	{ID: "structured-data", Category: "technical", Title: "Structured data valid for key templates"},
	{ID: "broken-links", Category: "technical", Title: "No broken internal links"},
	{ID: "redirect-chains", Category: "technical", Title: "No redirect chains or loops"},
	{ID: "page-404", Category: "technical", Title: "Custom 404 page returns status 404"},
}

// Checklist returns the registry of known audit checklist items.
func Checklist() []ChecklistItem {
	out := make([]ChecklistItem, len(auditChecklist))
	copy(out, auditChecklist)
	return out
}

// ChecklistHas reports whether the registry contains the given item id.
func ChecklistHas(id string) bool {
	for _, item := range auditChecklist {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Normalize validates a stored audit blob against the checklist registry:
// unknown item ids are dropped, missing or unknown statuses default to
// pending. The receiver is not modified.
func (items AuditItems) Normalize() AuditItems {
	out := make(AuditItems, len(items))
	for id, entry := range items {
		if !ChecklistHas(id) {
			continue
		}
		if !entry.Status.Valid() {
			entry.Status = AuditItemPending
		}
		out[id] = entry
	}
	return out
}
