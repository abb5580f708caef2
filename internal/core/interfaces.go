package core

import (
	"context"
	"time"

	"github.com/seopulse/seopulse-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// ClientRepository defines the interface for client (tenant) data operations.
type ClientRepository interface {
	Create(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
	List(ctx context.Context, opts model.ClientsListOptions) ([]*model.Client, error)
	Update(ctx context.Context, id string, req model.UpdateClientRequest) (*model.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CredentialRepository defines the interface for the per-client Google
// credential store. Tokens are encrypted at rest by the implementation.
type CredentialRepository interface {
	// Get returns the credential for a client, or a NotFound error when the
	// client has never connected.
	Get(ctx context.Context, clientID string) (*model.Credential, error)

	// Upsert persists a token set for a client, creating the credential row
	// on first connection. An empty RefreshToken in the update must leave
	// any stored refresh token untouched.
	Upsert(ctx context.Context, upd model.TokenUpdate) error
}

// KeywordRepository defines the interface for keyword data operations.
type KeywordRepository interface {
	Create(ctx context.Context, req *model.CreateKeywordRequest) (*model.Keyword, error)
	GetByID(ctx context.Context, id string) (*model.Keyword, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.Keyword, error)
	Update(ctx context.Context, id string, req model.UpdateKeywordRequest) (*model.Keyword, error)
	Delete(ctx context.Context, id string) (bool, error)

	// RecordPosition atomically shifts the keyword's current position into
	// previous_position, stores the new position, and appends a history row.
	// Either all three effects happen or none.
	RecordPosition(ctx context.Context, req *model.RecordPositionRequest) (*model.Keyword, error)

	// History returns recent position records, newest first.
	History(ctx context.Context, keywordID string, limit int) ([]*model.PositionRecord, error)
}

// BacklinkRepository defines the interface for backlink outreach data operations.
type BacklinkRepository interface {
	Create(ctx context.Context, req *model.CreateBacklinkRequest) (*model.Backlink, error)
	GetByID(ctx context.Context, id string) (*model.Backlink, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.Backlink, error)
	Update(ctx context.Context, id string, req model.UpdateBacklinkRequest) (*model.Backlink, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContentRepository defines the interface for content pipeline data operations.
type ContentRepository interface {
	Create(ctx context.Context, req *model.CreateContentRequest) (*model.ContentItem, error)
	GetByID(ctx context.Context, id string) (*model.ContentItem, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.ContentItem, error)
	Update(ctx context.Context, id string, req model.UpdateContentRequest) (*model.ContentItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RoadmapRepository defines the interface for roadmap task data operations.
type RoadmapRepository interface {
	Create(ctx context.Context, req *model.CreateRoadmapTaskRequest) (*model.RoadmapTask, error)
	GetByID(ctx context.Context, id string) (*model.RoadmapTask, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.RoadmapTask, error)
	SetStatus(ctx context.Context, id string, status model.RoadmapStatus) (*model.RoadmapTask, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AuditRepository defines the interface for the technical audit blob.
type AuditRepository interface {
	// Get returns the audit for a client, or a NotFound error when none has
	// been saved yet.
	Get(ctx context.Context, clientID string) (*model.Audit, error)
	Upsert(ctx context.Context, clientID string, items model.AuditItems) (*model.Audit, error)
}

// ListingRepository defines the interface for marketplace listing data operations.
type ListingRepository interface {
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	List(ctx context.Context, opts model.ListingsListOptions) ([]*model.Listing, error)
	Update(ctx context.Context, id string, req model.UpdateListingRequest) (*model.Listing, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RevocationStore records session token ids invalidated before their natural
// expiry (logout). Implementations expire entries on their own.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
