package ports

// Package ports defines interfaces (hexagonal ports) for auth-related and
// external-provider behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

// BeginInput carries inputs for initiating an SSO auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the SSO code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes a dashboard login flow against an IdP.
// Used only in oauth auth mode; credentials mode checks the local user table.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// RoleMapper maps provider groups to application roles.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}

// SessionCodec issues and verifies signed session tokens.
type SessionCodec interface {
	// Issue creates a signed token for the identity and returns it together
	// with the session payload it encodes.
	Issue(id domainauth.Identity) (string, domainauth.Session, error)

	// Verify returns the session a token encodes, or nil when the token is
	// malformed, tampered with, or expired. Verification never errors.
	Verify(token string) *domainauth.Session
}
