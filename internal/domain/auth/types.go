package auth

// Package auth contains domain-level types for authentication, sessions, and
// the authorization policy. It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and token claims.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a role string, defaulting to user for unknown values.
func ParseRole(v string) Role {
	if Role(v) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Identity represents the authenticated principal returned by an IdP or the
// local credential check. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID string // stable user identifier
	Name   string
	Email  string
	Groups []string // IdP groups, empty for local logins
	Role   Role     // resolved role; adapters may leave zero for group mapping
}

// Session is the payload carried by the signed session token.
// TokenID is the token's unique id (jti), used for revocation at logout.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Authorize is the single ownership policy applied across all data access:
// admins may act on any tenant's resources, everyone else only on resources
// whose owner is the session user.
//
// A nil session is never authorized.
func Authorize(s *Session, ownerID string) bool {
	if s == nil {
		return false
	}
	if s.Role == RoleAdmin {
		return true
	}
	return ownerID != "" && s.UserID == ownerID
}
