package httpx

import (
	"context"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

type sessionKey struct{}

// SetSessionInContext stores the session in the request context.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session stored by the auth middleware,
// or nil when the request is unauthenticated.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	session, _ := ctx.Value(sessionKey{}).(*domainauth.Session)
	return session
}
