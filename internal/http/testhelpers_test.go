package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

// testLogger discards log output in tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSessionReader resolves fixed tokens to fixed sessions in tests.
type stubSessionReader struct {
	sessions map[string]*domainauth.Session
}

func (s *stubSessionReader) GetSession(_ context.Context, token string) *domainauth.Session {
	return s.sessions[token]
}

// testSession returns a user session for handler tests.
func testSession(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		UserID:    "user-1",
		Email:     "user@agency.test",
		Name:      "Test User",
		Role:      role,
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// withSession attaches a session to a request the way RequireAuth would.
func withSession(r *http.Request, sess *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), sess))
}
