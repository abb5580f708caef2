package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		require.NotNil(t, sess)
		WriteJSON(w, http.StatusOK, map[string]string{"user_id": sess.UserID})
	})
}

func TestRequireAuth_NoCookie(t *testing.T) {
	auth := &stubSessionReader{}
	handler := RequireAuth(auth)(protectedEcho(t))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	auth := &stubSessionReader{sessions: map[string]*domainauth.Session{}}
	handler := RequireAuth(auth)(protectedEcho(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	sess := testSession(domainauth.RoleUser)
	auth := &stubSessionReader{sessions: map[string]*domainauth.Session{"token-1": sess}}
	handler := RequireAuth(auth)(protectedEcho(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-1"})
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireRole_UserBlocked(t *testing.T) {
	sess := testSession(domainauth.RoleUser)
	auth := &stubSessionReader{sessions: map[string]*domainauth.Session{"token-1": sess}}
	handler := RequireRole(auth, domainauth.RoleAdmin)(protectedEcho(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-1"})
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	sess := testSession(domainauth.RoleAdmin)
	auth := &stubSessionReader{sessions: map[string]*domainauth.Session{"token-1": sess}}
	handler := RequireRole(auth, domainauth.RoleAdmin)(protectedEcho(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-1"})
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecover_PanicBecomes500(t *testing.T) {
	logger := testLogger()
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
