package httpx

import (
	"errors"
	"net/http"

	"github.com/seopulse/seopulse-api/internal/service"
)

// GoogleHandlers provides HTTP handlers for connecting a client to Google.
type GoogleHandlers struct {
	Svc *service.GoogleService

	// SettingsPath is the dashboard path prefix the browser lands on after
	// a completed connection. Defaults to "/clients".
	SettingsPath string
}

// Connect returns the Google consent URL for a client.
// GET /api/clients/{id}/google/connect.
func (h *GoogleHandlers) Connect(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	url, err := h.Svc.AuthorizationURL(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Status reports whether a client has a Google connection.
// GET /api/clients/{id}/google/status.
func (h *GoogleHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	connected, err := h.Svc.Connected(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"connected": connected})
}

// Callback completes the Google consent flow. The state parameter carries
// the client id the flow was started for.
// GET /google/callback?code=<code>&state=<client_id>.
func (h *GoogleHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	code := r.URL.Query().Get("code")
	clientID := r.URL.Query().Get("state")
	if clientID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	if err := h.Svc.CompleteConnection(r.Context(), sess, clientID, code); err != nil {
		WriteAppError(w, err)
		return
	}

	base := h.SettingsPath
	if base == "" || base[0] != '/' {
		base = "/clients"
	}
	http.Redirect(w, r, base+"/"+clientID+"/settings?connected=1", http.StatusFound)
}
