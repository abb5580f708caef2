package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// AuditHandlers provides HTTP handlers for the technical audit blob.
type AuditHandlers struct {
	Svc *service.AuditService
}

// Checklist returns the registry of known audit checks.
// GET /api/audits/checklist.
func (h *AuditHandlers) Checklist(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Checklist())
}

// Get returns a client's audit. A client that never saved one gets an empty
// audit, not a 404.
// GET /api/clients/{id}/audit.
func (h *AuditHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	audit, err := h.Svc.Get(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, audit)
}

// Save replaces a client's audit blob. Last write wins.
// PUT /api/clients/{id}/audit.
func (h *AuditHandlers) Save(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req struct {
		Items model.AuditItems `json:"items"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	audit, err := h.Svc.Save(r.Context(), sess, r.PathValue("id"), req.Items)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, audit)
}
