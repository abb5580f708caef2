package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// BacklinkHandlers provides HTTP handlers for backlink operations.
type BacklinkHandlers struct {
	Svc *service.BacklinkService
}

// ListByClient returns a client's backlinks with follow-up classification.
// GET /api/clients/{id}/backlinks.
func (h *BacklinkHandlers) ListByClient(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	backlinks, err := h.Svc.ListByClient(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, backlinks)
}

// Create records a new backlink for a client.
// POST /api/clients/{id}/backlinks.
func (h *BacklinkHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateBacklinkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	backlink, err := h.Svc.Create(r.Context(), sess, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, backlink)
}

// Get retrieves one backlink.
// GET /api/backlinks/{id}.
func (h *BacklinkHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	backlink, err := h.Svc.GetByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, backlink)
}

// Update applies partial changes to a backlink.
// PUT /api/backlinks/{id}.
func (h *BacklinkHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.UpdateBacklinkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	backlink, err := h.Svc.Update(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, backlink)
}

// Delete removes a backlink.
// DELETE /api/backlinks/{id}.
func (h *BacklinkHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	deleted, err := h.Svc.Delete(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errNotFound("backlink"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
