package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// ContentHandlers provides HTTP handlers for the content pipeline.
type ContentHandlers struct {
	Svc *service.ContentService
}

// ListByClient returns a client's content items.
// GET /api/clients/{id}/content.
func (h *ContentHandlers) ListByClient(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	items, err := h.Svc.ListByClient(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// Create adds a content item to a client's pipeline.
// POST /api/clients/{id}/content.
func (h *ContentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateContentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Create(r.Context(), sess, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

// Get retrieves one content item.
// GET /api/content/{id}.
func (h *ContentHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	item, err := h.Svc.GetByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Update applies partial changes to a content item, including stage moves.
// PUT /api/content/{id}.
func (h *ContentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.UpdateContentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.Update(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Delete removes a content item.
// DELETE /api/content/{id}.
func (h *ContentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errNotFound("content item"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
