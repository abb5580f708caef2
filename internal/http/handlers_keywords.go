package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// KeywordHandlers provides HTTP handlers for keyword tracking operations.
type KeywordHandlers struct {
	Svc *service.KeywordService
}

// ListByClient returns a client's tracked keywords.
// GET /api/clients/{id}/keywords.
func (h *KeywordHandlers) ListByClient(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	keywords, err := h.Svc.ListByClient(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, keywords)
}

// Create starts tracking a keyword for a client.
// POST /api/clients/{id}/keywords.
func (h *KeywordHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateKeywordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	keyword, err := h.Svc.Create(r.Context(), sess, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, keyword)
}

// Get retrieves one keyword.
// GET /api/keywords/{id}.
func (h *KeywordHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	keyword, err := h.Svc.GetByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, keyword)
}

// Update changes a keyword's term.
// PUT /api/keywords/{id}.
func (h *KeywordHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.UpdateKeywordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	keyword, err := h.Svc.Update(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, keyword)
}

// Delete stops tracking a keyword and drops its history.
// DELETE /api/keywords/{id}.
func (h *KeywordHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errNotFound("keyword"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordPosition records a new SERP position for a keyword.
// POST /api/keywords/{id}/positions.
func (h *KeywordHandlers) RecordPosition(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.RecordPositionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	keyword, err := h.Svc.RecordPosition(r.Context(), sess, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, keyword)
}

// History returns recent position records, newest first.
// GET /api/keywords/{id}/positions.
func (h *KeywordHandlers) History(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	limit, _ := ParseLimitOffset(r, 30, 365)

	records, err := h.Svc.History(r.Context(), sess, r.PathValue("id"), limit)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, records)
}
