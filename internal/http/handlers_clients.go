package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// ClientHandlers provides HTTP handlers for client (tenant) operations.
type ClientHandlers struct {
	Svc *service.ClientService
}

// List returns the clients visible to the session user.
// GET /api/clients.
func (h *ClientHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, 200)

	clients, err := h.Svc.List(r.Context(), sess, model.ClientsListOptions{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, clients)
}

// Create adds a new client owned by the session user.
// POST /api/clients.
func (h *ClientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	client, err := h.Svc.Create(r.Context(), sess, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, client)
}

// Get retrieves one client.
// GET /api/clients/{id}.
func (h *ClientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	client, err := h.Svc.GetByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}

// Update applies partial changes to a client.
// PUT /api/clients/{id}.
func (h *ClientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.UpdateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	client, err := h.Svc.Update(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}

// Delete removes a client and its dependent records.
// DELETE /api/clients/{id}.
func (h *ClientHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errNotFound("client"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
