package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// RoadmapHandlers provides HTTP handlers for roadmap tasks.
type RoadmapHandlers struct {
	Svc *service.RoadmapService
}

// ListByClient returns a client's roadmap tasks.
// GET /api/clients/{id}/roadmap.
func (h *RoadmapHandlers) ListByClient(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	tasks, err := h.Svc.ListByClient(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tasks)
}

// Create adds a roadmap task for a client.
// POST /api/clients/{id}/roadmap.
func (h *RoadmapHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateRoadmapTaskRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	task, err := h.Svc.Create(r.Context(), sess, r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, task)
}

// SetStatus flips a task between pending and completed.
// PUT /api/roadmap/{id}.
func (h *RoadmapHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req struct {
		Status model.RoadmapStatus `json:"status"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	task, err := h.Svc.SetStatus(r.Context(), sess, r.PathValue("id"), req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, task)
}

// Delete removes a roadmap task.
// DELETE /api/roadmap/{id}.
func (h *RoadmapHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errNotFound("roadmap task"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
