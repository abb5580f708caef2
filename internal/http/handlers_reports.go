package httpx

import (
	"net/http"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// ReportHandlers provides HTTP handlers for the reporting gateway.
type ReportHandlers struct {
	Svc *service.ReportService
}

// Overview returns the combined Search Console and Analytics report for a
// client over a date range.
// GET /api/clients/{id}/report?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *ReportHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	rng, err := model.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	report, err := h.Svc.Overview(r.Context(), sess, r.PathValue("id"), rng)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, report)
}
