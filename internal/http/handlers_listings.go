package httpx

import (
	"net/http"
	"strconv"

	"github.com/seopulse/seopulse-api/internal/domain/model"
	"github.com/seopulse/seopulse-api/internal/service"
)

// ListingHandlers provides HTTP handlers for the backlink marketplace.
type ListingHandlers struct {
	Svc *service.ListingService
}

// List browses the marketplace with filters and sorting.
// GET /api/listings.
func (h *ListingHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	listings, err := h.Svc.List(r.Context(), sess, listingOptions(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, listings)
}

// Get retrieves one listing.
// GET /api/listings/{id}.
func (h *ListingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	listing, err := h.Svc.GetByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, listing)
}

// Create adds a listing. Admin-only, enforced in the service.
// POST /api/listings.
func (h *ListingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.CreateListingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	listing, err := h.Svc.Create(r.Context(), sess, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, listing)
}

// Update applies partial changes to a listing. Admin-only.
// PUT /api/listings/{id}.
func (h *ListingHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	var req model.UpdateListingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	listing, err := h.Svc.Update(r.Context(), sess, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, listing)
}

// Delete removes a listing. Admin-only.
// DELETE /api/listings/{id}.
func (h *ListingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errNotFound("listing"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listingOptions parses marketplace filters from the query string. Bad
// numeric filters are ignored rather than rejected.
func listingOptions(r *http.Request) model.ListingsListOptions {
	limit, offset := ParseLimitOffset(r, 50, 200)
	opts := model.ListingsListOptions{
		Limit:  limit,
		Offset: offset,
		Sort:   r.URL.Query().Get("sort"),
		Dir:    r.URL.Query().Get("dir"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.ListingStatus(raw)
		if status.Valid() {
			opts.Status = &status
		}
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		opts.Category = &raw
	}
	if raw := r.URL.Query().Get("max_price_cents"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			opts.MaxPriceCents = &v
		}
	}
	if raw := r.URL.Query().Get("min_domain_authority"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			opts.MinDomainAuthority = &v
		}
	}
	return opts
}
