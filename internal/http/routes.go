package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/obs"
	"github.com/seopulse/seopulse-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Clients   *service.ClientService
	Keywords  *service.KeywordService
	Backlinks *service.BacklinkService
	Content   *service.ContentService
	Roadmap   *service.RoadmapService
	Audits    *service.AuditService
	Listings  *service.ListingService
	Google    *service.GoogleService
	Reports   *service.ReportService

	CookieDomain string
	SettingsPath string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	registerAuthRoutes(mux, authHandlers, services.Auth)

	auth := services.Auth
	registerClientRoutes(mux, &ClientHandlers{Svc: services.Clients}, auth)
	registerKeywordRoutes(mux, &KeywordHandlers{Svc: services.Keywords}, auth)
	registerBacklinkRoutes(mux, &BacklinkHandlers{Svc: services.Backlinks}, auth)
	registerContentRoutes(mux, &ContentHandlers{Svc: services.Content}, auth)
	registerRoadmapRoutes(mux, &RoadmapHandlers{Svc: services.Roadmap}, auth)
	registerAuditRoutes(mux, &AuditHandlers{Svc: services.Audits}, auth)
	registerListingRoutes(mux, &ListingHandlers{Svc: services.Listings}, auth)
	registerGoogleRoutes(mux, &GoogleHandlers{Svc: services.Google, SettingsPath: services.SettingsPath}, auth)
	registerReportRoutes(mux, &ReportHandlers{Svc: services.Reports}, auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /metrics", obs.Handler())

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = obs.Instrument(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth SessionReader) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /auth/oauth/login", h.OAuthLogin)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
	mux.Handle("POST /auth/register", RequireRole(auth, domainauth.RoleAdmin)(http.HandlerFunc(h.Register)))
}

func registerClientRoutes(mux *http.ServeMux, h *ClientHandlers, auth SessionReader) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/clients",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: RequireAuth(auth),
	})
}

func registerKeywordRoutes(mux *http.ServeMux, h *KeywordHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/clients/{id}/keywords", wrap(http.HandlerFunc(h.ListByClient)))
	mux.Handle("POST /api/clients/{id}/keywords", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/keywords/{id}", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/keywords/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/keywords/{id}", wrap(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/keywords/{id}/positions", wrap(http.HandlerFunc(h.RecordPosition)))
	mux.Handle("GET /api/keywords/{id}/positions", wrap(http.HandlerFunc(h.History)))
}

func registerBacklinkRoutes(mux *http.ServeMux, h *BacklinkHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/clients/{id}/backlinks", wrap(http.HandlerFunc(h.ListByClient)))
	mux.Handle("POST /api/clients/{id}/backlinks", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/backlinks/{id}", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/backlinks/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/backlinks/{id}", wrap(http.HandlerFunc(h.Delete)))
}

func registerContentRoutes(mux *http.ServeMux, h *ContentHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/clients/{id}/content", wrap(http.HandlerFunc(h.ListByClient)))
	mux.Handle("POST /api/clients/{id}/content", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/content/{id}", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/content/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/content/{id}", wrap(http.HandlerFunc(h.Delete)))
}

func registerRoadmapRoutes(mux *http.ServeMux, h *RoadmapHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/clients/{id}/roadmap", wrap(http.HandlerFunc(h.ListByClient)))
	mux.Handle("POST /api/clients/{id}/roadmap", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/roadmap/{id}", wrap(http.HandlerFunc(h.SetStatus)))
	mux.Handle("DELETE /api/roadmap/{id}", wrap(http.HandlerFunc(h.Delete)))
}

func registerAuditRoutes(mux *http.ServeMux, h *AuditHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/audits/checklist", wrap(http.HandlerFunc(h.Checklist)))
	mux.Handle("GET /api/clients/{id}/audit", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/clients/{id}/audit", wrap(http.HandlerFunc(h.Save)))
}

func registerListingRoutes(mux *http.ServeMux, h *ListingHandlers, auth SessionReader) {
	// Browsing is open to every authenticated user; mutations stay admin-only
	// in the service layer as well.
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/listings", wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/listings/{id}", wrap(http.HandlerFunc(h.Get)))

	admin := RequireRole(auth, domainauth.RoleAdmin)
	mux.Handle("POST /api/listings", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/listings/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/listings/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerGoogleRoutes(mux *http.ServeMux, h *GoogleHandlers, auth SessionReader) {
	wrap := RequireAuth(auth)
	mux.Handle("GET /api/clients/{id}/google/connect", wrap(http.HandlerFunc(h.Connect)))
	mux.Handle("GET /api/clients/{id}/google/status", wrap(http.HandlerFunc(h.Status)))
	mux.Handle("GET /google/callback", wrap(http.HandlerFunc(h.Callback)))
}

func registerReportRoutes(mux *http.ServeMux, h *ReportHandlers, auth SessionReader) {
	mux.Handle("GET /api/clients/{id}/report", RequireAuth(auth)(http.HandlerFunc(h.Overview)))
}

type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
