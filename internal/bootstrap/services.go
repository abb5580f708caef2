package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seopulse/seopulse-api/config"
	"github.com/seopulse/seopulse-api/internal/adapters/google"
	"github.com/seopulse/seopulse-api/internal/data"
	"github.com/seopulse/seopulse-api/internal/ports"
	"github.com/seopulse/seopulse-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth     *service.AuthService
	Clients  *service.ClientService
	Keywords *service.KeywordService
	Backlinks *service.BacklinkService
	Content  *service.ContentService
	Roadmap  *service.RoadmapService
	Audits   *service.AuditService
	Listings *service.ListingService
	Google   *service.GoogleService
	Reports  *service.ReportService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo       *data.UserRepo
	ClientRepo     *data.ClientRepo
	KeywordRepo    *data.KeywordRepo
	BacklinkRepo   *data.BacklinkRepo
	ContentRepo    *data.ContentRepo
	RoadmapRepo    *data.RoadmapRepo
	AuditRepo      *data.AuditRepo
	ListingRepo    *data.ListingRepo
	CredentialRepo *data.CredentialRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(deps ServiceDeps) *serviceRepositories {
	encryptor := CreateEncryptor(deps.Config.CredentialsEncryptionKey, deps.Logger)

	return &serviceRepositories{
		UserRepo:       data.NewUserRepo(deps.DB),
		ClientRepo:     data.NewClientRepo(deps.DB),
		KeywordRepo:    data.NewKeywordRepo(deps.DB),
		BacklinkRepo:   data.NewBacklinkRepo(deps.DB),
		ContentRepo:    data.NewContentRepo(deps.DB),
		RoadmapRepo:    data.NewRoadmapRepo(deps.DB),
		AuditRepo:      data.NewAuditRepo(deps.DB),
		ListingRepo:    data.NewListingRepo(deps.DB),
		CredentialRepo: data.NewCredentialRepo(deps.DB, encryptor),
	}
}

// BuildServices wires repositories, adapters and services.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.DB == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps)

	authSvc, err := BuildAuthService(AuthConfig{
		Auth:        deps.Config.Auth,
		IsDev:       deps.Config.IsDev,
		Users:       repos.UserRepo,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build auth service: %w", err)
	}

	googleSvc, reportSvc := buildGoogleServices(deps.Config, repos, logger)

	return &ServiceContainer{
		Auth:     authSvc,
		Clients:  service.NewClientService(service.ClientServiceOptions{Clients: repos.ClientRepo}),
		Keywords: service.NewKeywordService(service.KeywordServiceOptions{Keywords: repos.KeywordRepo, Clients: repos.ClientRepo}),
		Backlinks: service.NewBacklinkService(service.BacklinkServiceOptions{
			Backlinks: repos.BacklinkRepo,
			Clients:   repos.ClientRepo,
		}),
		Content:  service.NewContentService(service.ContentServiceOptions{Content: repos.ContentRepo, Clients: repos.ClientRepo}),
		Roadmap:  service.NewRoadmapService(service.RoadmapServiceOptions{Tasks: repos.RoadmapRepo, Clients: repos.ClientRepo}),
		Audits:   service.NewAuditService(service.AuditServiceOptions{Audits: repos.AuditRepo, Clients: repos.ClientRepo}),
		Listings: service.NewListingService(service.ListingServiceOptions{Listings: repos.ListingRepo}),
		Google:   googleSvc,
		Reports:  reportSvc,
	}, nil
}

// buildGoogleServices wires the Google connection and reporting services.
// Without an OAuth client configured, the services still exist; connection
// attempts then fail with a configuration error rather than a nil panic.
func buildGoogleServices(cfg *config.AppConfig, repos *serviceRepositories, logger *slog.Logger) (*service.GoogleService, *service.ReportService) {
	var exchanger ports.TokenExchanger
	if cfg.Google.Enabled() {
		exchanger = metricsExchanger{next: google.NewConnector(cfg.Google)}
	} else {
		logger.Warn("google oauth client not configured, tenant connections disabled")
	}

	hc := &http.Client{Timeout: 30 * time.Second}
	searchConsole := metricsSearchConsole{next: google.NewSearchConsoleClient(cfg.Google.SearchConsoleBaseURL, hc)}
	analytics := metricsAnalytics{next: google.NewAnalyticsClient(cfg.Google.AnalyticsBaseURL, hc)}

	googleSvc := service.NewGoogleService(service.GoogleServiceOptions{
		Clients:     repos.ClientRepo,
		Credentials: repos.CredentialRepo,
		Exchanger:   exchanger,
		Logger:      logger,
	})

	reportSvc := service.NewReportService(service.ReportServiceOptions{
		Clients:       repos.ClientRepo,
		Tokens:        googleSvc,
		SearchConsole: searchConsole,
		Analytics:     analytics,
		Logger:        logger,
	})

	return googleSvc, reportSvc
}
