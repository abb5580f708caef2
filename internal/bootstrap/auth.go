package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/seopulse/seopulse-api/config"
	"github.com/seopulse/seopulse-api/internal/adapters/authroles"
	"github.com/seopulse/seopulse-api/internal/adapters/devauth"
	"github.com/seopulse/seopulse-api/internal/adapters/oidc"
	redisadapter "github.com/seopulse/seopulse-api/internal/adapters/redis"
	"github.com/seopulse/seopulse-api/internal/adapters/sessiontoken"
	"github.com/seopulse/seopulse-api/internal/core"
	"github.com/seopulse/seopulse-api/internal/ports"
	"github.com/seopulse/seopulse-api/internal/service"
)

// devSessionSecret signs session tokens when no secret is configured in dev
// mode. Never used outside dev mode.
const devSessionSecret = "seopulse-dev-session-secret-not-for-production"

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	IsDev       bool
	Users       core.UserRepository
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.RedisClient == nil {
		return nil, fmt.Errorf("auth service requires a redis client for the revocation store")
	}

	codec, err := buildSessionCodec(cfg)
	if err != nil {
		return nil, err
	}

	revocation := redisadapter.NewRevocationStore(cfg.RedisClient)

	// Role mapper is shared by both SSO modes
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
	}

	provider, err := buildAuthProvider(cfg)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Users:      cfg.Users,
		Provider:   provider,
		Roles:      roleMapper,
		Codec:      codec,
		Revocation: revocation,
		Logger:     cfg.Logger,
	}), nil
}

func buildSessionCodec(cfg AuthConfig) (ports.SessionCodec, error) {
	secret := cfg.Auth.Session.Secret
	if secret == "" {
		if !cfg.IsDev {
			return nil, fmt.Errorf("AUTH_SESSION_SECRET is required outside dev mode")
		}
		if cfg.Logger != nil {
			cfg.Logger.Warn("session secret is empty, using built-in dev secret")
		}
		secret = devSessionSecret
	}

	codec, err := sessiontoken.New([]byte(secret), cfg.Auth.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("create session codec: %w", err)
	}
	return codec, nil
}

// buildAuthProvider builds the SSO provider for the configured mode.
// Credentials mode needs no provider; logins go against the user table.
func buildAuthProvider(cfg AuthConfig) (ports.AuthProvider, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeCredentials:
		if cfg.Users == nil {
			return nil, fmt.Errorf("credentials auth mode requires a user repository")
		}
		return nil, nil

	case config.AuthModeMock:
		if !cfg.IsDev {
			return nil, fmt.Errorf("mock auth mode is only allowed in dev mode")
		}
		var groups []string
		if cfg.Auth.DevAuth.Role == "admin" {
			groups = []string{cfg.Auth.AdminGroup}
		}
		prov, err := devauth.NewProvider(devauth.Config{
			UserID: cfg.Auth.DevAuth.UserID,
			Name:   cfg.Auth.DevAuth.Name,
			Email:  cfg.Auth.DevAuth.Email,
			Groups: groups,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		return prov, nil

	case config.AuthModeOAuth:
		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     cfg.Auth.OAuth.ClientID,
			ClientSecret: cfg.Auth.OAuth.ClientSecret,
			RedirectURL:  cfg.Auth.OAuth.RedirectURL,
			Scope:        cfg.Auth.OAuth.Scope,
			IssuerURL:    cfg.Auth.OAuth.DiscoveryURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create oidc provider: %w", err)
		}
		return prov, nil

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
