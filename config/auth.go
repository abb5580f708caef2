package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeCredentials uses email/password login against the local user table.
	AuthModeCredentials AuthMode = "credentials"
	// AuthModeOAuth uses OAuth/OIDC single sign-on.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "credentials", "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: credentials, oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration for dashboard single sign-on.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"seopulse"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"seopulse"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	Name   string `env:"NAME"    envDefault:"Dev User"`
	Role   string `env:"ROLE"    envDefault:"admin"`
}

// SessionConfig controls the signed session token.
type SessionConfig struct {
	// Secret signs session tokens (HS256). Required outside dev mode.
	Secret string `env:"SECRET"`

	// TTL is the absolute session validity. Sessions are not sliding.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"credentials"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// Session token configuration.
	Session SessionConfig `envPrefix:"SESSION_"`

	// AdminGroup is the IdP group granting the admin role (oauth mode).
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"seopulse-admins"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Session.TTL <= 0 {
		a.Session.TTL = 24 * time.Hour
	}
}
