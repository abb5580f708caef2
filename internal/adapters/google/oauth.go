package google

// Package google provides the adapters for the per-tenant Google
// integration: the OAuth token exchanger and the two read-only reporting
// clients (Search Console, GA4).

import (
	"context"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/seopulse/seopulse-api/config"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// Read-only scopes; the application never requests write access to a
// tenant's Google properties.
const (
	scopeSearchConsole = "https://www.googleapis.com/auth/webmasters.readonly"
	scopeAnalytics     = "https://www.googleapis.com/auth/analytics.readonly"
)

// Connector performs the OAuth legs against Google's token endpoint.
type Connector struct {
	cfg *oauth2.Config
}

// ConnectorOption customizes a Connector.
type ConnectorOption func(*Connector)

// WithEndpoint overrides the provider endpoint (used by tests to point at a
// local fake).
func WithEndpoint(ep oauth2.Endpoint) ConnectorOption {
	return func(c *Connector) {
		c.cfg.Endpoint = ep
	}
}

// NewConnector creates a Connector from the application's Google OAuth client.
func NewConnector(gc config.GoogleConfig, opts ...ConnectorOption) *Connector {
	c := &Connector{
		cfg: &oauth2.Config{
			ClientID:     gc.ClientID,
			ClientSecret: gc.ClientSecret,
			RedirectURL:  gc.RedirectURL,
			Scopes:       []string{scopeSearchConsole, scopeAnalytics},
			Endpoint:     googleoauth.Endpoint,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.TokenExchanger = (*Connector)(nil)

// AuthCodeURL builds the consent URL. Offline access requests a refresh
// token; forcing the consent prompt makes Google issue one even on repeat
// authorizations, where it would otherwise be omitted.
func (c *Connector) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token set.
func (c *Connector) Exchange(ctx context.Context, code string) (ports.TokenSet, error) {
	tok, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return ports.TokenSet{}, apperrors.Wrap(err, apperrors.ErrCodeExternalAuth,
			"authorization code exchange failed")
	}
	return tokenSet(tok), nil
}

// Refresh obtains a new access token using a stored refresh token. Google
// normally omits the refresh token from the response; when it rotates one,
// the new value is passed through.
func (c *Connector) Refresh(ctx context.Context, refreshToken string) (ports.TokenSet, error) {
	src := c.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return ports.TokenSet{}, apperrors.Wrap(err, apperrors.ErrCodeTokenRefresh,
			"refresh token rejected by provider")
	}
	return tokenSet(tok), nil
}

func tokenSet(tok *oauth2.Token) ports.TokenSet {
	return ports.TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
}
