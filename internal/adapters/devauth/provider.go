// Package devauth provides a config-driven AuthProvider for local
// development. It short-circuits the SSO flow by redirecting straight back
// to the callback and returning a fixed identity.
package devauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// Config controls the dev auth provider behavior.
type Config struct {
	UserID string
	Name   string
	Email  string
	Groups []string
}

// Provider implements ports.AuthProvider for local development.
type Provider struct {
	cfg Config
}

// NewProvider creates a dev auth provider for the configured identity.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("user id is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("email is required")
	}
	return &Provider{cfg: cfg}, nil
}

// Begin skips the IdP and sends the browser straight to our own callback.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := randomToken()
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomToken()
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	q := url.Values{}
	q.Set("code", "dev-code")
	q.Set("state", state)
	return in.RedirectURL + "?" + q.Encode(), state, nonce, nil
}

// Exchange ignores the code and returns the configured identity.
func (p *Provider) Exchange(_ context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if in.Code == "" {
		return domainauth.Identity{}, errors.New("authorization code is required")
	}
	return domainauth.Identity{
		UserID: p.cfg.UserID,
		Name:   p.cfg.Name,
		Email:  p.cfg.Email,
		Groups: p.cfg.Groups,
	}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
