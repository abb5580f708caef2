package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// GoogleServiceOptions groups dependencies for GoogleService.
type GoogleServiceOptions struct {
	Clients     core.ClientRepository
	Credentials core.CredentialRepository
	Exchanger   ports.TokenExchanger
	Logger      *slog.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// GoogleService manages the per-tenant Google connection: the consent flow
// and the access token lifecycle. Tokens are refreshed lazily; there is no
// background refresh.
type GoogleService struct {
	clients     core.ClientRepository
	credentials core.CredentialRepository
	exchanger   ports.TokenExchanger
	logger      *slog.Logger
	now         func() time.Time

	// refreshGroup collapses concurrent refreshes for one tenant into a
	// single provider call.
	refreshGroup singleflight.Group
}

// NewGoogleService constructs a new GoogleService.
func NewGoogleService(opts GoogleServiceOptions) *GoogleService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &GoogleService{
		clients:     opts.Clients,
		credentials: opts.Credentials,
		exchanger:   opts.Exchanger,
		logger:      logger.With("component", "google"),
		now:         now,
	}
}

// AuthorizationURL returns the Google consent URL for a client. The client
// id rides along as the OAuth state so the callback knows which tenant is
// being connected. No side effects.
func (s *GoogleService) AuthorizationURL(ctx context.Context, sess *domainauth.Session, clientID string) (string, error) {
	if _, err := s.authorizedClient(ctx, sess, clientID); err != nil {
		return "", err
	}
	if err := s.requireExchanger(); err != nil {
		return "", err
	}
	return s.exchanger.AuthCodeURL(clientID), nil
}

// requireExchanger rejects connection operations when no OAuth client is
// configured, instead of panicking on a nil exchanger.
func (s *GoogleService) requireExchanger() error {
	if s.exchanger == nil {
		return apperrors.NotConnected("google integration is not configured")
	}
	return nil
}

// CompleteConnection finishes the consent flow: it exchanges the callback
// code and persists the token set before returning. The state parameter is
// the client id issued by AuthorizationURL.
func (s *GoogleService) CompleteConnection(ctx context.Context, sess *domainauth.Session, clientID, code string) error {
	if _, err := s.authorizedClient(ctx, sess, clientID); err != nil {
		return err
	}
	if code == "" {
		return apperrors.ValidationField("code", "authorization code is required")
	}
	if err := s.requireExchanger(); err != nil {
		return err
	}

	ts, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		return err
	}
	if err := s.credentials.Upsert(ctx, model.TokenUpdate{
		ClientID:     clientID,
		AccessToken:  ts.AccessToken,
		TokenExpiry:  ts.Expiry,
		RefreshToken: ts.RefreshToken,
	}); err != nil {
		return err
	}

	s.logger.Info("google connection completed", "client_id", clientID)
	return nil
}

// Connected reports whether a client has completed the consent flow.
func (s *GoogleService) Connected(ctx context.Context, sess *domainauth.Session, clientID string) (bool, error) {
	if _, err := s.authorizedClient(ctx, sess, clientID); err != nil {
		return false, err
	}
	cred, err := s.credentials.Get(ctx, clientID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return cred.Connected(), nil
}

// AccessToken returns a usable access token for a client, refreshing lazily.
// A stored token with future expiry is returned without any network call.
// Refresh failures surface as token_refresh and are never retried here; the
// tenant resolves them by reconnecting.
func (s *GoogleService) AccessToken(ctx context.Context, clientID string) (string, error) {
	cred, err := s.loadCredential(ctx, clientID)
	if err != nil {
		return "", err
	}
	if cred.AccessTokenValid(s.now()) {
		return cred.AccessToken, nil
	}

	// Collapse concurrent refreshes for the same tenant. The winner re-reads
	// the credential inside the flight so a refresh that completed while we
	// queued is reused instead of repeated.
	token, err, _ := s.refreshGroup.Do(clientID, func() (any, error) {
		return s.refresh(ctx, clientID)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (s *GoogleService) refresh(ctx context.Context, clientID string) (string, error) {
	cred, err := s.loadCredential(ctx, clientID)
	if err != nil {
		return "", err
	}
	if cred.AccessTokenValid(s.now()) {
		return cred.AccessToken, nil
	}

	if err := s.requireExchanger(); err != nil {
		return "", err
	}
	ts, err := s.exchanger.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		s.logger.Warn("token refresh failed", "client_id", clientID, "err", err)
		return "", err
	}

	// Persist before returning so a crash after this point cannot hand out
	// a token that was never stored.
	if err := s.credentials.Upsert(ctx, model.TokenUpdate{
		ClientID:     clientID,
		AccessToken:  ts.AccessToken,
		TokenExpiry:  ts.Expiry,
		RefreshToken: ts.RefreshToken,
	}); err != nil {
		return "", err
	}

	s.logger.Info("access token refreshed", "client_id", clientID)
	return ts.AccessToken, nil
}

func (s *GoogleService) loadCredential(ctx context.Context, clientID string) (*model.Credential, error) {
	cred, err := s.credentials.Get(ctx, clientID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotConnected("google account is not connected")
		}
		return nil, err
	}
	if !cred.Connected() {
		return nil, apperrors.NotConnected("google account is not connected")
	}
	return cred, nil
}

func (s *GoogleService) authorizedClient(ctx context.Context, sess *domainauth.Session, clientID string) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !domainauth.Authorize(sess, client.OwnerID) {
		return nil, apperrors.Forbidden("not allowed to manage this client")
	}
	return client, nil
}
