package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/seopulse/seopulse-api/internal/core"
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/domain/model"
	apperrors "github.com/seopulse/seopulse-api/internal/errors"
	"github.com/seopulse/seopulse-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService. Provider and Roles
// are only needed in SSO mode; Users only in credentials mode.
type AuthServiceOptions struct {
	Users      core.UserRepository
	Provider   ports.AuthProvider
	Roles      ports.RoleMapper
	Codec      ports.SessionCodec
	Revocation core.RevocationStore
	Logger     *slog.Logger
}

// AuthService owns login, logout and session verification. Sessions are
// client-held signed tokens; the only server-side session state is the
// revocation list populated at logout.
type AuthService struct {
	users      core.UserRepository
	provider   ports.AuthProvider
	roles      ports.RoleMapper
	codec      ports.SessionCodec
	revocation core.RevocationStore
	logger     *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		users:      opts.Users,
		provider:   opts.Provider,
		roles:      opts.Roles,
		codec:      opts.Codec,
		revocation: opts.Revocation,
		logger:     logger.With("component", "auth"),
	}
}

// LoginResult carries a freshly issued session token and its payload.
type LoginResult struct {
	Token   string
	Session domainauth.Session
}

// LoginWithCredentials checks an email/password pair and issues a session
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) LoginWithCredentials(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	return s.issue(domainauth.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   domainauth.ParseRole(user.Role),
	})
}

// BeginSSOLogin starts an SSO login flow and returns the IdP auth URL plus
// the state and nonce the callback must echo.
func (s *AuthService) BeginSSOLogin(ctx context.Context, redirectURL string) (authURL, state, nonce string, err error) {
	if s.provider == nil {
		return "", "", "", apperrors.Internal("sso login is not configured")
	}
	authURL, state, nonce, err = s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return "", "", "", fmt.Errorf("begin auth flow: %w", err)
	}
	return authURL, state, nonce, nil
}

// CompleteSSOLoginInput groups parameters for completing an SSO login flow.
type CompleteSSOLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteSSOLogin exchanges the callback code for an identity, maps IdP
// groups to a role and issues a session token.
func (s *AuthService) CompleteSSOLogin(ctx context.Context, in CompleteSSOLoginInput) (*LoginResult, error) {
	if s.provider == nil {
		return nil, apperrors.Internal("sso login is not configured")
	}
	if in.Code == "" || in.State == "" {
		return nil, apperrors.Unauthorized("missing code or state")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  in.Code,
		State: in.State,
		Nonce: in.Nonce,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "exchange authorization code")
	}

	if identity.Role == "" && s.roles != nil {
		identity.Role = s.roles.Map(identity.Groups)
	}
	return s.issue(identity)
}

// LoginMock issues a session for a fixed development identity.
func (s *AuthService) LoginMock(id domainauth.Identity) (*LoginResult, error) {
	return s.issue(id)
}

func (s *AuthService) issue(id domainauth.Identity) (*LoginResult, error) {
	if id.Role == "" {
		id.Role = domainauth.RoleUser
	}
	token, sess, err := s.codec.Issue(id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "issue session token")
	}
	s.logger.Info("session issued", "user_id", sess.UserID, "role", sess.Role)
	return &LoginResult{Token: token, Session: sess}, nil
}

// GetSession verifies a session token and returns its payload, or nil for a
// missing, invalid, expired or revoked token. Never errors: an unreadable
// token and no token look the same.
func (s *AuthService) GetSession(ctx context.Context, token string) *domainauth.Session {
	if token == "" {
		return nil
	}
	sess := s.codec.Verify(token)
	if sess == nil {
		return nil
	}
	if s.revocation != nil {
		revoked, err := s.revocation.IsRevoked(ctx, sess.TokenID)
		if err != nil {
			// Fail closed: an unreachable revocation store must not let a
			// possibly revoked token through.
			s.logger.Error("revocation check failed", "err", err)
			return nil
		}
		if revoked {
			return nil
		}
	}
	return sess
}

// Logout revokes the session's token id until its natural expiry. The client
// cookie is cleared by the HTTP layer; revocation covers copies of the token.
func (s *AuthService) Logout(ctx context.Context, sess *domainauth.Session) error {
	if sess == nil {
		return nil
	}
	if s.revocation == nil {
		return nil
	}
	if err := s.revocation.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "revoke session")
	}
	s.logger.Info("session revoked", "user_id", sess.UserID)
	return nil
}

// RegisterUser creates a dashboard user with a bcrypt password hash.
// Restricted to admins at the HTTP layer.
func (s *AuthService) RegisterUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}
	return s.users.Create(ctx, req, string(hash))
}
