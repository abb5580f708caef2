package sessiontoken

// Package sessiontoken implements the signed, client-held session token.
// The payload is an HS256 JWT; the client can read it but cannot modify it
// undetected, and verification fails closed to "unauthenticated".

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
	"github.com/seopulse/seopulse-api/internal/ports"
)

const issuer = "seopulse"

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies session tokens with a shared HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a Codec. TTL is the absolute session validity (24h in
// production configuration).
func New(secret []byte, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &Codec{secret: append([]byte(nil), secret...), ttl: ttl, now: time.Now}, nil
}

// NewWithClock creates a Codec with a custom clock (useful for tests).
func NewWithClock(secret []byte, ttl time.Duration, now func() time.Time) (*Codec, error) {
	c, err := New(secret, ttl)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

var _ ports.SessionCodec = (*Codec)(nil)

// Issue creates a signed token for the identity and returns it together with
// the session payload it encodes.
func (c *Codec) Issue(id domainauth.Identity) (string, domainauth.Session, error) {
	if strings.TrimSpace(id.UserID) == "" {
		return "", domainauth.Session{}, errors.New("user id is required")
	}

	now := c.now().UTC()
	expiresAt := now.Add(c.ttl)
	tokenID := uuid.NewString()

	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		Role:  string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", domainauth.Session{}, err
	}

	return signed, domainauth.Session{
		UserID:    id.UserID,
		Email:     id.Email,
		Name:      id.Name,
		Role:      domainauth.ParseRole(string(id.Role)),
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify returns the session a token encodes, or nil when the token is
// malformed, carries a bad signature, or is expired. It never returns an
// error: callers treat nil as "unauthenticated".
func (c *Codec) Verify(token string) *domainauth.Session {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || strings.TrimSpace(claims.Subject) == "" || claims.ID == "" {
		return nil
	}

	return &domainauth.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      domainauth.ParseRole(claims.Role),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}
