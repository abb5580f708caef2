package devauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seopulse/seopulse-api/internal/ports"
)

func TestProvider_BeginRedirectsToCallback(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@agency.test"})
	require.NoError(t, err)

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{
		RedirectURL: "http://localhost:8080/auth/callback",
	})
	require.NoError(t, err)

	assert.Contains(t, authURL, "http://localhost:8080/auth/callback?")
	assert.Contains(t, authURL, "state="+state)
	assert.NotEmpty(t, nonce)
	assert.NotEqual(t, state, nonce)
}

func TestProvider_ExchangeReturnsConfiguredIdentity(t *testing.T) {
	p, err := NewProvider(Config{
		UserID: "dev",
		Name:   "Dev User",
		Email:  "dev@agency.test",
		Groups: []string{"seo-admins"},
	})
	require.NoError(t, err)

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev-code", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "dev", id.UserID)
	assert.Equal(t, []string{"seo-admins"}, id.Groups)

	_, err = p.Exchange(context.Background(), ports.ExchangeInput{})
	assert.Error(t, err)
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{})
	assert.EqualError(t, err, "user id is required")

	_, err = NewProvider(Config{UserID: "dev"})
	assert.EqualError(t, err, "email is required")
}
