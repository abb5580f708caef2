package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seopulse/seopulse-api/internal/ports"
)

func TestMockAuthProviderDeterministicState(t *testing.T) {
	t.Parallel()
	p := NewMockAuthProvider()

	url, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", url)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	_, state, nonce, err = p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.Equal(t, "state-2", state)
	assert.Equal(t, "nonce-2", nonce)
}

func TestStaticRoleMapper(t *testing.T) {
	t.Parallel()
	m := StaticRoleMapper{AdminGroup: "seo-admins"}

	assert.Equal(t, "admin", string(m.Map([]string{"users", "seo-admins"})))
	assert.Equal(t, "user", string(m.Map([]string{"users"})))
	assert.Equal(t, "user", string(m.Map(nil)))
	assert.Equal(t, "user", string(StaticRoleMapper{}.Map([]string{""})))
}

func TestMemoryRevocationStore(t *testing.T) {
	t.Parallel()
	s := NewMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
