package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seopulse/seopulse-api/internal/testutil"
)

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRevocationStore(client)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevocationStore_ExpiredTokenIsNoop(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRevocationStore(client)
	ctx := context.Background()

	// already past its natural expiry, nothing to record
	require.NoError(t, store.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_EmptyTokenID(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	store := NewRevocationStore(client)
	err := store.Revoke(context.Background(), "", time.Now().Add(time.Minute))
	assert.Error(t, err)
}
