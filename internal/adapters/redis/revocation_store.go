// Package redis provides the Redis-backed session revocation store.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records revoked session token ids in Redis. Entries carry
// a TTL matching the token's natural expiry, so the set cleans itself up.
type RevocationStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRevocationStore creates a Redis-backed revocation store.
func NewRevocationStore(client redis.UniversalClient) *RevocationStore {
	return &RevocationStore{client: client, prefix: "revoked:"}
}

// NewRevocationStoreWithPrefix creates a revocation store with a custom key prefix.
func NewRevocationStoreWithPrefix(client redis.UniversalClient, prefix string) *RevocationStore {
	return &RevocationStore{client: client, prefix: prefix}
}

// Revoke marks a token id revoked until its natural expiry. An already
// expired token needs no entry.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return errors.New("token id cannot be empty")
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.prefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id was revoked. Errors are surfaced so
// the caller can fail closed.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	_, err := s.client.Get(ctx, s.prefix+tokenID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	return true, nil
}
