// Package revocation keeps the list of logged-out session tokens.
package revocation

import (
	"context"
	"time"

	"sportera/internal/errors"
	"sportera/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for revoked tokens
const revokedTokenKeyPrefix = "sportera:trl:jti:"

// RedisTRL is a Redis-backed token revocation list shared by every instance.
type RedisTRL struct {
	client  *redis.Client
	metrics *metrics.Metrics
}

// NewRedisTRL constructs a Redis-backed token revocation list.
func NewRedisTRL(client *redis.Client, m *metrics.Metrics) *RedisTRL {
	return &RedisTRL{
		client:  client,
		metrics: m,
	}
}

// Revoke adds a token to the revocation list until ttl elapses.
func (t *RedisTRL) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	// The value is a marker; key existence is what matters.
	if err := t.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}
	t.metrics.ObserveTokenRevoked()

	return nil
}

// IsRevoked reports whether tokenID is on the list. Expired entries vanish with their key.
func (t *RedisTRL) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	start := time.Now()
	defer func() {
		t.metrics.ObserveRevocationCheck(time.Since(start))
	}()

	if tokenID == "" {
		return false, nil
	}

	_, err := t.client.Get(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return true, nil
}
