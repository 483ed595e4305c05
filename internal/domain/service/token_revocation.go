package service

import (
	"context"
	"time"
)

// TokenRevocationList tracks logged-out token ids until they would have expired anyway.
type TokenRevocationList interface {
	// Revoke marks tokenID as revoked for ttl.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether tokenID was revoked and has not yet aged out.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
