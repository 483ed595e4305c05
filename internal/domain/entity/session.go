package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionPayload is what a session token asserts about its bearer.
type SessionPayload struct {
	AccountID uuid.UUID   // Account the token was issued to.
	Email     string      // Canonical email at issue time.
	Kind      AccountKind // Account kind at issue time.
	TokenID   string      // Unique token identifier (jti), used for revocation.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RemainingLifetime returns how long the token stays valid after now, or zero.
func (p *SessionPayload) RemainingLifetime(now time.Time) time.Duration {
	if p == nil || !p.ExpiresAt.After(now) {
		return 0
	}

	return p.ExpiresAt.Sub(now)
}
