package service

import (
	"time"

	"sportera/internal/domain/entity"
)

// TokenService issues and verifies signed, expiring session tokens.
// Verification is pure: it checks signature and expiry only, never revocation or account existence.
type TokenService interface {
	// Issue signs payload with a lifetime of ttl. IssuedAt, ExpiresAt and TokenID are filled in by the issuer.
	Issue(payload entity.SessionPayload, ttl time.Duration) (string, error)

	// Verify returns the payload of a valid token or a *errors.TokenRejectedError.
	Verify(token string) (*entity.SessionPayload, error)

	// Decode reads the payload without checking signature or expiry. It returns nil on malformed input.
	Decode(token string) *entity.SessionPayload
}
