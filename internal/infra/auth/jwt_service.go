package auth

import (
	"time"

	"sportera/config"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/service"
	"sportera/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "sportera"

// sessionClaims defines the custom claims carried by session tokens.
type sessionClaims struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService(cfg.SecretKey.Access, time.Now), nil
}

func newJWTService(secret string, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		now:    now,
	}
}

// Issue signs a session token that expires ttl after now.
func (s *jwtService) Issue(payload entity.SessionPayload, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", domainerrors.NewValidationError("ttl", "token lifetime must be positive")
	}

	now := s.now()
	claims := sessionClaims{
		Email: payload.Email,
		Kind:  string(payload.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   payload.AccountID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry, then returns the token's payload.
func (s *jwtService) Verify(tokenString string) (*entity.SessionPayload, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.NewTokenRejectedError(domainerrors.TokenRejectExpired)
		}

		return nil, domainerrors.NewTokenRejectedError(domainerrors.TokenRejectInvalid)
	}

	payload, ok := claims.toPayload()
	if !ok {
		return nil, domainerrors.NewTokenRejectedError(domainerrors.TokenRejectInvalid)
	}

	return payload, nil
}

// Decode reads claims without verifying them. Used for diagnostics only.
func (s *jwtService) Decode(tokenString string) *entity.SessionPayload {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}

	payload, ok := claims.toPayload()
	if !ok {
		return nil
	}

	return payload
}

func (c *sessionClaims) toPayload() (*entity.SessionPayload, bool) {
	accountID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, false
	}

	payload := &entity.SessionPayload{
		AccountID: accountID,
		Email:     c.Email,
		Kind:      entity.AccountKind(c.Kind),
		TokenID:   c.ID,
	}
	if c.IssuedAt != nil {
		payload.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		payload.ExpiresAt = c.ExpiresAt.Time
	}

	return payload, true
}
