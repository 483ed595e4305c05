package auth

import (
	"strings"
	"testing"
	"time"

	"sportera/config"
	"sportera/internal/domain/entity"
	domainerrors "sportera/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestJWTService(clock *fakeClock) *jwtService {
	return newJWTService(testSecret, clock.Now)
}

func testPayload() entity.SessionPayload {
	return entity.SessionPayload{
		AccountID: uuid.New(),
		Email:     "camille@example.com",
		Kind:      entity.AccountKindOrganization,
	}
}

func requireRejected(t *testing.T, err error, reason domainerrors.TokenRejectReason) {
	t.Helper()

	var rejected *domainerrors.TokenRejectedError
	require.True(t, errors.As(err, &rejected), "expected token rejection, got %v", err)
	assert.Equal(t, reason, rejected.Reason)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)
	payload := testPayload()

	token, err := svc.Issue(payload, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, payload.AccountID, verified.AccountID)
	assert.Equal(t, payload.Email, verified.Email)
	assert.Equal(t, payload.Kind, verified.Kind)
	assert.NotEmpty(t, verified.TokenID)
	assert.True(t, verified.IssuedAt.Equal(clock.now))
	assert.True(t, verified.ExpiresAt.Equal(clock.now.Add(time.Hour)))
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	svc := newTestJWTService(&fakeClock{now: time.Now()})
	payload := testPayload()

	first, err := svc.Issue(payload, time.Minute)
	require.NoError(t, err)
	second, err := svc.Issue(payload, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, svc.Decode(first).TokenID, svc.Decode(second).TokenID)
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)

	token, err := svc.Issue(testPayload(), time.Minute)
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Second)
	payload, err := svc.Verify(token)
	assert.Nil(t, payload)
	requireRejected(t, err, domainerrors.TokenRejectExpired)
}

func TestJWTService_RejectsNonPositiveTTL(t *testing.T) {
	svc := newTestJWTService(&fakeClock{now: time.Now()})

	for _, ttl := range []time.Duration{0, -time.Second} {
		token, err := svc.Issue(testPayload(), ttl)
		assert.Empty(t, token)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "ttl", validationErr.Field)
	}
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(clock)
	payload := testPayload()

	valid, err := svc.Issue(payload, time.Hour)
	require.NoError(t, err)

	other, err := newJWTService("another_secret_that_is_long_enough", clock.Now).Issue(payload, time.Hour)
	require.NoError(t, err)

	// keep the header and signature of one token but swap in another payload
	validParts := strings.Split(valid, ".")
	otherParts := strings.Split(other, ".")
	swapped := strings.Join([]string{validParts[0], otherParts[1], validParts[2]}, ".")

	claims := sessionClaims{
		Email: payload.Email,
		Kind:  string(payload.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   payload.AccountID.String(),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":              "clearly-not-a-jwt-token-format",
		"empty":                "",
		"foreign signature":    other,
		"swapped payload":      swapped,
		"alg none":             unsigned,
		"unexpected algorithm": otherAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			verified, err := svc.Verify(token)
			assert.Nil(t, verified)
			requireRejected(t, err, domainerrors.TokenRejectInvalid)
		})
	}
}

func TestJWTService_Decode(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(clock)
	payload := testPayload()

	token, err := svc.Issue(payload, time.Minute)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	decoded := svc.Decode(token)
	require.NotNil(t, decoded)
	assert.Equal(t, payload.AccountID, decoded.AccountID)

	assert.Nil(t, svc.Decode("not.a.token"))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Issue(testPayload(), time.Minute)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.NoError(t, err)
}
