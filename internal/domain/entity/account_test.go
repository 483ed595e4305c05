package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"

	domainerrors "sportera/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    AccountKind
		wantErr bool
	}{
		{"", AccountKindStandard, false},
		{"standard", AccountKindStandard, false},
		{"user", AccountKindStandard, false},
		{"Organization", AccountKindOrganization, false},
		{"provider", AccountKindOrganization, false},
		{"admin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			kind, err := ParseAccountKind(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "kind")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestAccountSpec_Normalize(t *testing.T) {
	spec := AccountSpec{
		Name:             "  Camille  ",
		Email:            "  Camille@Example.COM ",
		OrganizationName: "ignored for standard accounts",
	}

	normalized, kind, err := spec.Normalize()
	require.NoError(t, err)
	assert.Equal(t, AccountKindStandard, kind)
	assert.Equal(t, "Camille", normalized.Name)
	assert.Equal(t, "camille@example.com", normalized.Email)
	assert.Empty(t, normalized.OrganizationName)
}

func TestAccountSpec_NormalizeFailures(t *testing.T) {
	tests := []struct {
		name  string
		spec  AccountSpec
		field string
	}{
		{"missing name", AccountSpec{Email: "a@b.com"}, "name"},
		{"name too long", AccountSpec{Name: strings.Repeat("n", 51), Email: "a@b.com"}, "name"},
		{"missing email", AccountSpec{Name: "A"}, "email"},
		{"malformed email", AccountSpec{Name: "A", Email: "not-an-email"}, "email"},
		{"unknown kind", AccountSpec{Name: "A", Email: "a@b.com", Kind: "root"}, "kind"},
		{"organization without name", AccountSpec{Name: "A", Email: "a@b.com", Kind: "organization"}, "organizationName"},
		{"organization name too long", AccountSpec{
			Name: "A", Email: "a@b.com", Kind: "organization", OrganizationName: strings.Repeat("o", 101),
		}, "organizationName"},
		{"organization description too long", AccountSpec{
			Name: "A", Email: "a@b.com", Kind: "provider", OrganizationName: "Club",
			OrganizationDescription: strings.Repeat("d", 501),
		}, "organizationDescription"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.spec.Normalize()
			requireValidationField(t, err, tt.field)
		})
	}
}

func TestNewAccount_StartsWithZeroPoints(t *testing.T) {
	spec, kind, err := AccountSpec{Name: "Club", Email: "club@example.com", Kind: "organization", OrganizationName: "Paris FC"}.Normalize()
	require.NoError(t, err)

	account := NewAccount(spec, kind, PasswordDigest("$2a$04$hash"), testNow)
	assert.Zero(t, account.Points)
	assert.True(t, account.IsOrganization())
	assert.Equal(t, "Paris FC", account.OrganizationName)
	assert.Equal(t, testNow, account.CreatedAt)
}

func TestAccount_Points(t *testing.T) {
	account := &Account{Points: 10}

	require.NoError(t, account.AddPoints(5, testNow))
	assert.Equal(t, 15, account.Points)

	require.NoError(t, account.SubtractPoints(15, testNow))
	assert.Zero(t, account.Points)

	err := account.SubtractPoints(1, testNow)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
	assert.Zero(t, account.Points)

	requireValidationField(t, account.AddPoints(-1, testNow), "points")
	requireValidationField(t, account.SubtractPoints(-1, testNow), "points")
}

func TestAccount_AddPointsRejectsOverflow(t *testing.T) {
	account := &Account{Points: 1}

	requireValidationField(t, account.AddPoints(math.MaxInt, testNow), "points")
	assert.Equal(t, 1, account.Points)
	assert.True(t, account.UpdatedAt.IsZero())

	require.NoError(t, account.AddPoints(math.MaxInt-1, testNow))
	assert.Equal(t, math.MaxInt, account.Points)
}

func TestPasswordDigest_NeverLeaks(t *testing.T) {
	const hash = "$2a$12$abcdefghijklmnopqrstuuJ0n2bW1xq5lq0yq3zX8c3nXo8aQeW"
	account := &Account{Email: "a@b.com", Secret: PasswordDigest(hash)}

	jsonBytes, err := json.Marshal(account)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), hash)

	assert.NotContains(t, fmt.Sprintf("%v %+v %#v %s", account, account, account, account.Secret), hash)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("account", slog.Any("secret", account.Secret), slog.Any("account", account))
	assert.NotContains(t, buf.String(), hash)

	assert.Equal(t, hash, account.Secret.Reveal())
}
