package entity

import (
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "sportera/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// emailValidator only runs single-field "email" checks; validator.Validate is safe for concurrent use.
var emailValidator = validator.New()

// AccountKind distinguishes regular members from organizations that manage places.
type AccountKind string

const (
	AccountKindStandard     AccountKind = "standard"
	AccountKindOrganization AccountKind = "organization"
)

// ParseAccountKind accepts the canonical kinds plus the legacy "user" and "provider" names.
// An empty value means standard.
func ParseAccountKind(raw string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(AccountKindStandard), "user":
		return AccountKindStandard, nil
	case string(AccountKindOrganization), "provider":
		return AccountKindOrganization, nil
	default:
		return "", domainerrors.NewValidationErrorf("kind", "unknown account kind %q", raw)
	}
}

// PasswordDigest is a stored password hash. It prints, logs and serializes as a redaction marker.
type PasswordDigest string

const redacted = "[REDACTED]"

func (d PasswordDigest) String() string {
	return redacted
}

func (d PasswordDigest) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (d PasswordDigest) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func (d PasswordDigest) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (d PasswordDigest) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Reveal returns the raw hash for the credential vault and the store mappers.
func (d PasswordDigest) Reveal() string {
	return string(d)
}

// Account is a registered member of the directory.
type Account struct {
	ID                      uuid.UUID      // Assigned at creation.
	Name                    string         // Display name, 1 to 50 characters.
	Email                   string         // Canonical (trimmed, lowercase) and unique.
	Secret                  PasswordDigest // bcrypt hash, never exported.
	Kind                    AccountKind    // standard or organization.
	OrganizationName        string         // Required for organization accounts.
	OrganizationDescription string         // Optional, organization accounts only.
	Points                  int            // Loyalty balance, never negative.
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsOrganization reports whether the account manages places.
func (a *Account) IsOrganization() bool {
	return a.Kind == AccountKindOrganization
}

// AddPoints credits n points. A credit that would overflow the balance is rejected.
func (a *Account) AddPoints(n int, now time.Time) error {
	if n < 0 {
		return domainerrors.NewValidationError("points", "points to add must not be negative")
	}
	if n > math.MaxInt-a.Points {
		return domainerrors.NewValidationError("points", "points to add exceed the maximum balance")
	}

	a.Points += n
	a.UpdatedAt = now

	return nil
}

// SubtractPoints debits n points and refuses to take the balance below zero.
func (a *Account) SubtractPoints(n int, now time.Time) error {
	if n < 0 {
		return domainerrors.NewValidationError("points", "points to subtract must not be negative")
	}
	if n > a.Points {
		return domainerrors.ErrInsufficientPoints.WithDetails("balance would become negative")
	}

	a.Points -= n
	a.UpdatedAt = now

	return nil
}

// CanonicalEmail trims and lowercases an email address.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account field limits.
const (
	MaxAccountNameLength      = 50
	MaxEmailLength            = 255
	MaxOrganizationNameLength = 100
	MaxOrganizationDescLength = 500
)

// AccountSpec is the identity part of a registration, without the password.
type AccountSpec struct {
	Name                    string
	Email                   string
	Kind                    string
	OrganizationName        string
	OrganizationDescription string
}

// Normalize canonicalizes the spec and checks every identity rule.
func (s AccountSpec) Normalize() (AccountSpec, AccountKind, error) {
	normalized := AccountSpec{
		Name:                    strings.TrimSpace(s.Name),
		Email:                   CanonicalEmail(s.Email),
		OrganizationName:        strings.TrimSpace(s.OrganizationName),
		OrganizationDescription: strings.TrimSpace(s.OrganizationDescription),
	}

	if normalized.Name == "" {
		return AccountSpec{}, "", domainerrors.NewValidationError("name", "name is required")
	}
	if utf8.RuneCountInString(normalized.Name) > MaxAccountNameLength {
		return AccountSpec{}, "", domainerrors.NewValidationErrorf("name", "name must be at most %d characters", MaxAccountNameLength)
	}
	if err := ValidateEmail(normalized.Email); err != nil {
		return AccountSpec{}, "", err
	}

	kind, err := ParseAccountKind(s.Kind)
	if err != nil {
		return AccountSpec{}, "", err
	}
	normalized.Kind = string(kind)

	if kind == AccountKindOrganization {
		if normalized.OrganizationName == "" {
			return AccountSpec{}, "", domainerrors.NewValidationError("organizationName", "organization name is required")
		}
		if utf8.RuneCountInString(normalized.OrganizationName) > MaxOrganizationNameLength {
			return AccountSpec{}, "", domainerrors.NewValidationErrorf("organizationName", "organization name must be at most %d characters", MaxOrganizationNameLength)
		}
		if utf8.RuneCountInString(normalized.OrganizationDescription) > MaxOrganizationDescLength {
			return AccountSpec{}, "", domainerrors.NewValidationErrorf("organizationDescription", "organization description must be at most %d characters", MaxOrganizationDescLength)
		}
	} else {
		normalized.OrganizationName = ""
		normalized.OrganizationDescription = ""
	}

	return normalized, kind, nil
}

// NewAccount builds a fresh account with zero points from a normalized spec.
func NewAccount(spec AccountSpec, kind AccountKind, secret PasswordDigest, now time.Time) *Account {
	return &Account{
		ID:                      uuid.New(),
		Name:                    spec.Name,
		Email:                   spec.Email,
		Secret:                  secret,
		Kind:                    kind,
		OrganizationName:        spec.OrganizationName,
		OrganizationDescription: spec.OrganizationDescription,
		Points:                  0,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// ValidateEmail checks an already canonical email address.
func ValidateEmail(email string) error {
	if email == "" {
		return domainerrors.NewValidationError("email", "email is required")
	}
	if len(email) > MaxEmailLength {
		return domainerrors.NewValidationErrorf("email", "email must be at most %d bytes", MaxEmailLength)
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return domainerrors.NewValidationError("email", "email is not a valid address")
	}

	return nil
}
