package usecase

import (
	"context"
	"time"

	"sportera/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name                    string
	Email                   string
	Password                string
	Kind                    string // standard (default) or organization; "user" and "provider" are accepted too.
	OrganizationName        string
	OrganizationDescription string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountView is the public shape of an account. It carries no credential.
type AccountView struct {
	ID                      uuid.UUID          `json:"id"`
	Name                    string             `json:"name"`
	Email                   string             `json:"email"`
	Kind                    entity.AccountKind `json:"kind"`
	OrganizationName        string             `json:"organization_name,omitempty"`
	OrganizationDescription string             `json:"organization_description,omitempty"`
	Points                  int                `json:"points"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`
}

// NewAccountView strips the credential from an account.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:                      account.ID,
		Name:                    account.Name,
		Email:                   account.Email,
		Kind:                    account.Kind,
		OrganizationName:        account.OrganizationName,
		OrganizationDescription: account.OrganizationDescription,
		Points:                  account.Points,
		CreatedAt:               account.CreatedAt,
		UpdatedAt:               account.UpdatedAt,
	}
}

// LoginOutput returns the session token issued by a successful login.
type LoginOutput struct {
	Account   *AccountView
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase defines registration, login and session checks.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AccountView, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	VerifyToken(ctx context.Context, token string) (*entity.SessionPayload, error)
	// Logout revokes the token until it would have expired anyway.
	Logout(ctx context.Context, token string) error
	GetAccount(ctx context.Context, id uuid.UUID) (*AccountView, error)
	AddPoints(ctx context.Context, id uuid.UUID, points int) (*AccountView, error)
	SubtractPoints(ctx context.Context, id uuid.UUID, points int) (*AccountView, error)
}
