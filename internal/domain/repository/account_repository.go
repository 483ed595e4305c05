// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sportera/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountConflict is returned when a save would break email uniqueness.
	ErrAccountConflict = errors.New("account email already registered")
)

// AccountRepository persists accounts. Emails are stored canonical and unique;
// the uniqueness check inside Save is the authoritative guard against duplicate registration.
type AccountRepository interface {
	// Save inserts a new account, or returns ErrAccountConflict when the email is taken.
	Save(ctx context.Context, account *entity.Account) error

	// FindByEmail looks up an account by canonical email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID looks up an account by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate looks up an account and locks it until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// Update overwrites a stored account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account; deleting a missing account returns ErrAccountNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether an account with the canonical email is stored.
	Exists(ctx context.Context, email string) (bool, error)
}
