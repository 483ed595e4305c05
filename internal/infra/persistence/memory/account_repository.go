// Package memory contains mutex-guarded in-process stores used by default and in tests.
package memory

import (
	"context"
	"sync"

	"sportera/internal/domain/entity"
	"sportera/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountStore holds accounts keyed by id with a unique email index.
type AccountStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Account
	byEmail map[string]uuid.UUID
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:    make(map[uuid.UUID]*entity.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

// accountRepository adapts AccountStore to repository.AccountRepository.
type accountRepository struct {
	store *AccountStore
}

// NewAccountRepository returns a repository backed by store.
func NewAccountRepository(store *AccountStore) repository.AccountRepository {
	return &accountRepository{store: store}
}

// Save inserts account; the email check and the insert happen under one lock.
func (r *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email := entity.CanonicalEmail(account.Email)
	if _, taken := r.store.byEmail[email]; taken {
		return repository.ErrAccountConflict
	}
	if _, taken := r.store.byID[account.ID]; taken {
		return repository.ErrAccountConflict
	}

	stored := *account
	stored.Email = email
	r.store.byID[stored.ID] = &stored
	r.store.byEmail[email] = stored.ID

	return nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byEmail[entity.CanonicalEmail(email)]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	found := *r.store.byID[id]

	return &found, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.byID[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	found := *account

	return &found, nil
}

// FindByIDForUpdate is FindByID; the transaction manager already serialises writers.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.byID[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	email := entity.CanonicalEmail(account.Email)
	if owner, taken := r.store.byEmail[email]; taken && owner != account.ID {
		return repository.ErrAccountConflict
	}

	delete(r.store.byEmail, current.Email)
	stored := *account
	stored.Email = email
	r.store.byID[stored.ID] = &stored
	r.store.byEmail[email] = stored.ID

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.byID[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.store.byEmail, account.Email)
	delete(r.store.byID, id)

	return nil
}

func (r *accountRepository) Exists(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.byEmail[entity.CanonicalEmail(email)]

	return ok, nil
}
