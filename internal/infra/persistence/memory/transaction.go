package memory

import (
	"context"
	"sync"

	"sportera/internal/domain/repository"
)

// transactionManager serialises transactional work. Writes are applied directly,
// so a callback that fails after writing leaves those writes in place; callers
// in this module validate before they write.
type transactionManager struct {
	mu      sync.Mutex
	factory *repositoryFactory
}

type repositoryFactory struct {
	accounts repository.AccountRepository
	places   repository.PlaceRepository
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accounts
}

func (f *repositoryFactory) PlaceRepo() repository.PlaceRepository {
	return f.places
}

// NewTransactionManager creates a transaction manager over the given stores.
func NewTransactionManager(accounts *AccountStore, places *PlaceStore) repository.TransactionManager {
	return &transactionManager{
		factory: &repositoryFactory{
			accounts: NewAccountRepository(accounts),
			places:   NewPlaceRepository(places),
		},
	}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm.factory)
}
