package repository

import "context"

// TransactionManager runs a unit of work atomically. fn receives repositories bound
// to the transaction; a non-nil return rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	PlaceRepo() PlaceRepository
}
