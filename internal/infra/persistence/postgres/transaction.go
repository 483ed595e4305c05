package postgres

import (
	"context"

	domainerrors "sportera/internal/domain/errors"
	"sportera/internal/domain/repository"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories sharing one *gorm.DB transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(r.tx)
}

func (r *txRepositories) PlaceRepo() repository.PlaceRepository {
	return NewPlaceRepository(r.tx)
}

// NewTransactionManager returns a TransactionManager backed by gorm's Transaction helper,
// which rolls back when fn fails or panics.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute returns fn's own error unchanged; begin or commit failures surface as dependency errors.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.NewDatabaseExecuteError(err, "transaction")
	}
}
