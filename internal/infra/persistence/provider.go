// Package persistence selects and wires the configured storage driver.
package persistence

import (
	"context"
	"log/slog"

	"sportera/config"
	"sportera/internal/domain/constants"
	"sportera/internal/domain/lifecycle"
	"sportera/internal/domain/repository"
	"sportera/internal/errors"
	"sportera/internal/infra/persistence/memory"
	"sportera/internal/infra/metrics"
	"sportera/internal/infra/persistence/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics     `optional:"true"`
	Registry *prometheus.Registry `optional:"true"`
}

// Result exposes the repositories of the selected driver to the container.
type Result struct {
	fx.Out

	Accounts  repository.AccountRepository
	Places    repository.PlaceRepository
	TxManager repository.TransactionManager
}

// New builds the repositories for cfg.Storage.Driver.
func New(params Params) (Result, error) {
	driver := constants.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Info("Using in-memory storage")

		return newMemoryResult(), nil
	case constants.StorageDriverPostgres:
		return newPostgresResult(params)
	default:
		return Result{}, errors.Errorf("unsupported storage driver: %s", driver)
	}
}

func newMemoryResult() Result {
	accounts := memory.NewAccountStore()
	places := memory.NewPlaceStore()

	return Result{
		Accounts:  memory.NewAccountRepository(accounts),
		Places:    memory.NewPlaceRepository(places),
		TxManager: memory.NewTransactionManager(accounts, places),
	}
}

func newPostgresResult(params Params) (Result, error) {
	if params.Config.Postgres == nil {
		return Result{}, errors.New("postgres storage selected but postgres config is missing")
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
		Metrics:   params.Metrics,
		Registry:  params.Registry,
	})
	if err != nil {
		return Result{}, err
	}

	if params.Config.Storage.AutoMigrate {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return postgres.AutoMigrate(ctx, db)
			},
		})
	}

	params.Logger.Info("Using PostgreSQL storage", slog.Bool("autoMigrate", params.Config.Storage.AutoMigrate))

	return Result{
		Accounts:  postgres.NewAccountRepository(db),
		Places:    postgres.NewPlaceRepository(db),
		TxManager: postgres.NewTransactionManager(db),
	}, nil
}
