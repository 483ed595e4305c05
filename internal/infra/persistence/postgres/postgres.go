package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"sportera/config"
	"sportera/internal/domain/lifecycle"
	"sportera/internal/errors"
	"sportera/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolStatsNamespace = "sportera"
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

// New opens the primary connection through go-lib, exposes the pool stats on the
// registry and pings the database when the application starts.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	var slowThreshold time.Duration
	if params.Config.Storage != nil {
		slowThreshold = params.Config.Storage.SlowQueryThreshold
	}

	// Multi-statement atomicity goes through the TransactionManager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Metrics, params.Config.Env.Debug, slowThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		if err := params.Registry.Register(collectors.NewDBStatsCollector(sqlDB, poolStatsNamespace)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool collector")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPoolContention(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// watchPoolContention warns when requests queued for a connection during the last interval
// waited longer than poolWaitWarnAfter on average. Raw pool numbers are on /metrics.
func watchPoolContention(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := sqlDB.Stats()
		waits := stats.WaitCount - last.WaitCount
		waited := stats.WaitDuration - last.WaitDuration
		last = stats

		if waits <= 0 {
			continue
		}

		avg := waited / time.Duration(waits)
		if avg < poolWaitWarnAfter {
			continue
		}

		logger.LogAttrs(ctx, slog.LevelWarn, "PostgreSQL pool contention",
			slog.Int64("waits", waits),
			slog.Duration("avgWait", avg),
			slog.Int("inUse", stats.InUse),
			slog.Int("maxOpen", stats.MaxOpenConnections),
		)
	}
}
