package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/errors"
	"sportera/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

const (
	queryOutcomeOK       = "ok"
	queryOutcomeNotFound = "not_found"
	queryOutcomeError    = "error"
)

// queryLogger routes GORM output through the request-scoped slog logger
// and times every statement into the db_query_duration histogram.
// SQL text is logged only at Info level, so bound values never reach warn/error lines.
type queryLogger struct {
	base          *slog.Logger
	metrics       *metrics.Metrics
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, m *metrics.Metrics, debug bool, slowThreshold time.Duration) *queryLogger {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	if slowThreshold <= 0 {
		slowThreshold = defaultSlowQueryThreshold
	}

	return &queryLogger{
		base:          base,
		metrics:       m,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	operation := statementOperation(sql)

	outcome := queryOutcomeOK
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		outcome = queryOutcomeNotFound
	case err != nil:
		outcome = queryOutcomeError
	}
	l.metrics.ObserveDBQuery(operation, outcome, elapsed)

	if l.level == logger.Silent {
		return
	}

	log := l.loggerFor(ctx)
	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
	}
	if l.level >= logger.Info {
		attrs = append(attrs, slog.String("sql", sql))
	}

	switch {
	case outcome == queryOutcomeError && l.level >= logger.Error:
		log.LogAttrs(ctx, slog.LevelError, "Query failed", append(attrs, slog.String("error", err.Error()))...)
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "Slow query", append(attrs, slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelInfo, "Query", attrs...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	fallback := l.base
	if fallback == nil {
		fallback = slog.Default()
	}

	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// statementOperation returns the lowercase leading SQL keyword, e.g. "select".
func statementOperation(sql string) string {
	trimmed := strings.TrimSpace(sql)
	if end := strings.IndexAny(trimmed, " \n\t("); end > 0 {
		trimmed = trimmed[:end]
	}

	switch op := strings.ToLower(trimmed); op {
	case "select", "insert", "update", "delete", "begin", "commit", "rollback", "savepoint":
		return op
	case "":
		return "unknown"
	default:
		return "other"
	}
}
