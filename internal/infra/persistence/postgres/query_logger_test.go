package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStatementOperation(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "places" WHERE id = $1`:  "select",
		"  insert into accounts (id) values ($1)": "insert",
		"UPDATE\n\"accounts\" SET points = $1":    "update",
		"DELETE FROM places":                      "delete",
		"BEGIN":                                   "begin",
		"WITH cte AS (SELECT 1) SELECT * FROM cte": "other",
		"": "unknown",
	}

	for sql, want := range tests {
		assert.Equal(t, want, statementOperation(sql), sql)
	}
}

func TestQueryLogger_TraceRecordsOutcome(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	ql := newQueryLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), m, false, 0)
	ctx := context.Background()
	sql := func() (string, int64) { return `SELECT * FROM "places"`, 1 }

	ql.Trace(ctx, time.Now(), sql, nil)
	ql.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	ql.Trace(ctx, time.Now(), sql, errors.New("connection reset"))

	for _, outcome := range []string{queryOutcomeOK, queryOutcomeNotFound, queryOutcomeError} {
		observer := m.DBQueryDuration.WithLabelValues("select", outcome)
		histogram, ok := observer.(prometheus.Histogram)
		if assert.True(t, ok) {
			assert.Equal(t, 1, testutil.CollectAndCount(histogram), outcome)
		}
	}
}

func TestQueryLogger_UsesRequestLoggerAndHidesSQLBelowInfo(t *testing.T) {
	var base, scoped bytes.Buffer
	ql := newQueryLogger(slog.New(slog.NewTextHandler(&base, nil)), nil, false, 0)

	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	ql.Trace(ctx, time.Now(), func() (string, int64) {
		return `UPDATE "accounts" SET password = 'secret'`, 0
	}, errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "Query failed")
	assert.Contains(t, scoped.String(), "request_id=req-42")
	assert.Contains(t, scoped.String(), "operation=update")
	assert.NotContains(t, scoped.String(), "secret")
}

func TestQueryLogger_SlowQueryWarning(t *testing.T) {
	var buf bytes.Buffer
	ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil, false, 10*time.Millisecond)

	ql.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT 1`, 1
	}, nil)

	assert.Contains(t, buf.String(), "Slow query")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestQueryLogger_SilentModeStillRecordsMetrics(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	ql := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), m, true, 0).LogMode(logger.Silent)

	ql.Trace(context.Background(), time.Now(), func() (string, int64) { return `DELETE FROM places`, 1 }, nil)

	assert.Empty(t, buf.String())
	histogram, ok := m.DBQueryDuration.WithLabelValues("delete", queryOutcomeOK).(prometheus.Histogram)
	if assert.True(t, ok) {
		assert.Equal(t, 1, testutil.CollectAndCount(histogram))
	}
}
