package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sportera/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_ObservesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	e := echo.New()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.GET("/api/v1/places/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return echo.ErrNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/places/"+id, nil))
	}

	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
	notFound, ok := m.HTTPRequestDuration.WithLabelValues(http.MethodGet, "/api/v1/places/:id", "404").(prometheus.Histogram)
	if assert.True(t, ok) {
		assert.Equal(t, 1, testutil.CollectAndCount(notFound))
	}
}

func TestMetricsMiddleware_NilMetricsIsHarmless(t *testing.T) {
	e := echo.New()
	e.Use(NewMetricsMiddleware(nil).Handle)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
