// Package metrics holds the Prometheus instruments of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sportera"

// Login outcomes recorded by ObserveLogin.
const (
	LoginSucceeded = "success"
	LoginRejected  = "rejected"
	LoginFailed    = "error"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequestDuration     *prometheus.HistogramVec
	AccountsRegistered      prometheus.Counter
	LoginAttempts           *prometheus.CounterVec
	NearbySearches          prometheus.Counter
	NearbyResults           prometheus.Histogram
	TokensRevoked           prometheus.Counter
	RevocationCheckDuration prometheus.Histogram
	DBQueryDuration         *prometheus.HistogramVec
}

// NewRegistry creates a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates and registers all Prometheus metrics on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by method, route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		AccountsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_registered_total",
			Help:      "Total number of accounts registered",
		}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
		NearbySearches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_searches_total",
			Help:      "Total number of nearby searches served",
		}),
		NearbyResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearby_search_results",
			Help:      "Number of places returned by nearby searches",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		TokensRevoked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_revoked_total",
			Help:      "Total number of session tokens revoked at logout",
		}),
		RevocationCheckDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "token_revocation_check_duration_ms",
			Help:      "Latency of token revocation checks in milliseconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Latency of SQL statements by operation and outcome",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation", "outcome"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRegistration() {
	if m == nil {
		return
	}
	m.AccountsRegistered.Inc()
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveNearbySearch(results int) {
	if m == nil {
		return
	}
	m.NearbySearches.Inc()
	m.NearbyResults.Observe(float64(results))
}

func (m *Metrics) ObserveTokenRevoked() {
	if m == nil {
		return
	}
	m.TokensRevoked.Inc()
}

func (m *Metrics) ObserveRevocationCheck(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RevocationCheckDuration.Observe(float64(elapsed.Microseconds()) / 1000.0)
}

func (m *Metrics) ObserveDBQuery(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}
