package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "portfolio"

// Metrics collects usecase counters. A nil *Metrics records nothing.
type Metrics struct {
	// queries counts engine queries. Labels: kind, cache (hit, miss, bypass)
	queries *prometheus.CounterVec

	// queryLatency measures time spent answering a query, cache lookups included.
	queryLatency *prometheus.HistogramVec

	// snapshots counts composite snapshot requests. Labels: result (hit, miss, bypass)
	snapshots *prometheus.CounterVec

	cacheClears prometheus.Counter

	// preferenceWrites counts preference changes. Labels: op (update, reset), result (ok, not_persisted, rejected)
	preferenceWrites *prometheus.CounterVec

	loginAttempts *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "requests_total",
			Help:      "Total content queries by collection and cache outcome",
		}, []string{"kind", "cache"}),
		queryLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "latency_seconds",
			Help:      "Content query latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"kind"}),
		snapshots: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "snapshot",
			Name:      "requests_total",
			Help:      "Total composite snapshot requests by cache outcome",
		}, []string{"result"}),
		cacheClears: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "clears_total",
			Help:      "Total explicit cache invalidations",
		}),
		preferenceWrites: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "preferences",
			Name:      "writes_total",
			Help:      "Total preference writes by operation and outcome",
		}, []string{"op", "result"}),
		loginAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Total admin login attempts by outcome",
		}, []string{"result"}),
	}
}

func (m *Metrics) observeQuery(kind, cache string, started time.Time) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(kind, cache).Inc()
	m.queryLatency.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

func (m *Metrics) snapshot(result string) {
	if m == nil {
		return
	}
	m.snapshots.WithLabelValues(result).Inc()
}

func (m *Metrics) cacheCleared() {
	if m == nil {
		return
	}
	m.cacheClears.Inc()
}

func (m *Metrics) preferenceWrite(op, result string) {
	if m == nil {
		return
	}
	m.preferenceWrites.WithLabelValues(op, result).Inc()
}

func (m *Metrics) login(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}
