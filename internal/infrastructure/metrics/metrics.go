package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Cut metrics
	CutsCreated    *prometheus.CounterVec
	CutsUpdated    prometheus.Counter
	CutsClosed     prometheus.Counter
	CutsDeleted    prometheus.Counter
	DesyncsFlagged prometheus.Counter

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CutsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_cuts_created_total",
				Help: "Total number of cuts created",
			},
			[]string{"source"},
		),
		CutsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashcut_cuts_updated_total",
			Help: "Total number of cut edits",
		}),
		CutsClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashcut_cuts_closed_total",
			Help: "Total number of cuts closed",
		}),
		CutsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashcut_cuts_deleted_total",
			Help: "Total number of cuts deleted",
		}),
		DesyncsFlagged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashcut_expense_desyncs_total",
			Help: "Total number of expense desyncs flagged",
		}),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashcut_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashcut_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}

// CutCreated records a created cut, split by manual vs derived.
func (m *Metrics) CutCreated(manual bool) {
	source := "derived"
	if manual {
		source = "manual"
	}
	m.CutsCreated.WithLabelValues(source).Inc()
}

// CutUpdated records a cut edit.
func (m *Metrics) CutUpdated() { m.CutsUpdated.Inc() }

// CutClosed records a cut close.
func (m *Metrics) CutClosed() { m.CutsClosed.Inc() }

// CutDeleted records a cut deletion.
func (m *Metrics) CutDeleted() { m.CutsDeleted.Inc() }

// DesyncDetected records a flagged expense desync.
func (m *Metrics) DesyncDetected() { m.DesyncsFlagged.Inc() }
