package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for the brand portal.
type Metrics struct {
	// Request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Business metrics
	CampaignsLaunched *prometheus.CounterVec
	TalentSessions    *prometheus.CounterVec
	RosterActions     *prometheus.CounterVec

	// Storage metrics
	StorageQueries *prometheus.CounterVec
	StorageErrors  *prometheus.CounterVec

	// Health check metrics
	HealthCheckStatus *prometheus.GaugeVec
}

// NewPrometheusMetrics creates and registers all Prometheus metrics.
func NewPrometheusMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brandportal_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brandportal_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
			[]string{"method", "endpoint"},
		),

		CampaignsLaunched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_campaigns_launched_total",
				Help: "Total number of campaigns launched from the wizard",
			},
			[]string{"mode"},
		),

		TalentSessions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_talent_sessions_total",
				Help: "Total number of find-talent sessions by lifecycle event",
			},
			[]string{"event"},
		),

		RosterActions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_roster_actions_total",
				Help: "Total number of roster management actions",
			},
			[]string{"action", "outcome"},
		),

		StorageQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_storage_queries_total",
				Help: "Total number of storage queries",
			},
			[]string{"operation", "table"},
		),

		StorageErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brandportal_storage_errors_total",
				Help: "Total number of storage errors",
			},
			[]string{"operation", "error_type"},
		),

		HealthCheckStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brandportal_health_check_status",
				Help: "Health check status (1 = healthy, 0 = unhealthy)",
			},
			[]string{"check_type"},
		),
	}
}

// RecordHTTPRequest records an HTTP request with its duration and status.
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordCampaignLaunch records a campaign launched from the wizard.
func (m *Metrics) RecordCampaignLaunch(mode string) {
	m.CampaignsLaunched.WithLabelValues(mode).Inc()
}

// RecordTalentSession records a talent-session lifecycle event.
func (m *Metrics) RecordTalentSession(event string) {
	m.TalentSessions.WithLabelValues(event).Inc()
}

// RecordRosterAction records one roster management action and whether it
// was accepted.
func (m *Metrics) RecordRosterAction(action, outcome string) {
	m.RosterActions.WithLabelValues(action, outcome).Inc()
}

// RecordStorageQuery records a storage query.
func (m *Metrics) RecordStorageQuery(operation, table string) {
	m.StorageQueries.WithLabelValues(operation, table).Inc()
}

// RecordStorageError records a storage error.
func (m *Metrics) RecordStorageError(operation, errorType string) {
	m.StorageErrors.WithLabelValues(operation, errorType).Inc()
}

// SetHealthCheckStatus sets the health check status.
func (m *Metrics) SetHealthCheckStatus(checkType string, healthy bool) {
	status := 0.0
	if healthy {
		status = 1.0
	}
	m.HealthCheckStatus.WithLabelValues(checkType).Set(status)
}

// IncRequestsInFlight increments the in-flight requests counter.
func (m *Metrics) IncRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// DecRequestsInFlight decrements the in-flight requests counter.
func (m *Metrics) DecRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Dec()
}
