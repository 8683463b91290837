// Package prometheus exposes delivery workflow and HTTP metrics.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"deliveryproof/internal/core/domain/model/delivery"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "deliveryproof"

// Metrics implements ports.OutcomeRecorder and records HTTP traffic.
type Metrics struct {
	registry *prometheus.Registry

	outcomes        *prometheus.CounterVec
	critical        prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a dedicated registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Delivery confirmations by final outcome",
			},
			[]string{"outcome", "reason"},
		),
		critical: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "critical_total",
				Help:      "Deliveries neither notified nor recorded",
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	for _, c := range []prometheus.Collector{m.outcomes, m.critical, m.requestsTotal, m.requestDuration} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordOutcome counts one finished submission.
func (m *Metrics) RecordOutcome(outcome delivery.Outcome, reason string) {
	m.outcomes.WithLabelValues(outcome.String(), reason).Inc()
}

// RecordCritical counts a delivery that was neither notified nor recorded.
func (m *Metrics) RecordCritical() {
	m.critical.Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
