package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the outbound request metrics of an HTTPClient.
//
//   - places_http_requests_total{endpoint, method, status}
//   - places_http_request_duration_seconds{endpoint, method}
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "places_http_requests_total",
				Help: "Total number of outbound places API requests",
			},
			[]string{"endpoint", "method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "places_http_request_duration_seconds",
				Help:    "Duration of outbound places API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method"},
		),
	}
}
