package jsonrpc

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const methodLabel = "method"

// Metrics represents the provider adapter metrics.
// Every metric is further labelled with the called method.
type Metrics struct {
	// No.of requests sent to the provider
	Requests metrics.Counter
	// No.of requests answered with an error object
	Errors metrics.Counter

	// Time spent waiting for the provider in seconds
	Duration metrics.Histogram
}

// GetPrometheusMetrics return the adapter metrics instance
func GetPrometheusMetrics(namespace string, labelsWithValues ...string) *Metrics {
	labels := []string{}

	for i := 0; i < len(labelsWithValues); i += 2 {
		labels = append(labels, labelsWithValues[i])
	}

	labels = append(labels, methodLabel)

	return &Metrics{
		Requests: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jsonrpc",
			Name:      "requests",
			Help:      "Number of requests sent to the provider.",
		}, labels).With(labelsWithValues...),
		Errors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jsonrpc",
			Name:      "errors",
			Help:      "Number of requests answered with an error object.",
		}, labels).With(labelsWithValues...),
		Duration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jsonrpc",
			Name:      "duration_seconds",
			Help:      "Time spent waiting for the provider in seconds.",
			Buckets:   stdprometheus.DefBuckets,
		}, labels).With(labelsWithValues...),
	}
}

// NilMetrics will return the non operational metrics
func NilMetrics() *Metrics {
	return &Metrics{
		Requests: discard.NewCounter(),
		Errors:   discard.NewCounter(),
		Duration: discard.NewHistogram(),
	}
}
