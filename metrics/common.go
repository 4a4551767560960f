package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the basic namespace where all metrics are defined under.
const Namespace = "txview"

// NewCounter creates a Counter metrics under the global namespace.
func NewCounter(name, subsystem, help string, labels []string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewGauge creates a Gauge metrics under the global namespace.
func NewGauge(name, subsystem, help string, labels []string) *prometheus.GaugeVec {
	return promauto.NewGaugeVec(prometheus.GaugeOpts{Namespace: Namespace, Subsystem: subsystem, Name: name, Help: help}, labels)
}

// NewSimpleCounter creates a Counter without labels.
func NewSimpleCounter(name, subsystem, help string) prometheus.Counter {
	return NewCounter(name, subsystem, help, nil).WithLabelValues()
}

// NewSimpleGauge creates a Gauge without labels.
func NewSimpleGauge(name, subsystem, help string) prometheus.Gauge {
	return NewGauge(name, subsystem, help, nil).WithLabelValues()
}

// NewLatencyHistogram creates an unlabeled histogram of durations in seconds,
// with exponential buckets from half a millisecond to about four seconds.
func NewLatencyHistogram(name, subsystem, help string) prometheus.Observer {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, nil).WithLabelValues()
}
