// Package metrics provides Prometheus metrics for the feature-selection
// layer. It implements the selection.Tracker interface so a selector fit can
// be observed without the selection package depending on Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for selection runs.
type Metrics struct {
	SelectionsTotal  prometheus.Counter   // Total number of completed selector fits
	SelectionErrors  prometheus.Counter   // Total number of failed selector fits
	FitDuration      prometheus.Histogram // Duration of selector fits in seconds
	SelectedFeatures prometheus.Histogram // Distribution of selected-feature counts
	DroppedFeatures  prometheus.Counter   // Total number of features dropped by selection
}

// New creates and registers all metrics using the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates metrics with a custom registry (useful for testing).
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		SelectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "selection_fits_total",
			Help: "Total number of completed selector fits",
		}),
		SelectionErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "selection_errors_total",
			Help: "Total number of failed selector fits",
		}),
		FitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "selection_fit_duration_seconds",
			Help:    "Duration of selector fits in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		SelectedFeatures: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "selection_selected_features",
			Help:    "Number of features kept per selector fit",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		DroppedFeatures: factory.NewCounter(prometheus.CounterOpts{
			Name: "selection_dropped_features_total",
			Help: "Total number of features dropped by selection",
		}),
	}
}

// SelectionDuration records a completed fit and its duration.
func (m *Metrics) SelectionDuration(d time.Duration) {
	m.SelectionsTotal.Inc()
	m.FitDuration.Observe(d.Seconds())
}

// FeaturesSelected records the size of a selection decision.
func (m *Metrics) FeaturesSelected(n int) {
	m.SelectedFeatures.Observe(float64(n))
}

// FeaturesDropped records how many features a fit dropped.
func (m *Metrics) FeaturesDropped(n int) {
	m.DroppedFeatures.Add(float64(n))
}

// SelectionErrorsInc records a failed fit.
func (m *Metrics) SelectionErrorsInc() {
	m.SelectionErrors.Inc()
}
