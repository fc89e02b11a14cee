package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/OlgaCeban/LightAutoML/selection"
)

func TestMetricsImplementTracker(t *testing.T) {
	t.Parallel()
	var _ selection.Tracker = NewWithRegistry(prometheus.NewRegistry())
}

func TestMetrics_TrackerEvents(t *testing.T) {
	t.Parallel()
	m := NewWithRegistry(prometheus.NewRegistry())

	m.SelectionDuration(150 * time.Millisecond)
	m.SelectionDuration(50 * time.Millisecond)
	m.FeaturesSelected(12)
	m.FeaturesDropped(3)
	m.FeaturesDropped(2)
	m.SelectionErrorsInc()

	if got := testutil.ToFloat64(m.SelectionsTotal); got != 2 {
		t.Errorf("SelectionsTotal = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DroppedFeatures); got != 5 {
		t.Errorf("DroppedFeatures = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.SelectionErrors); got != 1 {
		t.Errorf("SelectionErrors = %v, want 1", got)
	}
}

func TestMetrics_IsolatedRegistries(t *testing.T) {
	t.Parallel()

	// Two instances on separate registries must not collide.
	m1 := NewWithRegistry(prometheus.NewRegistry())
	m2 := NewWithRegistry(prometheus.NewRegistry())

	m1.SelectionErrorsInc()
	if got := testutil.ToFloat64(m2.SelectionErrors); got != 0 {
		t.Errorf("registries leaked: m2 errors = %v", got)
	}
}
