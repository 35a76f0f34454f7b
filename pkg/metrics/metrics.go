package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tripcost"

// Registry holds the application collectors.
type Registry struct {
	TripsComputed   prometheus.Counter
	FlightSearches  *prometheus.CounterVec
	SavedTripOps    *prometheus.CounterVec
	ComputeDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg. It panics if a
// collector with the same name is already registered on reg.
func New(reg prometheus.Registerer) *Registry {
	r := &Registry{
		TripsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trips_computed_total",
			Help:      "Number of trip plans priced.",
		}),
		FlightSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_searches_total",
			Help:      "Number of flight searches by cache outcome.",
		}, []string{"cache"}),
		SavedTripOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saved_trip_operations_total",
			Help:      "Saved-trip store operations by operation and result.",
		}, []string{"op", "result"}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trip_compute_duration_seconds",
			Help:      "Time spent pricing one trip plan.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	reg.MustRegister(r.TripsComputed, r.FlightSearches, r.SavedTripOps, r.ComputeDuration)
	return r
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Registry {
	return New(prometheus.NewRegistry())
}

func CacheLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
