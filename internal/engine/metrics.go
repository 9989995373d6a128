package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts lifecycle outcomes; labels stay low-cardinality (result, not
// shop) so a fleet of shops cannot blow up the registry.
type Metrics struct {
	Promotions    prometheus.Counter
	Completions   prometheus.Counter
	PublishWrites *prometheus.CounterVec
	TickDuration  prometheus.Histogram
	TickErrors    prometheus.Counter
	ActiveActors  prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		Promotions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dropdeck_promotions_total",
			Help: "Drops promoted from queued to active",
		}),
		Completions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dropdeck_completions_total",
			Help: "Drops moved from active to completed",
		}),
		PublishWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dropdeck_publish_writes_total",
			Help: "External published-key writes by result",
		}, []string{"result"}),
		TickDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dropdeck_tick_duration_seconds",
			Help:    "Duration of a single lifecycle pass",
			Buckets: prometheus.DefBuckets,
		}),
		TickErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dropdeck_tick_errors_total",
			Help: "Lifecycle passes that ended with an error",
		}),
		ActiveActors: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dropdeck_active_actors",
			Help: "Shop actors currently running",
		}),
	}
}

// NewTestMetrics builds metrics on a private registry so unit tests do not
// collide on the default registerer.
func NewTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Promotions:    factory.NewCounter(prometheus.CounterOpts{Name: "dropdeck_promotions_total"}),
		Completions:   factory.NewCounter(prometheus.CounterOpts{Name: "dropdeck_completions_total"}),
		PublishWrites: factory.NewCounterVec(prometheus.CounterOpts{Name: "dropdeck_publish_writes_total"}, []string{"result"}),
		TickDuration:  factory.NewHistogram(prometheus.HistogramOpts{Name: "dropdeck_tick_duration_seconds"}),
		TickErrors:    factory.NewCounter(prometheus.CounterOpts{Name: "dropdeck_tick_errors_total"}),
		ActiveActors:  factory.NewGauge(prometheus.GaugeOpts{Name: "dropdeck_active_actors"}),
	}
}
