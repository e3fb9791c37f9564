package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fxalerts"

// Metrics holds every collector exported by the service.
type Metrics struct {
	// Upstream providers
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec

	// Resolver outcomes by strategy (identity, crypto, fiat, cross, none)
	ResolutionsTotal *prometheus.CounterVec

	// Scheduler
	TicksTotal         *prometheus.CounterVec
	TickDuration       prometheus.Histogram
	SubscriptionsTotal prometheus.Gauge
	AlertsTriggered    prometheus.Counter
	DeliveriesTotal    *prometheus.CounterVec
}

// New registers collectors in reg. Pass prometheus.DefaultRegisterer in production
// and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_requests_total",
				Help:      "Upstream rate provider calls by outcome",
			},
			[]string{"provider", "outcome"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Upstream rate provider latency",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 11),
			},
			[]string{"provider"},
		),
		ResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_resolutions_total",
				Help:      "Rate resolutions by winning strategy",
			},
			[]string{"strategy"},
		),
		TicksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alert_ticks_total",
				Help:      "Alert scheduler ticks by outcome",
			},
			[]string{"outcome"},
		),
		TickDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "alert_tick_duration_seconds",
				Help:      "Time spent evaluating all subscriptions in one tick",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
		SubscriptionsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "subscriptions",
				Help:      "Subscriptions in the last snapshot",
			},
		),
		AlertsTriggered: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_triggered_total",
				Help:      "Subscriptions whose condition matched",
			},
		),
		DeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alert_deliveries_total",
				Help:      "Notification sends by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// NewNop returns collectors bound to a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
