// Package metrics exposes Prometheus instruments for the donation lifecycle,
// notification delivery and live views. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodbridge"

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics holds every instrument the service records.
type Metrics struct {
	DonationsCreated  prometheus.Counter
	RequestsCreated   prometheus.Counter
	Transitions       *prometheus.CounterVec
	PushTokens        *prometheus.CounterVec
	InvalidTokens     prometheus.Counter
	Emails            *prometheus.CounterVec
	BreakerState      *prometheus.GaugeVec
	LiveSubscriptions *prometheus.GaugeVec
	ChangeSignals     *prometheus.CounterVec
	QueryDuration     prometheus.Histogram
}

// New registers all instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DonationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_created_total",
			Help:      "Total number of donations created",
		}),
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_created_total",
			Help:      "Total number of orphanage requests created",
		}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donation_transitions_total",
			Help:      "Donation lifecycle transitions by event and outcome",
		}, []string{"event", "outcome"}),
		PushTokens: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_tokens_total",
			Help:      "Push tokens attempted by outcome",
		}, []string{"outcome"}),
		InvalidTokens: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_invalid_tokens_total",
			Help:      "Push tokens reported invalid or unregistered and cleared",
		}),
		Emails: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_total",
			Help:      "Transactional emails by template and outcome",
		}, []string{"template", "outcome"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		}, []string{"name"}),
		LiveSubscriptions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_subscriptions",
			Help:      "Active live query subscriptions by collection",
		}, []string{"collection"}),
		ChangeSignals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_signals_total",
			Help:      "Change feed signals published by collection",
		}, []string{"collection"}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database statements",
			Buckets:   durationBuckets,
		}),
	}
}

// NewDefault registers the instruments with the global Prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

// IncDonationCreated records a created donation.
func (m *Metrics) IncDonationCreated() {
	if m == nil {
		return
	}
	m.DonationsCreated.Inc()
}

// IncRequestCreated records a created request.
func (m *Metrics) IncRequestCreated() {
	if m == nil {
		return
	}
	m.RequestsCreated.Inc()
}

// ObserveTransition records the outcome of a lifecycle event.
func (m *Metrics) ObserveTransition(event, outcome string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(event, outcome).Inc()
}

// ObservePush records push delivery results.
func (m *Metrics) ObservePush(success, failure, invalid int) {
	if m == nil {
		return
	}
	m.PushTokens.WithLabelValues("success").Add(float64(success))
	m.PushTokens.WithLabelValues("failure").Add(float64(failure))
	m.InvalidTokens.Add(float64(invalid))
}

// ObserveEmail records the outcome of one templated email.
func (m *Metrics) ObserveEmail(template, outcome string) {
	if m == nil {
		return
	}
	m.Emails.WithLabelValues(template, outcome).Inc()
}

// SetBreakerState records a circuit breaker state change.
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(name).Set(float64(state))
}

// LiveSubscriptionOpened tracks a new live query.
func (m *Metrics) LiveSubscriptionOpened(collection string) {
	if m == nil {
		return
	}
	m.LiveSubscriptions.WithLabelValues(collection).Inc()
}

// LiveSubscriptionClosed tracks a finished live query.
func (m *Metrics) LiveSubscriptionClosed(collection string) {
	if m == nil {
		return
	}
	m.LiveSubscriptions.WithLabelValues(collection).Dec()
}

// IncChangeSignal records a published change signal.
func (m *Metrics) IncChangeSignal(collection string) {
	if m == nil {
		return
	}
	m.ChangeSignals.WithLabelValues(collection).Inc()
}

// ObserveQuery records the duration of a database statement.
func (m *Metrics) ObserveQuery(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(elapsed.Seconds())
}
