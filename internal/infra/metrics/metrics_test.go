package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncDonationCreated()
	m.IncDonationCreated()
	m.ObserveTransition("claim", "ok")
	m.ObservePush(3, 1, 1)
	m.ObserveEmail("claim", "sent")
	m.SetBreakerState("brevo", 2)
	m.LiveSubscriptionOpened("donations")
	m.LiveSubscriptionOpened("donations")
	m.LiveSubscriptionClosed("donations")
	m.ObserveQuery(5 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DonationsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("claim", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PushTokens.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvalidTokens))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("brevo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveSubscriptions.WithLabelValues("donations")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncDonationCreated()
		m.IncRequestCreated()
		m.ObserveTransition("claim", "ok")
		m.ObservePush(1, 1, 1)
		m.ObserveEmail("claim", "sent")
		m.SetBreakerState("brevo", 1)
		m.LiveSubscriptionOpened("donations")
		m.LiveSubscriptionClosed("donations")
		m.IncChangeSignal("donations")
		m.ObserveQuery(time.Millisecond)
	})
}
