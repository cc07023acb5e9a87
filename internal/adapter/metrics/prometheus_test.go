package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dayanaadylkhanova/credit-claim/internal/service"
)

var _ service.Recorder = (*Metrics)(nil)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.ObserveClaim("ok", 1500*time.Millisecond)
	m.ObserveClaim("ok", time.Second)
	m.ObserveClaim("settle_failed", time.Second)
	m.AddMinted(150)
	m.AddMinted(-1)
	m.ObservePayment("credits-read", "admitted")
	m.ObserveReconcile("settled")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.claimsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.claimsTotal.WithLabelValues("settle_failed")))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.mintedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsTotal.WithLabelValues("credits-read", "admitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconcileTotal.WithLabelValues("settled")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.claimDuration))
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
