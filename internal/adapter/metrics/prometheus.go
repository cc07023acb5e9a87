package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "claimd"

// Metrics implements service.Recorder.
type Metrics struct {
	claimsTotal    *prometheus.CounterVec
	claimDuration  prometheus.Histogram
	mintedTotal    prometheus.Counter
	paymentsTotal  *prometheus.CounterVec
	reconcileTotal *prometheus.CounterVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		claimsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claim",
			Name:      "requests_total",
			Help:      "Claims handled, by outcome",
		}, []string{"outcome"}),
		claimDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "claim",
			Name:      "duration_seconds",
			Help:      "End-to-end claim latency including mint confirmation",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),
		mintedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claim",
			Name:      "minted_tokens_total",
			Help:      "Whole tokens minted to claimants",
		}),
		paymentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "paygate",
			Name:      "requests_total",
			Help:      "Gated requests, by resource and outcome",
		}, []string{"resource", "outcome"}),
		reconcileTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "intents_total",
			Help:      "Intents visited by the reconciler, by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveClaim(outcome string, d time.Duration) {
	m.claimsTotal.WithLabelValues(outcome).Inc()
	m.claimDuration.Observe(d.Seconds())
}

func (m *Metrics) AddMinted(amount int64) {
	if amount > 0 {
		m.mintedTotal.Add(float64(amount))
	}
}

func (m *Metrics) ObservePayment(resourceID, outcome string) {
	m.paymentsTotal.WithLabelValues(resourceID, outcome).Inc()
}

func (m *Metrics) ObserveReconcile(outcome string) {
	m.reconcileTotal.WithLabelValues(outcome).Inc()
}
