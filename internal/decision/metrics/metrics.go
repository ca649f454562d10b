package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Decision outcomes by outcome ("approved" or failure kind) and segment
	DecisionOutcome *prometheus.CounterVec

	// Overall evaluation latency
	DecideLatency prometheus.Histogram

	// Approved loan amounts
	ApprovedAmount prometheus.Histogram

	// Months added to the requested period to reach the minimum amount
	PeriodExtension prometheus.Histogram
}

// New creates the decision metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecisionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_engine_decision_outcomes_total",
			Help: "Total loan decisions by outcome and credit segment",
		}, []string{"outcome", "segment"}),

		DecideLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_engine_decision_duration_seconds",
			Help:    "Duration of a loan decision including validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		ApprovedAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_engine_decision_approved_amount",
			Help:    "Approved loan amounts in currency units",
			Buckets: prometheus.LinearBuckets(2000, 1000, 9),
		}),

		PeriodExtension: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_engine_decision_period_extension_months",
			Help:    "Months added to the requested period to reach the minimum loan amount",
			Buckets: []float64{0, 1, 3, 6, 12, 24, 48},
		}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(outcome, segment string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(outcome, segment).Inc()
	}
}

// ObserveDecideLatency records the total decision duration.
func (m *Metrics) ObserveDecideLatency(d time.Duration) {
	if m != nil {
		m.DecideLatency.Observe(d.Seconds())
	}
}

// ObserveApproval records the approved amount and how far the period moved.
func (m *Metrics) ObserveApproval(amount, extension int) {
	if m != nil {
		m.ApprovedAmount.Observe(float64(amount))
		m.PeriodExtension.Observe(float64(extension))
	}
}
