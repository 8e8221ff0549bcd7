package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes ledger operation metrics on a dedicated registry.
type Collector struct {
	registry            *prometheus.Registry
	operationsTotal     *prometheus.CounterVec
	operationDuration   prometheus.Histogram
	largeAmountFlags    *prometheus.CounterVec
	walletBalance       *prometheus.GaugeVec
	rateRefreshFailures prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		operationsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Ledger operations by type and outcome",
		}, []string{"operation", "outcome"}),
		operationDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Time taken to commit a ledger operation",
			Buckets: prometheus.DefBuckets,
		}),
		largeAmountFlags: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_large_amount_flags_total",
			Help: "Operations flagged for review due to unusually large fiat amounts",
		}, []string{"currency"}),
		walletBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "wallet_balance",
			Help: "Last observed wallet balance",
		}, []string{"currency"}),
		rateRefreshFailures: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "rate_refresh_failures_total",
			Help: "Failed exchange rate refresh cycles",
		}),
	}
}

// RecordOperation counts one operation attempt with its outcome and duration.
func (c *Collector) RecordOperation(operation, outcome string, duration time.Duration) {
	c.operationsTotal.WithLabelValues(operation, outcome).Inc()
	c.operationDuration.Observe(duration.Seconds())
}

// FlagLargeAmount counts a non-blocking large-amount review flag.
func (c *Collector) FlagLargeAmount(currency string) {
	c.largeAmountFlags.WithLabelValues(currency).Inc()
}

// SetWalletBalance records the balance observed after a commit.
func (c *Collector) SetWalletBalance(currency string, balance float64) {
	c.walletBalance.WithLabelValues(currency).Set(balance)
}

// RecordRateRefreshFailure counts a failed refresh cycle.
func (c *Collector) RecordRateRefreshFailure() {
	c.rateRefreshFailures.Inc()
}

// Handler returns the HTTP handler serving this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Noop is a no-op metrics sink for tests and optional wiring.
type Noop struct{}

func (Noop) RecordOperation(string, string, time.Duration) {}
func (Noop) FlagLargeAmount(string)                        {}
func (Noop) SetWalletBalance(string, float64)              {}
func (Noop) RecordRateRefreshFailure()                     {}
