package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "operations_total",
		Help:      "Count of relay engine operations.",
	}, []string{"operation", "network", "status"})
	engineOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "operation_duration_seconds",
		Help:      "Duration of relay engine operations including the store transaction.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "network", "status"})
	engineTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "tip_height",
		Help:      "Height of the committed chain tip.",
	}, []string{"network"})
	engineHeadersAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "headers_accepted_total",
		Help:      "Count of accepted block headers.",
	}, []string{"network"})
	enginePayoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "payout_total",
		Help:      "Sum of payouts released from the reserve.",
	}, []string{"network", "path"})
)

// Engine tracks relay engine operations.
type Engine struct {
	network string
}

// NewEngine constructs an Engine collector for network.
func NewEngine(network model.Network) *Engine {
	return &Engine{network: networkLabel(network)}
}

// Observe records an operation outcome and duration.
func (m Engine) Observe(operation string, err error, started time.Time) {
	s := status(err)
	engineOperationsTotal.WithLabelValues(operation, m.network, s).Inc()
	engineOperationDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}

// SetTip records the committed tip height.
func (m Engine) SetTip(height uint32) {
	engineTipHeight.WithLabelValues(m.network).Set(float64(height))
}

// AddHeaders counts accepted headers.
func (m Engine) AddHeaders(n int) {
	engineHeadersAccepted.WithLabelValues(m.network).Add(float64(n))
}

// AddPayout records a released payout.
func (m Engine) AddPayout(amount uint64, staged bool) {
	path := "direct"
	if staged {
		path = "staged"
	}
	enginePayoutTotal.WithLabelValues(m.network, path).Add(float64(amount))
}
