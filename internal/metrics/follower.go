package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "sync_total",
		Help:      "Count of follower sync iterations.",
	}, []string{"network", "status"})
	followerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a follower sync iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	followerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "batch_size",
		Help:      "Number of headers submitted per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
	followerLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "lag_blocks",
		Help:      "Blocks between the node tip and the relay tip.",
	}, []string{"network"})
)

// Follower tracks the header follower.
type Follower struct {
	network string
}

// NewFollower constructs a Follower collector for network.
func NewFollower(network model.Network) *Follower {
	return &Follower{network: networkLabel(network)}
}

// ObserveSync records one sync iteration.
func (m Follower) ObserveSync(err error, started time.Time) {
	s := status(err)
	followerSyncTotal.WithLabelValues(m.network, s).Inc()
	followerSyncDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveBatch records the size of a submitted batch.
func (m Follower) ObserveBatch(headers int) {
	followerBatchSize.WithLabelValues(m.network).Observe(float64(headers))
}

// SetLag records how far the relay trails the node.
func (m Follower) SetLag(nodeHeight, relayHeight uint32) {
	lag := 0.0
	if nodeHeight > relayHeight {
		lag = float64(nodeHeight - relayHeight)
	}
	followerLag.WithLabelValues(m.network).Set(lag)
}
