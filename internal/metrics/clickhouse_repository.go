package metrics

import (
	"time"

	"github.com/goodnatureofminers/btcrelay-backend/internal/relay/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of history repository operations.",
	}, []string{"operation", "network", "status"})
	clickhouseRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of history repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
	clickhouseRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "rows_total",
		Help:      "Count of rows sent to ClickHouse.",
	}, []string{"operation", "network"})
)

// ClickhouseRepository tracks ClickHouse history writes.
type ClickhouseRepository struct {
	network string
}

// NewClickhouseRepository creates a collector for network.
func NewClickhouseRepository(network model.Network) *ClickhouseRepository {
	return &ClickhouseRepository{network: networkLabel(network)}
}

// Observe records the outcome of writing rows in one operation.
func (m ClickhouseRepository) Observe(operation string, rows int, err error, started time.Time) {
	s := status(err)
	clickhouseRepositoryRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	clickhouseRepositoryRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		clickhouseRepositoryRows.WithLabelValues(operation, m.network).Add(float64(rows))
	}
}
