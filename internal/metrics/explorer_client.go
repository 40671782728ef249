package metrics

import (
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entitylens7000",
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of wallet explorer lookups.",
	}, []string{"operation", "coin", "network", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet explorer lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// ExplorerClient tracks metrics for wallet explorer lookups.
type ExplorerClient struct {
	coin    model.Coin
	network model.Network
}

// NewExplorerClient constructs a metrics collector for explorer lookups.
func NewExplorerClient(coin model.Coin, network model.Network) *ExplorerClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ExplorerClient{coin: coin, network: network}
}

// Observe records a single lookup outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	explorerRequestsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	explorerRequestDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}
