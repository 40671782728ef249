package metrics

import (
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	annotatorReadPartitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entitylens7000",
		Subsystem: "annotator",
		Name:      "read_partition_total",
		Help:      "Count of partition document reads.",
	}, []string{"coin", "network", "status"})

	annotatorAnnotateClusterDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "annotator",
		Name:      "annotate_cluster_duration_seconds",
		Help:      "Duration of annotating a single cluster.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300},
	}, []string{"coin", "network", "status"})

	annotatorClusterMembers = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "annotator",
		Name:      "cluster_members",
		Help:      "Member count of annotated clusters.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"coin", "network"})
)

// Annotator tracks metrics for wallet annotation runs.
type Annotator struct {
	coin    model.Coin
	network model.Network
}

func NewAnnotator(coin model.Coin, network model.Network) *Annotator {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Annotator{coin: coin, network: network}
}

func (m Annotator) ObserveReadPartition(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	annotatorReadPartitionTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
}

func (m Annotator) ObserveAnnotateCluster(err error, members int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	annotatorAnnotateClusterDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		annotatorClusterMembers.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(members))
	}
}
