package metrics

import (
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clustererFetchGroupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "fetch_groups_total",
		Help:      "Count of attempts to fetch multi-input groups.",
	}, []string{"coin", "network", "status"})

	clustererFetchGroupsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "fetch_groups_duration_seconds",
		Help:      "Duration of fetching multi-input groups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	clustererGroupsFetched = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "groups_fetched",
		Help:      "Number of multi-input groups fetched per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1..~4M
	}, []string{"coin", "network"})

	clustererClusteringDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "clustering_duration_seconds",
		Help:      "Duration of the union-find pass and partition build.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	clustererClustersBuilt = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "clusters_built",
		Help:      "Number of clusters in the produced partition.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"coin", "network"})

	clustererWritePartitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "write_partition_total",
		Help:      "Count of partition document writes.",
	}, []string{"coin", "network", "status"})

	clustererWritePartitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "entitylens7000",
		Subsystem: "clusterer",
		Name:      "write_partition_duration_seconds",
		Help:      "Duration of partition document writes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
)

// Clusterer tracks metrics for clustering batch runs.
type Clusterer struct {
	coin    model.Coin
	network model.Network
}

func NewClusterer(coin model.Coin, network model.Network) *Clusterer {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Clusterer{coin: coin, network: network}
}

func (m Clusterer) ObserveFetchGroups(err error, groups int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	clustererFetchGroupsTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	clustererFetchGroupsDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		clustererGroupsFetched.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(groups))
	}
}

func (m Clusterer) ObserveClustering(err error, clusters int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	clustererClusteringDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		clustererClustersBuilt.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(clusters))
	}
}

func (m Clusterer) ObserveWritePartition(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	clustererWritePartitionTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	clustererWritePartitionDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}
