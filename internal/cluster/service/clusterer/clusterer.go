// Package clusterer drives the multi-input heuristic over a batch of
// transaction groups and materializes the resulting address partition.
package clusterer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/disjointset"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

// Service runs one clustering batch: fetch groups, union addresses that
// co-fund a transaction, flatten the forest, persist the partition.
type Service struct {
	logger     *zap.Logger
	coin       model.Coin
	network    model.Network
	metrics    ClustererMetrics
	source     GroupSource
	writer     PartitionWriter
	outputPath string
}

func NewService(
	source GroupSource,
	writer PartitionWriter,
	metrics ClustererMetrics,
	coin model.Coin,
	network model.Network,
	outputPath string,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("group source is required")
	}
	if writer == nil {
		return nil, errors.New("partition writer is required")
	}
	if metrics == nil {
		return nil, errors.New("clusterer metrics is required")
	}
	if outputPath == "" {
		return nil, errors.New("output path is required")
	}

	return &Service{
		logger: logger.With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		),
		coin:       coin,
		network:    network,
		metrics:    metrics,
		source:     source,
		writer:     writer,
		outputPath: outputPath,
	}, nil
}

// Run executes the batch once. An empty batch succeeds and persists an
// empty partition.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	groups, err := s.source.MultiInputGroups(ctx)
	s.metrics.ObserveFetchGroups(err, len(groups), started)
	if err != nil {
		return fmt.Errorf("fetch multi-input groups: %w", err)
	}
	s.logger.Info("fetched multi-input groups", zap.Int("groups", len(groups)))

	started = time.Now()
	partition, err := s.cluster(groups)
	s.metrics.ObserveClustering(err, len(partition), started)
	if err != nil {
		return err
	}

	summary := model.Summarize(partition)
	if summary.Empty() {
		s.logger.Info("no clusters produced")
	} else {
		s.logger.Info("clustering finished",
			zap.Int("clusters", summary.Clusters),
			zap.Int("min_size", summary.MinSize),
			zap.Int("max_size", summary.MaxSize),
			zap.Float64("mean_size", summary.MeanSize),
		)
	}

	started = time.Now()
	err = s.writer.Write(s.outputPath, partition)
	s.metrics.ObserveWritePartition(err, started)
	if err != nil {
		return fmt.Errorf("write partition: %w", err)
	}
	s.logger.Info("partition persisted", zap.String("path", s.outputPath))
	return nil
}

// cluster registers every address of every group, then unions consecutive
// addresses within each group. Chained unions are enough to merge a whole
// group through transitivity.
func (s *Service) cluster(groups []model.MultiInputGroup) (model.Partition, error) {
	forest := disjointset.New()

	for _, group := range groups {
		for _, addr := range group.Addresses {
			forest.MakeSet(addr)
		}
		for i := 1; i < len(group.Addresses); i++ {
			if err := forest.Union(group.Addresses[i-1], group.Addresses[i]); err != nil {
				return nil, fmt.Errorf("union group %d: %w", group.TxID, err)
			}
		}
	}

	partition, err := forest.Partition()
	if err != nil {
		return nil, fmt.Errorf("materialize partition: %w", err)
	}
	return partition, nil
}
