// Package annotator ranks clusters of a persisted partition by size and
// annotates the top ones with wallet labels from a public explorer.
package annotator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/walletexplorer"
	"github.com/goodnatureofminers/entitylens7000-backend/pkg/batcher"
	"github.com/goodnatureofminers/entitylens7000-backend/pkg/workerpool"
)

const (
	defaultWorkerCount = 4
	annotationSource   = "walletexplorer"

	reportFlushSize     = 100
	reportFlushInterval = 2 * time.Second
	reportFlushRPS      = 10
)

// Service annotates the top-K clusters of one run's partition.
type Service struct {
	logger        *zap.Logger
	metrics       AnnotatorMetrics
	reader        PartitionReader
	resolver      AddressResolver
	wallets       WalletResolver
	partitionPath string
	reportPath    string
	topK          int
	oneShot       bool
	workerCount   int
}

func NewService(
	reader PartitionReader,
	resolver AddressResolver,
	wallets WalletResolver,
	metrics AnnotatorMetrics,
	partitionPath string,
	reportPath string,
	topK int,
	oneShot bool,
	logger *zap.Logger,
) (*Service, error) {
	if reader == nil {
		return nil, errors.New("partition reader is required")
	}
	if resolver == nil {
		return nil, errors.New("address resolver is required")
	}
	if wallets == nil {
		return nil, errors.New("wallet resolver is required")
	}
	if metrics == nil {
		return nil, errors.New("annotator metrics is required")
	}
	if partitionPath == "" {
		return nil, errors.New("partition path is required")
	}
	if reportPath == "" {
		return nil, errors.New("report path is required")
	}
	if topK <= 0 {
		return nil, errors.New("top-k must be positive")
	}

	return &Service{
		logger:        logger,
		metrics:       metrics,
		reader:        reader,
		resolver:      resolver,
		wallets:       wallets,
		partitionPath: partitionPath,
		reportPath:    reportPath,
		topK:          topK,
		oneShot:       oneShot,
		workerCount:   defaultWorkerCount,
	}, nil
}

type rankedCluster struct {
	rank    int
	cluster model.Cluster
}

// Run annotates the top-K clusters and writes the CSV report. Lookup misses
// are skipped, not failed: the explorer is best effort by contract.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	partition, err := s.reader.Read(s.partitionPath)
	s.metrics.ObserveReadPartition(err, started)
	if err != nil {
		return fmt.Errorf("read partition: %w", err)
	}

	top := partition.TopBySize(s.topK)
	s.logger.Info("ranked clusters",
		zap.Int("clusters", len(partition)),
		zap.Int("selected", len(top)),
	)

	ranked := make([]rankedCluster, len(top))
	for i, cluster := range top {
		ranked[i] = rankedCluster{rank: i + 1, cluster: cluster}
	}

	writer, err := newReportWriter(s.reportPath)
	if err != nil {
		return err
	}

	sink := batcher.New[Annotation](s.logger, writer.WriteRows, reportFlushSize, reportFlushInterval, reportFlushRPS)
	sink.Start(ctx)

	err = workerpool.Process(ctx, s.workerCount, ranked, func(ctx context.Context, rc rankedCluster) error {
		return s.annotateCluster(ctx, rc, sink)
	}, nil)

	sink.Stop()
	if err != nil {
		writer.discard()
		return err
	}

	if err := writer.Commit(); err != nil {
		return fmt.Errorf("commit report: %w", err)
	}
	s.logger.Info("report written", zap.String("path", s.reportPath))
	return nil
}

func (s *Service) annotateCluster(ctx context.Context, rc rankedCluster, sink *batcher.Batcher[Annotation]) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveAnnotateCluster(err, len(rc.cluster.Members), started)
	}()

	hashes, err := s.resolver.Resolve(ctx, rc.cluster.Members)
	if err != nil {
		return fmt.Errorf("resolve cluster %d addresses: %w", rc.rank, err)
	}

	logger := s.logger.With(zap.Int("rank", rc.rank), zap.Uint64("root", uint64(rc.cluster.Root)))
	for _, member := range rc.cluster.Members {
		hash, ok := hashes[member]
		if !ok {
			logger.Warn("address id missing from mapping", zap.Uint64("address_id", uint64(member)))
			continue
		}

		label, lerr := s.wallets.WalletLabel(ctx, hash)
		switch {
		case lerr == nil:
		case errors.Is(lerr, walletexplorer.ErrNotFound), errors.Is(lerr, walletexplorer.ErrInvalidAddress):
			continue
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			logger.Warn("wallet lookup failed", zap.String("address", hash), zap.Error(lerr))
			continue
		}

		if aerr := sink.Add(ctx, Annotation{
			ClusterRank: rc.rank,
			Root:        rc.cluster.Root,
			Address:     hash,
			Wallet:      label,
			Source:      annotationSource,
		}); aerr != nil {
			return aerr
		}
		if s.oneShot {
			return nil
		}
	}
	return nil
}
