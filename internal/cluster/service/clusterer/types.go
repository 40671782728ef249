package clusterer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// GroupSource supplies the multi-input groups of one batch, fully
	// resolved and validated by the ingestion side.
	GroupSource interface {
		MultiInputGroups(ctx context.Context) ([]model.MultiInputGroup, error)
	}

	// PartitionWriter persists the finished partition. Implementations must
	// not leave partial output behind on failure.
	PartitionWriter interface {
		Write(path string, p model.Partition) error
	}

	ClustererMetrics interface {
		ObserveFetchGroups(err error, groups int, started time.Time)
		ObserveClustering(err error, addresses int, started time.Time)
		ObserveWritePartition(err error, started time.Time)
	}
)
