package annotator

import (
	"context"
	"time"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PartitionReader loads a persisted partition document.
	PartitionReader interface {
		Read(path string) (model.Partition, error)
	}

	// AddressResolver maps surrogate address IDs back to address hashes.
	AddressResolver interface {
		Resolve(ctx context.Context, ids []model.AddressID) (map[model.AddressID]string, error)
	}

	// WalletResolver looks up the wallet label of one address hash.
	WalletResolver interface {
		WalletLabel(ctx context.Context, address string) (string, error)
	}

	AnnotatorMetrics interface {
		ObserveReadPartition(err error, started time.Time)
		ObserveAnnotateCluster(err error, members int, started time.Time)
	}
)

// Annotation is one wallet label discovered for an address of a ranked
// cluster.
type Annotation struct {
	ClusterRank int
	Root        model.AddressID
	Address     string
	Wallet      string
	Source      string
}
