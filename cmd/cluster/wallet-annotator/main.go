package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/persist"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/repository/clickhouse"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/service/annotator"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/source/csvsource"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/walletexplorer"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/metrics"
)

type config struct {
	Partition     string `long:"partition" env:"ANNOTATOR_PARTITION" description:"path to the partition JSON document" default:"clusters.json"`
	Report        string `long:"report" env:"ANNOTATOR_REPORT" description:"path for the wallet report CSV" default:"wallets.csv"`
	TopK          int    `long:"top-k" env:"ANNOTATOR_TOP_K" description:"number of largest clusters to annotate" default:"10"`
	Exhaustive    bool   `long:"exhaustive" env:"ANNOTATOR_EXHAUSTIVE" description:"label every address instead of stopping at the first hit per cluster"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"ANNOTATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN; when empty the mapping CSV is used"`
	MappingCSV    string `long:"mapping-csv" env:"ANNOTATOR_MAPPING_CSV" description:"path to the address-mapping CSV"`
	Coin          string `long:"coin" env:"ANNOTATOR_COIN" description:"coin name" default:"BTC"`
	Network       string `long:"network" env:"ANNOTATOR_NETWORK" description:"network name" default:"mainnet"`
	ExplorerURL   string `long:"explorer-url" env:"ANNOTATOR_EXPLORER_URL" description:"WalletExplorer base URL" default:"https://www.walletexplorer.com"`
	ExplorerRPS   int    `long:"explorer-rps" env:"ANNOTATOR_EXPLORER_RPS" description:"WalletExplorer requests per second" default:"1"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" && cfg.MappingCSV == "" {
		logger.Fatal("either ClickHouse DSN or mapping CSV is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("wallet annotator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	coin := model.Coin(cfg.Coin)
	network := model.Network(cfg.Network)

	resolver, err := newAddressResolver(cfg, coin, network)
	if err != nil {
		return fmt.Errorf("init address resolver: %w", err)
	}

	params, err := chainParams(network)
	if err != nil {
		return err
	}
	wallets, err := walletexplorer.NewClient(
		cfg.ExplorerURL,
		cfg.ExplorerRPS,
		params,
		metrics.NewExplorerClient(coin, network),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init wallet explorer client: %w", err)
	}

	svc, err := annotator.NewService(
		persist.NewFileStore(),
		resolver,
		wallets,
		metrics.NewAnnotator(coin, network),
		cfg.Partition,
		cfg.Report,
		cfg.TopK,
		!cfg.Exhaustive,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newAddressResolver(cfg config, coin model.Coin, network model.Network) (annotator.AddressResolver, error) {
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		return &repositoryAddressResolver{repo: repo, coin: coin, network: network}, nil
	}
	mapping, err := csvsource.LoadAddressMapping(cfg.MappingCSV)
	if err != nil {
		return nil, fmt.Errorf("load address mapping: %w", err)
	}
	return &mappingAddressResolver{mapping: mapping}, nil
}

func chainParams(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// repositoryAddressResolver pins a repository to a single coin and network.
type repositoryAddressResolver struct {
	repo    *clickhouse.Repository
	coin    model.Coin
	network model.Network
}

func (r *repositoryAddressResolver) Resolve(ctx context.Context, ids []model.AddressID) (map[model.AddressID]string, error) {
	return r.repo.AddressHashesByIDs(ctx, r.coin, r.network, ids)
}

// mappingAddressResolver serves lookups from a mapping CSV loaded up front.
type mappingAddressResolver struct {
	mapping map[model.AddressID]string
}

func (r *mappingAddressResolver) Resolve(_ context.Context, ids []model.AddressID) (map[model.AddressID]string, error) {
	result := make(map[model.AddressID]string, len(ids))
	for _, id := range ids {
		if hash, ok := r.mapping[id]; ok {
			result[id] = hash
		}
	}
	return result, nil
}
