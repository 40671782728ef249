package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/persist"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/repository/clickhouse"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/service/clusterer"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/source/csvsource"
	"github.com/goodnatureofminers/entitylens7000-backend/internal/metrics"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLUSTERER_CLICKHOUSE_DSN" description:"ClickHouse DSN; when empty the CSV source is used"`
	InputsCSV     string `long:"inputs-csv" env:"CLUSTERER_INPUTS_CSV" description:"path to the transaction inputs CSV"`
	OutputsCSV    string `long:"outputs-csv" env:"CLUSTERER_OUTPUTS_CSV" description:"path to the transaction outputs CSV"`
	Coin          string `long:"coin" env:"CLUSTERER_COIN" description:"coin name" default:"BTC"`
	Network       string `long:"network" env:"CLUSTERER_NETWORK" description:"network name" default:"mainnet"`
	Output        string `long:"output" env:"CLUSTERER_OUTPUT" description:"path for the partition JSON document" default:"clusters.json"`
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

	if cfg.ClickhouseDSN == "" && (cfg.InputsCSV == "" || cfg.OutputsCSV == "") {
		logger.Fatal("either ClickHouse DSN or both CSV paths are required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("batch clusterer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	coin := model.Coin(cfg.Coin)
	network := model.Network(cfg.Network)

	source, err := newGroupSource(cfg, coin, network, logger)
	if err != nil {
		return fmt.Errorf("init group source: %w", err)
	}

	svc, err := clusterer.NewService(
		source,
		persist.NewFileStore(),
		metrics.NewClusterer(coin, network),
		coin,
		network,
		cfg.Output,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newGroupSource(cfg config, coin model.Coin, network model.Network, logger *zap.Logger) (clusterer.GroupSource, error) {
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		return &repositoryGroupSource{repo: repo, coin: coin, network: network}, nil
	}
	return csvsource.NewSource(cfg.InputsCSV, cfg.OutputsCSV, logger)
}

// repositoryGroupSource pins a repository to a single coin and network.
type repositoryGroupSource struct {
	repo    *clickhouse.Repository
	coin    model.Coin
	network model.Network
}

func (s *repositoryGroupSource) MultiInputGroups(ctx context.Context) ([]model.MultiInputGroup, error) {
	return s.repo.MultiInputGroups(ctx, s.coin, s.network)
}
