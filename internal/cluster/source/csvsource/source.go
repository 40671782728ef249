// Package csvsource derives multi-input groups from headerless CSV dataset
// exports: inputs.csv (txId, prevTxId, prevTxPos) joined against
// outputs.csv (txId, position, addressId, amount, scriptType).
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
	"github.com/goodnatureofminers/entitylens7000-backend/pkg/safe"
)

const (
	inputColumns   = 3
	outputColumns  = 5
	mappingColumns = 2
)

// outpoint identifies one previous output an input spends.
type outpoint struct {
	txID uint64
	vout uint32
}

// Source reads the inputs and outputs datasets and performs the join that a
// ClickHouse-backed run pushes into the database.
type Source struct {
	logger      *zap.Logger
	inputsPath  string
	outputsPath string
}

func NewSource(inputsPath, outputsPath string, logger *zap.Logger) (*Source, error) {
	if inputsPath == "" {
		return nil, errors.New("inputs path is required")
	}
	if outputsPath == "" {
		return nil, errors.New("outputs path is required")
	}
	return &Source{
		logger:      logger,
		inputsPath:  inputsPath,
		outputsPath: outputsPath,
	}, nil
}

// MultiInputGroups joins every input row against the output it spends and
// returns the funding addresses of each transaction with more than one
// joined row, ordered by transaction ID. Unresolved inputs fall out of the
// join; duplicate rows of one address keep a transaction qualified.
func (s *Source) MultiInputGroups(ctx context.Context) ([]model.MultiInputGroup, error) {
	owners, err := s.loadOutputOwners(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded output owners", zap.Int("outputs", len(owners)))

	joined, err := s.joinInputs(ctx, owners)
	if err != nil {
		return nil, err
	}

	txIDs := make([]model.TxID, 0, len(joined))
	for txID, addresses := range joined {
		if len(addresses) < 2 {
			continue
		}
		txIDs = append(txIDs, txID)
	}
	sort.Slice(txIDs, func(i, j int) bool { return txIDs[i] < txIDs[j] })

	groups := make([]model.MultiInputGroup, 0, len(txIDs))
	for _, txID := range txIDs {
		groups = append(groups, model.MultiInputGroup{TxID: txID, Addresses: joined[txID]})
	}
	return groups, nil
}

func (s *Source) loadOutputOwners(ctx context.Context) (map[outpoint]model.AddressID, error) {
	file, err := os.Open(s.outputsPath)
	if err != nil {
		return nil, fmt.Errorf("open outputs dataset: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = outputColumns
	reader.ReuseRecord = true

	owners := make(map[outpoint]model.AddressID)
	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read outputs row %d: %w", line+1, err)
		}
		line++

		txID, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("outputs row %d: parse txId: %w", line, err)
		}
		position, err := parseUint32(record[1])
		if err != nil {
			return nil, fmt.Errorf("outputs row %d: parse position: %w", line, err)
		}
		addressID, err := strconv.ParseUint(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("outputs row %d: parse addressId: %w", line, err)
		}

		owners[outpoint{txID: txID, vout: position}] = model.AddressID(addressID)
	}
	return owners, nil
}

func (s *Source) joinInputs(ctx context.Context, owners map[outpoint]model.AddressID) (map[model.TxID][]model.AddressID, error) {
	file, err := os.Open(s.inputsPath)
	if err != nil {
		return nil, fmt.Errorf("open inputs dataset: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = inputColumns
	reader.ReuseRecord = true

	joined := make(map[model.TxID][]model.AddressID)
	line := 0
	unresolved := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read inputs row %d: %w", line+1, err)
		}
		line++

		txID, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("inputs row %d: parse txId: %w", line, err)
		}
		prevTxID, err := strconv.ParseUint(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("inputs row %d: parse prevTxId: %w", line, err)
		}
		prevVout, err := parseUint32(record[2])
		if err != nil {
			return nil, fmt.Errorf("inputs row %d: parse prevTxPos: %w", line, err)
		}

		owner, ok := owners[outpoint{txID: prevTxID, vout: prevVout}]
		if !ok {
			unresolved++
			continue
		}
		joined[model.TxID(txID)] = append(joined[model.TxID(txID)], owner)
	}

	if unresolved > 0 {
		s.logger.Debug("inputs without matching output skipped", zap.Int("rows", unresolved))
	}
	return joined, nil
}

// LoadAddressMapping reads the address-mapping dataset (hash, addressId)
// and returns surrogate ID to address hash.
func LoadAddressMapping(path string) (map[model.AddressID]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address mapping: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = mappingColumns
	reader.ReuseRecord = true

	mapping := make(map[model.AddressID]string)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mapping row %d: %w", line+1, err)
		}
		line++

		id, err := strconv.ParseUint(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("mapping row %d: parse addressId: %w", line, err)
		}
		mapping[model.AddressID(id)] = record[0]
	}
	return mapping, nil
}

func parseUint32(field string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, err
	}
	return safe.Uint32(v)
}
