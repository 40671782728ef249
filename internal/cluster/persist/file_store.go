// Package persist serializes cluster partitions to durable JSON documents.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/cluster/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore reads and writes partition documents on the local filesystem.
// The document is a JSON object keyed by the decimal representative address
// ID, each value the full member list including the representative. Members
// are encoded as uint64, never through a float, so full-width IDs survive
// the round trip.
type FileStore struct{}

// NewFileStore returns a FileStore instance.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Write persists the partition to path. The document is written to a
// temporary file in the destination directory, synced, and renamed into
// place, so a failed run never leaves a truncated output behind.
func (s *FileStore) Write(path string, p model.Partition) (err error) {
	doc := make(map[string][]uint64, len(p))
	for root, members := range p {
		ids := make([]uint64, len(members))
		for i, m := range members {
			ids[i] = uint64(m)
		}
		doc[strconv.FormatUint(uint64(root), 10)] = ids
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal partition: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp partition file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write partition document: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync partition document: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close partition document: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("place partition document: %w", err)
	}
	return nil
}

// Read loads a partition document written by Write. Membership sets are
// reconstructed exactly; representative keys are only guaranteed to match
// the run that produced the document.
func (s *FileStore) Read(path string) (model.Partition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read partition document: %w", err)
	}

	doc := make(map[string][]uint64)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal partition document: %w", err)
	}

	partition := make(model.Partition, len(doc))
	for key, ids := range doc {
		root, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse representative %q: %w", key, err)
		}
		members := make([]model.AddressID, len(ids))
		for i, id := range ids {
			members[i] = model.AddressID(id)
		}
		partition[model.AddressID(root)] = members
	}
	return partition, nil
}
