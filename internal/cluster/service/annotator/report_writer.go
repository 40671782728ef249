package annotator

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

var reportHeader = []string{"cluster_rank", "cluster_root", "address", "wallet", "source"}

// reportWriter accumulates annotation rows into a temporary CSV file and
// renames it into place on Commit, so an aborted run leaves no partial
// report.
type reportWriter struct {
	mu   sync.Mutex
	path string
	tmp  *os.File
	csv  *csv.Writer
}

func newReportWriter(path string) (*reportWriter, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create temp report file: %w", err)
	}

	w := &reportWriter{path: path, tmp: tmp, csv: csv.NewWriter(tmp)}
	if err := w.csv.Write(reportHeader); err != nil {
		w.discard()
		return nil, fmt.Errorf("write report header: %w", err)
	}
	return w, nil
}

// WriteRows appends a batch of annotations. It is the batcher's flush
// callback and may run concurrently with Commit/discard on cancellation.
func (w *reportWriter) WriteRows(_ context.Context, rows []Annotation) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tmp == nil {
		return fmt.Errorf("report writer already closed")
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.ClusterRank),
			strconv.FormatUint(uint64(row.Root), 10),
			row.Address,
			row.Wallet,
			row.Source,
		}
		if err := w.csv.Write(record); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flush report rows: %w", err)
	}
	return nil
}

// Commit finalizes the report and moves it to its destination.
func (w *reportWriter) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tmp == nil {
		return fmt.Errorf("report writer already closed")
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.discardLocked()
		return fmt.Errorf("flush report: %w", err)
	}
	if err := w.tmp.Sync(); err != nil {
		w.discardLocked()
		return fmt.Errorf("sync report: %w", err)
	}
	name := w.tmp.Name()
	if err := w.tmp.Close(); err != nil {
		w.tmp = nil
		_ = os.Remove(name)
		return fmt.Errorf("close report: %w", err)
	}
	w.tmp = nil
	if err := os.Rename(name, w.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("place report: %w", err)
	}
	return nil
}

func (w *reportWriter) discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.discardLocked()
}

func (w *reportWriter) discardLocked() {
	if w.tmp == nil {
		return
	}
	name := w.tmp.Name()
	_ = w.tmp.Close()
	_ = os.Remove(name)
	w.tmp = nil
}
