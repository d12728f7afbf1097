// Package file stores the hotel snapshot as a CSV file
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xhamera1/Hotel-app/internal/snapshot"
	"go.uber.org/zap"
)

// Repository reads and writes a CSV snapshot at a fixed path
type Repository struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewRepository creates a file repository. The file does not need to exist.
func NewRepository(path string, logger *zap.Logger) *Repository {
	return &Repository{path: path, logger: logger}
}

// Path returns the snapshot file location
func (r *Repository) Path() string {
	return r.path
}

// LoadRecords reads the snapshot file. Rows that are too short to describe
// a room are logged and left out.
func (r *Repository) LoadRecords(ctx context.Context) ([]snapshot.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, snapshot.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	records, diagnostics, err := snapshot.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	for _, d := range diagnostics {
		r.logger.Warn("Skipping snapshot row", zap.Int("line", d.Line), zap.String("reason", d.Reason))
	}

	return records, nil
}

// SaveRecords writes records to a temporary file next to the snapshot and
// renames it into place, creating parent directories as needed
func (r *Repository) SaveRecords(ctx context.Context, records []snapshot.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := snapshot.WriteCSV(tmp, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
