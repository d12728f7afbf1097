// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sync"

	"github.com/xhamera1/Hotel-app/internal/snapshot"
)

// Repository keeps the last saved snapshot in memory
type Repository struct {
	records []snapshot.Record
	saved   bool
	mu      sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{}
}

// LoadRecords returns a copy of the last saved records
func (r *Repository) LoadRecords(ctx context.Context) ([]snapshot.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.saved {
		return nil, snapshot.ErrNotFound
	}

	records := make([]snapshot.Record, len(r.records))
	copy(records, r.records)
	return records, nil
}

// SaveRecords replaces the stored records with a copy of records
func (r *Repository) SaveRecords(ctx context.Context, records []snapshot.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make([]snapshot.Record, len(records))
	copy(r.records, records)
	r.saved = true
	return nil
}
