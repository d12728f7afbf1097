// Package repository defines interfaces for snapshot storage
package repository

import (
	"context"

	"github.com/xhamera1/Hotel-app/internal/snapshot"
)

// ErrNotFound is returned by LoadRecords when nothing has been saved yet
var ErrNotFound = snapshot.ErrNotFound

// Repository stores the hotel directory as snapshot records
type Repository interface {
	// LoadRecords returns the last saved records in room order
	LoadRecords(ctx context.Context) ([]snapshot.Record, error)
	// SaveRecords replaces the stored snapshot with records
	SaveRecords(ctx context.Context, records []snapshot.Record) error
}
