// Package storage defines the storage contract the address book relies on.
// It abstracts persistence so that different backends (e.g. a local file) can
// provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"assistant/pkg/domain"
	"context"
)

// BookStorage persists the full set of contact records. The address book is
// read once at start-up and written back as a whole, so implementations do not
// need to support partial updates.
type BookStorage interface {
	// Load returns every stored record in the order it was saved. It returns
	// ErrNotExist when nothing has been persisted yet.
	Load(ctx context.Context) ([]domain.Record, error)
	// Save replaces the stored records with records.
	Save(ctx context.Context, records []domain.Record) error
}
