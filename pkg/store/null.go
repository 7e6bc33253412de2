package store

import (
	"context"

	"github.com/gridboard/gridboard/pkg/layout"
)

// NullStore is a no-op store that never persists anything.
// Useful for testing or when persistence should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, snap *layout.Snapshot) error { return nil }

// Load always reports not found.
func (s *NullStore) Load(ctx context.Context, name string) (*layout.Snapshot, error) {
	return nil, ErrNotFound
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, name string) error { return nil }

// MostRecent always reports not found.
func (s *NullStore) MostRecent(ctx context.Context) (*layout.Snapshot, error) {
	return nil, ErrNotFound
}

// List returns no names.
func (s *NullStore) List(ctx context.Context) ([]string, error) { return nil, nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)
