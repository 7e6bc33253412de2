// Package store provides durable storage for named layout snapshots.
//
// This package defines the Store interface and implementations for different
// backends:
//   - file: JSON files in a directory, for the desktop application
//   - redis: Redis-backed storage for shared or remote deployments
//   - mongo: MongoDB-backed storage with one document per layout
//   - null: a no-op store that never persists anything
//
// # Contract
//
// A store holds one record per layout name plus a "most recent" pointer that
// Save updates on every successful write. Saving under an existing name
// overwrites the previous snapshot. Load and MostRecent return ErrNotFound
// when nothing usable exists; a partial or corrupt record counts as not
// found rather than as a failure, so a broken store degrades to "layout will
// not survive restart" instead of blocking startup.
//
// All operations take a context and may block on I/O. Stores are safe for
// concurrent use.
package store

import (
	"context"
	"errors"

	"github.com/gridboard/gridboard/pkg/layout"
)

// ErrNotFound is returned when a requested layout does not exist.
var ErrNotFound = errors.New("layout not found")

// mostRecentKey names the pointer record tracking the last saved layout.
// Layout name validation rejects leading dots, so it can never collide with
// a user-chosen name.
const mostRecentKey = ".most-recent"

// Store is the interface for layout storage backends.
type Store interface {
	// Save writes the snapshot under its name, overwriting any existing
	// record, and updates the most-recent pointer.
	Save(ctx context.Context, snap *layout.Snapshot) error

	// Load retrieves the snapshot saved under name.
	// Returns ErrNotFound if the record is absent or unreadable.
	Load(ctx context.Context, name string) (*layout.Snapshot, error)

	// Delete removes the record under name. Deleting an absent record is
	// not an error.
	Delete(ctx context.Context, name string) error

	// MostRecent retrieves the snapshot the pointer currently names.
	// Returns ErrNotFound when nothing has been saved yet.
	MostRecent(ctx context.Context) (*layout.Snapshot, error)

	// List returns the saved layout names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Close releases any backend resources.
	Close() error
}
