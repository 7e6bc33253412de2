package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/layout"
)

// FileStore keeps one JSON file per layout in a directory, plus a pointer
// file naming the most recently saved layout.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-based layout store in the given directory.
// If dir is empty, it defaults to ~/.config/gridboard/layouts/.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreWrite, err, "get home dir")
		}
		dir = filepath.Join(home, ".config", "gridboard", "layouts")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreWrite, err, "create layout dir")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) layoutPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) pointerPath() string {
	return filepath.Join(s.dir, mostRecentKey)
}

// Save writes the snapshot to <dir>/<name>.json and updates the pointer file.
func (s *FileStore) Save(ctx context.Context, snap *layout.Snapshot) error {
	if err := errors.ValidateLayoutName(snap.Name); err != nil {
		return err
	}
	data, err := layout.Encode(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.layoutPath(snap.Name), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "write layout %q", snap.Name)
	}
	if err := os.WriteFile(s.pointerPath(), []byte(snap.Name), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "update most-recent pointer")
	}
	return nil
}

// Load reads and decodes <dir>/<name>.json.
// A missing or corrupt file yields ErrNotFound.
func (s *FileStore) Load(ctx context.Context, name string) (*layout.Snapshot, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked(name)
}

func (s *FileStore) loadLocked(name string) (*layout.Snapshot, error) {
	data, err := os.ReadFile(s.layoutPath(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read layout %q", name)
	}

	snap, err := layout.Decode(data)
	if err != nil {
		// Corrupt record: degrade to not-found per the persistence contract.
		return nil, ErrNotFound
	}
	snap.Name = name
	return snap, nil
}

// Delete removes the layout file. The pointer file is left alone; a dangling
// pointer reads as not-found.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.layoutPath(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "remove layout %q", name)
	}
	return nil
}

// MostRecent resolves the pointer file and loads the layout it names.
func (s *FileStore) MostRecent(ctx context.Context) (*layout.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pointerPath())
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read most-recent pointer")
	}

	name := strings.TrimSpace(string(data))
	if errors.ValidateLayoutName(name) != nil {
		return nil, ErrNotFound
	}
	return s.loadLocked(name)
}

// List returns the saved layout names sorted lexically.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read layout dir")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Path returns the directory holding the layout files.
func (s *FileStore) Path() string { return s.dir }

// Touch updates the most-recent pointer without writing a snapshot.
// Used when the application switches the active layout without mutating it.
func (s *FileStore) Touch(name string) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.layoutPath(name)); err != nil {
		return ErrNotFound
	}
	if err := os.WriteFile(s.pointerPath(), []byte(name), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "update most-recent pointer")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
