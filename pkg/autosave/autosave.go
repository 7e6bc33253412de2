// Package autosave persists board snapshots on a debounced timer.
//
// A Saver owns a background goroutine that ticks at a fixed interval
// (2 seconds by default), captures a snapshot through a read-only accessor,
// and writes it to a layout store. The saver is decoupled from the board: a
// slow or failing store never blocks board mutations, and a save failure is
// logged and absorbed, never propagated.
//
// Each tick captures a fresh snapshot before any I/O begins, so a save is
// always consistent with some observed board state even when mutations race
// the write. Ticks whose snapshot hashes identically to the last successful
// save are skipped.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridboard/gridboard/pkg/layout"
	"github.com/gridboard/gridboard/pkg/observability"
	"github.com/gridboard/gridboard/pkg/store"
)

// DefaultInterval is the default auto-save tick interval.
const DefaultInterval = 2 * time.Second

// Snapshotter captures the current board state as a detached snapshot.
// board.(*Board).Snapshot bound to a layout name satisfies this.
type Snapshotter func() *layout.Snapshot

// Saver periodically writes snapshots to a store.
type Saver struct {
	snapshot Snapshotter
	store    store.Store
	interval time.Duration
	logger   *log.Logger

	mu       sync.Mutex
	lastHash string
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a saver. A non-positive interval falls back to
// DefaultInterval; a nil logger falls back to log.Default().
func New(snapshot Snapshotter, st store.Store, interval time.Duration, logger *log.Logger) *Saver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Saver{
		snapshot: snapshot,
		store:    st,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the background save loop. It returns immediately; the loop
// runs until ctx is cancelled or Stop is called. Calling Start twice without
// an intervening Stop is a no-op.
func (s *Saver) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)
}

// Stop cancels the save loop and waits for it to finish.
// Pending state is not flushed; call Flush first for a final write.
func (s *Saver) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Flush captures and saves a snapshot immediately, bypassing the timer and
// the unchanged-skip. Unlike the background loop it returns the store error,
// for callers that save on shutdown and want to surface failures.
func (s *Saver) Flush(ctx context.Context) error {
	snap := s.snapshot()
	err := s.store.Save(ctx, snap)
	observability.Store().OnSave(snap.Name, err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lastHash = layout.Hash(snap)
	s.mu.Unlock()
	return nil
}

func (s *Saver) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick captures a snapshot and saves it unless nothing changed since the
// last successful save. Failures are logged, not returned; the next tick
// tries again.
func (s *Saver) tick(ctx context.Context) {
	snap := s.snapshot()
	hash := layout.Hash(snap)

	s.mu.Lock()
	unchanged := hash == s.lastHash
	s.mu.Unlock()

	if unchanged {
		observability.Store().OnAutosaveSkip(snap.Name)
		return
	}

	err := s.store.Save(ctx, snap)
	observability.Store().OnSave(snap.Name, err)
	if err != nil {
		s.logger.Warn("auto-save failed", "layout", snap.Name, "err", err)
		return
	}

	s.mu.Lock()
	s.lastHash = hash
	s.mu.Unlock()
	s.logger.Debug("auto-saved layout", "layout", snap.Name, "widgets", len(snap.Widgets))
}
