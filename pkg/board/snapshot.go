package board

import (
	"time"

	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/grid/place"
	"github.com/gridboard/gridboard/pkg/layout"
)

// Snapshot captures a serializable copy of the board under the given name:
// every registered widget in registration order plus the grid configuration.
// The copy shares no mutable state with the board, so it stays consistent
// even if the board mutates while the snapshot is being written out.
func (b *Board) Snapshot(name string) *layout.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := &layout.Snapshot{
		Name:    name,
		Config:  b.cfg,
		SavedAt: time.Now().UTC(),
		Widgets: make([]layout.Widget, len(b.widgets)),
	}
	for i, w := range b.widgets {
		c := copyWidget(w)
		snap.Widgets[i] = layout.Widget{
			ID:            c.ID,
			Title:         c.Title,
			Category:      c.Category,
			Size:          c.Size,
			Position:      c.Position,
			Enabled:       c.Enabled,
			ThemeOverride: c.ThemeOverride,
		}
	}
	return snap
}

// FromSnapshot seeds a board from a persisted snapshot.
//
// Restoration is forgiving: a persisted position is kept when it is still
// valid under the restored configuration, anything colliding or out of
// bounds is first-fit into the gaps, and an enabled widget with no possible
// slot is restored without a position rather than failing startup. Sort
// keys are reassigned from the snapshot's widget order.
func FromSnapshot(snap *layout.Snapshot) *Board {
	b := New(snap.Config)

	for _, sw := range snap.Widgets {
		w := &Widget{
			ID:            sw.ID,
			Title:         sw.Title,
			Category:      sw.Category,
			Size:          sw.Size,
			Position:      sw.Position,
			Enabled:       sw.Enabled,
			SortKey:       b.nextKey,
			ThemeOverride: sw.ThemeOverride,
		}
		if !w.Size.Valid() {
			w.Size = grid.SizeSmall
		}
		b.nextKey++

		if w.Enabled {
			if grid.IsFree(w.Footprint(), b.occ, b.cfg) {
				w.Placed = true
			} else if pos, ok := place.Fit(w.Size.Dimensions(), b.occ, b.cfg); ok {
				w.Position = pos
				w.Placed = true
			} else {
				w.Position = grid.Zero
				w.Placed = false
			}
			if w.Placed {
				b.occ.Occupy(w.Footprint(), w.ID)
			}
		}

		b.widgets = append(b.widgets, w)
	}

	return b
}
