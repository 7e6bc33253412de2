// Package board implements the stateful grid manager for the dashboard.
//
// A Board owns the authoritative collection of widget placements and the
// derived occupancy set. Every mutation goes through its public operations
// (Add, Remove, SetEnabled, Move, Resize, Recompute), and each of them either
// succeeds leaving the board consistent or fails as a typed rejection with
// the state untouched. There is no partial mutation.
//
// # Invariants
//
// After every successful operation:
//   - the footprints of any two distinct enabled placements are disjoint
//   - every enabled placement lies inside the configured grid
//   - the occupancy set equals exactly the union of enabled footprints
//
// # Placement Policy
//
// The board preserves explicit positions: adding or re-enabling a widget
// first-fits only that widget into the current gaps and never moves anything
// else. Removing or disabling a widget frees its cells without repacking the
// remainder. Recompute is the one operation that rederives every enabled
// position from scratch, in registration order; it backs the explicit
// "pack" user action and startup repair.
//
// # Concurrency
//
// All operations are serialized by an internal mutex, so a Board may be
// shared between the UI shell and the auto-saver. Operations are pure
// in-memory computations and complete synchronously; persistence never runs
// under the board's lock.
package board

import (
	"sort"
	"sync"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Widget is one placement record owned by the board.
// The board hands out copies; callers never hold a reference into board
// state.
type Widget struct {
	ID            string
	Title         string
	Category      string
	Size          grid.SizeClass
	Position      grid.Position
	Enabled       bool
	Placed        bool
	SortKey       int
	ThemeOverride map[string]any
}

// Footprint returns the cells the widget covers at its current position.
func (w Widget) Footprint() grid.Footprint {
	return grid.At(w.Position, w.Size.Dimensions())
}

// Board is the stateful authority over widget placements.
type Board struct {
	mu      sync.Mutex
	cfg     grid.Config
	widgets []*Widget // registration order
	occ     grid.Occupancy
	nextKey int
}

// New creates an empty board on the given grid configuration.
// Out-of-range configuration fields are normalized to defaults.
func New(cfg grid.Config) *Board {
	return &Board{
		cfg: cfg.Normalize(),
		occ: grid.NewOccupancy(),
	}
}

// Config returns the board's grid configuration.
func (b *Board) Config() grid.Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// Len returns the number of registered widgets, enabled or not.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.widgets)
}

// Widget returns a copy of the placement with the given ID.
func (b *Board) Widget(id string) (Widget, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.find(id)
	if w == nil {
		return Widget{}, errors.New(errors.ErrCodeWidgetNotFound, "widget %q not registered", id)
	}
	return copyWidget(w), nil
}

// Widgets returns copies of all placements in registration order.
func (b *Board) Widgets() []Widget {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Widget, len(b.widgets))
	for i, w := range b.widgets {
		out[i] = copyWidget(w)
	}
	return out
}

// Placements returns copies of the enabled placements ordered by position:
// row ascending, then column ascending. Widgets without a valid position
// sort last, in registration order.
func (b *Board) Placements() []Widget {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []Widget
	for _, w := range b.widgets {
		if w.Enabled {
			out = append(out, copyWidget(w))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.Placed != c.Placed {
			return a.Placed
		}
		if !a.Placed {
			return a.SortKey < c.SortKey
		}
		if a.Position.Row != c.Position.Row {
			return a.Position.Row < c.Position.Row
		}
		if a.Position.Column != c.Position.Column {
			return a.Position.Column < c.Position.Column
		}
		return a.SortKey < c.SortKey
	})
	return out
}

// Occupancy returns a copy of the current occupancy set.
func (b *Board) Occupancy() grid.Occupancy {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.occ.Clone()
}

// find returns the board's own record for id, or nil.
// Callers must hold b.mu.
func (b *Board) find(id string) *Widget {
	for _, w := range b.widgets {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func copyWidget(w *Widget) Widget {
	out := *w
	if w.ThemeOverride != nil {
		out.ThemeOverride = make(map[string]any, len(w.ThemeOverride))
		for k, v := range w.ThemeOverride {
			out.ThemeOverride[k] = v
		}
	}
	return out
}
