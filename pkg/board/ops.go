package board

import (
	"time"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/grid/place"
	"github.com/gridboard/gridboard/pkg/observability"
)

// Add registers a new widget and, when enabled, first-fits it into the
// current gaps. Existing placements never move. The widget's SortKey and
// Position are assigned by the board; values supplied by the caller are
// ignored.
//
// Fails with GRID_FULL when the grid is bounded and no slot exists; the
// widget is not registered in that case.
func (b *Board) Add(w Widget) error {
	if err := errors.ValidateWidgetID(w.ID); err != nil {
		return err
	}
	if !w.Size.Valid() {
		return errors.New(errors.ErrCodeInvalidSize, "unknown size class %q", w.Size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.find(w.ID) != nil {
		return errors.New(errors.ErrCodeInvalidInput, "widget %q already registered", w.ID)
	}

	w.SortKey = b.nextKey
	w.Position = grid.Zero
	w.Placed = false

	if w.Enabled {
		pos, ok := place.Fit(w.Size.Dimensions(), b.occ, b.cfg)
		if !ok {
			observability.Board().OnReject(w.ID, string(errors.ErrCodeGridFull))
			return errors.New(errors.ErrCodeGridFull, "no free slot for widget %q (%s)", w.ID, w.Size)
		}
		w.Position = pos
		w.Placed = true
		b.occ.Occupy(w.Footprint(), w.ID)
		observability.Board().OnPlace(w.ID, pos.Row, pos.Column)
	}

	b.nextKey++
	stored := w
	b.widgets = append(b.widgets, &stored)
	return nil
}

// Remove unregisters the widget and frees its cells.
// Remaining widgets keep their positions; callers wanting compaction must
// call Recompute explicitly.
func (b *Board) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, w := range b.widgets {
		if w.ID == id {
			b.occ.Release(id)
			b.widgets = append(b.widgets[:i], b.widgets[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeWidgetNotFound, "widget %q not registered", id)
}

// SetEnabled toggles a widget's contribution to the occupancy set.
//
// Disabling frees the widget's cells but remembers its position. Enabling
// restores that position when it is still free; otherwise the widget is
// first-fit into the current gaps. Fails with GRID_FULL when no slot exists,
// leaving the widget disabled.
func (b *Board) SetEnabled(id string, enabled bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.find(id)
	if w == nil {
		return errors.New(errors.ErrCodeWidgetNotFound, "widget %q not registered", id)
	}
	if w.Enabled == enabled {
		return nil
	}

	if !enabled {
		b.occ.Release(id)
		w.Enabled = false
		return nil
	}

	pos := w.Position
	ok := w.Placed && grid.IsFree(w.Footprint(), b.occ, b.cfg)
	if !ok {
		pos, ok = place.Fit(w.Size.Dimensions(), b.occ, b.cfg)
	}
	if !ok {
		observability.Board().OnReject(id, string(errors.ErrCodeGridFull))
		return errors.New(errors.ErrCodeGridFull, "no free slot to re-enable widget %q", id)
	}

	w.Position = pos
	w.Placed = true
	w.Enabled = true
	b.occ.Occupy(w.Footprint(), id)
	observability.Board().OnPlace(id, pos.Row, pos.Column)
	return nil
}

// Move places the widget's top-left cell at pos after validating the
// candidate footprint against the grid and the occupancy set excluding the
// widget's own cells. On rejection the board is unchanged and the error
// carries OUT_OF_BOUNDS or COLLISION_REJECTED.
func (b *Board) Move(id string, pos grid.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.find(id)
	if w == nil {
		return errors.New(errors.ErrCodeWidgetNotFound, "widget %q not registered", id)
	}

	candidate := grid.At(pos, w.Size.Dimensions())
	if err := b.validate(candidate, id); err != nil {
		return err
	}

	if w.Enabled {
		b.occ.Release(id)
		b.occ.Occupy(candidate, id)
	}
	w.Position = pos
	w.Placed = true
	observability.Board().OnPlace(id, pos.Row, pos.Column)
	return nil
}

// Resize changes the widget's size class, keeping its position. The new
// footprint is validated exactly like a move; on rejection the widget keeps
// its old size. Callers needing to make room must move first or recompute.
func (b *Board) Resize(id string, class grid.SizeClass) error {
	if !class.Valid() {
		return errors.New(errors.ErrCodeInvalidSize, "unknown size class %q", class)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.find(id)
	if w == nil {
		return errors.New(errors.ErrCodeWidgetNotFound, "widget %q not registered", id)
	}
	if w.Size == class {
		return nil
	}

	if w.Enabled && w.Placed {
		candidate := grid.At(w.Position, class.Dimensions())
		if err := b.validate(candidate, id); err != nil {
			return err
		}
		b.occ.Release(id)
		b.occ.Occupy(candidate, id)
	}
	w.Size = class
	return nil
}

// Recompute rederives every enabled widget's position from scratch via the
// placement engine, in registration order, discarding prior manual moves.
// Widgets that no longer fit a bounded grid are left without a position and
// reported through a GRID_FULL error; the rest of the board is still
// repacked.
func (b *Board) Recompute() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recomputeLocked()
}

// recomputeLocked implements Recompute. Callers must hold b.mu.
func (b *Board) recomputeLocked() error {
	start := time.Now()

	var items []place.Item
	for _, w := range b.widgets {
		if w.Enabled {
			items = append(items, place.Item{ID: w.ID, Size: w.Size.Dimensions()})
		}
	}

	result := place.Plan(items, b.cfg)

	b.occ = grid.NewOccupancy()
	for _, w := range b.widgets {
		if !w.Enabled {
			continue
		}
		pos, ok := result.Positions[w.ID]
		if !ok {
			w.Position = grid.Zero
			w.Placed = false
			continue
		}
		w.Position = pos
		w.Placed = true
		b.occ.Occupy(w.Footprint(), w.ID)
	}

	observability.Board().OnRecompute(len(result.Positions), len(result.Unplaced), time.Since(start))

	if len(result.Unplaced) > 0 {
		return errors.New(errors.ErrCodeGridFull, "no free slot for %d widget(s): %v",
			len(result.Unplaced), result.Unplaced)
	}
	return nil
}

// SetConfig swaps the grid configuration and repairs the arrangement:
// placements that still fit stay where they are, the rest are first-fit into
// the gaps in registration order. Returns GRID_FULL if any enabled widget no
// longer fits a bounded grid; such widgets are left without a position.
func (b *Board) SetConfig(cfg grid.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg = cfg.Normalize()

	// Keep what fits, then re-fit the rest against the survivors.
	b.occ = grid.NewOccupancy()
	var displaced []*Widget
	for _, w := range b.widgets {
		if !w.Enabled {
			continue
		}
		if w.Placed && grid.IsFree(w.Footprint(), b.occ, b.cfg) {
			b.occ.Occupy(w.Footprint(), w.ID)
			continue
		}
		displaced = append(displaced, w)
	}

	var unplaced []string
	for _, w := range displaced {
		pos, ok := place.Fit(w.Size.Dimensions(), b.occ, b.cfg)
		if !ok {
			w.Position = grid.Zero
			w.Placed = false
			unplaced = append(unplaced, w.ID)
			continue
		}
		w.Position = pos
		w.Placed = true
		b.occ.Occupy(w.Footprint(), w.ID)
		observability.Board().OnPlace(w.ID, pos.Row, pos.Column)
	}

	if len(unplaced) > 0 {
		return errors.New(errors.ErrCodeGridFull, "no free slot for %d widget(s): %v",
			len(unplaced), unplaced)
	}
	return nil
}

// validate checks a candidate footprint for the widget id against bounds
// and the occupancy set excluding the widget's own cells.
// Callers must hold b.mu.
func (b *Board) validate(f grid.Footprint, id string) error {
	if !grid.Fits(f, b.cfg) {
		observability.Board().OnReject(id, string(errors.ErrCodeOutOfBounds))
		return errors.New(errors.ErrCodeOutOfBounds,
			"footprint %s at row %d col %d exceeds the %d-column grid",
			f.Size, f.Position.Row, f.Position.Column, b.cfg.Columns)
	}
	if b.occ.Collides(f, id) {
		observability.Board().OnReject(id, string(errors.ErrCodeCollision))
		return errors.New(errors.ErrCodeCollision,
			"footprint %s at row %d col %d overlaps another widget",
			f.Size, f.Position.Row, f.Position.Column)
	}
	return nil
}
