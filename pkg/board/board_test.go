package board

import (
	"fmt"
	"testing"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

func newTestBoard(t *testing.T, columns int) *Board {
	t.Helper()
	return New(grid.Config{Columns: columns})
}

func mustAdd(t *testing.T, b *Board, id string, class grid.SizeClass) {
	t.Helper()
	if err := b.Add(Widget{ID: id, Size: class, Enabled: true}); err != nil {
		t.Fatalf("Add(%s): %v", id, err)
	}
}

func position(t *testing.T, b *Board, id string) grid.Position {
	t.Helper()
	w, err := b.Widget(id)
	if err != nil {
		t.Fatalf("Widget(%s): %v", id, err)
	}
	return w.Position
}

// checkInvariants verifies the no-overlap, in-bounds, and occupancy
// consistency invariants over the board's enabled placements.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()

	cfg := b.Config()
	widgets := b.Widgets()
	occ := b.Occupancy()

	cells := 0
	for _, w := range widgets {
		if !w.Enabled {
			for cell, owner := range occ {
				if owner == w.ID {
					t.Errorf("disabled widget %s owns cell %+v", w.ID, cell)
				}
			}
			continue
		}
		if !w.Placed {
			continue
		}
		f := w.Footprint()
		if !grid.Fits(f, cfg) {
			t.Errorf("widget %s footprint %v out of bounds", w.ID, f)
		}
		for _, cell := range f.Cells() {
			owner, ok := occ[cell]
			if !ok {
				t.Errorf("cell %+v of %s missing from occupancy", cell, w.ID)
			} else if owner != w.ID {
				t.Errorf("cell %+v owned by %s, expected %s (overlap)", cell, owner, w.ID)
			}
		}
		cells += f.Size.Cells()
	}
	if len(occ) != cells {
		t.Errorf("occupancy has %d cells, enabled footprints cover %d", len(occ), cells)
	}
}

func TestAddPacksIntoGaps(t *testing.T) {
	// A(2x2), B(1x1), C(1x1), D(2x2) on a 4-column grid.
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeSmall)
	mustAdd(t, b, "c", grid.SizeSmall)
	mustAdd(t, b, "d", grid.SizeMedium)

	want := map[string]grid.Position{
		"a": {Row: 0, Column: 0},
		"b": {Row: 0, Column: 2},
		"c": {Row: 0, Column: 3},
		"d": {Row: 1, Column: 2},
	}
	for id, wantPos := range want {
		if got := position(t, b, id); got != wantPos {
			t.Errorf("%s = %+v, want %+v", id, got, wantPos)
		}
	}
	checkInvariants(t, b)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeSmall)

	err := b.Add(Widget{ID: "a", Size: grid.SizeSmall, Enabled: true})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate Add = %v, want INVALID_INPUT", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestAddGridFull(t *testing.T) {
	b := New(grid.Config{Columns: 2, Rows: 2})
	mustAdd(t, b, "a", grid.SizeMedium) // fills the whole 2x2 grid

	err := b.Add(Widget{ID: "b", Size: grid.SizeSmall, Enabled: true})
	if !errors.Is(err, errors.ErrCodeGridFull) {
		t.Fatalf("Add on full grid = %v, want GRID_FULL", err)
	}
	// The rejected widget must not be registered.
	if _, err := b.Widget("b"); !errors.Is(err, errors.ErrCodeWidgetNotFound) {
		t.Error("rejected widget should not be registered")
	}
	checkInvariants(t, b)
}

func TestAddDisabledTakesNoCells(t *testing.T) {
	b := newTestBoard(t, 4)
	if err := b.Add(Widget{ID: "a", Size: grid.SizeXLarge, Enabled: false}); err != nil {
		t.Fatalf("Add disabled: %v", err)
	}
	if len(b.Occupancy()) != 0 {
		t.Error("disabled widget should contribute no cells")
	}
	mustAdd(t, b, "b", grid.SizeSmall)
	if got := position(t, b, "b"); got != (grid.Position{Row: 0, Column: 0}) {
		t.Errorf("b = %+v, want origin (disabled widget holds no cells)", got)
	}
	checkInvariants(t, b)
}

func TestMoveRejectionsLeaveStateUnchanged(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium) // (0,0) 2x2
	mustAdd(t, b, "b", grid.SizeSmall)  // (0,2)

	before := position(t, b, "b")

	// Collision with a.
	err := b.Move("b", grid.Position{Row: 0, Column: 0})
	if !errors.Is(err, errors.ErrCodeCollision) {
		t.Errorf("Move onto a = %v, want COLLISION_REJECTED", err)
	}
	if got := position(t, b, "b"); got != before {
		t.Errorf("rejected move changed position: %+v", got)
	}

	// Out of bounds: 1 + width past the last column.
	err = b.Move("b", grid.Position{Row: 0, Column: 4})
	if !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Move past edge = %v, want OUT_OF_BOUNDS", err)
	}
	if got := position(t, b, "b"); got != before {
		t.Errorf("rejected move changed position: %+v", got)
	}
	checkInvariants(t, b)
}

func TestMoveOutOfBoundsWideWidget(t *testing.T) {
	// A 4x2 widget at column 1 on a 4-column grid: 1 + 4 > 4.
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeLarge)

	err := b.Move("a", grid.Position{Row: 0, Column: 1})
	if !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Move = %v, want OUT_OF_BOUNDS", err)
	}
}

func TestMoveToFreeCellsSucceeds(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeSmall)

	if err := b.Move("b", grid.Position{Row: 5, Column: 1}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := position(t, b, "b"); got != (grid.Position{Row: 5, Column: 1}) {
		t.Errorf("b = %+v", got)
	}
	checkInvariants(t, b)
}

func TestMoveOntoOwnCells(t *testing.T) {
	// Shifting a widget by one cell overlaps its old footprint; its own
	// cells must not count as a collision.
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)

	if err := b.Move("a", grid.Position{Row: 0, Column: 1}); err != nil {
		t.Fatalf("Move over own cells: %v", err)
	}
	checkInvariants(t, b)
}

func TestResize(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeSmall) // (0,0)
	mustAdd(t, b, "b", grid.SizeSmall) // (0,1)

	// Growing a to 2x2 would swallow b's cell.
	err := b.Resize("a", grid.SizeMedium)
	if !errors.Is(err, errors.ErrCodeCollision) {
		t.Errorf("Resize into b = %v, want COLLISION_REJECTED", err)
	}
	w, _ := b.Widget("a")
	if w.Size != grid.SizeSmall {
		t.Errorf("rejected resize changed size to %s", w.Size)
	}

	// After moving b away the resize fits.
	if err := b.Move("b", grid.Position{Row: 0, Column: 3}); err != nil {
		t.Fatalf("Move b: %v", err)
	}
	if err := b.Resize("a", grid.SizeMedium); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	checkInvariants(t, b)
}

func TestResizeOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeSmall)
	if err := b.Move("a", grid.Position{Row: 0, Column: 3}); err != nil {
		t.Fatal(err)
	}

	// 2x2 at column 3 exceeds 4 columns.
	err := b.Resize("a", grid.SizeMedium)
	if !errors.Is(err, errors.ErrCodeOutOfBounds) {
		t.Errorf("Resize = %v, want OUT_OF_BOUNDS", err)
	}
}

func TestRemovePreservesOtherPositions(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeSmall)
	mustAdd(t, b, "c", grid.SizeSmall)

	cPos := position(t, b, "c")
	if err := b.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// No repack: b and c stay put.
	if got := position(t, b, "b"); got != (grid.Position{Row: 0, Column: 2}) {
		t.Errorf("b moved after Remove: %+v", got)
	}
	if got := position(t, b, "c"); got != cPos {
		t.Errorf("c moved after Remove: %+v", got)
	}
	if _, err := b.Widget("a"); !errors.Is(err, errors.ErrCodeWidgetNotFound) {
		t.Error("removed widget should be gone")
	}
	checkInvariants(t, b)
}

func TestSetEnabledRestoresPositionWhenFree(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeSmall)

	bPos := position(t, b, "b")
	if err := b.SetEnabled("b", false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	checkInvariants(t, b)

	if err := b.SetEnabled("b", true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if got := position(t, b, "b"); got != bPos {
		t.Errorf("re-enabled b = %+v, want restored %+v", got, bPos)
	}
	checkInvariants(t, b)
}

func TestSetEnabledRefitsWhenPositionTaken(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeSmall) // (0,0)

	if err := b.SetEnabled("a", false); err != nil {
		t.Fatal(err)
	}
	// b takes a's old cell while a is disabled.
	mustAdd(t, b, "b", grid.SizeSmall)

	if err := b.SetEnabled("a", true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if got := position(t, b, "a"); got != (grid.Position{Row: 0, Column: 1}) {
		t.Errorf("a = %+v, want first free gap (0,1)", got)
	}
	checkInvariants(t, b)
}

func TestSetEnabledGridFull(t *testing.T) {
	b := New(grid.Config{Columns: 2, Rows: 2})
	mustAdd(t, b, "a", grid.SizeSmall)
	if err := b.Add(Widget{ID: "big", Size: grid.SizeMedium, Enabled: false}); err != nil {
		t.Fatal(err)
	}

	err := b.SetEnabled("big", true)
	if !errors.Is(err, errors.ErrCodeGridFull) {
		t.Fatalf("enable = %v, want GRID_FULL", err)
	}
	w, _ := b.Widget("big")
	if w.Enabled {
		t.Error("failed enable should leave the widget disabled")
	}
	checkInvariants(t, b)
}

func TestRecomputeDeterministic(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeSmall)
	mustAdd(t, b, "c", grid.SizeMedium)

	// Scatter b manually, then pack twice.
	if err := b.Move("b", grid.Position{Row: 7, Column: 0}); err != nil {
		t.Fatal(err)
	}
	if err := b.Recompute(); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	first := map[string]grid.Position{
		"a": position(t, b, "a"), "b": position(t, b, "b"), "c": position(t, b, "c"),
	}
	if err := b.Recompute(); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for id, want := range first {
		if got := position(t, b, id); got != want {
			t.Errorf("%s drifted between recomputes: %+v vs %+v", id, got, want)
		}
	}
	// Manual move was discarded by the pack.
	if first["b"] != (grid.Position{Row: 0, Column: 2}) {
		t.Errorf("b after recompute = %+v, want (0,2)", first["b"])
	}
	checkInvariants(t, b)
}

func TestRecomputeReportsUnplaceable(t *testing.T) {
	b := New(grid.Config{Columns: 4, Rows: 2})
	mustAdd(t, b, "a", grid.SizeMedium)
	mustAdd(t, b, "b", grid.SizeMedium)

	// Shrinking the grid strands one widget.
	if err := b.SetConfig(grid.Config{Columns: 2, Rows: 2}); !errors.Is(err, errors.ErrCodeGridFull) {
		t.Fatalf("SetConfig = %v, want GRID_FULL", err)
	}

	placed := 0
	for _, w := range b.Widgets() {
		if w.Placed {
			placed++
		}
	}
	if placed != 1 {
		t.Errorf("placed = %d, want 1 (engine continues past failures)", placed)
	}
	checkInvariants(t, b)
}

func TestPlacementsOrdering(t *testing.T) {
	b := newTestBoard(t, 4)
	mustAdd(t, b, "a", grid.SizeSmall) // (0,0)
	mustAdd(t, b, "b", grid.SizeSmall) // (0,1)
	mustAdd(t, b, "c", grid.SizeSmall) // (0,2)
	if err := b.Move("a", grid.Position{Row: 2, Column: 0}); err != nil {
		t.Fatal(err)
	}

	got := b.Placements()
	order := make([]string, len(got))
	for i, w := range got {
		order[i] = w.ID
	}
	want := []string{"b", "c", "a"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestWidgetReturnsCopy(t *testing.T) {
	b := newTestBoard(t, 4)
	if err := b.Add(Widget{ID: "a", Size: grid.SizeSmall, Enabled: true,
		ThemeOverride: map[string]any{"accent": "teal"}}); err != nil {
		t.Fatal(err)
	}

	w, _ := b.Widget("a")
	w.ThemeOverride["accent"] = "red"
	w.Position = grid.Position{Row: 9, Column: 9}

	fresh, _ := b.Widget("a")
	if fresh.ThemeOverride["accent"] != "teal" {
		t.Error("caller mutated board state through a returned map")
	}
	if fresh.Position != (grid.Position{Row: 0, Column: 0}) {
		t.Error("caller mutated board state through a returned struct")
	}
}

func TestInvariantsUnderMixedOperations(t *testing.T) {
	b := newTestBoard(t, 6)

	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("w%d", i)
		class := grid.SizeClasses()[i%4]
		if err := b.Add(Widget{ID: id, Size: class, Enabled: true}); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
		checkInvariants(t, b)
	}

	_ = b.Move("w1", grid.Position{Row: 10, Column: 0})
	checkInvariants(t, b)
	_ = b.SetEnabled("w2", false)
	checkInvariants(t, b)
	_ = b.Resize("w0", grid.SizeMedium)
	checkInvariants(t, b)
	_ = b.Remove("w3")
	checkInvariants(t, b)
	_ = b.SetEnabled("w2", true)
	checkInvariants(t, b)
	if err := b.Recompute(); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	checkInvariants(t, b)
}
