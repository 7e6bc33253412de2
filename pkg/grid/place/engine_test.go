package place

import (
	"reflect"
	"testing"

	"github.com/gridboard/gridboard/pkg/grid"
)

func TestPlanPacksRowMajor(t *testing.T) {
	// Four widgets on a 4-column grid: A(2x2), B(1x1), C(1x1), D(2x2).
	items := []Item{
		{ID: "a", Size: grid.Size{Width: 2, Height: 2}},
		{ID: "b", Size: grid.Size{Width: 1, Height: 1}},
		{ID: "c", Size: grid.Size{Width: 1, Height: 1}},
		{ID: "d", Size: grid.Size{Width: 2, Height: 2}},
	}
	result := Plan(items, grid.Config{Columns: 4})

	want := map[string]grid.Position{
		"a": {Row: 0, Column: 0},
		"b": {Row: 0, Column: 2},
		"c": {Row: 0, Column: 3},
		"d": {Row: 1, Column: 2},
	}
	if !reflect.DeepEqual(result.Positions, want) {
		t.Errorf("positions = %v, want %v", result.Positions, want)
	}
	if len(result.Unplaced) != 0 {
		t.Errorf("unexpected unplaced widgets: %v", result.Unplaced)
	}
}

func TestPlanDeterministic(t *testing.T) {
	items := []Item{
		{ID: "a", Size: grid.SizeLarge.Dimensions()},
		{ID: "b", Size: grid.SizeSmall.Dimensions()},
		{ID: "c", Size: grid.SizeMedium.Dimensions()},
		{ID: "d", Size: grid.SizeXLarge.Dimensions()},
	}
	cfg := grid.Config{Columns: 6}

	first := Plan(items, cfg)
	second := Plan(items, cfg)

	if !reflect.DeepEqual(first.Positions, second.Positions) {
		t.Errorf("same input produced different plans: %v vs %v", first.Positions, second.Positions)
	}
}

func TestPlanFillsGaps(t *testing.T) {
	// A full-width widget followed by small ones: the small ones should fall
	// into the next row, left to right.
	items := []Item{
		{ID: "wide", Size: grid.Size{Width: 4, Height: 1}},
		{ID: "s1", Size: grid.Size{Width: 1, Height: 1}},
		{ID: "s2", Size: grid.Size{Width: 1, Height: 1}},
	}
	result := Plan(items, grid.Config{Columns: 4})

	if got := result.Positions["s1"]; got != (grid.Position{Row: 1, Column: 0}) {
		t.Errorf("s1 = %+v, want row 1 col 0", got)
	}
	if got := result.Positions["s2"]; got != (grid.Position{Row: 1, Column: 1}) {
		t.Errorf("s2 = %+v, want row 1 col 1", got)
	}
}

func TestPlanReportsUnplaceable(t *testing.T) {
	// 2 rows available; the third 1x2 widget cannot fit anywhere.
	items := []Item{
		{ID: "a", Size: grid.Size{Width: 2, Height: 2}},
		{ID: "b", Size: grid.Size{Width: 2, Height: 2}},
		{ID: "c", Size: grid.Size{Width: 1, Height: 2}},
		{ID: "d", Size: grid.Size{Width: 1, Height: 1}},
	}
	result := Plan(items, grid.Config{Columns: 4, Rows: 2})

	if !result.Placed("a") || !result.Placed("b") {
		t.Fatal("a and b should both fit a 4x2 grid")
	}
	if result.Placed("c") {
		t.Error("c should be unplaceable once a and b fill the grid")
	}
	// The engine keeps going after a failure.
	if result.Placed("d") {
		t.Error("d should also be unplaceable on a full grid")
	}
	if !reflect.DeepEqual(result.Unplaced, []string{"c", "d"}) {
		t.Errorf("unplaced = %v, want [c d]", result.Unplaced)
	}
}

func TestPlanWiderThanGrid(t *testing.T) {
	items := []Item{{ID: "a", Size: grid.Size{Width: 5, Height: 1}}}
	result := Plan(items, grid.Config{Columns: 4})

	if result.Placed("a") {
		t.Error("widget wider than the grid should be unplaced")
	}
	if len(result.Unplaced) != 1 {
		t.Errorf("unplaced = %v, want [a]", result.Unplaced)
	}
}

func TestFitAgainstExistingOccupancy(t *testing.T) {
	cfg := grid.Config{Columns: 4}
	occ := grid.NewOccupancy()
	occ.Occupy(grid.At(grid.Position{Row: 0, Column: 0}, grid.Size{Width: 2, Height: 2}), "a")

	pos, ok := Fit(grid.Size{Width: 2, Height: 1}, occ, cfg)
	if !ok {
		t.Fatal("2x1 should fit next to a 2x2")
	}
	if pos != (grid.Position{Row: 0, Column: 2}) {
		t.Errorf("pos = %+v, want row 0 col 2", pos)
	}
}

func TestFitTerminatesOnUnboundedGrid(t *testing.T) {
	cfg := grid.Config{Columns: 2}
	occ := grid.NewOccupancy()
	occ.Occupy(grid.At(grid.Position{Row: 0, Column: 0}, grid.Size{Width: 2, Height: 3}), "tall")

	pos, ok := Fit(grid.Size{Width: 2, Height: 2}, occ, cfg)
	if !ok {
		t.Fatal("unbounded grid always has room below")
	}
	if pos != (grid.Position{Row: 3, Column: 0}) {
		t.Errorf("pos = %+v, want row 3 col 0", pos)
	}
}

func TestFitZeroSize(t *testing.T) {
	if _, ok := Fit(grid.Size{}, grid.NewOccupancy(), grid.Config{Columns: 4}); ok {
		t.Error("degenerate size should not fit")
	}
}
