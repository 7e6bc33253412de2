package place

import (
	"github.com/gridboard/gridboard/pkg/grid"
)

// Item is one widget the engine should place, in plan order.
type Item struct {
	ID   string
	Size grid.Size
}

// Result is the outcome of a plan: a position for every placed widget and
// the IDs of widgets that had no valid slot under a finite row limit.
type Result struct {
	Positions map[string]grid.Position
	Unplaced  []string
}

// Placed reports whether the widget with the given ID received a position.
func (r Result) Placed(id string) bool {
	_, ok := r.Positions[id]
	return ok
}

// Plan assigns first-fit positions to items in order, starting from an empty
// grid. Items keep their input order as the tie-break: an earlier item is
// always placed before a later one is considered.
func Plan(items []Item, cfg grid.Config) Result {
	cfg = cfg.Normalize()
	occ := grid.NewOccupancy()
	result := Result{Positions: make(map[string]grid.Position, len(items))}

	for _, item := range items {
		pos, ok := Fit(item.Size, occ, cfg)
		if !ok {
			result.Unplaced = append(result.Unplaced, item.ID)
			continue
		}
		occ.Occupy(grid.At(pos, item.Size), item.ID)
		result.Positions[item.ID] = pos
	}
	return result
}

// Fit finds the first free position for a footprint of the given size
// against an existing occupancy set, scanning row-major from the origin.
// Returns false when no position exists: the size is wider than the grid,
// or every candidate row under a finite row limit is blocked.
func Fit(size grid.Size, occ grid.Occupancy, cfg grid.Config) (grid.Position, bool) {
	cfg = cfg.Normalize()
	if size.Width <= 0 || size.Height <= 0 || size.Width > cfg.Columns {
		return grid.Zero, false
	}

	// On an unbounded grid the row just past the deepest occupied cell is
	// guaranteed empty, so the scan always terminates there.
	lastRow := occ.MaxRow() + 1
	if cfg.Bounded() {
		lastRow = cfg.Rows - size.Height
		if lastRow < 0 {
			return grid.Zero, false
		}
	}

	for row := 0; row <= lastRow; row++ {
		for col := 0; col <= cfg.Columns-size.Width; col++ {
			f := grid.At(grid.Position{Row: row, Column: col}, size)
			if grid.IsFree(f, occ, cfg) {
				return f.Position, true
			}
		}
	}
	return grid.Zero, false
}
