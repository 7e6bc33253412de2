// Package grid defines the coordinate model for the dashboard cell grid.
//
// This package provides the pure value types shared by the placement engine
// and the board: cell positions, widget sizes, grid configuration, and
// footprints (the set of cells a widget covers). It also implements the
// collision detector: pure containment and overlap queries over an
// occupancy set.
//
// # Coordinates
//
// The grid is addressed in (row, column) cell units with the origin at the
// top-left. Columns are bounded by the configuration; rows grow downward and
// may be unbounded. A widget occupies the rectangle of cells starting at its
// top-left position and extending by its size:
//
//	footprint = [row, row+height) × [column, column+width)
//
// # Purity
//
// Nothing in this package holds state. All functions are total over
// well-formed inputs and safe for concurrent use; callers that share an
// Occupancy across goroutines must provide their own synchronization.
package grid

// Position identifies the top-left cell of a widget footprint.
// The zero value doubles as the "not yet placed" sentinel; whether a widget
// is actually placed is tracked separately by the board.
type Position struct {
	Row    int `json:"row" bson:"row"`
	Column int `json:"column" bson:"column"`
}

// Zero is the sentinel position for widgets that have not been placed.
var Zero = Position{}

// Footprint is the rectangle of cells covered by a (position, size) pair.
type Footprint struct {
	Position Position
	Size     Size
}

// At returns the footprint of a widget of size s placed at p.
func At(p Position, s Size) Footprint {
	return Footprint{Position: p, Size: s}
}

// Cells returns every cell covered by the footprint in row-major order.
func (f Footprint) Cells() []Position {
	cells := make([]Position, 0, f.Size.Width*f.Size.Height)
	for r := f.Position.Row; r < f.Position.Row+f.Size.Height; r++ {
		for c := f.Position.Column; c < f.Position.Column+f.Size.Width; c++ {
			cells = append(cells, Position{Row: r, Column: c})
		}
	}
	return cells
}

// Contains reports whether the footprint covers the given cell.
func (f Footprint) Contains(p Position) bool {
	return p.Row >= f.Position.Row && p.Row < f.Position.Row+f.Size.Height &&
		p.Column >= f.Position.Column && p.Column < f.Position.Column+f.Size.Width
}
