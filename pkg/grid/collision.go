package grid

// =============================================================================
// Collision Detector
// =============================================================================

// Overlaps reports whether two footprints cover any common cell.
func Overlaps(a, b Footprint) bool {
	return a.Position.Column < b.Position.Column+b.Size.Width &&
		b.Position.Column < a.Position.Column+a.Size.Width &&
		a.Position.Row < b.Position.Row+b.Size.Height &&
		b.Position.Row < a.Position.Row+a.Size.Height
}

// Fits reports whether the footprint lies entirely inside the grid:
// non-negative origin, within the column count, and within the row limit
// when the grid is bounded.
func Fits(f Footprint, cfg Config) bool {
	if f.Position.Row < 0 || f.Position.Column < 0 {
		return false
	}
	if f.Position.Column+f.Size.Width > cfg.Columns {
		return false
	}
	if cfg.Bounded() && f.Position.Row+f.Size.Height > cfg.Rows {
		return false
	}
	return true
}

// IsFree reports whether the footprint fits the grid and collides with
// nothing in the occupancy set.
func IsFree(f Footprint, occ Occupancy, cfg Config) bool {
	return Fits(f, cfg) && !occ.Collides(f, "")
}

// =============================================================================
// Occupancy
// =============================================================================

// Occupancy maps each covered cell to the ID of the widget covering it.
// It is the derived index the board and the placement engine test candidate
// footprints against.
type Occupancy map[Position]string

// NewOccupancy returns an empty occupancy set.
func NewOccupancy() Occupancy { return make(Occupancy) }

// Occupy unions the footprint's cells into the set, owned by id.
func (o Occupancy) Occupy(f Footprint, id string) {
	for _, cell := range f.Cells() {
		o[cell] = id
	}
}

// Release removes every cell owned by id.
func (o Occupancy) Release(id string) {
	for cell, owner := range o {
		if owner == id {
			delete(o, cell)
		}
	}
}

// Collides reports whether any cell of the footprint is already taken by a
// widget other than exclude. Pass an empty exclude to test against everyone.
func (o Occupancy) Collides(f Footprint, exclude string) bool {
	for r := f.Position.Row; r < f.Position.Row+f.Size.Height; r++ {
		for c := f.Position.Column; c < f.Position.Column+f.Size.Width; c++ {
			owner, taken := o[Position{Row: r, Column: c}]
			if taken && owner != exclude {
				return true
			}
		}
	}
	return false
}

// MaxRow returns the largest occupied row index, or -1 when empty.
func (o Occupancy) MaxRow() int {
	max := -1
	for cell := range o {
		if cell.Row > max {
			max = cell.Row
		}
	}
	return max
}

// Clone returns a copy that shares nothing with the receiver.
func (o Occupancy) Clone() Occupancy {
	out := make(Occupancy, len(o))
	for cell, owner := range o {
		out[cell] = owner
	}
	return out
}
