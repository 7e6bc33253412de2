package grid

// Default presentation and layout values, applied whenever a configuration
// field is missing or out of range.
const (
	DefaultColumns  = 8
	DefaultCellSize = 100.0
	DefaultSpacing  = 4.0
)

// Insets are the padding around the grid in points.
// Presentation only; placement logic never reads them.
type Insets struct {
	Top      float64 `json:"top" bson:"top" toml:"top"`
	Leading  float64 `json:"leading" bson:"leading" toml:"leading"`
	Bottom   float64 `json:"bottom" bson:"bottom" toml:"bottom"`
	Trailing float64 `json:"trailing" bson:"trailing" toml:"trailing"`
}

// Config describes the grid an arrangement lives on.
//
// Columns bounds placement horizontally. Rows bounds it vertically when
// positive; zero means the grid grows downward without limit. CellSize,
// Spacing, and Padding are carried for the presentation layer and persisted
// with the layout, but have no effect on placement.
type Config struct {
	Columns  int     `json:"columns" bson:"columns"`
	Rows     int     `json:"rows,omitempty" bson:"rows,omitempty"`
	CellSize float64 `json:"cellSize" bson:"cellSize"`
	Spacing  float64 `json:"spacing" bson:"spacing"`
	Padding  Insets  `json:"padding" bson:"padding"`
}

// DefaultConfig returns the configuration used when nothing was persisted:
// 8 columns, unbounded rows, 100pt cells with 4pt spacing.
func DefaultConfig() Config {
	return Config{
		Columns:  DefaultColumns,
		CellSize: DefaultCellSize,
		Spacing:  DefaultSpacing,
	}
}

// Bounded reports whether the grid has a finite row limit.
func (c Config) Bounded() bool { return c.Rows > 0 }

// Normalize returns a copy with out-of-range fields replaced by defaults.
// Negative row limits collapse to unbounded.
func (c Config) Normalize() Config {
	if c.Columns <= 0 {
		c.Columns = DefaultColumns
	}
	if c.Rows < 0 {
		c.Rows = 0
	}
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Spacing <= 0 {
		c.Spacing = DefaultSpacing
	}
	return c
}
