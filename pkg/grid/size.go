package grid

import "fmt"

// Size is a widget footprint size in cell units.
type Size struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Cells returns the number of cells a footprint of this size covers.
func (s Size) Cells() int { return s.Width * s.Height }

// String returns the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// =============================================================================
// Size Catalog
// =============================================================================

// SizeClass names one of the fixed footprint variants widgets may use.
// The catalog is canonical: small=1x1, medium=2x2, large=4x2, xlarge=4x4.
type SizeClass string

// The fixed catalog of widget size classes.
const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeXLarge SizeClass = "xlarge"
)

// sizeCatalog maps each class to its cell dimensions.
var sizeCatalog = map[SizeClass]Size{
	SizeSmall:  {Width: 1, Height: 1},
	SizeMedium: {Width: 2, Height: 2},
	SizeLarge:  {Width: 4, Height: 2},
	SizeXLarge: {Width: 4, Height: 4},
}

// SizeClasses returns the catalog in ascending footprint order.
func SizeClasses() []SizeClass {
	return []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}
}

// Dimensions returns the cell dimensions of the class.
// Unknown classes fall back to small so that a stale or hand-edited snapshot
// never produces a zero-area footprint.
func (c SizeClass) Dimensions() Size {
	if s, ok := sizeCatalog[c]; ok {
		return s
	}
	return sizeCatalog[SizeSmall]
}

// Valid reports whether the class is part of the catalog.
func (c SizeClass) Valid() bool {
	_, ok := sizeCatalog[c]
	return ok
}

// ParseSizeClass converts a string to a SizeClass.
// Returns false if the string names no catalog entry.
func ParseSizeClass(s string) (SizeClass, bool) {
	c := SizeClass(s)
	return c, c.Valid()
}
