package place_test

import (
	"fmt"

	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/grid/place"
)

// Demonstrates gap-filling placement on a 4-column grid.
func ExamplePlan() {
	items := []place.Item{
		{ID: "clock", Size: grid.SizeMedium.Dimensions()},    // 2x2
		{ID: "weather", Size: grid.SizeSmall.Dimensions()},   // 1x1
		{ID: "system", Size: grid.SizeSmall.Dimensions()},    // 1x1
		{ID: "calendar", Size: grid.SizeMedium.Dimensions()}, // 2x2
	}

	result := place.Plan(items, grid.Config{Columns: 4})

	for _, item := range items {
		pos := result.Positions[item.ID]
		fmt.Printf("%s: row %d, column %d\n", item.ID, pos.Row, pos.Column)
	}
	// Output:
	// clock: row 0, column 0
	// weather: row 0, column 2
	// system: row 0, column 3
	// calendar: row 1, column 2
}
