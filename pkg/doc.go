// Package pkg provides the core libraries for the gridboard widget dashboard.
//
// # Overview
//
// Gridboard arranges dashboard widgets on a column-based cell grid: every
// widget claims a rectangular footprint of cells, overlapping or out-of-bounds
// placements are rejected rather than resolved, and named layouts persist
// across restarts. The pkg directory is organized into four main areas:
//
//  1. [grid], [grid/place] - Grid geometry, collision detection, first-fit placement
//  2. [board], [layout], [registry] - Widget state, snapshots, and the widget catalog
//  3. [store], [autosave], [config] - Persistence backends and debounced saving
//  4. [errors], [observability], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through gridboard:
//
//	Widget catalog ([registry])
//	         ↓
//	    [board] package (add / move / resize / toggle / recompute)
//	         ↓
//	    [grid] + [grid/place] packages (bounds, collisions, first-fit)
//	         ↓
//	    [layout] package (snapshot + JSON codec)
//	         ↓
//	    [store] backends (file, Redis, MongoDB), driven by [autosave]
//
// # Quick Start
//
// Build a board, place widgets, and persist the result:
//
//	import (
//	    "context"
//	    "github.com/gridboard/gridboard/pkg/board"
//	    "github.com/gridboard/gridboard/pkg/grid"
//	    "github.com/gridboard/gridboard/pkg/registry"
//	    "github.com/gridboard/gridboard/pkg/store"
//	)
//
//	// 1. Create a board on the default 8-column grid
//	b := board.New(grid.DefaultConfig())
//
//	// 2. Add widgets from the catalog
//	reg := registry.Builtin()
//	clock, _ := reg.Instantiate("clock")
//	_ = b.Add(clock)
//
//	// 3. Move one around; rejected moves leave the board unchanged
//	_ = b.Move(clock.ID, grid.Position{Row: 1, Column: 2})
//
//	// 4. Persist the layout
//	st, _ := store.NewFileStore("")
//	_ = st.Save(context.Background(), b.Snapshot("default"))
//
// # Main Packages
//
// [grid] - Grid geometry: positions, size classes, footprints, the occupancy
// set, and rectangle-intersection collision checks.
//
// [grid/place] - Deterministic first-fit placement: scans row-major for the
// first free slot and packs whole layouts in widget order.
//
// [board] - The mutable dashboard: validates every operation against the
// occupancy set before applying it, so a rejected operation never leaves a
// half-applied layout.
//
// [layout] - Snapshot documents and their lenient JSON codec; hand-edited or
// stale files degrade field by field instead of failing the load.
//
// [store] - Persistence backends behind one interface: filesystem, Redis,
// MongoDB, and a null store for tests.
//
// [autosave] - Debounced background saving with content-hash change
// detection.
package pkg
