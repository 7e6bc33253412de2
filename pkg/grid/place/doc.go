// Package place implements deterministic first-fit placement of widgets on
// the dashboard grid.
//
// The engine assigns each widget in an ordered list the first available
// top-left position under a row-major scan: rows top to bottom, columns left
// to right within each row. The first candidate whose footprint fits the
// grid and collides with nothing already placed wins, and its cells join the
// occupancy set before the next widget is considered.
//
// First-fit scanning packs widgets into gaps without global optimization,
// which is cheap at dashboard scale (tens of widgets) and, given a fixed
// input order, fully deterministic, so the same widget list always produces
// the same arrangement.
//
// On a grid with a finite row limit a widget may have no valid slot at all.
// The engine reports such widgets as unplaced and continues with the rest;
// it never fails the whole plan for one oversized widget.
package place
