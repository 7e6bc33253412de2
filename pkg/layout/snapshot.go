// Package layout defines the serialization format for dashboard arrangements.
//
// A Snapshot is a named, self-contained copy of a board: the widget
// placements in registration order plus the grid configuration. Snapshots
// are what the persistence layer stores and what the board is seeded from on
// startup. They share no mutable state with the board that produced them.
//
// # Wire Format
//
// Snapshots serialize to a JSON object:
//
//	{
//	  "name": "home",
//	  "savedAt": "2026-08-12T09:15:00Z",
//	  "widgets": [
//	    {
//	      "id": "…", "title": "Clock", "category": "clock",
//	      "size": "medium", "position": {"row": 0, "column": 0},
//	      "isEnabled": true
//	    }
//	  ],
//	  "config": {"columns": 8, "cellSize": 100, "spacing": 4, "padding": {…}}
//	}
//
// Decoding is lenient: unknown or missing fields fall back to documented
// defaults (columns=8, cellSize=100, spacing=4, size=small, enabled=true)
// rather than failing the whole load. Only malformed JSON is an error.
package layout

import (
	"time"

	"github.com/gridboard/gridboard/pkg/grid"
)

// Widget is one persisted widget placement.
// The slice order inside a Snapshot is the registration order and doubles as
// the deterministic tie-break for gap-filling placement.
type Widget struct {
	ID            string         `json:"id" bson:"id"`
	Title         string         `json:"title,omitempty" bson:"title,omitempty"`
	Category      string         `json:"category,omitempty" bson:"category,omitempty"`
	Size          grid.SizeClass `json:"size" bson:"size"`
	Position      grid.Position  `json:"position" bson:"position"`
	Enabled       bool           `json:"isEnabled" bson:"isEnabled"`
	ThemeOverride map[string]any `json:"themeOverride,omitempty" bson:"themeOverride,omitempty"`
}

// Snapshot is a serializable copy of a board's placements and configuration.
type Snapshot struct {
	Name    string      `json:"name" bson:"name"`
	Widgets []Widget    `json:"widgets" bson:"widgets"`
	Config  grid.Config `json:"config" bson:"config"`
	SavedAt time.Time   `json:"savedAt" bson:"savedAt"`
}

// Clone returns a deep copy sharing nothing with the receiver.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Name:    s.Name,
		Config:  s.Config,
		SavedAt: s.SavedAt,
		Widgets: make([]Widget, len(s.Widgets)),
	}
	for i, w := range s.Widgets {
		cw := w
		if w.ThemeOverride != nil {
			cw.ThemeOverride = make(map[string]any, len(w.ThemeOverride))
			for k, v := range w.ThemeOverride {
				cw.ThemeOverride[k] = v
			}
		}
		out.Widgets[i] = cw
	}
	return out
}

// Widget returns the persisted placement with the given ID, if present.
func (s *Snapshot) Widget(id string) (Widget, bool) {
	for _, w := range s.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}
