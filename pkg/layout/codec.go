package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// wireWidget mirrors Widget with pointer fields where absence matters,
// so missing values can be told apart from zero values during decode.
type wireWidget struct {
	ID            string         `json:"id"`
	Title         string         `json:"title,omitempty"`
	Category      string         `json:"category,omitempty"`
	Size          string         `json:"size"`
	Position      *grid.Position `json:"position"`
	Enabled       *bool          `json:"isEnabled"`
	ThemeOverride map[string]any `json:"themeOverride,omitempty"`
}

type wireSnapshot struct {
	Name    string       `json:"name"`
	Widgets []wireWidget `json:"widgets"`
	Config  *grid.Config `json:"config"`
	SavedAt *time.Time   `json:"savedAt,omitempty"`
}

// Encode serializes a snapshot to indented JSON.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot %q", s.Name)
	}
	return data, nil
}

// Decode parses a serialized snapshot.
//
// Decoding is lenient by contract: missing or unknown fields yield the
// documented defaults instead of an error. Widgets without an ID are
// dropped, unknown size names coerce to small, a missing isEnabled reads as
// enabled, and the configuration is normalized (columns=8, cellSize=100,
// spacing=4 when absent). Only malformed JSON returns an error, with code
// DECODE_ERROR.
func Decode(data []byte) (*Snapshot, error) {
	var wire wireSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "parse snapshot")
	}

	snap := &Snapshot{
		Name:    wire.Name,
		Widgets: make([]Widget, 0, len(wire.Widgets)),
		Config:  grid.DefaultConfig(),
	}
	if wire.Config != nil {
		snap.Config = wire.Config.Normalize()
	}
	if wire.SavedAt != nil {
		snap.SavedAt = *wire.SavedAt
	}

	for _, ww := range wire.Widgets {
		if ww.ID == "" {
			continue
		}
		w := Widget{
			ID:            ww.ID,
			Title:         ww.Title,
			Category:      ww.Category,
			Size:          grid.SizeSmall,
			Enabled:       true,
			ThemeOverride: ww.ThemeOverride,
		}
		if class, ok := grid.ParseSizeClass(ww.Size); ok {
			w.Size = class
		}
		if ww.Position != nil && ww.Position.Row >= 0 && ww.Position.Column >= 0 {
			w.Position = *ww.Position
		}
		if ww.Enabled != nil {
			w.Enabled = *ww.Enabled
		}
		snap.Widgets = append(snap.Widgets, w)
	}

	return snap, nil
}

// Hash returns the sha256 content hash of the snapshot, excluding SavedAt.
// Two snapshots describing the same arrangement hash identically regardless
// of when they were captured; the auto-saver uses this to skip writes when
// nothing changed.
func Hash(s *Snapshot) string {
	c := *s
	c.SavedAt = time.Time{}
	c.Widgets = s.Widgets
	data, _ := json.Marshal(&c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
