// Package registry supplies widgets to the board.
//
// The board manages placement metadata only; it does not know how to
// construct a widget. A Registry holds the catalog of available widget
// kinds, each with a default title, category, and size class, and mints
// fresh placement records with unique IDs on demand. Content rendering is
// resolved elsewhere, keyed by the widget's category.
package registry

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Kind describes one widget type available to the dashboard.
type Kind struct {
	Name     string         // catalog key, e.g. "clock"
	Title    string         // default display title
	Category string         // content-rendering category
	Size     grid.SizeClass // default footprint
}

// Registry is a catalog of widget kinds. The zero value is unusable; use
// New or Builtin.
type Registry struct {
	kinds map[string]Kind
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Builtin returns a registry pre-populated with the standard widget kinds.
func Builtin() *Registry {
	r := New()
	for _, k := range []Kind{
		{Name: "clock", Title: "Clock", Category: "clock", Size: grid.SizeMedium},
		{Name: "calendar", Title: "Calendar", Category: "calendar", Size: grid.SizeLarge},
		{Name: "weather", Title: "Weather", Category: "weather", Size: grid.SizeMedium},
		{Name: "system", Title: "System Monitor", Category: "system", Size: grid.SizeSmall},
		{Name: "photos", Title: "Photos", Category: "photos", Size: grid.SizeXLarge},
		{Name: "notes", Title: "Notes", Category: "notes", Size: grid.SizeMedium},
		{Name: "fitness", Title: "Fitness", Category: "fitness", Size: grid.SizeSmall},
	} {
		// Builtin kinds are well-formed; Register cannot fail here.
		_ = r.Register(k)
	}
	return r
}

// Register adds a kind to the catalog.
// Fails if the name is empty, the size class is unknown, or the name is
// already taken.
func (r *Registry) Register(k Kind) error {
	if k.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "kind name cannot be empty")
	}
	if !k.Size.Valid() {
		return errors.New(errors.ErrCodeInvalidSize, "kind %q has unknown size class %q", k.Name, k.Size)
	}
	if _, exists := r.kinds[k.Name]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "kind %q already registered", k.Name)
	}
	r.kinds[k.Name] = k
	r.order = append(r.order, k.Name)
	return nil
}

// Kind returns the catalog entry with the given name.
func (r *Registry) Kind(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns the catalog in registration order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	for i, name := range r.order {
		out[i] = r.kinds[name]
	}
	return out
}

// Names returns the catalog keys sorted lexically, for completion and
// validation messages.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instantiate mints a new widget of the named kind with a fresh unique ID,
// ready to hand to board.Add. The widget starts enabled.
func (r *Registry) Instantiate(name string) (board.Widget, error) {
	k, ok := r.kinds[name]
	if !ok {
		return board.Widget{}, errors.New(errors.ErrCodeInvalidInput,
			"unknown widget kind %q (known: %v)", name, r.Names())
	}
	return board.Widget{
		ID:       uuid.NewString(),
		Title:    k.Title,
		Category: k.Category,
		Size:     k.Size,
		Enabled:  true,
	}, nil
}
