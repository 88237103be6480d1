package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/grid"
)

var (
	// ErrUnknownWidget is returned for a handle that was never registered or was cleared
	ErrUnknownWidget = errors.New("unknown widget")
	// ErrDuplicateWidget is returned when a handle is registered twice
	ErrDuplicateWidget = errors.New("widget already registered")
	// ErrDuplicateKind is returned when a second field of the same kind is registered
	ErrDuplicateKind = errors.New("dimension kind already registered")
	// ErrInvalidKind is returned for a kind outside Width/Length/Height
	ErrInvalidKind = errors.New("invalid dimension kind")
	// ErrIncomplete is returned by Check when the registry does not hold one field per kind
	ErrIncomplete = errors.New("registry incomplete")
)

// Change describes the effect of one Update
type Change struct {
	Widget   core.WidgetID
	Kind     Kind
	Previous uint32
	Value    uint32
	Parsed   bool // False when the text was not a non-negative integer and the value reset to 0
}

// Changed reports whether the stored value differs from before the update
func (c Change) Changed() bool {
	return c.Previous != c.Value
}

// Registry maps widget handles to their dimension field
// Owned by a single caller; no internal locking
// Holds at most one field per kind; Register enforces it
type Registry struct {
	fields map[core.WidgetID]Field
	order  []core.WidgetID // Registration order
	epoch  uint64          // Incremented by Clear
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		fields: make(map[core.WidgetID]Field, len(Kinds)),
		order:  make([]core.WidgetID, 0, len(Kinds)),
	}
}

// Register adds a field of kind for id with value 0
// Fails without modifying the registry if id is already present or kind is taken
func (r *Registry) Register(id core.WidgetID, kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("register %s: %w", id, ErrInvalidKind)
	}
	if _, exists := r.fields[id]; exists {
		return fmt.Errorf("register %s: %w", id, ErrDuplicateWidget)
	}
	for _, f := range r.fields {
		if f.Kind == kind {
			return fmt.Errorf("register %s as %s: %w", id, kind, ErrDuplicateKind)
		}
	}
	r.fields[id] = Field{Kind: kind}
	r.order = append(r.order, id)
	return nil
}

// Update parses raw as a non-negative integer and stores it under id's kind
// Surrounding whitespace is ignored; unparsable text stores 0 without error
// Unregistered handles return ErrUnknownWidget and leave every entry unchanged
func (r *Registry) Update(id core.WidgetID, raw string) (Change, error) {
	f, ok := r.fields[id]
	if !ok {
		return Change{Widget: id}, fmt.Errorf("update %s: %w", id, ErrUnknownWidget)
	}

	value, parsed := ParseValue(raw)
	change := Change{
		Widget:   id,
		Kind:     f.Kind,
		Previous: f.Value,
		Value:    value,
		Parsed:   parsed,
	}
	f.Value = value
	r.fields[id] = f
	return change, nil
}

// ParseValue converts text to an extent, returning (0, false) on failure
func ParseValue(raw string) (uint32, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Get returns the field registered for id
func (r *Registry) Get(id core.WidgetID) (Field, bool) {
	f, ok := r.fields[id]
	return f, ok
}

// Len returns the number of registered fields
func (r *Registry) Len() int {
	return len(r.fields)
}

// Epoch identifies the current registry contents generation; changes on every Clear
func (r *Registry) Epoch() uint64 {
	return r.epoch
}

// Widgets returns registered handles in registration order
func (r *Registry) Widgets() []core.WidgetID {
	out := make([]core.WidgetID, len(r.order))
	copy(out, r.order)
	return out
}

// AllValid reports whether the registry is non-empty and every value is >= 1
func (r *Registry) AllValid() bool {
	if len(r.fields) == 0 {
		return false
	}
	for _, f := range r.fields {
		if !f.Valid() {
			return false
		}
	}
	return true
}

// Check verifies the registry holds exactly one field of each kind
func (r *Registry) Check() error {
	var seen [len(Kinds) + 1]int
	for id, f := range r.fields {
		if !f.Kind.Valid() {
			return fmt.Errorf("widget %s: %w", id, ErrInvalidKind)
		}
		seen[f.Kind]++
	}
	for _, k := range Kinds {
		switch n := seen[k]; {
		case n == 0:
			return fmt.Errorf("missing %s: %w", k, ErrIncomplete)
		case n > 1:
			return fmt.Errorf("%d %s fields: %w", n, k, ErrDuplicateKind)
		}
	}
	return nil
}

// Extract returns the current width, length and height
// Precondition: AllValid; earlier calls expose zero or partial values without error
func (r *Registry) Extract() grid.Dimensions {
	var d grid.Dimensions
	for _, f := range r.fields {
		switch f.Kind {
		case KindWidth:
			d.Width = f.Value
		case KindLength:
			d.Length = f.Value
		case KindHeight:
			d.Height = f.Value
		}
	}
	return d
}

// Clear removes every entry and advances the epoch
func (r *Registry) Clear() {
	clear(r.fields)
	r.order = r.order[:0]
	r.epoch++
}
