package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
)

var (
	// ErrDeadWidget is returned for a stale or never-issued handle
	ErrDeadWidget = errors.New("widget not alive")
	// ErrNotContainer is returned when attaching a child to a non-canvas widget
	ErrNotContainer = errors.New("parent is not a canvas")
)

// Widget is one presentation element
type Widget struct {
	ID       core.WidgetID
	Kind     core.WidgetKind
	Parent   core.WidgetID
	Children []core.WidgetID

	Label  string            // Canvas title, label text, button caption or input prompt
	Action core.ButtonAction // Buttons only
	Field  *TextField        // Text inputs only
}

type slot struct {
	gen    uint32
	alive  bool
	widget Widget
}

// Arena owns every live widget and issues generational handles
// Destroyed slots bump their generation before reuse so stale handles never resolve
// Not safe for concurrent use; lives on the tick loop
type Arena struct {
	slots []slot // Index 0 reserved for NoWidget
	free  []uint32
	order []core.WidgetID // Creation order of live widgets
	focus core.WidgetID

	// InputMaxLen bounds text input length, 0 = unlimited
	InputMaxLen int

	submissions *event.Queue[event.Submission]
	presses     *event.Queue[event.ButtonPress]
}

// NewArena creates an arena emitting into the given queues
func NewArena(submissions *event.Queue[event.Submission], presses *event.Queue[event.ButtonPress]) *Arena {
	return &Arena{
		slots:       make([]slot, 1, 32),
		InputMaxLen: 9,
		submissions: submissions,
		presses:     presses,
	}
}

// Create allocates a widget under parent; NoWidget makes a root
func (a *Arena) Create(kind core.WidgetKind, parent core.WidgetID, label string) (core.WidgetID, error) {
	if !parent.IsZero() {
		p, ok := a.Get(parent)
		if !ok {
			return core.NoWidget, fmt.Errorf("create %s under %s: %w", kind, parent, ErrDeadWidget)
		}
		if p.Kind != core.WidgetCanvas {
			return core.NoWidget, fmt.Errorf("create %s under %s %s: %w", kind, p.Kind, parent, ErrNotContainer)
		}
	}

	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		index = uint32(len(a.slots) - 1)
	}

	s := &a.slots[index]
	s.gen++
	s.alive = true
	id := core.WidgetID{Index: index, Gen: s.gen}
	s.widget = Widget{ID: id, Kind: kind, Parent: parent, Label: label}
	if kind == core.WidgetTextInput {
		s.widget.Field = NewTextField("", a.InputMaxLen)
	}

	if !parent.IsZero() {
		p := &a.slots[parent.Index].widget
		p.Children = append(p.Children, id)
	}
	a.order = append(a.order, id)
	return id, nil
}

// Canvas creates a root canvas
func (a *Arena) Canvas(title string) core.WidgetID {
	id, _ := a.Create(core.WidgetCanvas, core.NoWidget, title)
	return id
}

// Label creates a static text line
func (a *Arena) Label(parent core.WidgetID, text string) (core.WidgetID, error) {
	return a.Create(core.WidgetLabel, parent, text)
}

// Button creates a button bound to action
func (a *Arena) Button(parent core.WidgetID, caption string, action core.ButtonAction) (core.WidgetID, error) {
	id, err := a.Create(core.WidgetButton, parent, caption)
	if err != nil {
		return id, err
	}
	a.slots[id.Index].widget.Action = action
	return id, nil
}

// TextInput creates an editable field with a prompt
func (a *Arena) TextInput(parent core.WidgetID, prompt string) (core.WidgetID, error) {
	return a.Create(core.WidgetTextInput, parent, prompt)
}

// Destroy removes id and all of its descendants
func (a *Arena) Destroy(id core.WidgetID) error {
	w, ok := a.Get(id)
	if !ok {
		return fmt.Errorf("destroy %s: %w", id, ErrDeadWidget)
	}

	if !w.Parent.IsZero() {
		if p, ok := a.Get(w.Parent); ok {
			p.Children = slices.DeleteFunc(p.Children, func(c core.WidgetID) bool { return c == id })
		}
	}
	a.destroyTree(id)

	a.order = slices.DeleteFunc(a.order, func(c core.WidgetID) bool { return !a.Alive(c) })
	if !a.Alive(a.focus) {
		a.focus = core.NoWidget
	}
	return nil
}

func (a *Arena) destroyTree(id core.WidgetID) {
	s := &a.slots[id.Index]
	for _, child := range s.widget.Children {
		a.destroyTree(child)
	}
	s.alive = false
	s.widget = Widget{}
	a.free = append(a.free, id.Index)
}

// Alive reports whether id refers to a live widget
func (a *Arena) Alive(id core.WidgetID) bool {
	if id.IsZero() || int(id.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[id.Index]
	return s.alive && s.gen == id.Gen
}

// Get returns the live widget for id; the pointer is invalidated by Create or Destroy
func (a *Arena) Get(id core.WidgetID) (*Widget, bool) {
	if !a.Alive(id) {
		return nil, false
	}
	return &a.slots[id.Index].widget, true
}

// Children returns a copy of id's child handles
func (a *Arena) Children(id core.WidgetID) []core.WidgetID {
	w, ok := a.Get(id)
	if !ok {
		return nil
	}
	return slices.Clone(w.Children)
}

// Roots returns live parentless widgets in creation order
func (a *Arena) Roots() []core.WidgetID {
	var roots []core.WidgetID
	for _, id := range a.order {
		if a.slots[id.Index].widget.Parent.IsZero() {
			roots = append(roots, id)
		}
	}
	return roots
}

// Len returns the number of live widgets
func (a *Arena) Len() int {
	return len(a.order)
}

// TextInputs returns live text inputs in creation order
func (a *Arena) TextInputs() []core.WidgetID {
	var ids []core.WidgetID
	for _, id := range a.order {
		if a.slots[id.Index].widget.Kind == core.WidgetTextInput {
			ids = append(ids, id)
		}
	}
	return ids
}

// Text returns the current text of an input widget
func (a *Arena) Text(id core.WidgetID) (string, bool) {
	w, ok := a.Get(id)
	if !ok || w.Field == nil {
		return "", false
	}
	return w.Field.Value(), true
}

// SetText replaces the text of an input widget without submitting it
func (a *Arena) SetText(id core.WidgetID, text string) bool {
	w, ok := a.Get(id)
	if !ok || w.Field == nil {
		return false
	}
	w.Field.SetValue(text)
	return true
}
