package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
)

// Focus returns the focused widget, NoWidget if none
func (a *Arena) Focus() core.WidgetID {
	return a.focus
}

// SetFocus focuses id if it is alive and focusable
func (a *Arena) SetFocus(id core.WidgetID) bool {
	w, ok := a.Get(id)
	if !ok || !w.Kind.Focusable() {
		return false
	}
	a.focus = id
	return true
}

// FocusNext moves focus forward through focusable widgets, wrapping
func (a *Arena) FocusNext() core.WidgetID {
	return a.cycleFocus(1)
}

// FocusPrev moves focus backward through focusable widgets, wrapping
func (a *Arena) FocusPrev() core.WidgetID {
	return a.cycleFocus(-1)
}

func (a *Arena) cycleFocus(step int) core.WidgetID {
	var ring []core.WidgetID
	current := -1
	for _, id := range a.order {
		if a.slots[id.Index].widget.Kind.Focusable() {
			if id == a.focus {
				current = len(ring)
			}
			ring = append(ring, id)
		}
	}
	if len(ring) == 0 {
		a.focus = core.NoWidget
		return a.focus
	}

	next := 0
	switch {
	case current >= 0:
		next = (current + step + len(ring)) % len(ring)
	case step < 0:
		next = len(ring) - 1
	}
	a.focus = ring[next]
	return a.focus
}

// Submit pushes the current text of input id as a submission
func (a *Arena) Submit(id core.WidgetID) bool {
	text, ok := a.Text(id)
	if !ok {
		return false
	}
	a.submissions.Push(event.Submission{Widget: id, Text: text})
	return true
}

// Press pushes a press of button id
func (a *Arena) Press(id core.WidgetID) bool {
	w, ok := a.Get(id)
	if !ok || w.Kind != core.WidgetButton {
		return false
	}
	a.presses.Push(event.ButtonPress{Widget: id, Action: w.Action})
	return true
}

// Flush re-submits every live text input in creation order and returns the count
func (a *Arena) Flush() int {
	n := 0
	for _, id := range a.TextInputs() {
		if a.Submit(id) {
			n++
		}
	}
	return n
}

// HandleKey routes a key to focus navigation or the focused widget
// Returns true if the key was consumed
func (a *Arena) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		a.FocusNext()
		return true
	case tcell.KeyBacktab, tcell.KeyUp:
		a.FocusPrev()
		return true
	}

	w, ok := a.Get(a.focus)
	if !ok {
		return false
	}

	switch w.Kind {
	case core.WidgetTextInput:
		if ev.Key() == tcell.KeyEnter {
			return a.Submit(w.ID)
		}
		return w.Field.HandleKey(ev)
	case core.WidgetButton:
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			return a.Press(w.ID)
		}
	}
	return false
}
