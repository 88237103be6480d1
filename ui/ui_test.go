package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-map/core"
	"github.com/lixenwraith/voxel-map/event"
)

func newTestArena() (*Arena, *event.Queue[event.Submission], *event.Queue[event.ButtonPress]) {
	subs := event.NewQueue[event.Submission](8)
	presses := event.NewQueue[event.ButtonPress](8)
	return NewArena(subs, presses), subs, presses
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(a *Arena, s string) {
	for _, r := range s {
		a.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

// TestStaleHandleNeverResolves verifies slot reuse bumps the generation
func TestStaleHandleNeverResolves(t *testing.T) {
	a, _, _ := newTestArena()
	old := a.Canvas("first")
	if err := a.Destroy(old); err != nil {
		t.Fatal(err)
	}

	reused := a.Canvas("second")
	if reused.Index != old.Index {
		t.Fatalf("Expected slot %d to be reused, got %d", old.Index, reused.Index)
	}
	if reused.Gen == old.Gen {
		t.Fatal("Expected generation to advance on reuse")
	}
	if a.Alive(old) {
		t.Error("Expected stale handle to be dead")
	}
	if _, ok := a.Get(old); ok {
		t.Error("Expected Get on stale handle to fail")
	}
	if err := a.Destroy(old); !errors.Is(err, ErrDeadWidget) {
		t.Errorf("Expected ErrDeadWidget, got %v", err)
	}
	if a.Alive(core.NoWidget) {
		t.Error("Expected NoWidget to never resolve")
	}
}

// TestDestroyRecursive verifies a canvas takes its whole subtree with it
func TestDestroyRecursive(t *testing.T) {
	a, _, _ := newTestArena()
	root := a.Canvas("options")
	inner, _ := a.Create(core.WidgetCanvas, root, "group")
	in1, _ := a.TextInput(inner, "Width")
	btn, _ := a.Button(root, "Back", core.ActionBack)
	other := a.Canvas("other")

	a.SetFocus(in1)
	if err := a.Destroy(root); err != nil {
		t.Fatal(err)
	}
	for _, id := range []core.WidgetID{root, inner, in1, btn} {
		if a.Alive(id) {
			t.Errorf("Expected %s destroyed", id)
		}
	}
	if !a.Alive(other) || a.Len() != 1 {
		t.Errorf("Expected only the other canvas alive, got %d widgets", a.Len())
	}
	if !a.Focus().IsZero() {
		t.Error("Expected focus cleared with its widget")
	}
}

// TestDestroyChildDetaches verifies the parent forgets a destroyed child
func TestDestroyChildDetaches(t *testing.T) {
	a, _, _ := newTestArena()
	root := a.Canvas("c")
	l1, _ := a.Label(root, "one")
	l2, _ := a.Label(root, "two")
	_ = a.Destroy(l1)
	children := a.Children(root)
	if len(children) != 1 || children[0] != l2 {
		t.Errorf("Expected [%s], got %v", l2, children)
	}
}

// TestCreateUnderInvalidParent covers dead and non-canvas parents
func TestCreateUnderInvalidParent(t *testing.T) {
	a, _, _ := newTestArena()
	root := a.Canvas("c")
	label, _ := a.Label(root, "text")
	if _, err := a.Label(label, "nested"); !errors.Is(err, ErrNotContainer) {
		t.Errorf("Expected ErrNotContainer, got %v", err)
	}
	_ = a.Destroy(root)
	if _, err := a.Label(root, "late"); !errors.Is(err, ErrDeadWidget) {
		t.Errorf("Expected ErrDeadWidget, got %v", err)
	}
}

// TestRootsOrder verifies creation order of roots
func TestRootsOrder(t *testing.T) {
	a, _, _ := newTestArena()
	r1 := a.Canvas("a")
	_, _ = a.Label(r1, "x")
	r2 := a.Canvas("b")
	roots := a.Roots()
	if len(roots) != 2 || roots[0] != r1 || roots[1] != r2 {
		t.Errorf("Unexpected roots %v", roots)
	}
}

// TestFocusCycle verifies Tab/Shift-Tab wrap over focusable widgets only
func TestFocusCycle(t *testing.T) {
	a, _, _ := newTestArena()
	root := a.Canvas("c")
	_, _ = a.Label(root, "title")
	in, _ := a.TextInput(root, "Width")
	btn, _ := a.Button(root, "Go", core.ActionSubmit)

	if got := a.FocusNext(); got != in {
		t.Fatalf("Expected first focus on input, got %s", got)
	}
	a.HandleKey(key(tcell.KeyTab))
	if a.Focus() != btn {
		t.Errorf("Expected focus on button, got %s", a.Focus())
	}
	a.HandleKey(key(tcell.KeyDown))
	if a.Focus() != in {
		t.Errorf("Expected wrap to input, got %s", a.Focus())
	}
	a.HandleKey(key(tcell.KeyBacktab))
	if a.Focus() != btn {
		t.Errorf("Expected backward wrap to button, got %s", a.Focus())
	}
	if a.SetFocus(root) {
		t.Error("Expected canvas to refuse focus")
	}
}

// TestEnterSubmitsFocusedInput verifies typed text reaches the submission queue
func TestEnterSubmitsFocusedInput(t *testing.T) {
	a, subs, _ := newTestArena()
	root := a.Canvas("c")
	in, _ := a.TextInput(root, "Width")
	a.SetFocus(in)

	typeText(a, "4x")
	a.HandleKey(key(tcell.KeyBackspace2))
	a.HandleKey(key(tcell.KeyEnter))

	got := subs.Drain()
	if len(got) != 1 || got[0] != (event.Submission{Widget: in, Text: "4"}) {
		t.Errorf("Unexpected submissions %+v", got)
	}
}

// TestButtonPress verifies Enter and Space on a button push its action
func TestButtonPress(t *testing.T) {
	a, _, presses := newTestArena()
	root := a.Canvas("c")
	start, _ := a.Button(root, "Start", core.ActionStart)
	a.SetFocus(start)

	a.HandleKey(key(tcell.KeyEnter))
	a.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	got := presses.Drain()
	if len(got) != 2 || got[0].Action != core.ActionStart || got[1].Widget != start {
		t.Errorf("Unexpected presses %+v", got)
	}
	if a.Press(root) {
		t.Error("Expected Press on canvas to fail")
	}
}

// TestFlushSubmitsAllInputs verifies one submission per live input in creation order
func TestFlushSubmitsAllInputs(t *testing.T) {
	a, subs, _ := newTestArena()
	root := a.Canvas("c")
	w, _ := a.TextInput(root, "Width")
	l, _ := a.TextInput(root, "Length")
	h, _ := a.TextInput(root, "Height")
	a.SetText(w, "4")
	a.SetText(h, "2")

	if n := a.Flush(); n != 3 {
		t.Fatalf("Expected 3 flushed, got %d", n)
	}
	want := []event.Submission{{Widget: w, Text: "4"}, {Widget: l, Text: ""}, {Widget: h, Text: "2"}}
	got := subs.Drain()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("submission %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	_ = a.Destroy(root)
	if n := a.Flush(); n != 0 {
		t.Errorf("Expected nothing to flush after teardown, got %d", n)
	}
}

// TestTextFieldEditing covers cursor movement and deletion
func TestTextFieldEditing(t *testing.T) {
	f := NewTextField("123", 0)
	f.MoveLeft()
	f.Insert('9')
	if f.Value() != "1293" {
		t.Errorf("Expected 1293, got %s", f.Value())
	}
	f.MoveToStart()
	f.DeleteForward()
	if f.Value() != "293" {
		t.Errorf("Expected 293, got %s", f.Value())
	}
	f.MoveToEnd()
	f.DeleteBackward()
	if f.Value() != "29" || f.Cursor != 2 {
		t.Errorf("Expected 29 with cursor 2, got %s cursor %d", f.Value(), f.Cursor)
	}
	f.SetValue("ab cd")
	f.DeleteWordBackward()
	if f.Value() != "ab " {
		t.Errorf("Expected 'ab ', got %q", f.Value())
	}
	f.Clear()
	if f.Value() != "" || f.DeleteBackward() {
		t.Error("Expected empty field")
	}
}

// TestTextFieldMaxLen verifies inserts stop at the bound
func TestTextFieldMaxLen(t *testing.T) {
	f := NewTextField("", 3)
	for _, r := range "12345" {
		f.Insert(r)
	}
	if f.Value() != "123" {
		t.Errorf("Expected 123, got %s", f.Value())
	}
	f.SetValue("987654")
	if f.Value() != "987" {
		t.Errorf("Expected 987, got %s", f.Value())
	}
}
