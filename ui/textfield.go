package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextField holds the editable text of an input widget
type TextField struct {
	Text   []rune
	Cursor int // Rune index the cursor sits before
	MaxLen int // 0 = unlimited
}

// NewTextField creates a field holding initial with the cursor at the end
func NewTextField(initial string, maxLen int) *TextField {
	runes := []rune(initial)
	return &TextField{Text: runes, Cursor: len(runes), MaxLen: maxLen}
}

// Value returns the current text
func (t *TextField) Value() string {
	return string(t.Text)
}

// SetValue replaces the text and moves the cursor to the end
func (t *TextField) SetValue(s string) {
	t.Text = []rune(s)
	if t.MaxLen > 0 && len(t.Text) > t.MaxLen {
		t.Text = t.Text[:t.MaxLen]
	}
	t.Cursor = len(t.Text)
}

// Clear empties the field
func (t *TextField) Clear() {
	t.Text = nil
	t.Cursor = 0
}

// Insert adds r at the cursor; returns false when the field is full
func (t *TextField) Insert(r rune) bool {
	if t.MaxLen > 0 && len(t.Text) >= t.MaxLen {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	return true
}

// DeleteBackward removes the rune before the cursor
func (t *TextField) DeleteBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
	t.Cursor--
	return true
}

// DeleteForward removes the rune at the cursor
func (t *TextField) DeleteForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word before the cursor
func (t *TextField) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToStart removes everything before the cursor
func (t *TextField) DeleteToStart() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = t.Text[t.Cursor:]
	t.Cursor = 0
	return true
}

// MoveLeft moves the cursor one rune left
func (t *TextField) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves the cursor one rune right
func (t *TextField) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// MoveToStart moves the cursor before the first rune
func (t *TextField) MoveToStart() { t.Cursor = 0 }

// MoveToEnd moves the cursor after the last rune
func (t *TextField) MoveToEnd() { t.Cursor = len(t.Text) }

// HandleKey applies an editing key, returns true if the key was consumed
// Enter, Tab and arrows Up/Down are left to the arena
func (t *TextField) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		t.MoveLeft()
		return true
	case tcell.KeyRight:
		t.MoveRight()
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		t.MoveToStart()
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		t.MoveToEnd()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.DeleteBackward()
		return true
	case tcell.KeyDelete:
		t.DeleteForward()
		return true
	case tcell.KeyCtrlW:
		t.DeleteWordBackward()
		return true
	case tcell.KeyCtrlU:
		t.DeleteToStart()
		return true
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 32 {
			t.Insert(r)
			return true
		}
	}
	return false
}
