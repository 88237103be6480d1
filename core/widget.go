package core

import "strconv"

// WidgetID is a generational handle to a presentation widget
// Index addresses an arena slot, Gen must match the slot's live generation
// The zero value is never issued and never resolves
type WidgetID struct {
	Index uint32
	Gen   uint32
}

// NoWidget is the null handle
var NoWidget = WidgetID{}

// IsZero reports whether id is the null handle
func (id WidgetID) IsZero() bool {
	return id == NoWidget
}

// String formats the handle as "index:gen" for logs
func (id WidgetID) String() string {
	return strconv.FormatUint(uint64(id.Index), 10) + ":" + strconv.FormatUint(uint64(id.Gen), 10)
}

// WidgetKind identifies the presentation role of a widget
type WidgetKind uint8

const (
	WidgetCanvas WidgetKind = iota + 1
	WidgetLabel
	WidgetButton
	WidgetTextInput
)

// String returns the kind name
func (k WidgetKind) String() string {
	switch k {
	case WidgetCanvas:
		return "Canvas"
	case WidgetLabel:
		return "Label"
	case WidgetButton:
		return "Button"
	case WidgetTextInput:
		return "TextInput"
	default:
		return "Unknown"
	}
}

// Focusable reports whether widgets of this kind take keyboard focus
func (k WidgetKind) Focusable() bool {
	return k == WidgetButton || k == WidgetTextInput
}
