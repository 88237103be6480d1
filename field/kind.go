package field

import "fmt"

// Kind tags which map dimension a field carries
type Kind uint8

const (
	KindWidth Kind = iota + 1
	KindLength
	KindHeight
)

// Kinds lists every dimension kind in extraction order
var Kinds = [...]Kind{KindWidth, KindLength, KindHeight}

// Valid reports whether k is one of the three dimension kinds
func (k Kind) Valid() bool {
	switch k {
	case KindWidth, KindLength, KindHeight:
		return true
	default:
		return false
	}
}

// String returns the dimension name
func (k Kind) String() string {
	switch k {
	case KindWidth:
		return "Width"
	case KindLength:
		return "Length"
	case KindHeight:
		return "Height"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Field is a tagged dimension value: Width(n), Length(n) or Height(n)
type Field struct {
	Kind  Kind
	Value uint32
}

// Width constructs a Width field
func Width(n uint32) Field { return Field{Kind: KindWidth, Value: n} }

// Length constructs a Length field
func Length(n uint32) Field { return Field{Kind: KindLength, Value: n} }

// Height constructs a Height field
func Height(n uint32) Field { return Field{Kind: KindHeight, Value: n} }

// Valid reports whether the field holds a usable extent
func (f Field) Valid() bool {
	return f.Value >= 1
}

// String formats as Kind(n)
func (f Field) String() string {
	return fmt.Sprintf("%s(%d)", f.Kind, f.Value)
}
