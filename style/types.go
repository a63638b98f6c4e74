package style

import (
	"fmt"
	"image/color"
)

// ValueType is the semantic type tag of a stylable property. It selects the
// parser used to convert raw themed strings into native values.
type ValueType uint8

// Value type tags. The set is closed.
const (
	NoType ValueType = iota // unset or error condition
	Bool
	Int
	Float
	String
	Enum
	Color
	BoxType
)

func (t ValueType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Enum:
		return "enum"
	case Color:
		return "color"
	case BoxType:
		return "box"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is a native property value. Depending on the value type tag of a
// property, the dynamic type is one of
//
//     bool, int, float64, string, color.RGBA or Box
//
// Enum values are strings. All of these are comparable with ==.
type Value interface{}

// ZeroValue returns the zero value for a value type tag.
func ZeroValue(t ValueType) Value {
	switch t {
	case Bool:
		return false
	case Int:
		return 0
	case Float:
		return 0.0
	case String, Enum:
		return ""
	case Color:
		return color.RGBA{}
	case BoxType:
		return Box{}
	}
	return nil
}

// Accepts is a predicate wether a native value fits a value type tag.
func (t ValueType) Accepts(v Value) bool {
	switch v.(type) {
	case bool:
		return t == Bool
	case int:
		return t == Int
	case float64:
		return t == Float
	case string:
		return t == String || t == Enum
	case color.RGBA:
		return t == Color
	case Box:
		return t == BoxType
	}
	return false
}

// --- Boxes -------------------------------------------------------------

// Box is an axis-aligned rectangle in scene coordinates.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the top left corner of a box.
func (b Box) Origin() (float64, float64) {
	return b.X, b.Y
}

// IsEmpty is true for boxes with zero area.
func (b Box) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Lerp interpolates between b and to. t = 0 returns b, t = 1 returns to.
func (b Box) Lerp(to Box, t float64) Box {
	return Box{
		X:      b.X + (to.X-b.X)*t,
		Y:      b.Y + (to.Y-b.Y)*t,
		Width:  b.Width + (to.Width-b.Width)*t,
		Height: b.Height + (to.Height-b.Height)*t,
	}
}

func (b Box) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", b.X, b.Y, b.Width, b.Height)
}
