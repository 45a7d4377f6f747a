package toon

import "fmt"

// A Type represents the type of a TOON Value.
type Type uint8

const (
	// NoType is the type of the zero Value.
	NoType Type = iota

	// NullType is the type of the null value, written as an empty field.
	NullType

	// BoolType is the type of a boolean, true or false.
	BoolType

	// IntType is the type of a signed 64-bit integer.
	IntType

	// FloatType is the type of a 64-bit floating-point value.
	FloatType

	// StringType is the type of a Unicode string, represented directly.
	StringType
)

// String implements fmt.Stringer for Type.
func (t Type) String() string {
	switch t {
	case NoType:
		return "<no type>"
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	default:
		return fmt.Sprintf("<unknown type %v>", uint8(t))
	}
}
