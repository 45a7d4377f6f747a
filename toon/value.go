package toon

import (
	"fmt"
	"math"
	"strconv"
)

// A Value is a single TOON scalar: exactly one of null, bool, int,
// float, or string. The zero Value has NoType and is not a valid table
// cell; construct Values with Null, Bool, Int, Float, or String.
type Value struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
}

// Null returns the null Value.
func Null() Value {
	return Value{typ: NullType}
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	return Value{typ: BoolType, b: v}
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{typ: IntType, i: v}
}

// Float returns a floating-point Value.
func Float(v float64) Value {
	return Value{typ: FloatType, f: v}
}

// String returns a string Value.
func String(v string) Value {
	return Value{typ: StringType, s: v}
}

// Type returns the type of this Value.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether this Value is null.
func (v Value) IsNull() bool {
	return v.typ == NullType
}

// Bool returns the boolean this Value holds. It panics if the Value is
// not a BoolType.
func (v Value) Bool() bool {
	v.mustBe(BoolType)
	return v.b
}

// Int returns the integer this Value holds. It panics if the Value is
// not an IntType.
func (v Value) Int() int64 {
	v.mustBe(IntType)
	return v.i
}

// Float returns the float this Value holds. It panics if the Value is
// not a FloatType.
func (v Value) Float() float64 {
	v.mustBe(FloatType)
	return v.f
}

// Str returns the string this Value holds. It panics if the Value is
// not a StringType.
func (v Value) Str() string {
	v.mustBe(StringType)
	return v.s
}

func (v Value) mustBe(t Type) {
	if v.typ != t {
		panic(fmt.Sprintf("toon: called %v accessor on %v value", t, v.typ))
	}
}

// Equal reports whether two Values have the same type and the same
// contents. Unlike ==, two NaN floats compare equal so that tables
// containing NaN still satisfy structural equality.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case BoolType:
		return v.b == o.b
	case IntType:
		return v.i == o.i
	case FloatType:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case StringType:
		return v.s == o.s
	default:
		return true
	}
}

// Text returns the canonical unquoted field text of the Value: the
// empty string for null, "true"/"false", decimal digits, the shortest
// round-trip float form, or string contents verbatim. Quoting, where
// the text needs it, is the encoder's business.
func (v Value) Text() string {
	switch v.typ {
	case BoolType:
		return strconv.FormatBool(v.b)
	case IntType:
		return strconv.FormatInt(v.i, 10)
	case FloatType:
		return formatFloat(v.f)
	case StringType:
		return v.s
	default:
		return ""
	}
}

// String implements fmt.Stringer, rendering the Value for diagnostics.
// This is not the encoded field form; see Encode for that.
func (v Value) String() string {
	switch v.typ {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(v.b)
	case IntType:
		return strconv.FormatInt(v.i, 10)
	case FloatType:
		return formatFloat(v.f)
	case StringType:
		return strconv.Quote(v.s)
	default:
		return v.typ.String()
	}
}
