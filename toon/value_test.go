package toon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, NullType, Null().Type())
	assert.True(t, Null().IsNull())

	assert.Equal(t, true, Bool(true).Bool())
	assert.Equal(t, int64(-7), Int(-7).Int())
	assert.Equal(t, 2.5, Float(2.5).Float())
	assert.Equal(t, "hi", String("hi").Str())

	assert.False(t, Int(0).IsNull())
	assert.Equal(t, NoType, Value{}.Type())
}

func TestValueAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { Int(1).Bool() })
	assert.Panics(t, func() { Bool(true).Int() })
	assert.Panics(t, func() { String("x").Float() })
	assert.Panics(t, func() { Null().Str() })
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Int(5).Equal(Int(5)))
	assert.False(t, Int(5).Equal(Int(6)))
	assert.False(t, Int(5).Equal(Float(5)))
	assert.False(t, Null().Equal(String("")))
	assert.True(t, String("a").Equal(String("a")))

	require.True(t, Float(math.NaN()).Equal(Float(math.NaN())))
	assert.False(t, Float(math.NaN()).Equal(Float(0)))
	assert.True(t, Float(math.Inf(1)).Equal(Float(math.Inf(1))))
	assert.False(t, Float(math.Inf(1)).Equal(Float(math.Inf(-1))))
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "", Null().Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "-12", Int(-12).Text())
	assert.Equal(t, "1.5", Float(1.5).Text())
	assert.Equal(t, "2.0", Float(2).Text())
	assert.Equal(t, "a,b", String("a,b").Text())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, `"a,b"`, String("a,b").String())
}
