package toon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name   string  `toon:"name"`
	Age    int     `toon:"age"`
	Score  float64 `toon:"score"`
	Active bool    `toon:"active"`
	Note   *string `toon:"note"`

	Ignored  string `toon:"-"`
	internal int
}

func TestMarshalStructs(t *testing.T) {
	note := "here"
	people := []person{
		{Name: "Alice", Age: 30, Score: 95.5, Active: true, Note: &note},
		{Name: "Bob", Age: 25, Score: 88, Active: false},
	}

	data, err := Marshal(people)
	require.NoError(t, err)

	assert.Equal(t,
		"name,age,score,active,note\n"+
			"Alice,30,95.5,true,here\n"+
			"Bob,25,88.0,false,\n",
		string(data))
}

func TestMarshalNamed(t *testing.T) {
	data, err := MarshalNamed("users", []person{{Name: "Alice", Age: 30}})
	require.NoError(t, err)

	tab, err := Decode(string(data))
	require.NoError(t, err)
	assert.Equal(t, "users", tab.Name())
}

func TestMarshalUntaggedFields(t *testing.T) {
	type row struct {
		A int
		B string
	}

	data, err := Marshal([]row{{1, "x"}})
	require.NoError(t, err)
	assert.Equal(t, "A,B\n1,x\n", string(data))
}

func TestMarshalMaps(t *testing.T) {
	rows := []map[string]interface{}{
		{"b": 2, "a": 1},
		{"a": 3, "c": "x"},
	}

	data, err := Marshal(rows)
	require.NoError(t, err)

	// Columns are the sorted union of keys; missing keys are null.
	assert.Equal(t,
		"a,b,c\n"+
			"1,2,\n"+
			"3,,x\n",
		string(data))
}

// A uint64 beyond the int64 range is written as digits; the decoder's
// overflow policy keeps it a string, so no precision is lost.
func TestMarshalUintOverflow(t *testing.T) {
	type row struct {
		V uint64 `toon:"v"`
	}

	data, err := Marshal([]row{{V: math.MaxUint64}})
	require.NoError(t, err)
	assert.Equal(t, "v\n18446744073709551615\n", string(data))

	tab, err := Decode(string(data))
	require.NoError(t, err)
	assert.Equal(t, String("18446744073709551615"), tab.Row(0)[0])
}

func TestMarshalErrors(t *testing.T) {
	usageErr := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		_, ok := err.(*UsageError)
		require.True(t, ok, "expected *UsageError, got %T", err)
	}

	t.Run("not a slice", func(t *testing.T) {
		_, err := Marshal(42)
		usageErr(t, err)
	})

	t.Run("unsupported element", func(t *testing.T) {
		_, err := Marshal([]int{1, 2})
		usageErr(t, err)
	})

	t.Run("non-scalar field", func(t *testing.T) {
		type row struct {
			V []int `toon:"v"`
		}
		_, err := Marshal([]row{{V: []int{1}}})
		usageErr(t, err)
	})

	t.Run("no fields", func(t *testing.T) {
		type row struct {
			hidden int
		}
		_, err := Marshal([]row{{hidden: 1}})
		usageErr(t, err)
	})
}
