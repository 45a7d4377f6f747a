package toon

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDiff compares tables structurally: name, column order, row
// order, value tags and contents, with NaN equal to NaN.
func tableDiff(expected, actual *Table) string {
	return cmp.Diff(expected, actual,
		cmp.AllowUnexported(Table{}),
		cmp.Comparer(func(a, b Value) bool { return a.Equal(b) }),
	)
}

func roundTrip(t *testing.T, tab *Table) *Table {
	t.Helper()
	decoded, err := Decode(Encode(tab))
	require.NoError(t, err)
	return decoded
}

func TestRoundTripLaw(t *testing.T) {
	test := func(name string, tab *Table) {
		t.Run(name, func(t *testing.T) {
			decoded := roundTrip(t, tab)
			assert.Empty(t, tableDiff(tab, decoded))
		})
	}

	test("simple", buildTable(t, "", []string{"name", "age"},
		[]Value{String("Alice"), Int(30)},
		[]Value{String("Bob"), Int(25)},
	))

	test("named", buildTable(t, "users", []string{"name", "age", "city"},
		[]Value{String("Alice"), Int(30), String("New York")},
		[]Value{String("Bob"), Int(25), String("London")},
		[]Value{String("Carol"), Int(41), String("Paris")},
	))

	test("empty table", buildTable(t, "empty", []string{"a", "b"}))

	test("all scalar types", buildTable(t, "", []string{"n", "b", "i", "f", "s"},
		[]Value{Null(), Bool(true), Int(-42), Float(3.14), String("hello world")},
		[]Value{Null(), Bool(false), Int(math.MaxInt64), Float(-1e-9), String("")},
	))

	test("ambiguous strings", buildTable(t, "", []string{"v"},
		[]Value{String("42")},
		[]Value{String("42.0")},
		[]Value{String("true")},
		[]Value{String("")},
		[]Value{String("null")},
		[]Value{String("nan")},
		[]Value{String("---")},
		[]Value{String("3.14.15")},
	))

	test("quoting", buildTable(t, "", []string{"v"},
		[]Value{String("a,b")},
		[]Value{String(`she said "hi"`)},
		[]Value{String("line one\nline two")},
		[]Value{String(" leading and trailing ")},
	))

	test("terminator bytes in strings", buildTable(t, "", []string{"v"},
		[]Value{String("a\r\nb")},
		[]Value{String("a\rb")},
		[]Value{String("\r\n")},
	))

	test("non-finite floats", buildTable(t, "", []string{"f"},
		[]Value{Float(math.NaN())},
		[]Value{Float(math.Inf(1))},
		[]Value{Float(math.Inf(-1))},
	))

	test("single column with nulls", buildTable(t, "", []string{"v"},
		[]Value{Null()},
		[]Value{String("a")},
		[]Value{Null()},
	))

	test("awkward names", buildTable(t, "my table", []string{"@col", "a,b", `q"q`},
		[]Value{Int(1), Int(2), Int(3)},
	))

	test("float precision", buildTable(t, "", []string{"f"},
		[]Value{Float(0.1)},
		[]Value{Float(2.718281828459045)},
		[]Value{Float(math.MaxFloat64)},
		[]Value{Float(math.SmallestNonzeroFloat64)},
		[]Value{Float(-0.0)},
	))
}

// Canonical form is a fixed point: re-encoding a decoded document is
// byte-identical.
func TestReencodeFixedPoint(t *testing.T) {
	test := func(name string, tab *Table) {
		t.Run(name, func(t *testing.T) {
			once := Encode(tab)
			decoded, err := Decode(once)
			require.NoError(t, err)
			assert.Equal(t, once, Encode(decoded))
		})
	}

	test("mixed", buildTable(t, "users", []string{"name", "age", "active"},
		[]Value{String("Alice"), Int(30), Bool(true)},
		[]Value{String("Bob"), Null(), Bool(false)},
	))

	test("floats", buildTable(t, "", []string{"f"},
		[]Value{Float(42)},
		[]Value{Float(1e21)},
		[]Value{Float(math.NaN())},
	))
}

// Decoding a non-canonical document and re-encoding it canonicalizes
// spelling without touching values.
func TestCanonicalization(t *testing.T) {
	tab, err := Decode("@t\r\n\r\na,b\r\n---\r\nTRUE,+5\r\n\r\n1E2,007\r\n")
	require.NoError(t, err)

	assert.Equal(t, "@t\na,b\ntrue,5\n100.0,007\n", Encode(tab))
}
